package spectrum

import (
	"math"
	"testing"
)

func TestLorentzian_PeakAndHalfMaximum(t *testing.T) {
	const maximumAt = 550e-9
	const fwhm = 30e-9

	if got := Lorentzian(maximumAt, maximumAt, fwhm); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("expected 1 at the maximum, got %f", got)
	}
	for _, offset := range []float64{-fwhm / 2, fwhm / 2} {
		if got := Lorentzian(maximumAt+offset, maximumAt, fwhm); math.Abs(got-0.5) > 1e-12 {
			t.Errorf("expected 0.5 at offset %g, got %f", offset, got)
		}
	}
}

func TestLorentzian_DecaysAwayFromPeak(t *testing.T) {
	const maximumAt = 550e-9
	const fwhm = 30e-9

	near := Lorentzian(560e-9, maximumAt, fwhm)
	far := Lorentzian(650e-9, maximumAt, fwhm)
	if far >= near {
		t.Errorf("expected monotone decay, got near=%f far=%f", near, far)
	}
}
