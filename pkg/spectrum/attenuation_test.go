package spectrum

import (
	"math"
	"testing"
)

func TestConstantAttenuation(t *testing.T) {
	a := NewConstantAttenuation(0.7)
	for _, wavelength := range []float64{MinWavelength, 550e-9, MaxWavelength} {
		if got := a.At(wavelength); got != 0.7 {
			t.Errorf("At(%g): expected 0.7, got %f", wavelength, got)
		}
	}

	if err := a.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (ConstantAttenuation{Intensity: -1}).Validate(); err == nil {
		t.Error("expected error for negative intensity")
	}
}

func TestWhiteAttenuation(t *testing.T) {
	if got := WhiteAttenuation().At(500e-9); got != 1.0 {
		t.Errorf("expected 1.0, got %f", got)
	}
}

func TestLorentzianAttenuation(t *testing.T) {
	a := LorentzianAttenuation{MaximumAt: 550e-9, FWHM: 30e-9, Scale: 0.8}

	if got := a.At(550e-9); math.Abs(got-0.8) > 1e-12 {
		t.Errorf("expected scale at the maximum, got %f", got)
	}
	if got := a.At(565e-9); math.Abs(got-0.4) > 1e-12 {
		t.Errorf("expected half the scale at half width, got %f", got)
	}

	if err := a.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (LorentzianAttenuation{MaximumAt: 550e-9, FWHM: 0, Scale: 1}).Validate(); err == nil {
		t.Error("expected error for non-positive width")
	}
}

func TestSumAttenuation(t *testing.T) {
	sum := SumAttenuation{Spectra: []Attenuation{
		NewConstantAttenuation(0.25),
		LorentzianAttenuation{MaximumAt: 550e-9, FWHM: 30e-9, Scale: 0.5},
	}}

	// At the line maximum the sum is the constant plus the full scale
	if got := sum.At(550e-9); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("expected 0.75, got %f", got)
	}
}

func TestSumAttenuation_Linearity(t *testing.T) {
	a := NewConstantAttenuation(0.3)
	b := LorentzianAttenuation{MaximumAt: 520e-9, FWHM: 40e-9, Scale: 0.7}
	sum := SumAttenuation{Spectra: []Attenuation{a, b}}

	for _, wavelength := range []float64{400e-9, 520e-9, 540e-9, 700e-9} {
		expected := a.At(wavelength) + b.At(wavelength)
		if got := sum.At(wavelength); math.Abs(got-expected) > 1e-12 {
			t.Errorf("At(%g): expected %f, got %f", wavelength, expected, got)
		}
	}
}

func TestSumAttenuation_EmptyIsZero(t *testing.T) {
	var sum SumAttenuation
	if got := sum.At(550e-9); got != 0 {
		t.Errorf("expected 0 for empty sum, got %f", got)
	}
	if err := sum.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSumAttenuation_ValidatesChildren(t *testing.T) {
	sum := SumAttenuation{Spectra: []Attenuation{
		NewConstantAttenuation(0.5),
		LorentzianAttenuation{MaximumAt: 550e-9, FWHM: -1, Scale: 1},
	}}
	if err := sum.Validate(); err == nil {
		t.Error("expected error from invalid child")
	}
}
