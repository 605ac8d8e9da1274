package spectrum

import "errors"

// Attenuation is a dimensionless spectrum in [0, 1]-ish range used as a color
// filter: reflectance albedo or a transmitting body's inner tint. Evaluates
// to an intensity ≥ 0.
type Attenuation interface {
	Distribution
	Validate() error
}

// ConstantAttenuation attenuates all wavelengths equally
type ConstantAttenuation struct {
	Intensity float64
}

// NewConstantAttenuation creates a flat attenuation spectrum
func NewConstantAttenuation(intensity float64) ConstantAttenuation {
	return ConstantAttenuation{Intensity: intensity}
}

// WhiteAttenuation returns the default fully transparent/white spectrum
func WhiteAttenuation() ConstantAttenuation {
	return ConstantAttenuation{Intensity: 1.0}
}

// At returns the constant intensity regardless of wavelength
func (a ConstantAttenuation) At(wavelength float64) float64 {
	return a.Intensity
}

// Validate checks the intensity is non-negative
func (a ConstantAttenuation) Validate() error {
	if a.Intensity < 0 {
		return errors.New("constant attenuation: intensity must be non-negative")
	}
	return nil
}

// LorentzianAttenuation is a single spectral line shape
type LorentzianAttenuation struct {
	MaximumAt float64 // wavelength of the maximum, meters
	FWHM      float64 // full width at half maximum, meters
	Scale     float64 // intensity at the maximum
}

// At evaluates the line shape scaled to Scale at the maximum
func (a LorentzianAttenuation) At(wavelength float64) float64 {
	return a.Scale * Lorentzian(wavelength, a.MaximumAt, a.FWHM)
}

// Validate checks the line shape parameters
func (a LorentzianAttenuation) Validate() error {
	if a.FWHM <= 0 {
		return errors.New("lorentzian attenuation: full width at half maximum must be positive")
	}
	if a.Scale < 0 {
		return errors.New("lorentzian attenuation: scale must be non-negative")
	}
	return nil
}

// SumAttenuation is the arithmetic sum of child spectra; an empty list
// evaluates to zero
type SumAttenuation struct {
	Spectra []Attenuation
}

// At returns the sum of all child intensities
func (a SumAttenuation) At(wavelength float64) float64 {
	sum := 0.0
	for _, spectrum := range a.Spectra {
		sum += spectrum.At(wavelength)
	}
	return sum
}

// Validate checks every child spectrum
func (a SumAttenuation) Validate() error {
	for _, spectrum := range a.Spectra {
		if err := spectrum.Validate(); err != nil {
			return err
		}
	}
	return nil
}
