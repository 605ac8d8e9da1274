package spectrum

import (
	"errors"
	"math"
)

// Emittance is a spectral radiance distribution (W·sr⁻¹·m⁻³)
type Emittance interface {
	Distribution
	Validate() error
}

// ConstantEmittance radiates equally at all wavelengths
type ConstantEmittance struct {
	Radiance float64
}

// At returns the constant radiance regardless of wavelength
func (e ConstantEmittance) At(wavelength float64) float64 {
	return e.Radiance
}

// Validate checks the radiance is non-negative
func (e ConstantEmittance) Validate() error {
	if e.Radiance < 0 {
		return errors.New("constant emittance: radiance must be non-negative")
	}
	return nil
}

// BlackBody evaluates Planck's law for a body at the given temperature.
// https://en.wikipedia.org/wiki/Planck%27s_law
type BlackBody struct {
	Temperature float64 // Kelvin
}

// At returns the raw Planck spectral radiance:
// B(λ,T) = 2hc²/λ⁵ · 1/(exp(hc/λkT) − 1)
func (e BlackBody) At(wavelength float64) float64 {
	numerator := 2.0 * Planck * LightSpeed * LightSpeed / math.Pow(wavelength, 5)
	exponent := Planck * LightSpeed / (wavelength * Boltzmann * e.Temperature)
	return numerator / (math.Exp(exponent) - 1.0)
}

// Validate checks the temperature is positive
func (e BlackBody) Validate() error {
	if e.Temperature <= 0 {
		return errors.New("black body: temperature must be positive")
	}
	return nil
}

// LorentzianEmittance is a single emission line
// https://en.wikipedia.org/wiki/Spectral_line_shape#Lorentzian
type LorentzianEmittance struct {
	MaximumAt float64 // wavelength of the maximum, meters
	FWHM      float64 // full width at half maximum, meters
	Radiance  float64 // radiance at the maximum
}

// At evaluates the emission line scaled to Radiance at the maximum
func (e LorentzianEmittance) At(wavelength float64) float64 {
	return e.Radiance * Lorentzian(wavelength, e.MaximumAt, e.FWHM)
}

// Validate checks the line shape parameters
func (e LorentzianEmittance) Validate() error {
	if e.FWHM <= 0 {
		return errors.New("lorentzian emittance: full width at half maximum must be positive")
	}
	if e.Radiance < 0 {
		return errors.New("lorentzian emittance: radiance must be non-negative")
	}
	return nil
}
