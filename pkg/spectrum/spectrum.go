// Package spectrum models light and matter properties as functions of
// wavelength: emission spectra, attenuation spectra, refractive indices and
// absorption coefficients, plus the CIE reduction to display color.
//
// All wavelengths are in meters, all spectral radiance values share the raw
// Planck unit (W·sr⁻¹·m⁻³) so different emitter types mix consistently.
package spectrum

// Distribution evaluates a spectral quantity at the given wavelength (meters).
type Distribution interface {
	At(wavelength float64) float64
}

// Physical constants (SI units)
const (
	LightSpeed = 299_792_458.0  // m/s
	Planck     = 6.62607015e-34 // J·s
	Boltzmann  = 1.380649e-23   // J/K
)

// Visible spectrum bounds used for wavelength sampling, chosen to match the
// range covered by the CIE 1931 color matching functions.
const (
	MinWavelength = 360e-9
	MaxWavelength = 830e-9
)

// Lorentzian evaluates the Lorentzian (Cauchy) line shape normalized to 1 at
// the maximum: (w/2)² / ((λ-λ0)² + (w/2)²) where w is the full width at half
// maximum.
func Lorentzian(wavelength, maximumAt, fullWidthAtHalfMaximum float64) float64 {
	x := (wavelength - maximumAt) / fullWidthAtHalfMaximum * 2.0
	return 1.0 / (x*x + 1.0)
}
