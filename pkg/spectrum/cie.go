package spectrum

import (
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// CIE 1931 2° color matching functions via the multi-lobe Gaussian fit of
// Wyman, Sloan & Shirley, "Simple Analytic Approximations to the CIE XYZ
// Color Matching Functions" (JCGT 2013). Accurate to ~1% over the visible
// range, which is well below Monte-Carlo noise in a rendered image.

// asymmetricGaussian evaluates a Gaussian lobe with different widths on the
// two sides of the peak; x and all parameters are in nanometers.
func asymmetricGaussian(x, peak, sigmaLeft, sigmaRight float64) float64 {
	sigma := sigmaLeft
	if x >= peak {
		sigma = sigmaRight
	}
	t := (x - peak) / sigma
	return math.Exp(-0.5 * t * t)
}

// WavelengthToXYZ returns the CIE 1931 (x̄, ȳ, z̄) weights for a wavelength
// in meters. Outside [MinWavelength, MaxWavelength] the weights fall off to
// effectively zero.
func WavelengthToXYZ(wavelength float64) core.Vec3 {
	nm := wavelength * 1e9
	x := 1.056*asymmetricGaussian(nm, 599.8, 37.9, 31.0) +
		0.362*asymmetricGaussian(nm, 442.0, 16.0, 26.7) -
		0.065*asymmetricGaussian(nm, 501.1, 20.4, 26.2)
	y := 0.821*asymmetricGaussian(nm, 568.8, 46.9, 40.5) +
		0.286*asymmetricGaussian(nm, 530.9, 16.3, 31.1)
	z := 1.217*asymmetricGaussian(nm, 437.0, 11.8, 36.0) +
		0.681*asymmetricGaussian(nm, 459.0, 26.0, 13.8)
	return core.NewVec3(x, y, z)
}

// XYZ to linear sRGB rows of the standard D65 transformation matrix,
// https://en.wikipedia.org/wiki/SRGB#From_CIE_XYZ_to_sRGB
var (
	xyzToRed   = core.NewVec3(3.2406255, -1.5372080, -0.4986286)
	xyzToGreen = core.NewVec3(-0.9689307, 1.8757561, 0.0415175)
	xyzToBlue  = core.NewVec3(0.0557101, -0.2040211, 1.0569959)
)

// XYZToSRGB converts an XYZ color to companded sRGB, clamped to [0, 1]
func XYZToSRGB(xyz core.Vec3) core.Vec3 {
	srgb := core.NewVec3(
		srgbCompand(xyz.Dot(xyzToRed)),
		srgbCompand(xyz.Dot(xyzToGreen)),
		srgbCompand(xyz.Dot(xyzToBlue)),
	)
	return srgb.Clamp(0.0, 1.0)
}

// srgbCompand applies the piecewise sRGB transfer curve to a linear value
func srgbCompand(linear float64) float64 {
	if linear <= 0.0031308 {
		return 12.92 * linear
	}
	return 1.055*math.Pow(linear, 1.0/2.4) - 0.055
}
