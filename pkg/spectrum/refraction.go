package spectrum

import (
	"errors"
	"math"
)

// RefractiveIndex is a dimensionless absolute refractive index as a function
// of wavelength. The default medium (absent in a scene document) is vacuum.
type RefractiveIndex interface {
	Distribution
	Validate() error
}

// ConstantIndex is a non-dispersive medium
type ConstantIndex struct {
	Index float64
}

// At returns the constant index regardless of wavelength
func (r ConstantIndex) At(wavelength float64) float64 {
	return r.Index
}

// Validate checks the index is positive
func (r ConstantIndex) Validate() error {
	if r.Index <= 0 {
		return errors.New("constant refractive index: index must be positive")
	}
	return nil
}

// Cauchy2 is the two-term Cauchy dispersion formula: n(λ) = a + b/λ².
// https://en.wikipedia.org/wiki/Cauchy%27s_equation
type Cauchy2 struct {
	A float64 // dimensionless
	B float64 // m²
}

// At evaluates the dispersion formula
func (r Cauchy2) At(wavelength float64) float64 {
	return r.A + r.B/(wavelength*wavelength)
}

// Validate checks the leading coefficient is positive
func (r Cauchy2) Validate() error {
	if r.A <= 0 {
		return errors.New("cauchy2: coefficient a must be positive")
	}
	return nil
}

// Cauchy4 is the four-term Cauchy dispersion formula:
// n(λ) = a + b/λ² + c/λ⁴ + d/λ⁶
type Cauchy4 struct {
	A float64 // dimensionless
	B float64 // m²
	C float64 // m⁴
	D float64 // m⁶
}

// At evaluates the dispersion formula
func (r Cauchy4) At(wavelength float64) float64 {
	squared := wavelength * wavelength
	quartic := squared * squared
	sextic := quartic * squared
	return r.A + r.B/squared + r.C/quartic + r.D/sextic
}

// Validate checks the leading coefficient is positive
func (r Cauchy4) Validate() error {
	if r.A <= 0 {
		return errors.New("cauchy4: coefficient a must be positive")
	}
	return nil
}

// Named media are fixed-parameter instances of the general dispersion
// formulas; adding a medium is adding data, not a new code path.
var (
	// Vacuum is the default refractive index
	Vacuum = ConstantIndex{Index: 1.0}

	// Water dispersion after Bashkatov & Genina (2003),
	// https://doi.org/10.1117/12.518857
	Water = Cauchy4{A: 1.3199, B: 6878e-18, C: -1.132e-27, D: 1.11e-40}

	// FusedQuartz (fused silica) Cauchy coefficients,
	// https://en.wikipedia.org/wiki/Fused_quartz
	FusedQuartz = Cauchy2{A: 1.4580, B: 3.54e-15}
)

// RelativeRefractiveIndex pairs the absolute indices on the two sides of a
// refracting boundary, already evaluated at the sampled wavelength.
type RelativeRefractiveIndex struct {
	Incident  float64 // absolute index on the incident side
	Refracted float64 // absolute index on the refracted side
}

// Relative returns the index ratio n1/n2 used by Snell's law
func (r RelativeRefractiveIndex) Relative() float64 {
	return r.Incident / r.Refracted
}

// Reflectance computes Schlick's approximation of the Fresnel reflectance
// for the given cosine of the incidence angle.
// https://en.wikipedia.org/wiki/Schlick%27s_approximation
func (r RelativeRefractiveIndex) Reflectance(cosTheta float64) float64 {
	r0 := (r.Incident - r.Refracted) / (r.Incident + r.Refracted)
	r0 *= r0
	return r0 + (1.0-r0)*math.Pow(1.0-cosTheta, 5)
}
