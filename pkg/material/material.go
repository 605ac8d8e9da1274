// Package material models how a surface responds to light at a single
// sampled wavelength: emission, diffuse/specular reflection, and
// wavelength-dependent refraction with Beer-Lambert interior absorption.
package material

import (
	"errors"
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/spectrum"
)

// Reflectance describes the reflective component of a material
type Reflectance struct {
	Attenuation spectrum.Attenuation // reflected color filter, default white
	Diffusion   *float64             // probability of a diffuse bounce in [0,1]; nil = always specular
	Fuzz        *float64             // roughness perturbation of specular bounces
}

// Transmittance describes the refractive component of a material
type Transmittance struct {
	RefractedIndex spectrum.RefractiveIndex        // index of the body's medium, required
	IncidentIndex  spectrum.RefractiveIndex        // index of the outside medium, default vacuum
	Attenuation    spectrum.Attenuation            // inner color filter, default white
	Coefficient    spectrum.AttenuationCoefficient // Beer-Lambert absorption, default zero
}

// Material aggregates the optional emissive, reflective and transmissive
// behaviors. A material with none of them is a perfect absorber.
type Material struct {
	Emittance     spectrum.Emittance
	Reflectance   *Reflectance
	Transmittance *Transmittance
}

// ScatterResult contains the continuation of a light path after a bounce
type ScatterResult struct {
	Scattered   core.Ray // the scattered ray, direction normalized
	Attenuation float64  // multiplies all radiance gathered deeper in the path
}

// HitRecord contains information about a ray-surface intersection
type HitRecord struct {
	Point      core.Vec3 // point of intersection
	Normal     core.Vec3 // surface normal, always against the incoming ray
	T          float64   // distance along the (unit-direction) ray
	FrontFace  bool      // whether the ray struck the front face
	Volumetric bool      // hit inside a participating medium, not on a boundary
	Material   *Material // material of the hit surface
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Emitted returns the radiance the material adds at the hit, evaluated at
// the sampled wavelength. Emission is counted when the ray strikes the front
// face, so a ray passing through a body does not collect it twice.
func (m *Material) Emitted(hit *HitRecord, wavelength float64) float64 {
	if m.Emittance == nil || !hit.FrontFace {
		return 0
	}
	return m.Emittance.At(wavelength)
}

// Scatter decides the continuation of the path at a hit, for one sampled
// wavelength. Returns false when the material absorbs the ray.
//
// The decision order is: diffuse-or-specular reflection when diffusion is
// configured, then Fresnel reflect-or-refract for transmissive bodies, then
// pure specular reflection, then absorption.
func (m *Material) Scatter(rayIn core.Ray, hit *HitRecord, wavelength float64, sampler core.Sampler) (ScatterResult, bool) {
	if reflectance := m.Reflectance; reflectance != nil && reflectance.Diffusion != nil {
		if sampler.Get1D() < *reflectance.Diffusion {
			return m.scatterDiffuse(hit, wavelength, sampler), true
		}
		return m.scatterSpecular(rayIn, hit, wavelength, reflectance, sampler)
	}

	if m.Transmittance != nil {
		return m.scatterTransmissive(rayIn, hit, wavelength, sampler)
	}

	if m.Reflectance != nil {
		return m.scatterSpecular(rayIn, hit, wavelength, m.Reflectance, sampler)
	}

	return ScatterResult{}, false
}

// scatterDiffuse bounces the ray into the hemisphere around the normal, or
// isotropically for a volumetric hit
func (m *Material) scatterDiffuse(hit *HitRecord, wavelength float64, sampler core.Sampler) ScatterResult {
	var direction core.Vec3
	if hit.Volumetric {
		direction = core.SampleUnitSphere(sampler.Get2D())
	} else {
		direction = core.SampleCosineHemisphere(hit.Normal, sampler.Get2D())
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction.Normalize()),
		Attenuation: m.Reflectance.Attenuation.At(wavelength),
	}
}

// scatterSpecular mirrors the ray about the normal, perturbed by fuzz
func (m *Material) scatterSpecular(rayIn core.Ray, hit *HitRecord, wavelength float64, reflectance *Reflectance, sampler core.Sampler) (ScatterResult, bool) {
	direction := rayIn.Direction.Normalize().Reflect(hit.Normal)
	if reflectance.Fuzz != nil && *reflectance.Fuzz > 0 {
		perturbation := core.SampleUnitSphere(sampler.Get2D()).Multiply(*reflectance.Fuzz)
		direction = direction.Add(perturbation).Normalize()
	}

	// A fuzzed reflection driven below the surface is absorbed
	if !hit.Volumetric && direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: reflectance.Attenuation.At(wavelength),
	}, true
}

// scatterTransmissive applies the Fresnel coin flip between mirror
// reflection and Snell refraction, with total internal reflection forced
// past the critical angle. This is where dispersion becomes visible: the
// index ratio depends on the sampled wavelength.
func (m *Material) scatterTransmissive(rayIn core.Ray, hit *HitRecord, wavelength float64, sampler core.Sampler) (ScatterResult, bool) {
	transmittance := m.Transmittance

	incidentIndex := spectrum.RefractiveIndex(spectrum.Vacuum)
	if transmittance.IncidentIndex != nil {
		incidentIndex = transmittance.IncidentIndex
	}

	var index spectrum.RelativeRefractiveIndex
	if hit.FrontFace {
		index = spectrum.RelativeRefractiveIndex{
			Incident:  incidentIndex.At(wavelength),
			Refracted: transmittance.RefractedIndex.At(wavelength),
		}
	} else {
		index = spectrum.RelativeRefractiveIndex{
			Incident:  transmittance.RefractedIndex.At(wavelength),
			Refracted: incidentIndex.At(wavelength),
		}
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta1 := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	if cosTheta1 < 0 {
		cosTheta1 = 0
	}

	relative := index.Relative()
	sinTheta2 := relative * math.Sqrt(1.0-cosTheta1*cosTheta1)

	var direction core.Vec3
	if sinTheta2 > 1.0 || index.Reflectance(cosTheta1) > sampler.Get1D() {
		// Total internal reflection is forced regardless of the Fresnel draw
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		// Snell's law in vector form
		cosTheta2 := math.Sqrt(1.0 - sinTheta2*sinTheta2)
		direction = unitDirection.Multiply(relative).
			Add(hit.Normal.Multiply(relative*cosTheta1 - cosTheta2)).
			Normalize()
	}

	// Light leaving the body traveled hit.T through the interior: apply the
	// Beer-Lambert decay and the inner color filter
	attenuation := 1.0
	if !hit.FrontFace {
		if transmittance.Coefficient != nil {
			attenuation *= math.Exp(-transmittance.Coefficient.At(wavelength) * hit.T)
		}
		if transmittance.Attenuation != nil {
			attenuation *= transmittance.Attenuation.At(wavelength)
		}
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}

// Validate checks the material's physical parameters, recursing into its
// spectra. Called eagerly when the scene is built.
func (m *Material) Validate() error {
	if m.Emittance != nil {
		if err := m.Emittance.Validate(); err != nil {
			return err
		}
	}

	if reflectance := m.Reflectance; reflectance != nil {
		if reflectance.Attenuation == nil {
			return errors.New("reflectance: attenuation spectrum is required")
		}
		if err := reflectance.Attenuation.Validate(); err != nil {
			return err
		}
		if d := reflectance.Diffusion; d != nil && (*d < 0 || *d > 1) {
			return errors.New("reflectance: diffusion must be within [0, 1]")
		}
		if f := reflectance.Fuzz; f != nil && *f < 0 {
			return errors.New("reflectance: fuzz must be non-negative")
		}
	}

	if transmittance := m.Transmittance; transmittance != nil {
		if transmittance.RefractedIndex == nil {
			return errors.New("transmittance: refracted index is required")
		}
		if err := transmittance.RefractedIndex.Validate(); err != nil {
			return err
		}
		if transmittance.IncidentIndex != nil {
			if err := transmittance.IncidentIndex.Validate(); err != nil {
				return err
			}
		}
		if transmittance.Attenuation != nil {
			if err := transmittance.Attenuation.Validate(); err != nil {
				return err
			}
		}
		if transmittance.Coefficient != nil {
			if err := transmittance.Coefficient.Validate(); err != nil {
				return err
			}
		}
	}

	return nil
}
