package geometry

import (
	"errors"
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/material"
)

// UniformFog is a homogeneous participating medium bounded by an AABB.
// Rays scatter inside it after a sampled free-flight distance, realizing
// Beer-Lambert transport: the probability of passing a path of length L
// without scattering is exp(-density·L).
type UniformFog struct {
	Bounds   core.AABB
	Density  float64
	Material *material.Material
}

// NewUniformFog creates a fog volume with the given density
func NewUniformFog(bounds core.AABB, density float64, mat *material.Material) *UniformFog {
	return &UniformFog{Bounds: bounds, Density: density, Material: mat}
}

// Hit samples a stochastic scattering event along the ray's passage through
// the volume. The reported hit is volumetric: the integrator scatters it
// isotropically instead of reflecting off a boundary.
func (f *UniformFog) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	t0, t1, ok := f.Bounds.HitInterval(ray, tMin, tMax)
	if !ok {
		return nil, false
	}

	// Free-flight distance with exponential distribution, mean 1/density
	u := sampler.Get1D()
	if u <= 0 {
		u = math.SmallestNonzeroFloat64
	}
	hitT := t0 - math.Log(u)/f.Density
	if hitT >= t1 {
		// The ray passes through without scattering
		return nil, false
	}

	return &material.HitRecord{
		T:          hitT,
		Point:      ray.At(hitT),
		Normal:     ray.Direction.Normalize().Negate(),
		FrontFace:  true,
		Volumetric: true,
		Material:   f.Material,
	}, true
}

// BoundingBox returns the fog volume's bounds
func (f *UniformFog) BoundingBox() core.AABB {
	return f.Bounds
}

// Validate checks the fog volume's parameters
func (f *UniformFog) Validate() error {
	if !f.Bounds.IsValid() {
		return errors.New("fog: aabb min must not exceed max")
	}
	if f.Density <= 0 {
		return errors.New("fog: density must be positive")
	}
	if f.Material == nil {
		return errors.New("fog: material is required")
	}
	return f.Material.Validate()
}
