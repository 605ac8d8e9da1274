package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/material"
	"github.com/df07/go-spectral-pathtracer/pkg/spectrum"
)

func fogMaterial() *material.Material {
	diffusion := 1.0
	return &material.Material{
		Reflectance: &material.Reflectance{
			Attenuation: spectrum.NewConstantAttenuation(0.9),
			Diffusion:   &diffusion,
		},
	}
}

func TestUniformFog_MissesOutsideBounds(t *testing.T) {
	fog := NewUniformFog(core.NewAABB(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)), 100.0, fogMaterial())
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := core.NewRay(core.NewVec3(-1, 5, 0.5), core.NewVec3(1, 0, 0))
	if _, ok := fog.Hit(ray, 1e-4, math.Inf(1), sampler); ok {
		t.Error("expected miss for ray outside the bounds")
	}
}

func TestUniformFog_HitIsVolumetricAndInsideInterval(t *testing.T) {
	fog := NewUniformFog(core.NewAABB(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)), 50.0, fogMaterial())
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	ray := core.NewRay(core.NewVec3(-1, 0.5, 0.5), core.NewVec3(1, 0, 0))

	hit, ok := fog.Hit(ray, 1e-4, math.Inf(1), sampler)
	if !ok {
		t.Fatal("expected a dense fog to scatter the ray")
	}
	if !hit.Volumetric {
		t.Error("expected a volumetric hit")
	}
	if !hit.FrontFace {
		t.Error("expected a front-face hit")
	}
	if hit.T < 1.0 || hit.T > 2.0 {
		t.Errorf("expected scattering inside [1, 2] along the ray, got %f", hit.T)
	}
	if hit.Normal.Subtract(ray.Direction.Negate()).Length() > 1e-9 {
		t.Errorf("expected normal opposing the ray, got %v", hit.Normal)
	}
}

func TestUniformFog_BeerLambertPassProbability(t *testing.T) {
	// The chance of crossing a unit path without scattering is exp(-density)
	const density = 2.0
	fog := NewUniformFog(core.NewAABB(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)), density, fogMaterial())
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	ray := core.NewRay(core.NewVec3(-1, 0.5, 0.5), core.NewVec3(1, 0, 0))

	const trials = 20000
	passed := 0
	for i := 0; i < trials; i++ {
		if _, ok := fog.Hit(ray, 1e-4, math.Inf(1), sampler); !ok {
			passed++
		}
	}

	expected := math.Exp(-density)
	observed := float64(passed) / trials
	if math.Abs(observed-expected) > 0.01 {
		t.Errorf("expected pass probability ≈ %f, observed %f", expected, observed)
	}
}

func TestUniformFog_HigherDensityScattersSooner(t *testing.T) {
	bounds := core.NewAABB(core.NewVec3(0, 0, 0), core.NewVec3(10, 10, 10))
	thin := NewUniformFog(bounds, 0.5, fogMaterial())
	thick := NewUniformFog(bounds, 5.0, fogMaterial())
	ray := core.NewRay(core.NewVec3(-1, 5, 5), core.NewVec3(1, 0, 0))

	mean := func(fog *UniformFog, seed int64) float64 {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		sum, count := 0.0, 0
		for i := 0; i < 5000; i++ {
			if hit, ok := fog.Hit(ray, 1e-4, math.Inf(1), sampler); ok {
				sum += hit.T
				count++
			}
		}
		return sum / float64(count)
	}

	if mean(thick, 1) >= mean(thin, 1) {
		t.Error("expected denser fog to scatter earlier on average")
	}
}

func TestUniformFog_Validate(t *testing.T) {
	bounds := core.NewAABB(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1))

	if err := NewUniformFog(bounds, 1.0, fogMaterial()).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := NewUniformFog(bounds, 0, fogMaterial()).Validate(); err == nil {
		t.Error("expected error for non-positive density")
	}
	invalid := core.NewAABB(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))
	if err := NewUniformFog(invalid, 1.0, fogMaterial()).Validate(); err == nil {
		t.Error("expected error for invalid bounds")
	}
	if err := NewUniformFog(bounds, 1.0, nil).Validate(); err == nil {
		t.Error("expected error for missing material")
	}
}
