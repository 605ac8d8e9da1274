// Package integrator estimates spectral radiance for a single camera ray at
// a single sampled wavelength by unidirectional Monte-Carlo path tracing.
package integrator

import (
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/scene"
)

// Config contains the path tracing parameters
type Config struct {
	MaxDepth                  int     // maximum number of bounces per path
	MinHitDistance            float64 // self-intersection guard
	MinAttenuation            float64 // terminate paths whose weight dropped below this
	RussianRouletteMinBounces int     // bounces before roulette termination may start
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:                  50,
		MinHitDistance:            1e-4,
		MinAttenuation:            1e-4,
		RussianRouletteMinBounces: 8,
	}
}

// PathTracer implements the iterative spectral path tracing estimator
type PathTracer struct {
	config Config
}

// NewPathTracer creates a path tracer with the given configuration
func NewPathTracer(config Config) *PathTracer {
	return &PathTracer{config: config}
}

// Radiance estimates the spectral radiance arriving along the ray at the
// sampled wavelength. The recursion is expressed as a loop carrying the
// current ray and a running multiplicative weight.
func (pt *PathTracer) Radiance(s *scene.Scene, ray core.Ray, wavelength float64, sampler core.Sampler) float64 {
	total := 0.0
	weight := 1.0

	for bounce := 0; bounce < pt.config.MaxDepth; bounce++ {
		if weight < pt.config.MinAttenuation {
			break
		}

		// Russian roulette past the warm-up depth: terminate with
		// probability 1-p and divide surviving paths by p to stay unbiased
		if bounce >= pt.config.RussianRouletteMinBounces {
			survival := math.Min(0.95, math.Max(0.5, weight))
			if sampler.Get1D() > survival {
				break
			}
			weight /= survival
		}

		hit, ok := s.Hit(ray, pt.config.MinHitDistance, math.Inf(1), sampler)
		if !ok {
			// The ray escaped the scene: collect the ambient emittance
			total += weight * s.AmbientEmittance.At(wavelength)
			break
		}

		// Emission is collected whether or not the path continues
		total += weight * hit.Material.Emitted(hit, wavelength)

		scatter, ok := hit.Material.Scatter(ray, hit, wavelength, sampler)
		if !ok {
			break
		}

		weight *= scatter.Attenuation
		ray = scatter.Scattered
	}

	// Shading degeneracies must not corrupt the pixel average
	if math.IsNaN(total) || math.IsInf(total, 0) || total < 0 {
		return 0
	}
	return total
}
