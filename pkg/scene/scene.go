// Package scene holds the immutable description of what to render: the
// camera, the ambient emittance, and the surfaces. A Scene is built and
// validated once, then shared read-only by all render workers.
package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
	"github.com/df07/go-spectral-pathtracer/pkg/material"
	"github.com/df07/go-spectral-pathtracer/pkg/spectrum"
)

// ErrInvalidScene reports a malformed or physically invalid scene
// description. Detected eagerly when the scene is built; a scene that fails
// validation never reaches the tracer.
var ErrInvalidScene = errors.New("invalid scene")

// Scene is an immutable collection of surfaces with a camera and an ambient
// emittance for rays that escape all geometry
type Scene struct {
	AmbientEmittance spectrum.Emittance
	Camera           Camera
	Surfaces         []geometry.Surface
}

// NewScene builds and validates a scene
func NewScene(ambient spectrum.Emittance, camera Camera, surfaces []geometry.Surface) (*Scene, error) {
	s := &Scene{
		AmbientEmittance: ambient,
		Camera:           camera,
		Surfaces:         surfaces,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the whole scene description, wrapping any failure in
// ErrInvalidScene
func (s *Scene) Validate() error {
	if s.AmbientEmittance == nil {
		return fmt.Errorf("%w: ambient emittance is required", ErrInvalidScene)
	}
	if err := s.AmbientEmittance.Validate(); err != nil {
		return fmt.Errorf("%w: ambient emittance: %s", ErrInvalidScene, err)
	}
	if err := s.Camera.Validate(); err != nil {
		return fmt.Errorf("%w: camera: %s", ErrInvalidScene, err)
	}
	for i, surface := range s.Surfaces {
		if err := surface.Validate(); err != nil {
			return fmt.Errorf("%w: surface %d: %s", ErrInvalidScene, i, err)
		}
	}
	return nil
}

// Hit intersects the ray against every surface and returns the closest hit
// within (tMin, tMax). Brute-force iteration: the design carries no
// acceleration structure.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestT := tMax

	for _, surface := range s.Surfaces {
		if hit, ok := surface.Hit(ray, tMin, closestT, sampler); ok {
			closest = hit
			closestT = hit.T
		}
	}

	return closest, closest != nil
}
