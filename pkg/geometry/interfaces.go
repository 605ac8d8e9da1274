package geometry

import (
	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/material"
)

// Surface is a geometric shape bound to a material. Hit takes a sampler
// because some surfaces (participating media) intersect stochastically.
type Surface interface {
	// Hit tests if a ray intersects the surface within (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns the axis-aligned bounding box of the surface
	BoundingBox() core.AABB

	// Validate checks the surface's geometric and material parameters
	Validate() error
}
