package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, other.Min.X),
			Y: math.Min(aabb.Min.Y, other.Min.Y),
			Z: math.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Max.X, other.Max.X),
			Y: math.Max(aabb.Max.Y, other.Max.Y),
			Z: math.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// HitInterval computes the entry/exit distances of a ray through the box
// using the slab method, clipped to [tMin, tMax]. Returns ok=false when the
// ray misses the box entirely within that range.
func (aabb AABB) HitInterval(ray Ray, tMin, tMax float64) (t0, t1 float64, ok bool) {
	t0, t1 = tMin, tMax

	for axis := 0; axis < 3; axis++ {
		var boxMin, boxMax, origin, direction float64

		switch axis {
		case 0:
			boxMin, boxMax = aabb.Min.X, aabb.Max.X
			origin, direction = ray.Origin.X, ray.Direction.X
		case 1:
			boxMin, boxMax = aabb.Min.Y, aabb.Max.Y
			origin, direction = ray.Origin.Y, ray.Direction.Y
		case 2:
			boxMin, boxMax = aabb.Min.Z, aabb.Max.Z
			origin, direction = ray.Origin.Z, ray.Direction.Z
		}

		// Rays parallel to a slab either stay inside it or never enter
		if math.Abs(direction) < 1e-12 {
			if origin < boxMin || origin > boxMax {
				return 0, 0, false
			}
			continue
		}

		invDirection := 1.0 / direction
		near := (boxMin - origin) * invDirection
		far := (boxMax - origin) * invDirection
		if near > far {
			near, far = far, near
		}

		t0 = math.Max(t0, near)
		t1 = math.Min(t1, far)
		if t0 > t1 {
			return 0, 0, false
		}
	}

	return t0, t1, true
}

// Hit tests if a ray intersects with this AABB within [tMin, tMax]
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	_, _, ok := aabb.HitInterval(ray, tMin, tMax)
	return ok
}
