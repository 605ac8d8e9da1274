package scene

import (
	"errors"
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// DefaultVerticalFOV is used when the scene document omits the field
const DefaultVerticalFOV = 45.0

// Camera describes the viewpoint: where it is, what it looks at, which way
// is up, and the vertical field of view in degrees.
type Camera struct {
	Location    core.Vec3
	LookAt      core.Vec3
	Up          core.Vec3
	VerticalFOV float64
}

// DefaultCamera returns the camera used when the scene document omits one
func DefaultCamera() Camera {
	return Camera{
		Location:    core.NewVec3(0, 0, -1),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VerticalFOV: DefaultVerticalFOV,
	}
}

// Validate checks the camera's parameters
func (c Camera) Validate() error {
	axis := c.LookAt.Subtract(c.Location)
	if axis.LengthSquared() == 0 {
		return errors.New("look_at must differ from location")
	}
	if c.Up.LengthSquared() == 0 {
		return errors.New("up must be non-zero")
	}
	if axis.Cross(c.Up).LengthSquared() < 1e-24 {
		return errors.New("up must not be parallel to the view axis")
	}
	if c.VerticalFOV <= 0 || c.VerticalFOV >= 180 {
		return errors.New("vertical_fov must be within (0, 180) degrees")
	}
	return nil
}

// Viewport maps image pixel coordinates to world-space points on the image
// plane through the camera's look-at point. The basis vectors are computed
// once at construction.
type Viewport struct {
	camera     Camera
	dx, dy     core.Vec3 // world-space extent of one pixel
	halfWidth  float64
	halfHeight float64
}

// NewViewport derives the viewport basis for the given output resolution
func NewViewport(camera Camera, imageWidth, imageHeight int) *Viewport {
	principal := camera.Location.Subtract(camera.LookAt)
	focalLength := principal.Length()
	principal = principal.Multiply(1.0 / focalLength)

	dx := principal.Cross(camera.Up).Normalize()
	// dx rotated a quarter turn about the principal axis
	dy := principal.Cross(dx)

	// Scale the basis so the viewport spans the vertical field of view
	viewportHeight := 2.0 * focalLength * math.Sin(camera.VerticalFOV/2.0*math.Pi/180.0)
	scale := viewportHeight / float64(imageHeight)

	return &Viewport{
		camera:     camera,
		dx:         dx.Multiply(scale),
		dy:         dy.Multiply(scale),
		halfWidth:  float64(imageWidth) / 2.0,
		halfHeight: float64(imageHeight) / 2.0,
	}
}

// GetRay casts a normalized ray from the camera through pixel (x, y) with a
// subpixel jitter in [0, 1)²
func (v *Viewport) GetRay(x, y int, subpixel core.Vec2) core.Ray {
	offset := v.dx.Multiply(float64(x) - v.halfWidth + subpixel.X).
		Add(v.dy.Multiply(float64(y) - v.halfHeight + subpixel.Y))
	target := v.camera.LookAt.Add(offset)
	return core.NewRayThrough(v.camera.Location, target)
}
