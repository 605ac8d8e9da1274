package scene

import (
	"math"
	"testing"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

func TestCamera_Validate(t *testing.T) {
	tests := []struct {
		name      string
		camera    Camera
		expectErr bool
	}{
		{"default", DefaultCamera(), false},
		{
			"look_at equals location",
			Camera{Location: core.NewVec3(1, 2, 3), LookAt: core.NewVec3(1, 2, 3), Up: core.NewVec3(0, 1, 0), VerticalFOV: 45},
			true,
		},
		{
			"zero up",
			Camera{Location: core.NewVec3(0, 0, -1), LookAt: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 0, 0), VerticalFOV: 45},
			true,
		},
		{
			"up parallel to view axis",
			Camera{Location: core.NewVec3(0, 0, -1), LookAt: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 0, 2), VerticalFOV: 45},
			true,
		},
		{
			"fov too wide",
			Camera{Location: core.NewVec3(0, 0, -1), LookAt: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 1, 0), VerticalFOV: 180},
			true,
		},
		{
			"fov zero",
			Camera{Location: core.NewVec3(0, 0, -1), LookAt: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 1, 0), VerticalFOV: 0},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.camera.Validate()
			if (err != nil) != tt.expectErr {
				t.Errorf("expected error=%t, got %v", tt.expectErr, err)
			}
		})
	}
}

func TestViewport_CenterRayPointsAtLookAt(t *testing.T) {
	camera := Camera{
		Location:    core.NewVec3(0, 0, -5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VerticalFOV: 45,
	}
	viewport := NewViewport(camera, 4, 4)

	// Pixel (2, 2) with zero jitter is the exact image center
	ray := viewport.GetRay(2, 2, core.NewVec2(0, 0))

	if ray.Origin != camera.Location {
		t.Errorf("expected ray origin at the camera, got %v", ray.Origin)
	}
	expected := camera.LookAt.Subtract(camera.Location).Normalize()
	if ray.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("expected direction %v, got %v", expected, ray.Direction)
	}
}

func TestViewport_RaysAreNormalized(t *testing.T) {
	viewport := NewViewport(DefaultCamera(), 8, 6)

	for _, xy := range [][2]int{{0, 0}, {7, 5}, {3, 2}} {
		ray := viewport.GetRay(xy[0], xy[1], core.NewVec2(0.5, 0.5))
		if math.Abs(ray.Direction.Length()-1.0) > 1e-9 {
			t.Errorf("pixel %v: expected unit direction, got length %f", xy, ray.Direction.Length())
		}
	}
}

func TestViewport_PixelsDiverge(t *testing.T) {
	viewport := NewViewport(DefaultCamera(), 8, 6)

	left := viewport.GetRay(0, 3, core.NewVec2(0, 0))
	right := viewport.GetRay(7, 3, core.NewVec2(0, 0))
	if left.Direction.Subtract(right.Direction).Length() < 1e-6 {
		t.Error("expected different pixels to produce different rays")
	}
}

func TestViewport_BasisIsOrthogonal(t *testing.T) {
	camera := Camera{
		Location:    core.NewVec3(3, 2, -7),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		VerticalFOV: 60,
	}
	viewport := NewViewport(camera, 16, 9)

	if math.Abs(viewport.dx.Dot(viewport.dy)) > 1e-12 {
		t.Errorf("expected orthogonal basis, dot=%g", viewport.dx.Dot(viewport.dy))
	}
	axis := camera.LookAt.Subtract(camera.Location)
	if math.Abs(viewport.dx.Dot(axis)) > 1e-9 || math.Abs(viewport.dy.Dot(axis)) > 1e-9 {
		t.Error("expected basis perpendicular to the view axis")
	}
}
