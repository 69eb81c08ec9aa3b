package camera

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

func TestCamera_PixelSize(t *testing.T) {
	tests := []struct {
		name     string
		hsize    int
		vsize    int
		expected float64
	}{
		{"horizontal canvas", 200, 125, 0.01},
		{"vertical canvas", 125, 200, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.hsize, tt.vsize, math.Pi/2)
			if math.Abs(c.PixelSize()-tt.expected) > 1e-9 {
				t.Errorf("Expected pixel size %v, got %v", tt.expected, c.PixelSize())
			}
		})
	}
}

func TestCamera_RayForPixel(t *testing.T) {
	half := math.Sqrt2 / 2
	transformed := New(201, 101, math.Pi/2)
	transformed.SetTransform(core.RotationY(math.Pi / 4).Mul4(core.Translation(0, -2, 5)))

	tests := []struct {
		name      string
		camera    *Camera
		x, y      int
		origin    mgl64.Vec3
		direction mgl64.Vec3
	}{
		{"center of canvas", New(201, 101, math.Pi/2), 100, 50, core.Point(0, 0, 0), core.Vector(0, 0, -1)},
		{"corner of canvas", New(201, 101, math.Pi/2), 0, 0, core.Point(0, 0, 0), core.Vector(0.66519, 0.33259, -0.66851)},
		{"transformed camera", transformed, 100, 50, core.Point(0, 2, -5), core.Vector(half, 0, -half)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.camera.RayForPixel(tt.x, tt.y)
			if !r.Origin.ApproxEqualThreshold(tt.origin, 1e-5) {
				t.Errorf("Expected origin %v, got %v", tt.origin, r.Origin)
			}
			if !r.Direction.ApproxEqualThreshold(tt.direction, 1e-5) {
				t.Errorf("Expected direction %v, got %v", tt.direction, r.Direction)
			}
		})
	}
}

func TestCamera_RayForPixelAntialiased(t *testing.T) {
	c := New(201, 101, math.Pi/2)

	// Shifting a full pixel right reaches the center of the next pixel
	shifted := c.RayForPixelAntialiased(99, 50, c.PixelSize(), 0)
	center := c.RayForPixel(100, 50)
	if !shifted.Direction.ApproxEqualThreshold(center.Direction, 1e-9) {
		t.Errorf("Expected %v, got %v", center.Direction, shifted.Direction)
	}

	unshifted := c.RayForPixelAntialiased(10, 20, 0, 0)
	if unshifted != c.RayForPixel(10, 20) {
		t.Errorf("Expected zero offset to match RayForPixel")
	}
}

func TestCamera_SetAntialiasing(t *testing.T) {
	c := New(10, 10, math.Pi/3)
	for _, n := range []int{0, 2, 3} {
		if err := c.SetAntialiasing(n); err != nil {
			t.Errorf("Expected %d to be accepted, got %v", n, err)
		}
		if c.Antialiasing() != n {
			t.Errorf("Expected antialiasing %d, got %d", n, c.Antialiasing())
		}
	}
	for _, n := range []int{1, 4, -1} {
		if err := c.SetAntialiasing(n); err == nil {
			t.Errorf("Expected %d to be rejected", n)
		}
	}
}
