package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

func TestCone_LocalIntersect(t *testing.T) {
	tests := []struct {
		name     string
		origin   mgl64.Vec3
		dir      mgl64.Vec3
		expected []float64
	}{
		{"through apex", core.Point(0, 0, -5), core.Vector(0, 0, 1), []float64{5, 5}},
		{"both nappes", core.Point(1, 1, -5), core.Vector(-0.5, -1, 1).Normalize(), []float64{4.55006, 49.44994}},
		{"parallel to one half", core.Point(0, 0, -1), core.Vector(0, 1, 1).Normalize(), []float64{0.35355}},
	}

	c := NewCone()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.LocalIntersect(core.NewRay(tt.origin, tt.dir), nil)
			assertRoots(t, got, tt.expected, 1e-4)
		})
	}
}

func TestCone_ClosedCaps(t *testing.T) {
	tests := []struct {
		name   string
		origin mgl64.Vec3
		dir    mgl64.Vec3
		count  int
	}{
		{"parallel to axis outside", core.Point(0, 0, -5), core.Vector(0, 1, 0), 0},
		{"cap and side", core.Point(0, 0, -0.25), core.Vector(0, 1, 1).Normalize(), 2},
		{"both caps and sides", core.Point(0, 0, -0.25), core.Vector(0, 1, 0), 4},
	}

	c := NewTruncatedCone(-0.5, 0.5, true)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.LocalIntersect(core.NewRay(tt.origin, tt.dir), nil)
			if len(got) != tt.count {
				t.Errorf("Expected %d roots, got %v", tt.count, got)
			}
		})
	}
}

func TestCone_LocalNormalAt(t *testing.T) {
	tests := []struct {
		point    mgl64.Vec3
		expected mgl64.Vec3
	}{
		{core.Point(0, 0, 0), core.Vector(0, 0, 0)},
		{core.Point(1, 1, 1), core.Vector(1, -math.Sqrt2, 1)},
		{core.Point(-1, -1, 0), core.Vector(-1, 1, 0)},
	}

	c := NewCone()
	for _, tt := range tests {
		if got := c.LocalNormalAt(tt.point); !got.ApproxEqualThreshold(tt.expected, 1e-9) {
			t.Errorf("At %v: expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}

func TestCone_ClosedNormals(t *testing.T) {
	c := NewTruncatedCone(-1, 1, true)
	if got := c.LocalNormalAt(core.Point(0.5, 1, 0)); got != core.Vector(0, 1, 0) {
		t.Errorf("Expected top cap normal, got %v", got)
	}
	if got := c.LocalNormalAt(core.Point(0, -1, 0.5)); got != core.Vector(0, -1, 0) {
		t.Errorf("Expected bottom cap normal, got %v", got)
	}
}
