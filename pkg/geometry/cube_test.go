package geometry

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

func TestCube_LocalIntersect(t *testing.T) {
	tests := []struct {
		name     string
		origin   mgl64.Vec3
		dir      mgl64.Vec3
		expected []float64
	}{
		{"+x", core.Point(5, 0.5, 0), core.Vector(-1, 0, 0), []float64{4, 6}},
		{"-x", core.Point(-5, 0.5, 0), core.Vector(1, 0, 0), []float64{4, 6}},
		{"+y", core.Point(0.5, 5, 0), core.Vector(0, -1, 0), []float64{4, 6}},
		{"-y", core.Point(0.5, -5, 0), core.Vector(0, 1, 0), []float64{4, 6}},
		{"+z", core.Point(0.5, 0, 5), core.Vector(0, 0, -1), []float64{4, 6}},
		{"-z", core.Point(0.5, 0, -5), core.Vector(0, 0, 1), []float64{4, 6}},
		{"inside", core.Point(0, 0.5, 0), core.Vector(0, 0, 1), []float64{-1, 1}},
		{"miss diagonal x", core.Point(-2, 0, 0), core.Vector(0.2673, 0.5345, 0.8018), nil},
		{"miss diagonal y", core.Point(0, -2, 0), core.Vector(0.8018, 0.2673, 0.5345), nil},
		{"miss diagonal z", core.Point(0, 0, -2), core.Vector(0.5345, 0.8018, 0.2673), nil},
		{"miss parallel z", core.Point(2, 0, 2), core.Vector(0, 0, -1), nil},
		{"miss parallel y", core.Point(0, 2, 2), core.Vector(0, -1, 0), nil},
		{"miss parallel x", core.Point(2, 2, 0), core.Vector(-1, 0, 0), nil},
	}

	c := NewCube()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.LocalIntersect(core.NewRay(tt.origin, tt.dir), nil)
			assertRoots(t, got, tt.expected, 1e-9)
		})
	}
}

func TestCube_LocalNormalAt(t *testing.T) {
	tests := []struct {
		point    mgl64.Vec3
		expected mgl64.Vec3
	}{
		{core.Point(1, 0.5, -0.8), core.Vector(1, 0, 0)},
		{core.Point(-1, -0.2, 0.9), core.Vector(-1, 0, 0)},
		{core.Point(-0.4, 1, -0.1), core.Vector(0, 1, 0)},
		{core.Point(0.3, -1, -0.7), core.Vector(0, -1, 0)},
		{core.Point(-0.6, 0.3, 1), core.Vector(0, 0, 1)},
		{core.Point(0.4, 0.4, -1), core.Vector(0, 0, -1)},
		{core.Point(1, 1, 1), core.Vector(1, 0, 0)},
		{core.Point(-1, -1, -1), core.Vector(-1, 0, 0)},
	}

	c := NewCube()
	for _, tt := range tests {
		if got := c.LocalNormalAt(tt.point); got != tt.expected {
			t.Errorf("At %v: expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}
