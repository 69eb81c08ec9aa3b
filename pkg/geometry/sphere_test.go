package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

func TestSphere_LocalIntersect(t *testing.T) {
	tests := []struct {
		name     string
		origin   mgl64.Vec3
		dir      mgl64.Vec3
		expected []float64
	}{
		{"two points", core.Point(0, 0, -5), core.Vector(0, 0, 1), []float64{4, 6}},
		{"tangent", core.Point(0, 1, -5), core.Vector(0, 0, 1), []float64{5, 5}},
		{"miss", core.Point(0, 2, -5), core.Vector(0, 0, 1), nil},
		{"origin inside", core.Point(0, 0, 0), core.Vector(0, 0, 1), []float64{-1, 1}},
		{"sphere behind ray", core.Point(0, 0, 5), core.Vector(0, 0, 1), []float64{-6, -4}},
		{"zero direction", core.Point(0, 0, -5), core.Vector(0, 0, 0), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSphere()
			got := s.LocalIntersect(core.NewRay(tt.origin, tt.dir), nil)
			assertRoots(t, got, tt.expected, 1e-9)
		})
	}
}

func TestSphere_TransformedIntersect(t *testing.T) {
	ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))

	scaled := NewSphere()
	scaled.SetTransform(core.Scaling(2, 2, 2))
	assertRoots(t, intersectWorld(scaled, ray), []float64{3, 7}, 1e-9)

	translated := NewSphere()
	translated.SetTransform(core.Translation(5, 0, 0))
	assertRoots(t, intersectWorld(translated, ray), nil, 0)
}

func TestSphere_LocalIntersectAppends(t *testing.T) {
	s := NewSphere()
	dst := []float64{42}
	got := s.LocalIntersect(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1)), dst)
	assertRoots(t, got, []float64{42, 4, 6}, 1e-9)
}

func TestSphere_LocalNormalAt(t *testing.T) {
	third := math.Sqrt(3) / 3
	tests := []struct {
		point    mgl64.Vec3
		expected mgl64.Vec3
	}{
		{core.Point(1, 0, 0), core.Vector(1, 0, 0)},
		{core.Point(0, 1, 0), core.Vector(0, 1, 0)},
		{core.Point(0, 0, 1), core.Vector(0, 0, 1)},
		{core.Point(third, third, third), core.Vector(third, third, third)},
	}
	s := NewSphere()
	for _, tt := range tests {
		if got := NormalAt(s, tt.point); !got.ApproxEqualThreshold(tt.expected, 1e-9) {
			t.Errorf("Expected %v, got %v", tt.expected, got)
		}
	}
}

func TestNewGlassSphere(t *testing.T) {
	s := NewGlassSphere()
	m := s.Material()
	if m.Transparency != 1 || m.RefractiveIndex != 1.52 {
		t.Errorf("Expected glass material, got %+v", m)
	}
}
