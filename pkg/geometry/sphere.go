package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/go-gl/mathgl/mgl64"
)

// Sphere is a unit sphere centered at the object-space origin
type Sphere struct {
	Base
}

// NewSphere creates a new unit sphere with the default material
func NewSphere() *Sphere {
	return &Sphere{Base: newBase(KindSphere)}
}

// NewGlassSphere creates a unit sphere with a glass material
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.SetMaterial(material.Glass())
	return s
}

func (s *Sphere) Kind() Kind { return KindSphere }

func (s *Sphere) Clone() Shape {
	c := *s
	c.material = s.material.Clone()
	return &c
}

// LocalIntersect solves |o + t*d|^2 = 1. A tangent ray yields two equal roots.
func (s *Sphere) LocalIntersect(ray core.Ray, dst []float64) []float64 {
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return dst
	}
	b := 2 * ray.Direction.Dot(ray.Origin)
	c := ray.Origin.Dot(ray.Origin) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return dst
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return append(dst, t1, t2)
}

func (s *Sphere) LocalNormalAt(point mgl64.Vec3) mgl64.Vec3 {
	return point
}
