package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Plane is the infinite xz plane through the object-space origin
type Plane struct {
	Base
}

// NewPlane creates a new plane
func NewPlane() *Plane {
	return &Plane{Base: newBase(KindPlane)}
}

func (p *Plane) Kind() Kind { return KindPlane }

func (p *Plane) Clone() Shape {
	c := *p
	c.material = p.material.Clone()
	return &c
}

// LocalIntersect returns the single crossing, or nothing for a ray parallel
// to (or lying in) the plane.
func (p *Plane) LocalIntersect(ray core.Ray, dst []float64) []float64 {
	if math.Abs(ray.Direction[1]) < core.Epsilon {
		return dst
	}
	return append(dst, -ray.Origin[1]/ray.Direction[1])
}

func (p *Plane) LocalNormalAt(point mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{0, 1, 0}
}
