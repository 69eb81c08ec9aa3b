package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Cylinder is a unit-radius cylinder around the object-space y axis,
// truncated to Minimum < y < Maximum and capped when Closed.
type Cylinder struct {
	Base
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite, open cylinder
func NewCylinder() *Cylinder {
	return &Cylinder{
		Base:    newBase(KindCylinder),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

// NewTruncatedCylinder creates a cylinder bounded to (minimum, maximum)
func NewTruncatedCylinder(minimum, maximum float64, closed bool) *Cylinder {
	c := NewCylinder()
	c.Minimum = minimum
	c.Maximum = maximum
	c.Closed = closed
	return c
}

func (c *Cylinder) Kind() Kind { return KindCylinder }

func (c *Cylinder) Clone() Shape {
	cp := *c
	cp.material = c.material.Clone()
	return &cp
}

func (c *Cylinder) LocalIntersect(ray core.Ray, dst []float64) []float64 {
	o, d := ray.Origin, ray.Direction

	a := d[0]*d[0] + d[2]*d[2]
	if math.Abs(a) >= core.Epsilon {
		b := 2 * (o[0]*d[0] + o[2]*d[2])
		cc := o[0]*o[0] + o[2]*o[2] - 1

		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			return dst
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if y := o[1] + t0*d[1]; c.Minimum < y && y < c.Maximum {
			dst = append(dst, t0)
		}
		if y := o[1] + t1*d[1]; c.Minimum < y && y < c.Maximum {
			dst = append(dst, t1)
		}
	}

	return c.intersectCaps(ray, dst)
}

func (c *Cylinder) intersectCaps(ray core.Ray, dst []float64) []float64 {
	if !c.Closed || math.Abs(ray.Direction[1]) < core.Epsilon {
		return dst
	}

	t := (c.Minimum - ray.Origin[1]) / ray.Direction[1]
	if checkCap(ray, t, 1) {
		dst = append(dst, t)
	}
	t = (c.Maximum - ray.Origin[1]) / ray.Direction[1]
	if checkCap(ray, t, 1) {
		dst = append(dst, t)
	}
	return dst
}

func (c *Cylinder) LocalNormalAt(point mgl64.Vec3) mgl64.Vec3 {
	dist := point[0]*point[0] + point[2]*point[2]

	if dist < 1 && point[1] >= c.Maximum-core.Epsilon {
		return mgl64.Vec3{0, 1, 0}
	}
	if dist < 1 && point[1] <= c.Minimum+core.Epsilon {
		return mgl64.Vec3{0, -1, 0}
	}
	return mgl64.Vec3{point[0], 0, point[2]}
}

// checkCap reports whether the ray at t lies within radius of the y axis.
// Rays grazing the rim count as hits.
func checkCap(ray core.Ray, t, radius float64) bool {
	x := ray.Origin[0] + t*ray.Direction[0]
	z := ray.Origin[2] + t*ray.Direction[2]
	return x*x+z*z <= radius*radius+core.Epsilon
}
