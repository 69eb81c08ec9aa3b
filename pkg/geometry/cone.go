package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Cone is a double-napped cone x^2 + z^2 = y^2 around the object-space
// y axis, truncated to Minimum < y < Maximum and capped when Closed.
type Cone struct {
	Base
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite, open double cone
func NewCone() *Cone {
	return &Cone{
		Base:    newBase(KindCone),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

// NewTruncatedCone creates a cone bounded to (minimum, maximum)
func NewTruncatedCone(minimum, maximum float64, closed bool) *Cone {
	c := NewCone()
	c.Minimum = minimum
	c.Maximum = maximum
	c.Closed = closed
	return c
}

func (c *Cone) Kind() Kind { return KindCone }

func (c *Cone) Clone() Shape {
	cp := *c
	cp.material = c.material.Clone()
	return &cp
}

func (c *Cone) LocalIntersect(ray core.Ray, dst []float64) []float64 {
	o, d := ray.Origin, ray.Direction

	a := d[0]*d[0] - d[1]*d[1] + d[2]*d[2]
	b := 2 * (o[0]*d[0] - o[1]*d[1] + o[2]*d[2])
	cc := o[0]*o[0] - o[1]*o[1] + o[2]*o[2]

	switch {
	case math.Abs(a) < core.Epsilon:
		// Ray parallel to one of the halves: a single crossing of the other
		if math.Abs(b) >= core.Epsilon {
			t := -cc / (2 * b)
			if y := o[1] + t*d[1]; c.Minimum < y && y < c.Maximum {
				dst = append(dst, t)
			}
		}
	default:
		discriminant := b*b - 4*a*cc
		if discriminant >= 0 {
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
	}

	return c.intersectCaps(ray, dst)
}

// intersectCaps checks the end caps; the cap radius equals |y| at each end
func (c *Cone) intersectCaps(ray core.Ray, dst []float64) []float64 {
	if !c.Closed || math.Abs(ray.Direction[1]) < core.Epsilon {
		return dst
	}

	t := (c.Minimum - ray.Origin[1]) / ray.Direction[1]
	if checkCap(ray, t, math.Abs(c.Minimum)) {
		dst = append(dst, t)
	}
	t = (c.Maximum - ray.Origin[1]) / ray.Direction[1]
	if checkCap(ray, t, math.Abs(c.Maximum)) {
		dst = append(dst, t)
	}
	return dst
}

func (c *Cone) LocalNormalAt(point mgl64.Vec3) mgl64.Vec3 {
	dist := point[0]*point[0] + point[2]*point[2]

	if dist < c.Maximum*c.Maximum && point[1] >= c.Maximum-core.Epsilon {
		return mgl64.Vec3{0, 1, 0}
	}
	if dist < c.Minimum*c.Minimum && point[1] <= c.Minimum+core.Epsilon {
		return mgl64.Vec3{0, -1, 0}
	}

	y := math.Sqrt(dist)
	if point[1] > 0 {
		y = -y
	}
	return mgl64.Vec3{point[0], y, point[2]}
}
