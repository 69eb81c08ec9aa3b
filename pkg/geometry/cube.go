package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Cube is the axis-aligned cube spanning [-1, 1] on every object-space axis
type Cube struct {
	Base
}

// NewCube creates a new cube
func NewCube() *Cube {
	return &Cube{Base: newBase(KindCube)}
}

func (c *Cube) Kind() Kind { return KindCube }

func (c *Cube) Clone() Shape {
	cp := *c
	cp.material = c.material.Clone()
	return &cp
}

// LocalIntersect uses the slab test: the ray is inside the cube between the
// largest entry and the smallest exit over the three axes.
func (c *Cube) LocalIntersect(ray core.Ray, dst []float64) []float64 {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		lo, hi := checkAxis(ray.Origin[axis], ray.Direction[axis])
		tMin = math.Max(tMin, lo)
		tMax = math.Min(tMax, hi)
		if tMin > tMax {
			return dst
		}
	}
	return append(dst, tMin, tMax)
}

// checkAxis returns where the ray enters and leaves the slab [-1, 1]
func checkAxis(origin, direction float64) (float64, float64) {
	if math.Abs(direction) < core.Epsilon {
		// Parallel to the slab: inside for all t or never
		if origin < -1 || origin > 1 {
			return math.Inf(1), math.Inf(-1)
		}
		return math.Inf(-1), math.Inf(1)
	}

	tMin := (-1 - origin) / direction
	tMax := (1 - origin) / direction
	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

// LocalNormalAt picks the face whose axis has the largest magnitude
func (c *Cube) LocalNormalAt(point mgl64.Vec3) mgl64.Vec3 {
	ax, ay, az := math.Abs(point[0]), math.Abs(point[1]), math.Abs(point[2])
	maxC := math.Max(ax, math.Max(ay, az))

	switch maxC {
	case ax:
		return mgl64.Vec3{point[0], 0, 0}
	case ay:
		return mgl64.Vec3{0, point[1], 0}
	default:
		return mgl64.Vec3{0, 0, point[2]}
	}
}
