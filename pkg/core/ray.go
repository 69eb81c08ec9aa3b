package core

import "github.com/go-gl/mathgl/mgl64"

// Ray represents a ray with an origin point and a direction vector
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction mgl64.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform returns the ray with its origin and direction multiplied by m.
// The direction is not renormalized, so t values stay comparable between
// world and object space.
func (r Ray) Transform(m mgl64.Mat4) Ray {
	return Ray{
		Origin:    TransformPoint(m, r.Origin),
		Direction: TransformVector(m, r.Direction),
	}
}
