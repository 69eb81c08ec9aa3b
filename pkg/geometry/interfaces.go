package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/go-gl/mathgl/mgl64"
)

// Kind identifies a shape variant
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
	KindCube
	KindCylinder
	KindCone
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	case KindCube:
		return "cube"
	case KindCylinder:
		return "cylinder"
	case KindCone:
		return "cone"
	default:
		return "unknown"
	}
}

// Shape interface for objects that can be intersected by rays.
// The variants are Sphere, Plane, Cube, Cylinder and Cone.
type Shape interface {
	ID() uint64
	Name() string
	Kind() Kind

	// Transform maps object space to world space
	Transform() mgl64.Mat4
	Inverse() mgl64.Mat4
	InverseTranspose() mgl64.Mat4

	Material() material.Material
	CastsShadow() bool

	// LocalIntersect appends the t values where an object-space ray crosses
	// the surface to dst and returns the extended slice.
	LocalIntersect(ray core.Ray, dst []float64) []float64
	// LocalNormalAt returns the outward object-space normal at a surface point
	LocalNormalAt(point mgl64.Vec3) mgl64.Vec3

	// Clone returns an independent copy sharing the same identity. The
	// material, including its pattern, is copied as well.
	Clone() Shape
}
