package geometry

import (
	"fmt"
	"sync/atomic"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/go-gl/mathgl/mgl64"
)

var nextShapeID atomic.Uint64

// Base holds the state shared by every shape variant: identity, transform
// with its cached inverse and inverse-transpose, material and shadow flag.
type Base struct {
	id               uint64
	name             string
	transform        mgl64.Mat4
	inverse          mgl64.Mat4
	inverseTranspose mgl64.Mat4
	material         material.Material
	castsShadow      bool
}

func newBase(kind Kind) Base {
	id := nextShapeID.Add(1)
	return Base{
		id:               id,
		name:             fmt.Sprintf("%s-%d", kind, id),
		transform:        mgl64.Ident4(),
		inverse:          mgl64.Ident4(),
		inverseTranspose: mgl64.Ident4(),
		material:         material.DefaultMaterial(),
		castsShadow:      true,
	}
}

func (b *Base) ID() uint64                      { return b.id }
func (b *Base) Name() string                    { return b.name }
func (b *Base) Transform() mgl64.Mat4           { return b.transform }
func (b *Base) Inverse() mgl64.Mat4             { return b.inverse }
func (b *Base) InverseTranspose() mgl64.Mat4    { return b.inverseTranspose }
func (b *Base) Material() material.Material     { return b.material }
func (b *Base) CastsShadow() bool               { return b.castsShadow }
func (b *Base) SetName(name string)             { b.name = name }
func (b *Base) SetMaterial(m material.Material) { b.material = m }
func (b *Base) SetCastsShadow(casts bool)       { b.castsShadow = casts }

// SetTransform sets the object-to-world transform and refreshes the cached
// inverse and inverse-transpose.
func (b *Base) SetTransform(m mgl64.Mat4) {
	b.transform = m
	b.inverse = m.Inv()
	b.inverseTranspose = b.inverse.Transpose()
}

// WorldToObject transforms a world-space ray into the shape's object space
func WorldToObject(s Shape, ray core.Ray) core.Ray {
	return ray.Transform(s.Inverse())
}

// NormalAt returns the normalized world-space normal at a world-space point
// on the surface of s.
func NormalAt(s Shape, worldPoint mgl64.Vec3) mgl64.Vec3 {
	objectPoint := core.TransformPoint(s.Inverse(), worldPoint)
	objectNormal := s.LocalNormalAt(objectPoint)
	worldNormal := core.TransformVector(s.InverseTranspose(), objectNormal)
	return worldNormal.Normalize()
}
