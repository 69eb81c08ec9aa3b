package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene is an immutable snapshot of shapes and the point light that
// illuminates them. It is produced by Builder.Build and may be shared by
// any number of render goroutines.
type Scene struct {
	shapes []geometry.Shape
	light  lights.PointLight
}

// Shapes returns the scene's shapes. The slice and the shapes are shared
// between renderers and must not be modified.
func (s *Scene) Shapes() []geometry.Shape {
	return s.shapes[:len(s.shapes):len(s.shapes)]
}

// Light returns the scene's point light
func (s *Scene) Light() lights.PointLight {
	return s.light
}

// Len returns the number of shapes in the scene
func (s *Scene) Len() int {
	return len(s.shapes)
}

// Builder accumulates shapes and a light during scene setup. A Builder is
// not safe for concurrent use.
type Builder struct {
	shapes []geometry.Shape
	light  lights.PointLight
}

// NewBuilder creates an empty builder. Until SetLight is called the light is
// black and sits at the origin, so an unlit scene renders ambient-free black.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddShape appends shapes to the scene
func (b *Builder) AddShape(shapes ...geometry.Shape) *Builder {
	b.shapes = append(b.shapes, shapes...)
	return b
}

// SetLight sets the scene's single point light
func (b *Builder) SetLight(light lights.PointLight) *Builder {
	b.light = light
	return b
}

// Light returns the light configured so far
func (b *Builder) Light() lights.PointLight {
	return b.light
}

// Shapes returns the shapes added so far. They may be modified freely until
// Build is called; later changes do not affect scenes already built.
func (b *Builder) Shapes() []geometry.Shape {
	return b.shapes
}

// Build snapshots the builder into an immutable Scene. Shapes are cloned, so
// the builder can keep being edited without affecting the result.
func (b *Builder) Build() *Scene {
	shapes := make([]geometry.Shape, len(b.shapes))
	for i, s := range b.shapes {
		shapes[i] = s.Clone()
	}
	return &Scene{shapes: shapes, light: b.light}
}
