package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/camera"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// NewDefaultScene creates the reference world: a lit unit sphere with a
// half-size sphere nested inside it.
func NewDefaultScene() *Builder {
	outer := geometry.NewSphere()
	outer.SetName("outer")
	m := outer.Material()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer.SetMaterial(m)

	inner := geometry.NewSphere()
	inner.SetName("inner")
	inner.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	return NewBuilder().
		AddShape(outer, inner).
		SetLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))
}

func defaultCamera(width, height int) *camera.Camera {
	c := camera.New(width, height, math.Pi/3)
	c.SetTransform(core.ViewTransform(core.Point(0, 1.5, -5), core.Point(0, 0, 0), core.Vector(0, 1, 0)))
	return c
}
