package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/camera"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/go-gl/mathgl/mgl64"
)

// matte returns the default material recolored and with muted highlights
func matte(c core.Color) material.Material {
	m := material.DefaultMaterial()
	m.Color = c
	m.Diffuse = 0.7
	m.Specular = 0.3
	return m
}

func lookAt(width, height int, fov float64, from, to mgl64.Vec3) *camera.Camera {
	c := camera.New(width, height, fov)
	c.SetTransform(core.ViewTransform(from, to, core.Vector(0, 1, 0)))
	return c
}

func checkerFloor(a, b core.Color) *geometry.Plane {
	floor := geometry.NewPlane()
	floor.SetName("floor")
	m := material.DefaultMaterial()
	m.Pattern = material.NewChecker3D(a, b)
	m.Specular = 0
	floor.SetMaterial(m)
	return floor
}

// NewSpheresScene creates three matte spheres resting on a floor
func NewSpheresScene() *Builder {
	floor := geometry.NewPlane()
	floor.SetName("floor")
	fm := material.DefaultMaterial()
	fm.Color = core.NewColor(1, 0.9, 0.9)
	fm.Specular = 0
	floor.SetMaterial(fm)

	middle := geometry.NewSphere()
	middle.SetName("middle")
	middle.SetTransform(core.Translation(-0.5, 1, 0.5))
	middle.SetMaterial(matte(core.NewColor(0.1, 1, 0.5)))

	right := geometry.NewSphere()
	right.SetName("right")
	right.SetTransform(core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(1.5, 0.5, -0.5)))
	right.SetMaterial(matte(core.NewColor(0.5, 1, 0.1)))

	left := geometry.NewSphere()
	left.SetName("left")
	left.SetTransform(core.Chain(core.Scaling(0.33, 0.33, 0.33), core.Translation(-1.5, 0.33, -0.75)))
	left.SetMaterial(matte(core.NewColor(1, 0.8, 0.1)))

	return NewBuilder().
		AddShape(floor, middle, right, left).
		SetLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))
}

// NewMirrorsScene places a sphere between two parallel mirrors, which
// exercises the recursion bound.
func NewMirrorsScene() *Builder {
	floor := checkerFloor(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.2, 0.2, 0.2))

	mirror := material.DefaultMaterial()
	mirror.Color = core.NewColor(0.1, 0.1, 0.12)
	mirror.Diffuse = 0.2
	mirror.Specular = 1
	mirror.Shininess = 300
	mirror.Reflective = 0.9

	front := geometry.NewPlane()
	front.SetName("front-mirror")
	front.SetTransform(core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, 6)))
	front.SetMaterial(mirror)

	back := geometry.NewPlane()
	back.SetName("back-mirror")
	back.SetTransform(core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, -6)))
	back.SetMaterial(mirror)

	ball := geometry.NewSphere()
	ball.SetName("ball")
	ball.SetTransform(core.Translation(0, 1, 0))
	ball.SetMaterial(matte(core.NewColor(1, 0.2, 0.2)))

	return NewBuilder().
		AddShape(floor, front, back, ball).
		SetLight(lights.NewPointLight(core.Point(-4, 8, -3), core.White))
}

// NewGlassScene creates a hollow glass sphere in front of a colored sphere
// on a checkered floor.
func NewGlassScene() *Builder {
	floor := checkerFloor(core.NewColor(0.35, 0.35, 0.35), core.NewColor(0.65, 0.65, 0.65))

	glass := material.Glass()
	glass.Color = core.NewColor(0, 0, 0.02)
	glass.Diffuse = 0.1
	glass.Specular = 1
	glass.Shininess = 300
	glass.Reflective = 0.9
	glass.Transparency = 0.9

	outer := geometry.NewSphere()
	outer.SetName("glass-ball")
	outer.SetTransform(core.Translation(0, 1, 0))
	outer.SetMaterial(glass)

	air := glass
	air.RefractiveIndex = material.IndexAir

	bubble := geometry.NewSphere()
	bubble.SetName("air-bubble")
	bubble.SetTransform(core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(0, 1, 0)))
	bubble.SetMaterial(air)
	bubble.SetCastsShadow(false)

	behind := geometry.NewSphere()
	behind.SetName("behind")
	behind.SetTransform(core.Translation(1.5, 1, 4))
	behind.SetMaterial(matte(core.NewColor(0.2, 0.4, 1)))

	return NewBuilder().
		AddShape(floor, outer, bubble, behind).
		SetLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))
}

// NewShapesScene shows every primitive: cube, closed cylinder and cone on a
// ring-patterned floor.
func NewShapesScene() *Builder {
	floor := geometry.NewPlane()
	floor.SetName("floor")
	ring := material.NewRing(core.NewColor(0.9, 0.85, 0.7), core.NewColor(0.5, 0.45, 0.35))
	ring.SetTransform(core.Scaling(0.5, 0.5, 0.5))
	fm := material.DefaultMaterial()
	fm.Pattern = ring
	fm.Specular = 0
	fm.Reflective = 0.1
	floor.SetMaterial(fm)

	cube := geometry.NewCube()
	cube.SetName("cube")
	cube.SetTransform(core.Chain(core.Scaling(0.6, 0.6, 0.6), core.RotationY(math.Pi/5), core.Translation(-2, 0.6, 0.5)))
	cube.SetMaterial(matte(core.NewColor(0.8, 0.3, 0.2)))

	cylinder := geometry.NewTruncatedCylinder(0, 1.5, true)
	cylinder.SetName("cylinder")
	cylinder.SetTransform(core.Chain(core.Scaling(0.6, 1, 0.6), core.Translation(0, 0, 1)))
	cm := matte(core.NewColor(0.2, 0.5, 0.9))
	cm.Reflective = 0.3
	cylinder.SetMaterial(cm)

	cone := geometry.NewTruncatedCone(-1, 0, true)
	cone.SetName("cone")
	cone.SetTransform(core.Chain(core.Scaling(0.7, 1.4, 0.7), core.Translation(2, 1.4, 0.5)))
	cone.SetMaterial(matte(core.NewColor(0.3, 0.8, 0.3)))

	return NewBuilder().
		AddShape(floor, cube, cylinder, cone).
		SetLight(lights.NewPointLight(core.Point(-8, 10, -10), core.NewColor(0.95, 0.95, 0.9)))
}

// NewPatternsScene shows each procedural pattern on its own sphere
func NewPatternsScene() *Builder {
	floor := checkerFloor(core.White, core.NewColor(0.1, 0.1, 0.1))

	stripe := material.NewStripe(core.NewColor(0.9, 0.2, 0.2), core.White)
	stripe.SetTransform(core.Chain(core.Scaling(0.2, 0.2, 0.2), core.RotationZ(math.Pi/4)))

	gradient := material.NewGradient(core.NewColor(0.1, 0.3, 1), core.NewColor(1, 0.9, 0.1))
	gradient.SetTransform(core.Chain(core.Translation(1, 0, 0), core.Scaling(2, 1, 1)))

	ring := material.NewRing(core.NewColor(0.2, 0.7, 0.3), core.NewColor(0.95, 0.95, 0.8))
	ring.SetTransform(core.Chain(core.Scaling(0.15, 0.15, 0.15), core.RotationX(math.Pi/2)))

	patterns := []material.Pattern{stripe, gradient, ring}
	builder := NewBuilder().AddShape(floor)
	for i, p := range patterns {
		s := geometry.NewSphere()
		s.SetTransform(core.Chain(core.Scaling(0.8, 0.8, 0.8), core.Translation(float64(i-1)*2, 0.8, 0)))
		m := material.DefaultMaterial()
		m.Pattern = p
		m.Specular = 0.4
		s.SetMaterial(m)
		builder.AddShape(s)
	}

	return builder.SetLight(lights.NewPointLight(core.Point(-6, 10, -10), core.White))
}
