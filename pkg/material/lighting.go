package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/go-gl/mathgl/mgl64"
)

// Lighting evaluates the Phong reflection model for a single point light.
// eye and normal must be normalized. A shadowed point keeps only its
// ambient term.
func Lighting(m *Material, objectInverse mgl64.Mat4, light lights.PointLight, point, eye, normal mgl64.Vec3, inShadow bool) core.Color {
	effective := m.ColorAt(objectInverse, point).MultiplyColor(light.Intensity)
	ambient := effective.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	sample := light.Sample(point)
	lightDotNormal := sample.Direction.Dot(normal)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface
		return ambient
	}

	diffuse := effective.Multiply(m.Diffuse * lightDotNormal)

	reflectV := core.Reflect(sample.Direction.Mul(-1), normal)
	reflectDotEye := reflectV.Dot(eye)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Multiply(m.Specular * factor)
	return ambient.Add(diffuse).Add(specular)
}
