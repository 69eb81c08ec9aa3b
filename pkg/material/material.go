package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Refractive indices of common media
const (
	IndexVacuum  = 1.0
	IndexAir     = 1.00029
	IndexWater   = 1.333
	IndexGlass   = 1.52
	IndexDiamond = 2.417
)

// Material describes how a surface responds to light under the Phong model,
// plus the coefficients that drive reflection and refraction.
type Material struct {
	Color   core.Color // Base color, ignored when Pattern is set
	Pattern Pattern    // Optional procedural pattern

	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64

	Reflective      float64 // 0 = matte, 1 = perfect mirror
	Transparency    float64 // 0 = opaque
	RefractiveIndex float64
}

// DefaultMaterial returns a white, opaque, non-reflective material
func DefaultMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		RefractiveIndex: IndexVacuum,
	}
}

// Clone returns a copy of m that does not share its pattern
func (m Material) Clone() Material {
	if m.Pattern != nil {
		m.Pattern = m.Pattern.Clone()
	}
	return m
}

// Glass returns a fully transparent material with the refractive index of glass
func Glass() Material {
	m := DefaultMaterial()
	m.Transparency = 1
	m.RefractiveIndex = IndexGlass
	return m
}

// ColorAt returns the surface color at a world-space point. objectInverse is
// the inverse transform of the shape owning the material.
func (m *Material) ColorAt(objectInverse mgl64.Mat4, worldPoint mgl64.Vec3) core.Color {
	if m.Pattern == nil {
		return m.Color
	}
	objectPoint := core.TransformPoint(objectInverse, worldPoint)
	patternPoint := core.TransformPoint(m.Pattern.Inverse(), objectPoint)
	return m.Pattern.At(patternPoint)
}
