package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// PointLight is an infinitely small light source with no falloff
type PointLight struct {
	Position  mgl64.Vec3
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position mgl64.Vec3, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Sample returns the direction and distance from point to the light
func (l PointLight) Sample(point mgl64.Vec3) LightSample {
	toLight := l.Position.Sub(point)
	distance := toLight.Len()

	if distance == 0 {
		// Shading point sits on the light; no meaningful direction
		return LightSample{
			Direction: mgl64.Vec3{0, 1, 0},
			Distance:  0,
			Intensity: l.Intensity,
		}
	}

	return LightSample{
		Direction: toLight.Mul(1 / distance),
		Distance:  distance,
		Intensity: l.Intensity,
	}
}
