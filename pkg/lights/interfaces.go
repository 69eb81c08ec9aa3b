package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// LightSample describes the light as seen from a shading point
type LightSample struct {
	Direction mgl64.Vec3 // Normalized direction from shading point to light
	Distance  float64    // Distance to light
	Intensity core.Color // Light color/intensity
}
