// Package shading implements the recursive Whitted shading pipeline: Phong
// local illumination with shadow rays, plus reflected and refracted
// contributions up to a depth bound.
package shading

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/intersect"
	"github.com/go-gl/mathgl/mgl64"
)

// Computations holds everything the shader needs about a single hit
type Computations struct {
	T     float64
	Shape geometry.Shape

	Point   mgl64.Vec3
	Eye     mgl64.Vec3 // Unit vector back toward the ray origin
	Normal  mgl64.Vec3 // Unit normal, flipped to face the eye
	Reflect mgl64.Vec3 // Incoming direction mirrored about Normal
	Inside  bool       // The hit is on the inside of the surface

	OverPoint  mgl64.Vec3 // Point nudged along Normal, origin for shadow and reflection rays
	UnderPoint mgl64.Vec3 // Point nudged against Normal, origin for refraction rays

	N1 float64 // Refractive index of the medium being exited
	N2 float64 // Refractive index of the medium being entered
}

// maxNesting is the container depth tracked without allocating
const maxNesting = 16

// PrepareComputations derives the shading state for hit on ray. list is the
// full hit list hit came from; it supplies the refractive indices on either
// side of the surface. A nil list treats both sides as vacuum.
func PrepareComputations(hit intersect.Hit, ray core.Ray, list *intersect.HitList) Computations {
	comps := Computations{
		T:     hit.T,
		Shape: hit.Shape,
		Point: ray.At(hit.T),
		Eye:   ray.Direction.Mul(-1).Normalize(),
		N1:    1,
		N2:    1,
	}

	comps.Normal = geometry.NormalAt(hit.Shape, comps.Point)
	if comps.Normal.Dot(comps.Eye) < 0 {
		comps.Inside = true
		comps.Normal = comps.Normal.Mul(-1)
	}

	comps.Reflect = core.Reflect(ray.Direction.Normalize(), comps.Normal)
	offset := comps.Normal.Mul(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Sub(offset)

	if list != nil {
		comps.N1, comps.N2 = refractiveIndices(hit, list)
	}
	return comps
}

// refractiveIndices walks the hit list tracking which shapes the ray is
// inside of, and returns the indices just before and after hit.
func refractiveIndices(hit intersect.Hit, list *intersect.HitList) (n1, n2 float64) {
	var buf [maxNesting]geometry.Shape
	containers := buf[:0]
	n1, n2 = 1, 1

	for _, h := range list.Hits() {
		isHit := h.T == hit.T && h.Shape == hit.Shape

		if isHit && len(containers) > 0 {
			n1 = containers[len(containers)-1].Material().RefractiveIndex
		}

		if i := indexOf(containers, h.Shape); i >= 0 {
			containers = append(containers[:i], containers[i+1:]...)
		} else {
			containers = append(containers, h.Shape)
		}

		if isHit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}
	return n1, n2
}

func indexOf(shapes []geometry.Shape, s geometry.Shape) int {
	for i, c := range shapes {
		if c == s {
			return i
		}
	}
	return -1
}
