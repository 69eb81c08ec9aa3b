package shading

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/intersect"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultMaxDepth bounds reflection and refraction recursion
const DefaultMaxDepth = 10

// Config controls the shading pipeline
type Config struct {
	MaxDepth        int // Remaining depth given to primary rays
	HitListCapacity int // Capacity of every hit list; exceeding it panics
}

// DefaultConfig returns the default shading configuration
func DefaultConfig() Config {
	return Config{
		MaxDepth:        DefaultMaxDepth,
		HitListCapacity: intersect.DefaultCapacity,
	}
}

// RayCounts tallies the rays a Tracer has cast
type RayCounts struct {
	Traced uint64 // Calls to ColorAt: primary, reflected and refracted rays
	Shadow uint64 // Shadow rays
}

// Add returns the sum of two tallies
func (c RayCounts) Add(other RayCounts) RayCounts {
	return RayCounts{Traced: c.Traced + other.Traced, Shadow: c.Shadow + other.Shadow}
}

// Tracer evaluates the shading pipeline against one scene. It owns one hit
// list per recursion level plus one for shadow rays, so tracing performs no
// per-ray hit list allocation. A Tracer is not safe for concurrent use; give
// each worker its own.
type Tracer struct {
	scene  *scene.Scene
	config Config
	lists  []*intersect.HitList // indexed by remaining depth
	shadow *intersect.HitList
	counts RayCounts
}

// NewTracer creates a tracer for sc. A negative MaxDepth takes the default;
// 0 disables reflection and refraction. A non-positive capacity takes the
// default.
func NewTracer(sc *scene.Scene, config Config) *Tracer {
	if config.MaxDepth < 0 {
		config.MaxDepth = DefaultMaxDepth
	}
	if config.HitListCapacity <= 0 {
		config.HitListCapacity = intersect.DefaultCapacity
	}

	lists := make([]*intersect.HitList, config.MaxDepth+1)
	for i := range lists {
		lists[i] = intersect.NewHitList(config.HitListCapacity)
	}

	return &Tracer{
		scene:  sc,
		config: config,
		lists:  lists,
		shadow: intersect.NewHitList(config.HitListCapacity),
	}
}

// MaxDepth returns the depth given to primary rays
func (t *Tracer) MaxDepth() int { return t.config.MaxDepth }

// Counts returns the rays cast so far
func (t *Tracer) Counts() RayCounts { return t.counts }

// listFor returns the hit list reserved for a recursion level
func (t *Tracer) listFor(remaining int) *intersect.HitList {
	if remaining < 0 {
		remaining = 0
	}
	for remaining >= len(t.lists) {
		t.lists = append(t.lists, intersect.NewHitList(t.config.HitListCapacity))
	}
	return t.lists[remaining]
}

// ColorAt returns the color seen along ray, recursing at most remaining
// levels for reflection and refraction. A miss is black.
func (t *Tracer) ColorAt(ray core.Ray, remaining int) core.Color {
	t.counts.Traced++

	list := t.listFor(remaining)
	intersect.IntersectInto(t.scene, ray, list)

	hit, ok := list.Hit()
	if !ok {
		return core.Black
	}

	comps := PrepareComputations(hit, ray, list)
	return t.ShadeHit(&comps, remaining)
}

// ShadeHit combines local illumination with the reflected and refracted
// contributions. The sum is not clamped.
func (t *Tracer) ShadeHit(comps *Computations, remaining int) core.Color {
	m := comps.Shape.Material()
	shadowed := t.IsShadowed(comps.OverPoint)

	surface := material.Lighting(&m, comps.Shape.Inverse(), t.scene.Light(),
		comps.OverPoint, comps.Eye, comps.Normal, shadowed)

	reflected := t.ReflectedColor(comps, remaining)
	refracted := t.RefractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// IsShadowed reports whether a shadow-casting shape lies strictly between
// point and the light.
func (t *Tracer) IsShadowed(point mgl64.Vec3) bool {
	sample := t.scene.Light().Sample(point)
	if sample.Distance == 0 {
		return false
	}

	t.counts.Shadow++
	intersect.IntersectInto(t.scene, core.NewRay(point, sample.Direction), t.shadow)

	for _, h := range t.shadow.Hits() {
		if h.T >= sample.Distance {
			break
		}
		if h.T > 0 && h.Shape.CastsShadow() {
			return true
		}
	}
	return false
}

// ReflectedColor returns the contribution of the mirror direction, scaled
// by the material's reflectivity.
func (t *Tracer) ReflectedColor(comps *Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}
	reflective := comps.Shape.Material().Reflective
	if reflective == 0 {
		return core.Black
	}

	ray := core.NewRay(comps.OverPoint, comps.Reflect)
	return t.ColorAt(ray, remaining-1).Multiply(reflective)
}

// RefractedColor returns the contribution transmitted through the surface
// per Snell's law, scaled by the material's transparency. Total internal
// reflection contributes nothing.
func (t *Tracer) RefractedColor(comps *Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}
	transparency := comps.Shape.Material().Transparency
	if transparency == 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.Normal.Mul(nRatio*cosI - cosT).Sub(comps.Eye.Mul(nRatio))

	ray := core.NewRay(comps.UnderPoint, direction)
	return t.ColorAt(ray, remaining-1).Multiply(transparency)
}

// ColorAt traces a single ray against sc with a fresh default tracer
func ColorAt(sc *scene.Scene, ray core.Ray, remaining int) core.Color {
	return NewTracer(sc, DefaultConfig()).ColorAt(ray, remaining)
}
