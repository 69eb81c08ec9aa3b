package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// PatternKind identifies a procedural pattern variant
type PatternKind int

const (
	PatternNone PatternKind = iota
	PatternStripe
	PatternGradient
	PatternRing
	PatternChecker3D
	PatternTest
)

func (k PatternKind) String() string {
	switch k {
	case PatternNone:
		return "none"
	case PatternStripe:
		return "stripe"
	case PatternGradient:
		return "gradient"
	case PatternRing:
		return "ring"
	case PatternChecker3D:
		return "checker3d"
	case PatternTest:
		return "test"
	default:
		return "unknown"
	}
}

// Pattern is a procedural color function evaluated in pattern space
type Pattern interface {
	Kind() PatternKind
	// At returns the color at a point already in pattern space
	At(point mgl64.Vec3) core.Color
	Transform() mgl64.Mat4
	Inverse() mgl64.Mat4
	// Colors returns the two colors the pattern alternates or blends between
	Colors() (a, b core.Color)
	// Clone returns an independent copy of the pattern
	Clone() Pattern
}

// patternBase holds the transform shared by all patterns
type patternBase struct {
	transform mgl64.Mat4
	inverse   mgl64.Mat4
}

func newPatternBase() patternBase {
	return patternBase{transform: mgl64.Ident4(), inverse: mgl64.Ident4()}
}

func (p *patternBase) Transform() mgl64.Mat4 { return p.transform }
func (p *patternBase) Inverse() mgl64.Mat4   { return p.inverse }

// SetTransform sets the pattern-to-object transform
func (p *patternBase) SetTransform(m mgl64.Mat4) {
	p.transform = m
	p.inverse = m.Inv()
}

// Stripe alternates between A and B on unit intervals of x
type Stripe struct {
	patternBase
	A, B core.Color
}

// NewStripe creates a stripe pattern
func NewStripe(a, b core.Color) *Stripe {
	return &Stripe{patternBase: newPatternBase(), A: a, B: b}
}

func (s *Stripe) Clone() Pattern {
	cp := *s
	return &cp
}

func (s *Stripe) Kind() PatternKind                { return PatternStripe }
func (s *Stripe) Colors() (core.Color, core.Color) { return s.A, s.B }

func (s *Stripe) At(p mgl64.Vec3) core.Color {
	if isEven(math.Floor(p[0])) {
		return s.A
	}
	return s.B
}

// Gradient linearly blends from A to B across each unit interval of x
type Gradient struct {
	patternBase
	A, B core.Color
}

// NewGradient creates a gradient pattern
func NewGradient(a, b core.Color) *Gradient {
	return &Gradient{patternBase: newPatternBase(), A: a, B: b}
}

func (g *Gradient) Clone() Pattern {
	cp := *g
	return &cp
}

func (g *Gradient) Kind() PatternKind                { return PatternGradient }
func (g *Gradient) Colors() (core.Color, core.Color) { return g.A, g.B }

func (g *Gradient) At(p mgl64.Vec3) core.Color {
	fraction := p[0] - math.Floor(p[0])
	return g.A.Add(g.B.Subtract(g.A).Multiply(fraction))
}

// Ring alternates between A and B on concentric rings in the xz plane
type Ring struct {
	patternBase
	A, B core.Color
}

// NewRing creates a ring pattern
func NewRing(a, b core.Color) *Ring {
	return &Ring{patternBase: newPatternBase(), A: a, B: b}
}

func (r *Ring) Clone() Pattern {
	cp := *r
	return &cp
}

func (r *Ring) Kind() PatternKind                { return PatternRing }
func (r *Ring) Colors() (core.Color, core.Color) { return r.A, r.B }

func (r *Ring) At(p mgl64.Vec3) core.Color {
	if isEven(math.Floor(math.Hypot(p[0], p[2]))) {
		return r.A
	}
	return r.B
}

// Checker3D alternates between A and B on unit cubes
type Checker3D struct {
	patternBase
	A, B core.Color
}

// NewChecker3D creates a 3D checker pattern
func NewChecker3D(a, b core.Color) *Checker3D {
	return &Checker3D{patternBase: newPatternBase(), A: a, B: b}
}

func (c *Checker3D) Clone() Pattern {
	cp := *c
	return &cp
}

func (c *Checker3D) Kind() PatternKind                { return PatternChecker3D }
func (c *Checker3D) Colors() (core.Color, core.Color) { return c.A, c.B }

func (c *Checker3D) At(p mgl64.Vec3) core.Color {
	if isEven(math.Floor(p[0]) + math.Floor(p[1]) + math.Floor(p[2])) {
		return c.A
	}
	return c.B
}

// TestPattern maps the pattern-space point straight to a color, which makes
// the transform chain observable.
type TestPattern struct {
	patternBase
}

// NewTestPattern creates a test pattern
func NewTestPattern() *TestPattern {
	return &TestPattern{patternBase: newPatternBase()}
}

func (t *TestPattern) Clone() Pattern {
	cp := *t
	return &cp
}

func (t *TestPattern) Kind() PatternKind                { return PatternTest }
func (t *TestPattern) Colors() (core.Color, core.Color) { return core.Black, core.White }

func (t *TestPattern) At(p mgl64.Vec3) core.Color {
	return core.NewColor(p[0], p[1], p[2])
}

func isEven(f float64) bool {
	return math.Mod(f, 2) == 0
}
