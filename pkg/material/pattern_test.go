package material

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

func TestPatterns(t *testing.T) {
	white, black := core.White, core.Black

	tests := []struct {
		name     string
		pattern  Pattern
		point    mgl64.Vec3
		expected core.Color
	}{
		{"stripe constant in y", NewStripe(white, black), core.Point(0, 2, 0), white},
		{"stripe constant in z", NewStripe(white, black), core.Point(0, 0, 2), white},
		{"stripe at 0.9", NewStripe(white, black), core.Point(0.9, 0, 0), white},
		{"stripe at 1", NewStripe(white, black), core.Point(1, 0, 0), black},
		{"stripe at -0.1", NewStripe(white, black), core.Point(-0.1, 0, 0), black},
		{"stripe at -1", NewStripe(white, black), core.Point(-1, 0, 0), black},
		{"stripe at -1.1", NewStripe(white, black), core.Point(-1.1, 0, 0), white},
		{"gradient start", NewGradient(white, black), core.Point(0, 0, 0), white},
		{"gradient quarter", NewGradient(white, black), core.Point(0.25, 0, 0), core.NewColor(0.75, 0.75, 0.75)},
		{"gradient three quarters", NewGradient(white, black), core.Point(0.75, 0, 0), core.NewColor(0.25, 0.25, 0.25)},
		{"ring origin", NewRing(white, black), core.Point(0, 0, 0), white},
		{"ring x", NewRing(white, black), core.Point(1, 0, 0), black},
		{"ring z", NewRing(white, black), core.Point(0, 0, 1), black},
		{"ring diagonal", NewRing(white, black), core.Point(0.708, 0, 0.708), black},
		{"checker repeats in x", NewChecker3D(white, black), core.Point(1.01, 0, 0), black},
		{"checker repeats in y", NewChecker3D(white, black), core.Point(0, 1.01, 0), black},
		{"checker repeats in z", NewChecker3D(white, black), core.Point(0, 0, 1.01), black},
		{"checker origin cell", NewChecker3D(white, black), core.Point(0.99, 0.99, 0.99), white},
		{"test pattern", NewTestPattern(), core.Point(1, 2, 3), core.NewColor(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.pattern.At(tt.point)
			if !got.ApproxEqual(tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPatternTransforms(t *testing.T) {
	tests := []struct {
		name             string
		objectTransform  mgl64.Mat4
		patternTransform mgl64.Mat4
		point            mgl64.Vec3
		expected         core.Color
	}{
		{"object transform", core.Scaling(2, 2, 2), mgl64.Ident4(), core.Point(2, 3, 4), core.NewColor(1, 1.5, 2)},
		{"pattern transform", mgl64.Ident4(), core.Scaling(2, 2, 2), core.Point(2, 3, 4), core.NewColor(1, 1.5, 2)},
		{"both transforms", core.Scaling(2, 2, 2), core.Translation(0.5, 1, 1.5), core.Point(2.5, 3, 3.5), core.NewColor(0.75, 0.5, 0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewTestPattern()
			p.SetTransform(tt.patternTransform)
			m := DefaultMaterial()
			m.Pattern = p

			got := m.ColorAt(tt.objectTransform.Inv(), tt.point)
			if !got.ApproxEqual(tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestColorAtWithoutPattern(t *testing.T) {
	m := DefaultMaterial()
	m.Color = core.NewColor(0.2, 0.4, 0.6)
	if got := m.ColorAt(core.Scaling(3, 3, 3).Inv(), core.Point(5, 5, 5)); got != m.Color {
		t.Errorf("Expected %v, got %v", m.Color, got)
	}
}

func TestMaterialCloneCopiesPattern(t *testing.T) {
	stripe := NewStripe(core.White, core.Black)
	m := DefaultMaterial()
	m.Pattern = stripe

	cp := m.Clone()
	stripe.SetTransform(core.Translation(1, 0, 0))

	if cp.Pattern == Pattern(stripe) {
		t.Fatalf("Expected clone to own its pattern")
	}
	if got := cp.Pattern.At(core.Point(0, 0, 0)); got != core.White {
		t.Errorf("Expected white at origin, got %v", got)
	}
	if got := cp.Pattern.Transform(); got != mgl64.Ident4() {
		t.Errorf("Expected identity transform, got %v", got)
	}

	if DefaultMaterial().Clone().Pattern != nil {
		t.Errorf("Expected clone without pattern to stay patternless")
	}
}
