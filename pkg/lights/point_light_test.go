package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPointLight_NewPointLight(t *testing.T) {
	position := core.Point(0, 0, 0)
	intensity := core.NewColor(1, 1, 1)

	light := NewPointLight(position, intensity)

	if light.Position != position {
		t.Errorf("Expected position %v, got %v", position, light.Position)
	}
	if light.Intensity != intensity {
		t.Errorf("Expected intensity %v, got %v", intensity, light.Intensity)
	}
}

func TestPointLight_Sample(t *testing.T) {
	light := NewPointLight(core.Point(-10, 10, -10), core.White)
	point := core.Point(0, 0, 0)

	sample := light.Sample(point)

	expectedDistance := math.Sqrt(300)
	if math.Abs(sample.Distance-expectedDistance) > 1e-9 {
		t.Errorf("Expected distance %v, got %v", expectedDistance, sample.Distance)
	}
	if math.Abs(sample.Direction.Len()-1) > 1e-9 {
		t.Errorf("Expected normalized direction, got length %v", sample.Direction.Len())
	}
	expected := core.Vector(-1, 1, -1).Normalize()
	if !sample.Direction.ApproxEqual(expected) {
		t.Errorf("Expected direction %v, got %v", expected, sample.Direction)
	}
}

func TestPointLight_SampleAtLightPosition(t *testing.T) {
	light := NewPointLight(core.Point(1, 2, 3), core.White)
	sample := light.Sample(core.Point(1, 2, 3))

	if sample.Distance != 0 {
		t.Errorf("Expected zero distance, got %v", sample.Distance)
	}
	if math.IsNaN(sample.Direction[0]) || math.IsNaN(sample.Direction[1]) || math.IsNaN(sample.Direction[2]) {
		t.Errorf("Expected finite direction, got %v", sample.Direction)
	}
}
