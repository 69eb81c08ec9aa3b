//go:build !nogpu

package renderer

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func newTestGPUBackend(t *testing.T, cfg Config) *GPUBackend {
	t.Helper()
	b, err := NewGPUBackend(cfg, nil)
	if err != nil {
		t.Skipf("GPU not available: %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestNewGPUBackendLimits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDepth = gpuMaxDepth + 1
	if _, err := NewGPUBackend(cfg, nil); err == nil {
		t.Errorf("Expected an error for max depth %d", cfg.MaxDepth)
	}

	cfg = DefaultConfig()
	cfg.HitListCapacity = gpuMaxHits + 1
	if _, err := NewGPUBackend(cfg, nil); err == nil {
		t.Errorf("Expected an error for hit list capacity %d", cfg.HitListCapacity)
	}
}

func TestGPUMatchesSequential(t *testing.T) {
	b := newTestGPUBackend(t, DefaultConfig())

	preset, err := scene.Create("default", 32, 24)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	gpu, stats, err := b.Render(preset.Scene, preset.Camera)
	if err != nil {
		t.Fatalf("gpu render: %v", err)
	}
	seq, _, err := NewSequentialBackend(DefaultConfig(), nil).Render(preset.Scene, preset.Camera)
	if err != nil {
		t.Fatalf("sequential render: %v", err)
	}

	// f32 on the device against f64 on the host
	for y := 0; y < seq.Height(); y++ {
		for x := 0; x < seq.Width(); x++ {
			assertColorNear(t, "pixel", gpu.PixelAt(x, y), seq.PixelAt(x, y), 1e-2)
		}
	}
	if stats.TotalPixels != 32*24 {
		t.Errorf("Expected %d pixels, got %d", 32*24, stats.TotalPixels)
	}
}

func TestGPUHitListOverflowPanics(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HitListCapacity = 4
	b := newTestGPUBackend(t, cfg)

	recoverOverflow(t, func() {
		_, _, _ = b.Render(overflowScene(), frontCamera(16, 16))
	})
}
