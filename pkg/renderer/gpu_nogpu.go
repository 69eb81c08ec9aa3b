//go:build nogpu

package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/camera"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// GPUBackend is unavailable in builds tagged nogpu
type GPUBackend struct{}

// NewGPUBackend always fails with ErrGPUUnavailable in nogpu builds
func NewGPUBackend(config Config, logger core.Logger) (*GPUBackend, error) {
	return nil, ErrGPUUnavailable
}

func (b *GPUBackend) Name() string { return BackendGPU }

func (b *GPUBackend) Adapter() string { return "" }

func (b *GPUBackend) Close() error { return nil }

func (b *GPUBackend) Render(sc *scene.Scene, cam *camera.Camera) (*Canvas, RenderStats, error) {
	return nil, RenderStats{}, ErrGPUUnavailable
}
