package renderer

import (
	"fmt"
	"io"

	"github.com/df07/go-whitted-raytracer/pkg/camera"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Backend renders a scene through a camera into a new canvas. Backends
// produce the same image within floating point tolerance. A render either
// completes or returns an error with no canvas; a hit list overflow panics on
// the caller's goroutine.
type Backend interface {
	Name() string
	Render(sc *scene.Scene, cam *camera.Camera) (*Canvas, RenderStats, error)
}

// Backend kinds accepted by NewBackend
const (
	BackendSequential = "sequential"
	BackendParallel   = "parallel"
	BackendGPU        = "gpu"
)

// BackendKinds lists the kinds accepted by NewBackend
func BackendKinds() []string {
	return []string{BackendSequential, BackendParallel, BackendGPU}
}

// NewBackend creates a backend by kind. A nil logger discards output.
// GPU backends hold device resources; release them with CloseBackend.
func NewBackend(kind string, config Config, logger core.Logger) (Backend, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = nopLogger{}
	}

	switch kind {
	case BackendSequential:
		return NewSequentialBackend(config, logger), nil
	case BackendParallel:
		return NewParallelBackend(config, logger), nil
	case BackendGPU:
		gpu, err := NewGPUBackend(config, logger)
		if err != nil {
			return nil, err
		}
		return gpu, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}
}

// CloseBackend releases any resources held by b
func CloseBackend(b Backend) error {
	if c, ok := b.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
