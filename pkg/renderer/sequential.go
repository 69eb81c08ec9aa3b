package renderer

import (
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/camera"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// SequentialBackend renders every pixel on the calling goroutine, row by row
type SequentialBackend struct {
	config Config
	logger core.Logger
}

// NewSequentialBackend creates a single-threaded backend
func NewSequentialBackend(config Config, logger core.Logger) *SequentialBackend {
	if logger == nil {
		logger = nopLogger{}
	}
	return &SequentialBackend{config: config.withDefaults(), logger: logger}
}

func (b *SequentialBackend) Name() string { return BackendSequential }

func (b *SequentialBackend) Render(sc *scene.Scene, cam *camera.Camera) (*Canvas, RenderStats, error) {
	canvas, err := NewCanvas(cam.HSize(), cam.VSize())
	if err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()
	tracer := shading.NewTracer(sc, b.config.shadingConfig())
	renderBounds(tracer, cam, canvas, image.Rect(0, 0, canvas.Width(), canvas.Height()), b.config.MaxDepth)

	counts := tracer.Counts()
	stats := RenderStats{
		Backend:      b.Name(),
		Width:        canvas.Width(),
		Height:       canvas.Height(),
		TotalPixels:  canvas.Width() * canvas.Height(),
		TotalSamples: canvas.Width() * canvas.Height() * samplesPerPixel(cam),
		TracedRays:   counts.Traced,
		ShadowRays:   counts.Shadow,
		Workers:      1,
		Tiles:        1,
		Elapsed:      time.Since(start),
	}
	b.logger.Printf("%s: rendered %dx%d in %v\n", b.Name(), stats.Width, stats.Height, stats.Elapsed)
	return canvas, stats, nil
}

// renderBounds renders the pixels inside bounds into canvas
func renderBounds(tracer *shading.Tracer, cam *camera.Camera, canvas *Canvas, bounds image.Rectangle, maxDepth int) {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			canvas.WritePixel(x, y, renderPixel(tracer, cam, x, y, maxDepth))
		}
	}
}
