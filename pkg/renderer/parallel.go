package renderer

import (
	"errors"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/camera"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// ParallelBackend splits the canvas into tiles and renders them on a pool of
// worker goroutines.
type ParallelBackend struct {
	config Config
	logger core.Logger
}

// NewParallelBackend creates a multi-core backend
func NewParallelBackend(config Config, logger core.Logger) *ParallelBackend {
	if logger == nil {
		logger = nopLogger{}
	}
	return &ParallelBackend{config: config.withDefaults(), logger: logger}
}

func (b *ParallelBackend) Name() string { return BackendParallel }

// Render renders all tiles and joins the workers before returning. A panic
// in any worker is raised again here with its original value.
func (b *ParallelBackend) Render(sc *scene.Scene, cam *camera.Camera) (*Canvas, RenderStats, error) {
	canvas, err := NewCanvas(cam.HSize(), cam.VSize())
	if err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()
	tiles := NewTileGrid(canvas.Width(), canvas.Height(), b.config.TileSize)
	numWorkers := min(b.config.NumWorkers, len(tiles))

	pool := NewWorkerPool(sc, cam, canvas, b.config, numWorkers, len(tiles))
	pool.Start()
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}
	stopErr := pool.Stop()

	var counts shading.RayCounts
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		counts = counts.Add(result.Counts)
	}

	if stopErr != nil {
		var pe *panicError
		if errors.As(stopErr, &pe) {
			panic(pe.value)
		}
		return nil, RenderStats{}, stopErr
	}

	stats := RenderStats{
		Backend:      b.Name(),
		Width:        canvas.Width(),
		Height:       canvas.Height(),
		TotalPixels:  canvas.Width() * canvas.Height(),
		TotalSamples: canvas.Width() * canvas.Height() * samplesPerPixel(cam),
		TracedRays:   counts.Traced,
		ShadowRays:   counts.Shadow,
		Workers:      pool.GetNumWorkers(),
		Tiles:        len(tiles),
		Elapsed:      time.Since(start),
	}
	b.logger.Printf("%s: rendered %dx%d in %v (%d workers, %d tiles)\n",
		b.Name(), stats.Width, stats.Height, stats.Elapsed, stats.Workers, stats.Tiles)
	return canvas, stats, nil
}
