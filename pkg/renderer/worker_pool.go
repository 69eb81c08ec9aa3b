package renderer

import (
	"context"
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/camera"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int // For deterministic ordering
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Counts shading.RayCounts
}

// panicError carries a panic out of a worker goroutine so it can be raised
// again on the goroutine that started the render.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("render worker panicked: %v\n%s", e.value, e.stack)
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	group       *errgroup.Group
	ctx         context.Context
}

// Worker handles individual tile rendering tasks. Each worker owns its
// tracer, so hit lists are never shared between goroutines.
type Worker struct {
	ID          int
	tracer      *shading.Tracer
	camera      *camera.Camera
	canvas      *Canvas
	maxDepth    int
	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// NewWorkerPool creates a pool of numWorkers workers rendering sc into canvas.
// The queues are sized for maxTasks so submission never blocks.
func NewWorkerPool(sc *scene.Scene, cam *camera.Camera, canvas *Canvas, config Config, numWorkers, maxTasks int) *WorkerPool {
	config = config.withDefaults()
	if numWorkers <= 0 {
		numWorkers = config.NumWorkers
	}

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, maxTasks),
		resultQueue: make(chan TileResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			tracer:      shading.NewTracer(sc, config.shadingConfig()),
			camera:      cam,
			canvas:      canvas,
			maxDepth:    config.MaxDepth,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	wp.group, wp.ctx = errgroup.WithContext(context.Background())
	for _, worker := range wp.workers {
		wp.group.Go(func() error {
			return worker.run(wp.ctx)
		})
	}
}

// Stop closes the task queue, waits for the workers and returns the first
// worker failure.
func (wp *WorkerPool) Stop() error {
	close(wp.taskQueue) // No more tasks
	err := wp.group.Wait()
	close(wp.resultQueue)
	return err
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop. Once any worker fails the remaining tasks are
// drained without rendering.
func (w *Worker) run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r, stack: debug.Stack()}
		}
	}()

	for task := range w.taskQueue {
		if ctx.Err() != nil {
			continue
		}

		before := w.tracer.Counts()
		// Each tile has non-overlapping bounds, so this is thread-safe
		renderBounds(w.tracer, w.camera, w.canvas, task.Tile.Bounds, w.maxDepth)
		after := w.tracer.Counts()

		w.resultQueue <- TileResult{
			TaskID: task.TaskID,
			Counts: shading.RayCounts{
				Traced: after.Traced - before.Traced,
				Shadow: after.Shadow - before.Shadow,
			},
		}
	}
	return nil
}
