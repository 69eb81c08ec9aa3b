package renderer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/df07/go-whitted-raytracer/pkg/intersect"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

var (
	// ErrInvalidDimensions is returned when a canvas would have no pixels
	ErrInvalidDimensions = errors.New("invalid canvas dimensions")
	// ErrGPUUnavailable is returned when no GPU backend can be created
	ErrGPUUnavailable = errors.New("gpu backend unavailable")
	// ErrUnknownBackend is returned by NewBackend for unrecognized kinds
	ErrUnknownBackend = errors.New("unknown backend")
)

// Config contains configuration shared by all backends
type Config struct {
	MaxDepth        int // Remaining depth given to primary rays
	HitListCapacity int // Per-ray hit list capacity; overflow panics
	NumWorkers      int // Parallel workers (0 = use CPU count)
	TileSize        int // Edge length of the square tiles handed to workers
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:        shading.DefaultMaxDepth,
		HitListCapacity: intersect.DefaultCapacity,
		NumWorkers:      0, // Auto-detect CPU count
		TileSize:        32,
	}
}

// Validate reports configuration values no backend can honor
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must be non-negative, got %d", c.MaxDepth)
	}
	if c.HitListCapacity < 0 {
		return fmt.Errorf("hit list capacity must be non-negative, got %d", c.HitListCapacity)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("worker count must be non-negative, got %d", c.NumWorkers)
	}
	if c.TileSize < 0 {
		return fmt.Errorf("tile size must be non-negative, got %d", c.TileSize)
	}
	return nil
}

// withDefaults fills zero fields from DefaultConfig and resolves the worker
// count. MaxDepth 0 is kept: it disables reflection and refraction.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.HitListCapacity == 0 {
		c.HitListCapacity = def.HitListCapacity
	}
	if c.TileSize == 0 {
		c.TileSize = def.TileSize
	}
	if c.NumWorkers == 0 {
		c.NumWorkers = runtime.NumCPU()
	}
	return c
}

func (c Config) shadingConfig() shading.Config {
	return shading.Config{MaxDepth: c.MaxDepth, HitListCapacity: c.HitListCapacity}
}
