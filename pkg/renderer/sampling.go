package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/camera"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// jitter2x2 and jitter3x3 are the sub-pixel sample offsets, in pixels, used
// for antialiasing.
var (
	jitter2x2 = [][2]float64{
		{-1.0 / 4.0, 1.0 / 4.0},
		{1.0 / 4.0, 1.0 / 4.0},
		{-1.0 / 4.0, -1.0 / 4.0},
		{1.0 / 4.0, -3.0 / 4.0},
	}

	jitter3x3 = [][2]float64{
		{-2.0 / 6.0, 2.0 / 6.0},
		{0, 2.0 / 6.0},
		{2.0 / 6.0, 2.0 / 6.0},
		{-2.0 / 6.0, 0},
		{0, 0},
		{2.0 / 6.0, 0},
		{-2.0 / 6.0, -2.0 / 6.0},
		{0, -2.0 / 6.0},
		{2.0 / 6.0, -2.0 / 6.0},
	}
)

// JitterOffsets returns the sample offsets, in pixels, for an antialiasing
// grid size. Sizes other than 2 and 3 yield nil (one centered sample).
func JitterOffsets(grid int) [][2]float64 {
	switch grid {
	case 2:
		return jitter2x2
	case 3:
		return jitter3x3
	default:
		return nil
	}
}

// samplesPerPixel returns the number of primary rays per pixel
func samplesPerPixel(cam *camera.Camera) int {
	if offsets := JitterOffsets(cam.Antialiasing()); offsets != nil {
		return len(offsets)
	}
	return 1
}

// renderPixel traces all samples for pixel (x, y) and returns their average
func renderPixel(tracer *shading.Tracer, cam *camera.Camera, x, y, maxDepth int) core.Color {
	offsets := JitterOffsets(cam.Antialiasing())
	if offsets == nil {
		return tracer.ColorAt(cam.RayForPixel(x, y), maxDepth)
	}

	pixelSize := cam.PixelSize()
	sum := core.Black
	for _, o := range offsets {
		ray := cam.RayForPixelAntialiased(x, y, o[0]*pixelSize, o[1]*pixelSize)
		sum = sum.Add(tracer.ColorAt(ray, maxDepth))
	}
	return sum.Multiply(1 / float64(len(offsets)))
}
