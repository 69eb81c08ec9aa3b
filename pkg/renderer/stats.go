package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about a render pass
type RenderStats struct {
	Backend      string        // Backend that produced the pass
	Width        int           // Canvas width
	Height       int           // Canvas height
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Primary rays: pixels times jitter samples
	TracedRays   uint64        // Primary, reflected and refracted rays (CPU backends)
	ShadowRays   uint64        // Shadow rays (CPU backends)
	Workers      int           // Goroutines or GPU invocations per workgroup
	Tiles        int           // Work units the image was split into
	Elapsed      time.Duration // Wall time of the pass
}

// RaysPerSecond returns traced plus shadow rays per second of wall time
func (s RenderStats) RaysPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TracedRays+s.ShadowRays) / s.Elapsed.Seconds()
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image
// in [0, 1].
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	n := bounds.Dx() * bounds.Dy()
	if n == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += 0.2126*float64(c.R)/255 + 0.7152*float64(c.G)/255 + 0.0722*float64(c.B)/255
		}
	}
	return total / float64(n)
}
