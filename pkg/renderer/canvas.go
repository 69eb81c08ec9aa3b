package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Canvas is a width x height grid of linear colors. Every cell is written
// independently, so disjoint regions may be filled concurrently.
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}, nil
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// WritePixel sets the color at (x, y). Out-of-bounds writes are ignored.
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = col
}

// PixelAt returns the color at (x, y), or black when out of bounds
func (c *Canvas) PixelAt(x, y int) core.Color {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return core.Black
	}
	return c.pixels[y*c.width+x]
}

// ToImage converts the canvas to 8-bit RGBA, clamping each channel to [0, 1]
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			img.SetRGBA(x, y, colorToRGBA(c.pixels[y*c.width+x]))
		}
	}
	return img
}

// colorToRGBA converts a linear color to RGBA with clamping
func colorToRGBA(col core.Color) color.RGBA {
	col = col.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255*col.R + 0.5),
		G: uint8(255*col.G + 0.5),
		B: uint8(255*col.B + 0.5),
		A: 255,
	}
}
