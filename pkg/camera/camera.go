// Package camera generates primary rays for a pinhole camera.
package camera

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Camera maps a hsize x vsize canvas onto a canvas plane one unit in front
// of the eye. The transform orients the world relative to the camera, as
// returned by core.ViewTransform.
type Camera struct {
	hsize       int
	vsize       int
	fieldOfView float64

	transform mgl64.Mat4
	inverse   mgl64.Mat4
	origin    mgl64.Vec3 // eye position in world space

	halfWidth  float64
	halfHeight float64
	pixelSize  float64

	antialiasing int
}

// New creates a camera with an identity transform. fieldOfView is the
// horizontal (or vertical, for portrait canvases) angle in radians.
func New(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		hsize:       hsize,
		vsize:       vsize,
		fieldOfView: fieldOfView,
		transform:   mgl64.Ident4(),
		inverse:     mgl64.Ident4(),
	}
	c.computePixelSize()
	return c
}

func (c *Camera) computePixelSize() {
	halfView := math.Tan(c.fieldOfView / 2)
	aspect := 1.0
	if c.vsize > 0 {
		aspect = float64(c.hsize) / float64(c.vsize)
	}

	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}

	if c.hsize > 0 {
		c.pixelSize = c.halfWidth * 2 / float64(c.hsize)
	}
}

// SetTransform sets the view transform and caches its inverse
func (c *Camera) SetTransform(m mgl64.Mat4) {
	c.transform = m
	c.inverse = m.Inv()
	c.origin = core.TransformPoint(c.inverse, mgl64.Vec3{})
}

// SetAntialiasing selects the jitter grid: 0 disables antialiasing, 2 and 3
// select the 2x2 and 3x3 sample sets.
func (c *Camera) SetAntialiasing(n int) error {
	switch n {
	case 0, 2, 3:
		c.antialiasing = n
		return nil
	default:
		return fmt.Errorf("camera: unsupported antialiasing grid %d (want 0, 2 or 3)", n)
	}
}

func (c *Camera) Antialiasing() int     { return c.antialiasing }
func (c *Camera) HSize() int            { return c.hsize }
func (c *Camera) VSize() int            { return c.vsize }
func (c *Camera) FieldOfView() float64  { return c.fieldOfView }
func (c *Camera) PixelSize() float64    { return c.pixelSize }
func (c *Camera) HalfWidth() float64    { return c.halfWidth }
func (c *Camera) HalfHeight() float64   { return c.halfHeight }
func (c *Camera) Transform() mgl64.Mat4 { return c.transform }
func (c *Camera) Inverse() mgl64.Mat4   { return c.inverse }

// RayForPixel returns the world-space ray through the center of pixel (x, y)
func (c *Camera) RayForPixel(x, y int) core.Ray {
	return c.RayForPixelAntialiased(x, y, 0, 0)
}

// RayForPixelAntialiased returns the ray through pixel (x, y) shifted by
// (dx, dy) in canvas-plane units. Positive dy moves the sample down.
func (c *Camera) RayForPixelAntialiased(x, y int, dx, dy float64) core.Ray {
	xOffset := (float64(x)+0.5)*c.pixelSize + dx
	yOffset := (float64(y)+0.5)*c.pixelSize + dy

	// The camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := core.TransformPoint(c.inverse, mgl64.Vec3{worldX, worldY, -1})
	direction := pixel.Sub(c.origin).Normalize()
	return core.NewRay(c.origin, direction)
}
