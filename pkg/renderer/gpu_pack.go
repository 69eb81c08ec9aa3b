package renderer

import (
	"encoding/binary"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/camera"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/go-gl/mathgl/mgl64"
)

// Layout of the kernel's buffers. Sizes and offsets follow WGSL alignment
// rules for the Shape and Params structs in shaders/raytrace.wgsl.
const (
	gpuShapeSize  = 304
	gpuParamsSize = 288
	gpuPixelSize  = 16 // vec4<f32>

	gpuMaxHits      = 100
	gpuMaxStack     = 24
	gpuMaxDepth     = gpuMaxStack - 2
	gpuWorkgroupDim = 8

	// f32 has no infinity literal in WGSL; unbounded extents are clamped
	gpuBig = 3.0e38
)

// packParams serializes the per-pass uniform block
func packParams(sc *scene.Scene, cam *camera.Camera, maxDepth, hitCapacity int) []byte {
	buf := make([]byte, gpuParamsSize)
	light := sc.Light()

	putMat4(buf, 0, cam.Inverse())
	putVec4(buf, 64, light.Position[0], light.Position[1], light.Position[2], 1)
	putVec4(buf, 80, light.Intensity.R, light.Intensity.G, light.Intensity.B, 1)
	putUvec4(buf, 96, uint32(cam.HSize()), uint32(cam.VSize()), uint32(sc.Len()), uint32(maxDepth))
	putVec4(buf, 112, cam.HalfWidth(), cam.HalfHeight(), cam.PixelSize(), 0)
	putUvec4(buf, 128, uint32(samplesPerPixel(cam)), uint32(hitCapacity), 0, 0)

	pixelSize := cam.PixelSize()
	for i, o := range JitterOffsets(cam.Antialiasing()) {
		putVec4(buf, 144+16*i, o[0]*pixelSize, o[1]*pixelSize, 0, 0)
	}
	return buf
}

// packShapes serializes every shape into a kernel Shape record. An empty
// scene still yields one zeroed record since storage bindings cannot be
// empty; the kernel reads only the first shape-count records.
func packShapes(sc *scene.Scene) []byte {
	shapes := sc.Shapes()
	buf := make([]byte, gpuShapeSize*max(len(shapes), 1))
	for i, s := range shapes {
		packShape(buf[i*gpuShapeSize:(i+1)*gpuShapeSize], s)
	}
	return buf
}

func packShape(buf []byte, s geometry.Shape) {
	m := s.Material()

	patternInverse := mgl64.Ident4()
	patternA, patternB := core.Black, core.Black
	patternKind := uint32(0)
	if m.Pattern != nil {
		patternInverse = m.Pattern.Inverse().Mul4(s.Inverse())
		patternA, patternB = m.Pattern.Colors()
		patternKind = uint32(m.Pattern.Kind())
	}

	minimum, maximum, closed := -gpuBig, gpuBig, false
	switch v := s.(type) {
	case *geometry.Cylinder:
		minimum, maximum, closed = v.Minimum, v.Maximum, v.Closed
	case *geometry.Cone:
		minimum, maximum, closed = v.Minimum, v.Maximum, v.Closed
	}

	putMat4(buf, 0, s.Inverse())
	putMat4(buf, 64, s.InverseTranspose())
	putMat4(buf, 128, patternInverse)
	putVec4(buf, 192, m.Color.R, m.Color.G, m.Color.B, 1)
	putVec4(buf, 208, patternA.R, patternA.G, patternA.B, 1)
	putVec4(buf, 224, patternB.R, patternB.G, patternB.B, 1)
	putVec4(buf, 240, m.Ambient, m.Diffuse, m.Specular, m.Shininess)
	putVec4(buf, 256, m.Reflective, m.Transparency, m.RefractiveIndex, 0)
	putVec4(buf, 272, clampExtent(minimum), clampExtent(maximum), 0, 0)
	putUvec4(buf, 288, uint32(s.Kind()), boolToU32(closed), boolToU32(s.CastsShadow()), patternKind)
}

// unpackPixels copies kernel output into canvas. It reports whether any
// pixel flagged a hit list overflow.
func unpackPixels(data []byte, canvas *Canvas) (overflow bool) {
	for y := 0; y < canvas.Height(); y++ {
		for x := 0; x < canvas.Width(); x++ {
			off := (y*canvas.Width() + x) * gpuPixelSize
			if readF32(data, off+12) < 0 {
				overflow = true
			}
			canvas.WritePixel(x, y, core.NewColor(
				readF32(data, off),
				readF32(data, off+4),
				readF32(data, off+8),
			))
		}
	}
	return overflow
}

// putMat4 writes m column by column, which is both mgl64's storage order and
// WGSL's mat4x4 layout.
func putMat4(buf []byte, off int, m mgl64.Mat4) {
	for i, v := range m {
		putF32(buf, off+4*i, v)
	}
}

func putVec4(buf []byte, off int, x, y, z, w float64) {
	putF32(buf, off, x)
	putF32(buf, off+4, y)
	putF32(buf, off+8, z)
	putF32(buf, off+12, w)
}

func putUvec4(buf []byte, off int, x, y, z, w uint32) {
	binary.LittleEndian.PutUint32(buf[off:], x)
	binary.LittleEndian.PutUint32(buf[off+4:], y)
	binary.LittleEndian.PutUint32(buf[off+8:], z)
	binary.LittleEndian.PutUint32(buf[off+12:], w)
}

func putF32(buf []byte, off int, v float64) {
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(float32(v)))
}

func readF32(buf []byte, off int) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])))
}

func clampExtent(v float64) float64 {
	return math.Max(-gpuBig, math.Min(gpuBig, v))
}

func boolToU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
