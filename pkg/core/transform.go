package core

import "github.com/go-gl/mathgl/mgl64"

// Epsilon is the tolerance used for float comparisons and for offsetting
// secondary ray origins off a surface.
const Epsilon = 1e-5

// Point creates a point (w = 1 when transformed)
func Point(x, y, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, y, z}
}

// Vector creates a direction (w = 0 when transformed)
func Vector(x, y, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, y, z}
}

// TransformPoint applies m to p as a homogeneous point
func TransformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// TransformVector applies m to v as a direction, ignoring translation
func TransformVector(m mgl64.Mat4, v mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(v.Vec4(0)).Vec3()
}

// Reflect mirrors in about normal
func Reflect(in, normal mgl64.Vec3) mgl64.Vec3 {
	return in.Sub(normal.Mul(2 * in.Dot(normal)))
}

// Translation returns a translation matrix
func Translation(x, y, z float64) mgl64.Mat4 {
	return mgl64.Translate3D(x, y, z)
}

// Scaling returns a scaling matrix
func Scaling(x, y, z float64) mgl64.Mat4 {
	return mgl64.Scale3D(x, y, z)
}

// RotationX returns a rotation of radians around the x axis
func RotationX(radians float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(radians)
}

// RotationY returns a rotation of radians around the y axis
func RotationY(radians float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DY(radians)
}

// RotationZ returns a rotation of radians around the z axis
func RotationZ(radians float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DZ(radians)
}

// Shearing returns a shear matrix where xy means "x in proportion to y"
func Shearing(xy, xz, yx, yz, zx, zy float64) mgl64.Mat4 {
	return mgl64.Mat4FromRows(
		mgl64.Vec4{1, xy, xz, 0},
		mgl64.Vec4{yx, 1, yz, 0},
		mgl64.Vec4{zx, zy, 1, 0},
		mgl64.Vec4{0, 0, 0, 1},
	)
}

// Chain composes transforms in the order they are applied, so
// Chain(a, b, c) == c * b * a.
func Chain(transforms ...mgl64.Mat4) mgl64.Mat4 {
	result := mgl64.Ident4()
	for _, m := range transforms {
		result = m.Mul4(result)
	}
	return result
}

// ViewTransform orients the world relative to an eye at from looking at to.
// Unlike mgl64.LookAtV the eye keeps looking down -z with x to the left,
// which is the convention Camera.RayForPixel expects.
func ViewTransform(from, to, up mgl64.Vec3) mgl64.Mat4 {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := mgl64.Mat4FromRows(
		mgl64.Vec4{left[0], left[1], left[2], 0},
		mgl64.Vec4{trueUp[0], trueUp[1], trueUp[2], 0},
		mgl64.Vec4{-forward[0], -forward[1], -forward[2], 0},
		mgl64.Vec4{0, 0, 0, 1},
	)
	return orientation.Mul4(Translation(-from[0], -from[1], -from[2]))
}
