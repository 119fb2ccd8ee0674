package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Pi is math.Pi as a float32.
	Pi = float32(math.Pi)

	// TwoPi is one full turn in radians as a float32.
	TwoPi = float32(2 * math.Pi)
)

// PerspectiveZO creates a perspective projection matrix whose clip-space depth range is [0, 1],
// the WebGPU convention, rather than the [-1, 1] range produced by mgl32.Perspective.
// A far plane of +Inf produces an infinite projection.
// The matrix is stored in column-major order.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near, or +Inf)
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func PerspectiveZO(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))

	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[11] = -1.0
	if math.IsInf(float64(far), 1) {
		out[10] = -1.0
		out[14] = -near
	} else {
		nf := 1.0 / (near - far)
		out[10] = far * nf
		out[14] = far * near * nf
	}
	return out
}

// WrapAngle folds an angle in radians into [-π, π).
// NaN and infinite inputs are returned unchanged.
//
// Parameters:
//   - a: the angle in radians
//
// Returns:
//   - float32: the equivalent angle within [-π, π)
func WrapAngle(a float32) float32 {
	if math.IsNaN(float64(a)) || math.IsInf(float64(a), 0) {
		return a
	}
	// Large inputs are reduced with Mod first so the stepping below runs at most a few times.
	if a < -3*Pi || a >= 3*Pi {
		a = float32(math.Mod(float64(a), 2*math.Pi))
	}
	for a < -Pi {
		a += TwoPi
	}
	for a >= Pi {
		a -= TwoPi
	}
	return a
}

// Clamp limits v to the closed range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: v limited to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	return float32(math.Min(math.Max(float64(v), float64(lo)), float64(hi)))
}

// TransformPoint transforms a point (w = 1) by a 4x4 matrix and drops the w component.
//
// Parameters:
//   - m: the transform
//   - p: the point
//
// Returns:
//   - mgl32.Vec3: the transformed point
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}
