package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World axes. Y is up, Z is forward, X is right.
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Down    = mgl64.Vec3{0, -1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
	Right   = mgl64.Vec3{1, 0, 0}
)

// Epsilon below which a vector is treated as zero length.
const Epsilon = 1e-5

// Angle returns the unsigned angle in degrees between a and b.
// Zero-length inputs yield 0.
func Angle(a, b mgl64.Vec3) float64 {
	denom := math.Sqrt(a.LenSqr() * b.LenSqr())
	if denom < Epsilon*Epsilon {
		return 0
	}
	cos := mgl64.Clamp(a.Dot(b)/denom, -1, 1)
	return mgl64.RadToDeg(math.Acos(cos))
}

// ProjectOnPlane removes the component of v along the plane normal.
func ProjectOnPlane(v, normal mgl64.Vec3) mgl64.Vec3 {
	sqr := normal.LenSqr()
	if sqr < Epsilon*Epsilon {
		return v
	}
	return v.Sub(normal.Mul(v.Dot(normal) / sqr))
}

// Horizontal drops the vertical component of v.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// SafeNormalize returns v scaled to unit length, or the zero vector when v is
// too short to have a direction.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < Epsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// ClampMagnitude rescales v so its length does not exceed max, preserving direction.
func ClampMagnitude(v mgl64.Vec3, max float64) mgl64.Vec3 {
	l := v.Len()
	if l <= max || l < Epsilon {
		return v
	}
	return v.Mul(max / l)
}

// Lerp interpolates between a and b with t clamped to [0, 1].
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = mgl64.Clamp(t, 0, 1)
	return a.Add(b.Sub(a).Mul(t))
}
