package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// YawRotation builds a rotation of deg degrees about the world up axis.
func YawRotation(deg float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(deg), Up)
}

// Yaw extracts the heading of q in degrees in [0, 360), measured from +Z toward +X.
func Yaw(q mgl64.Quat) float64 {
	f := q.Rotate(Forward)
	deg := mgl64.RadToDeg(math.Atan2(f.X(), f.Z()))
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Heading returns the yaw in degrees that faces along dir on the ground plane.
func Heading(dir mgl64.Vec3) float64 {
	return mgl64.RadToDeg(math.Atan2(dir.X(), dir.Z()))
}

// FromToRotation returns the rotation taking direction from onto direction to.
func FromToRotation(from, to mgl64.Vec3) mgl64.Quat {
	if from.LenSqr() < Epsilon || to.LenSqr() < Epsilon {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatBetweenVectors(from, to)
}

// Slerp spherically interpolates between a and b with t clamped to [0, 1].
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	t = mgl64.Clamp(t, 0, 1)
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t).Normalize()
}
