package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// minSmoothTime keeps the spring stiffness finite.
const minSmoothTime = 0.0001

// SmoothDamp moves current toward target with a critically damped spring.
// velocity carries the spring state between calls.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(minSmoothTime, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	originalTo := target
	target = current - change

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * decay
	output := target + (change+temp)*decay

	// Never overshoot the target
	if (originalTo-current > 0) == (output > originalTo) {
		output = originalTo
		*velocity = (output - originalTo) / dt
	}
	return output
}

// SmoothDampVec3 is SmoothDamp applied to a position.
func SmoothDampVec3(current, target mgl64.Vec3, velocity *mgl64.Vec3, smoothTime, dt float64) mgl64.Vec3 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(minSmoothTime, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current.Sub(target)
	originalTo := target

	temp := velocity.Add(change.Mul(omega)).Mul(dt)
	*velocity = velocity.Sub(temp.Mul(omega)).Mul(decay)
	output := target.Add(change.Add(temp).Mul(decay))

	if originalTo.Sub(current).Dot(output.Sub(originalTo)) > 0 {
		output = originalTo
		*velocity = mgl64.Vec3{}
	}
	return output
}

// DeltaAngle returns the shortest signed difference between two angles in degrees.
func DeltaAngle(current, target float64) float64 {
	delta := math.Mod(target-current, 360)
	if delta < 0 {
		delta += 360
	}
	if delta > 180 {
		delta -= 360
	}
	return delta
}

// SmoothDampAngle is SmoothDamp for headings in degrees, taking the short way round.
func SmoothDampAngle(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	target = current + DeltaAngle(current, target)
	return SmoothDamp(current, target, velocity, smoothTime, dt)
}

// StepFactor is the per-tick interpolation factor rate*dt, clamped to [0, 1].
// Applied every tick it gives an exponential-style approach.
func StepFactor(rate, dt float64) float64 {
	return mgl64.Clamp(rate*dt, 0, 1)
}
