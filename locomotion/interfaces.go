// Package locomotion drives a legged robot body: a state machine over Idle,
// Walk and Jump, throttled ground sensing, slope handling, and the per-limb
// step scheduler, all advanced from a fixed physics tick and a logic tick.
package locomotion

import (
	"github.com/automoto/strider/config"
	"github.com/automoto/strider/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// InputSource supplies movement intent. Axes are in [-1, 1]; JumpPressed
// reports an edge and is read once per physics tick.
type InputSource interface {
	HorizontalAxis() float64
	VerticalAxis() float64
	JumpPressed() bool
}

// Animator receives animation parameters. SetFloat smoothing is owned by the
// implementation.
type Animator interface {
	SetBool(name string, v bool)
	SetFloat(name string, v, dampTime, dt float64)
}

// AudioSink plays fire-and-forget cues.
type AudioSink interface {
	PlayOneShot(sound config.SoundID, volume float64)
}

// World answers the spatial queries the controller and limbs make.
type World interface {
	CheckSphere(center mgl64.Vec3, radius float64, layer string) bool
	RaycastDown(origin mgl64.Vec3, maxDist float64, layer string) (physics.Hit, bool)
}

// Body is the rigid body the controller steers. *physics.Body implements it.
type Body interface {
	Position() mgl64.Vec3
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
	Rotation() mgl64.Quat
	SetRotation(q mgl64.Quat)
	AddForce(v mgl64.Vec3, mode physics.ForceMode)
	SetDrag(d float64)
	Integrate(dt float64)
}
