package locomotion

import (
	"math"

	"github.com/automoto/strider/config"
	"github.com/automoto/strider/gamemath"
	"github.com/automoto/strider/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// Move steers the body toward dir expressed in body space (x right, z forward).
// With no input, or when trying to cross steep ground, it only brakes.
func (c *Controller) Move(dir mgl64.Vec3) {
	l := c.tuning.Locomotion
	if dir.Len() < l.InputDeadzone || c.slope.SteepWhileMoving(c.ground.Sample(), c.direction) {
		c.body.SetDrag(l.BrakeDrag)
		return
	}
	c.body.SetDrag(l.NormalDrag)

	speed := l.MoveSpeed
	if c.slope.Steep(c.ground.Sample()) {
		speed *= l.SlopeSpeedMultiplier
	}

	rot := c.body.Rotation()
	forward := rot.Rotate(gamemath.Forward)
	right := rot.Rotate(gamemath.Right)
	velocity := c.body.Velocity()

	target := forward.Mul(dir.Z() * speed).Add(right.Mul(dir.X() * speed))
	target[1] = velocity.Y()
	c.body.AddForce(target.Sub(velocity), physics.VelocityChange)

	velocity = c.body.Velocity()
	horizontal := gamemath.Horizontal(velocity)
	if horizontal.Len() > speed {
		horizontal = horizontal.Normalize().Mul(speed)
		c.body.SetVelocity(mgl64.Vec3{horizontal.X(), velocity.Y(), horizontal.Z()})
	}
}

// Rotate turns the body. Manual turn input above the deadzone wins; otherwise
// the heading eases toward the movement direction.
func (c *Controller) Rotate(horizontal float64, dir mgl64.Vec3) {
	l := c.tuning.Locomotion
	if math.Abs(horizontal) > l.TurnDeadzone {
		delta := gamemath.YawRotation(horizontal * l.RotationSpeed * c.dt)
		c.body.SetRotation(c.body.Rotation().Mul(delta))
		return
	}
	if dir.Len() > l.InputDeadzone {
		current := gamemath.Yaw(c.body.Rotation())
		yaw := gamemath.SmoothDampAngle(current, gamemath.Heading(dir), &c.autoRotationVelocity, l.AutoRotationSmoothTime, c.dt)
		c.body.SetRotation(gamemath.YawRotation(yaw))
	}
}

// applySlopeGravity pulls a standing body down the slope it rests on.
func (c *Controller) applySlopeGravity() {
	sample := c.ground.Sample()
	if !sample.Grounded || c.direction.Len() >= c.tuning.Locomotion.InputDeadzone {
		return
	}
	if c.slope.SteepWhileMoving(sample, c.direction) {
		return
	}
	downhill := gamemath.ProjectOnPlane(gamemath.Down, sample.Normal)
	if downhill.LenSqr() < gamemath.Epsilon*gamemath.Epsilon {
		return
	}
	c.body.AddForce(downhill.Mul(c.tuning.Locomotion.SlopeGravity), physics.Acceleration)
}

// jump queues the jump impulse and plays the cue.
func (c *Controller) jump() {
	l := c.tuning.Locomotion
	c.pending.Add(gamemath.Up.Mul(l.JumpForce))
	if c.audio != nil {
		c.audio.PlayOneShot(config.SoundJump, l.JumpVolume)
	}
}
