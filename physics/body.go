package physics

import (
	"github.com/automoto/strider/config"
	"github.com/automoto/strider/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// ForceMode selects how AddForce changes a body.
type ForceMode int

const (
	// Force is a continuous force scaled by mass, applied at the next Integrate.
	Force ForceMode = iota
	// Acceleration is a continuous acceleration, applied at the next Integrate.
	Acceleration
	// Impulse is an instant change of momentum.
	Impulse
	// VelocityChange is an instant change of velocity.
	VelocityChange
)

func (m ForceMode) String() string {
	switch m {
	case Force:
		return "Force"
	case Acceleration:
		return "Acceleration"
	case Impulse:
		return "Impulse"
	case VelocityChange:
		return "VelocityChange"
	}
	return "Unknown"
}

// Surface answers the downward query a body uses to stand on the ground.
type Surface interface {
	RaycastDown(origin mgl64.Vec3, maxDist float64, layer string) (Hit, bool)
}

// Body is a rigid body whose rotation is frozen to yaw only.
type Body struct {
	position mgl64.Vec3
	velocity mgl64.Vec3
	rotation mgl64.Quat
	accel    mgl64.Vec3 // continuous forces accumulated since the last Integrate

	mass float64
	drag float64
	cfg  config.PhysicsConfig

	surface Surface
	layer   string
	onFloor bool
}

// NewBody creates a body at pos facing yaw degrees.
func NewBody(cfg config.PhysicsConfig, pos mgl64.Vec3, yaw float64) *Body {
	mass := cfg.Mass
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		position: pos,
		rotation: gamemath.YawRotation(yaw),
		mass:     mass,
		cfg:      cfg,
	}
}

// SetSurface makes the body collide with s on the given layer.
func (b *Body) SetSurface(s Surface, layer string) {
	b.surface = s
	b.layer = layer
}

func (b *Body) Position() mgl64.Vec3 { return b.position }

func (b *Body) SetPosition(p mgl64.Vec3) { b.position = p }

func (b *Body) Velocity() mgl64.Vec3 { return b.velocity }

func (b *Body) SetVelocity(v mgl64.Vec3) { b.velocity = v }

func (b *Body) Rotation() mgl64.Quat { return b.rotation }

// SetRotation keeps only the yaw of q.
func (b *Body) SetRotation(q mgl64.Quat) {
	b.rotation = gamemath.YawRotation(gamemath.Yaw(q))
}

func (b *Body) Drag() float64 { return b.drag }

func (b *Body) SetDrag(d float64) {
	if d < 0 {
		d = 0
	}
	b.drag = d
}

func (b *Body) Mass() float64 { return b.mass }

// OnFloor reports whether the last Integrate ended resting on the surface.
func (b *Body) OnFloor() bool { return b.onFloor }

// AddForce applies v according to mode.
func (b *Body) AddForce(v mgl64.Vec3, mode ForceMode) {
	switch mode {
	case Force:
		b.accel = b.accel.Add(v.Mul(1 / b.mass))
	case Acceleration:
		b.accel = b.accel.Add(v)
	case Impulse:
		b.velocity = b.velocity.Add(v.Mul(1 / b.mass))
	case VelocityChange:
		b.velocity = b.velocity.Add(v)
	}
}

// Integrate advances the body by dt seconds: continuous forces and gravity,
// then drag, then position, then ground contact.
func (b *Body) Integrate(dt float64) {
	if dt <= 0 {
		return
	}
	accel := b.accel.Add(mgl64.Vec3{0, b.cfg.Gravity, 0})
	b.accel = mgl64.Vec3{}

	v := b.velocity.Add(accel.Mul(dt))
	v = v.Mul(1 / (1 + b.drag*dt))
	if b.cfg.MaxFallSpeed > 0 && v.Y() < -b.cfg.MaxFallSpeed {
		v[1] = -b.cfg.MaxFallSpeed
	}
	b.velocity = v
	b.position = b.position.Add(v.Mul(dt))

	b.resolveFloor()
}

func (b *Body) resolveFloor() {
	b.onFloor = false
	if b.surface == nil {
		return
	}
	reach := b.cfg.MaxStep + b.cfg.Clearance
	origin := b.position.Add(gamemath.Up.Mul(b.cfg.MaxStep))
	hit, ok := b.surface.RaycastDown(origin, reach, b.layer)
	if !ok {
		return
	}
	floor := hit.Point.Y() + b.cfg.Clearance
	if b.position.Y() > floor {
		return
	}
	b.position[1] = floor
	if b.velocity.Y() < 0 {
		b.velocity[1] = 0
	}
	b.onFloor = true
}
