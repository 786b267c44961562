package legs

import (
	"github.com/automoto/strider/gamemath"
	"github.com/automoto/strider/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// Phase is a limb's step state.
type Phase int

const (
	Resting Phase = iota
	Stepping
)

func (p Phase) String() string {
	if p == Stepping {
		return "Stepping"
	}
	return "Resting"
}

// Ground answers foothold queries.
type Ground interface {
	RaycastDown(origin mgl64.Vec3, maxDist float64, layer string) (physics.Hit, bool)
}

// BodyPose is the body state limbs read during a tick. It is captured once,
// after the body integrates, and shared by every limb.
type BodyPose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Anchor transforms a body-space offset to world space.
func (p BodyPose) Anchor(offset mgl64.Vec3) mgl64.Vec3 {
	return p.Position.Add(p.Rotation.Rotate(offset))
}

// StepParams are copied into a step when it starts.
type StepParams struct {
	Distance  float64
	Height    float64
	Duration  float64 // seconds
	RayLength float64
	Layer     string
}

// Stepper moves one foot. A step is a task polled once per physics tick by
// Advance; StopStepping raises a flag that the next poll honours before doing
// anything else. A Stepper shares no mutable state with its siblings.
type Stepper struct {
	Name   string
	Offset mgl64.Vec3 // resting anchor in body space

	phase     Phase
	cancelled bool

	start          mgl64.Vec3
	target         mgl64.Vec3
	targetRotation mgl64.Quat
	elapsed        float64
	duration       float64
	height         float64

	foot         mgl64.Vec3
	footRotation mgl64.Quat
	footVelocity mgl64.Vec3

	writes int
}

// NewStepper creates a resting limb with its foot under the anchor.
func NewStepper(name string, offset mgl64.Vec3, pose BodyPose) *Stepper {
	foot := pose.Anchor(offset)
	return &Stepper{
		Name:           name,
		Offset:         offset,
		start:          foot,
		target:         foot,
		targetRotation: pose.Rotation,
		foot:           foot,
		footRotation:   pose.Rotation,
	}
}

// Phase reports Resting as soon as a stop has been requested.
func (s *Stepper) Phase() Phase {
	if s.cancelled {
		return Resting
	}
	return s.phase
}

func (s *Stepper) Foot() mgl64.Vec3 { return s.foot }

func (s *Stepper) FootRotation() mgl64.Quat { return s.footRotation }

func (s *Stepper) Target() mgl64.Vec3 { return s.target }

func (s *Stepper) TargetRotation() mgl64.Quat { return s.targetRotation }

func (s *Stepper) Start() mgl64.Vec3 { return s.start }

func (s *Stepper) Elapsed() float64 { return s.elapsed }

// Writes counts foot position updates made by the stepping task.
func (s *Stepper) Writes() int { return s.writes }

// Plant drops the foot onto the ground under its anchor without stepping.
func (s *Stepper) Plant(pose BodyPose, ground Ground, p StepParams) {
	anchor := pose.Anchor(s.Offset)
	hit, ok := ground.RaycastDown(anchor, p.RayLength, p.Layer)
	if !ok {
		return
	}
	s.foot = hit.Point
	s.target = hit.Point
	s.targetRotation = gamemath.FromToRotation(gamemath.Up, hit.Normal).Mul(pose.Rotation)
	s.footRotation = s.targetRotation
}

// TryStartStep begins a step toward dir when the limb is resting and the body
// is grounded. A foothold miss keeps the previous target and rotation.
func (s *Stepper) TryStartStep(dir mgl64.Vec3, grounded bool, pose BodyPose, ground Ground, p StepParams) bool {
	if s.Phase() != Resting || !grounded {
		return false
	}
	s.phase = Stepping
	s.cancelled = false
	s.start = s.foot
	s.elapsed = 0
	s.duration = p.Duration
	s.height = p.Height

	anchor := pose.Anchor(s.Offset)
	if hit, ok := ground.RaycastDown(anchor, p.RayLength, p.Layer); ok {
		target := hit.Point.Add(dir.Mul(p.Distance))
		target[1] = hit.Point.Y()
		s.target = target
		s.targetRotation = gamemath.FromToRotation(gamemath.Up, hit.Normal).Mul(pose.Rotation)
	}
	return true
}

// StopStepping cancels the step in flight. The foot stays where it is.
func (s *Stepper) StopStepping() {
	if s.phase == Stepping {
		s.cancelled = true
	}
}

// Advance polls the step task once.
func (s *Stepper) Advance(dt float64) {
	if s.phase != Stepping {
		return
	}
	if s.cancelled {
		s.phase = Resting
		s.cancelled = false
		return
	}
	if s.elapsed >= s.duration {
		s.foot = s.target
		s.writes++
		s.phase = Resting
		return
	}

	t := s.elapsed / s.duration
	goal := s.target.Add(gamemath.Up.Mul(Arc(t, s.height)))
	s.foot = gamemath.SmoothDampVec3(s.foot, goal, &s.footVelocity, s.duration-s.elapsed, dt)
	s.writes++
	s.elapsed += dt
}

// UpdateRotation eases the foot toward the latest target rotation.
func (s *Stepper) UpdateRotation(blend float64) {
	s.footRotation = gamemath.Slerp(s.footRotation, s.targetRotation, blend)
}
