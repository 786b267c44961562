package legs

import (
	"github.com/automoto/strider/config"
	"github.com/go-gl/mathgl/mgl64"
)

// Scheduler owns one Stepper per limb and drives them from the controller tick.
type Scheduler struct {
	Steppers []*Stepper

	cfg   config.LegConfig
	layer string
}

// NewScheduler creates a limb per anchor in cfg. Anchors are fixed for the
// scheduler's lifetime; SetConfig only changes stepping parameters.
func NewScheduler(cfg config.LegConfig, layer string, pose BodyPose) *Scheduler {
	s := &Scheduler{cfg: cfg, layer: layer}
	for _, a := range cfg.Anchors {
		s.Steppers = append(s.Steppers, NewStepper(a.Name, a.Offset.V(), pose))
	}
	return s
}

// SetConfig replaces stepping parameters for steps started from now on.
func (s *Scheduler) SetConfig(cfg config.LegConfig, layer string) {
	s.cfg = cfg
	s.layer = layer
}

func (s *Scheduler) params() StepParams {
	return StepParams{
		Distance:  s.cfg.StepDistance,
		Height:    s.cfg.StepHeight,
		Duration:  s.cfg.StepDuration.Seconds(),
		RayLength: s.cfg.RayLength,
		Layer:     s.layer,
	}
}

// Plant puts every foot on the ground.
func (s *Scheduler) Plant(pose BodyPose, ground Ground) {
	p := s.params()
	for _, st := range s.Steppers {
		st.Plant(pose, ground, p)
	}
}

// Dispatch offers a step to every limb and returns how many started.
func (s *Scheduler) Dispatch(dir mgl64.Vec3, grounded bool, pose BodyPose, ground Ground) int {
	p := s.params()
	started := 0
	for _, st := range s.Steppers {
		if st.TryStartStep(dir, grounded, pose, ground, p) {
			started++
		}
	}
	return started
}

// StopAll cancels every limb's step.
func (s *Scheduler) StopAll() {
	for _, st := range s.Steppers {
		st.StopStepping()
	}
}

// Advance polls every limb's step task once.
func (s *Scheduler) Advance(dt float64) {
	for _, st := range s.Steppers {
		st.Advance(dt)
	}
}

// UpdateRotations eases every foot toward its target rotation.
func (s *Scheduler) UpdateRotations() {
	for _, st := range s.Steppers {
		st.UpdateRotation(s.cfg.FootRotationBlend)
	}
}

// Stepping counts limbs mid-step.
func (s *Scheduler) Stepping() int {
	n := 0
	for _, st := range s.Steppers {
		if st.Phase() == Stepping {
			n++
		}
	}
	return n
}
