package locomotion

import "github.com/automoto/strider/config"

type jumpState struct {
	baseState
	hasJumped bool
}

func (s *jumpState) ID() config.StateID { return config.Jump }

// EnterState jumps only from the ground. Entered in the air the state is
// inert: no force, no cue, and it waits for an explicit transition.
func (s *jumpState) EnterState() {
	s.hasJumped = false
	if !s.c.Grounded() {
		return
	}
	s.c.jump()
	s.hasJumped = true
}

// UpdatePhysics polls for a stable landing every tick once the impulse has
// been applied, then picks Walk or Idle from the current input.
func (s *jumpState) UpdatePhysics() {
	c := s.c
	if !s.hasJumped || !c.pending.Empty() {
		return
	}
	if !c.StableGrounded() {
		return
	}
	s.hasJumped = false
	if c.Direction().Len() > c.tuning.Locomotion.InputDeadzone {
		c.changeState(config.Walk)
	} else {
		c.changeState(config.Idle)
	}
}

func (s *jumpState) ExitState() {
	s.hasJumped = false
}

// Airborne reports whether a jump is in flight and waiting to land.
func (s *jumpState) Airborne() bool { return s.hasJumped }
