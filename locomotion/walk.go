package locomotion

import "github.com/automoto/strider/config"

type walkState struct {
	baseState
}

func (s *walkState) ID() config.StateID { return config.Walk }

func (s *walkState) EnterState() {
	s.c.animator.SetBool(s.c.tuning.Animation.ParamIsWalking, true)
}

func (s *walkState) UpdatePhysics() {
	c := s.c
	c.Move(c.Direction())
	c.Rotate(c.HorizontalInput(), c.Direction())
}

func (s *walkState) UpdateLogic() {
	c := s.c
	if c.JumpTriggered() && c.Grounded() {
		c.changeState(config.Jump)
	} else if c.Direction().Len() < c.tuning.Locomotion.InputDeadzone {
		c.changeState(config.Idle)
	}
}

func (s *walkState) ExitState() {
	s.c.animator.SetBool(s.c.tuning.Animation.ParamIsWalking, false)
}
