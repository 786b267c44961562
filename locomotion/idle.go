package locomotion

import "github.com/automoto/strider/config"

type idleState struct {
	baseState
}

func (s *idleState) ID() config.StateID { return config.Idle }

// UpdatePhysics keeps the body braked while standing.
func (s *idleState) UpdatePhysics() {
	// a robot landing here from a moving jump still carries normal drag
	// and would keep sliding without this
	s.c.body.SetDrag(s.c.tuning.Locomotion.BrakeDrag)
}

func (s *idleState) UpdateLogic() {
	c := s.c
	if c.JumpTriggered() && c.Grounded() {
		c.changeState(config.Jump)
	} else if c.Direction().Len() > c.tuning.Locomotion.InputDeadzone {
		c.changeState(config.Walk)
	}
}
