package locomotion

import "github.com/automoto/strider/config"

// State is one locomotion state. Instances are created once per controller
// and reused across transitions.
type State interface {
	ID() config.StateID
	EnterState()
	UpdatePhysics()
	UpdateLogic()
	ExitState()
}

// baseState supplies no-op callbacks.
type baseState struct {
	c *Controller
}

func (baseState) EnterState()    {}
func (baseState) UpdatePhysics() {}
func (baseState) UpdateLogic()   {}
func (baseState) ExitState()     {}
