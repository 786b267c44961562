package components

import (
	"github.com/automoto/strider/config"
	"github.com/yohamta/donburi"
)

// StateData mirrors the controller's state for systems that only read
// components.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	Transitions   int
}

var State = donburi.NewComponentType[StateData]()
