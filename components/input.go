package components

import (
	"github.com/yohamta/donburi"
)

// InputData stores the axes and jump edge a robot reads on its next physics
// tick. Whoever drives the robot (keyboard, script, test) writes it.
type InputData struct {
	Horizontal float64 // -1 left .. 1 right
	Vertical   float64 // -1 back .. 1 forward
	JumpQueued bool    // cleared when the controller reads it
}

var Input = donburi.NewComponentType[InputData]()
