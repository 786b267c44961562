package components

import (
	"github.com/automoto/strider/locomotion"
	"github.com/yohamta/donburi"
)

// RobotData ties an entity to its locomotion controller.
type RobotData struct {
	Index      int // spawn index in the current map
	Controller *locomotion.Controller
}

var Robot = donburi.NewComponentType[RobotData]()
