package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData drives the fixed-step physics loop (singleton component).
type ClockData struct {
	Accumulator  time.Duration // frame time not yet consumed by physics ticks
	Elapsed      time.Duration
	PhysicsTicks int
	Frames       int
	Paused       bool
}

var Clock = donburi.NewComponentType[ClockData]()
