package components

import (
	"github.com/yohamta/donburi"
)

// CameraData is the world XZ point at the centre of the screen.
type CameraData struct {
	X, Z float64
}

var Camera = donburi.NewComponentType[CameraData]()
