package tags

import "github.com/yohamta/donburi"

var (
	Robot   = donburi.NewTag().SetName("Robot")
	Terrain = donburi.NewTag().SetName("Terrain")
)
