package components

import (
	"github.com/automoto/strider/terrain"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *terrain.Map
	LevelIndex   int
	Names        []string // every loaded map, sorted
}

var Level = donburi.NewComponentType[LevelData]()
