package components

import (
	"github.com/automoto/strider/physics"
	"github.com/yohamta/donburi"
)

type BodyData struct {
	*physics.Body
}

var Body = donburi.NewComponentType[BodyData]()

type TerrainData struct {
	*physics.Terrain
}

var Terrain = donburi.NewComponentType[TerrainData]()
