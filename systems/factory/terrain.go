package factory

import (
	"fmt"

	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
	"github.com/automoto/strider/physics"
	"github.com/automoto/strider/terrain"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTerrain builds the collision world for m and stores it as the
// singleton Terrain entity.
func CreateTerrain(ecs *ecs.ECS, m *terrain.Map, names []string, levelIndex int) (*donburi.Entry, error) {
	world, err := physics.NewTerrain(m)
	if err != nil {
		return nil, fmt.Errorf("create terrain: %w", err)
	}

	entry := archetypes.Terrain.Spawn(ecs)
	components.Terrain.SetValue(entry, components.TerrainData{Terrain: world})
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: m,
		LevelIndex:   levelIndex,
		Names:        names,
	})
	return entry, nil
}

// MustTerrain returns the singleton terrain and panics when none was created.
func MustTerrain(ecs *ecs.ECS) *physics.Terrain {
	entry, ok := components.Terrain.First(ecs.World)
	if !ok {
		panic("no terrain in world")
	}
	return components.Terrain.Get(entry).Terrain
}
