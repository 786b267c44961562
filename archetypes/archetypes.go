package archetypes

import (
	"github.com/automoto/strider/components"
	"github.com/automoto/strider/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only ECS layer; every system runs on it.
const Default ecs.LayerID = 0

var (
	Robot = newArchetype(
		tags.Robot,
		components.Robot,
		components.Body,
		components.Input,
		components.Animator,
		components.BodyBob,
		components.State,
	)
	Terrain = newArchetype(
		tags.Terrain,
		components.Terrain,
		components.Level,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
