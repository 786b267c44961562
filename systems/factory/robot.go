package factory

import (
	"fmt"

	"github.com/automoto/strider/animation"
	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/locomotion"
	"github.com/automoto/strider/physics"
	"github.com/automoto/strider/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRobot spawns a robot at the terrain's spawn point index. All robots
// share store, so a published tuning reaches each of them on its next tick.
func CreateRobot(ecs *ecs.ECS, index int, store *cfg.TuningStore) (*donburi.Entry, error) {
	entry, ok := components.Terrain.First(ecs.World)
	if !ok {
		return nil, fmt.Errorf("create robot %d: no terrain", index)
	}
	world := components.Terrain.Get(entry).Terrain
	layer := store.Load().Ground.Layer

	pos, yaw, err := world.SpawnPose(index, layer, cfg.Physics.Clearance)
	if err != nil {
		return nil, fmt.Errorf("create robot %d: %w", index, err)
	}

	robot := archetypes.Robot.Spawn(ecs)

	body := physics.NewBody(cfg.Physics, pos, yaw)
	body.SetSurface(world, layer)
	components.Body.SetValue(robot, components.BodyData{Body: body})

	params := animation.NewParams()
	components.Animator.SetValue(robot, components.AnimatorData{Params: params})

	bob := animation.NewBodyBob(0)
	components.BodyBob.SetValue(robot, components.BodyBobData{Bob: bob})

	components.State.SetValue(robot, components.StateData{
		CurrentState:  cfg.StateNone,
		PreviousState: cfg.StateNone,
	})

	ctrl, err := locomotion.NewController(locomotion.Options{
		Name:     fmt.Sprintf("robot-%d", index),
		Body:     body,
		World:    world,
		Input:    systems.NewEntryInput(robot),
		Animator: params,
		Audio:    systems.NewAudioQueue(ecs),
		Tuning:   store,
		OnStateChange: func(from, to cfg.StateID) {
			state := components.State.Get(robot)
			state.PreviousState = from
			state.CurrentState = to
			state.Transitions++
			if from == cfg.Jump {
				bob.Land(store.Load().BodyBob)
			}
		},
	})
	if err != nil {
		ecs.World.Remove(robot.Entity())
		return nil, fmt.Errorf("create robot %d: %w", index, err)
	}

	components.Robot.SetValue(robot, components.RobotData{
		Index:      index,
		Controller: ctrl,
	})
	return robot, nil
}
