package systems

import (
	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLocomotion advances every robot by one frame: as many fixed physics
// ticks as the accumulated frame time covers, then one logic tick.
func UpdateLocomotion(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	if clock.Paused {
		return
	}

	frame := cfg.Sim.FrameDelta()
	step := cfg.Sim.PhysicsDelta()
	clock.Accumulator += frame
	clock.Elapsed += frame
	for clock.Accumulator >= step {
		clock.Accumulator -= step
		StepPhysics(ecs, step.Seconds())
		clock.PhysicsTicks++
	}

	StepLogic(ecs, frame.Seconds())
	clock.Frames++
}

// StepPhysics runs one physics tick for every robot.
func StepPhysics(ecs *ecs.ECS, dt float64) {
	tags.Robot.Each(ecs.World, func(e *donburi.Entry) {
		components.Robot.Get(e).Controller.FixedUpdate(dt)
	})
}

// StepLogic runs one logic tick for every robot, including the body bob.
func StepLogic(ecs *ecs.ECS, dt float64) {
	tags.Robot.Each(ecs.World, func(e *donburi.Entry) {
		ctrl := components.Robot.Get(e).Controller
		ctrl.Update(dt)

		bob := components.BodyBob.Get(e)
		if bob.Bob != nil {
			bob.Offset = bob.Bob.Update(ctrl.Moving(), dt, ctrl.Tuning().BodyBob)
		}
	})
}

// GetOrCreateClock returns the singleton Clock component, creating it if needed
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = archetypes.Clock.Spawn(ecs)
	}
	return components.Clock.Get(entry)
}

// RobotByIndex returns the robot spawned at index.
func RobotByIndex(ecs *ecs.ECS, index int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Robot.Each(ecs.World, func(e *donburi.Entry) {
		if found == nil && components.Robot.Get(e).Index == index {
			found = e
		}
	})
	return found, found != nil
}
