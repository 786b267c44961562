package systems

import (
	"math"

	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
	"github.com/automoto/strider/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the controlled robot, keeping the map
// on screen where it is large enough.
func UpdateCamera(e *ecs.ECS) {
	camera := GetOrCreateCamera(e)

	robot, ok := RobotByIndex(e, ControlledRobot)
	if !ok {
		return // no robot, skip camera update
	}
	pos := components.Body.Get(robot).Position()
	targetX, targetZ := pos.X(), pos.Z()

	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry).CurrentLevel
		if level != nil {
			halfW := float64(config.C.Width) / 2 / config.C.Scale
			halfH := float64(config.C.Height) / 2 / config.C.Scale
			targetX = clampCentre(targetX, halfW, level.Width)
			targetZ = clampCentre(targetZ, halfH, level.Depth)
		}
	}

	camera.X += (targetX - camera.X) * config.Camera.FollowSmoothing
	camera.Z += (targetZ - camera.Z) * config.Camera.FollowSmoothing
}

// clampCentre keeps a view of half extent half inside [0, size]; smaller maps
// are centred.
func clampCentre(v, half, size float64) float64 {
	if size <= 2*half {
		return size / 2
	}
	return math.Max(half, math.Min(size-half, v))
}

// GetOrCreateCamera returns the singleton Camera component, creating it if needed
func GetOrCreateCamera(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		entry = archetypes.Camera.Spawn(e)
		if robot, ok := RobotByIndex(e, ControlledRobot); ok {
			pos := components.Body.Get(robot).Position()
			components.Camera.SetValue(entry, components.CameraData{X: pos.X(), Z: pos.Z()})
		}
	}
	return components.Camera.Get(entry)
}
