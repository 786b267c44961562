package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

// ShowDebug toggles the text overlay.
var ShowDebug = true

// DrawDebug prints the controlled robot's locomotion state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !ShowDebug {
		return
	}
	entry, ok := RobotByIndex(ecs, ControlledRobot)
	if !ok {
		ebitenutil.DebugPrint(screen, "no robot")
		return
	}

	ctrl := components.Robot.Get(entry).Controller
	state := components.State.Get(entry)
	params := components.Animator.Get(entry).Params
	clock := GetOrCreateClock(ecs)
	audio := GetOrCreateAudio(ecs)
	tuning := ctrl.Tuning()
	pos := ctrl.Body().Position()
	vel := ctrl.Body().Velocity()

	var b strings.Builder
	fmt.Fprintf(&b, "%s  state %v (from %v, %d transitions)\n", ctrl.Name(), state.CurrentState, state.PreviousState, state.Transitions)
	fmt.Fprintf(&b, "pos %.2f %.2f %.2f  yaw %.0f\n", pos.X(), pos.Y(), pos.Z(), gamemath.Yaw(ctrl.Body().Rotation()))
	fmt.Fprintf(&b, "vel %.2f %.2f %.2f  speed %.2f\n", vel.X(), vel.Y(), vel.Z(), params.Float(tuning.Animation.ParamSpeed))
	fmt.Fprintf(&b, "grounded %v  slope %.1f  ground queries %d\n", ctrl.Grounded(), ctrl.SlopeAngle(), ctrl.Ground().Queries())
	fmt.Fprintf(&b, "legs %v  stepping %d/%d\n", tuning.Legs.Enabled, ctrl.Legs().Stepping(), len(ctrl.Legs().Steppers))
	fmt.Fprintf(&b, "physics %d  frames %d  cues %d\n", clock.PhysicsTicks, clock.Frames, audio.Played)
	fmt.Fprintf(&b, "WASD move  Space jump  L legs  F5 save  F9 reload  P pause  (%d Hz physics)", cfg.Sim.PhysicsRate)
	ebitenutil.DebugPrint(screen, b.String())
}
