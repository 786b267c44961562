package systems

import (
	"math"

	"github.com/automoto/strider/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// ControlledRobot is the spawn index the keyboard and gamepads drive.
var ControlledRobot = 0

// UpdateInput polls the keyboard and gamepads into the controlled robot's
// Input component. Must run BEFORE UpdateLocomotion in the system order.
func UpdateInput(ecs *ecs.ECS) {
	entry, ok := RobotByIndex(ecs, ControlledRobot)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	h, v := 0.0, 0.0
	if ActionPressed(ActionMoveRight) {
		h++
	}
	if ActionPressed(ActionMoveLeft) {
		h--
	}
	if ActionPressed(ActionMoveForward) {
		v++
	}
	if ActionPressed(ActionMoveBack) {
		v--
	}

	// An analog stick past the deadzone overrides the digital axes
	if sh, sv, ok := analogStick(gamepadIDs); ok {
		h, v = sh, sv
	}

	input.Horizontal = h
	input.Vertical = v
	if ActionJustPressed(ActionJump) {
		input.JumpQueued = true
	}
}

// ActionPressed reports whether any key or button bound to id is held.
func ActionPressed(id ActionID) bool {
	binding := Input.Bindings[id]
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// ActionJustPressed reports whether id went down this frame.
func ActionJustPressed(id ActionID) bool {
	binding := Input.Bindings[id]
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// analogStick returns the first left stick outside the deadzone. Stick up is
// negative in ebiten, forward is positive here.
func analogStick(gamepads []ebiten.GamepadID) (h, v float64, ok bool) {
	deadzone := Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		sh := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		sv := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(sh) < deadzone && math.Abs(sv) < deadzone {
			continue
		}
		return sh, -sv, true
	}
	return 0, 0, false
}

// EntryInput reads a robot's Input component as a locomotion.InputSource.
type EntryInput struct {
	entry *donburi.Entry
}

func (in EntryInput) HorizontalAxis() float64 {
	return components.Input.Get(in.entry).Horizontal
}

func (in EntryInput) VerticalAxis() float64 {
	return components.Input.Get(in.entry).Vertical
}

// JumpPressed consumes the queued edge.
func (in EntryInput) JumpPressed() bool {
	input := components.Input.Get(in.entry)
	pressed := input.JumpQueued
	input.JumpQueued = false
	return pressed
}

// NewEntryInput adapts a robot entry's Input component to the controller.
func NewEntryInput(entry *donburi.Entry) EntryInput {
	return EntryInput{entry: entry}
}
