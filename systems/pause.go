package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle.
// This system should run AFTER UpdateInput but BEFORE UpdateLocomotion.
func UpdatePause(ecs *ecs.ECS) {
	if ActionJustPressed(ActionPause) {
		TogglePause(ecs)
	}
}

// TogglePause stops or resumes the locomotion clock.
func TogglePause(ecs *ecs.ECS) bool {
	clock := GetOrCreateClock(ecs)
	clock.Paused = !clock.Paused
	return clock.Paused
}

// DrawPause dims the screen while paused.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateClock(ecs).Paused {
		return
	}
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, w, h, color.RGBA{0, 0, 0, 128}, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED", int(w)/2-18, int(h)/2)
}
