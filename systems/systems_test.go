package systems_test

import (
	"testing"

	"github.com/automoto/strider/assets"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/systems"
	"github.com/automoto/strider/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type recordingPlayer struct {
	played  []cfg.SoundID
	volumes []float64
}

func (p *recordingPlayer) Play(sound cfg.SoundID, volume float64) {
	p.played = append(p.played, sound)
	p.volumes = append(p.volumes, volume)
}

func newWorld(t *testing.T, robots int) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	m := assets.MustLoadLevel("proving_ground")
	_, err := factory.CreateTerrain(e, m, []string{m.Name}, 0)
	require.NoError(t, err)

	store := cfg.NewTuningStore(cfg.DefaultTuning())
	for i := 0; i < robots; i++ {
		_, err := factory.CreateRobot(e, i, store)
		require.NoError(t, err)
	}
	return e
}

func TestAudioQueue(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	player := &recordingPlayer{}
	systems.SetAudioPlayer(player)
	t.Cleanup(func() { systems.SetAudioPlayer(nil) })

	systems.SetSFXVolume(e, 0.5)
	systems.NewAudioQueue(e).PlayOneShot(cfg.SoundJump, 0.7)
	systems.PlaySFX(e, cfg.SoundJump, 0)
	require.Len(t, systems.GetOrCreateAudio(e).PendingSFX, 2)

	systems.UpdateAudio(e)

	audio := systems.GetOrCreateAudio(e)
	assert.Empty(t, audio.PendingSFX)
	assert.Equal(t, 2, audio.Played)
	// silent requests are counted but not played
	assert.Equal(t, []cfg.SoundID{cfg.SoundJump}, player.played)
	assert.InDelta(t, 0.35, player.volumes[0], 1e-9)
}

func TestUpdateLocomotionFixedStep(t *testing.T) {
	e := newWorld(t, 1)

	frames := cfg.Sim.FrameRate
	for i := 0; i < frames; i++ {
		systems.UpdateLocomotion(e)
	}

	clock := systems.GetOrCreateClock(e)
	assert.Equal(t, frames, clock.Frames)
	assert.InDelta(t, cfg.Sim.PhysicsRate, clock.PhysicsTicks, 1)

	robot, ok := systems.RobotByIndex(e, 0)
	require.True(t, ok)
	ctrl := components.Robot.Get(robot).Controller
	assert.Equal(t, clock.PhysicsTicks, ctrl.PhysicsTicks())
	assert.Equal(t, frames, ctrl.LogicTicks())
}

func TestPauseStopsTicks(t *testing.T) {
	e := newWorld(t, 1)
	assert.True(t, systems.TogglePause(e))

	systems.UpdateLocomotion(e)
	assert.Zero(t, systems.GetOrCreateClock(e).Frames)

	assert.False(t, systems.TogglePause(e))
	systems.UpdateLocomotion(e)
	assert.Equal(t, 1, systems.GetOrCreateClock(e).Frames)
}

func TestEntryInputConsumesJump(t *testing.T) {
	e := newWorld(t, 1)
	robot, ok := systems.RobotByIndex(e, 0)
	require.True(t, ok)

	input := components.Input.Get(robot)
	input.Horizontal = -1
	input.Vertical = 0.5
	input.JumpQueued = true

	src := systems.NewEntryInput(robot)
	assert.Equal(t, -1.0, src.HorizontalAxis())
	assert.Equal(t, 0.5, src.VerticalAxis())
	assert.True(t, src.JumpPressed())
	assert.False(t, src.JumpPressed())
}

func TestJumpQueuesCueAndMirrorsState(t *testing.T) {
	e := newWorld(t, 1)
	robot, ok := systems.RobotByIndex(e, 0)
	require.True(t, ok)

	state := components.State.Get(robot)
	assert.Equal(t, cfg.Idle, state.CurrentState)
	assert.Equal(t, 1, state.Transitions)

	components.Input.Get(robot).JumpQueued = true
	dt := cfg.Sim.PhysicsDelta().Seconds()
	systems.StepPhysics(e, dt)
	systems.StepLogic(e, dt)

	state = components.State.Get(robot)
	assert.Equal(t, cfg.Jump, state.CurrentState)
	assert.Equal(t, cfg.Idle, state.PreviousState)
	require.Len(t, systems.GetOrCreateAudio(e).PendingSFX, 1)
	assert.Equal(t, components.SFXRequest{Sound: cfg.SoundJump, Volume: cfg.Locomotion.JumpVolume},
		systems.GetOrCreateAudio(e).PendingSFX[0])
}

func TestCreateRobotWithoutTerrain(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	_, err := factory.CreateRobot(e, 0, cfg.NewTuningStore(cfg.DefaultTuning()))
	assert.Error(t, err)
}

func TestCameraFollowsWithinMap(t *testing.T) {
	e := newWorld(t, 1)
	for i := 0; i < 200; i++ {
		systems.UpdateCamera(e)
	}

	// The spawn sits in the map corner, so the camera stops at the edge
	halfW := float64(cfg.C.Width) / 2 / cfg.C.Scale
	halfH := float64(cfg.C.Height) / 2 / cfg.C.Scale
	camera := systems.GetOrCreateCamera(e)
	assert.InDelta(t, halfW, camera.X, 1e-3)
	assert.InDelta(t, halfH, camera.Z, 1e-3)
}

func TestSaveTuningWithoutPersistence(t *testing.T) {
	err := systems.SaveTuning(cfg.DefaultTuning())
	assert.ErrorIs(t, err, systems.ErrPersistenceUnavailable)

	saved, err := systems.LoadTuning()
	assert.NoError(t, err)
	assert.Nil(t, saved)
}
