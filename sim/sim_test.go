package sim

import (
	"testing"
	"time"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustScript(t *testing.T, src string) *script.Script {
	t.Helper()
	s, err := script.Parse(src)
	require.NoError(t, err)
	return s
}

func TestNewWorldDefaults(t *testing.T) {
	w, err := NewWorld(Options{})
	require.NoError(t, err)

	assert.Equal(t, "proving_ground", w.Level)
	require.Len(t, w.Robots, 1)
	assert.Equal(t, cfg.Idle, components.State.Get(w.Robots[0]).CurrentState)

	w.Tick()
	report := w.Report()
	require.Len(t, report, 1)
	assert.Equal(t, "robot-0", report[0].Name)
	assert.True(t, report[0].Grounded)
	assert.Equal(t, 1, w.Ticks())
}

func TestNewWorldUnknownLevel(t *testing.T) {
	_, err := NewWorld(Options{Level: "atlantis"})
	assert.ErrorContains(t, err, "atlantis")
}

func TestWalkForward(t *testing.T) {
	w, err := NewWorld(Options{Script: mustScript(t, "w:50")})
	require.NoError(t, err)
	start := w.Report()[0].Position

	w.Run(50)

	r := w.Report()[0]
	assert.Equal(t, cfg.Walk, r.State)
	assert.Greater(t, r.Position.Z()-start.Z(), 3.0)
	assert.InDelta(t, start.X(), r.Position.X(), 0.01)
	assert.Positive(t, r.FootWrites)

	tr := w.Transitions()
	require.NotEmpty(t, tr)
	assert.Equal(t, Transition{Tick: 1, Robot: "robot-0", From: cfg.Idle, To: cfg.Walk}, tr[0])
}

func TestJumpAndLand(t *testing.T) {
	w, err := NewWorld(Options{Script: mustScript(t, "none:5,j:1,none:80")})
	require.NoError(t, err)

	w.Run(86)

	var path []cfg.StateID
	for _, tr := range w.Transitions() {
		path = append(path, tr.To)
	}
	assert.Equal(t, []cfg.StateID{cfg.Jump, cfg.Idle}, path)
	assert.Equal(t, 6, w.Transitions()[0].Tick)

	r := w.Report()[0]
	assert.Equal(t, cfg.Idle, r.State)
	assert.True(t, r.Grounded)
	assert.Equal(t, 1, r.CuesPlayed)
}

func TestSpawnYaw(t *testing.T) {
	w, err := NewWorld(Options{Robots: 2})
	require.NoError(t, err)
	w.Run(3)

	report := w.Report()
	require.Len(t, report, 2)
	assert.InDelta(t, 0, report[0].Yaw, 1e-6)
	assert.InDelta(t, 90, report[1].Yaw, 1e-6)
	assert.NotEqual(t, report[0].Position, report[1].Position)
}

func TestTuningReachesRobots(t *testing.T) {
	distance := func(store *cfg.TuningStore) float64 {
		w, err := NewWorld(Options{Tuning: store, Script: mustScript(t, "w:40")})
		require.NoError(t, err)
		start := w.Report()[0].Position
		w.Run(40)
		return w.Report()[0].Position.Sub(start).Len()
	}

	fast := distance(cfg.NewTuningStore(cfg.DefaultTuning()))

	slow := cfg.DefaultTuning()
	slow.Locomotion.MoveSpeed = 1
	store := cfg.NewTuningStore(cfg.DefaultTuning())
	require.NoError(t, store.Store(slow))

	assert.Less(t, distance(store), fast/2)
}

func TestLoopTickLimit(t *testing.T) {
	w, err := NewWorld(Options{})
	require.NoError(t, err)

	l := NewLoop(w, 1000, 5)
	assert.False(t, l.IsRunning())
	l.Run()
	assert.Equal(t, 5, w.Ticks())
	assert.False(t, l.IsRunning())

	select {
	case <-l.Done():
	default:
		t.Fatal("expected Done to be closed")
	}
}

func TestLoopStop(t *testing.T) {
	w, err := NewWorld(Options{})
	require.NoError(t, err)

	l := NewLoop(w, 1000, 0)
	go l.Run()
	require.Eventually(t, l.IsRunning, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	l.Stop()

	assert.Positive(t, w.Ticks())
	assert.False(t, l.IsRunning())
}

func TestLoopNonPositiveTickRate(t *testing.T) {
	for _, rate := range []int{0, -30} {
		w, err := NewWorld(Options{})
		require.NoError(t, err)

		l := NewLoop(w, rate, 2)
		assert.NotPanics(t, l.Run)
		assert.Equal(t, 2, w.Ticks())
	}
}
