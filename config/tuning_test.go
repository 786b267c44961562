package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningValid(t *testing.T) {
	tuning := DefaultTuning()
	require.NoError(t, tuning.Validate())
	assert.Equal(t, 5.0, tuning.Locomotion.MoveSpeed)
	assert.Equal(t, 45.0, tuning.Locomotion.MaxSlopeAngle)
	assert.Equal(t, 100*time.Millisecond, tuning.Ground.CheckInterval)
	assert.Len(t, tuning.Legs.Anchors, 4)
}

func TestDefaultTuningCopiesAnchors(t *testing.T) {
	tuning := DefaultTuning()
	tuning.Legs.Anchors[0].Name = "changed"
	assert.Equal(t, "front_left", Legs.Anchors[0].Name)
}

func TestParseTuningKeepsDefaults(t *testing.T) {
	data := []byte(`
locomotion:
  moveSpeed: 3.5
ground:
  checkInterval: 50ms
legs:
  enabled: false
`)
	tuning, err := ParseTuning(data)
	require.NoError(t, err)

	assert.Equal(t, 3.5, tuning.Locomotion.MoveSpeed)
	assert.Equal(t, 50*time.Millisecond, tuning.Ground.CheckInterval)
	assert.False(t, tuning.Legs.Enabled)
	assert.Equal(t, Locomotion.JumpForce, tuning.Locomotion.JumpForce)
	assert.Equal(t, Ground.CheckRadius, tuning.Ground.CheckRadius)
	assert.Len(t, tuning.Legs.Anchors, 4)
}

func TestParseTuningRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"negative speed", "locomotion:\n  moveSpeed: -1\n"},
		{"vertical slope", "locomotion:\n  maxSlopeAngle: 90\n"},
		{"zero radius", "ground:\n  checkRadius: 0\n"},
		{"blend above one", "legs:\n  footRotationBlend: 1.5\n"},
		{"duplicate anchors", "legs:\n  anchors:\n    - name: a\n    - name: a\n"},
		{"not yaml", "locomotion: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	tuning := DefaultTuning()
	tuning.Locomotion.MoveSpeed = 0
	tuning.Ground.Layer = ""
	err := tuning.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "moveSpeed")
	assert.Contains(t, err.Error(), "ground.layer")
}

func TestTuningRoundTripThroughFile(t *testing.T) {
	tuning := DefaultTuning()
	tuning.Locomotion.RotationSpeed = 42
	tuning.Legs.StepDuration = 350 * time.Millisecond

	data, err := MarshalTuning(tuning)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, tuning, loaded)
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestTuningStore(t *testing.T) {
	store := NewTuningStore(DefaultTuning())

	next := DefaultTuning()
	next.Locomotion.MoveSpeed = 7
	require.NoError(t, store.Store(next))
	assert.Equal(t, 7.0, store.Load().Locomotion.MoveSpeed)

	bad := DefaultTuning()
	bad.Locomotion.MoveSpeed = -1
	assert.Error(t, store.Store(bad))
	assert.Equal(t, 7.0, store.Load().Locomotion.MoveSpeed)

	next.Legs.Anchors[0].Name = "mutated"
	assert.Equal(t, "front_left", store.Load().Legs.Anchors[0].Name)
}

func TestTuningStoreConcurrentStore(t *testing.T) {
	store := NewTuningStore(DefaultTuning())
	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(speed float64) {
			defer wg.Done()
			tuning := DefaultTuning()
			tuning.Locomotion.MoveSpeed = speed
			assert.NoError(t, store.Store(tuning))
			_ = store.Load()
		}(float64(i))
	}
	wg.Wait()
	speed := store.Load().Locomotion.MoveSpeed
	assert.GreaterOrEqual(t, speed, 1.0)
	assert.LessOrEqual(t, speed, 8.0)
}

func TestStateAndSoundNames(t *testing.T) {
	assert.Equal(t, "Walk", Walk.String())
	assert.Equal(t, "Unknown", StateCount.String())
	assert.Equal(t, "jump", SoundJump.String())
	assert.Equal(t, "unknown", SoundID(99).String())
}

func TestSimDeltas(t *testing.T) {
	assert.Equal(t, 20*time.Millisecond, Sim.PhysicsDelta())
	assert.Equal(t, time.Second/60, Sim.FrameDelta())
}
