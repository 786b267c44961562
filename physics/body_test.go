package physics

import (
	"testing"

	"github.com/automoto/strider/config"
	"github.com/automoto/strider/gamemath"
	"github.com/automoto/strider/terrain"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weightless(mass float64) config.PhysicsConfig {
	return config.PhysicsConfig{Mass: mass}
}

func TestBodyForceModes(t *testing.T) {
	tests := []struct {
		name      string
		mode      ForceMode
		immediate mgl64.Vec3
		after     mgl64.Vec3
	}{
		{"impulse scales by mass", Impulse, mgl64.Vec3{2, 0, 0}, mgl64.Vec3{2, 0, 0}},
		{"velocity change ignores mass", VelocityChange, mgl64.Vec3{4, 0, 0}, mgl64.Vec3{4, 0, 0}},
		{"force waits for integrate", Force, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}},
		{"acceleration waits for integrate", Acceleration, mgl64.Vec3{}, mgl64.Vec3{2, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(weightless(2), mgl64.Vec3{}, 0)
			b.AddForce(mgl64.Vec3{4, 0, 0}, tt.mode)
			assert.Equal(t, tt.immediate, b.Velocity())

			b.Integrate(0.5)
			v := b.Velocity()
			assert.InDeltaSlice(t, tt.after[:], v[:], 1e-9)
		})
	}
}

func TestBodyContinuousForcesClearAfterIntegrate(t *testing.T) {
	b := NewBody(weightless(1), mgl64.Vec3{}, 0)
	b.AddForce(mgl64.Vec3{0, 0, 10}, Acceleration)
	b.Integrate(0.1)
	b.Integrate(0.1)
	assert.InDelta(t, 1, b.Velocity().Z(), 1e-9)
}

func TestBodyDrag(t *testing.T) {
	b := NewBody(weightless(1), mgl64.Vec3{}, 0)
	b.SetVelocity(mgl64.Vec3{10, 0, 0})
	b.SetDrag(5)
	b.Integrate(0.1)
	assert.InDelta(t, 10/1.5, b.Velocity().X(), 1e-9)

	b.SetDrag(-1)
	assert.Zero(t, b.Drag())
}

func TestBodyRotationIsYawOnly(t *testing.T) {
	b := NewBody(weightless(1), mgl64.Vec3{}, 30)
	assert.InDelta(t, 30, gamemath.Yaw(b.Rotation()), 1e-9)

	tilt := mgl64.QuatRotate(mgl64.DegToRad(25), gamemath.Right)
	b.SetRotation(gamemath.YawRotation(90).Mul(tilt))

	assert.InDelta(t, 90, gamemath.Yaw(b.Rotation()), 1e-6)
	up := b.Rotation().Rotate(gamemath.Up)
	assert.InDeltaSlice(t, gamemath.Up[:], up[:], 1e-9)
}

func TestBodyRestsOnSurface(t *testing.T) {
	tr, err := NewTerrain(&terrain.Map{
		Width: 10, Depth: 10,
		Slabs: []terrain.Slab{{X: 0, Z: 0, Width: 10, Depth: 10, Height: 1, Layer: config.LayerGround}},
	})
	require.NoError(t, err)

	cfg := config.Physics
	b := NewBody(cfg, mgl64.Vec3{5, 1.3, 5}, 0)
	b.SetSurface(tr, config.LayerGround)

	for i := 0; i < 100; i++ {
		b.Integrate(0.02)
	}
	assert.True(t, b.OnFloor())
	assert.InDelta(t, 1+cfg.Clearance, b.Position().Y(), 1e-9)
	assert.Zero(t, b.Velocity().Y())
}

func TestBodyStepsUpRamp(t *testing.T) {
	tr, err := NewTerrain(&terrain.Map{
		Width: 10, Depth: 10,
		Slabs: []terrain.Slab{{X: 0, Z: 0, Width: 10, Depth: 10, GradeZ: 0.2, Layer: config.LayerGround}},
	})
	require.NoError(t, err)

	cfg := config.Physics
	b := NewBody(cfg, mgl64.Vec3{5, 0.2 + cfg.Clearance, 1}, 0)
	b.SetSurface(tr, config.LayerGround)
	for i := 0; i < 50; i++ {
		b.SetVelocity(mgl64.Vec3{0, b.Velocity().Y(), 2})
		b.Integrate(0.02)
	}
	assert.InDelta(t, 3, b.Position().Z(), 1e-6)
	assert.InDelta(t, 0.6+cfg.Clearance, b.Position().Y(), 1e-6)
}

func TestBodyFallSpeedLimited(t *testing.T) {
	cfg := config.Physics
	b := NewBody(cfg, mgl64.Vec3{}, 0)
	for i := 0; i < 500; i++ {
		b.Integrate(0.02)
	}
	assert.InDelta(t, -cfg.MaxFallSpeed, b.Velocity().Y(), 1e-9)
}
