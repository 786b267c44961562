package physics

import (
	"math"
	"testing"

	"github.com/automoto/strider/config"
	"github.com/automoto/strider/gamemath"
	"github.com/automoto/strider/terrain"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTerrain(t *testing.T) *Terrain {
	t.Helper()
	tr, err := NewTerrain(&terrain.Map{
		Name:  "test",
		Width: 10,
		Depth: 10,
		Slabs: []terrain.Slab{
			{X: 0, Z: 0, Width: 10, Depth: 10, Layer: config.LayerGround},
			{X: 4, Z: 0, Width: 2, Depth: 10, GradeX: 0.5, Layer: config.LayerGround},
			{X: 8, Z: 8, Width: 1, Depth: 1, Height: 0.2, Layer: config.LayerHazard},
		},
		Spawns: []terrain.Spawn{{X: 5, Z: 5, Yaw: 90}},
	})
	require.NoError(t, err)
	return tr
}

func TestNewTerrainRequiresSlabs(t *testing.T) {
	_, err := NewTerrain(&terrain.Map{Name: "empty"})
	assert.Error(t, err)
	_, err = NewTerrain(nil)
	assert.Error(t, err)
}

func TestRaycastDownPicksHighestSurface(t *testing.T) {
	tr := testTerrain(t)

	hit, ok := tr.RaycastDown(mgl64.Vec3{5, 10, 5}, 20, config.LayerGround)
	require.True(t, ok)
	assert.InDelta(t, 0.5, hit.Point.Y(), 1e-9)
	assert.InDelta(t, 9.5, hit.Distance, 1e-9)
	assert.InDelta(t, math.Atan(0.5)*180/math.Pi, gamemath.Angle(hit.Normal, gamemath.Up), 1e-9)

	hit, ok = tr.RaycastDown(mgl64.Vec3{2, 1, 2}, 5, config.LayerGround)
	require.True(t, ok)
	assert.Equal(t, gamemath.Up, hit.Normal)
	assert.InDelta(t, 1, hit.Distance, 1e-9)
}

func TestRaycastDownMisses(t *testing.T) {
	tr := testTerrain(t)

	tests := []struct {
		name    string
		origin  mgl64.Vec3
		maxDist float64
		layer   string
	}{
		{"off the map", mgl64.Vec3{20, 1, 20}, 5, config.LayerGround},
		{"too short", mgl64.Vec3{2, 1, 2}, 0.5, config.LayerGround},
		{"below surface", mgl64.Vec3{2, -1, 2}, 5, config.LayerGround},
		{"wrong layer", mgl64.Vec3{2, 1, 2}, 5, config.LayerHazard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tr.RaycastDown(tt.origin, tt.maxDist, tt.layer)
			assert.False(t, ok)
		})
	}
}

func TestRaycastLayerFilter(t *testing.T) {
	tr := testTerrain(t)
	hit, ok := tr.RaycastDown(mgl64.Vec3{8.5, 1, 8.5}, 5, config.LayerHazard)
	require.True(t, ok)
	assert.InDelta(t, 0.2, hit.Point.Y(), 1e-9)
}

func TestCheckSphere(t *testing.T) {
	tr := testTerrain(t)

	tests := []struct {
		name   string
		center mgl64.Vec3
		radius float64
		want   bool
	}{
		{"resting on flat", mgl64.Vec3{2, 0.1, 2}, 0.2, true},
		{"above flat", mgl64.Vec3{2, 0.5, 2}, 0.2, false},
		{"buried", mgl64.Vec3{2, -3, 2}, 0.2, true},
		{"over ramp", mgl64.Vec3{5, 0.6, 5}, 0.2, true},
		{"above ramp", mgl64.Vec3{5, 1.0, 5}, 0.2, false},
		{"beside edge", mgl64.Vec3{10.1, 0.05, 5}, 0.2, true},
		{"clear of edge", mgl64.Vec3{10.5, 0, 5}, 0.2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.CheckSphere(tt.center, tt.radius, config.LayerGround))
		})
	}
}

func TestSpawnPose(t *testing.T) {
	tr := testTerrain(t)
	pos, yaw, err := tr.SpawnPose(0, config.LayerGround, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, 0.55, pos.Y(), 1e-9)
	assert.Equal(t, 90.0, yaw)

	_, _, err = testTerrainNoSpawns(t).SpawnPose(0, config.LayerGround, 0)
	assert.Error(t, err)
}

func testTerrainNoSpawns(t *testing.T) *Terrain {
	t.Helper()
	tr, err := NewTerrain(&terrain.Map{
		Width: 2, Depth: 2,
		Slabs: []terrain.Slab{{Width: 2, Depth: 2, Layer: config.LayerGround}},
	})
	require.NoError(t, err)
	return tr
}
