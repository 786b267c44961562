package locomotion

import (
	"time"

	"github.com/automoto/strider/config"
	"github.com/automoto/strider/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// GroundSample is the cached result of the last ground query.
type GroundSample struct {
	Grounded  bool
	Normal    mgl64.Vec3
	SampledAt time.Duration
	Valid     bool
}

// GroundSensor queries the world for ground contact at most once per
// CheckInterval of simulation time, whatever the tick rate.
type GroundSensor struct {
	world   World
	cfg     config.GroundConfig
	sample  GroundSample
	queries int
}

func NewGroundSensor(world World, cfg config.GroundConfig) *GroundSensor {
	return &GroundSensor{
		world:  world,
		cfg:    cfg,
		sample: GroundSample{Normal: gamemath.Up},
	}
}

func (g *GroundSensor) SetConfig(cfg config.GroundConfig) {
	g.cfg = cfg
}

// Refresh queries the world when the cached sample is older than the check
// interval and reports whether it did.
func (g *GroundSensor) Refresh(now time.Duration, pos mgl64.Vec3) bool {
	if g.sample.Valid && now-g.sample.SampledAt <= g.cfg.CheckInterval {
		return false
	}
	g.queries++

	grounded := g.world.CheckSphere(pos.Add(g.cfg.CheckOffset.V()), g.cfg.CheckRadius, g.cfg.Layer)

	normal := gamemath.Up
	if hit, ok := g.world.RaycastDown(pos, g.cfg.CheckRadius*g.cfg.NormalRayLen, g.cfg.Layer); ok {
		if n := gamemath.SafeNormalize(hit.Normal); n.LenSqr() > 0 {
			normal = n
		}
	}

	g.sample = GroundSample{
		Grounded:  grounded,
		Normal:    normal,
		SampledAt: now,
		Valid:     true,
	}
	return true
}

func (g *GroundSensor) Sample() GroundSample { return g.sample }

func (g *GroundSensor) Grounded() bool { return g.sample.Grounded }

func (g *GroundSensor) Normal() mgl64.Vec3 { return g.sample.Normal }

// Queries counts world queries made so far.
func (g *GroundSensor) Queries() int { return g.queries }

// StableGrounded reports ground contact with vertical speed at or below threshold.
func (g *GroundSensor) StableGrounded(verticalSpeed, threshold float64) bool {
	return g.sample.Grounded && verticalSpeed <= threshold
}
