package animation

import (
	"math"

	"github.com/automoto/strider/config"
	"github.com/automoto/strider/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BodyBob offsets the body vertically: a sine wave while moving, an
// exponential-style return to rest otherwise, and a short dip on landing.
type BodyBob struct {
	rest   float64
	offset float64
	clock  float64

	dip      *gween.Tween
	dipDepth float64
	dipValue float64
}

// NewBodyBob captures rest as the offset to return to.
func NewBodyBob(rest float64) *BodyBob {
	return &BodyBob{rest: rest, offset: rest}
}

// Land starts a landing dip.
func (b *BodyBob) Land(cfg config.BodyBobConfig) {
	if cfg.LandDip <= 0 || cfg.LandDipDuration <= 0 {
		return
	}
	b.dip = gween.New(1, 0, float32(cfg.LandDipDuration.Seconds()), ease.OutQuad)
	b.dipDepth = cfg.LandDip
	b.dipValue = 1
}

// Update advances the animator by dt seconds and returns the offset.
func (b *BodyBob) Update(moving bool, dt float64, cfg config.BodyBobConfig) float64 {
	b.clock += dt
	if moving {
		b.offset = b.rest + math.Sin(b.clock*cfg.Speed)*cfg.Amount
	} else {
		b.offset += (b.rest - b.offset) * gamemath.StepFactor(cfg.Speed, dt)
	}

	if b.dip != nil {
		v, done := b.dip.Update(float32(dt))
		b.dipValue = float64(v)
		if done {
			b.dip = nil
			b.dipValue = 0
		}
	}
	return b.Offset()
}

// Offset is the current vertical offset including any landing dip.
func (b *BodyBob) Offset() float64 {
	return b.offset - b.dipDepth*b.dipValue
}

func (b *BodyBob) Rest() float64 { return b.rest }

// Dipping reports whether a landing dip is playing.
func (b *BodyBob) Dipping() bool { return b.dip != nil }
