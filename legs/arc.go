package legs

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

// Arc returns the foot lift at normalized step time t: zero at both ends,
// peaking at height when t is 0.5. Each half is an OutSine ease over half a step.
func Arc(t, height float64) float64 {
	t = mgl64.Clamp(t, 0, 1)
	if t > 0.5 {
		t = 1 - t
	}
	return float64(ease.OutSine(float32(t), 0, float32(height), 0.5))
}
