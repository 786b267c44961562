package locomotion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestPendingForceSumsAndDrains(t *testing.T) {
	var p PendingForce
	_, ok := p.Drain()
	assert.False(t, ok)

	p.Add(mgl64.Vec3{0, 5, 0})
	p.Add(mgl64.Vec3{1, 2, 0})
	p.Add(mgl64.Vec3{0, 0, -3})
	assert.Equal(t, mgl64.Vec3{1, 7, -3}, p.Peek())

	v, ok := p.Drain()
	assert.True(t, ok)
	assert.Equal(t, mgl64.Vec3{1, 7, -3}, v)
	assert.True(t, p.Empty())

	_, ok = p.Drain()
	assert.False(t, ok)
}
