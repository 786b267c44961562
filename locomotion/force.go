package locomotion

import "github.com/go-gl/mathgl/mgl64"

// PendingForce accumulates impulses between physics ticks. Adds within a tick
// sum; Drain hands the total to the single consumer and zeroes it.
type PendingForce struct {
	sum mgl64.Vec3
}

func (p *PendingForce) Add(v mgl64.Vec3) {
	p.sum = p.sum.Add(v)
}

// Drain returns the accumulated force and whether it was non-zero.
func (p *PendingForce) Drain() (mgl64.Vec3, bool) {
	v := p.sum
	p.sum = mgl64.Vec3{}
	return v, v != (mgl64.Vec3{})
}

func (p *PendingForce) Peek() mgl64.Vec3 { return p.sum }

// Empty reports whether nothing is queued.
func (p *PendingForce) Empty() bool { return p.sum == (mgl64.Vec3{}) }
