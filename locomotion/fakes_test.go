package locomotion

import (
	"math"
	"testing"

	"github.com/automoto/strider/config"
	"github.com/automoto/strider/gamemath"
	"github.com/automoto/strider/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

type fakeInput struct {
	h, v float64
	jump bool
}

func (f *fakeInput) HorizontalAxis() float64 { return f.h }
func (f *fakeInput) VerticalAxis() float64   { return f.v }

func (f *fakeInput) JumpPressed() bool {
	j := f.jump
	f.jump = false
	return j
}

type fakeAnimator struct {
	bools  map[string]bool
	floats map[string]float64
}

func newFakeAnimator() *fakeAnimator {
	return &fakeAnimator{bools: map[string]bool{}, floats: map[string]float64{}}
}

func (a *fakeAnimator) SetBool(name string, v bool) { a.bools[name] = v }

func (a *fakeAnimator) SetFloat(name string, v, dampTime, dt float64) { a.floats[name] = v }

type playedCue struct {
	sound  config.SoundID
	volume float64
}

type fakeAudio struct {
	played []playedCue
}

func (a *fakeAudio) PlayOneShot(sound config.SoundID, volume float64) {
	a.played = append(a.played, playedCue{sound, volume})
}

// fakeWorld reports a flat floor at floorY with a fixed normal.
type fakeWorld struct {
	grounded bool
	hasFloor bool
	floorY   float64
	normal   mgl64.Vec3

	sphereChecks int
	rays         int
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{grounded: true, hasFloor: true, normal: gamemath.Up}
}

func (w *fakeWorld) CheckSphere(center mgl64.Vec3, radius float64, layer string) bool {
	w.sphereChecks++
	return w.grounded
}

func (w *fakeWorld) RaycastDown(origin mgl64.Vec3, maxDist float64, layer string) (physics.Hit, bool) {
	w.rays++
	if !w.hasFloor {
		return physics.Hit{}, false
	}
	d := origin.Y() - w.floorY
	if d < 0 || d > maxDist {
		return physics.Hit{}, false
	}
	return physics.Hit{
		Point:    mgl64.Vec3{origin.X(), w.floorY, origin.Z()},
		Normal:   w.normal,
		Distance: d,
	}, true
}

// tilted returns a unit normal inclined deg degrees from up toward -Z.
func tilted(deg float64) mgl64.Vec3 {
	r := mgl64.DegToRad(deg)
	return mgl64.Vec3{0, math.Cos(r), -math.Sin(r)}
}

type appliedForce struct {
	v    mgl64.Vec3
	mode physics.ForceMode
}

// fakeBody applies instant modes immediately and ignores gravity.
type fakeBody struct {
	pos   mgl64.Vec3
	vel   mgl64.Vec3
	rot   mgl64.Quat
	drag  float64
	accel mgl64.Vec3

	forces       []appliedForce
	integrations int
}

func newFakeBody() *fakeBody {
	return &fakeBody{pos: mgl64.Vec3{0, 0.05, 0}, rot: mgl64.QuatIdent()}
}

func (b *fakeBody) Position() mgl64.Vec3     { return b.pos }
func (b *fakeBody) Velocity() mgl64.Vec3     { return b.vel }
func (b *fakeBody) SetVelocity(v mgl64.Vec3) { b.vel = v }
func (b *fakeBody) Rotation() mgl64.Quat     { return b.rot }
func (b *fakeBody) SetRotation(q mgl64.Quat) { b.rot = q }
func (b *fakeBody) SetDrag(d float64)        { b.drag = d }

func (b *fakeBody) AddForce(v mgl64.Vec3, mode physics.ForceMode) {
	b.forces = append(b.forces, appliedForce{v, mode})
	switch mode {
	case physics.Impulse, physics.VelocityChange:
		b.vel = b.vel.Add(v)
	default:
		b.accel = b.accel.Add(v)
	}
}

func (b *fakeBody) Integrate(dt float64) {
	b.integrations++
	b.vel = b.vel.Add(b.accel.Mul(dt))
	b.accel = mgl64.Vec3{}
}

func (b *fakeBody) forcesOf(mode physics.ForceMode) []mgl64.Vec3 {
	var out []mgl64.Vec3
	for _, f := range b.forces {
		if f.mode == mode {
			out = append(out, f.v)
		}
	}
	return out
}

type rig struct {
	c        *Controller
	body     *fakeBody
	world    *fakeWorld
	input    *fakeInput
	animator *fakeAnimator
	audio    *fakeAudio
	store    *config.TuningStore
}

const tickDt = 0.02

func newRig(t *testing.T) *rig {
	t.Helper()
	r := &rig{
		body:     newFakeBody(),
		world:    newFakeWorld(),
		input:    &fakeInput{},
		animator: newFakeAnimator(),
		audio:    &fakeAudio{},
		store:    config.NewTuningStore(config.DefaultTuning()),
	}
	c, err := NewController(Options{
		Name:     "test",
		Body:     r.body,
		World:    r.world,
		Input:    r.input,
		Animator: r.animator,
		Audio:    r.audio,
		Tuning:   r.store,
	})
	require.NoError(t, err)
	r.c = c
	return r
}

func (r *rig) tick(n int) {
	for i := 0; i < n; i++ {
		r.c.Tick(tickDt)
	}
}

// walk drives the controller into Walk with the given input.
func (r *rig) walk(t *testing.T, h, v float64) {
	t.Helper()
	r.input.h, r.input.v = h, v
	r.tick(1)
	require.Equal(t, config.Walk, r.c.State())
}
