package locomotion

import (
	"log"
	"math"
	"time"

	"github.com/automoto/strider/config"
	"github.com/automoto/strider/gamemath"
	"github.com/automoto/strider/legs"
	"github.com/automoto/strider/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// Options wires a controller to its collaborators. Body, World, Input and
// Animator are required.
type Options struct {
	Name     string
	Body     Body
	World    World
	Input    InputSource
	Animator Animator
	Audio    AudioSink // optional

	// Tuning is read at the start of every physics tick. Nil uses the defaults.
	Tuning *config.TuningStore

	// OnStateChange runs after every completed transition.
	OnStateChange func(from, to config.StateID)
}

// Controller runs one robot. It is driven by FixedUpdate at the physics rate
// and Update at the logic rate, both from the same goroutine.
type Controller struct {
	name     string
	body     Body
	world    World
	input    InputSource
	animator Animator
	audio    AudioSink

	store  *config.TuningStore
	tuning config.Tuning

	machine *Machine
	idle    *idleState
	walk    *walkState
	jumping *jumpState

	ground  *GroundSensor
	slope   SlopeClassifier
	pending PendingForce
	legs    *legs.Scheduler

	direction   mgl64.Vec3
	horizontal  float64
	jumpLatched bool

	autoRotationVelocity float64
	dt                   float64
	now                  time.Duration
	pose                 legs.BodyPose

	physicsTicks int
	logicTicks   int
}

// NewController builds a controller in the Idle state.
func NewController(opts Options) (*Controller, error) {
	switch {
	case opts.Body == nil:
		return nil, ErrMissingBody
	case opts.Animator == nil:
		return nil, ErrMissingAnimator
	case opts.Input == nil:
		return nil, ErrMissingInput
	case opts.World == nil:
		return nil, ErrMissingWorld
	}
	if opts.Tuning == nil {
		opts.Tuning = config.NewTuningStore(config.DefaultTuning())
	}
	if opts.Name == "" {
		opts.Name = "robot"
	}

	c := &Controller{
		name:     opts.Name,
		body:     opts.Body,
		world:    opts.World,
		input:    opts.Input,
		animator: opts.Animator,
		audio:    opts.Audio,
		store:    opts.Tuning,
		tuning:   opts.Tuning.Load(),
	}
	c.ground = NewGroundSensor(c.world, c.tuning.Ground)
	c.slope = SlopeClassifier{
		MaxAngle: c.tuning.Locomotion.MaxSlopeAngle,
		Deadzone: c.tuning.Locomotion.InputDeadzone,
	}
	c.pose = c.snapshot()
	c.legs = legs.NewScheduler(c.tuning.Legs, c.tuning.Ground.Layer, c.pose)
	c.legs.Plant(c.pose, c.world)

	c.idle = &idleState{baseState{c}}
	c.walk = &walkState{baseState{c}}
	c.jumping = &jumpState{baseState: baseState{c}}

	c.machine = NewMachine(c.name)
	c.machine.OnChange = opts.OnStateChange
	for _, s := range []State{c.idle, c.walk, c.jumping} {
		if err := c.machine.Register(s); err != nil {
			return nil, err
		}
	}
	if err := c.machine.ChangeState(config.Idle); err != nil {
		return nil, err
	}

	log.Printf("[locomotion] %s: controller ready, %d legs", c.name, len(c.legs.Steppers))
	return c, nil
}

// pullTuning copies the latest snapshot into the controller.
func (c *Controller) pullTuning() {
	c.tuning = c.store.Load()
	c.ground.SetConfig(c.tuning.Ground)
	c.slope = SlopeClassifier{
		MaxAngle: c.tuning.Locomotion.MaxSlopeAngle,
		Deadzone: c.tuning.Locomotion.InputDeadzone,
	}
	c.legs.SetConfig(c.tuning.Legs, c.tuning.Ground.Layer)
}

func (c *Controller) snapshot() legs.BodyPose {
	return legs.BodyPose{Position: c.body.Position(), Rotation: c.body.Rotation()}
}

// FixedUpdate runs one physics tick of dt seconds.
func (c *Controller) FixedUpdate(dt float64) {
	c.pullTuning()
	c.dt = dt
	c.now += time.Duration(math.Round(dt * float64(time.Second)))
	c.physicsTicks++

	h := mgl64.Clamp(c.input.HorizontalAxis(), -1, 1)
	v := mgl64.Clamp(c.input.VerticalAxis(), -1, 1)
	c.horizontal = h
	c.direction = gamemath.ClampMagnitude(mgl64.Vec3{h, 0, v}, 1)
	if c.input.JumpPressed() {
		c.jumpLatched = true
	}

	c.ground.Refresh(c.now, c.body.Position())

	c.machine.UpdatePhysics()
	c.applySlopeGravity()

	if f, ok := c.pending.Drain(); ok {
		c.body.AddForce(f, physics.Impulse)
	}
	c.body.Integrate(dt)

	c.pose = c.snapshot()
	if c.tuning.Legs.Enabled && c.Moving() {
		c.legs.Dispatch(c.direction, c.ground.Grounded(), c.pose, c.world)
	} else {
		c.legs.StopAll()
	}
	c.legs.Advance(dt)
}

// Update runs one logic tick: transitions and visual feedback only.
func (c *Controller) Update(dt float64) {
	c.logicTicks++
	c.machine.UpdateLogic()
	c.jumpLatched = false

	a := c.tuning.Animation
	speed := 0.0
	if c.tuning.Locomotion.MoveSpeed > 0 {
		speed = gamemath.Horizontal(c.body.Velocity()).Len() / c.tuning.Locomotion.MoveSpeed
	}
	c.animator.SetFloat(a.ParamSpeed, speed, a.SpeedDampTime, dt)

	if c.tuning.Legs.Enabled {
		c.legs.UpdateRotations()
	}
}

// Tick runs a physics tick followed by a logic tick.
func (c *Controller) Tick(dt float64) {
	c.FixedUpdate(dt)
	c.Update(dt)
}

// ChangeState requests a transition.
func (c *Controller) ChangeState(id config.StateID) error {
	return c.machine.ChangeState(id)
}

// changeState is used by states; failures are already logged by the machine.
func (c *Controller) changeState(id config.StateID) {
	_ = c.machine.ChangeState(id)
}

func (c *Controller) Name() string { return c.name }

func (c *Controller) State() config.StateID { return c.machine.Current() }

func (c *Controller) Machine() *Machine { return c.machine }

// Direction is the movement intent read on the last physics tick.
func (c *Controller) Direction() mgl64.Vec3 { return c.direction }

func (c *Controller) HorizontalInput() float64 { return c.horizontal }

// Moving reports movement intent above the deadzone.
func (c *Controller) Moving() bool {
	return c.direction.Len() > c.tuning.Locomotion.InputDeadzone
}

// JumpTriggered reports a jump edge not yet consumed by a logic tick.
func (c *Controller) JumpTriggered() bool { return c.jumpLatched }

func (c *Controller) Grounded() bool { return c.ground.Grounded() }

func (c *Controller) StableGrounded() bool {
	return c.ground.StableGrounded(c.body.Velocity().Y(), c.tuning.Locomotion.StableVerticalSpeed)
}

// Airborne reports a jump waiting to land.
func (c *Controller) Airborne() bool {
	return c.machine.Current() == config.Jump && c.jumping.Airborne()
}

func (c *Controller) Ground() *GroundSensor { return c.ground }

func (c *Controller) Slope() SlopeClassifier { return c.slope }

// SlopeAngle is the incline of the cached ground normal in degrees.
func (c *Controller) SlopeAngle() float64 { return c.slope.Angle(c.ground.Normal()) }

func (c *Controller) Pending() *PendingForce { return &c.pending }

func (c *Controller) Legs() *legs.Scheduler { return c.legs }

func (c *Controller) Body() Body { return c.body }

// Pose is the body snapshot limbs used on the last physics tick.
func (c *Controller) Pose() legs.BodyPose { return c.pose }

func (c *Controller) Tuning() config.Tuning { return c.tuning }

// Now is the simulation time accumulated from physics ticks.
func (c *Controller) Now() time.Duration { return c.now }

func (c *Controller) PhysicsTicks() int { return c.physicsTicks }

func (c *Controller) LogicTicks() int { return c.logicTicks }
