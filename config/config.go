package config

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a YAML-friendly vector.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// V converts to an mgl64 vector.
func (v Vec3) V() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// LocomotionConfig contains body movement tunables
type LocomotionConfig struct {
	// Movement
	MoveSpeed            float64 `yaml:"moveSpeed"`            // target horizontal speed, units/s
	RotationSpeed        float64 `yaml:"rotationSpeed"`        // manual turn rate, degrees/s
	JumpForce            float64 `yaml:"jumpForce"`            // upward impulse
	BrakeDrag            float64 `yaml:"brakeDrag"`            // drag with no input or on steep ground
	NormalDrag           float64 `yaml:"normalDrag"`           // drag while walking
	SlopeSpeedMultiplier float64 `yaml:"slopeSpeedMultiplier"` // speed scale on steep ground

	// Heading
	AutoRotationSmoothTime float64 `yaml:"autoRotationSmoothTime"` // seconds

	// Slopes
	MaxSlopeAngle float64 `yaml:"maxSlopeAngle"` // degrees
	SlopeGravity  float64 `yaml:"slopeGravity"`  // downslope acceleration while standing

	// Thresholds
	InputDeadzone       float64 `yaml:"inputDeadzone"`       // movement magnitude treated as no input
	TurnDeadzone        float64 `yaml:"turnDeadzone"`        // manual turn axis deadzone
	StableVerticalSpeed float64 `yaml:"stableVerticalSpeed"` // max vertical speed counted as landed

	// Audio
	JumpVolume float64 `yaml:"jumpVolume"`
}

// GroundConfig contains ground sensing tunables
type GroundConfig struct {
	CheckInterval time.Duration `yaml:"checkInterval"` // minimum time between spatial queries
	CheckRadius   float64       `yaml:"checkRadius"`   // sphere overlap radius
	CheckOffset   Vec3          `yaml:"checkOffset"`   // sphere centre relative to the body position
	NormalRayLen  float64       `yaml:"normalRayLen"`  // downward ray length as a multiple of CheckRadius
	Layer         string        `yaml:"layer"`
}

// LegAnchor places one limb's resting position in body space.
type LegAnchor struct {
	Name   string `yaml:"name"`
	Offset Vec3   `yaml:"offset"`
}

// LegConfig contains procedural stepping tunables
type LegConfig struct {
	Enabled           bool          `yaml:"enabled"`
	StepDistance      float64       `yaml:"stepDistance"`
	StepHeight        float64       `yaml:"stepHeight"`
	StepDuration      time.Duration `yaml:"stepDuration"`
	FootRotationBlend float64       `yaml:"footRotationBlend"` // slerp factor per logic tick
	RayLength         float64       `yaml:"rayLength"`
	Anchors           []LegAnchor   `yaml:"anchors"`
}

// BodyBobConfig contains cosmetic body oscillation tunables
type BodyBobConfig struct {
	Amount          float64       `yaml:"amount"`
	Speed           float64       `yaml:"speed"`
	LandDip         float64       `yaml:"landDip"`
	LandDipDuration time.Duration `yaml:"landDipDuration"`
}

// AnimationConfig names the animator parameters the controller drives
type AnimationConfig struct {
	SpeedDampTime  float64 `yaml:"speedDampTime"`
	ParamIsWalking string  `yaml:"paramIsWalking"`
	ParamSpeed     string  `yaml:"paramSpeed"`
}

// PhysicsConfig contains rigid body integration values
type PhysicsConfig struct {
	Gravity      float64 // vertical acceleration, negative is down
	Mass         float64
	MaxFallSpeed float64
	Clearance    float64 // resting height of the body position above the surface
	MaxStep      float64 // tallest rise the body is lifted onto in one step
}

// SimConfig contains tick rates
type SimConfig struct {
	PhysicsRate int // fixed physics ticks per second
	FrameRate   int // logic ticks per second
}

// PhysicsDelta is the fixed physics step.
func (s SimConfig) PhysicsDelta() time.Duration {
	return time.Second / time.Duration(s.PhysicsRate)
}

// FrameDelta is the logic step.
func (s SimConfig) FrameDelta() time.Duration {
	return time.Second / time.Duration(s.FrameRate)
}

// DebugConfig contains debug switches
type DebugConfig struct {
	LogTransitions bool
}

// CameraConfig contains top-down camera settings
type CameraConfig struct {
	FollowSmoothing float64 // fraction of the remaining distance closed each frame
}

// Config holds general viewer configuration
type Config struct {
	Width  int
	Height int
	Scale  float64 // pixels per world unit in the top-down view
}

// Global configuration instances
var C *Config
var Locomotion LocomotionConfig
var Ground GroundConfig
var Legs LegConfig
var BodyBob BodyBobConfig
var Animation AnimationConfig
var Physics PhysicsConfig
var Sim SimConfig
var Debug DebugConfig
var Camera CameraConfig

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Scale:  48,
	}

	Locomotion = LocomotionConfig{
		MoveSpeed:            5.0,
		RotationSpeed:        100.0,
		JumpForce:            5.0,
		BrakeDrag:            5.0,
		NormalDrag:           0.0,
		SlopeSpeedMultiplier: 0.7,

		AutoRotationSmoothTime: 0.2,

		MaxSlopeAngle: 45.0,
		SlopeGravity:  5.0,

		InputDeadzone:       0.1,
		TurnDeadzone:        0.1,
		StableVerticalSpeed: 0.1,

		JumpVolume: 0.7,
	}

	Ground = GroundConfig{
		CheckInterval: 100 * time.Millisecond,
		CheckRadius:   0.2,
		CheckOffset:   Vec3{0, 0.05, 0},
		NormalRayLen:  2.0,
		Layer:         LayerGround,
	}

	Legs = LegConfig{
		Enabled:           true,
		StepDistance:      0.5,
		StepHeight:        0.2,
		StepDuration:      500 * time.Millisecond,
		FootRotationBlend: 0.1,
		RayLength:         10.0,
		Anchors: []LegAnchor{
			{Name: "front_left", Offset: Vec3{-0.3, 0.5, 0.35}},
			{Name: "front_right", Offset: Vec3{0.3, 0.5, 0.35}},
			{Name: "rear_left", Offset: Vec3{-0.3, 0.5, -0.35}},
			{Name: "rear_right", Offset: Vec3{0.3, 0.5, -0.35}},
		},
	}

	BodyBob = BodyBobConfig{
		Amount:          0.05,
		Speed:           10.0,
		LandDip:         0.04,
		LandDipDuration: 250 * time.Millisecond,
	}

	Animation = AnimationConfig{
		SpeedDampTime:  0.1,
		ParamIsWalking: "IsWalking",
		ParamSpeed:     "Speed",
	}

	Physics = PhysicsConfig{
		Gravity:      -9.81,
		Mass:         1.0,
		MaxFallSpeed: 20.0,
		Clearance:    0.05,
		MaxStep:      0.5,
	}

	Sim = SimConfig{
		PhysicsRate: 50,
		FrameRate:   60,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	Debug = DebugConfig{
		LogTransitions: false,
	}
}
