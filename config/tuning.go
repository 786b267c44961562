package config

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// Tuning is an immutable snapshot of every tunable a robot reads during a tick.
// Controllers copy it at tick start, so a host may publish a new one at any time.
type Tuning struct {
	Locomotion LocomotionConfig `yaml:"locomotion"`
	Ground     GroundConfig     `yaml:"ground"`
	Legs       LegConfig        `yaml:"legs"`
	BodyBob    BodyBobConfig    `yaml:"bodyBob"`
	Animation  AnimationConfig  `yaml:"animation"`
}

// DefaultTuning returns a snapshot of the package defaults.
func DefaultTuning() Tuning {
	legs := Legs
	legs.Anchors = append([]LegAnchor(nil), Legs.Anchors...)
	return Tuning{
		Locomotion: Locomotion,
		Ground:     Ground,
		Legs:       legs,
		BodyBob:    BodyBob,
		Animation:  Animation,
	}
}

// Validate reports every out-of-range value.
func (t Tuning) Validate() error {
	var errs []error
	l := t.Locomotion
	if l.MoveSpeed <= 0 {
		errs = append(errs, fmt.Errorf("locomotion.moveSpeed must be positive, got %v", l.MoveSpeed))
	}
	if l.MaxSlopeAngle <= 0 || l.MaxSlopeAngle >= 90 {
		errs = append(errs, fmt.Errorf("locomotion.maxSlopeAngle must be in (0, 90), got %v", l.MaxSlopeAngle))
	}
	if l.SlopeSpeedMultiplier < 0 || l.SlopeSpeedMultiplier > 1 {
		errs = append(errs, fmt.Errorf("locomotion.slopeSpeedMultiplier must be in [0, 1], got %v", l.SlopeSpeedMultiplier))
	}
	if l.BrakeDrag < 0 || l.NormalDrag < 0 {
		errs = append(errs, errors.New("locomotion drag values must not be negative"))
	}
	if l.InputDeadzone < 0 || l.InputDeadzone >= 1 {
		errs = append(errs, fmt.Errorf("locomotion.inputDeadzone must be in [0, 1), got %v", l.InputDeadzone))
	}
	if l.JumpVolume < 0 || l.JumpVolume > 1 {
		errs = append(errs, fmt.Errorf("locomotion.jumpVolume must be in [0, 1], got %v", l.JumpVolume))
	}

	g := t.Ground
	if g.CheckInterval < 0 {
		errs = append(errs, fmt.Errorf("ground.checkInterval must not be negative, got %v", g.CheckInterval))
	}
	if g.CheckRadius <= 0 {
		errs = append(errs, fmt.Errorf("ground.checkRadius must be positive, got %v", g.CheckRadius))
	}
	if g.Layer == "" {
		errs = append(errs, errors.New("ground.layer must be set"))
	}

	legs := t.Legs
	if legs.StepDuration <= 0 {
		errs = append(errs, fmt.Errorf("legs.stepDuration must be positive, got %v", legs.StepDuration))
	}
	if legs.FootRotationBlend < 0 || legs.FootRotationBlend > 1 {
		errs = append(errs, fmt.Errorf("legs.footRotationBlend must be in [0, 1], got %v", legs.FootRotationBlend))
	}
	seen := make(map[string]bool, len(legs.Anchors))
	for _, a := range legs.Anchors {
		if a.Name == "" {
			errs = append(errs, errors.New("legs.anchors: anchor without a name"))
			continue
		}
		if seen[a.Name] {
			errs = append(errs, fmt.Errorf("legs.anchors: duplicate anchor %q", a.Name))
		}
		seen[a.Name] = true
	}

	if t.Animation.ParamIsWalking == "" || t.Animation.ParamSpeed == "" {
		errs = append(errs, errors.New("animation parameter names must be set"))
	}
	return errors.Join(errs...)
}

// ParseTuning decodes YAML over the defaults; fields absent from data keep
// their default values.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads a YAML tuning file.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning %s: %w", path, err)
	}
	return ParseTuning(data)
}

// MarshalTuning encodes t as YAML.
func MarshalTuning(t Tuning) ([]byte, error) {
	data, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode tuning: %w", err)
	}
	return data, nil
}

// TuningStore publishes tuning snapshots to controllers. Hosts call Store from
// any goroutine; controllers Load once at the start of each physics tick.
type TuningStore struct {
	current atomic.Pointer[Tuning]
}

// NewTuningStore creates a store holding t.
func NewTuningStore(t Tuning) *TuningStore {
	s := &TuningStore{}
	s.current.Store(&t)
	return s
}

// Load returns the latest snapshot.
func (s *TuningStore) Load() Tuning {
	return *s.current.Load()
}

// Store validates and publishes t. Invalid snapshots are rejected and the
// previous one stays active.
func (s *TuningStore) Store(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	t.Legs.Anchors = append([]LegAnchor(nil), t.Legs.Anchors...)
	s.current.Store(&t)
	return nil
}
