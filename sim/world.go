// Package sim runs robots headlessly on an embedded map, feeding them
// scripted input one physics tick at a time.
package sim

import (
	"fmt"
	"log"

	"github.com/automoto/strider/assets"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/gamemath"
	"github.com/automoto/strider/script"
	"github.com/automoto/strider/systems"
	"github.com/automoto/strider/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a headless world.
type Options struct {
	Level  string // embedded map name; empty picks the first
	Robots int    // number of robots, at least one
	Tuning *cfg.TuningStore
	Script *script.Script // input applied to every robot; nil holds none
}

// Transition is one recorded state change.
type Transition struct {
	Tick  int
	Robot string
	From  cfg.StateID
	To    cfg.StateID
}

// World owns an ECS with terrain and robots and advances it tick by tick.
type World struct {
	ECS    *ecs.ECS
	Store  *cfg.TuningStore
	Level  string
	Robots []*donburi.Entry

	script      *script.Script
	tick        int
	last        []cfg.StateID
	transitions []Transition
}

// NewWorld loads the map and spawns the robots.
func NewWorld(opts Options) (*World, error) {
	if opts.Robots <= 0 {
		opts.Robots = 1
	}
	if opts.Tuning == nil {
		opts.Tuning = cfg.NewTuningStore(cfg.DefaultTuning())
	}

	maps, names, err := assets.LoadLevels()
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}
	level := opts.Level
	if level == "" {
		level = names[0]
	}
	m, ok := maps[level]
	if !ok {
		return nil, fmt.Errorf("unknown level %q (have %v)", level, names)
	}
	levelIndex := 0
	for i, n := range names {
		if n == level {
			levelIndex = i
		}
	}

	w := &World{
		ECS:    ecs.NewECS(donburi.NewWorld()),
		Store:  opts.Tuning,
		Level:  level,
		script: opts.Script,
	}
	if _, err := factory.CreateTerrain(w.ECS, m, names, levelIndex); err != nil {
		return nil, err
	}
	for i := 0; i < opts.Robots; i++ {
		robot, err := factory.CreateRobot(w.ECS, i, opts.Tuning)
		if err != nil {
			return nil, err
		}
		w.Robots = append(w.Robots, robot)
		w.last = append(w.last, components.State.Get(robot).CurrentState)
	}

	log.Printf("[sim] level %s: %d slabs, %d robots", level, len(m.Slabs), len(w.Robots))
	return w, nil
}

// Tick applies this tick's scripted input, runs one physics and one logic
// tick for every robot, then flushes queued audio.
func (w *World) Tick() {
	if w.script != nil {
		frame := w.script.At(w.tick)
		for _, robot := range w.Robots {
			input := components.Input.Get(robot)
			input.Horizontal = frame.Horizontal
			input.Vertical = frame.Vertical
			if frame.Jump {
				input.JumpQueued = true
			}
		}
	}

	dt := cfg.Sim.PhysicsDelta().Seconds()
	systems.StepPhysics(w.ECS, dt)
	systems.StepLogic(w.ECS, dt)
	systems.UpdateAudio(w.ECS)

	w.tick++
	w.recordTransitions()
}

func (w *World) recordTransitions() {
	for i, robot := range w.Robots {
		state := components.State.Get(robot).CurrentState
		if state == w.last[i] {
			continue
		}
		t := Transition{
			Tick:  w.tick,
			Robot: components.Robot.Get(robot).Controller.Name(),
			From:  w.last[i],
			To:    state,
		}
		w.transitions = append(w.transitions, t)
		w.last[i] = state
		if cfg.Debug.LogTransitions {
			log.Printf("[sim] tick %d: %s %v -> %v", t.Tick, t.Robot, t.From, t.To)
		}
	}
}

// Run advances n ticks.
func (w *World) Run(n int) {
	for i := 0; i < n; i++ {
		w.Tick()
	}
}

// Ticks is the number of ticks run so far.
func (w *World) Ticks() int { return w.tick }

// Transitions returns every state change seen so far, in order.
func (w *World) Transitions() []Transition {
	return append([]Transition(nil), w.transitions...)
}

// RobotReport summarizes one robot.
type RobotReport struct {
	Name          string
	State         cfg.StateID
	Position      mgl64.Vec3
	Yaw           float64
	Grounded      bool
	GroundQueries int
	FootWrites    int
	CuesPlayed    int
}

// Report summarizes every robot.
func (w *World) Report() []RobotReport {
	played := systems.GetOrCreateAudio(w.ECS).Played
	reports := make([]RobotReport, 0, len(w.Robots))
	for _, robot := range w.Robots {
		ctrl := components.Robot.Get(robot).Controller
		writes := 0
		for _, st := range ctrl.Legs().Steppers {
			writes += st.Writes()
		}
		reports = append(reports, RobotReport{
			Name:          ctrl.Name(),
			State:         ctrl.State(),
			Position:      ctrl.Body().Position(),
			Yaw:           gamemath.Yaw(ctrl.Body().Rotation()),
			Grounded:      ctrl.Grounded(),
			GroundQueries: ctrl.Ground().Queries(),
			FootWrites:    writes,
			CuesPlayed:    played,
		})
	}
	return reports
}
