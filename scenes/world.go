package scenes

import (
	"errors"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/assets"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/systems"
	"github.com/automoto/strider/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ProvingScene drops robots onto a map and lets the keyboard drive one.
type ProvingScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	store        *cfg.TuningStore
	levelIndex   int
	robots       int
	once         sync.Once
}

// NewProvingScene creates a scene on the map at levelIndex in sorted order.
func NewProvingScene(sc SceneChanger, store *cfg.TuningStore, levelIndex, robots int) *ProvingScene {
	if robots <= 0 {
		robots = 1
	}
	return &ProvingScene{
		sceneChanger: sc,
		store:        store,
		levelIndex:   levelIndex,
		robots:       robots,
	}
}

func (ps *ProvingScene) Update() {
	ps.once.Do(ps.configure)

	switch {
	case systems.ActionJustPressed(systems.ActionSaveTuning):
		switch err := systems.SaveTuning(ps.store.Load()); {
		case errors.Is(err, systems.ErrPersistenceUnavailable):
			log.Println("[viewer] tuning not saved: persistence unavailable")
		case err == nil:
			log.Println("[viewer] tuning saved")
		}
	case systems.ActionJustPressed(systems.ActionReloadTuning):
		ps.reloadTuning()
	case systems.ActionJustPressed(systems.ActionToggleLegs):
		t := ps.store.Load()
		t.Legs.Enabled = !t.Legs.Enabled
		if err := ps.store.Store(t); err != nil {
			log.Printf("[viewer] toggle legs: %v", err)
		}
	case systems.ActionJustPressed(systems.ActionNextLevel):
		level := components.Level.Get(ps.levelEntry())
		next := (level.LevelIndex + 1) % len(level.Names)
		ps.sceneChanger.ChangeScene(NewProvingScene(ps.sceneChanger, ps.store, next, ps.robots))
		return
	}

	ps.ecs.Update()
}

// reloadTuning publishes the saved tuning, or the defaults when nothing was
// saved. Robots pick it up on their next physics tick.
func (ps *ProvingScene) reloadTuning() {
	saved, err := systems.LoadTuning()
	if err != nil {
		return
	}
	if saved == nil {
		d := cfg.DefaultTuning()
		saved = &d
	}
	systems.ApplySavedTuning(ps.store, saved)
	log.Println("[viewer] tuning reloaded")
}

func (ps *ProvingScene) levelEntry() *donburi.Entry {
	entry, _ := components.Level.First(ps.ecs.World)
	return entry
}

func (ps *ProvingScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *ProvingScene) configure() {
	systems.InitEbitenAudio()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio runs last so cues queued this frame play immediately
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateLocomotion)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(archetypes.Default, systems.DrawTerrain)
	ecs.AddRenderer(archetypes.Default, systems.DrawRobots)
	ecs.AddRenderer(archetypes.Default, systems.DrawDebug)
	ecs.AddRenderer(archetypes.Default, systems.DrawPause)

	ps.ecs = ecs

	maps, names, err := assets.LoadLevels()
	if err != nil {
		panic(err)
	}
	if ps.levelIndex < 0 || ps.levelIndex >= len(names) {
		ps.levelIndex = 0
	}
	m := maps[names[ps.levelIndex]]
	if _, err := factory.CreateTerrain(ps.ecs, m, names, ps.levelIndex); err != nil {
		panic(err)
	}

	for i := 0; i < ps.robots; i++ {
		if _, err := factory.CreateRobot(ps.ecs, i, ps.store); err != nil {
			panic(err)
		}
	}
}
