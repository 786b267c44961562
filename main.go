package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/strider/config"
	"github.com/automoto/strider/scenes"
	"github.com/automoto/strider/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(store *config.TuningStore, robots int) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewProvingScene(g, store, 0, robots)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML tuning file (overrides saved tuning)")
	robots := flag.Int("robots", 1, "Number of robots to spawn")
	logTransitions := flag.Bool("log-transitions", false, "Log every locomotion state change")
	flag.Parse()

	config.Debug.LogTransitions = *logTransitions

	store := config.NewTuningStore(config.DefaultTuning())

	// Initialize persistence and load saved tuning
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadTuning(); err == nil && saved != nil {
		systems.ApplySavedTuning(store, saved)
	}
	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		if err := store.Store(t); err != nil {
			log.Fatalf("Invalid tuning: %v", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("strider")
	ebiten.SetTPS(config.Sim.FrameRate)

	if err := ebiten.RunGame(NewGame(store, *robots)); err != nil {
		log.Fatal(err)
	}
}
