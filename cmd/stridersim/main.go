package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/strider/config"
	"github.com/automoto/strider/script"
	"github.com/automoto/strider/sim"
)

func main() {
	level := flag.String("level", "", "Embedded map name (default: first map)")
	robots := flag.Int("robots", 1, "Number of robots to spawn")
	src := flag.String("script", "w:30,wj:1,none:40", "Input script, comma separated keys:ticks segments")
	ticks := flag.Int("ticks", 0, "Ticks to run (0 = script length)")
	tuningPath := flag.String("tuning", "", "YAML tuning file")
	realtime := flag.Bool("realtime", false, "Pace ticks at the physics rate instead of running flat out")
	quiet := flag.Bool("quiet", false, "Do not log state transitions")
	flag.Parse()

	config.Debug.LogTransitions = !*quiet

	s, err := script.Parse(*src)
	if err != nil {
		log.Fatalf("Invalid script: %v", err)
	}
	if *ticks <= 0 {
		*ticks = s.Len()
	}

	store := config.NewTuningStore(config.DefaultTuning())
	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		if err := store.Store(t); err != nil {
			log.Fatalf("Invalid tuning: %v", err)
		}
	}

	world, err := sim.NewWorld(sim.Options{
		Level:  *level,
		Robots: *robots,
		Tuning: store,
		Script: s,
	})
	if err != nil {
		log.Fatalf("Failed to create world: %v", err)
	}

	log.Printf("Running %d ticks of %q at %d Hz", *ticks, s.String(), config.Sim.PhysicsRate)
	if *realtime {
		loop := sim.NewLoop(world, config.Sim.PhysicsRate, *ticks)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Println("Shutting down simulation...")
			loop.Stop()
		}()
		loop.Run()
	} else {
		world.Run(*ticks)
	}

	for _, r := range world.Report() {
		fmt.Printf("%s: state=%v pos=(%.3f, %.3f, %.3f) yaw=%.1f grounded=%v groundQueries=%d footWrites=%d\n",
			r.Name, r.State, r.Position.X(), r.Position.Y(), r.Position.Z(), r.Yaw, r.Grounded, r.GroundQueries, r.FootWrites)
	}
	fmt.Printf("transitions=%d cues=%d ticks=%d\n", len(world.Transitions()), world.Report()[0].CuesPlayed, world.Ticks())
}
