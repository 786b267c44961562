package sim

import (
	"log"
	"sync/atomic"
	"time"

	cfg "github.com/automoto/strider/config"
)

// Loop ticks a World in real time at a fixed rate.
type Loop struct {
	world    *World
	tickRate int
	limit    int
	running  atomic.Bool
	stopChan chan struct{}
	done     chan struct{}
}

// NewLoop creates a loop that stops by itself after limit ticks; limit <= 0
// runs until Stop. A tickRate <= 0 falls back to the physics rate.
func NewLoop(world *World, tickRate, limit int) *Loop {
	if tickRate <= 0 {
		tickRate = cfg.Sim.PhysicsRate
	}
	return &Loop{
		world:    world,
		tickRate: tickRate,
		limit:    limit,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run blocks until the tick limit is reached or Stop is called.
func (l *Loop) Run() {
	l.running.Store(true)
	defer close(l.done)
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("[sim] loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			l.running.Store(false)
			log.Println("[sim] loop stopped")
			return
		case <-ticker.C:
			l.world.Tick()
			if l.limit > 0 && l.world.Ticks() >= l.limit {
				l.running.Store(false)
				log.Printf("[sim] loop finished after %d ticks", l.world.Ticks())
				return
			}
		}
	}
}

// Stop ends Run and waits for it to return. Safe to call once.
func (l *Loop) Stop() {
	close(l.stopChan)
	<-l.done
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// IsRunning reports whether Run is currently ticking the world.
func (l *Loop) IsRunning() bool {
	return l.running.Load()
}
