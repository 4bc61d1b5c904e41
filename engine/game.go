package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/card-grove/config"
)

// Game owns the world, the event router, and the tick counter
// The driving loop calls Step once per tick with the elapsed wall time
type Game struct {
	World  *World
	Router *EventRouter

	now   time.Time
	frame int64
}

// NewGame creates a world and wires the router to its event queue
func NewGame(cfg *config.Config, log *zap.Logger) *Game {
	w := NewWorld(cfg, log)
	return &Game{
		World:  w,
		Router: NewEventRouter(w.Resources.Events),
		now:    time.Now(),
	}
}

// AddSystem registers a system with the pipeline and, if it consumes
// events, with the router
func (g *Game) AddSystem(s System) {
	g.World.AddSystem(s)
	if h, ok := s.(EventHandler); ok {
		g.Router.Register(h)
	}
}

// Step advances the simulation by one tick:
// time update, event dispatch, then the ordered system pipeline
func (g *Game) Step(dt time.Duration) {
	g.frame++
	g.now = g.now.Add(dt)

	g.World.RunSafe(func() {
		g.World.Resources.Time.Update(g.now, dt, g.frame)
		g.Router.DispatchAll()
		g.World.UpdateLocked()
	})
}

// Frame returns the current tick count
func (g *Game) Frame() int64 {
	return g.frame
}
