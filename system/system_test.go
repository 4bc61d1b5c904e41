package system

import (
	"time"

	"github.com/lixenwraith/card-grove/config"
	"github.com/lixenwraith/card-grove/engine"
)

// newTestGame builds a game with the full pipeline and default config
func newTestGame() *engine.Game {
	return newTestGameWith(config.Default())
}

func newTestGameWith(cfg *config.Config) *engine.Game {
	g := engine.NewGame(cfg, nil)
	RegisterDefaultPipeline(g)
	return g
}

// stepN advances the game n fixed ticks
func stepN(g *engine.Game, n int, dt time.Duration) {
	for i := 0; i < n; i++ {
		g.Step(dt)
	}
}
