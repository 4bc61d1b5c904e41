package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/card-grove/audio"
	"github.com/lixenwraith/card-grove/config"
	"github.com/lixenwraith/card-grove/core"
	"github.com/lixenwraith/card-grove/engine"
	"github.com/lixenwraith/card-grove/event"
	"github.com/lixenwraith/card-grove/physics"
	"github.com/lixenwraith/card-grove/render"
	"github.com/lixenwraith/card-grove/system"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	logPath := flag.String("log", "", "write logs to file instead of discarding")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := buildLogger(cfg.Logging, *logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		fmt.Fprintf(os.Stderr, "card-grove: %v\n", err)
		os.Exit(1)
	}
}

// buildLogger creates the zap logger per config
// With no log file the terminal owns stdout, so output is discarded
func buildLogger(cfg config.LoggingConfig, path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	return zcfg.Build()
}

func run(cfg *config.Config, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	g := engine.NewGame(cfg, log)
	system.RegisterDefaultPipeline(g)
	system.BootstrapBoard(g.World)

	// Starting hand: two villagers below the woods
	startY := -float64(cfg.Tiles.WoodsGridHalf+1) * cfg.Tiles.Pitch().Y
	system.CreateCard(g.World, core.CardVillager, core.Vec2{X: -0.5, Y: startY})
	system.CreateCard(g.World, core.CardVillager, core.Vec2{X: 0.5, Y: startY})

	var player *audio.Service
	if cfg.Audio.Enabled {
		player = audio.NewService(cfg.Audio, log)
		if err := player.Start(); err != nil {
			log.Warn("audio start failed", zap.Error(err))
		} else {
			g.World.Resources.Audio.Player = player
			defer player.Stop()
		}
	}

	renderer := render.NewBoardRenderer(screen, g.World)
	log.Info("started",
		zap.Duration("tick_rate", cfg.Game.TickRate),
		zap.Int("systems", len(g.World.Systems())))

	return loop(g, screen, renderer, cfg.Game.TickRate)
}

// loop drives fixed ticks and forwards terminal events to the world
// Input arrives on a channel from a polling goroutine so the tick
// cadence never blocks on the terminal
func loop(g *engine.Game, screen tcell.Screen, renderer *render.BoardRenderer, tickRate time.Duration) error {
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(quit)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-quit:
			return nil

		case ev := <-events:
			if !handleInput(g, renderer, ev) {
				return nil
			}

		case <-ticker.C:
			g.Step(tickRate)
			renderer.Draw()
		}
	}
}

// handleInput translates one terminal event into pointer events
// Returns false on a quit key
func handleInput(g *engine.Game, renderer *render.BoardRenderer, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventResize:
		renderer.Resize()

	case *tcell.EventMouse:
		col, row := ev.Position()
		point := renderer.Camera().ScreenToWorld(col, row)

		g.World.PushEvent(event.EventPointerMoved, &event.PointerMovedPayload{
			Point: point,
			Valid: true,
		})

		held := g.World.Resources.Selection.Selected != core.NoEntity
		pressed := ev.Buttons()&tcell.Button1 != 0
		switch {
		case pressed && !held:
			g.World.PushEvent(event.EventPointerPressed, &event.PointerPressedPayload{
				Point:  point,
				Picked: pickCard(g.World, point),
			})
		case !pressed && held:
			g.World.PushEvent(event.EventPointerReleased, &event.PointerReleasedPayload{
				Point: point,
			})
		}
	}
	return true
}

// pickCard returns the topmost card whose collider contains the point
func pickCard(w *engine.World, point core.Vec2) core.Entity {
	best := core.NoEntity
	bestDepth := 0.0
	half := core.Vec2{X: core.CardColliderHalfX, Y: core.CardColliderHalfY}

	for _, e := range w.Components.Card.All() {
		pos, ok := w.Components.Position.Get(e)
		if !ok {
			continue
		}
		if !physics.FromCenter(pos.Pos, half).Contains(point) {
			continue
		}
		if best == core.NoEntity || pos.Depth > bestDepth {
			best = e
			bestDepth = pos.Depth
		}
	}
	return best
}
