package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/card-grove/component"
	"github.com/lixenwraith/card-grove/constant"
	"github.com/lixenwraith/card-grove/core"
	"github.com/lixenwraith/card-grove/engine"
	"github.com/lixenwraith/card-grove/event"
)

// SpawnSystem creates requested cards at the start of the next tick
// Deferring creation keeps the entity set stable while other systems run
type SpawnSystem struct {
	world *engine.World

	pending []event.CardSpawnPayload
}

func NewSpawnSystem(world *engine.World) engine.System {
	return &SpawnSystem{
		world:   world,
		pending: make([]event.CardSpawnPayload, 0, 8),
	}
}

// Name returns system's name
func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return constant.PrioritySpawn
}

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCardSpawnRequest,
	}
}

func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventCardSpawnRequest {
		if payload, ok := ev.Payload.(*event.CardSpawnPayload); ok {
			s.pending = append(s.pending, *payload)
		}
	}
}

// Update drains buffered spawn requests
func (s *SpawnSystem) Update() {
	for _, req := range s.pending {
		CreateCard(s.world, req.Type, req.Pos)
	}
	s.pending = s.pending[:0]
}

// CreateCard spawns a card of the given type at a world position
// Base stats come from config; every card carries an empty stack link
func CreateCard(w *engine.World, t core.CardType, pos core.Vec2) core.Entity {
	stats := w.Resources.Config.Cards.Stats(t)
	e := w.CreateEntity()
	w.Components.Card.Set(e, component.CardComponent{
		Type:      t,
		Health:    stats.Health,
		MaxHealth: stats.MaxHealth,
		Damage:    stats.Damage,
	})
	w.Components.Stack.Set(e, component.StackLinkComponent{})
	w.Components.Position.Set(e, component.PositionComponent{Pos: pos})

	w.Resources.Log.Debug("card spawned",
		zap.Uint64("entity", uint64(e)),
		zap.String("type", t.String()),
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y))
	return e
}

// BootstrapBoard builds the fixed tile grid: a square of Woods tiles
// around the origin and one enemy camp above it, already producing
// The grid resource is read-only after this call
func BootstrapBoard(w *engine.World) {
	cfg := w.Resources.Config
	half := cfg.Tiles.WoodsGridHalf
	for x := -half; x <= half; x++ {
		for y := -half; y <= half; y++ {
			createTile(w, component.TileWoods, core.GridCoord{X: x, Y: y})
		}
	}
	camp := createTile(w, component.TileEnemies, core.GridCoord{X: 0, Y: half + 1})

	// The enemy camp has no slot and runs unconditionally from startup
	tc, _ := w.Components.Tile.Get(camp)
	tc.Progress = createProgress(w, camp, core.Vec2{X: 0, Y: 1.0}, cfg.Tiles.EnemiesProduction)
	w.Components.Tile.Set(camp, tc)

	w.Resources.Log.Info("board bootstrapped",
		zap.Int("tiles", w.Components.Tile.Count()))
}

func createTile(w *engine.World, kind component.TileKind, coord core.GridCoord) core.Entity {
	e := w.CreateEntity()
	w.Components.Tile.Set(e, component.TileComponent{
		Kind:        kind,
		Coord:       coord,
		SlottedCard: core.NoEntity,
		Progress:    core.NoEntity,
	})
	pos := core.GridToWorld(coord, w.Resources.Config.Tiles.Pitch())
	w.Components.Position.Set(e, component.PositionComponent{Pos: pos})
	w.Resources.Grid.Tiles[coord] = e
	return e
}
