package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/card-grove/component"
	"github.com/lixenwraith/card-grove/constant"
	"github.com/lixenwraith/card-grove/core"
	"github.com/lixenwraith/card-grove/engine"
	"github.com/lixenwraith/card-grove/event"
)

// TileSystem advances per-tile production timers
// A completed timer spawns the tile's product offset from the tile and
// resets to run again; production is continuous, not one-shot
type TileSystem struct {
	world *engine.World
}

func NewTileSystem(world *engine.World) engine.System {
	return &TileSystem{world: world}
}

// Name returns system's name
func (s *TileSystem) Name() string {
	return "tile"
}

func (s *TileSystem) Priority() int {
	return constant.PriorityTile
}

func (s *TileSystem) Update() {
	w := s.world
	dt := w.Resources.Time.DeltaTime
	offset := w.Resources.Config.Tiles.SpawnOffset

	for _, te := range w.Components.Tile.All() {
		tc, ok := w.Components.Tile.Get(te)
		if !ok || tc.Progress == core.NoEntity {
			continue
		}
		pc, ok := w.Components.Progress.Get(tc.Progress)
		if !ok {
			continue
		}
		done := pc.Timer.Tick(dt)
		if done {
			pc.Timer.Reset()
			pos, ok := w.Components.Position.Get(te)
			if ok {
				spawnPos := pos.Pos
				if tc.Kind == component.TileWoods {
					spawnPos.X += offset
				}
				w.PushEvent(event.EventCardSpawnRequest, &event.CardSpawnPayload{
					Type: tc.Produces(),
					Pos:  spawnPos,
				})
			}
			w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundComplete})
			w.Resources.Log.Debug("tile production complete",
				zap.Uint64("tile", uint64(te)),
				zap.String("kind", tc.Kind.String()),
				zap.String("product", tc.Produces().String()))
		}
		w.Components.Progress.Set(tc.Progress, pc)
	}
}

// TrySlot slots a card into a tile
// Succeeds only when the tile variant has a slot, the slot is empty,
// and the card's class is accepted. On success a production timer is
// created and attached; on failure nothing changes
func TrySlot(w *engine.World, tileEntity, cardEntity core.Entity) bool {
	tc, ok := w.Components.Tile.Get(tileEntity)
	if !ok {
		return false
	}
	card, cok := w.Components.Card.Get(cardEntity)
	if !cok {
		return false
	}
	if !tc.Accepts(card.Class()) || tc.SlottedCard != core.NoEntity {
		return false
	}

	tc.SlottedCard = cardEntity
	tc.Progress = createProgress(w, tileEntity, core.Vec2{X: 0, Y: 1.0}, w.Resources.Config.Tiles.WoodsProduction)
	w.Components.Tile.Set(tileEntity, tc)
	w.Components.Slot.Set(cardEntity, component.SlottedComponent{Tile: tileEntity})

	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundSlot})
	w.Resources.Log.Debug("card slotted",
		zap.Uint64("tile", uint64(tileEntity)),
		zap.Uint64("card", uint64(cardEntity)))
	return true
}

// Unslot clears a tile's slot and destroys its production timer
// In-progress production is lost, not paused. The card's own slot
// component is the caller's to remove
func Unslot(w *engine.World, tileEntity core.Entity) {
	tc, ok := w.Components.Tile.Get(tileEntity)
	if !ok {
		return
	}
	if tc.Progress != core.NoEntity {
		w.DestroyEntity(tc.Progress)
	}
	tc.SlottedCard = core.NoEntity
	tc.Progress = core.NoEntity
	w.Components.Tile.Set(tileEntity, tc)
}
