package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/card-grove/constant"
	"github.com/lixenwraith/card-grove/core"
	"github.com/lixenwraith/card-grove/engine"
	"github.com/lixenwraith/card-grove/event"
	"github.com/lixenwraith/card-grove/physics"
)

// SelectionSystem is the input bridge: it turns pointer edge events
// into pick-up and drop mutations and maintains the hover projection
// (hover point, hovered tile) that the renderer reads
type SelectionSystem struct {
	world *engine.World
}

func NewSelectionSystem(world *engine.World) engine.System {
	return &SelectionSystem{world: world}
}

// Name returns system's name
func (s *SelectionSystem) Name() string {
	return "selection"
}

func (s *SelectionSystem) Priority() int {
	return constant.PrioritySelection
}

func (s *SelectionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPointerPressed,
		event.EventPointerReleased,
		event.EventPointerMoved,
	}
}

func (s *SelectionSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPointerMoved:
		if payload, ok := ev.Payload.(*event.PointerMovedPayload); ok {
			sel := s.world.Resources.Selection
			sel.HoverPoint = payload.Point
			sel.HoverValid = payload.Valid
		}
	case event.EventPointerPressed:
		if payload, ok := ev.Payload.(*event.PointerPressedPayload); ok {
			s.pickUp(payload.Picked)
		}
	case event.EventPointerReleased:
		if payload, ok := ev.Payload.(*event.PointerReleasedPayload); ok {
			s.drop(payload.Point)
		}
	}
}

// Update refreshes the hovered tile while a card is held
// Pure read-projection: it gates where a release targets, nothing else
func (s *SelectionSystem) Update() {
	sel := s.world.Resources.Selection
	if sel.Selected == core.NoEntity || !sel.HoverValid {
		sel.HoveredTile = core.NoEntity
		return
	}
	coord := core.WorldToGrid(sel.HoverPoint, s.world.Resources.Config.Tiles.Pitch())
	sel.HoveredTile = s.world.Resources.Grid.At(coord)
}

// pickUp lifts a card out of whatever structure holds it:
// unslot from its tile, then sever it from its stack
func (s *SelectionSystem) pickUp(e core.Entity) {
	w := s.world
	card, ok := w.Components.Card.Get(e)
	if !ok || !card.Type.PlayerControlled() {
		return
	}

	// Unslot: in-progress production is lost, not paused
	if slot, ok := w.Components.Slot.Get(e); ok {
		w.Components.Slot.Remove(e)
		Unslot(w, slot.Tile)
	}

	sel := w.Resources.Selection
	sel.Selected = e

	// Detach: clear the half-link on both sides and mark the old
	// parent's root dirty
	link, ok := w.Components.Stack.Get(e)
	if !ok {
		return
	}
	parent := link.Parent
	link.Parent = core.NoEntity
	w.Components.Stack.Set(e, link)

	if parent != core.NoEntity {
		roots := w.Resources.StackRoots
		if plink, ok := w.Components.Stack.Get(parent); ok {
			plink.Child = core.NoEntity
			w.Components.Stack.Set(parent, plink)
		}
		roots.QueueRecompute(parent)

		// The held card now heads its own sub-stack
		if link.Child != core.NoEntity {
			roots.Roots[e] = engine.StackType{Kind: engine.StackPending}
			roots.QueueRecompute(e)
		}

		w.Resources.Log.Debug("card detached",
			zap.Uint64("card", uint64(e)),
			zap.Uint64("parent", uint64(parent)))
	}
}

// drop releases the held card; over a tile's slot area a lone card
// may be slotted
func (s *SelectionSystem) drop(point core.Vec2) {
	w := s.world
	sel := w.Resources.Selection
	e := sel.Selected
	if e == core.NoEntity {
		return
	}
	sel.Selected = core.NoEntity

	link, ok := w.Components.Stack.Get(e)
	if !ok || link.InStack() {
		return
	}
	tileEntity := sel.HoveredTile
	if tileEntity == core.NoEntity {
		return
	}
	tilePos, ok := w.Components.Position.Get(tileEntity)
	if !ok {
		return
	}
	slotArea := physics.FromCenter(tilePos.Pos, w.Resources.Config.Tiles.SlotHalf())
	if !slotArea.Contains(point) {
		return
	}
	TrySlot(w, tileEntity, e)
}
