package system

import (
	"time"

	"github.com/lixenwraith/card-grove/component"
	"github.com/lixenwraith/card-grove/core"
	"github.com/lixenwraith/card-grove/engine"
)

// createProgress spawns a production timer entity owned by owner
// The bar tracks the owner's position at the given offset; the owner
// is responsible for destroying it when superseded
func createProgress(w *engine.World, owner core.Entity, offset core.Vec2, d time.Duration) core.Entity {
	e := w.CreateEntity()
	w.Components.Progress.Set(e, component.ProgressComponent{
		Timer:  component.NewTimer(d, false),
		Owner:  owner,
		Offset: offset,
	})
	pos := core.Vec2{}
	if p, ok := w.Components.Position.Get(owner); ok {
		pos = p.Pos.Add(offset)
	}
	w.Components.Position.Set(e, component.PositionComponent{Pos: pos})
	return e
}

// isStackable reports whether a card may take part in stacking:
// not enemy-class and not currently slotted in a tile
func isStackable(w *engine.World, e core.Entity) bool {
	card, ok := w.Components.Card.Get(e)
	if !ok {
		return false
	}
	if card.Class() == core.ClassEnemy {
		return false
	}
	return !w.Components.Slot.Has(e)
}

// findStackTop walks child links to the bottom-most card of a stack
// A dangling link ends the walk at the stale child identity
func findStackTop(w *engine.World, e core.Entity) core.Entity {
	current := e
	for {
		link, ok := w.Components.Stack.Get(current)
		if !ok || link.Child == core.NoEntity {
			return current
		}
		current = link.Child
	}
}

// findStackRoot walks parent links to the top-most card of a stack
// A dangling link ends the walk at the stale parent identity
func findStackRoot(w *engine.World, e core.Entity) core.Entity {
	current := e
	for {
		link, ok := w.Components.Stack.Get(current)
		if !ok || link.Parent == core.NoEntity {
			return current
		}
		current = link.Parent
	}
}

// chainTypes counts card types along the chain from root downward
// Missing identities end the walk silently
func chainTypes(w *engine.World, root core.Entity) map[core.CardType]int {
	counts := make(map[core.CardType]int)
	current := root
	for current != core.NoEntity {
		card, ok := w.Components.Card.Get(current)
		if !ok {
			break
		}
		counts[card.Type]++
		link, ok := w.Components.Stack.Get(current)
		if !ok {
			break
		}
		current = link.Child
	}
	return counts
}
