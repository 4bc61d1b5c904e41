package engine

import (
	"github.com/lixenwraith/card-grove/component"
)

// ComponentStore holds typed pointers to every component store
// Systems cache the pointers once at construction; no runtime lookup
type ComponentStore struct {
	// Card state
	Card   *Store[component.CardComponent]
	Stack  *Store[component.StackLinkComponent]
	Slot   *Store[component.SlottedComponent]
	Combat *Store[component.CombatComponent]

	// Board
	Tile     *Store[component.TileComponent]
	Position *Store[component.PositionComponent]
	Progress *Store[component.ProgressComponent]

	// Lifecycle
	Death *Store[component.DeathComponent]
}

// newComponentStore builds all stores and the uniform lifecycle registry
func newComponentStore() (ComponentStore, []AnyStore) {
	cs := ComponentStore{
		Card:     NewStore[component.CardComponent](),
		Stack:    NewStore[component.StackLinkComponent](),
		Slot:     NewStore[component.SlottedComponent](),
		Combat:   NewStore[component.CombatComponent](),
		Tile:     NewStore[component.TileComponent](),
		Position: NewStore[component.PositionComponent](),
		Progress: NewStore[component.ProgressComponent](),
		Death:    NewStore[component.DeathComponent](),
	}
	all := []AnyStore{
		cs.Card, cs.Stack, cs.Slot, cs.Combat,
		cs.Tile, cs.Position, cs.Progress, cs.Death,
	}
	return cs, all
}
