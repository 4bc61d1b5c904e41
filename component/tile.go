package component

import (
	"github.com/lixenwraith/card-grove/core"
)

// TileKind is the closed set of tile variants
type TileKind uint8

const (
	TileWoods TileKind = iota
	TileEnemies
)

// TileComponent is a fixed grid cell
// Woods tiles accept one slotted villager and produce resources;
// Enemies tiles have no slot and produce hostiles unconditionally
type TileComponent struct {
	Kind        TileKind
	Coord       core.GridCoord
	SlottedCard core.Entity
	Progress    core.Entity
}

// HasSlot reports whether the tile variant can hold a card
func (t TileComponent) HasSlot() bool {
	return t.Kind == TileWoods
}

// Accepts reports whether the tile's slot takes cards of the given class
func (t TileComponent) Accepts(class core.CardClass) bool {
	return t.Kind == TileWoods && class == core.ClassVillager
}

// Produces returns the card type this tile spawns on timer completion
func (t TileComponent) Produces() core.CardType {
	if t.Kind == TileEnemies {
		return core.CardGoblin
	}
	return core.CardLog
}

func (k TileKind) String() string {
	if k == TileEnemies {
		return "enemies"
	}
	return "woods"
}
