package component

import (
	"github.com/lixenwraith/card-grove/core"
)

// SlottedComponent marks a card as occupying a tile's slot
// A slotted card is not stackable; the tile's SlottedCard points back
type SlottedComponent struct {
	Tile core.Entity
}
