package component

import (
	"github.com/lixenwraith/card-grove/core"
)

// CardComponent holds the per-instance mutable state of a card
type CardComponent struct {
	Type core.CardType

	// Health is signed so damage math can clamp at zero explicitly
	Health    int
	MaxHealth int
	Damage    int
}

// Class returns the behavior class of the card
func (c CardComponent) Class() core.CardClass {
	return c.Type.Class()
}
