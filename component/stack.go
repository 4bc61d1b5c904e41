package component

import (
	"github.com/lixenwraith/card-grove/core"
)

// StackLinkComponent chains a card into a vertical stack
// Stacks are simple chains: at most one parent and one child per card,
// never branching or merging. core.NoEntity marks an absent link
type StackLinkComponent struct {
	Parent core.Entity
	Child  core.Entity
}

// InStack reports whether the card is linked above or below another card
func (l StackLinkComponent) InStack() bool {
	return l.Parent != core.NoEntity || l.Child != core.NoEntity
}
