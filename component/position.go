package component

import (
	"github.com/lixenwraith/card-grove/core"
)

// PositionComponent is an entity's world-space position
// Depth is the draw depth; the visually front card of a colliding pair
// is the one placed onto the other during stacking
type PositionComponent struct {
	Pos   core.Vec2
	Depth float64
}
