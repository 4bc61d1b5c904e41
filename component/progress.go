package component

import (
	"github.com/lixenwraith/card-grove/core"
)

// ProgressComponent is a visible production timer entity
// Owned by the stack root, tile, or card that created it; the owner
// destroys it when superseded. Offset positions the bar relative to
// the owner every tick
type ProgressComponent struct {
	Timer  Timer
	Owner  core.Entity
	Offset core.Vec2
}
