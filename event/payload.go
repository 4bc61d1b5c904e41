package event

import (
	"github.com/lixenwraith/card-grove/core"
)

// PointerPressedPayload carries a resolved pick-up
// Picked is the topmost card under the pointer, or core.NoEntity
type PointerPressedPayload struct {
	Point  core.Vec2
	Picked core.Entity
}

// PointerReleasedPayload carries the drop point
type PointerReleasedPayload struct {
	Point core.Vec2
}

// PointerMovedPayload carries the current hover world point
// Valid is false when the pointer left the board plane
type PointerMovedPayload struct {
	Point core.Vec2
	Valid bool
}

// CollisionStartedPayload names a pair of cards that began touching
type CollisionStartedPayload struct {
	A, B core.Entity
}

// CardSpawnPayload requests a new card
type CardSpawnPayload struct {
	Type core.CardType
	Pos  core.Vec2
}

// SoundRequestPayload requests an audio cue
type SoundRequestPayload struct {
	Sound core.SoundType
}
