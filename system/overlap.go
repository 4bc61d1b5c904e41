package system

import (
	"github.com/lixenwraith/card-grove/constant"
	"github.com/lixenwraith/card-grove/core"
	"github.com/lixenwraith/card-grove/engine"
	"github.com/lixenwraith/card-grove/event"
	"github.com/lixenwraith/card-grove/physics"
)

// cardPair is an unordered entity pair key (smaller id first)
type cardPair struct {
	lo, hi core.Entity
}

func makePair(a, b core.Entity) cardPair {
	if a > b {
		a, b = b, a
	}
	return cardPair{lo: a, hi: b}
}

// OverlapSystem is the collision broad-phase: it tests card colliders
// pairwise and emits a contact event once per pair when the overlap
// begins. The stack system consumes the events on the next dispatch
type OverlapSystem struct {
	world *engine.World

	touching map[cardPair]struct{}
}

func NewOverlapSystem(world *engine.World) engine.System {
	return &OverlapSystem{
		world:    world,
		touching: make(map[cardPair]struct{}),
	}
}

// Name returns system's name
func (s *OverlapSystem) Name() string {
	return "overlap"
}

func (s *OverlapSystem) Priority() int {
	return constant.PriorityOverlap
}

// Update diffs the current overlapping pair set against the last tick
// Pairs involving the held card are excluded entirely: while dragging
// they would emit a began-edge the stack system must ignore, and the
// pair has to read as new on the tick after release for the attach to
// happen at all
func (s *OverlapSystem) Update() {
	w := s.world
	selection := w.Resources.Selection
	cards := w.Query().
		With(w.Components.Card).
		With(w.Components.Position).
		Execute()

	half := core.Vec2{X: core.CardColliderHalfX, Y: core.CardColliderHalfY}
	boxes := make([]physics.AABB, len(cards))
	for i, e := range cards {
		pos, _ := w.Components.Position.Get(e)
		boxes[i] = physics.FromCenter(pos.Pos, half)
	}

	current := make(map[cardPair]struct{}, len(s.touching))
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			if selection.IsSelected(cards[i]) || selection.IsSelected(cards[j]) {
				continue
			}
			if !boxes[i].Overlaps(boxes[j]) {
				continue
			}
			pair := makePair(cards[i], cards[j])
			current[pair] = struct{}{}
			if _, known := s.touching[pair]; !known {
				w.PushEvent(event.EventCollisionStarted, &event.CollisionStartedPayload{
					A: pair.lo,
					B: pair.hi,
				})
			}
		}
	}

	s.touching = current
}
