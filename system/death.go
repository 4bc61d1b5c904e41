package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/card-grove/constant"
	"github.com/lixenwraith/card-grove/engine"
)

// DeathSystem drains death marks and despawns the entities, last in
// the pipeline so every system saw a consistent entity set this tick
//
// Stack and slot back-references into a despawned card are not patched
// here; traversal code treats the stale identity as a chain terminator
type DeathSystem struct {
	world *engine.World
}

func NewDeathSystem(world *engine.World) engine.System {
	return &DeathSystem{world: world}
}

// Name returns system's name
func (s *DeathSystem) Name() string {
	return "death"
}

func (s *DeathSystem) Priority() int {
	return constant.PriorityDeath
}

func (s *DeathSystem) Update() {
	w := s.world
	for _, e := range w.Components.Death.All() {
		if card, ok := w.Components.Card.Get(e); ok {
			w.Resources.Log.Debug("card destroyed",
				zap.Uint64("entity", uint64(e)),
				zap.String("type", card.Type.String()))
		}
		w.DestroyEntity(e)
	}
}
