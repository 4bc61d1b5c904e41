package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/card-grove/component"
	"github.com/lixenwraith/card-grove/constant"
	"github.com/lixenwraith/card-grove/core"
	"github.com/lixenwraith/card-grove/engine"
	"github.com/lixenwraith/card-grove/event"
)

// CombatSystem runs the cooldown-gated damage exchange
// Each completed cooldown applies the attacker's damage to its target,
// clamped at zero health. A struck card without an engagement strikes
// back on a slightly faster cooldown. A kill clears the attacker's
// engagement and marks the target for despawn
type CombatSystem struct {
	world *engine.World
}

func NewCombatSystem(world *engine.World) engine.System {
	return &CombatSystem{world: world}
}

// Name returns system's name
func (s *CombatSystem) Name() string {
	return "combat"
}

func (s *CombatSystem) Priority() int {
	return constant.PriorityCombat
}

func (s *CombatSystem) Update() {
	w := s.world
	cfg := w.Resources.Config.Combat
	dt := w.Resources.Time.DeltaTime

	for _, attacker := range w.Components.Combat.All() {
		cs, ok := w.Components.Combat.Get(attacker)
		if !ok {
			continue
		}
		struck := cs.Cooldown.Tick(dt)
		w.Components.Combat.Set(attacker, cs)
		if !struck {
			continue
		}

		// Atomic two-entity fetch: if either side is gone, abort the
		// whole pair with no damage and drop the stale engagement
		acard, aok := w.Components.Card.Get(attacker)
		tcard, tok := w.Components.Card.Get(cs.Target)
		if !aok || !tok {
			w.Components.Combat.Remove(attacker)
			continue
		}

		tcard.Health -= acard.Damage
		if tcard.Health < 0 {
			tcard.Health = 0
		}

		// Defenders strike back once engaged, slightly faster than
		// the initial aggressor
		if !w.Components.Combat.Has(cs.Target) {
			w.Components.Combat.Set(cs.Target, component.CombatComponent{
				Cooldown: component.NewTimer(cfg.RetaliateCooldown, true),
				Target:   attacker,
			})
		}
		w.Components.Card.Set(cs.Target, tcard)

		w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundHit})
		w.Resources.Log.Debug("hit",
			zap.Uint64("attacker", uint64(attacker)),
			zap.Uint64("target", uint64(cs.Target)),
			zap.Int("damage", acard.Damage),
			zap.Int("health", tcard.Health))

		if tcard.Health == 0 {
			w.Components.Combat.Remove(attacker)
			w.Components.Death.Set(cs.Target, component.DeathComponent{})
			w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundDeath})
		}
	}
}
