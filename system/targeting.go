package system

import (
	"github.com/lixenwraith/card-grove/component"
	"github.com/lixenwraith/card-grove/constant"
	"github.com/lixenwraith/card-grove/core"
	"github.com/lixenwraith/card-grove/engine"
)

// TargetingSystem acquires targets for hostile cards and closes the
// distance. An enemy without an engagement picks the nearest villager;
// out of strike range it approaches at fixed speed, within range it
// gains a repeating attack cooldown
//
// Exact-distance ties resolve by store iteration order: first found
// wins. The winner among ties is not a stable choice
type TargetingSystem struct {
	world *engine.World
}

func NewTargetingSystem(world *engine.World) engine.System {
	return &TargetingSystem{world: world}
}

// Name returns system's name
func (s *TargetingSystem) Name() string {
	return "targeting"
}

func (s *TargetingSystem) Priority() int {
	return constant.PriorityTargeting
}

func (s *TargetingSystem) Update() {
	w := s.world
	cfg := w.Resources.Config.Combat
	dt := w.Resources.Time.DeltaTime

	cards := w.Query().
		With(w.Components.Card).
		With(w.Components.Position).
		Execute()

	type acquired struct {
		enemy, target core.Entity
		targetPos     core.Vec2
	}
	var targets []acquired

	for _, e := range cards {
		if w.Components.Combat.Has(e) {
			// Already engaging: no re-evaluation
			continue
		}
		card, _ := w.Components.Card.Get(e)
		if card.Class() != core.ClassEnemy {
			continue
		}
		pos, _ := w.Components.Position.Get(e)

		best := core.NoEntity
		bestPos := core.Vec2{}
		bestDistSq := 0.0
		for _, te := range cards {
			tcard, _ := w.Components.Card.Get(te)
			if tcard.Class() != core.ClassVillager {
				continue
			}
			tpos, _ := w.Components.Position.Get(te)
			d := tpos.Pos.DistanceSq(pos.Pos)
			if best == core.NoEntity || d < bestDistSq {
				best = te
				bestPos = tpos.Pos
				bestDistSq = d
			}
		}
		if best != core.NoEntity {
			targets = append(targets, acquired{enemy: e, target: best, targetPos: bestPos})
		}
	}

	for _, t := range targets {
		pos, ok := w.Components.Position.Get(t.enemy)
		if !ok {
			continue
		}
		delta := t.targetPos.Sub(pos.Pos)
		if delta.Length() > cfg.StrikeRange {
			// Still approaching the last known position, not yet fighting
			step := delta.Normalize().Scale(cfg.ApproachSpeed * dt.Seconds())
			pos.Pos = pos.Pos.Add(step)
			w.Components.Position.Set(t.enemy, pos)
			w.Components.Combat.Remove(t.enemy)
		} else {
			w.Components.Combat.Set(t.enemy, component.CombatComponent{
				Cooldown: component.NewTimer(cfg.AttackCooldown, true),
				Target:   t.target,
			})
		}
	}
}
