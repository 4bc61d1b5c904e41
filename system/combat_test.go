package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/card-grove/component"
	"github.com/lixenwraith/card-grove/core"
	"github.com/lixenwraith/card-grove/engine"
)

// Test an out-of-range enemy approaches at fixed speed without engaging
func TestEnemyApproachesTarget(t *testing.T) {
	g := newTestGame()
	w := g.World

	goblin := CreateCard(w, core.CardGoblin, core.Vec2{X: 0, Y: 0})
	CreateCard(w, core.CardVillager, core.Vec2{X: 3, Y: 0})

	stepN(g, 1, time.Second)

	pos, _ := w.Components.Position.Get(goblin)
	if math.Abs(pos.Pos.X-1.0) > 1e-9 || pos.Pos.Y != 0 {
		t.Errorf("Expected goblin at (1,0) after 1s, got %v", pos.Pos)
	}
	if w.Components.Combat.Has(goblin) {
		t.Errorf("Expected no engagement while out of range")
	}
}

// Test an in-range enemy engages and lands its first strike after the
// cooldown, and the struck villager gains a retaliation engagement
func TestEngageAndFirstStrike(t *testing.T) {
	g := newTestGame()
	w := g.World

	goblin := CreateCard(w, core.CardGoblin, core.Vec2{X: 0, Y: 0})
	villager := CreateCard(w, core.CardVillager, core.Vec2{X: 0.5, Y: 0})

	// Tick 1 engages (cooldown at 0.5s), tick 2 completes it
	stepN(g, 2, 500*time.Millisecond)

	vcard, _ := w.Components.Card.Get(villager)
	if vcard.Health != 2 {
		t.Errorf("Expected villager at 2 health, got %d", vcard.Health)
	}

	retaliation, ok := w.Components.Combat.Get(villager)
	if !ok {
		t.Fatalf("Expected the villager to strike back once engaged")
	}
	if retaliation.Target != goblin {
		t.Errorf("Expected retaliation target %d, got %d", goblin, retaliation.Target)
	}
	if retaliation.Cooldown.Duration != w.Resources.Config.Combat.RetaliateCooldown {
		t.Errorf("Expected retaliate cooldown, got %v", retaliation.Cooldown.Duration)
	}
}

// Test the retaliating villager kills the goblin and the death mark
// despawns it the same tick
func TestRetaliationKillsAttacker(t *testing.T) {
	g := newTestGame()
	w := g.World

	goblin := CreateCard(w, core.CardGoblin, core.Vec2{X: 0, Y: 0})
	villager := CreateCard(w, core.CardVillager, core.Vec2{X: 0.5, Y: 0})

	// Engagement at 0.5s, first strike at 1.0s, second strike and the
	// lethal retaliation both land at 2.0s
	stepN(g, 4, 500*time.Millisecond)

	if w.Components.Card.Has(goblin) {
		t.Errorf("Expected goblin despawned")
	}
	vcard, ok := w.Components.Card.Get(villager)
	if !ok {
		t.Fatalf("Expected villager alive")
	}
	if vcard.Health != 1 {
		t.Errorf("Expected villager at 1 health, got %d", vcard.Health)
	}
	if w.Components.Combat.Has(villager) {
		t.Errorf("Expected the killer's engagement cleared")
	}
}

// Test damage clamps at zero and a kill clears the attacker
func TestDamageClampsAtZero(t *testing.T) {
	w := engine.NewWorld(nil, nil)
	w.AddSystem(NewCombatSystem(w))
	w.AddSystem(NewDeathSystem(w))

	attacker := CreateCard(w, core.CardGoblin, core.Vec2{})
	target := CreateCard(w, core.CardVillager, core.Vec2{X: 0.5})

	acard, _ := w.Components.Card.Get(attacker)
	acard.Damage = 5
	w.Components.Card.Set(attacker, acard)

	w.Components.Combat.Set(attacker, component.CombatComponent{
		Cooldown: component.NewTimer(time.Second, true),
		Target:   target,
	})

	w.Resources.Time.Update(time.Now(), time.Second, 1)
	var observed int
	probe := &healthProbe{world: w, entity: target, observed: &observed}
	w.AddSystem(probe)
	w.Update()

	if observed != 0 {
		t.Errorf("Expected health clamped to 0, got %d", observed)
	}
	if w.Components.Card.Has(target) {
		t.Errorf("Expected target despawned")
	}
	if w.Components.Combat.Has(attacker) {
		t.Errorf("Expected attacker's engagement cleared after the kill")
	}
}

// healthProbe reads the target's health between combat and death
type healthProbe struct {
	world    *engine.World
	entity   core.Entity
	observed *int
}

func (p *healthProbe) Name() string  { return "health-probe" }
func (p *healthProbe) Priority() int { return 95 }
func (p *healthProbe) Update() {
	if card, ok := p.world.Components.Card.Get(p.entity); ok {
		*p.observed = card.Health
	}
}

// Test a stale engagement is dropped with no damage dealt
func TestStaleEngagementAborts(t *testing.T) {
	w := engine.NewWorld(nil, nil)
	w.AddSystem(NewCombatSystem(w))

	attacker := CreateCard(w, core.CardGoblin, core.Vec2{})
	target := CreateCard(w, core.CardVillager, core.Vec2{X: 0.5})

	w.Components.Combat.Set(attacker, component.CombatComponent{
		Cooldown: component.NewTimer(time.Second, true),
		Target:   target,
	})
	w.DestroyEntity(target)

	w.Resources.Time.Update(time.Now(), time.Second, 1)
	w.Update()

	if w.Components.Combat.Has(attacker) {
		t.Errorf("Expected stale engagement removed")
	}
	acard, _ := w.Components.Card.Get(attacker)
	if acard.Health != 1 {
		t.Errorf("Expected attacker untouched, got health %d", acard.Health)
	}
}
