package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/card-grove/component"
	"github.com/lixenwraith/card-grove/core"
	"github.com/lixenwraith/card-grove/engine"
	"github.com/lixenwraith/card-grove/event"
)

func countCards(w *engine.World, t core.CardType) int {
	n := 0
	for _, e := range w.Components.Card.All() {
		if card, ok := w.Components.Card.Get(e); ok && card.Type == t {
			n++
		}
	}
	return n
}

// Test overlapping cards link into a stack and classify as a breed
func TestContactAttachesCards(t *testing.T) {
	g := newTestGame()
	w := g.World

	v1 := CreateCard(w, core.CardVillager, core.Vec2{X: 0, Y: 0})
	v2 := CreateCard(w, core.CardVillager, core.Vec2{X: 0.2, Y: 0})

	// Tick 1 detects the contact, tick 2 dispatches and attaches
	stepN(g, 2, 33*time.Millisecond)

	l1, _ := w.Components.Stack.Get(v1)
	l2, _ := w.Components.Stack.Get(v2)
	if l1.Child != v2 {
		t.Errorf("Expected %d child of %d, got %d", v2, v1, l1.Child)
	}
	if l2.Parent != v1 {
		t.Errorf("Expected %d parent of %d, got %d", v1, v2, l2.Parent)
	}

	st, ok := w.Resources.StackRoots.Roots[v1]
	if !ok {
		t.Fatalf("Expected %d registered as a root", v1)
	}
	if st.Kind != engine.StackBreed {
		t.Errorf("Expected breed classification, got %d", st.Kind)
	}
	if !w.Components.Progress.Has(st.Progress) {
		t.Errorf("Expected a live progress entity for the breed")
	}
	if w.Components.Progress.Count() != 1 {
		t.Errorf("Expected exactly 1 progress entity, got %d", w.Components.Progress.Count())
	}
}

// Test enemies never take part in stacking
func TestEnemyNeverStacks(t *testing.T) {
	g := newTestGame()
	w := g.World

	v := CreateCard(w, core.CardVillager, core.Vec2{X: 0, Y: 0})
	e := CreateCard(w, core.CardGoblin, core.Vec2{X: 0.2, Y: 0})

	stepN(g, 2, 33*time.Millisecond)

	lv, _ := w.Components.Stack.Get(v)
	le, _ := w.Components.Stack.Get(e)
	if lv.InStack() || le.InStack() {
		t.Errorf("Expected no links for an enemy contact")
	}
}

// Test a three-card chain matches no recipe
func TestThreeVillagersClassifyNothing(t *testing.T) {
	g := newTestGame()
	w := g.World

	v1 := CreateCard(w, core.CardVillager, core.Vec2{X: 0, Y: 0})
	CreateCard(w, core.CardVillager, core.Vec2{X: 0.2, Y: 0})
	CreateCard(w, core.CardVillager, core.Vec2{X: 0.4, Y: 0})

	stepN(g, 3, 33*time.Millisecond)

	st, ok := w.Resources.StackRoots.Roots[v1]
	if !ok {
		t.Fatalf("Expected %d registered as a root", v1)
	}
	if st.Kind != engine.StackNothing {
		t.Errorf("Expected no recipe for 3 villagers, got kind %d", st.Kind)
	}
	if w.Components.Progress.Count() != 0 {
		t.Errorf("Expected no progress entities, got %d", w.Components.Progress.Count())
	}
}

// Test a completed breed spawns a villager and the cycle restarts
func TestBreedSpawnsAndRepeats(t *testing.T) {
	g := newTestGame()
	w := g.World

	v1 := CreateCard(w, core.CardVillager, core.Vec2{X: 0, Y: 0})
	CreateCard(w, core.CardVillager, core.Vec2{X: 0.2, Y: 0})

	// 5s breed at 100ms ticks plus attach and spawn latency
	stepN(g, 60, 100*time.Millisecond)

	if n := countCards(w, core.CardVillager); n != 3 {
		t.Errorf("Expected 3 villagers after one breed cycle, got %d", n)
	}

	// The ingredients survive and a fresh cycle is already running
	st, ok := w.Resources.StackRoots.Roots[v1]
	if !ok {
		t.Fatalf("Expected root entry to survive completion")
	}
	if st.Kind != engine.StackBreed {
		t.Errorf("Expected a fresh breed cycle, got kind %d", st.Kind)
	}
	if w.Components.Progress.Count() != 1 {
		t.Errorf("Expected exactly 1 progress entity, got %d", w.Components.Progress.Count())
	}
}

// Test recomputation queued twice yields a single classification
func TestRecomputeIdempotent(t *testing.T) {
	w := engine.NewWorld(nil, nil)
	w.AddSystem(NewStackSystem(w))

	a := CreateCard(w, core.CardVillager, core.Vec2{X: 0, Y: 0})
	b := CreateCard(w, core.CardVillager, core.Vec2{X: 0, Y: -0.3})
	w.Components.Stack.Set(a, component.StackLinkComponent{Child: b})
	w.Components.Stack.Set(b, component.StackLinkComponent{Parent: a})

	roots := w.Resources.StackRoots
	roots.Roots[a] = engine.StackType{Kind: engine.StackPending}
	roots.QueueRecompute(a)
	roots.QueueRecompute(a)

	w.Update()

	if w.Components.Progress.Count() != 1 {
		t.Errorf("Expected 1 progress after duplicate queue, got %d", w.Components.Progress.Count())
	}
	first := roots.Roots[a].Progress

	// Re-queueing replaces the timer instead of accumulating
	roots.QueueRecompute(a)
	w.Update()

	if w.Components.Progress.Has(first) {
		t.Errorf("Expected superseded timer destroyed")
	}
	if w.Components.Progress.Count() != 1 {
		t.Errorf("Expected 1 progress after requeue, got %d", w.Components.Progress.Count())
	}
}

// Test picking a mid-stack card splits the chain in two
func TestPickupMidStackSplitsChain(t *testing.T) {
	g := newTestGame()
	w := g.World

	a := CreateCard(w, core.CardVillager, core.Vec2{X: 0, Y: 0})
	b := CreateCard(w, core.CardVillager, core.Vec2{X: 0, Y: -0.3})
	c := CreateCard(w, core.CardVillager, core.Vec2{X: 0, Y: -0.6})
	w.Components.Stack.Set(a, component.StackLinkComponent{Child: b})
	w.Components.Stack.Set(b, component.StackLinkComponent{Parent: a, Child: c})
	w.Components.Stack.Set(c, component.StackLinkComponent{Parent: b})

	roots := w.Resources.StackRoots
	roots.Roots[a] = engine.StackType{Kind: engine.StackPending}
	roots.QueueRecompute(a)
	stepN(g, 1, 33*time.Millisecond)

	w.PushEvent(event.EventPointerPressed, &event.PointerPressedPayload{
		Point:  core.Vec2{X: 0, Y: -0.3},
		Picked: b,
	})
	stepN(g, 1, 33*time.Millisecond)

	if w.Resources.Selection.Selected != b {
		t.Fatalf("Expected %d held, got %d", b, w.Resources.Selection.Selected)
	}

	la, _ := w.Components.Stack.Get(a)
	lb, _ := w.Components.Stack.Get(b)
	lc, _ := w.Components.Stack.Get(c)
	if la.Child != core.NoEntity {
		t.Errorf("Expected old parent's child link cleared, got %d", la.Child)
	}
	if lb.Parent != core.NoEntity {
		t.Errorf("Expected held card's parent link cleared, got %d", lb.Parent)
	}
	if lb.Child != c || lc.Parent != b {
		t.Errorf("Expected the sub-chain below the held card intact")
	}

	if _, ok := roots.Roots[b]; !ok {
		t.Errorf("Expected the held card registered as a new root")
	}
	if st := roots.Roots[a]; st.Kind != engine.StackNothing {
		t.Errorf("Expected the lone old root classified as nothing, got %d", st.Kind)
	}
}

// Test a dragged card stacks onto the card it is dropped over
// The contact must not register while the card is held; it begins on
// the tick after release
func TestDragDropStacksOntoContact(t *testing.T) {
	g := newTestGame()
	w := g.World

	a := CreateCard(w, core.CardVillager, core.Vec2{X: 0, Y: 0})
	b := CreateCard(w, core.CardVillager, core.Vec2{X: 5, Y: 5})

	w.PushEvent(event.EventPointerPressed, &event.PointerPressedPayload{
		Point:  core.Vec2{X: 5, Y: 5},
		Picked: b,
	})
	w.PushEvent(event.EventPointerMoved, &event.PointerMovedPayload{
		Point: core.Vec2{X: 0.2, Y: 0},
		Valid: true,
	})

	// Hover the held card over a for a while: nothing may attach
	stepN(g, 5, 33*time.Millisecond)

	la, _ := w.Components.Stack.Get(a)
	lb, _ := w.Components.Stack.Get(b)
	if la.InStack() || lb.InStack() {
		t.Fatalf("Expected no links while held, got a=%+v b=%+v", la, lb)
	}

	w.PushEvent(event.EventPointerReleased, &event.PointerReleasedPayload{
		Point: core.Vec2{X: 0.2, Y: 0},
	})
	stepN(g, 2, 33*time.Millisecond)

	la, _ = w.Components.Stack.Get(a)
	lb, _ = w.Components.Stack.Get(b)
	if la.Child != b {
		t.Errorf("Expected %d child of %d after drop, got %d", b, a, la.Child)
	}
	if lb.Parent != a {
		t.Errorf("Expected %d parent of %d after drop, got %d", a, b, lb.Parent)
	}
	if st := w.Resources.StackRoots.Roots[a]; st.Kind != engine.StackBreed {
		t.Errorf("Expected breed classification after drop, got kind %d", st.Kind)
	}
}

// Test a card overlapping a slotted card does not attach to it
func TestSlottedCardNotStackable(t *testing.T) {
	g := newTestGame()
	w := g.World
	BootstrapBoard(w)

	tile := woodsTile(w, 0, 0)
	v1 := CreateCard(w, core.CardVillager, core.Vec2{X: 0, Y: 0})
	if !TrySlot(w, tile, v1) {
		t.Fatalf("Expected slot to succeed")
	}
	v2 := CreateCard(w, core.CardVillager, core.Vec2{X: 0.2, Y: 0})

	stepN(g, 3, 33*time.Millisecond)

	l1, _ := w.Components.Stack.Get(v1)
	l2, _ := w.Components.Stack.Get(v2)
	if l1.InStack() || l2.InStack() {
		t.Errorf("Expected no links with a slotted card, got v1=%+v v2=%+v", l1, l2)
	}
}

// Test a despawned root's registry entry is dropped on recompute
func TestRecomputeDropsGhostRoot(t *testing.T) {
	w := engine.NewWorld(nil, nil)
	w.AddSystem(NewStackSystem(w))

	a := CreateCard(w, core.CardVillager, core.Vec2{})
	roots := w.Resources.StackRoots
	roots.Roots[a] = engine.StackType{Kind: engine.StackNothing}

	w.DestroyEntity(a)
	roots.QueueRecompute(a)
	w.Update()

	if _, ok := roots.Roots[a]; ok {
		t.Errorf("Expected ghost root entry removed")
	}
}

// Test a breed root despawned mid-cycle does not leak its entry once
// the orphaned timer is gone
func TestBreedRootDespawnReleasesEntry(t *testing.T) {
	w := engine.NewWorld(nil, nil)
	w.AddSystem(NewStackSystem(w))

	a := CreateCard(w, core.CardVillager, core.Vec2{X: 0, Y: 0})
	b := CreateCard(w, core.CardVillager, core.Vec2{X: 0, Y: -0.3})
	w.Components.Stack.Set(a, component.StackLinkComponent{Child: b})
	w.Components.Stack.Set(b, component.StackLinkComponent{Parent: a})

	roots := w.Resources.StackRoots
	roots.Roots[a] = engine.StackType{Kind: engine.StackPending}
	roots.QueueRecompute(a)
	w.Update()

	st := roots.Roots[a]
	if st.Kind != engine.StackBreed {
		t.Fatalf("Expected breed classification, got kind %d", st.Kind)
	}

	// Root card despawns and its orphaned timer is cleaned up elsewhere
	w.DestroyEntity(a)
	w.DestroyEntity(st.Progress)

	// The dangling timer re-queues the root; the recompute drops it
	w.Update()
	w.Update()

	if _, ok := roots.Roots[a]; ok {
		t.Errorf("Expected despawned breed root's entry released")
	}
}
