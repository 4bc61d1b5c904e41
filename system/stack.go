package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/card-grove/constant"
	"github.com/lixenwraith/card-grove/core"
	"github.com/lixenwraith/card-grove/engine"
	"github.com/lixenwraith/card-grove/event"
)

// StackSystem maintains the forest of card stacks: it attaches cards
// on contact, lazily recomputes each root's classification, and ticks
// active breeding recipes
//
// Invariant: exactly one classification per distinct stack. Parent and
// child links are mutually consistent once a tick completes; within a
// tick a detach/attach may leave a half-link until the recompute pass
type StackSystem struct {
	world *engine.World

	// Contact pairs buffered from dispatch, drained every Update
	pending []event.CollisionStartedPayload
}

func NewStackSystem(world *engine.World) engine.System {
	return &StackSystem{
		world:   world,
		pending: make([]event.CollisionStartedPayload, 0, 8),
	}
}

// Name returns system's name
func (s *StackSystem) Name() string {
	return "stack"
}

func (s *StackSystem) Priority() int {
	return constant.PriorityStack
}

func (s *StackSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCollisionStarted,
	}
}

func (s *StackSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventCollisionStarted {
		if payload, ok := ev.Payload.(*event.CollisionStartedPayload); ok {
			s.pending = append(s.pending, *payload)
		}
	}
}

// Update runs the three stack passes in order:
// attach from contacts, recompute dirty roots, tick breed timers
func (s *StackSystem) Update() {
	s.attachPending()
	s.recompute()
	s.tickRoots()
}

// attachPending places the visually front card of each contact pair
// onto the top of the other card's stack
func (s *StackSystem) attachPending() {
	w := s.world
	selection := w.Resources.Selection
	roots := w.Resources.StackRoots

	for _, pair := range s.pending {
		// The held card never auto-stacks
		if selection.IsSelected(pair.A) || selection.IsSelected(pair.B) {
			continue
		}

		if !w.Components.Card.Has(pair.A) || !w.Components.Card.Has(pair.B) {
			continue
		}
		pa, aok := w.Components.Position.Get(pair.A)
		pb, bok := w.Components.Position.Get(pair.B)
		if !aok || !bok {
			continue
		}

		// The front card by draw depth is the one being placed
		mover, base := pair.B, pair.A
		if pa.Depth > pb.Depth {
			mover, base = pair.A, pair.B
		}

		mlink, ok := w.Components.Stack.Get(mover)
		if !ok || mlink.Parent != core.NoEntity {
			// Both candidates already parented: deliberate no-op
			continue
		}

		top := findStackTop(w, base)
		tlink, ok := w.Components.Stack.Get(top)
		if !ok || tlink.Child != core.NoEntity {
			continue
		}
		if !isStackable(w, top) || !isStackable(w, mover) {
			continue
		}

		tlink.Child = mover
		w.Components.Stack.Set(top, tlink)
		mlink.Parent = top
		w.Components.Stack.Set(mover, mlink)

		// The attachment point's root gains or keeps its registry entry
		if _, exists := roots.Roots[top]; !exists {
			roots.Roots[top] = engine.StackType{Kind: engine.StackPending}
		}
		roots.QueueRecompute(top)

		// A merged-in sub-stack root is no longer a root; recomputation
		// removes its entry rather than deleting it here
		if _, exists := roots.Roots[mover]; exists {
			roots.QueueRecompute(mover)
		}

		w.Resources.Log.Debug("card attached",
			zap.Uint64("mover", uint64(mover)),
			zap.Uint64("onto", uint64(top)))
	}
	s.pending = s.pending[:0]
}

// recompute drains the dirty set and reclassifies each true root
// Two-phase collect-then-cancel: superseded classifications are
// destroyed only after the new one is inserted, so a timer entity is
// never destroyed while the fresh classification still references it
func (s *StackSystem) recompute() {
	w := s.world
	roots := w.Resources.StackRoots
	cfg := w.Resources.Config

	if len(roots.Queued) == 0 {
		return
	}
	dirty := make([]core.Entity, 0, len(roots.Queued))
	for e := range roots.Queued {
		dirty = append(dirty, e)
		delete(roots.Queued, e)
	}

	for _, e := range dirty {
		root := findStackRoot(w, e)

		var cancelled []engine.StackType
		if root != e {
			// No longer a root: drop the entry, cancel what it owned
			if st, ok := roots.Roots[e]; ok {
				delete(roots.Roots, e)
				cancelled = append(cancelled, st)
			}
		}

		if !w.Components.Card.Has(root) {
			// Root despawned between queue and recompute: drop any
			// leftover entry instead of classifying a ghost
			if st, ok := roots.Roots[root]; ok {
				delete(roots.Roots, root)
				cancelled = append(cancelled, st)
			}
			s.cancel(cancelled)
			continue
		}

		counts := chainTypes(w, root)
		newType := engine.StackType{Kind: engine.StackNothing}
		if t, ok := breedMatch(counts); ok {
			progress := createProgress(w, root, core.Vec2{X: 0, Y: 0.55}, cfg.Stacks.BreedDuration)
			newType = engine.StackType{
				Kind:     engine.StackBreed,
				Progress: progress,
				Output:   t.BreedOutput(),
			}
		}

		if prev, ok := roots.Roots[root]; ok {
			cancelled = append(cancelled, prev)
		}
		roots.Roots[root] = newType
		s.cancel(cancelled)

		w.Resources.Log.Debug("stack classified",
			zap.Uint64("root", uint64(root)),
			zap.Uint8("kind", uint8(newType.Kind)))
	}
}

// cancel releases resources owned by superseded classifications
func (s *StackSystem) cancel(cancelled []engine.StackType) {
	for _, st := range cancelled {
		if st.Kind == engine.StackBreed && st.Progress != core.NoEntity {
			s.world.DestroyEntity(st.Progress)
		}
	}
}

// breedMatch reports whether a chain composition forms a breeding
// recipe: exactly two cards of the same breedable type
func breedMatch(counts map[core.CardType]int) (core.CardType, bool) {
	if len(counts) != 1 {
		return 0, false
	}
	for t, n := range counts {
		if n == 2 && t.Breedable() {
			return t, true
		}
	}
	return 0, false
}

// tickRoots advances breed timers; a completed recipe spawns its
// output beside the root and re-queues the root so a fresh cycle can
// start while the ingredients remain
func (s *StackSystem) tickRoots() {
	w := s.world
	roots := w.Resources.StackRoots
	dt := w.Resources.Time.DeltaTime
	offset := w.Resources.Config.Cards.SpawnOffset

	var finished []core.Entity
	for root, st := range roots.Roots {
		if st.Kind != engine.StackBreed {
			continue
		}
		pc, ok := w.Components.Progress.Get(st.Progress)
		if !ok {
			// Timer entity gone (orphan cleanup after the root card
			// despawned, or external destruction): reclassify so the
			// entry is repaired or dropped instead of lingering
			roots.QueueRecompute(root)
			continue
		}
		done := pc.Timer.Tick(dt)
		w.Components.Progress.Set(st.Progress, pc)
		if !done {
			continue
		}

		w.DestroyEntity(st.Progress)
		if pos, ok := w.Components.Position.Get(root); ok {
			w.PushEvent(event.EventCardSpawnRequest, &event.CardSpawnPayload{
				Type: st.Output,
				Pos:  core.Vec2{X: pos.Pos.X + offset, Y: pos.Pos.Y},
			})
		}
		w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundComplete})
		w.Resources.Log.Debug("breed complete",
			zap.Uint64("root", uint64(root)),
			zap.String("output", st.Output.String()))
		finished = append(finished, root)
	}

	// Breeding is repeatable: back to Pending and into the dirty set
	for _, root := range finished {
		roots.Roots[root] = engine.StackType{Kind: engine.StackPending}
		roots.QueueRecompute(root)
	}
}
