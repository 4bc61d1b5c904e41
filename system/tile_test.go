package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/card-grove/core"
	"github.com/lixenwraith/card-grove/engine"
)

func woodsTile(w *engine.World, x, y int) core.Entity {
	return w.Resources.Grid.At(core.GridCoord{X: x, Y: y})
}

// Test slotting a villager into a woods tile
func TestTrySlotAcceptsVillager(t *testing.T) {
	g := newTestGame()
	w := g.World
	BootstrapBoard(w)

	tile := woodsTile(w, 0, 0)
	v := CreateCard(w, core.CardVillager, core.Vec2{X: 5, Y: 5})

	if !TrySlot(w, tile, v) {
		t.Fatalf("Expected slot to succeed")
	}

	tc, _ := w.Components.Tile.Get(tile)
	if tc.SlottedCard != v {
		t.Errorf("Expected slotted card %d, got %d", v, tc.SlottedCard)
	}
	if !w.Components.Slot.Has(v) {
		t.Errorf("Expected slot component on the card")
	}
	pc, ok := w.Components.Progress.Get(tc.Progress)
	if !ok {
		t.Fatalf("Expected a production timer")
	}
	if pc.Timer.Duration != w.Resources.Config.Tiles.WoodsProduction {
		t.Errorf("Expected woods production duration, got %v", pc.Timer.Duration)
	}
}

// Test slot exclusivity and class rejection
func TestTrySlotRejections(t *testing.T) {
	g := newTestGame()
	w := g.World
	BootstrapBoard(w)

	tile := woodsTile(w, 0, 0)
	v1 := CreateCard(w, core.CardVillager, core.Vec2{X: 5, Y: 5})
	v2 := CreateCard(w, core.CardVillager, core.Vec2{X: 6, Y: 5})
	goblin := CreateCard(w, core.CardGoblin, core.Vec2{X: 7, Y: 5})
	log := CreateCard(w, core.CardLog, core.Vec2{X: 8, Y: 5})

	if TrySlot(w, tile, goblin) {
		t.Errorf("Expected enemy rejected")
	}
	if TrySlot(w, tile, log) {
		t.Errorf("Expected resource rejected")
	}
	if !TrySlot(w, tile, v1) {
		t.Fatalf("Expected first villager accepted")
	}
	if TrySlot(w, tile, v2) {
		t.Errorf("Expected occupied slot to reject")
	}

	camp := w.Resources.Grid.At(core.GridCoord{X: 0, Y: w.Resources.Config.Tiles.WoodsGridHalf + 1})
	if TrySlot(w, camp, v2) {
		t.Errorf("Expected slotless enemy tile to reject")
	}
}

// Test a slotted woods tile produces a log and keeps going
func TestWoodsProduction(t *testing.T) {
	g := newTestGame()
	w := g.World
	BootstrapBoard(w)

	tile := woodsTile(w, 0, 0)
	v := CreateCard(w, core.CardVillager, core.Vec2{X: 5, Y: 5})
	if !TrySlot(w, tile, v) {
		t.Fatalf("Expected slot to succeed")
	}

	// 15s production at 1s ticks, one tick of spawn latency
	stepN(g, 16, time.Second)

	if n := countCards(w, core.CardLog); n != 1 {
		t.Errorf("Expected 1 log after one cycle, got %d", n)
	}

	// Timer resets instead of stopping
	tc, _ := w.Components.Tile.Get(tile)
	pc, ok := w.Components.Progress.Get(tc.Progress)
	if !ok {
		t.Fatalf("Expected the production timer to survive completion")
	}
	if pc.Timer.Elapsed >= pc.Timer.Duration {
		t.Errorf("Expected the timer restarted, elapsed %v", pc.Timer.Elapsed)
	}

	tilePos, _ := w.Components.Position.Get(tile)
	for _, e := range w.Components.Card.All() {
		card, _ := w.Components.Card.Get(e)
		if card.Type != core.CardLog {
			continue
		}
		pos, _ := w.Components.Position.Get(e)
		wantX := tilePos.Pos.X + w.Resources.Config.Tiles.SpawnOffset
		if pos.Pos.X != wantX || pos.Pos.Y != tilePos.Pos.Y {
			t.Errorf("Expected log at (%v,%v), got %v", wantX, tilePos.Pos.Y, pos.Pos)
		}
	}
}

// Test the enemy camp produces goblins with no slotted card
func TestEnemyCampProduction(t *testing.T) {
	g := newTestGame()
	w := g.World
	BootstrapBoard(w)

	stepN(g, 21, time.Second)

	if n := countCards(w, core.CardGoblin); n != 1 {
		t.Errorf("Expected 1 goblin after camp cycle, got %d", n)
	}
}

// Test unslotting destroys the production timer and clears the tile
func TestUnslotCancelsProduction(t *testing.T) {
	g := newTestGame()
	w := g.World
	BootstrapBoard(w)

	tile := woodsTile(w, 0, 0)
	v := CreateCard(w, core.CardVillager, core.Vec2{X: 5, Y: 5})
	TrySlot(w, tile, v)

	tc, _ := w.Components.Tile.Get(tile)
	progress := tc.Progress

	Unslot(w, tile)

	tc, _ = w.Components.Tile.Get(tile)
	if tc.SlottedCard != core.NoEntity || tc.Progress != core.NoEntity {
		t.Errorf("Expected tile cleared, got %+v", tc)
	}
	if w.Components.Progress.Has(progress) {
		t.Errorf("Expected in-progress production destroyed")
	}
}
