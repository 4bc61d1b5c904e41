package system

import (
	"github.com/lixenwraith/card-grove/component"
	"github.com/lixenwraith/card-grove/constant"
	"github.com/lixenwraith/card-grove/core"
	"github.com/lixenwraith/card-grove/engine"
)

// heldDepth is the draw depth of the card in the player's hand
const heldDepth = 0.5

// LayoutSystem resolves visual positions after the simulation passes:
// the held card follows the hover point, slotted cards snap to their
// tile, stack chains hang below their root, progress bars track their
// owner. Purely positional; it never touches links or classifications
type LayoutSystem struct {
	world *engine.World
}

func NewLayoutSystem(world *engine.World) engine.System {
	return &LayoutSystem{world: world}
}

// Name returns system's name
func (s *LayoutSystem) Name() string {
	return "layout"
}

func (s *LayoutSystem) Priority() int {
	return constant.PriorityLayout
}

func (s *LayoutSystem) Update() {
	s.placeHeld()
	s.placeSlotted()
	s.placeChains()
	s.placeProgress()
}

func (s *LayoutSystem) placeHeld() {
	w := s.world
	sel := w.Resources.Selection
	for _, e := range w.Components.Card.All() {
		pos, ok := w.Components.Position.Get(e)
		if !ok {
			continue
		}
		if sel.IsSelected(e) {
			if sel.HoverValid {
				pos.Pos = sel.HoverPoint
			}
			pos.Depth = heldDepth
		} else if pos.Depth == heldDepth {
			pos.Depth = 0
		}
		w.Components.Position.Set(e, pos)
	}
}

func (s *LayoutSystem) placeSlotted() {
	w := s.world
	for _, e := range w.Components.Slot.All() {
		slot, _ := w.Components.Slot.Get(e)
		tilePos, ok := w.Components.Position.Get(slot.Tile)
		if !ok {
			continue
		}
		pos, ok := w.Components.Position.Get(e)
		if !ok {
			continue
		}
		pos.Pos = tilePos.Pos
		w.Components.Position.Set(e, pos)
	}
}

// placeChains hangs every root's children below it with per-depth
// offsets. Stale links end the walk
func (s *LayoutSystem) placeChains() {
	w := s.world
	cfg := w.Resources.Config.Stacks

	for root := range w.Resources.StackRoots.Roots {
		rootPos, ok := w.Components.Position.Get(root)
		if !ok {
			continue
		}
		link, ok := w.Components.Stack.Get(root)
		if !ok {
			continue
		}
		depth := 1
		current := link.Child
		for current != core.NoEntity {
			pos, ok := w.Components.Position.Get(current)
			if !ok {
				break
			}
			pos.Pos = core.Vec2{
				X: rootPos.Pos.X,
				Y: rootPos.Pos.Y + cfg.ChildOffsetY*float64(depth),
			}
			pos.Depth = cfg.ChildOffsetDepth * float64(depth)
			w.Components.Position.Set(current, pos)

			clink, ok := w.Components.Stack.Get(current)
			if !ok {
				break
			}
			current = clink.Child
			depth++
		}
	}
}

// placeProgress keeps bars glued to their owner; an orphaned bar is
// marked for despawn
func (s *LayoutSystem) placeProgress() {
	w := s.world
	for _, e := range w.Components.Progress.All() {
		pc, _ := w.Components.Progress.Get(e)
		ownerPos, ok := w.Components.Position.Get(pc.Owner)
		if !ok {
			w.Components.Death.Set(e, component.DeathComponent{})
			continue
		}
		pos, ok := w.Components.Position.Get(e)
		if !ok {
			continue
		}
		pos.Pos = ownerPos.Pos.Add(pc.Offset)
		w.Components.Position.Set(e, pos)
	}
}
