package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/card-grove/config"
	"github.com/lixenwraith/card-grove/core"
	"github.com/lixenwraith/card-grove/event"
)

// Resource holds singleton game resources, initialized during World
// creation and accessed by systems via World.Resources
type Resource struct {
	Time       *TimeResource
	Config     *config.Config
	Events     *event.EventQueue
	Selection  *SelectionResource
	Grid       *GridResource
	StackRoots *StackRootsResource
	Audio      *AudioResource
	Log        *zap.Logger
}

// TimeResource wraps time data for systems
// Updated by the game loop at the start of every tick
type TimeResource struct {
	// Now is the current simulation time
	Now time.Time

	// DeltaTime is the duration since the last tick
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
// Must be called under the world update lock
func (tr *TimeResource) Update(now time.Time, dt time.Duration, frame int64) {
	tr.Now = now
	tr.DeltaTime = dt
	tr.FrameNumber = frame
}

// SelectionResource is the input bridge's view of the player's hand:
// the held card, the hover world point, and the tile under the pointer.
// Renderers read it; only the selection system writes it
type SelectionResource struct {
	Selected    core.Entity
	HoverPoint  core.Vec2
	HoverValid  bool
	HoveredTile core.Entity
}

// IsSelected reports whether the given entity is the held card
func (s *SelectionResource) IsSelected(e core.Entity) bool {
	return s.Selected != core.NoEntity && s.Selected == e
}

// GridResource maps grid coordinates to tile entities
// Built once at startup, read-only afterwards
type GridResource struct {
	Tiles map[core.GridCoord]core.Entity
}

// At returns the tile entity at a grid coordinate, or core.NoEntity
func (g *GridResource) At(c core.GridCoord) core.Entity {
	if e, ok := g.Tiles[c]; ok {
		return e
	}
	return core.NoEntity
}

// StackKind classifies what a stack root's chain currently is
type StackKind uint8

const (
	// StackPending marks a root registered but not yet classified
	StackPending StackKind = iota
	// StackNothing marks a chain matching no recipe
	StackNothing
	// StackBreed marks an in-progress breeding recipe
	StackBreed
)

// StackType is the derived classification of one stack root
// Progress is the owned timer entity for StackBreed, else core.NoEntity;
// Output is the card type the recipe produces on completion
type StackType struct {
	Kind     StackKind
	Progress core.Entity
	Output   core.CardType
}

// StackRootsResource tracks every known stack root and the set of
// identities queued for lazy recomputation
// Invariant: an entry exists iff the card is currently, or was until the
// pending recomputation pass, the root of a stack
type StackRootsResource struct {
	Roots  map[core.Entity]StackType
	Queued map[core.Entity]struct{}
}

func NewStackRootsResource() *StackRootsResource {
	return &StackRootsResource{
		Roots:  make(map[core.Entity]StackType),
		Queued: make(map[core.Entity]struct{}),
	}
}

// QueueRecompute marks an identity dirty for the next recomputation pass
func (r *StackRootsResource) QueueRecompute(e core.Entity) {
	r.Queued[e] = struct{}{}
}

// AudioPlayer is the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	IsRunning() bool
}

// AudioResource wraps the audio player; Player may be nil when audio
// is disabled or no output device exists
type AudioResource struct {
	Player AudioPlayer
}
