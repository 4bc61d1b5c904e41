package engine

import (
	"sync"

	"go.uber.org/zap"

	"github.com/lixenwraith/card-grove/config"
	"github.com/lixenwraith/card-grove/core"
	"github.com/lixenwraith/card-grove/event"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Typed component stores, public for direct system access
	Components ComponentStore

	// Singleton resources
	Resources *Resource

	// Lifecycle registry over all stores for uniform cleanup
	allStores []AnyStore

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with all stores and resources
// A nil logger defaults to zap.NewNop
func NewWorld(cfg *config.Config, log *zap.Logger) *World {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}

	components, all := newComponentStore()
	w := &World{
		nextEntityID: 1,
		Components:   components,
		allStores:    all,
	}
	w.Resources = &Resource{
		Time:       &TimeResource{},
		Config:     cfg,
		Events:     event.NewEventQueue(),
		Selection:  &SelectionResource{},
		Grid:       &GridResource{Tiles: make(map[core.GridCoord]core.Entity)},
		StackRoots: NewStackRootsResource(),
		Audio:      &AudioResource{},
		Log:        log,
	}
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
// References held elsewhere become stale identities; traversal code
// treats them as chain terminators
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// Alive reports whether the entity still has any component
func (w *World) Alive(e core.Entity) bool {
	if e == core.NoEntity {
		return false
	}
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially under the update lock
func (w *World) Update() {
	w.RunSafe(func() {
		w.UpdateLocked()
	})
}

// UpdateLocked runs all systems assuming the caller holds the update lock
func (w *World) UpdateLocked() {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update()
	}
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Events.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber,
	})
}
