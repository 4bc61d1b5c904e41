package engine

import (
	"sync"

	"github.com/lixenwraith/card-grove/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World uses it to clean up all stores uniformly on entity destruction
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}

// QueryableStore extends AnyStore with the enumeration the query
// builder needs to intersect component sets
type QueryableStore interface {
	AnyStore
	All() []core.Entity
}

// Store is a generic container for a specific component type T
// Uses the sparse set pattern for cache-friendly iteration
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]T
	entities   []core.Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// Remove deletes a component from an entity
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; exists {
		delete(s.components, e)
		for i, entity := range s.entities {
			if entity == e {
				s.entities[i] = s.entities[len(s.entities)-1]
				s.entities = s.entities[:len(s.entities)-1]
				break
			}
		}
	}
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// All returns all entities with this component type
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[core.Entity]T)
	s.entities = s.entities[:0]
}
