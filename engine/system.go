package engine

import (
	"github.com/lixenwraith/card-grove/event"
)

// System is the interface all simulation systems implement
// Systems run synchronously once per tick, ordered by Priority
type System interface {
	// Name returns the system's name for logs and diagnostics
	Name() string

	// Priority orders systems within a tick; lower values run first
	// The pipeline order is a first-class constant, see constant.Priority*
	Priority() int

	// Update advances the system by the current tick's delta time
	Update()
}

// EventHandler is implemented by systems that consume routed events
// HandleEvent is called synchronously during the dispatch phase,
// before any system's Update runs
type EventHandler interface {
	HandleEvent(ev event.GameEvent)
	EventTypes() []event.EventType
}
