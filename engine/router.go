package engine

import (
	"github.com/lixenwraith/card-grove/event"
)

// EventRouter dispatches queued events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch (no concurrency issues with World mutation)
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - All events are consumed and dispatched before World.Update() runs
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them in FIFO order
// Must be called once per tick, before World.Update()
func (r *EventRouter) DispatchAll() {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}

// HandlerCount returns the number of handlers registered for a type
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
