package event

import (
	"sync/atomic"
)

// queueSize must be a power of two for mask arithmetic
const (
	queueSize  = 1024
	bufferMask = queueSize - 1
)

// EventQueue is a lock-free MPSC ring buffer for game events
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK (input goroutine + systems)
//   - Consume: Single consumer (tick loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events    [queueSize]GameEvent
	published [queueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64          // Read index
	tail      atomic.Uint64          // Write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds an event using lock-free CAS with published flags
// Safe for concurrent producers. O(1) amortized
func (eq *EventQueue) Push(ev GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & bufferMask

			eq.events[idx] = ev
			eq.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := eq.head.Load()
			if nextTail-currentHead > queueSize {
				eq.head.CompareAndSwap(currentHead, nextTail-queueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances head
// Single-consumer design. Checks published flags for safety
func (eq *EventQueue) Consume() []GameEvent {
	for {
		currentHead := eq.head.Load()
		currentTail := eq.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > queueSize {
			maxAvailable = queueSize
			currentHead = currentTail - queueSize
		}

		result := make([]GameEvent, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & bufferMask

			if !eq.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, eq.events[idx])
			eq.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if eq.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len returns the approximate pending event count
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > queueSize {
		return queueSize
	}
	return diff
}
