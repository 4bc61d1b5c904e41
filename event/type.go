package event

// EventType represents the type of game event
type EventType int

const (
	// === Input Bridge ===

	// EventPointerPressed signals a pick-up attempt at a world point
	// Trigger: input bridge on button-down edge
	// Consumer: SelectionSystem | Payload: *PointerPressedPayload
	EventPointerPressed EventType = iota

	// EventPointerReleased signals a drop at a world point
	// Trigger: input bridge on button-up edge
	// Consumer: SelectionSystem | Payload: *PointerReleasedPayload
	EventPointerReleased

	// EventPointerMoved updates the hover world point
	// Trigger: input bridge on pointer motion
	// Consumer: SelectionSystem | Payload: *PointerMovedPayload
	EventPointerMoved

	// === Physics ===

	// EventCollisionStarted signals two card colliders began touching
	// Trigger: OverlapSystem broad-phase
	// Consumer: StackSystem | Payload: *CollisionStartedPayload
	EventCollisionStarted

	// === Lifecycle ===

	// EventCardSpawnRequest asks for a new card at a world position
	// Trigger: breeding, tile production, bootstrap
	// Consumer: SpawnSystem | Payload: *CardSpawnPayload
	EventCardSpawnRequest

	// === Audio ===

	// EventSoundRequest requests playback of a sound cue
	// Trigger: combat hits, deaths, production completion
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest
)

// GameEvent is a single routed game event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
