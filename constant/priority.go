package constant

// System priorities: the per-tick pipeline order is a first-class
// constant. Structural input first, derived state next, despawn last
const (
	PrioritySpawn     = 10  // Deferred card creation from last tick's requests
	PrioritySelection = 20  // Input bridge: pick up / drop, hover projection
	PriorityOverlap   = 30  // Collision broad-phase, emits contact events
	PriorityStack     = 40  // Attach, recompute, breed root tick
	PriorityTile      = 50  // Slot production timers
	PriorityTargeting = 60  // Hostile target acquisition and approach
	PriorityCombat    = 70  // Cooldown-gated damage exchange
	PriorityLayout    = 80  // Visual positions: held card, chains, slots, bars
	PriorityAudio     = 90  // Sound cue playback
	PriorityDeath     = 100 // Drain death marks, final despawn
)
