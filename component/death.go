package component

// DeathComponent marks an entity for despawn at the end of the tick
// Structural removal is deferred to the death system so that every
// system within a tick observes a consistent entity set
type DeathComponent struct{}
