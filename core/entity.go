package core

// Entity is a unique identifier for a world entity
type Entity uint64

// NoEntity is the zero identity; link fields holding it point at nothing
const NoEntity Entity = 0
