package core

// SoundType represents different sound cues
type SoundType int

const (
	SoundHit      SoundType = iota // Combat strike landed
	SoundDeath                     // Card destroyed
	SoundComplete                  // Breed or production finished
	SoundSlot                      // Card slotted into a tile
	SoundTypeCount
)
