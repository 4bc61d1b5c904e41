package core

// CardType identifies the kind of a card entity
type CardType uint8

const (
	CardVillager CardType = iota
	CardLog
	CardGoblin
	CardTypeCount
)

// CardClass groups card types by behavior
type CardClass uint8

const (
	ClassVillager CardClass = iota
	ClassResource
	ClassEnemy
)

// Card geometry in world units
// Collider half extents are slightly narrower than the visual footprint
// so adjacent cards only report contact on real overlap
const (
	CardAspectRatio   = 50.0 / 60.0
	CardColliderHalfX = CardAspectRatio / 2.0
	CardColliderHalfY = 0.5
)

// Class returns the behavior class for a card type
func (t CardType) Class() CardClass {
	switch t {
	case CardVillager:
		return ClassVillager
	case CardGoblin:
		return ClassEnemy
	default:
		return ClassResource
	}
}

// PlayerControlled reports whether the player may pick up cards of this type
func (t CardType) PlayerControlled() bool {
	return t.Class() != ClassEnemy
}

// Breedable reports whether two cards of this type form a breeding recipe
func (t CardType) Breedable() bool {
	return t == CardVillager
}

// BreedOutput returns the card type produced by a breeding recipe
func (t CardType) BreedOutput() CardType {
	return t
}

func (t CardType) String() string {
	switch t {
	case CardVillager:
		return "villager"
	case CardLog:
		return "log"
	case CardGoblin:
		return "goblin"
	default:
		return "unknown"
	}
}
