package component

import (
	"github.com/lixenwraith/card-grove/core"
)

// CombatComponent is an attacker's active engagement with a target
// Present only while within strike range; the cooldown gates damage
type CombatComponent struct {
	Cooldown Timer
	Target   core.Entity
}
