package component

import (
	"github.com/google/uuid"
	"github.com/milk9111/paperplane/combat"
)

// Projectile is a live shot. Owner is the firing agent's call sign, or nil
// for the player.
type Projectile struct {
	State   *combat.Projectile
	Owner   uuid.UUID
	Shooter uint64
	Radius  float64
}

var ProjectileComponent = NewComponent[Projectile]()
