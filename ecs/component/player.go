package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/paperplane/combat"
)

// Pilot is the player's flight model. Angles are in degrees, rates in
// degrees per second.
type Pilot struct {
	Speed         float64
	MinSpeed      float64
	MaxSpeed      float64
	StallSpeed    float64
	TurnSpeed     float64
	PitchSpeed    float64
	MaxTurnAngle  float64
	MaxPitchAngle float64
	// AltitudeSpeed is the speed bled per second of full climb input.
	AltitudeSpeed float64
	// DiveGain scales the speed gained while diving.
	DiveGain    float64
	MinAltitude float64
	ProbeRange  float64
	RollTilt    float64

	Yaw   float64
	Pitch float64
	Roll  float64
}

var PilotComponent = NewComponent[Pilot]()

// PlayerHealth ties the player's health to its destruction and game-over
// sequences.
type PlayerHealth struct {
	Health       *combat.Health
	Breakup      *combat.BreakApart
	GameOver     *combat.GameOver
	SmokeEffect  string
	DamagePerHit int
}

var PlayerHealthComponent = NewComponent[PlayerHealth]()

// PlanePart is a piece thrown off a destroyed plane.
type PlanePart struct {
	Index int
	Owner uint64
}

var PlanePartComponent = NewComponent[PlanePart]()

// Weapon fires projectiles along the owner's forward axis.
type Weapon struct {
	FireRate        float64
	ProjectileSpeed float64
	FirePoint       mgl64.Vec3
	Projectile      string
	Effect          string

	Cooldown float64
}

var WeaponComponent = NewComponent[Weapon]()
