package ai

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrInvalidConfig = errors.New("ai: invalid config")

// Modes toggles the individual behaviours of a controller.
type Modes struct {
	Pursuit        bool
	Avoidance      bool
	Circling       bool
	AscendBurst    bool
	AngleGate      bool
	FlightDynamics bool
}

// Config tunes one agent. Angles for the fire gate and banking are degrees;
// RotationSpeed and TurnRate are radians per second.
type Config struct {
	Modes Modes

	MoveSpeed     float64
	RotationSpeed float64
	MinSpeed      float64
	MaxSpeed      float64

	FireRange       float64
	FireRate        float64
	FireAngle       float64
	ProjectileSpeed float64
	FirePoint       mgl64.Vec3

	DespawnDistance float64
	DeathGrace      float64

	DodgeRange   float64
	DodgeImpulse float64
	AvoidRadius  float64
	RepelImpulse float64
	ObstacleMask Layer
	AgentMask    Layer

	AttackDistance float64
	CircleRadius   float64
	CircleDuration float64
	CircleCooldown float64

	AscendChance    float64
	AscendHeight    float64
	AscendProximity float64
	BurstCount      int
	BurstInterval   float64
	ClimbTimeout    float64

	LiftForce     float64
	GravityScale  float64
	CruiseSpeed   float64
	ApproachSpeed float64
	NearDistance  float64
	SpeedEase     float64
	TurnRate      float64
	MaxBank       float64

	// Drag is the per-second decay of velocity the agent did not thrust
	// itself: gravity left over after lift, dodges and repulsion.
	Drag float64

	FireEffect  string
	DeathEffect string
}

// DefaultConfig is the plain pursuer: chase, fire inside range, fall when hit.
func DefaultConfig() Config {
	return Config{
		Modes:           Modes{Pursuit: true},
		MoveSpeed:       10,
		RotationSpeed:   3,
		MinSpeed:        5,
		MaxSpeed:        25,
		FireRange:       50,
		FireRate:        2,
		FireAngle:       10,
		ProjectileSpeed: 500,
		FirePoint:       mgl64.Vec3{0, 0, 2},
		DespawnDistance: 200,
		DeathGrace:      5,
		DodgeRange:      30,
		DodgeImpulse:    8,
		AvoidRadius:     15,
		RepelImpulse:    2,
		ObstacleMask:    LayerObstacle | LayerTerrain,
		AgentMask:       LayerAgent,
		AttackDistance:  40,
		CircleRadius:    30,
		CircleDuration:  4,
		CircleCooldown:  6,
		AscendChance:    0.002,
		AscendHeight:    40,
		AscendProximity: 5,
		BurstCount:      3,
		BurstInterval:   0.2,
		ClimbTimeout:    8,
		LiftForce:       0.45,
		GravityScale:    0.5,
		CruiseSpeed:     22,
		ApproachSpeed:   12,
		NearDistance:    60,
		SpeedEase:       5,
		TurnRate:        1.5,
		MaxBank:         30,
		Drag:            1,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.MinSpeed < 0 || c.MaxSpeed < c.MinSpeed:
		return fmt.Errorf("%w: speed range [%v, %v]", ErrInvalidConfig, c.MinSpeed, c.MaxSpeed)
	case c.RotationSpeed < 0:
		return fmt.Errorf("%w: rotation speed %v must not be negative", ErrInvalidConfig, c.RotationSpeed)
	case c.FireRate < 0:
		return fmt.Errorf("%w: fire rate %v must not be negative", ErrInvalidConfig, c.FireRate)
	case c.FireRange < 0:
		return fmt.Errorf("%w: fire range %v must not be negative", ErrInvalidConfig, c.FireRange)
	case c.FireAngle < 0 || c.FireAngle > 180:
		return fmt.Errorf("%w: fire angle %v outside [0, 180]", ErrInvalidConfig, c.FireAngle)
	case c.DespawnDistance <= 0:
		return fmt.Errorf("%w: despawn distance %v must be positive", ErrInvalidConfig, c.DespawnDistance)
	case c.DeathGrace < 0:
		return fmt.Errorf("%w: death grace %v must not be negative", ErrInvalidConfig, c.DeathGrace)
	case c.AscendChance < 0 || c.AscendChance > 1:
		return fmt.Errorf("%w: ascend chance %v outside [0, 1]", ErrInvalidConfig, c.AscendChance)
	case c.Modes.AscendBurst && c.BurstCount < 0:
		return fmt.Errorf("%w: burst count %d must not be negative", ErrInvalidConfig, c.BurstCount)
	case c.Modes.Circling && c.CircleRadius <= 0:
		return fmt.Errorf("%w: circle radius %v must be positive", ErrInvalidConfig, c.CircleRadius)
	case c.Modes.FlightDynamics && (c.CruiseSpeed < 0 || c.ApproachSpeed < 0):
		return fmt.Errorf("%w: flight speeds must not be negative", ErrInvalidConfig)
	case c.Drag < 0:
		return fmt.Errorf("%w: drag %v must not be negative", ErrInvalidConfig, c.Drag)
	case c.MaxBank < 0 || c.MaxBank > 90:
		return fmt.Errorf("%w: max bank %v outside [0, 90]", ErrInvalidConfig, c.MaxBank)
	}
	return nil
}
