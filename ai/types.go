// Package ai drives hostile planes: pursuit, avoidance, circling, climb and
// burst manoeuvres, the fire gate and death handling. Everything outside the
// agent's own state is reached through collaborators injected at
// construction.
package ai

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Side attributes projectiles and hits to a team.
type Side int

const (
	SidePlayer Side = iota
	SideAgent
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAgent:
		return "agent"
	default:
		return "unknown"
	}
}

// State is the coarse lifecycle tag of an agent.
type State int

const (
	StateAlive State = iota
	StateTactical
	StateDead
)

func (s State) String() string {
	switch s {
	case StateAlive:
		return "alive"
	case StateTactical:
		return "tactical"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Layer is a physics classification bit used to filter queries.
type Layer uint32

const (
	LayerTerrain Layer = 1 << iota
	LayerObstacle
	LayerAgent
	LayerPlayer
	LayerProjectile

	LayerNone Layer = 0
	LayerAll  Layer = ^Layer(0)
)

var layerNames = map[string]Layer{
	"terrain":    LayerTerrain,
	"obstacle":   LayerObstacle,
	"agent":      LayerAgent,
	"player":     LayerPlayer,
	"projectile": LayerProjectile,
}

// ParseLayers ORs the named layers together.
func ParseLayers(names ...string) (Layer, error) {
	var l Layer
	for _, name := range names {
		bit, ok := layerNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return LayerNone, fmt.Errorf("ai: unknown layer %q", name)
		}
		l |= bit
	}
	return l, nil
}

// Hit is the first surface hit by a ray.
type Hit struct {
	Distance float64
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	ID       uint64
}

// Collider is one object returned by an overlap query.
type Collider struct {
	ID       uint64
	Position mgl64.Vec3
}

// Shot describes a projectile to launch.
type Shot struct {
	Owner    uuid.UUID
	Origin   mgl64.Vec3
	Rotation mgl64.Quat
	Velocity mgl64.Vec3
	Side     Side
}

// RemovalReason says why an agent left the world.
type RemovalReason int

const (
	RemovedNone RemovalReason = iota
	RemovedDistance
	RemovedGrace
)

func (r RemovalReason) String() string {
	switch r {
	case RemovedDistance:
		return "distance"
	case RemovedGrace:
		return "grace"
	default:
		return "none"
	}
}

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Spawner,Physics,Effects,KillCounter,Planner

// Target is the tracked entity. ok is false while no target is available.
type Target interface {
	Transform() (pos mgl64.Vec3, rot mgl64.Quat, ok bool)
}

// Body is the agent's physical presence in the world.
type Body interface {
	ID() uint64
	Position() mgl64.Vec3
	Rotation() mgl64.Quat
	SetRotation(q mgl64.Quat)
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
	AddImpulse(j mgl64.Vec3)
	// FreeFall enables gravity and releases every constraint.
	FreeFall()
}

// Spawner launches projectiles and removes the agent itself.
type Spawner interface {
	SpawnProjectile(s Shot) error
	Despawn()
}

// Physics answers spatial queries.
type Physics interface {
	Raycast(origin, dir mgl64.Vec3, maxDist float64, mask Layer) (Hit, bool)
	OverlapSphere(center mgl64.Vec3, radius float64, mask Layer) []Collider
}

// Effects plays fire-and-forget effects.
type Effects interface {
	Play(name string, pos mgl64.Vec3)
	Attach(name string, owner uint64)
}

// KillCounter is told once for every agent a player shot brings down.
type KillCounter interface {
	RegisterKill()
}
