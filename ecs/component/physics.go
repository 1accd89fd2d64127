package component

import "github.com/go-gl/mathgl/mgl64"

// RigidBody is an upright cylinder collider integrated by the physics system.
type RigidBody struct {
	Velocity   mgl64.Vec3
	Mass       float64
	Radius     float64
	HalfHeight float64
	// UseGravity is off while a plane flies and turned on when it falls.
	UseGravity bool
	// Constrained locks rotation to what the owner sets each tick.
	Constrained bool
	Static      bool
	// Spin is applied to the rotation each tick once unconstrained, in rad/s.
	Spin mgl64.Vec3
}

var RigidBodyComponent = NewComponent[RigidBody]()
