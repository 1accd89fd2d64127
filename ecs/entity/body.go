package entity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/paperplane/ai"
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
)

// freeFallSpin is the tumble given to a released body, in rad/s.
var freeFallSpin = mgl64.Vec3{0.4, 0, 1.5}

// Body exposes an entity's transform and rigid body to the combat AI.
type Body struct {
	w *ecs.World
	e ecs.Entity
}

var _ ai.Body = (*Body)(nil)

func NewBody(w *ecs.World, e ecs.Entity) *Body {
	return &Body{w: w, e: e}
}

func (b *Body) ID() uint64 { return uint64(b.e) }

func (b *Body) transform() *component.Transform {
	t, ok := ecs.Get(b.w, b.e, component.TransformComponent.Kind())
	if !ok {
		return &component.Transform{Rotation: mgl64.QuatIdent(), Scale: 1}
	}
	return t
}

func (b *Body) rigidBody() *component.RigidBody {
	rb, ok := ecs.Get(b.w, b.e, component.RigidBodyComponent.Kind())
	if !ok {
		return &component.RigidBody{Mass: 1}
	}
	return rb
}

func (b *Body) Position() mgl64.Vec3 {
	return b.transform().Position
}

func (b *Body) Rotation() mgl64.Quat {
	return b.transform().Rotation
}

func (b *Body) SetRotation(q mgl64.Quat) {
	b.transform().Rotation = q
}

func (b *Body) Velocity() mgl64.Vec3 {
	return b.rigidBody().Velocity
}

func (b *Body) SetVelocity(v mgl64.Vec3) {
	b.rigidBody().Velocity = v
}

// AddImpulse changes velocity by j over the body's mass.
func (b *Body) AddImpulse(j mgl64.Vec3) {
	rb := b.rigidBody()
	mass := rb.Mass
	if mass <= 0 {
		mass = 1
	}
	rb.Velocity = rb.Velocity.Add(j.Mul(1 / mass))
}

func (b *Body) FreeFall() {
	rb := b.rigidBody()
	rb.UseGravity = true
	rb.Constrained = false
	rb.Spin = freeFallSpin
	if gs, ok := ecs.Get(b.w, b.e, component.GravityScaleComponent.Kind()); ok && gs.Scale <= 0 {
		gs.Scale = 1
	}
}
