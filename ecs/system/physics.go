package system

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
)

const DefaultGravity = -9.81

// PhysicsSystem integrates rigid bodies and keeps the collision index in
// step with their transforms.
type PhysicsSystem struct {
	gravity float64
}

func NewPhysicsSystem(gravity float64) *PhysicsSystem {
	if gravity == 0 {
		gravity = DefaultGravity
	}
	return &PhysicsSystem{gravity: gravity}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.DeltaTime()
	pw := w.PhysicsWorld()

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.RigidBodyComponent.Kind(), func(e ecs.Entity, t *component.Transform, rb *component.RigidBody) {
		if !rb.Static && dt > 0 {
			s.integrate(w, e, pw, t, rb, dt)
		}
		if pw == nil {
			return
		}
		layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
		if !ok {
			return
		}
		if pw.Has(e) {
			if !rb.Static {
				pw.Move(e, t.Position)
			}
			return
		}

		var err error
		if rb.Static {
			// static scenery sits on its position; the collider centre is raised
			center := t.Position.Add(mgl64.Vec3{0, rb.HalfHeight, 0})
			err = pw.AddStatic(e, center, rb.Radius, rb.HalfHeight, layer.Category)
		} else {
			err = pw.AddKinematic(e, t.Position, rb.Radius, rb.HalfHeight, layer.Category)
		}
		if err != nil {
			slog.Warn("physics: register collider failed", "entity", e, "err", err)
		}
	})
}

func (s *PhysicsSystem) integrate(w *ecs.World, e ecs.Entity, pw *ecs.PhysicsWorld, t *component.Transform, rb *component.RigidBody, dt float64) {
	if rb.UseGravity {
		scale := 1.0
		if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
			scale = gs.Scale
		}
		rb.Velocity[1] += s.gravity * scale * dt
	}
	t.Position = t.Position.Add(rb.Velocity.Mul(dt))

	if !rb.Constrained {
		if rate := rb.Spin.Len(); rate > 0 {
			spin := mgl64.QuatRotate(rate*dt, rb.Spin.Mul(1/rate))
			t.Rotation = t.Rotation.Mul(spin).Normalize()
		}
	}

	// falling bodies come to rest on the ground
	if !rb.UseGravity || pw == nil {
		return
	}
	if h, ok := pw.GroundAt(t.Position.X(), t.Position.Z()); ok && t.Position.Y() < h {
		t.Position[1] = h
		rb.Velocity = mgl64.Vec3{}
		rb.Spin = mgl64.Vec3{}
	}
}
