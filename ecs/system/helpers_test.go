package system_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/paperplane/ai"
	"github.com/milk9111/paperplane/combat"
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
	"github.com/stretchr/testify/require"
)

const dt = 0.1

func newWorld(physics bool) *ecs.World {
	w := ecs.NewWorld()
	if physics {
		w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	}
	return w
}

func add[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	require.NoError(t, ecs.Add(w, e, kind, v))
}

func testPilot() *component.Pilot {
	return &component.Pilot{
		Speed:         20,
		MinSpeed:      5,
		MaxSpeed:      25,
		StallSpeed:    8,
		TurnSpeed:     50,
		PitchSpeed:    30,
		MaxTurnAngle:  45,
		MaxPitchAngle: 40,
		AltitudeSpeed: 30,
		DiveGain:      0.98,
		MinAltitude:   10,
		ProbeRange:    20,
		RollTilt:      30,
	}
}

// addPlayer builds a bare player: body, collider and health, no pilot.
func addPlayer(t *testing.T, w *ecs.World, pos mgl64.Vec3) (ecs.Entity, *component.PlayerHealth) {
	t.Helper()
	e := ecs.CreateEntity(w)
	ph := &component.PlayerHealth{
		Health:       combat.NewHealth(100, nil),
		GameOver:     combat.NewGameOver(0.2, nil),
		DamagePerHit: 10,
	}
	add(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	add(t, w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Rotation: mgl64.QuatIdent(), Scale: 1})
	add(t, w, e, component.RigidBodyComponent.Kind(), &component.RigidBody{Mass: 0.1, Radius: 2, HalfHeight: 0.5, Constrained: true})
	add(t, w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: ai.LayerPlayer})
	add(t, w, e, component.PlayerHealthComponent.Kind(), ph)
	return e, ph
}

func addCollider(t *testing.T, w *ecs.World, pos mgl64.Vec3, rb component.RigidBody, layer ai.Layer) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Rotation: mgl64.QuatIdent(), Scale: 1})
	add(t, w, e, component.RigidBodyComponent.Kind(), &rb)
	add(t, w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: layer})
	return e
}

func eventKinds(w *ecs.World) []ecs.EventKind {
	var kinds []ecs.EventKind
	for _, evt := range w.Events().Drain() {
		kinds = append(kinds, evt.Kind)
	}
	return kinds
}
