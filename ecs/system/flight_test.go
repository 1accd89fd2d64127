package system_test

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/paperplane/ai"
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
	"github.com/milk9111/paperplane/ecs/entity"
	"github.com/milk9111/paperplane/ecs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

type fixedTarget mgl64.Vec3

func (f fixedTarget) Transform() (mgl64.Vec3, mgl64.Quat, bool) {
	return mgl64.Vec3(f), mgl64.QuatIdent(), true
}

type silentSpawner struct{}

func (silentSpawner) SpawnProjectile(ai.Shot) error { return nil }
func (silentSpawner) Despawn() {}

// cruiseConfig flies straight along +Z at a fixed speed and never fires.
func cruiseConfig(flight bool) ai.Config {
	cfg := ai.DefaultConfig()
	cfg.Modes = ai.Modes{FlightDynamics: flight}
	cfg.FireRange = 0
	cfg.DespawnDistance = 1000
	cfg.NearDistance = 0
	return cfg
}

func addFlyer(t *testing.T, w *ecs.World, pos mgl64.Vec3, cfg ai.Config) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Rotation: mgl64.QuatIdent(), Scale: 1})
	add(t, w, e, component.RigidBodyComponent.Kind(), &component.RigidBody{Mass: 1, Radius: 2, HalfHeight: 0.5, Constrained: true, UseGravity: cfg.Modes.FlightDynamics})
	add(t, w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: cfg.GravityScale})

	ctrl, err := ai.NewController(cfg, ai.Deps{
		Target:  fixedTarget{0, 60, -50},
		Body:    entity.NewBody(w, e),
		Spawner: silentSpawner{},
		Rand:    rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)
	add(t, w, e, component.AgentComponent.Kind(), &component.Agent{Controller: ctrl})
	return e
}

func flightWorld() *ecs.World {
	w := newWorld(false)
	w.AddSystem(system.NewAISystem())
	w.AddSystem(system.NewPhysicsSystem(-9.81))
	return w
}

func TestLiftHoldsAltitudeAgainstGravity(t *testing.T) {
	tests := []struct {
		name    string
		lift    float64
		minDrop float64
		maxDrop float64
	}{
		// at cruise speed lift cancels the scaled gravity
		{"with lift", 0.45, -0.5, 0.5},
		{"without lift", 0, 10, 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := flightWorld()
			cfg := cruiseConfig(true)
			cfg.LiftForce = tc.lift
			e := addFlyer(t, w, mgl64.Vec3{0, 60, 0}, cfg)

			for i := 0; i < 300; i++ {
				w.Tick(frame)
			}

			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			drop := 60 - tr.Position.Y()
			assert.GreaterOrEqual(t, drop, tc.minDrop)
			assert.LessOrEqual(t, drop, tc.maxDrop)
			assert.InDelta(t, 5*cfg.CruiseSpeed, tr.Position.Z(), 1)
		})
	}
}

func TestImpulseCarriesOverAndDecays(t *testing.T) {
	w := flightWorld()
	cfg := cruiseConfig(false)
	e := addFlyer(t, w, mgl64.Vec3{0, 60, 0}, cfg)

	entity.NewBody(w, e).AddImpulse(mgl64.Vec3{8, 0, 0})
	for i := 0; i < 60; i++ {
		w.Tick(frame)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.Greater(t, tr.Position.X(), 4.0)
	assert.Less(t, tr.Position.X(), 8.0)

	for i := 0; i < 540; i++ {
		w.Tick(frame)
	}
	rb, _ := ecs.Get(w, e, component.RigidBodyComponent.Kind())
	assert.InDelta(t, 8, tr.Position.X(), 0.5)
	assert.InDelta(t, 0, rb.Velocity.X(), 0.01)
	assert.InDelta(t, cfg.MoveSpeed, rb.Velocity.Z(), 1e-9)
	assert.InDelta(t, 60, tr.Position.Y(), 1e-9)
}
