package system_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/paperplane/ai"
	"github.com/milk9111/paperplane/combat"
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
	"github.com/milk9111/paperplane/ecs/entity"
	"github.com/milk9111/paperplane/ecs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func combatWorld(physics bool) *ecs.World {
	w := newWorld(physics)
	env := &entity.Env{}
	w.AddSystem(system.NewPhysicsSystem(-10))
	w.AddSystem(system.NewProjectileSystem(env))
	w.AddSystem(system.NewContactSystem())
	w.AddSystem(system.NewHealthSystem(env))
	return w
}

func addShot(t *testing.T, w *ecs.World, pos, vel mgl64.Vec3, side ai.Side, ttl float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Rotation: mgl64.QuatIdent(), Scale: 1})
	add(t, w, e, component.ProjectileComponent.Kind(), &component.Projectile{State: combat.NewProjectile(side, vel, ttl), Radius: 0.5})
	return e
}

func TestProjectileMask(t *testing.T) {
	assert.Zero(t, system.ProjectileMask(ai.SidePlayer)&ai.LayerPlayer)
	assert.NotZero(t, system.ProjectileMask(ai.SidePlayer)&ai.LayerAgent)
	assert.NotZero(t, system.ProjectileMask(ai.SideAgent)&ai.LayerPlayer)
	assert.NotZero(t, system.ProjectileMask(ai.SideAgent)&ai.LayerAgent)
	assert.NotZero(t, system.ProjectileMask(ai.SideAgent)&ai.LayerTerrain)
}

func TestProjectileDamagesPlayer(t *testing.T) {
	w := combatWorld(true)
	_, ph := addPlayer(t, w, mgl64.Vec3{})
	shot := addShot(t, w, mgl64.Vec3{0, 0, -10}, mgl64.Vec3{0, 0, 100}, ai.SideAgent, 3)

	w.Tick(dt)

	assert.False(t, ecs.IsAlive(w, shot))
	assert.Equal(t, 90, ph.Health.Current())
	assert.Contains(t, eventKinds(w), ecs.EventPlayerDamaged)
}

func TestPlayerShotsPassThroughPlayer(t *testing.T) {
	w := combatWorld(true)
	_, ph := addPlayer(t, w, mgl64.Vec3{})
	shot := addShot(t, w, mgl64.Vec3{0, 0, -10}, mgl64.Vec3{0, 0, 100}, ai.SidePlayer, 3)

	w.Tick(dt)

	require.True(t, ecs.IsAlive(w, shot))
	tr, _ := ecs.Get(w, shot, component.TransformComponent.Kind())
	assert.InDelta(t, 0, tr.Position.Z(), 1e-9)
	assert.Equal(t, 100, ph.Health.Current())
}

func TestProjectileStopsAtScenery(t *testing.T) {
	w := combatWorld(true)
	addCollider(t, w, mgl64.Vec3{0, 0, 0}, component.RigidBody{Static: true, Radius: 2, HalfHeight: 5}, ai.LayerObstacle)
	shot := addShot(t, w, mgl64.Vec3{0, 3, -10}, mgl64.Vec3{0, 0, 100}, ai.SidePlayer, 3)

	w.Tick(dt)

	assert.False(t, ecs.IsAlive(w, shot))
}

func TestProjectileExpires(t *testing.T) {
	w := combatWorld(false)
	shot := addShot(t, w, mgl64.Vec3{}, mgl64.Vec3{0, 0, 100}, ai.SidePlayer, 0.25)

	w.Tick(dt)
	w.Tick(dt)
	require.True(t, ecs.IsAlive(w, shot))
	tr, _ := ecs.Get(w, shot, component.TransformComponent.Kind())
	assert.InDelta(t, 20, tr.Position.Z(), 1e-9)

	w.Tick(dt)
	assert.False(t, ecs.IsAlive(w, shot))
}

func TestCrashDestroysPlayer(t *testing.T) {
	w := combatWorld(true)
	player, ph := addPlayer(t, w, mgl64.Vec3{0, 5, 1})
	obstacle := addCollider(t, w, mgl64.Vec3{0, 0, 0}, component.RigidBody{Static: true, Radius: 2, HalfHeight: 5}, ai.LayerObstacle)
	add(t, w, obstacle, component.ObstacleTagComponent.Kind(), &component.ObstacleTag{})

	w.Tick(dt)

	assert.True(t, ph.Health.Destroyed())
	assert.Equal(t, 100, ph.Health.Current(), "a crash destroys without draining health")
	assert.Contains(t, eventKinds(w), ecs.EventPlayerDestroyed)

	rb, _ := ecs.Get(w, player, component.RigidBodyComponent.Kind())
	assert.True(t, rb.UseGravity)
	assert.False(t, rb.Constrained)

	w.Tick(dt)
	assert.Contains(t, eventKinds(w), ecs.EventGameOver)
	assert.True(t, ph.GameOver.Fired())
}

func TestAgentContactDamagesOncePerTouch(t *testing.T) {
	w := combatWorld(true)
	_, ph := addPlayer(t, w, mgl64.Vec3{0, 5, 0})
	agent := addCollider(t, w, mgl64.Vec3{0, 5, 3}, component.RigidBody{Radius: 2, HalfHeight: 0.5, Constrained: true}, ai.LayerAgent)
	add(t, w, agent, component.AgentComponent.Kind(), &component.Agent{})

	w.Tick(dt)
	w.Tick(dt)
	assert.Equal(t, 90, ph.Health.Current())

	tr, _ := ecs.Get(w, agent, component.TransformComponent.Kind())
	tr.Position = mgl64.Vec3{0, 5, 50}
	w.Tick(dt)
	tr.Position = mgl64.Vec3{0, 5, 3}
	w.Tick(dt)
	assert.Equal(t, 80, ph.Health.Current())
}

func TestContactHonoursPlayerMask(t *testing.T) {
	w := combatWorld(true)
	player, ph := addPlayer(t, w, mgl64.Vec3{0, 5, 1})
	layer, ok := ecs.Get(w, player, component.CollisionLayerComponent.Kind())
	require.True(t, ok)
	layer.Mask = ai.LayerTerrain | ai.LayerAgent

	obstacle := addCollider(t, w, mgl64.Vec3{0, 0, 0}, component.RigidBody{Static: true, Radius: 2, HalfHeight: 5}, ai.LayerObstacle)
	add(t, w, obstacle, component.ObstacleTagComponent.Kind(), &component.ObstacleTag{})

	w.Tick(dt)
	w.Tick(dt)
	assert.False(t, ph.Health.Destroyed())

	agent := addCollider(t, w, mgl64.Vec3{0, 5, 4}, component.RigidBody{Radius: 2, HalfHeight: 0.5, Constrained: true}, ai.LayerAgent)
	add(t, w, agent, component.AgentComponent.Kind(), &component.Agent{})
	w.Tick(dt)
	w.Tick(dt)
	assert.Equal(t, 90, ph.Health.Current())
}

type recordingHUD struct {
	shown []int
}

func (h *recordingHUD) ShowHealth(cur, max int) {
	h.shown = append(h.shown, cur)
}

func TestSmokeAttachesAtHalfHealth(t *testing.T) {
	w := combatWorld(true)
	player, ph := addPlayer(t, w, mgl64.Vec3{})
	hud := &recordingHUD{}
	ph.Health = combat.NewHealth(20, hud)
	ph.SmokeEffect = "smoke"

	addShot(t, w, mgl64.Vec3{0, 0, -10}, mgl64.Vec3{0, 0, 100}, ai.SideAgent, 3)
	w.Tick(dt)

	assert.True(t, ph.Health.Smoking())
	assert.Equal(t, []int{20, 10}, hud.shown)

	var attached []ecs.Entity
	ecs.ForEach(w, component.EffectComponent.Kind(), func(e ecs.Entity, fx *component.Effect) {
		if fx.Attached == uint64(player) {
			attached = append(attached, e)
		}
	})
	assert.Len(t, attached, 1)
}
