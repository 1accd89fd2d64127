package entity_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/paperplane/ai"
	"github.com/milk9111/paperplane/combat"
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
	"github.com/milk9111/paperplane/ecs/entity"
	"github.com/milk9111/paperplane/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(w *ecs.World) *entity.Env {
	return &entity.Env{
		Target:  &entity.PlayerTarget{World: w},
		Scripts: entity.NewScriptCache(),
		Rand:    rand.New(rand.NewSource(3)),
	}
}

func TestBuildPlayer(t *testing.T) {
	w := ecs.NewWorld()
	hud, err := entity.NewHUD(w)
	require.NoError(t, err)
	env := testEnv(w)
	env.Health = hud
	env.Scenes = &entity.SceneRequester{World: w}

	e, err := entity.BuildPlayer(w, "player", env)
	require.NoError(t, err)

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{0, 60, 0}, tr.Position)

	layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, ai.LayerPlayer, layer.Category)
	assert.True(t, layer.Collides(ai.LayerAgent))

	p, ok := ecs.Get(w, e, component.PilotComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 20.0, p.Speed)

	wpn, ok := ecs.Get(w, e, component.WeaponComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, wpn.FireRate, wpn.Cooldown, "the first shot is ready")

	ph, ok := ecs.Get(w, e, component.PlayerHealthComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 100, ph.Health.Current())
	assert.Equal(t, 10, ph.DamagePerHit)
	assert.Equal(t, "GameOver", ph.GameOver.Scene)

	bar, ok := ecs.Get(w, hud.Entity(), component.HealthBarComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 1.0, bar.Fill)

	_, err = entity.BuildPlayer(w, "player", env)
	assert.Error(t, err)
}

func TestBuildEntityFailuresLeaveNothing(t *testing.T) {
	w := ecs.NewWorld()

	_, err := entity.BuildEntity(w, "no_such_prefab", nil)
	assert.Error(t, err)
	_, err = entity.SpawnAgent(w, "cube", mgl64.Vec3{}, mgl64.QuatIdent(), nil)
	assert.Error(t, err)
	_, err = entity.BuildPlayer(w, "enemy", testEnv(w))
	assert.Error(t, err)
	_, err = entity.BuildEntity(nil, "cube", nil)
	assert.Error(t, err)

	assert.Empty(t, ecs.Entities(w))
}

func TestPrefabEditsNeedInvalidate(t *testing.T) {
	dir := t.TempDir()
	prev := prefabs.Root()
	prefabs.SetRoot(dir)
	t.Cleanup(func() {
		prefabs.SetRoot(prev)
		entity.Invalidate()
	})

	write := func(radius string) {
		data := "name: wall\ncomponents:\n  obstacle_tag: {}\n  transform: {}\n  rigid_body:\n    radius: " + radius + "\n    static: true\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "wall.yaml"), []byte(data), 0o644))
	}
	radius := func(w *ecs.World) float64 {
		e, err := entity.BuildEntity(w, "wall", nil)
		require.NoError(t, err)
		rb, ok := ecs.Get(w, e, component.RigidBodyComponent.Kind())
		require.True(t, ok)
		return rb.Radius
	}

	w := ecs.NewWorld()
	write("1")
	assert.Equal(t, 1.0, radius(w))

	write("3")
	assert.Equal(t, 1.0, radius(w), "cached until invalidated")

	entity.Invalidate("prefabs/wall.yaml")
	assert.Equal(t, 3.0, radius(w))
}

func TestAgentConfig(t *testing.T) {
	speed, drag, count := 14.0, 2.5, 5
	cfg := entity.AgentConfig(prefabs.AgentComponentSpec{
		Modes:       prefabs.AgentModesSpec{Pursuit: true, Circling: true},
		MoveSpeed:   &speed,
		Drag:        &drag,
		BurstCount:  &count,
		FirePoint:   &prefabs.Vec3Spec{Z: 4},
		DeathEffect: "explosion",
	})

	def := ai.DefaultConfig()
	assert.Equal(t, ai.Modes{Pursuit: true, Circling: true}, cfg.Modes)
	assert.Equal(t, 14.0, cfg.MoveSpeed)
	assert.Equal(t, 2.5, cfg.Drag)
	assert.Equal(t, 5, cfg.BurstCount)
	assert.Equal(t, mgl64.Vec3{0, 0, 4}, cfg.FirePoint)
	assert.Equal(t, "explosion", cfg.DeathEffect)
	assert.Equal(t, def.FireRange, cfg.FireRange)
	assert.Equal(t, def.CircleRadius, cfg.CircleRadius)
}

func TestSpawnAgent(t *testing.T) {
	tests := []struct {
		prefab  string
		gravity bool
		scale   float64
	}{
		{"enemy", false, 1},
		{"enemy_ace", true, 0.5},
	}
	for _, tc := range tests {
		t.Run(tc.prefab, func(t *testing.T) {
			w := ecs.NewWorld()
			pos := mgl64.Vec3{5, 40, 5}
			e, err := entity.SpawnAgent(w, tc.prefab, pos, mgl64.QuatIdent(), testEnv(w))
			require.NoError(t, err)

			agent, ok := ecs.Get(w, e, component.AgentComponent.Kind())
			require.True(t, ok)
			require.NotNil(t, agent.Controller)
			assert.True(t, agent.Controller.Alive())

			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			assert.Equal(t, pos, tr.Position)

			rb, _ := ecs.Get(w, e, component.RigidBodyComponent.Kind())
			assert.Equal(t, tc.gravity, rb.UseGravity)
			gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind())
			require.True(t, ok)
			assert.Equal(t, tc.scale, gs.Scale)
		})
	}
}

func TestSpawnProjectile(t *testing.T) {
	w := ecs.NewWorld()
	shooter := ecs.CreateEntity(w)
	shot := ai.Shot{
		Origin:   mgl64.Vec3{1, 2, 3},
		Rotation: mgl64.QuatIdent(),
		Velocity: mgl64.Vec3{0, 0, 500},
		Side:     ai.SideAgent,
	}

	e, err := entity.SpawnProjectile(w, "bullet", shot, shooter, nil)
	require.NoError(t, err)

	p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, ai.SideAgent, p.State.Side)
	assert.Equal(t, shot.Velocity, p.State.Velocity)
	assert.Equal(t, uint64(shooter), p.Shooter)
	assert.Equal(t, 0.5, p.Radius)
	assert.Equal(t, "spark", p.State.HitEffect)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.Equal(t, shot.Origin, tr.Position)

	_, err = entity.SpawnProjectile(w, "cube", shot, shooter, nil)
	assert.Error(t, err)
}

func TestWorldSpawnerScalesColliders(t *testing.T) {
	w := ecs.NewWorld()
	sp := &entity.WorldSpawner{World: w}

	h, err := sp.Spawn("cube", mgl64.Vec3{10, 0, 10}, mgl64.QuatIdent(), 2)
	require.NoError(t, err)
	e := ecs.Entity(h)

	rb, ok := ecs.Get(w, e, component.RigidBodyComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 12.0, rb.Radius)
	assert.Equal(t, 12.0, rb.HalfHeight)

	deco, ok := ecs.Get(w, e, component.DecorationComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, "cube", deco.Prefab)

	sp.Destroy(h)
	assert.False(t, ecs.IsAlive(w, e))
	sp.Destroy(h)
}

func TestBreakupReleasesParts(t *testing.T) {
	w := ecs.NewWorld()
	e, err := entity.BuildPlayer(w, "player", testEnv(w))
	require.NoError(t, err)
	ph, _ := ecs.Get(w, e, component.PlayerHealthComponent.Kind())

	ph.Breakup.Advance(0.1)
	ph.Breakup.Advance(0.5)
	assert.Equal(t, 2, ph.Breakup.Released())

	var parts []ecs.Entity
	ecs.ForEach(w, component.PlanePartComponent.Kind(), func(p ecs.Entity, part *component.PlanePart) {
		assert.Equal(t, uint64(e), part.Owner)
		parts = append(parts, p)
	})
	require.Len(t, parts, 2)
	for _, p := range parts {
		rb, _ := ecs.Get(w, p, component.RigidBodyComponent.Kind())
		assert.True(t, rb.UseGravity)
		assert.Greater(t, rb.Velocity.Len(), 0.0)
	}

	entity.Destroy(w, e)
	ph.Breakup.Advance(0.5)
	assert.True(t, ph.Breakup.Done())
	assert.Equal(t, 2, ph.Breakup.Released())
}

func TestBodyFreeFall(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.RigidBodyComponent.Kind(), &component.RigidBody{Mass: 2, Constrained: true}))
	require.NoError(t, ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{}))

	body := entity.NewBody(w, e)
	body.SetVelocity(mgl64.Vec3{1, 0, 0})
	body.AddImpulse(mgl64.Vec3{0, 4, 0})
	assert.Equal(t, mgl64.Vec3{1, 2, 0}, body.Velocity())

	body.FreeFall()
	rb, _ := ecs.Get(w, e, component.RigidBodyComponent.Kind())
	assert.True(t, rb.UseGravity)
	assert.False(t, rb.Constrained)
	assert.NotZero(t, rb.Spin.Len())
	gs, _ := ecs.Get(w, e, component.GravityScaleComponent.Kind())
	assert.Equal(t, 1.0, gs.Scale)
}

func TestHUDAndScenes(t *testing.T) {
	w := ecs.NewWorld()
	hud, err := entity.NewHUD(w)
	require.NoError(t, err)

	kills := combat.NewKillCounter(hud)
	kills.RegisterKill()
	label, ok := ecs.Get(w, hud.Entity(), component.KillCounterHUDComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, kills.Label(), label.Text)

	hud.ShowHealth(30, 120)
	bar, _ := ecs.Get(w, hud.Entity(), component.HealthBarComponent.Kind())
	assert.Equal(t, 0.25, bar.Fill)

	scenes := &entity.SceneRequester{World: w}
	require.NoError(t, scenes.Load("GameOver"))
	req, ok := ecs.First(w, component.SceneRequestComponent.Kind())
	require.True(t, ok)
	got, _ := ecs.Get(w, req, component.SceneRequestComponent.Kind())
	assert.Equal(t, "GameOver", got.Scene)
}

func TestScriptCache(t *testing.T) {
	cache := entity.NewScriptCache()
	a, err := cache.Planner("ace")
	require.NoError(t, err)
	b, err := cache.Planner("ace")
	require.NoError(t, err)
	assert.NotSame(t, a, b)

	m, err := a.Plan(ai.Situation{Distance: 100, CircleReady: true})
	require.NoError(t, err)
	assert.Equal(t, ai.ManeuverCircle, m)

	cache.Invalidate("ace")
	_, err = cache.Planner("missing")
	assert.Error(t, err)
}
