package entity

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/paperplane/ai"
	"github.com/milk9111/paperplane/combat"
	"github.com/milk9111/paperplane/common"
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
	"github.com/milk9111/paperplane/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

// Env carries the services builders wire into the entities they make. Any
// field may be nil.
type Env struct {
	Kills   ai.KillCounter
	Target  ai.Target
	Scenes  combat.SceneLoader
	Health  combat.HealthDisplay
	Scripts *ScriptCache
	Rand    *rand.Rand
}

func (env *Env) rng() *rand.Rand {
	if env == nil || env.Rand == nil {
		return rand.New(rand.NewSource(rand.Int63()))
	}
	return env.Rand
}

type buildContext struct {
	PrefabPath string
	Env        *Env
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":      addPlayerTag,
	"agent_tag":       addAgentTag,
	"obstacle_tag":    addObstacleTag,
	"terrain_tag":     addTerrainTag,
	"decoration":      addDecoration,
	"transform":       addTransform,
	"rigid_body":      addRigidBody,
	"gravity_scale":   addGravityScale,
	"collision_layer": addCollisionLayer,
	"input":           addInput,
	"pilot":           addPilot,
	"weapon":          addWeapon,
	"player_health":   addPlayerHealth,
	"agent":           addAgent,
	"projectile":      addProjectile,
	"enemy_spawner":   addEnemySpawner,
	"effect":          addEffect,
	"ttl":             addTTL,
}

// Builders that read other components run after them.
var componentBuildOrder = []string{
	"player_tag",
	"agent_tag",
	"obstacle_tag",
	"terrain_tag",
	"decoration",
	"transform",
	"rigid_body",
	"gravity_scale",
	"collision_layer",
	"input",
	"pilot",
	"weapon",
	"player_health",
	"agent",
	"projectile",
	"enemy_spawner",
	"effect",
	"ttl",
}

var specCache = struct {
	sync.Mutex
	specs map[string]entityPrefabSpec
}{specs: map[string]entityPrefabSpec{}}

func loadPrefab(prefabPath string) (entityPrefabSpec, error) {
	key := prefabKey(prefabPath)
	specCache.Lock()
	defer specCache.Unlock()
	if spec, ok := specCache.specs[key]; ok {
		return spec, nil
	}
	spec, err := prefabs.LoadEntityBuildSpec(key)
	if err != nil {
		return entityPrefabSpec{}, err
	}
	specCache.specs[key] = spec
	return spec, nil
}

// Invalidate drops cached prefabs so the next build rereads them. With no
// names everything is dropped.
func Invalidate(prefabPaths ...string) {
	specCache.Lock()
	defer specCache.Unlock()
	if len(prefabPaths) == 0 {
		specCache.specs = map[string]entityPrefabSpec{}
		return
	}
	for _, p := range prefabPaths {
		delete(specCache.specs, prefabKey(p))
	}
}

func prefabKey(prefabPath string) string {
	s := strings.TrimPrefix(filepath.ToSlash(prefabPath), "prefabs/")
	return strings.TrimSuffix(s, ".yaml")
}

// BuildEntity creates an entity from the named prefab. On failure nothing
// is left in the world.
func BuildEntity(w *ecs.World, prefabPath string, env *Env) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := loadPrefab(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Env: env}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

// SetEntityTransform places e. Scale 0 keeps the current scale.
func SetEntityTransform(w *ecs.World, e ecs.Entity, pos mgl64.Vec3, rot mgl64.Quat, scale float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{Scale: 1}
	}
	t.Position = pos
	t.Rotation = rot
	if scale > 0 {
		t.Scale = scale
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addAgentTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.AgentTagComponent.Kind(), &component.AgentTag{})
}

func addObstacleTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ObstacleTagComponent.Kind(), &component.ObstacleTag{})
}

func addTerrainTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.TerrainTagComponent.Kind(), &component.TerrainTag{})
}

func addDecoration(w *ecs.World, e ecs.Entity, _ any, ctx *buildContext) error {
	return ecs.Add(w, e, component.DecorationComponent.Kind(), &component.Decoration{Prefab: ctx.PrefabPath})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	scale := spec.Scale
	if scale == 0 {
		scale = 1
	}
	rot := mgl64.QuatRotate(mgl64.DegToRad(spec.Yaw), common.Up).
		Mul(mgl64.QuatRotate(-mgl64.DegToRad(spec.Pitch), common.Right)).
		Normalize()
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: vec3(spec.Position),
		Rotation: rot,
		Scale:    scale,
	})
}

func addRigidBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.RigidBodyComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode rigid_body spec: %w", err)
	}
	mass := spec.Mass
	if mass <= 0 {
		mass = 1
	}
	return ecs.Add(w, e, component.RigidBodyComponent.Kind(), &component.RigidBody{
		Mass:        mass,
		Radius:      spec.Radius,
		HalfHeight:  spec.HalfHeight,
		UseGravity:  spec.UseGravity,
		Constrained: spec.Constrained,
		Static:      spec.Static,
	})
}

func addGravityScale(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.GravityScaleComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode gravity_scale spec: %w", err)
	}
	return ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: spec.Scale})
}

func addCollisionLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CollisionLayerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collision_layer spec: %w", err)
	}
	category, err := ai.ParseLayers(spec.Category...)
	if err != nil {
		return err
	}
	mask, err := ai.ParseLayers(spec.Mask...)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: category, Mask: mask})
}

func addPilot(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PilotComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode pilot spec: %w", err)
	}
	p := PilotFromSpec(spec)
	return ecs.Add(w, e, component.PilotComponent.Kind(), &p)
}

// PilotFromSpec converts tuning; flight state starts level.
func PilotFromSpec(spec prefabs.PilotComponentSpec) component.Pilot {
	return component.Pilot{
		Speed:         common.Clamp(spec.Speed, spec.MinSpeed, spec.MaxSpeed),
		MinSpeed:      spec.MinSpeed,
		MaxSpeed:      spec.MaxSpeed,
		StallSpeed:    spec.StallSpeed,
		TurnSpeed:     spec.TurnSpeed,
		PitchSpeed:    spec.PitchSpeed,
		MaxTurnAngle:  spec.MaxTurnAngle,
		MaxPitchAngle: spec.MaxPitchAngle,
		AltitudeSpeed: spec.AltitudeSpeed,
		DiveGain:      spec.DiveGain,
		MinAltitude:   spec.MinAltitude,
		ProbeRange:    spec.ProbeRange,
		RollTilt:      spec.RollTilt,
	}
}

func addWeapon(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.WeaponComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode weapon spec: %w", err)
	}
	return ecs.Add(w, e, component.WeaponComponent.Kind(), &component.Weapon{
		FireRate:        spec.FireRate,
		ProjectileSpeed: spec.ProjectileSpeed,
		FirePoint:       vec3(spec.FirePoint),
		Projectile:      spec.Projectile,
		Effect:          spec.Effect,
		Cooldown:        spec.FireRate,
	})
}

func addPlayerHealth(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PlayerHealthComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player_health spec: %w", err)
	}
	damage := spec.Damage
	if damage == 0 {
		damage = combat.DefaultDamage
	}
	interval := spec.PartInterval
	if interval == 0 {
		interval = combat.DefaultPartInterval
	}
	minImpulse, maxImpulse := spec.MinImpulse, spec.MaxImpulse
	if minImpulse == 0 && maxImpulse == 0 {
		minImpulse, maxImpulse = combat.DefaultMinPartImpulse, combat.DefaultMaxPartImpulse
	}

	var env *Env
	var display combat.HealthDisplay
	var scenes combat.SceneLoader
	if ctx != nil && ctx.Env != nil {
		env = ctx.Env
		display = env.Health
		scenes = env.Scenes
	}

	releaser := &partReleaser{w: w, owner: e, prefab: spec.PartPrefab, env: env}
	gameOver := combat.NewGameOver(spec.GameOverDelay, scenes)
	if spec.GameOverScene != "" {
		gameOver.Scene = spec.GameOverScene
	}

	return ecs.Add(w, e, component.PlayerHealthComponent.Kind(), &component.PlayerHealth{
		Health: combat.NewHealth(spec.Max, display),
		Breakup: combat.NewBreakApart(spec.Parts, interval, minImpulse, maxImpulse, env.rng(), releaser, func() bool {
			return ecs.IsAlive(w, e)
		}),
		GameOver:     gameOver,
		SmokeEffect:  spec.SmokeEffect,
		DamagePerHit: damage,
	})
}

func addProjectile(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ProjectileComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode projectile spec: %w", err)
	}
	state := combat.NewProjectile(ai.SideAgent, mgl64.Vec3{}, spec.TTL)
	state.HitEffect = spec.HitEffect
	return ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		State:  state,
		Radius: spec.Radius,
	})
}

func addEnemySpawner(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.EnemySpawnerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode enemy_spawner spec: %w", err)
	}
	interval := spec.Interval
	if interval <= 0 {
		interval = 1
	}
	return ecs.Add(w, e, component.EnemySpawnerComponent.Kind(), &component.EnemySpawner{
		Prefab:     spec.Prefab,
		Interval:   interval,
		MaxEnemies: spec.MaxEnemies,
		Range:      spec.Range,
		Altitude:   spec.Altitude,
	})
}

func addEffect(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.EffectComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode effect spec: %w", err)
	}
	if err := ecs.Add(w, e, component.EffectComponent.Kind(), &component.Effect{Name: spec.Name}); err != nil {
		return err
	}
	if spec.TTL <= 0 {
		return nil
	}
	return ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Seconds: spec.TTL})
}

func addTTL(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TTLComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ttl spec: %w", err)
	}
	return ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Seconds: spec.Seconds})
}

func vec3(v prefabs.Vec3Spec) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
