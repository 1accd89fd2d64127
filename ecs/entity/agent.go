package entity

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/paperplane/ai"
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
	"github.com/milk9111/paperplane/prefabs"
)

// defaultProjectile is fired when an agent prefab names none.
const defaultProjectile = "bullet"

func addAgent(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AgentComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode agent spec: %w", err)
	}
	cfg := AgentConfig(spec)
	if err := cfg.Validate(); err != nil {
		return err
	}

	var env *Env
	if ctx != nil {
		env = ctx.Env
	}

	// Flying agents hold themselves up with lift against their own gravity.
	if cfg.Modes.FlightDynamics {
		if rb, ok := ecs.Get(w, e, component.RigidBodyComponent.Kind()); ok {
			rb.UseGravity = true
		}
		if err := ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: cfg.GravityScale}); err != nil {
			return err
		}
	}

	projectile := spec.Projectile
	if projectile == "" {
		projectile = defaultProjectile
	}

	deps := ai.Deps{
		Body:    NewBody(w, e),
		Spawner: &agentSpawner{w: w, self: e, projectile: projectile, env: env},
		Effects: &Effects{World: w, Env: env},
		Rand:    rand.New(rand.NewSource(env.rng().Int63())),
	}
	if pw := w.PhysicsWorld(); pw != nil {
		deps.Physics = pw
	}
	if env != nil {
		deps.Target = env.Target
		deps.Kills = env.Kills
		if spec.Script != "" && env.Scripts != nil {
			planner, err := env.Scripts.Planner(spec.Script)
			if err != nil {
				slog.Warn("entity: agent script unavailable, using built-in rules", "script", spec.Script, "err", err)
			} else {
				deps.Planner = planner
			}
		}
	}

	ctrl, err := ai.NewController(cfg, deps)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.AgentComponent.Kind(), &component.Agent{Controller: ctrl})
}

// AgentConfig applies a prefab's overrides on top of the controller
// defaults.
func AgentConfig(spec prefabs.AgentComponentSpec) ai.Config {
	cfg := ai.DefaultConfig()
	cfg.Modes = ai.Modes{
		Pursuit:        spec.Modes.Pursuit,
		Avoidance:      spec.Modes.Avoidance,
		Circling:       spec.Modes.Circling,
		AscendBurst:    spec.Modes.AscendBurst,
		AngleGate:      spec.Modes.AngleGate,
		FlightDynamics: spec.Modes.FlightDynamics,
	}

	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&cfg.MoveSpeed, spec.MoveSpeed)
	set(&cfg.RotationSpeed, spec.RotationSpeed)
	set(&cfg.MinSpeed, spec.MinSpeed)
	set(&cfg.MaxSpeed, spec.MaxSpeed)
	set(&cfg.FireRange, spec.FireRange)
	set(&cfg.FireRate, spec.FireRate)
	set(&cfg.FireAngle, spec.FireAngle)
	set(&cfg.ProjectileSpeed, spec.ProjectileSpeed)
	set(&cfg.DespawnDistance, spec.DespawnDistance)
	set(&cfg.DeathGrace, spec.DeathGrace)
	set(&cfg.DodgeRange, spec.DodgeRange)
	set(&cfg.DodgeImpulse, spec.DodgeImpulse)
	set(&cfg.AvoidRadius, spec.AvoidRadius)
	set(&cfg.RepelImpulse, spec.RepelImpulse)
	set(&cfg.AttackDistance, spec.AttackDistance)
	set(&cfg.CircleRadius, spec.CircleRadius)
	set(&cfg.CircleDuration, spec.CircleDuration)
	set(&cfg.CircleCooldown, spec.CircleCooldown)
	set(&cfg.AscendChance, spec.AscendChance)
	set(&cfg.AscendHeight, spec.AscendHeight)
	set(&cfg.AscendProximity, spec.AscendProximity)
	set(&cfg.BurstInterval, spec.BurstInterval)
	set(&cfg.ClimbTimeout, spec.ClimbTimeout)
	set(&cfg.LiftForce, spec.LiftForce)
	set(&cfg.GravityScale, spec.GravityScale)
	set(&cfg.CruiseSpeed, spec.CruiseSpeed)
	set(&cfg.ApproachSpeed, spec.ApproachSpeed)
	set(&cfg.NearDistance, spec.NearDistance)
	set(&cfg.SpeedEase, spec.SpeedEase)
	set(&cfg.TurnRate, spec.TurnRate)
	set(&cfg.MaxBank, spec.MaxBank)
	set(&cfg.Drag, spec.Drag)
	if spec.BurstCount != nil {
		cfg.BurstCount = *spec.BurstCount
	}
	if spec.FirePoint != nil {
		cfg.FirePoint = mgl64.Vec3{spec.FirePoint.X, spec.FirePoint.Y, spec.FirePoint.Z}
	}
	cfg.FireEffect = spec.FireEffect
	cfg.DeathEffect = spec.DeathEffect
	return cfg
}

// SpawnAgent builds an agent prefab at pos facing toward.
func SpawnAgent(w *ecs.World, prefab string, pos mgl64.Vec3, rot mgl64.Quat, env *Env) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefab, env)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, pos, rot, 0); err != nil {
		Destroy(w, e)
		return 0, err
	}
	if !ecs.Has(w, e, component.AgentComponent.Kind()) {
		Destroy(w, e)
		return 0, fmt.Errorf("entity: prefab %q has no agent component", prefab)
	}
	return e, nil
}
