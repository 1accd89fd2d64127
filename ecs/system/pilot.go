package system

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/paperplane/ai"
	"github.com/milk9111/paperplane/common"
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
	"github.com/milk9111/paperplane/ecs/entity"
)

const groundMask = ai.LayerTerrain | ai.LayerObstacle

// PilotSystem flies the player from its Input and fires its weapon.
type PilotSystem struct {
	env *entity.Env
}

func NewPilotSystem(env *entity.Env) *PilotSystem {
	return &PilotSystem{env: env}
}

func (s *PilotSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.DeltaTime()
	if dt <= 0 {
		return
	}

	ecs.ForEach4(w,
		component.PilotComponent.Kind(),
		component.InputComponent.Kind(),
		component.TransformComponent.Kind(),
		component.RigidBodyComponent.Kind(),
		func(e ecs.Entity, p *component.Pilot, in *component.Input, t *component.Transform, rb *component.RigidBody) {
			if ph, ok := ecs.Get(w, e, component.PlayerHealthComponent.Kind()); ok && ph.Health.Destroyed() {
				return
			}

			fly(w.PhysicsWorld(), p, in, t, rb, dt)

			if wpn, ok := ecs.Get(w, e, component.WeaponComponent.Kind()); ok {
				s.fire(w, e, wpn, in, t, dt)
			}
		})
}

// fly applies one tick of the paper plane model: bounded yaw, pitch blocked
// near the ground, speed traded against climb and a hard altitude floor.
func fly(pw *ecs.PhysicsWorld, p *component.Pilot, in *component.Input, t *component.Transform, rb *component.RigidBody, dt float64) {
	yawIn := common.Clamp(in.Yaw, -1, 1)
	pitchIn := common.Clamp(in.Pitch, -1, 1)

	alt, grounded := altitude(pw, t.Position, p.ProbeRange)
	low := grounded && alt < p.MinAltitude
	if pitchIn < 0 && low {
		pitchIn = 0
	}

	p.Yaw = common.Clamp(p.Yaw+yawIn*p.TurnSpeed*dt, -p.MaxTurnAngle, p.MaxTurnAngle)

	switch {
	case pitchIn > 0:
		p.Speed -= pitchIn * p.AltitudeSpeed * dt
		if p.Speed < p.StallSpeed {
			p.Speed = p.StallSpeed
			if !low {
				pitchIn = -1
			}
		}
	case pitchIn < 0:
		p.Speed += -pitchIn * p.AltitudeSpeed * p.DiveGain * dt
	}
	p.Speed = common.Clamp(p.Speed, p.MinSpeed, p.MaxSpeed)

	limit := p.MaxPitchAngle
	if limit <= 0 {
		limit = 89
	}
	p.Pitch = common.Clamp(p.Pitch+pitchIn*p.PitchSpeed*dt, -limit, limit)
	p.Roll = -yawIn * p.RollTilt

	rot := mgl64.QuatRotate(mgl64.DegToRad(p.Yaw), common.Up).
		Mul(mgl64.QuatRotate(-mgl64.DegToRad(p.Pitch), common.Right)).
		Normalize()
	t.Rotation = rot
	rb.Velocity = common.ForwardOf(rot).Mul(p.Speed)

	if low {
		t.Position[1] += p.MinAltitude - alt
	}
}

// altitude is the clearance below pos, if anything solid is within probe.
func altitude(pw *ecs.PhysicsWorld, pos mgl64.Vec3, probe float64) (float64, bool) {
	if pw == nil || probe <= 0 {
		return 0, false
	}
	hit, ok := pw.Raycast(pos, common.Up.Mul(-1), probe, groundMask)
	if !ok {
		return 0, false
	}
	return hit.Distance, true
}

func (s *PilotSystem) fire(w *ecs.World, e ecs.Entity, wpn *component.Weapon, in *component.Input, t *component.Transform, dt float64) {
	wpn.Cooldown += dt
	if !in.Fire || wpn.Projectile == "" || wpn.Cooldown < wpn.FireRate {
		return
	}
	wpn.Cooldown = 0

	origin := t.Position.Add(t.Rotation.Rotate(wpn.FirePoint))
	shot := ai.Shot{
		Origin:   origin,
		Rotation: t.Rotation,
		Velocity: common.ForwardOf(t.Rotation).Mul(wpn.ProjectileSpeed),
		Side:     ai.SidePlayer,
	}
	if _, err := entity.SpawnProjectile(w, wpn.Projectile, shot, e, s.env); err != nil {
		slog.Warn("pilot: spawn projectile failed", "err", err)
		return
	}
	if wpn.Effect != "" {
		(&entity.Effects{World: w, Env: s.env}).Play(wpn.Effect, origin)
	}
}
