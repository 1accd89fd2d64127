package entity

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/paperplane/ai"
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
	"github.com/milk9111/paperplane/terrain"
)

// agentSpawner launches an agent's projectiles and removes the agent.
type agentSpawner struct {
	w          *ecs.World
	self       ecs.Entity
	projectile string
	env        *Env
}

func (s *agentSpawner) SpawnProjectile(shot ai.Shot) error {
	_, err := SpawnProjectile(s.w, s.projectile, shot, s.self, s.env)
	return err
}

func (s *agentSpawner) Despawn() {
	Destroy(s.w, s.self)
}

// SpawnProjectile builds a projectile prefab for shot. shooter is excluded
// from the projectile's hits.
func SpawnProjectile(w *ecs.World, prefab string, shot ai.Shot, shooter ecs.Entity, env *Env) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefab, env)
	if err != nil {
		return 0, err
	}
	p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
	if !ok || p.State == nil {
		Destroy(w, e)
		return 0, fmt.Errorf("entity: prefab %q has no projectile component", prefab)
	}
	p.State.Side = shot.Side
	p.State.Velocity = shot.Velocity
	p.Owner = shot.Owner
	p.Shooter = uint64(shooter)
	if err := SetEntityTransform(w, e, shot.Origin, shot.Rotation, 0); err != nil {
		Destroy(w, e)
		return 0, err
	}
	return e, nil
}

// WorldSpawner builds streamed terrain and decorations from prefabs.
type WorldSpawner struct {
	World *ecs.World
	Env   *Env
}

var _ terrain.Spawner = (*WorldSpawner)(nil)

func (s *WorldSpawner) Spawn(prefab string, pos mgl64.Vec3, rot mgl64.Quat, scale float64) (terrain.Handle, error) {
	e, err := BuildEntity(s.World, prefab, s.Env)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(s.World, e, pos, rot, scale); err != nil {
		Destroy(s.World, e)
		return 0, err
	}
	if rb, ok := ecs.Get(s.World, e, component.RigidBodyComponent.Kind()); ok && scale > 0 {
		rb.Radius *= scale
		rb.HalfHeight *= scale
	}
	return terrain.Handle(e), nil
}

func (s *WorldSpawner) Destroy(h terrain.Handle) {
	if !Destroy(s.World, ecs.Entity(h)) {
		slog.Debug("entity: destroy of unknown handle", "handle", h)
	}
}

// Destroy removes e and every effect attached to it.
func Destroy(w *ecs.World, e ecs.Entity) bool {
	if !ecs.IsAlive(w, e) {
		return false
	}
	owner := uint64(e)
	for _, fx := range w.Query(component.EffectComponent.Kind()) {
		if effect, ok := ecs.Get(w, fx, component.EffectComponent.Kind()); ok && effect.Attached == owner {
			ecs.DestroyEntity(w, fx)
		}
	}
	return ecs.DestroyEntity(w, e)
}
