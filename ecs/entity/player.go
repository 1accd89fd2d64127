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

// BuildPlayer builds the player prefab. There must be at most one player.
func BuildPlayer(w *ecs.World, prefab string, env *Env) (ecs.Entity, error) {
	if _, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		return 0, fmt.Errorf("entity: player already exists")
	}
	e, err := BuildEntity(w, prefab, env)
	if err != nil {
		return 0, err
	}
	if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
		Destroy(w, e)
		return 0, fmt.Errorf("entity: prefab %q is not tagged as the player", prefab)
	}
	return e, nil
}

// PlayerTarget resolves the live player entity each time it is asked, so
// agents and the streamer never hold a stale handle.
type PlayerTarget struct {
	World *ecs.World
}

var (
	_ ai.Target         = (*PlayerTarget)(nil)
	_ terrain.Reference = (*PlayerTarget)(nil)
)

func (p *PlayerTarget) Transform() (mgl64.Vec3, mgl64.Quat, bool) {
	if p == nil {
		return mgl64.Vec3{}, mgl64.QuatIdent(), false
	}
	e, ok := ecs.First(p.World, component.PlayerTagComponent.Kind())
	if !ok {
		return mgl64.Vec3{}, mgl64.QuatIdent(), false
	}
	t, ok := ecs.Get(p.World, e, component.TransformComponent.Kind())
	if !ok {
		return mgl64.Vec3{}, mgl64.QuatIdent(), false
	}
	return t.Position, t.Rotation, true
}

func (p *PlayerTarget) Position() (mgl64.Vec3, bool) {
	pos, _, ok := p.Transform()
	return pos, ok
}

// partReleaser throws plane parts off a destroyed player.
type partReleaser struct {
	w      *ecs.World
	owner  ecs.Entity
	prefab string
	env    *Env
}

func (r *partReleaser) Release(part int, impulse mgl64.Vec3) {
	if r.prefab == "" {
		return
	}
	t, ok := ecs.Get(r.w, r.owner, component.TransformComponent.Kind())
	if !ok {
		return
	}
	e, err := BuildEntity(r.w, r.prefab, r.env)
	if err != nil {
		slog.Warn("entity: plane part skipped", "part", part, "err", err)
		return
	}
	if err := SetEntityTransform(r.w, e, t.Position, t.Rotation, 0); err != nil {
		Destroy(r.w, e)
		return
	}
	_ = ecs.Add(r.w, e, component.PlanePartComponent.Kind(), &component.PlanePart{Index: part, Owner: uint64(r.owner)})

	body := NewBody(r.w, e)
	if src, ok := ecs.Get(r.w, r.owner, component.RigidBodyComponent.Kind()); ok {
		body.SetVelocity(src.Velocity)
	}
	body.AddImpulse(impulse)
	slog.Debug("entity: plane part released", "part", part, "impulse", impulse.Len())
}
