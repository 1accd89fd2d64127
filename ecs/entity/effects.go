package entity

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/paperplane/ai"
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
)

// Effects spawns effect prefabs. A missing prefab is skipped.
type Effects struct {
	World *ecs.World
	Env   *Env
}

var _ ai.Effects = (*Effects)(nil)

func (fx *Effects) Play(name string, pos mgl64.Vec3) {
	if _, err := fx.spawn(name, pos); err != nil {
		slog.Warn("entity: effect skipped", "effect", name, "err", err)
	}
}

// Attach spawns name on owner; it follows the owner and dies with it.
func (fx *Effects) Attach(name string, owner uint64) {
	t, ok := ecs.Get(fx.World, ecs.Entity(owner), component.TransformComponent.Kind())
	if !ok {
		slog.Warn("entity: effect owner gone", "effect", name, "owner", owner)
		return
	}
	e, err := fx.spawn(name, t.Position)
	if err != nil {
		slog.Warn("entity: effect skipped", "effect", name, "err", err)
		return
	}
	if effect, ok := ecs.Get(fx.World, e, component.EffectComponent.Kind()); ok {
		effect.Attached = owner
	}
}

func (fx *Effects) spawn(name string, pos mgl64.Vec3) (ecs.Entity, error) {
	e, err := BuildEntity(fx.World, name, fx.Env)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(fx.World, e, pos, mgl64.QuatIdent(), 0); err != nil {
		Destroy(fx.World, e)
		return 0, err
	}
	return e, nil
}
