package system

import (
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
	"github.com/milk9111/paperplane/ecs/entity"
)

// EffectSystem keeps attached effects on their owner and drops orphans.
type EffectSystem struct{}

func NewEffectSystem() *EffectSystem {
	return &EffectSystem{}
}

func (s *EffectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.EffectComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, fx *component.Effect, t *component.Transform) {
		if fx.Attached == 0 {
			return
		}
		owner, ok := ecs.Get(w, ecs.Entity(fx.Attached), component.TransformComponent.Kind())
		if !ok {
			entity.Destroy(w, e)
			return
		}
		t.Position = owner.Position
	})
}
