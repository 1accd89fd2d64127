package system

import (
	"github.com/milk9111/paperplane/ai"
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
	"github.com/milk9111/paperplane/ecs/entity"
)

// ProjectileSystem moves shots, resolves their first hit and expires them.
type ProjectileSystem struct {
	env *entity.Env
}

func NewProjectileSystem(env *entity.Env) *ProjectileSystem {
	return &ProjectileSystem{env: env}
}

// ProjectileMask is what a shot fired by side can strike.
func ProjectileMask(side ai.Side) ai.Layer {
	solid := ai.LayerObstacle | ai.LayerTerrain
	if side == ai.SidePlayer {
		return ai.LayerAgent | solid
	}
	return ai.LayerPlayer | ai.LayerAgent | solid
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.DeltaTime()
	pw := w.PhysicsWorld()

	for _, e := range w.Query(component.ProjectileComponent.Kind(), component.TransformComponent.Kind()) {
		p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
		if !ok {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		st := p.State
		if st == nil || t == nil || st.Spent() {
			entity.Destroy(w, e)
			continue
		}

		step := st.Velocity.Mul(dt)
		if dist := step.Len(); pw != nil && dist > 0 {
			hit, ok := pw.Sweep(t.Position, step, dist, p.Radius, ProjectileMask(st.Side), ecs.Entity(p.Shooter))
			if ok && st.Hit() {
				s.strike(w, hit, st.Side, p.Shooter)
				if st.HitEffect != "" {
					(&entity.Effects{World: w, Env: s.env}).Play(st.HitEffect, hit.Point)
				}
				entity.Destroy(w, e)
				continue
			}
		}

		t.Position = t.Position.Add(step)
		if st.Advance(dt) {
			entity.Destroy(w, e)
		}
	}
}

// strike queues the hit on the struck entity when it can take damage.
func (s *ProjectileSystem) strike(w *ecs.World, hit ai.Hit, side ai.Side, shooter uint64) {
	if hit.ID == 0 {
		return
	}
	target := ecs.Entity(hit.ID)
	if !ecs.Has(w, target, component.AgentComponent.Kind()) && !ecs.Has(w, target, component.PlayerHealthComponent.Kind()) {
		return
	}
	queueHit(w, target, component.Hit{Side: side, From: shooter})
}

func queueHit(w *ecs.World, e ecs.Entity, hit component.Hit) {
	if he, ok := ecs.Get(w, e, component.HitEventComponent.Kind()); ok {
		he.Hits = append(he.Hits, hit)
		return
	}
	_ = ecs.Add(w, e, component.HitEventComponent.Kind(), &component.HitEvent{Hits: []component.Hit{hit}})
}
