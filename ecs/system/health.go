package system

import (
	"github.com/milk9111/paperplane/combat"
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
	"github.com/milk9111/paperplane/ecs/entity"
)

// HealthSystem applies the hits queued this tick and drives the player's
// destruction sequence.
type HealthSystem struct {
	env *entity.Env
}

func NewHealthSystem(env *entity.Env) *HealthSystem {
	return &HealthSystem{env: env}
}

func (s *HealthSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.DeltaTime()

	for _, e := range w.Query(component.HitEventComponent.Kind()) {
		he, _ := ecs.Get(w, e, component.HitEventComponent.Kind())
		if agent, ok := ecs.Get(w, e, component.AgentComponent.Kind()); ok && agent.Controller != nil {
			s.hitAgent(w, e, agent, he)
		} else if ph, ok := ecs.Get(w, e, component.PlayerHealthComponent.Kind()); ok && ph.Health != nil {
			s.hitPlayer(w, e, ph, he)
		}
		_ = ecs.Remove(w, e, component.HitEventComponent.Kind())
	}

	ecs.ForEach(w, component.PlayerHealthComponent.Kind(), func(_ ecs.Entity, ph *component.PlayerHealth) {
		if ph.Health == nil || !ph.Health.Destroyed() {
			return
		}
		ph.Breakup.Advance(dt)
		if ph.GameOver.Advance(dt) {
			w.Events().Push(ecs.Event{Kind: ecs.EventGameOver})
		}
	})
}

func (s *HealthSystem) hitAgent(w *ecs.World, e ecs.Entity, agent *component.Agent, he *component.HitEvent) {
	if he == nil {
		return
	}
	for _, hit := range he.Hits {
		if agent.Controller.Hit(hit.Side) {
			w.Events().Push(ecs.Event{Kind: ecs.EventAgentKilled, Entity: e, Data: agent.Controller.ID()})
		}
	}
}

func (s *HealthSystem) hitPlayer(w *ecs.World, e ecs.Entity, ph *component.PlayerHealth, he *component.HitEvent) {
	if he == nil {
		return
	}
	for _, hit := range he.Hits {
		if ph.Health.Destroyed() {
			return
		}
		var change combat.HealthChange
		if hit.Crash {
			change.Destroyed = ph.Health.Destroy()
		} else {
			dmg := hit.Damage
			if dmg <= 0 {
				dmg = ph.DamagePerHit
			}
			change = ph.Health.Damage(dmg)
			w.Events().Push(ecs.Event{Kind: ecs.EventPlayerDamaged, Entity: e, Data: ph.Health.Current()})
		}
		if change.Smoking && ph.SmokeEffect != "" {
			(&entity.Effects{World: w, Env: s.env}).Attach(ph.SmokeEffect, uint64(e))
		}
		if change.Destroyed {
			s.destroyPlayer(w, e, ph)
		}
	}
}

func (s *HealthSystem) destroyPlayer(w *ecs.World, e ecs.Entity, ph *component.PlayerHealth) {
	entity.NewBody(w, e).FreeFall()
	ph.GameOver.Start()
	w.Events().Push(ecs.Event{Kind: ecs.EventPlayerDestroyed, Entity: e})
}
