package system

import (
	"github.com/milk9111/paperplane/ai"
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
)

// ContactSystem turns the player's body overlaps into hits. Scenery crashes
// the plane; an agent damages it once per contact.
type ContactSystem struct {
	touching map[ecs.Entity]bool
}

func NewContactSystem() *ContactSystem {
	return &ContactSystem{touching: map[ecs.Entity]bool{}}
}

func (s *ContactSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	now := make(map[ecs.Entity]bool)
	ecs.ForEach3(w, component.PlayerHealthComponent.Kind(), component.TransformComponent.Kind(), component.RigidBodyComponent.Kind(), func(player ecs.Entity, ph *component.PlayerHealth, t *component.Transform, rb *component.RigidBody) {
		if ph.Health == nil || ph.Health.Destroyed() {
			return
		}
		for _, c := range pw.OverlapSphere(t.Position, rb.Radius, contactMask(w, player)) {
			other := ecs.Entity(c.ID)
			if other == player {
				continue
			}
			now[other] = true
			if s.touching[other] {
				continue
			}
			switch {
			case ecs.Has(w, other, component.ObstacleTagComponent.Kind()):
				queueHit(w, player, component.Hit{Crash: true, From: c.ID})
			case ecs.Has(w, other, component.AgentComponent.Kind()):
				queueHit(w, player, component.Hit{Side: ai.SideAgent, From: c.ID})
			}
		}
	})
	s.touching = now
}

// contactMask narrows agent and scenery contacts to the layers the player's
// collider accepts.
func contactMask(w *ecs.World, player ecs.Entity) ai.Layer {
	mask := ai.LayerAgent | ai.LayerObstacle
	layer, ok := ecs.Get(w, player, component.CollisionLayerComponent.Kind())
	if !ok {
		return mask
	}
	for _, l := range []ai.Layer{ai.LayerAgent, ai.LayerObstacle} {
		if !layer.Collides(l) {
			mask &^= l
		}
	}
	return mask
}
