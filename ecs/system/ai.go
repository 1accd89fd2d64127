package system

import (
	"github.com/milk9111/paperplane/ai"
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
)

// AISystem advances every agent controller by one tick.
type AISystem struct{}

func NewAISystem() *AISystem {
	return &AISystem{}
}

func (s *AISystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()

	for _, e := range w.Query(component.AgentComponent.Kind()) {
		agent, ok := ecs.Get(w, e, component.AgentComponent.Kind())
		if !ok || agent.Controller == nil {
			continue
		}
		ctrl := agent.Controller
		ctrl.Tick(dt)
		if reason := ctrl.Removed(); reason != ai.RemovedNone {
			w.Events().Push(ecs.Event{Kind: ecs.EventAgentDespawned, Entity: e, Data: reason})
		}
	}
}
