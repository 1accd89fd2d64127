package entity

import (
	"github.com/milk9111/paperplane/combat"
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
)

// HUD holds the kill counter label and the health bar as components on one
// entity.
type HUD struct {
	w *ecs.World
	e ecs.Entity
}

var (
	_ combat.Display       = (*HUD)(nil)
	_ combat.HealthDisplay = (*HUD)(nil)
)

func NewHUD(w *ecs.World) (*HUD, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.KillCounterHUDComponent.Kind(), &component.KillCounterHUD{}); err != nil {
		return nil, err
	}
	if err := ecs.Add(w, e, component.HealthBarComponent.Kind(), &component.HealthBar{}); err != nil {
		ecs.DestroyEntity(w, e)
		return nil, err
	}
	return &HUD{w: w, e: e}, nil
}

func (h *HUD) Entity() ecs.Entity { return h.e }

func (h *HUD) SetText(text string) {
	if c, ok := ecs.Get(h.w, h.e, component.KillCounterHUDComponent.Kind()); ok {
		c.Text = text
	}
}

func (h *HUD) ShowHealth(cur, max int) {
	bar, ok := ecs.Get(h.w, h.e, component.HealthBarComponent.Kind())
	if !ok {
		return
	}
	bar.Current, bar.Max = cur, max
	bar.Fill = 0
	if max > 0 && cur > 0 {
		bar.Fill = float64(cur) / float64(max)
	}
}

// SceneRequester turns scene loads into a SceneRequest for the runner.
type SceneRequester struct {
	World *ecs.World
}

var _ combat.SceneLoader = (*SceneRequester)(nil)

func (s *SceneRequester) Load(name string) error {
	e := ecs.CreateEntity(s.World)
	return ecs.Add(s.World, e, component.SceneRequestComponent.Kind(), &component.SceneRequest{Scene: name})
}
