package system

import (
	"github.com/milk9111/paperplane/common"
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
)

// Axis supplies the player's steering for a tick.
type Axis interface {
	Read(w *ecs.World) component.Input
}

// InputSystem copies the axis source onto every player Input.
type InputSystem struct {
	source Axis
}

func NewInputSystem(source Axis) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.source == nil || w == nil {
		return
	}

	in := i.source.Read(w)
	in.Yaw = common.Clamp(in.Yaw, -1, 1)
	in.Pitch = common.Clamp(in.Pitch, -1, 1)

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, _ *component.PlayerTag, input *component.Input) {
		*input = in
	})
}
