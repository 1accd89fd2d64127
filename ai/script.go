package ai

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// A planner script defines plan(s) returning "pursue", "circle" or
// "ascend". s carries distance, angle, speed, height, circle_ready and roll.
const planDispatchScript = `
__result := plan(__situation)
`

// ScriptPlanner runs a tengo planner script.
type ScriptPlanner struct {
	name     string
	compiled *tengo.Compiled
}

// NewScriptPlanner compiles src. name is only used in errors.
func NewScriptPlanner(name string, src []byte) (*ScriptPlanner, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + planDispatchScript))
	if err := script.Add("__situation", map[string]any{}); err != nil {
		return nil, fmt.Errorf("ai: script %s: %w", name, err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ai: script %s: compile: %w", name, err)
	}
	return &ScriptPlanner{name: name, compiled: compiled}, nil
}

// Clone returns an independent planner sharing the compiled bytecode, one
// per agent.
func (p *ScriptPlanner) Clone() *ScriptPlanner {
	return &ScriptPlanner{name: p.name, compiled: p.compiled.Clone()}
}

func (p *ScriptPlanner) Plan(s Situation) (Maneuver, error) {
	if p == nil || p.compiled == nil {
		return ManeuverPursue, fmt.Errorf("ai: nil script planner")
	}
	situation := &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"distance":     &tengo.Float{Value: s.Distance},
		"angle":        &tengo.Float{Value: s.Angle},
		"speed":        &tengo.Float{Value: s.Speed},
		"height":       &tengo.Float{Value: s.Height},
		"circle_ready": boolObject(s.CircleReady),
		"roll":         &tengo.Float{Value: s.Roll},
	}}
	if err := p.compiled.Set("__situation", situation); err != nil {
		return ManeuverPursue, fmt.Errorf("ai: script %s: %w", p.name, err)
	}
	if err := p.compiled.Run(); err != nil {
		return ManeuverPursue, fmt.Errorf("ai: script %s: run: %w", p.name, err)
	}

	out := strings.TrimSpace(p.compiled.Get("__result").String())
	switch m := Maneuver(strings.ToLower(out)); m {
	case ManeuverPursue, ManeuverCircle, ManeuverAscend:
		return m, nil
	default:
		return ManeuverPursue, fmt.Errorf("ai: script %s: unknown manoeuvre %q", p.name, out)
	}
}

func boolObject(b bool) tengo.Object {
	if b {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}
