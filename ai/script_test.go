package ai_test

import (
	"testing"

	"github.com/milk9111/paperplane/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPlanScript = `
plan := func(s) {
	if s.circle_ready {
		return "circle"
	}
	if s.distance > 100 && s.roll < 0.5 {
		return "ascend"
	}
	return "pursue"
}
`

func TestScriptPlanner(t *testing.T) {
	p, err := ai.NewScriptPlanner("test", []byte(testPlanScript))
	require.NoError(t, err)

	cases := []struct {
		name string
		in   ai.Situation
		want ai.Maneuver
	}{
		{"circle_when_ready", ai.Situation{Distance: 20, CircleReady: true}, ai.ManeuverCircle},
		{"ascend_when_far_and_lucky", ai.Situation{Distance: 150, Roll: 0.1}, ai.ManeuverAscend},
		{"pursue_otherwise", ai.Situation{Distance: 150, Roll: 0.9}, ai.ManeuverPursue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.Plan(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScriptPlannerClonesAreIndependent(t *testing.T) {
	p, err := ai.NewScriptPlanner("test", []byte(testPlanScript))
	require.NoError(t, err)
	a, b := p.Clone(), p.Clone()

	got, err := a.Plan(ai.Situation{CircleReady: true})
	require.NoError(t, err)
	assert.Equal(t, ai.ManeuverCircle, got)

	got, err = b.Plan(ai.Situation{Distance: 10, Roll: 0.9})
	require.NoError(t, err)
	assert.Equal(t, ai.ManeuverPursue, got)
}

func TestScriptPlannerErrors(t *testing.T) {
	_, err := ai.NewScriptPlanner("missing", []byte(`x := 1`))
	assert.Error(t, err)

	p, err := ai.NewScriptPlanner("bad_result", []byte(`plan := func(s) { return "loop" }`))
	require.NoError(t, err)
	m, err := p.Plan(ai.Situation{})
	assert.Error(t, err)
	assert.Equal(t, ai.ManeuverPursue, m)
}
