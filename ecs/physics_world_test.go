package ecs

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/paperplane/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatGround(h float64) GroundFunc {
	return func(x, z float64) (float64, bool) { return h, true }
}

func TestPhysicsWorldRegistration(t *testing.T) {
	pw := NewPhysicsWorld()
	require.NoError(t, pw.AddStatic(1, mgl64.Vec3{0, 5, 10}, 2, 5, ai.LayerObstacle))
	require.NoError(t, pw.AddKinematic(2, mgl64.Vec3{0, 20, 0}, 1, 0.5, ai.LayerAgent))

	assert.ErrorIs(t, pw.AddStatic(1, mgl64.Vec3{}, 1, 1, ai.LayerObstacle), ErrAlreadyRegistered)
	assert.ErrorIs(t, pw.AddKinematic(2, mgl64.Vec3{}, 1, 1, ai.LayerAgent), ErrAlreadyRegistered)
	assert.Equal(t, 2, pw.Len())
	assert.True(t, pw.Has(1))

	pw.Remove(1)
	pw.Remove(1)
	assert.False(t, pw.Has(1))
	assert.Equal(t, 1, pw.Len())
}

func TestPhysicsWorldRaycast(t *testing.T) {
	tests := []struct {
		name    string
		origin  mgl64.Vec3
		dir     mgl64.Vec3
		maxDist float64
		mask    ai.Layer
		wantHit bool
		wantID  uint64
		wantD   float64
	}{
		{"forward into pillar", mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, 0, 1}, 50, ai.LayerObstacle, true, 1, 8},
		{"masked out", mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, 0, 1}, 50, ai.LayerAgent, false, 0, 0},
		{"too short", mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, 0, 1}, 5, ai.LayerObstacle, false, 0, 0},
		{"over the top", mgl64.Vec3{0, 30, 0}, mgl64.Vec3{0, 0, 1}, 50, ai.LayerObstacle, false, 0, 0},
		{"straight down onto pillar", mgl64.Vec3{0, 30, 10}, mgl64.Vec3{0, -1, 0}, 50, ai.LayerObstacle, true, 1, 20},
		{"straight down onto ground", mgl64.Vec3{30, 12, 30}, mgl64.Vec3{0, -1, 0}, 50, ai.LayerTerrain, true, 0, 10},
		{"ground out of range", mgl64.Vec3{30, 12, 30}, mgl64.Vec3{0, -1, 0}, 5, ai.LayerTerrain, false, 0, 0},
		{"zero direction", mgl64.Vec3{0, 5, 0}, mgl64.Vec3{}, 50, ai.LayerAll, false, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pw := NewPhysicsWorld()
			pw.SetGround(flatGround(2))
			// pillar: footprint radius 2 at z=10, spanning y 0..10
			require.NoError(t, pw.AddStatic(1, mgl64.Vec3{0, 5, 10}, 2, 5, ai.LayerObstacle))

			hit, ok := pw.Raycast(tc.origin, tc.dir, tc.maxDist, tc.mask)
			require.Equal(t, tc.wantHit, ok)
			if !tc.wantHit {
				return
			}
			assert.Equal(t, tc.wantID, hit.ID)
			assert.InDelta(t, tc.wantD, hit.Distance, 1e-6)
		})
	}
}

func TestPhysicsWorldSweepExcludesShooter(t *testing.T) {
	pw := NewPhysicsWorld()
	require.NoError(t, pw.AddKinematic(7, mgl64.Vec3{0, 10, 0}, 1, 0.5, ai.LayerAgent))
	require.NoError(t, pw.AddKinematic(8, mgl64.Vec3{0, 10, 20}, 1, 0.5, ai.LayerAgent))

	origin := mgl64.Vec3{0, 10, -5}
	hit, ok := pw.Sweep(origin, mgl64.Vec3{0, 0, 1}, 40, 0.1, ai.LayerAgent, 7)
	require.True(t, ok)
	assert.Equal(t, uint64(8), hit.ID)

	hit, ok = pw.Sweep(origin, mgl64.Vec3{0, 0, 1}, 40, 0.1, ai.LayerAgent, 0)
	require.True(t, ok)
	assert.Equal(t, uint64(7), hit.ID)
}

func TestPhysicsWorldMove(t *testing.T) {
	pw := NewPhysicsWorld()
	require.NoError(t, pw.AddKinematic(3, mgl64.Vec3{0, 10, 0}, 1, 0.5, ai.LayerAgent))

	_, ok := pw.Raycast(mgl64.Vec3{0, 10, -5}, mgl64.Vec3{0, 0, 1}, 10, ai.LayerAgent)
	require.True(t, ok)

	pw.Move(3, mgl64.Vec3{50, 10, 50})
	_, ok = pw.Raycast(mgl64.Vec3{0, 10, -5}, mgl64.Vec3{0, 0, 1}, 10, ai.LayerAgent)
	assert.False(t, ok)

	got := pw.OverlapSphere(mgl64.Vec3{50, 10, 50}, 1, ai.LayerAgent)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(3), got[0].ID)
	assert.InDelta(t, 50, got[0].Position.X(), 1e-9)
}

func TestPhysicsWorldRepeatedMovesReindex(t *testing.T) {
	pw := NewPhysicsWorld()
	require.NoError(t, pw.AddKinematic(5, mgl64.Vec3{0, 10, 0}, 1, 0.5, ai.LayerAgent))

	stops := []mgl64.Vec3{{40, 10, 0}, {40, 10, 40}, {-30, 10, 15}}
	for _, p := range stops {
		pw.Move(5, p)
	}
	last := stops[len(stops)-1]

	for _, p := range append([]mgl64.Vec3{{0, 10, 0}}, stops[:len(stops)-1]...) {
		assert.Empty(t, pw.OverlapSphere(p, 1, ai.LayerAgent), "stale index entry at %v", p)
		_, ok := pw.Raycast(p.Add(mgl64.Vec3{0, 20, 0}), mgl64.Vec3{0, -1, 0}, 40, ai.LayerAgent)
		assert.False(t, ok, "vertical ray hit stale spot %v", p)
	}

	hit, ok := pw.Raycast(last.Add(mgl64.Vec3{0, 20, 0}), mgl64.Vec3{0, -1, 0}, 40, ai.LayerAgent)
	require.True(t, ok)
	assert.Equal(t, uint64(5), hit.ID)
	assert.InDelta(t, 19.5, hit.Distance, 1e-6)

	hit, ok = pw.Sweep(last.Add(mgl64.Vec3{0, 0, -10}), mgl64.Vec3{0, 0, 1}, 20, 0.1, ai.LayerAgent, 0)
	require.True(t, ok)
	assert.Equal(t, uint64(5), hit.ID)
}

func TestPhysicsWorldOverlapSphereBoundary(t *testing.T) {
	pw := NewPhysicsWorld()
	// footprint radius 1, so reachable from the origin at radius >= 4
	require.NoError(t, pw.AddKinematic(9, mgl64.Vec3{5, 10, 0}, 1, 0.5, ai.LayerAgent))

	assert.Empty(t, pw.OverlapSphere(mgl64.Vec3{0, 10, 0}, 3.9, ai.LayerAgent))
	got := pw.OverlapSphere(mgl64.Vec3{0, 10, 0}, 4.1, ai.LayerAgent)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(9), got[0].ID)
}

func TestPhysicsWorldOverlapSphere(t *testing.T) {
	pw := NewPhysicsWorld()
	require.NoError(t, pw.AddKinematic(1, mgl64.Vec3{0, 10, 6}, 1, 0.5, ai.LayerAgent))
	require.NoError(t, pw.AddKinematic(2, mgl64.Vec3{0, 10, 3}, 1, 0.5, ai.LayerAgent))
	require.NoError(t, pw.AddKinematic(3, mgl64.Vec3{0, 40, 1}, 1, 0.5, ai.LayerAgent))
	require.NoError(t, pw.AddStatic(4, mgl64.Vec3{2, 10, 0}, 1, 5, ai.LayerObstacle))

	got := pw.OverlapSphere(mgl64.Vec3{0, 10, 0}, 8, ai.LayerAgent)
	require.Len(t, got, 2, "the agent far above is outside the height band")
	assert.Equal(t, uint64(2), got[0].ID)
	assert.Equal(t, uint64(1), got[1].ID)

	got = pw.OverlapSphere(mgl64.Vec3{0, 10, 0}, 8, ai.LayerAgent|ai.LayerObstacle)
	require.Len(t, got, 3)
	assert.Equal(t, uint64(4), got[0].ID)

	assert.Empty(t, pw.OverlapSphere(mgl64.Vec3{0, 10, 0}, 8, ai.LayerPlayer))
}

func TestDestroyEntityDropsCollider(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()
	w.SetPhysicsWorld(pw)

	e := CreateEntity(w)
	require.NoError(t, pw.AddKinematic(e, mgl64.Vec3{}, 1, 1, ai.LayerAgent))
	require.True(t, DestroyEntity(w, e))
	assert.False(t, pw.Has(e))
}
