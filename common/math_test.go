package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func vecNear(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-9, "component %d of %v", i, got)
	}
}

func TestLookRotationPointsForward(t *testing.T) {
	dirs := []mgl64.Vec3{
		{0, 0, 1},
		{1, 0, 0},
		{0, 0, -1},
		{3, 4, -5},
		{-1, -2, 0.5},
	}
	for _, d := range dirs {
		vecNear(t, Normalize(d), ForwardOf(LookRotation(d)))
	}
}

func TestLookRotationKeepsWingsLevel(t *testing.T) {
	q := LookRotation(mgl64.Vec3{2, 1, 3})
	assert.InDelta(t, 0, RightOf(q).Y(), 1e-9)
}

func TestLookRotationZeroIsIdentity(t *testing.T) {
	assert.Equal(t, mgl64.QuatIdent(), LookRotation(mgl64.Vec3{}))
}

func TestRotateTowardsBoundsStep(t *testing.T) {
	from := mgl64.QuatIdent()
	to := LookRotation(mgl64.Vec3{1, 0, 0})

	step := RotateTowards(from, to, 0.1)
	assert.InDelta(t, 0.1, QuatAngle(from, step), 1e-6)

	assert.InDelta(t, 0, QuatAngle(to, RotateTowards(from, to, math.Pi)), 1e-6)
	assert.Equal(t, from, RotateTowards(from, to, 0))
}

func TestReflect(t *testing.T) {
	vecNear(t, mgl64.Vec3{0, 0, -1}, Reflect(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, -1}))
	vecNear(t, mgl64.Vec3{1, 1, 0}, Reflect(mgl64.Vec3{1, -1, 0}, mgl64.Vec3{0, 2, 0}))
}

func TestAngleBetween(t *testing.T) {
	assert.InDelta(t, math.Pi/2, AngleBetween(Forward, Right), 1e-9)
	assert.InDelta(t, 0, AngleBetween(Forward, mgl64.Vec3{}), 1e-9)
}

func TestMoveTowardsAndClamp(t *testing.T) {
	cases := []struct {
		cur, target, delta, want float64
	}{
		{0, 10, 3, 3},
		{10, 0, 3, 7},
		{9, 10, 3, 10},
		{5, 5, 1, 5},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, MoveTowards(c.cur, c.target, c.delta))
	}
	assert.Equal(t, 2.0, Clamp(5, 0, 2))
	assert.Equal(t, 0.0, Clamp(-1, 0, 2))
}

func TestPlanarDistanceIgnoresHeight(t *testing.T) {
	assert.Equal(t, 5.0, PlanarDistance(mgl64.Vec3{0, 100, 0}, mgl64.Vec3{3, -7, 4}))
}
