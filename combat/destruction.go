package combat

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/paperplane/common"
)

const (
	DefaultPartInterval   = 0.5
	DefaultMinPartImpulse = 5.0
	DefaultMaxPartImpulse = 15.0
	DefaultGameOverDelay  = 3.0
	GameOverScene         = "GameOver"
)

// PartReleaser detaches a part of a destroyed plane and throws it.
type PartReleaser interface {
	Release(part int, impulse mgl64.Vec3)
}

// SceneLoader switches the active scene.
type SceneLoader interface {
	Load(name string) error
}

// BreakApart releases parts one at a time with a random impulse each.
type BreakApart struct {
	seq *common.Sequence
}

// NewBreakApart prepares a break-apart of parts parts, one every interval
// seconds, each thrown in a random direction with a magnitude in
// [minImpulse, maxImpulse).
func NewBreakApart(parts int, interval, minImpulse, maxImpulse float64, rng *rand.Rand, r PartReleaser, alive func() bool) *BreakApart {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &BreakApart{seq: &common.Sequence{
		Count:    parts,
		Interval: interval,
		Alive:    alive,
		Step: func(i int) {
			if r == nil {
				return
			}
			mag := minImpulse + rng.Float64()*(maxImpulse-minImpulse)
			r.Release(i, unitSphere(rng).Mul(mag))
		},
	}}
}

func (b *BreakApart) Advance(dt float64) {
	if b == nil {
		return
	}
	b.seq.Advance(dt)
}

func (b *BreakApart) Done() bool {
	return b == nil || b.seq.Done()
}

func (b *BreakApart) Released() int {
	if b == nil {
		return 0
	}
	return b.seq.Completed()
}

// unitSphere samples a uniformly distributed unit vector.
func unitSphere(rng *rand.Rand) mgl64.Vec3 {
	z := rng.Float64()*2 - 1
	phi := rng.Float64() * 2 * math.Pi
	r := math.Sqrt(1 - z*z)
	return mgl64.Vec3{r * math.Cos(phi), z, r * math.Sin(phi)}
}

// GameOver loads the game-over scene once Delay seconds after it starts.
type GameOver struct {
	Delay  float64
	Scene  string
	loader SceneLoader

	timer   common.Timer
	running bool
	fired   bool
}

func NewGameOver(delay float64, loader SceneLoader) *GameOver {
	if delay < 0 {
		delay = DefaultGameOverDelay
	}
	return &GameOver{Delay: delay, Scene: GameOverScene, loader: loader}
}

// Start arms the timer. Repeated calls are ignored.
func (g *GameOver) Start() {
	if g == nil || g.running || g.fired {
		return
	}
	g.running = true
	g.timer = common.Timer{Duration: g.Delay}
}

// Advance reports true on the tick the scene load is triggered.
func (g *GameOver) Advance(dt float64) bool {
	if g == nil || !g.running || g.fired {
		return false
	}
	if !g.timer.Advance(dt) {
		return false
	}
	g.fired = true
	g.running = false
	if g.loader != nil {
		if err := g.loader.Load(g.Scene); err != nil {
			slog.Error("combat: load game over scene", "scene", g.Scene, "err", err)
		}
	}
	return true
}

func (g *GameOver) Fired() bool {
	return g != nil && g.fired
}
