package combat

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/paperplane/ai"
)

// DefaultProjectileTTL is how long an unspent projectile lives, in seconds.
const DefaultProjectileTTL = 3.0

// Projectile tracks one shot's side, lifetime and whether it already hit.
type Projectile struct {
	Side      ai.Side
	Velocity  mgl64.Vec3
	TTL       float64
	HitEffect string

	age float64
	hit bool
}

func NewProjectile(side ai.Side, vel mgl64.Vec3, ttl float64) *Projectile {
	if ttl <= 0 {
		ttl = DefaultProjectileTTL
	}
	return &Projectile{Side: side, Velocity: vel, TTL: ttl}
}

// Hit marks the first collision. It returns true only once; later
// collisions of the same projectile are ignored.
func (p *Projectile) Hit() bool {
	if p == nil || p.hit {
		return false
	}
	p.hit = true
	return true
}

// Advance ages the projectile and reports whether its lifetime ran out.
func (p *Projectile) Advance(dt float64) bool {
	if p == nil {
		return true
	}
	p.age += dt
	return p.Expired()
}

func (p *Projectile) Expired() bool {
	return p == nil || p.age >= p.TTL
}

// Spent reports whether the projectile should be removed.
func (p *Projectile) Spent() bool {
	return p == nil || p.hit || p.Expired()
}
