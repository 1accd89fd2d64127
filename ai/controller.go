package ai

import (
	"encoding/binary"
	"errors"
	"log/slog"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/milk9111/paperplane/common"
)

type phase int

const (
	phasePursue phase = iota
	phaseCircle
	phaseClimb
	phaseBurst
)

func (p phase) String() string {
	switch p {
	case phaseCircle:
		return "circle"
	case phaseClimb:
		return "climb"
	case phaseBurst:
		return "burst"
	default:
		return "pursue"
	}
}

// Deps are the collaborators a controller talks to. Body and Spawner are
// required; the rest are optional and skipped when nil.
type Deps struct {
	Target  Target
	Body    Body
	Spawner Spawner
	Physics Physics
	Effects Effects
	Kills   KillCounter
	Planner Planner
	Rand    *rand.Rand
}

// Controller is one agent's brain.
type Controller struct {
	id  uuid.UUID
	cfg Config

	target  Target
	body    Body
	spawner Spawner
	physics Physics
	effects Effects
	kills   KillCounter
	planner Planner
	rng     *rand.Rand

	state    State
	phase    phase
	speed    float64
	thrust   mgl64.Vec3
	cooldown float64
	bank     float64
	shots    int

	circle     common.Timer
	circleRest float64
	climb      common.Timer
	burst      *common.Sequence

	grace      common.Timer
	removed    RemovalReason
	targetLost bool
}

// NewController validates cfg and wires the collaborators.
func NewController(cfg Config, deps Deps) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Body == nil {
		return nil, errors.New("ai: nil body")
	}
	if deps.Spawner == nil {
		return nil, errors.New("ai: nil spawner")
	}

	id := uuid.New()
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(id[:8]))))
	}

	c := &Controller{
		id:      id,
		cfg:     cfg,
		target:  deps.Target,
		body:    deps.Body,
		spawner: deps.Spawner,
		physics: deps.Physics,
		effects: deps.Effects,
		kills:   deps.Kills,
		planner: deps.Planner,
		rng:     rng,
	}
	c.speed = common.Clamp(cfg.MoveSpeed, cfg.MinSpeed, cfg.MaxSpeed)
	if cfg.Modes.FlightDynamics {
		c.speed = common.Clamp(cfg.CruiseSpeed, cfg.MinSpeed, cfg.MaxSpeed)
	}
	return c, nil
}

func (c *Controller) ID() uuid.UUID { return c.id }
func (c *Controller) Config() Config { return c.cfg }
func (c *Controller) State() State { return c.state }
func (c *Controller) Speed() float64 { return c.speed }
func (c *Controller) Cooldown() float64 { return c.cooldown }
func (c *Controller) Removed() RemovalReason { return c.removed }

// Alive reports whether the agent can still act.
func (c *Controller) Alive() bool {
	return c != nil && c.state != StateDead && c.removed == RemovedNone
}

// SetTarget swaps the tracked entity.
func (c *Controller) SetTarget(t Target) {
	c.target = t
}

// Bank is the presentation roll in degrees; positive dips the right wing.
func (c *Controller) Bank() float64 { return c.bank }

// Presentation is the body rotation with the bank applied. It never feeds
// back into steering.
func (c *Controller) Presentation() mgl64.Quat {
	roll := mgl64.QuatRotate(-mgl64.DegToRad(c.bank), common.Forward)
	return c.body.Rotation().Mul(roll).Normalize()
}

type view struct {
	distance float64
	angle    float64
	height   float64
}

// Tick advances the agent by dt seconds.
func (c *Controller) Tick(dt float64) {
	if c == nil || c.removed != RemovedNone || dt < 0 {
		return
	}
	if c.state == StateDead {
		if c.grace.Advance(dt) {
			c.remove(RemovedGrace)
		}
		return
	}
	var (
		tpos mgl64.Vec3
		ok   bool
	)
	if c.target != nil {
		tpos, _, ok = c.target.Transform()
	}
	if !ok {
		if !c.targetLost {
			slog.Warn("ai: target unavailable, holding", "agent", c.id)
			c.targetLost = true
		}
		return
	}
	if c.targetLost {
		slog.Debug("ai: target reacquired", "agent", c.id)
		c.targetLost = false
	}

	pos := c.body.Position()
	toTarget := tpos.Sub(pos)
	if toTarget.Len() > c.cfg.DespawnDistance {
		c.remove(RemovedDistance)
		return
	}

	c.cooldown += dt
	if c.circleRest > 0 {
		c.circleRest = math.Max(0, c.circleRest-dt)
	}

	v := view{
		distance: toTarget.Len(),
		angle:    mgl64.RadToDeg(common.AngleBetween(common.ForwardOf(c.body.Rotation()), toTarget)),
		height:   pos.Y() - tpos.Y(),
	}
	if c.phase == phasePursue {
		c.choose(v)
	}

	aim, face := tpos, tpos
	gated := true
	turn := c.cfg.Modes.Pursuit
	circled := false
	switch c.phase {
	case phaseCircle:
		aim = c.circlePoint(pos, tpos)
		turn = true
		circled = c.circle.Advance(dt)
	case phaseClimb:
		aim = tpos.Add(mgl64.Vec3{0, c.cfg.AscendHeight, 0})
		face = aim
		gated = false
		turn = true
		if aim.Sub(pos).Len() <= c.cfg.AscendProximity {
			c.startBurst()
		} else if c.cfg.ClimbTimeout > 0 && c.climb.Advance(dt) {
			slog.Debug("ai: climb timed out", "agent", c.id)
			c.phase = phasePursue
		}
	case phaseBurst:
		gated = false
		turn = true
	}

	c.steer(dt, pos, aim, face, v, turn)
	// the last circling tick still flies toward the circle point
	if circled {
		c.endCircle()
	}

	suppressed := false
	if c.cfg.Modes.Avoidance {
		suppressed = c.avoid(pos)
	}

	if c.phase == phaseBurst {
		c.burst.Advance(dt)
		if c.burst.Done() {
			c.burst = nil
			c.phase = phasePursue
		}
	}

	if gated && !suppressed && c.canFire(v) {
		c.fire()
	}

	if !c.Alive() {
		return
	}
	c.state = StateAlive
	if c.phase != phasePursue {
		c.state = StateTactical
	}
}

// Hit delivers a projectile hit. Only the first hit from the player side
// kills; everything after is ignored. It reports whether the hit killed.
func (c *Controller) Hit(from Side) bool {
	if !c.Alive() || from != SidePlayer {
		return false
	}
	c.state = StateDead
	c.phase = phasePursue
	c.burst = nil
	c.grace = common.Timer{Duration: c.cfg.DeathGrace}

	c.body.FreeFall()
	if c.effects != nil && c.cfg.DeathEffect != "" {
		c.effects.Attach(c.cfg.DeathEffect, c.body.ID())
	}
	if c.kills != nil {
		c.kills.RegisterKill()
	}
	slog.Debug("ai: agent down", "agent", c.id, "grace", c.cfg.DeathGrace)
	return true
}

func (c *Controller) remove(reason RemovalReason) {
	c.removed = reason
	c.burst = nil
	c.spawner.Despawn()
	slog.Debug("ai: agent removed", "agent", c.id, "reason", reason, "shots", c.shots)
}

func (c *Controller) canFire(v view) bool {
	if c.cooldown < c.cfg.FireRate || v.distance > c.cfg.FireRange {
		return false
	}
	return !c.cfg.Modes.AngleGate || v.angle <= c.cfg.FireAngle
}

func (c *Controller) fire() bool {
	rot := c.body.Rotation()
	origin := c.body.Position().Add(rot.Rotate(c.cfg.FirePoint))
	c.cooldown = 0

	shot := Shot{
		Owner:    c.id,
		Origin:   origin,
		Rotation: rot,
		Velocity: common.ForwardOf(rot).Mul(c.cfg.ProjectileSpeed),
		Side:     SideAgent,
	}
	if err := c.spawner.SpawnProjectile(shot); err != nil {
		slog.Warn("ai: spawn projectile failed", "agent", c.id, "err", err)
		return false
	}
	c.shots++
	if c.effects != nil && c.cfg.FireEffect != "" {
		c.effects.Play(c.cfg.FireEffect, origin)
	}
	return true
}
