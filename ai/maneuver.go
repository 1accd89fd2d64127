package ai

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/paperplane/common"
)

func (c *Controller) choose(v view) {
	s := Situation{
		Distance:    v.distance,
		Angle:       v.angle,
		Speed:       c.speed,
		Height:      v.height,
		CircleReady: v.distance <= c.cfg.AttackDistance && c.circleRest <= 0,
		Roll:        c.rng.Float64(),
	}

	var m Maneuver
	if c.planner != nil {
		var err error
		m, err = c.planner.Plan(s)
		if err != nil {
			slog.Warn("ai: planner failed, using built-in rules", "agent", c.id, "err", err)
			m = rules(c.cfg, s)
		}
	} else {
		m = rules(c.cfg, s)
	}

	switch m {
	case ManeuverCircle:
		if c.cfg.Modes.Circling && s.CircleReady {
			c.startCircle()
		}
	case ManeuverAscend:
		if c.cfg.Modes.AscendBurst {
			c.startClimb()
		}
	}
}

func (c *Controller) startCircle() {
	c.phase = phaseCircle
	c.circle = common.Timer{Duration: c.cfg.CircleDuration}
}

func (c *Controller) endCircle() {
	c.phase = phasePursue
	c.circleRest = c.cfg.CircleCooldown
}

func (c *Controller) startClimb() {
	c.phase = phaseClimb
	c.climb = common.Timer{Duration: c.cfg.ClimbTimeout}
}

func (c *Controller) startBurst() {
	c.phase = phaseBurst
	c.burst = &common.Sequence{
		Count:    c.cfg.BurstCount,
		Interval: c.cfg.BurstInterval,
		Step:     func(int) { c.fire() },
		Alive:    c.Alive,
	}
}

// circlePoint picks a point on the circle around the target a quarter turn
// ahead of the agent, tangent chosen by up × relative position.
func (c *Controller) circlePoint(pos, tpos mgl64.Vec3) mgl64.Vec3 {
	rel := mgl64.Vec3{pos.X() - tpos.X(), 0, pos.Z() - tpos.Z()}
	radial := common.Normalize(rel)
	if radial.LenSqr() == 0 {
		radial = common.RightOf(c.body.Rotation())
	}
	tangent := common.Normalize(common.Up.Cross(radial))
	dir := common.Normalize(radial.Add(tangent))
	return tpos.Add(dir.Mul(c.cfg.CircleRadius))
}

// steer turns toward face, settles speed and sets the velocity. While
// circling the agent travels toward aim but keeps looking at face. Only the
// thrust is replaced each tick; whatever gravity, lift and impulses added on
// top of it carries over and decays with Drag.
func (c *Controller) steer(dt float64, pos, aim, face mgl64.Vec3, v view, turn bool) {
	flight := c.cfg.Modes.FlightDynamics
	rot := c.body.Rotation()
	toFace := face.Sub(pos)

	if turn && toFace.LenSqr() > 0 {
		rate := c.cfg.RotationSpeed
		if flight {
			rate = c.cfg.TurnRate
		}
		rot = common.RotateTowards(rot, common.LookRotation(toFace), rate*dt)
		c.body.SetRotation(rot)
	}

	if flight {
		c.speed = c.flightSpeed(dt, v.distance)
	} else {
		c.speed = common.Clamp(c.cfg.MoveSpeed, c.cfg.MinSpeed, c.cfg.MaxSpeed)
	}

	dir := common.ForwardOf(rot)
	if c.phase == phaseCircle {
		if d := common.Normalize(aim.Sub(pos)); d.LenSqr() > 0 {
			dir = d
		}
	}
	drift := c.body.Velocity().Sub(c.thrust)
	if c.cfg.Drag > 0 {
		drift = drift.Mul(math.Exp(-c.cfg.Drag * dt))
	}
	c.thrust = dir.Mul(c.speed)
	c.body.SetVelocity(c.thrust.Add(drift))

	if flight {
		c.body.AddImpulse(common.Up.Mul(c.cfg.LiftForce * c.speed * c.cfg.GravityScale * dt))
		c.bank = bankFor(rot, toFace, c.cfg.MaxBank)
	}
}

// avoid dodges obstacles ahead and pushes away from nearby agents. It
// reports whether an obstacle was dodged, which suppresses firing.
func (c *Controller) avoid(pos mgl64.Vec3) bool {
	if c.physics == nil {
		return false
	}
	rot := c.body.Rotation()
	fwd := common.ForwardOf(rot)
	dodged := false

	if c.cfg.DodgeRange > 0 {
		if hit, ok := c.physics.Raycast(pos, fwd, c.cfg.DodgeRange, c.cfg.ObstacleMask); ok {
			away := common.Normalize(common.Reflect(fwd, hit.Normal))
			c.body.AddImpulse(away.Mul(c.cfg.DodgeImpulse))
			dodged = true
		}
	}

	if c.cfg.AvoidRadius > 0 {
		self := c.body.ID()
		for _, other := range c.physics.OverlapSphere(pos, c.cfg.AvoidRadius, c.cfg.AgentMask) {
			if other.ID == self {
				continue
			}
			away := common.Normalize(pos.Sub(other.Position))
			if away.LenSqr() == 0 {
				away = common.RightOf(rot)
			}
			c.body.AddImpulse(away.Mul(c.cfg.RepelImpulse))
		}
	}
	return dodged
}
