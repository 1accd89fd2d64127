package ai

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/paperplane/common"
)

// flightSpeed eases toward cruise speed when far from the target and toward
// approach speed when near, always inside [MinSpeed, MaxSpeed].
func (c *Controller) flightSpeed(dt, distance float64) float64 {
	want := c.cfg.CruiseSpeed
	if distance < c.cfg.NearDistance {
		want = c.cfg.ApproachSpeed
	}
	s := common.MoveTowards(c.speed, want, c.cfg.SpeedEase*dt)
	return common.Clamp(s, c.cfg.MinSpeed, c.cfg.MaxSpeed)
}

// bankFor derives a roll in degrees from how far to the side dir points
// relative to rot.
func bankFor(rot mgl64.Quat, dir mgl64.Vec3, maxBank float64) float64 {
	d := common.Normalize(dir)
	if d.LenSqr() == 0 {
		return 0
	}
	lateral := common.RightOf(rot).Dot(d)
	return common.Clamp(lateral*maxBank, -math.Abs(maxBank), math.Abs(maxBank))
}
