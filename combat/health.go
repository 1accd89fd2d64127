package combat

import (
	"log/slog"
)

const (
	DefaultMaxHealth = 100
	DefaultDamage    = 10
)

// HealthDisplay renders current and max health.
type HealthDisplay interface {
	ShowHealth(current, max int)
}

// HealthChange reports threshold crossings caused by one call.
type HealthChange struct {
	Smoking   bool
	Destroyed bool
}

// Health is the player's hit points with one-shot smoke and destruction
// thresholds.
type Health struct {
	current   int
	max       int
	smoking   bool
	destroyed bool
	display   HealthDisplay
}

func NewHealth(max int, display HealthDisplay) *Health {
	if max <= 0 {
		max = DefaultMaxHealth
	}
	h := &Health{current: max, max: max, display: display}
	h.refresh()
	return h
}

func (h *Health) Current() int { return h.current }
func (h *Health) Max() int { return h.max }
func (h *Health) Smoking() bool { return h.smoking }
func (h *Health) Destroyed() bool { return h.destroyed }

// Fraction is current over max in [0, 1].
func (h *Health) Fraction() float64 {
	if h.max <= 0 || h.current <= 0 {
		return 0
	}
	return float64(h.current) / float64(h.max)
}

// Damage subtracts n. Once destroyed, further damage is ignored.
func (h *Health) Damage(n int) HealthChange {
	if h == nil || h.destroyed || n <= 0 {
		return HealthChange{}
	}
	h.current -= n
	if h.current < 0 {
		h.current = 0
	}
	h.refresh()
	slog.Debug("combat: player damaged", "health", h.current, "max", h.max)

	var ch HealthChange
	if !h.smoking && h.current <= h.max/2 {
		h.smoking = true
		ch.Smoking = true
	}
	if h.current <= 0 {
		ch.Destroyed = h.Destroy()
	}
	return ch
}

// Destroy marks the owner destroyed regardless of remaining health, as on a
// crash. It reports whether this call did it.
func (h *Health) Destroy() bool {
	if h == nil || h.destroyed {
		return false
	}
	h.destroyed = true
	slog.Info("combat: player destroyed", "health", h.current)
	return true
}

func (h *Health) refresh() {
	if h.display != nil {
		h.display.ShowHealth(h.current, h.max)
	}
}
