// Package combat holds the shared combat bookkeeping: the kill counter,
// projectile lifetime, player health and the destruction sequence.
package combat

import (
	"fmt"
	"log/slog"
)

//go:generate go tool mockgen -destination=./mocks/display_mock.go -package=mocks . Display,HealthDisplay,SceneLoader,PartReleaser

// Display shows a line of HUD text.
type Display interface {
	SetText(text string)
}

// KillCounter counts confirmed player kills. One instance is created at
// startup and handed to every consumer.
type KillCounter struct {
	count   int
	display Display
}

func NewKillCounter(display Display) *KillCounter {
	k := &KillCounter{display: display}
	k.refresh()
	return k
}

// RegisterKill adds one kill and refreshes the display.
func (k *KillCounter) RegisterKill() {
	if k == nil {
		return
	}
	k.count++
	slog.Debug("combat: kill registered", "kills", k.count)
	k.refresh()
}

func (k *KillCounter) Count() int {
	if k == nil {
		return 0
	}
	return k.count
}

func (k *KillCounter) Label() string {
	return fmt.Sprintf("Kills: %d", k.Count())
}

func (k *KillCounter) refresh() {
	if k.display != nil {
		k.display.SetText(k.Label())
	}
}
