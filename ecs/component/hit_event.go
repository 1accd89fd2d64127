package component

import "github.com/milk9111/paperplane/ai"

// Hit is one blow delivered to an entity during a tick.
type Hit struct {
	Side   ai.Side
	Damage int
	// Crash marks a collision with solid scenery; it destroys outright.
	Crash bool
	From  uint64
}

// HitEvent is a transient component collecting the hits an entity took this
// tick. The receiving system removes it after applying the hits.
type HitEvent struct {
	Hits []Hit
}

var HitEventComponent = NewComponent[HitEvent]()
