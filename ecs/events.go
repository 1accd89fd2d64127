package ecs

// EventKind identifies game events raised during a tick.
type EventKind string

const (
	EventAgentKilled     EventKind = "agent_killed"
	EventAgentDespawned  EventKind = "agent_despawned"
	EventPlayerDamaged   EventKind = "player_damaged"
	EventPlayerDestroyed EventKind = "player_destroyed"
	EventGameOver        EventKind = "game_over"
)

// Event is a game event payload.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue, cleared at the start of every tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
