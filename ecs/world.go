package ecs

import "github.com/milk9111/paperplane/ecs/component"

// System updates a world each tick.
type System interface {
	Update(w *World)
}

type anyStore interface {
	remove(e Entity) bool
	has(e Entity) bool
	size() int
	entities() []Entity
}

// World owns entities, components, system order and the tick clock.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]anyStore
	systems  []System
	events   EventQueue

	dt      float64
	elapsed float64
	ticks   uint64

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]anyStore)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. It reports
// false when e was already gone.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	if w.physicsWorld != nil {
		w.physicsWorld.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Tick runs all systems once with dt seconds of elapsed time. Events pushed
// during the tick stay readable until the next Tick starts.
func (w *World) Tick(dt float64) {
	if w == nil {
		return
	}
	w.events.flush()
	w.dt = dt
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
	w.elapsed += dt
	w.ticks++
}

// DeltaTime is the elapsed time of the tick in progress.
func (w *World) DeltaTime() float64 {
	if w == nil {
		return 0
	}
	return w.dt
}

// Elapsed is the simulated time of all completed ticks.
func (w *World) Elapsed() float64 {
	if w == nil {
		return 0
	}
	return w.elapsed
}

// Ticks counts completed ticks.
func (w *World) Ticks() uint64 {
	if w == nil {
		return 0
	}
	return w.ticks
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}
