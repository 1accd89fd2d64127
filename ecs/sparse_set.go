package ecs

// SparseSet stores one component value per entity slot with dense iteration.
type SparseSet[T any] struct {
	denseEntities []Entity
	denseValues   []*T
	sparse        map[entityID]int
}

func newSparseSet[T any]() *SparseSet[T] {
	return &SparseSet[T]{sparse: make(map[entityID]int)}
}

// Has reports whether e currently owns a value.
func (s *SparseSet[T]) Has(e Entity) bool {
	if s == nil {
		return false
	}
	idx, ok := s.sparse[e.id()]
	return ok && s.denseEntities[idx] == e
}

// Get returns the value for e, or nil.
func (s *SparseSet[T]) Get(e Entity) *T {
	if !s.Has(e) {
		return nil
	}
	return s.denseValues[s.sparse[e.id()]]
}

// Set inserts or replaces the value for e.
func (s *SparseSet[T]) Set(e Entity, v *T) {
	if idx, ok := s.sparse[e.id()]; ok {
		s.denseEntities[idx] = e
		s.denseValues[idx] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[e.id()] = len(s.denseEntities) - 1
}

// Remove deletes the value for e if present.
func (s *SparseSet[T]) Remove(e Entity) bool {
	if !s.Has(e) {
		return false
	}
	idx := s.sparse[e.id()]
	last := len(s.denseEntities) - 1
	moved := s.denseEntities[last]

	s.denseEntities[idx] = moved
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[moved.id()] = idx

	s.denseEntities[last] = 0
	s.denseValues[last] = nil
	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	delete(s.sparse, e.id())
	return true
}

func (s *SparseSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}

// Entities returns a copy of the dense entity list, safe to iterate while
// the set is mutated.
func (s *SparseSet[T]) Entities() []Entity {
	if s == nil {
		return nil
	}
	return append([]Entity(nil), s.denseEntities...)
}

func (s *SparseSet[T]) remove(e Entity) bool { return s.Remove(e) }
func (s *SparseSet[T]) has(e Entity) bool    { return s.Has(e) }
func (s *SparseSet[T]) size() int            { return s.Len() }
func (s *SparseSet[T]) entities() []Entity   { return s.Entities() }
