// internal/entity/store.go
package entity

import "go-tower-sim/internal/types"

// Store is a typed component table indexed by handle slot.
// Iteration runs in ascending slot order, which gives systems a stable order.
type Store[T any] struct {
	ids   []types.EntityID
	items []*T
	count int
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// Set inserts or replaces the component for id.
func (s *Store[T]) Set(id types.EntityID, v *T) {
	idx := int(id.Index())
	if idx >= len(s.items) {
		grow := idx + 1 - len(s.items)
		s.ids = append(s.ids, make([]types.EntityID, grow)...)
		s.items = append(s.items, make([]*T, grow)...)
	}
	if s.items[idx] == nil {
		s.count++
	}
	s.ids[idx] = id
	s.items[idx] = v
}

// Get returns the component for id. A stale handle resolves to nothing.
func (s *Store[T]) Get(id types.EntityID) (*T, bool) {
	idx := int(id.Index())
	if idx >= len(s.items) || s.ids[idx] != id || s.items[idx] == nil {
		return nil, false
	}
	return s.items[idx], true
}

// Has reports whether id has this component.
func (s *Store[T]) Has(id types.EntityID) bool {
	_, ok := s.Get(id)
	return ok
}

// Delete removes the component for id, if present.
func (s *Store[T]) Delete(id types.EntityID) {
	idx := int(id.Index())
	if idx >= len(s.items) || s.ids[idx] != id || s.items[idx] == nil {
		return
	}
	s.items[idx] = nil
	s.ids[idx] = 0
	s.count--
}

// Len returns the number of stored components.
func (s *Store[T]) Len() int {
	return s.count
}

// Each calls fn for every component in slot order. Components added during
// the walk are not visited; components deleted during the walk are skipped.
// Returning false stops the walk.
func (s *Store[T]) Each(fn func(id types.EntityID, v *T) bool) {
	n := len(s.items)
	for i := 0; i < n; i++ {
		v := s.items[i]
		if v == nil {
			continue
		}
		if !fn(s.ids[i], v) {
			return
		}
	}
}

// IDs returns a snapshot of the stored handles in slot order.
func (s *Store[T]) IDs() []types.EntityID {
	out := make([]types.EntityID, 0, s.count)
	for i, v := range s.items {
		if v != nil {
			out = append(out, s.ids[i])
		}
	}
	return out
}
