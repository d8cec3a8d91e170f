// internal/entity/entity_store.go
package entity

import "go-tower-sim/internal/types"

// entityStore tracks slot generations and free slots. Slot 0 is never issued.
type entityStore struct {
	gen  []uint32
	free []uint32
	live int
}

func (s *entityStore) create() types.EntityID {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		if len(s.gen) == 0 {
			s.gen = append(s.gen, 0)
		}
		idx = uint32(len(s.gen))
		s.gen = append(s.gen, 0)
	}
	s.live++
	return types.NewEntityID(idx, s.gen[idx])
}

func (s *entityStore) destroy(id types.EntityID) {
	if !s.isAlive(id) {
		return
	}
	idx := id.Index()
	s.gen[idx]++
	s.free = append(s.free, idx)
	s.live--
}

func (s *entityStore) isAlive(id types.EntityID) bool {
	idx := id.Index()
	if idx == 0 || int(idx) >= len(s.gen) {
		return false
	}
	return s.gen[idx] == id.Generation()
}
