// internal/types/entity.go
package types

import "strconv"

// EntityID is a generational handle: slot index in the low 32 bits, generation in the high 32.
// A stale handle (slot reused) never compares equal to the live one. Zero means "no entity".
type EntityID uint64

const indexBits = 32

// NewEntityID packs a slot index and generation into a handle.
func NewEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<indexBits | uint64(index))
}

// Index returns the arena slot of the handle.
func (id EntityID) Index() uint32 {
	return uint32(id & 0xFFFFFFFF)
}

// Generation returns the generation the handle was issued with.
func (id EntityID) Generation() uint32 {
	return uint32(uint64(id) >> indexBits)
}

// Valid reports whether the handle refers to anything at all.
func (id EntityID) Valid() bool {
	return id.Index() != 0
}

func (id EntityID) String() string {
	return strconv.FormatUint(uint64(id.Index()), 10) + "v" + strconv.FormatUint(uint64(id.Generation()), 10)
}
