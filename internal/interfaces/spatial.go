package interfaces

import (
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/vmath"
)

// SpatialIndex answers "who overlaps this circle" for tracked entities.
type SpatialIndex interface {
	Track(id types.EntityID, pos vmath.Vec2, radius float64)
	Move(id types.EntityID, pos vmath.Vec2)
	Untrack(id types.EntityID)
	// QueryRadius returns every tracked entity whose shape overlaps the circle,
	// ordered by arena slot so callers see a stable iteration order.
	QueryRadius(center vmath.Vec2, radius float64) []types.EntityID
}
