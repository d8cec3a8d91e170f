package physics_test

import (
	"testing"

	"go-tower-sim/internal/physics"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/vmath"

	"github.com/stretchr/testify/assert"
)

func TestQueryRadiusFindsOverlappingCircles(t *testing.T) {
	s := physics.NewSpace()
	a := types.NewEntityID(1, 0)
	b := types.NewEntityID(2, 0)
	c := types.NewEntityID(3, 0)
	s.Track(c, vmath.Vec2{X: 3, Y: 0}, 0.25)
	s.Track(a, vmath.Vec2{X: 1, Y: 0}, 0.25)
	s.Track(b, vmath.Vec2{X: 20, Y: 0}, 0.25)

	got := s.QueryRadius(vmath.Vec2{}, 5)
	assert.Equal(t, []types.EntityID{a, c}, got, "sorted by slot, far circle excluded")

	// The query circle only needs to touch the shape, not its center.
	got = s.QueryRadius(vmath.Vec2{}, 2.9)
	assert.Equal(t, []types.EntityID{a, c}, got)
}

func TestMoveAndUntrack(t *testing.T) {
	s := physics.NewSpace()
	id := types.NewEntityID(1, 0)
	s.Track(id, vmath.Vec2{X: 0, Y: 0}, 0.5)
	assert.Len(t, s.QueryRadius(vmath.Vec2{}, 1), 1)

	s.Move(id, vmath.Vec2{X: 50, Y: 50})
	assert.Empty(t, s.QueryRadius(vmath.Vec2{}, 1))
	assert.Len(t, s.QueryRadius(vmath.Vec2{X: 50, Y: 50}, 1), 1)

	s.Untrack(id)
	assert.Empty(t, s.QueryRadius(vmath.Vec2{X: 50, Y: 50}, 1))
	assert.Zero(t, s.Len())

	// Unknown ids are ignored.
	s.Move(id, vmath.Vec2{})
	s.Untrack(id)
}
