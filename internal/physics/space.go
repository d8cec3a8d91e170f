// internal/physics/space.go
package physics

import (
	"slices"

	"go-tower-sim/internal/interfaces"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/vmath"

	"github.com/jakecoffman/cp"
	"github.com/kamstrup/intmap"
)

var _ interfaces.SpatialIndex = (*Space)(nil)

// Space is a chipmunk space used only for overlap queries: every tracked
// entity is a circle on a kinematic body, nothing is ever stepped.
type Space struct {
	space  *cp.Space
	bodies *intmap.Map[types.EntityID, *cp.Body]
}

// NewSpace creates an empty index.
func NewSpace() *Space {
	return &Space{
		space:  cp.NewSpace(),
		bodies: intmap.New[types.EntityID, *cp.Body](128),
	}
}

// Track adds id as a circle of radius at pos. Tracking an id twice moves it.
func (s *Space) Track(id types.EntityID, pos vmath.Vec2, radius float64) {
	if _, ok := s.bodies.Get(id); ok {
		s.Move(id, pos)
		return
	}
	body := s.space.AddBody(cp.NewKinematicBody())
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	shape := s.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.UserData = id
	s.bodies.Put(id, body)
}

// Move updates the position of a tracked id. Unknown ids are ignored.
func (s *Space) Move(id types.EntityID, pos vmath.Vec2) {
	body, ok := s.bodies.Get(id)
	if !ok {
		return
	}
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	// space никогда не шагает, поэтому BB формы обновляем переиндексацией вручную
	for _, shape := range shapesOf(body) {
		s.space.RemoveShape(shape)
		s.space.AddShape(shape)
	}
}

// Untrack removes id from the index.
func (s *Space) Untrack(id types.EntityID) {
	body, ok := s.bodies.Get(id)
	if !ok {
		return
	}
	for _, shape := range shapesOf(body) {
		s.space.RemoveShape(shape)
	}
	s.space.RemoveBody(body)
	s.bodies.Del(id)
}

func shapesOf(body *cp.Body) []*cp.Shape {
	var shapes []*cp.Shape
	body.EachShape(func(shape *cp.Shape) {
		shapes = append(shapes, shape)
	})
	return shapes
}

// QueryRadius returns every tracked id whose circle overlaps the query circle.
func (s *Space) QueryRadius(center vmath.Vec2, radius float64) []types.EntityID {
	var found []types.EntityID
	point := cp.Vector{X: center.X, Y: center.Y}
	s.space.BBQuery(cp.NewBBForCircle(point, radius), cp.SHAPE_FILTER_ALL,
		func(shape *cp.Shape, _ interface{}) {
			// Distance отрицательна внутри круга
			if shape.PointQuery(point).Distance > radius {
				return
			}
			if id, ok := shape.UserData.(types.EntityID); ok {
				found = append(found, id)
			}
		}, nil)
	slices.SortFunc(found, func(a, b types.EntityID) int {
		return int(a.Index()) - int(b.Index())
	})
	return found
}

// Len returns the number of tracked ids.
func (s *Space) Len() int {
	return s.bodies.Len()
}
