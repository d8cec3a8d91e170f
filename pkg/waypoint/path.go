// pkg/waypoint/path.go
package waypoint

import (
	"errors"

	"go-tower-sim/pkg/hexmap"
	"go-tower-sim/pkg/vmath"
)

// ErrEmptyPath is returned when a path would have no waypoints.
var ErrEmptyPath = errors.New("waypoint: path has no points")

// Path is an immutable, ordered list of waypoints. Index 0 is the spawn
// point and the last index is the goal.
type Path struct {
	points []vmath.Vec2
}

// New copies points into a new path.
func New(points ...vmath.Vec2) (Path, error) {
	if len(points) == 0 {
		return Path{}, ErrEmptyPath
	}
	return Path{points: append([]vmath.Vec2(nil), points...)}, nil
}

// FromHexes converts a hex route into world-space waypoints at the hex centers.
func FromHexes(route []hexmap.Hex, hexSize float64) (Path, error) {
	points := make([]vmath.Vec2, 0, len(route))
	for _, h := range route {
		x, y := h.ToPixel(hexSize)
		points = append(points, vmath.Vec2{X: x, Y: y})
	}
	return New(points...)
}

// Len returns the number of waypoints.
func (p Path) Len() int { return len(p.points) }

// At returns waypoint i.
func (p Path) At(i int) vmath.Vec2 { return p.points[i] }

// Start returns the spawn point.
func (p Path) Start() vmath.Vec2 { return p.points[0] }

// Goal returns the last waypoint.
func (p Path) Goal() vmath.Vec2 { return p.points[len(p.points)-1] }

// Points returns a copy of the waypoints.
func (p Path) Points() []vmath.Vec2 {
	return append([]vmath.Vec2(nil), p.points...)
}

// Length returns the walking distance from spawn to goal.
func (p Path) Length() float64 {
	total := 0.0
	for i := 1; i < len(p.points); i++ {
		total += p.points[i-1].Dist(p.points[i])
	}
	return total
}
