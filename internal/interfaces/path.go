package interfaces

import "go-tower-sim/pkg/vmath"

// PathProvider is an ordered, immutable sequence of waypoints.
// Index 0 is the spawn point, the last index is the goal.
type PathProvider interface {
	Len() int
	At(i int) vmath.Vec2
}
