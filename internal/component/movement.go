// component/movement.go
package component

import (
	"go-tower-sim/internal/interfaces"
	"go-tower-sim/pkg/vmath"
)

// Position — компонент позиции
type Position = vmath.Vec2

// Path binds an entity to a waypoint route and tracks which waypoint it is heading for.
type Path struct {
	Route        interfaces.PathProvider
	CurrentIndex int
}

// Done reports whether every waypoint has been reached.
func (p *Path) Done() bool {
	return p.Route == nil || p.CurrentIndex >= p.Route.Len()
}
