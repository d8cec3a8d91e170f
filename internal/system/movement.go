// internal/system/movement.go
package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
)

// MovementSystem ведёт врагов по точкам пути
type MovementSystem struct {
	ecs    *entity.ECS
	events *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, events *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, events: events}
}

func (s *MovementSystem) Update(deltaTime float64) {
	s.ecs.Paths.Each(func(id types.EntityID, path *component.Path) bool {
		if !s.ecs.IsAlive(id) {
			return true
		}
		pos, hasPos := s.ecs.Positions.Get(id)
		enemy, isEnemy := s.ecs.Enemies.Get(id)
		if !hasPos || !isEnemy {
			return true
		}
		if path.Done() {
			s.leak(id, pos, enemy)
			return true
		}

		target := path.Route.At(path.CurrentIndex)
		step := enemy.EffectiveSpeed() * deltaTime
		to := target.Sub(*pos)
		if dist := to.Len(); dist <= step {
			*pos = target // не перелетаем точку пути
		} else {
			*pos = pos.Add(to.Scale(step / dist))
		}

		if pos.Dist(target) < config.WaypointEpsilon {
			path.CurrentIndex++
			if path.Done() {
				s.leak(id, pos, enemy)
				return true
			}
		}
		if s.ecs.Spatial != nil {
			s.ecs.Spatial.Move(id, *pos)
		}
		return true
	})
}

// leak убирает врага, дошедшего до конца пути
func (s *MovementSystem) leak(id types.EntityID, pos *component.Position, enemy *component.Enemy) {
	if !s.ecs.Remove(id, entity.RemovedLeaked) {
		return
	}
	s.events.Dispatch(event.Event{Type: event.EnemyLeaked, Data: event.EnemyData{
		Enemy: id, DefID: enemy.DefID, Pos: *pos,
	}})
}
