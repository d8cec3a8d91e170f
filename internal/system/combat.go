// internal/system/combat.go
package system

import (
	"log/slog"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/vmath"
)

// CombatSystem управляет атакой башен. Цель выбирается заново каждый тик.
type CombatSystem struct {
	ecs     *entity.ECS
	events  *event.Dispatcher
	library *defs.Library

	// HoldCooldownWhileIdle freezes the countdown of towers without a target.
	HoldCooldownWhileIdle bool
	// ProjectileLifetime bounds the straight flight of piercing projectiles.
	ProjectileLifetime float64
}

func NewCombatSystem(ecs *entity.ECS, events *event.Dispatcher, library *defs.Library) *CombatSystem {
	return &CombatSystem{ecs: ecs, events: events, library: library}
}

// SetLibrary swaps the definitions used for new projectiles.
func (s *CombatSystem) SetLibrary(library *defs.Library) {
	s.library = library
}

// SelectTarget returns the nearest live enemy whose center lies within rng
// of pos. Equal distances resolve to the lowest slot.
func (s *CombatSystem) SelectTarget(pos vmath.Vec2, rng float64) (types.EntityID, bool) {
	return nearestEnemy(s.ecs, pos, rng, nil)
}

func (s *CombatSystem) Update(deltaTime float64) {
	s.ecs.Towers.Each(func(id types.EntityID, tower *component.Tower) bool {
		pos, ok := s.ecs.Positions.Get(id)
		if !ok || !s.ecs.IsAlive(id) {
			return true
		}

		target, found := s.SelectTarget(*pos, tower.Range)
		if !found && s.HoldCooldownWhileIdle {
			return true
		}
		tower.FireCooldown = max(0, tower.FireCooldown-deltaTime)
		if !found || tower.FireCooldown > tickEpsilon {
			return true
		}

		s.fire(id, tower, *pos, target)
		tower.FireCooldown = tower.Interval()
		return true
	})
}

// fire создаёт снаряд в точке вылета и направляет его на цель
func (s *CombatSystem) fire(towerID types.EntityID, tower *component.Tower, pos vmath.Vec2, target types.EntityID) {
	def, err := s.library.Projectile(tower.ProjectileID)
	if err != nil {
		slog.Warn("tower cannot fire", "tower", towerID, "def", tower.DefID, "err", err)
		return
	}
	targetPos, ok := s.ecs.Positions.Get(target)
	if !ok {
		return
	}

	origin := pos.Add(tower.FirePoint)
	facing := targetPos.Sub(origin).Angle()
	projID := SpawnProjectile(s.ecs, def, origin, facing, s.ProjectileLifetime)
	Seek(s.ecs, projID, target)

	s.events.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.ProjectileData{
		Projectile: projID, Source: towerID, Target: target, Pos: origin,
	}})
}
