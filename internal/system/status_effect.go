// internal/system/status_effect.go
package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/interfaces"
	"go-tower-sim/internal/types"
)

// tickEpsilon absorbs float drift when dt sums up to a whole interval.
const tickEpsilon = 1e-9

// StatusEffectSystem управляет жизненным циклом эффектов: замедлением и ядом.
type StatusEffectSystem struct {
	ecs    *entity.ECS
	damage *Damager
}

func NewStatusEffectSystem(ecs *entity.ECS, damage *Damager) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, damage: damage}
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	// Замедление: по истечении времени возвращаем базовую скорость
	s.ecs.SlowEffects.Each(func(id types.EntityID, effect *component.SlowEffect) bool {
		if !s.ecs.IsAlive(id) {
			return true
		}
		effect.Remaining -= deltaTime
		if effect.Remaining <= 0 {
			if enemy, ok := s.ecs.Enemies.Get(id); ok {
				enemy.Speed = enemy.BaseSpeed
			}
			s.ecs.SlowEffects.Delete(id)
		}
		return true
	})

	// Яд: один тик урона за каждый полный интервал
	s.ecs.PoisonEffects.Each(func(id types.EntityID, effect *component.PoisonEffect) bool {
		if !s.ecs.IsAlive(id) {
			return true
		}
		effect.TickTimer += deltaTime
		for effect.Remaining > tickEpsilon && effect.TickTimer+tickEpsilon >= effect.Interval {
			effect.TickTimer -= effect.Interval
			effect.Remaining -= effect.Interval
			if s.damage.TakeDamage(id, effect.DamagePerTick, interfaces.DamagePoison) {
				return true
			}
		}
		if effect.Remaining <= tickEpsilon {
			s.ecs.PoisonEffects.Delete(id)
		}
		return true
	})
}
