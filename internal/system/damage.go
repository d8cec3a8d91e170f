// internal/system/damage.go
package system

import (
	"math"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/interfaces"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/vmath"
)

// Damager is the single place where enemies lose health or gain status effects.
type Damager struct {
	ecs     *entity.ECS
	events  *event.Dispatcher
	display interfaces.DamageDisplay
}

func NewDamager(ecs *entity.ECS, events *event.Dispatcher, display interfaces.DamageDisplay) *Damager {
	if display == nil {
		display = interfaces.NopHooks{}
	}
	return &Damager{ecs: ecs, events: events, display: display}
}

// TakeDamage subtracts amount from the enemy's health and reports whether
// this call killed it. Dead targets and non-positive amounts are ignored.
func (d *Damager) TakeDamage(id types.EntityID, amount int, kind interfaces.DamageKind) bool {
	if amount <= 0 || !d.ecs.IsAlive(id) {
		return false
	}
	health, ok := d.ecs.Healths.Get(id)
	if !ok {
		return false
	}

	health.Value -= amount
	d.display.ShowDamage(id, amount, kind)
	d.events.Dispatch(event.Event{Type: event.DamageDealt, Data: event.DamageData{
		Target: id, Amount: amount, Kind: kind, Health: health.Value,
	}})

	if !health.Dead() {
		return false
	}
	data := event.EnemyData{Enemy: id}
	if pos, ok := d.ecs.Positions.Get(id); ok {
		data.Pos = *pos
	}
	if enemy, ok := d.ecs.Enemies.Get(id); ok {
		data.DefID = enemy.DefID
	}
	d.ecs.Remove(id, entity.RemovedKilled)
	d.events.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: data})
	return true
}

// ApplyPoison attaches a damage-over-time effect. An enemy that is already
// poisoned keeps its current effect untouched.
func (d *Damager) ApplyPoison(id types.EntityID, damagePerSecond, duration float64) bool {
	if !d.ecs.IsAlive(id) || d.ecs.PoisonEffects.Has(id) || !d.ecs.Healths.Has(id) {
		return false
	}
	d.ecs.PoisonEffects.Set(id, &component.PoisonEffect{
		DamagePerTick: int(math.Round(damagePerSecond * config.PoisonTickInterval)),
		Interval:      config.PoisonTickInterval,
		Remaining:     duration,
	})
	return true
}

// ApplySlow multiplies the enemy's speed by factor for duration seconds.
// An enemy that is already slowed keeps its current effect untouched.
func (d *Damager) ApplySlow(id types.EntityID, factor, duration float64) bool {
	if !d.ecs.IsAlive(id) || d.ecs.SlowEffects.Has(id) {
		return false
	}
	enemy, ok := d.ecs.Enemies.Get(id)
	if !ok {
		return false
	}
	factor = math.Max(0, math.Min(1, factor))
	enemy.Speed = enemy.BaseSpeed * factor
	d.ecs.SlowEffects.Set(id, &component.SlowEffect{Remaining: duration, SlowFactor: factor})
	return true
}

// ApplyEffects hands a projectile's full payload to one enemy: base damage,
// then poison and slow when configured.
func (d *Damager) ApplyEffects(id types.EntityID, p *component.Projectile) {
	d.TakeDamage(id, p.Damage, interfaces.DamageNormal)
	if p.Poison != nil {
		d.ApplyPoison(id, p.Poison.DamagePerSecond, p.Poison.Duration)
	}
	if p.Slow != nil {
		d.ApplySlow(id, p.Slow.Factor, p.Slow.Duration)
	}
}

// enemiesWithin returns live enemies overlapping the circle, in slot order.
// Without a spatial index it falls back to a linear scan.
func enemiesWithin(ecs *entity.ECS, center vmath.Vec2, radius float64) []types.EntityID {
	var out []types.EntityID
	if ecs.Spatial != nil {
		for _, id := range ecs.Spatial.QueryRadius(center, radius) {
			if ecs.IsAlive(id) && ecs.Enemies.Has(id) {
				out = append(out, id)
			}
		}
		return out
	}
	ecs.Enemies.Each(func(id types.EntityID, e *component.Enemy) bool {
		if !ecs.IsAlive(id) {
			return true
		}
		if pos, ok := ecs.Positions.Get(id); ok && pos.Dist(center) <= radius+e.Radius {
			out = append(out, id)
		}
		return true
	})
	return out
}

// nearestEnemy picks the live enemy whose center is closest to center and no
// farther than radius. Ties keep the first candidate in slot order.
func nearestEnemy(ecs *entity.ECS, center vmath.Vec2, radius float64, skip func(types.EntityID) bool) (types.EntityID, bool) {
	var best types.EntityID
	bestDist := math.Inf(1)
	for _, id := range enemiesWithin(ecs, center, radius) {
		if skip != nil && skip(id) {
			continue
		}
		pos, ok := ecs.Positions.Get(id)
		if !ok {
			continue
		}
		dist := pos.Dist(center)
		if dist <= radius && dist < bestDist {
			best, bestDist = id, dist
		}
	}
	return best, bestDist <= radius
}
