// internal/system/projectile.go
package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/interfaces"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/vmath"
)

// SpawnProjectile creates a projectile entity from its definition.
// lifetime bounds straight flight of piercing projectiles; 0 uses the default.
func SpawnProjectile(ecs *entity.ECS, def defs.ProjectileDefinition, pos vmath.Vec2, facing, lifetime float64) types.EntityID {
	if lifetime <= 0 {
		lifetime = config.ProjectileLifetime
	}
	proj := &component.Projectile{
		DefID:           def.ID,
		Speed:           def.Speed,
		Damage:          def.Damage,
		Direction:       facing,
		TurnRate:        def.TurnRate,
		ExplosionRadius: def.ExplosionRadius,
		ImpactEffect:    def.ImpactEffect,
	}
	if proj.TurnRate <= 0 {
		proj.TurnRate = config.ProjectileTurnRate
	}
	if def.Poison != nil {
		proj.Poison = &component.PoisonPayload{DamagePerSecond: def.Poison.DamagePerSecond, Duration: def.Poison.Duration}
	}
	if def.Slow != nil {
		proj.Slow = &component.SlowPayload{Factor: def.Slow.Amount, Duration: def.Slow.Duration}
	}
	if def.Pierce != nil {
		contact := def.Pierce.ContactRadius
		if contact <= 0 {
			contact = config.DefaultContactRadius
		}
		proj.Pierce = component.NewPierce(def.Pierce.MaxPierce, def.Pierce.RetargetRadius, contact, lifetime)
	}

	id := ecs.NewEntity()
	p := pos
	ecs.Positions.Set(id, &p)
	ecs.Projectiles.Set(id, proj)
	return id
}

// Seek binds a projectile to its target.
func Seek(ecs *entity.ECS, projectileID, target types.EntityID) {
	if proj, ok := ecs.Projectiles.Get(projectileID); ok {
		proj.TargetID = target
	}
}

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs     *entity.ECS
	events  *event.Dispatcher
	damage  *Damager
	effects interfaces.EffectTrigger
	bounds  config.Bounds
}

func NewProjectileSystem(ecs *entity.ECS, events *event.Dispatcher, damage *Damager, effects interfaces.EffectTrigger, bounds config.Bounds) *ProjectileSystem {
	if effects == nil {
		effects = interfaces.NopHooks{}
	}
	return &ProjectileSystem{ecs: ecs, events: events, damage: damage, effects: effects, bounds: bounds}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	s.ecs.Projectiles.Each(func(id types.EntityID, proj *component.Projectile) bool {
		if !s.ecs.IsAlive(id) {
			return true
		}
		pos, ok := s.ecs.Positions.Get(id)
		if !ok {
			s.ecs.Remove(id, entity.RemovedExpired)
			return true
		}
		if proj.Pierce != nil {
			s.updatePiercing(id, proj, pos, deltaTime)
		} else {
			s.updateSeeking(id, proj, pos, deltaTime)
		}
		return true
	})
}

// updateSeeking: летим к цели, пропавшая цель уничтожает снаряд без урона
func (s *ProjectileSystem) updateSeeking(id types.EntityID, proj *component.Projectile, pos *vmath.Vec2, deltaTime float64) {
	targetPos, ok := s.targetPosition(proj.TargetID)
	if !ok {
		s.expire(id, proj, *pos)
		return
	}
	if s.steer(proj, pos, targetPos, deltaTime) {
		s.hit(id, proj, *pos, proj.TargetID)
	}
}

// steer turns toward target and moves one step along the line to it.
// Returns true when the target is reached this tick.
func (s *ProjectileSystem) steer(proj *component.Projectile, pos *vmath.Vec2, target vmath.Vec2, deltaTime float64) bool {
	to := target.Sub(*pos)
	dist := to.Len()
	step := proj.Speed * deltaTime
	if dist <= step {
		return true
	}
	proj.Direction = vmath.LerpAngle(proj.Direction, to.Angle(), deltaTime*proj.TurnRate)
	*pos = pos.Add(to.Scale(step / dist))
	return false
}

func (s *ProjectileSystem) targetPosition(target types.EntityID) (vmath.Vec2, bool) {
	if !target.Valid() || !s.ecs.IsAlive(target) {
		return vmath.Vec2{}, false
	}
	pos, ok := s.ecs.Positions.Get(target)
	if !ok {
		return vmath.Vec2{}, false
	}
	return *pos, true
}

func (s *ProjectileSystem) hit(id types.EntityID, proj *component.Projectile, pos vmath.Vec2, target types.EntityID) {
	affected := s.deliver(proj, pos, target, nil)
	s.ecs.Remove(id, entity.RemovedSpent)
	s.events.Dispatch(event.Event{Type: event.ProjectileHit, Data: event.ProjectileData{
		Projectile: id, Target: target, Pos: pos, Affected: affected,
	}})
}

// deliver plays the impact, if any, and applies the payload either to everyone in the
// splash radius or to the contacted enemy alone. touched sees every enemy
// that received the payload. Returns how many enemies were affected.
func (s *ProjectileSystem) deliver(proj *component.Projectile, pos vmath.Vec2, contacted types.EntityID, touched func(types.EntityID)) int {
	if proj.ImpactEffect != "" {
		s.effects.PlayImpact(proj.ImpactEffect, pos, proj.Direction)
	}

	if proj.ExplosionRadius > 0 {
		affected := 0
		for _, e := range enemiesWithin(s.ecs, pos, proj.ExplosionRadius) {
			s.damage.ApplyEffects(e, proj)
			if touched != nil {
				touched(e)
			}
			affected++
		}
		return affected
	}
	if !s.ecs.IsAlive(contacted) {
		return 0
	}
	s.damage.ApplyEffects(contacted, proj)
	if touched != nil {
		touched(contacted)
	}
	return 1
}

// updatePiercing: снаряд летит к цели, пробивает всех, кого касается, и
// после каждого попадания ищет новую цель. Без цели летит прямо.
func (s *ProjectileSystem) updatePiercing(id types.EntityID, proj *component.Projectile, pos *vmath.Vec2, deltaTime float64) {
	pierce := proj.Pierce

	targetPos, bound := s.targetPosition(proj.TargetID)
	if bound && pierce.AlreadyHit(proj.TargetID) {
		bound = false
	}
	if bound {
		if s.steer(proj, pos, targetPos, deltaTime) {
			if s.contact(id, proj, *pos, proj.TargetID) {
				return
			}
		}
	} else {
		proj.TargetID = 0
		pierce.Lifetime -= deltaTime
		*pos = pos.Add(vmath.FromAngle(proj.Direction).Scale(proj.Speed * deltaTime))
		if pierce.Lifetime <= 0 || !s.bounds.Contains(*pos) {
			s.expire(id, proj, *pos)
			return
		}
	}

	// Всё, что снаряд задевает по пути, тоже получает урон
	for _, e := range enemiesWithin(s.ecs, *pos, pierce.ContactRadius) {
		if pierce.AlreadyHit(e) {
			continue
		}
		if s.contact(id, proj, *pos, e) {
			return
		}
	}
}

// contact handles one piercing hit. Returns true when the projectile is spent.
func (s *ProjectileSystem) contact(id types.EntityID, proj *component.Projectile, pos vmath.Vec2, enemy types.EntityID) bool {
	pierce := proj.Pierce
	affected := s.deliver(proj, pos, enemy, pierce.MarkHit)
	pierce.MarkHit(enemy)
	pierce.Count++
	s.events.Dispatch(event.Event{Type: event.ProjectileHit, Data: event.ProjectileData{
		Projectile: id, Target: enemy, Pos: pos, Affected: affected,
	}})

	if pierce.Exhausted() {
		s.ecs.Remove(id, entity.RemovedSpent)
		return true
	}
	next, ok := nearestEnemy(s.ecs, pos, pierce.RetargetRadius, pierce.AlreadyHit)
	if ok {
		Seek(s.ecs, id, next)
	} else {
		proj.TargetID = 0
	}
	return false
}

func (s *ProjectileSystem) expire(id types.EntityID, proj *component.Projectile, pos vmath.Vec2) {
	if !s.ecs.Remove(id, entity.RemovedExpired) {
		return
	}
	s.events.Dispatch(event.Event{Type: event.ProjectileExpired, Data: event.ProjectileData{
		Projectile: id, Target: proj.TargetID, Pos: pos,
	}})
}
