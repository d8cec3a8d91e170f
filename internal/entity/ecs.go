// internal/entity/ecs.go
package entity

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/interfaces"
	"go-tower-sim/internal/types"

	"github.com/kamstrup/intmap"
)

// RemovalReason records why an entity left the world.
type RemovalReason int

const (
	RemovedKilled  RemovalReason = iota + 1 // здоровье <= 0
	RemovedLeaked                           // враг дошёл до конца пути
	RemovedSpent                            // снаряд попал или исчерпал пробития
	RemovedExpired                          // снаряд потерял цель или вылетел за поле
)

func (r RemovalReason) String() string {
	switch r {
	case RemovedKilled:
		return "killed"
	case RemovedLeaked:
		return "leaked"
	case RemovedSpent:
		return "spent"
	case RemovedExpired:
		return "expired"
	default:
		return "unknown"
	}
}

type ECS struct {
	GameTime      float64
	entities      entityStore
	pending       []types.EntityID
	pendingSet    *intmap.Map[types.EntityID, RemovalReason]
	Spatial       interfaces.SpatialIndex
	Positions     *Store[component.Position]
	Paths         *Store[component.Path]
	Healths       *Store[component.Health]
	Enemies       *Store[component.Enemy]
	Towers        *Store[component.Tower]
	Projectiles   *Store[component.Projectile]
	SlowEffects   *Store[component.SlowEffect]
	PoisonEffects *Store[component.PoisonEffect]
	Spawners      *Store[component.Spawner]
}

// NewECS creates an empty world. spatial may be nil, in which case area
// queries find nothing.
func NewECS(spatial interfaces.SpatialIndex) *ECS {
	return &ECS{
		pendingSet:    intmap.New[types.EntityID, RemovalReason](64),
		Spatial:       spatial,
		Positions:     NewStore[component.Position](),
		Paths:         NewStore[component.Path](),
		Healths:       NewStore[component.Health](),
		Enemies:       NewStore[component.Enemy](),
		Towers:        NewStore[component.Tower](),
		Projectiles:   NewStore[component.Projectile](),
		SlowEffects:   NewStore[component.SlowEffect](),
		PoisonEffects: NewStore[component.PoisonEffect](),
		Spawners:      NewStore[component.Spawner](),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	return ecs.entities.create()
}

// IsAlive reports whether id is a current handle that is not queued for removal.
func (ecs *ECS) IsAlive(id types.EntityID) bool {
	if !ecs.entities.isAlive(id) {
		return false
	}
	_, dying := ecs.pendingSet.Get(id)
	return !dying
}

// Remove queues id for removal at the end of the tick. The first reason wins.
// Returns false if id was already dead or queued.
func (ecs *ECS) Remove(id types.EntityID, reason RemovalReason) bool {
	if !ecs.IsAlive(id) {
		return false
	}
	ecs.pendingSet.Put(id, reason)
	ecs.pending = append(ecs.pending, id)
	return true
}

// PendingReason returns why id is queued for removal.
func (ecs *ECS) PendingReason(id types.EntityID) (RemovalReason, bool) {
	return ecs.pendingSet.Get(id)
}

// Flush frees every queued slot. Handles to them stop resolving afterwards.
func (ecs *ECS) Flush() int {
	n := len(ecs.pending)
	for _, id := range ecs.pending {
		if _, tracked := ecs.Enemies.Get(id); tracked && ecs.Spatial != nil {
			ecs.Spatial.Untrack(id)
		}
		ecs.Positions.Delete(id)
		ecs.Paths.Delete(id)
		ecs.Healths.Delete(id)
		ecs.Enemies.Delete(id)
		ecs.Towers.Delete(id)
		ecs.Projectiles.Delete(id)
		ecs.SlowEffects.Delete(id)
		ecs.PoisonEffects.Delete(id)
		ecs.Spawners.Delete(id)
		ecs.entities.destroy(id)
	}
	ecs.pending = ecs.pending[:0]
	ecs.pendingSet.Clear()
	return n
}

// LiveCount returns the number of allocated, not yet flushed entities.
func (ecs *ECS) LiveCount() int {
	return ecs.entities.live
}
