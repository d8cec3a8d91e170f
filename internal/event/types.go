// internal/event/types.go
package event

import (
	"go-tower-sim/internal/interfaces"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/vmath"
)

const (
	WaveStarted       EventType = "WaveStarted"       // Волна началась
	WaveEnded         EventType = "WaveEnded"         // Волна закончилась
	EnemySpawned      EventType = "EnemySpawned"      // Враг появился
	EnemyDestroyed    EventType = "EnemyDestroyed"    // Враг уничтожен
	EnemyLeaked       EventType = "EnemyLeaked"       // Враг дошёл до конца пути
	DamageDealt       EventType = "DamageDealt"       // Урон нанесён
	ProjectileFired   EventType = "ProjectileFired"   // Башня выстрелила
	ProjectileHit     EventType = "ProjectileHit"     // Снаряд попал
	ProjectileExpired EventType = "ProjectileExpired" // Снаряд исчез без попадания
)

// WaveData accompanies WaveStarted and WaveEnded.
type WaveData struct {
	Spawner types.EntityID
	Number  int
}

// EnemyData accompanies EnemySpawned, EnemyDestroyed and EnemyLeaked.
type EnemyData struct {
	Enemy types.EntityID
	DefID string
	Pos   vmath.Vec2
}

// DamageData accompanies DamageDealt.
type DamageData struct {
	Target types.EntityID
	Amount int
	Kind   interfaces.DamageKind
	Health int // здоровье после урона
}

// ProjectileData accompanies ProjectileFired, ProjectileHit and ProjectileExpired.
type ProjectileData struct {
	Projectile types.EntityID
	Source     types.EntityID // башня; только для ProjectileFired
	Target     types.EntityID
	Pos        vmath.Vec2
	Affected   int // сколько врагов задето; только для ProjectileHit
}
