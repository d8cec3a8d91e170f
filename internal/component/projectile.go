// internal/component/projectile.go
package component

import (
	"go-tower-sim/internal/types"

	"github.com/kamstrup/intmap"
)

// PoisonPayload is the damage-over-time a projectile hands to whatever it hits.
type PoisonPayload struct {
	DamagePerSecond float64
	Duration        float64
}

// SlowPayload is the speed multiplier a projectile hands to whatever it hits.
type SlowPayload struct {
	Factor   float64 // 0.5 = половина скорости
	Duration float64
}

// Projectile представляет летящий снаряд.
type Projectile struct {
	DefID           string
	TargetID        types.EntityID
	Speed           float64
	Damage          int
	Direction       float64 // Угол поворота в радианах
	TurnRate        float64
	ExplosionRadius float64 // 0 = без урона по области
	ImpactEffect    string
	Poison          *PoisonPayload
	Slow            *SlowPayload
	Pierce          *Pierce
}

// Pierce tracks the state of a projectile that keeps flying after a hit.
type Pierce struct {
	MaxPierce      int
	RetargetRadius float64
	ContactRadius  float64
	Count          int
	Lifetime       float64 // Сколько ещё лететь без цели
	Hits           *intmap.Map[types.EntityID, struct{}]
}

// NewPierce creates an empty pierce state.
func NewPierce(maxPierce int, retargetRadius, contactRadius, lifetime float64) *Pierce {
	return &Pierce{
		MaxPierce:      maxPierce,
		RetargetRadius: retargetRadius,
		ContactRadius:  contactRadius,
		Lifetime:       lifetime,
		Hits:           intmap.New[types.EntityID, struct{}](maxPierce * 2),
	}
}

// AlreadyHit reports whether id was affected by this projectile before.
func (p *Pierce) AlreadyHit(id types.EntityID) bool {
	_, ok := p.Hits.Get(id)
	return ok
}

// MarkHit records id in the hit-set.
func (p *Pierce) MarkHit(id types.EntityID) {
	p.Hits.Put(id, struct{}{})
}

// Exhausted reports whether the projectile has used all of its pierces.
func (p *Pierce) Exhausted() bool {
	return p.Count >= p.MaxPierce
}
