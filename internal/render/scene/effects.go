// internal/render/scene/effects.go
package scene

import (
	"go-tower-sim/internal/interfaces"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/vmath"
)

const (
	ImpactDuration   = 0.35 // секунды
	HitFlashDuration = 0.15
)

var _ interfaces.EffectTrigger = (*Effects)(nil)
var _ interfaces.DamageDisplay = (*Effects)(nil)

// Impact is a short-lived ring drawn where a projectile landed.
type Impact struct {
	EffectID string
	Pos      vmath.Vec2
	Facing   float64
	Age      float64
}

// Progress returns how far the impact is through its animation, 0..1.
func (i Impact) Progress() float64 {
	return min(1, i.Age/ImpactDuration)
}

// HitFlash marks a recently damaged enemy.
type HitFlash struct {
	Remaining float64
	Kind      interfaces.DamageKind
}

// Effects collects hook calls from the simulation and ages them for drawing.
// It implements both EffectTrigger and DamageDisplay.
type Effects struct {
	impacts []Impact
	flashes map[types.EntityID]HitFlash
}

func NewEffects() *Effects {
	return &Effects{flashes: make(map[types.EntityID]HitFlash)}
}

func (e *Effects) PlayImpact(effectID string, pos vmath.Vec2, facing float64) {
	e.impacts = append(e.impacts, Impact{EffectID: effectID, Pos: pos, Facing: facing})
}

func (e *Effects) ShowDamage(target types.EntityID, amount int, kind interfaces.DamageKind) {
	if amount <= 0 {
		return
	}
	e.flashes[target] = HitFlash{Remaining: HitFlashDuration, Kind: kind}
}

// Update ages every effect and drops the finished ones.
func (e *Effects) Update(deltaTime float64) {
	kept := e.impacts[:0]
	for _, imp := range e.impacts {
		imp.Age += deltaTime
		if imp.Age < ImpactDuration {
			kept = append(kept, imp)
		}
	}
	e.impacts = kept

	for id, f := range e.flashes {
		f.Remaining -= deltaTime
		if f.Remaining <= 0 {
			delete(e.flashes, id)
			continue
		}
		e.flashes[id] = f
	}
}

// Impacts returns the live impacts. The slice is reused by Update.
func (e *Effects) Impacts() []Impact {
	return e.impacts
}

// Flash returns the hit flash of an enemy, if any.
func (e *Effects) Flash(id types.EntityID) (HitFlash, bool) {
	f, ok := e.flashes[id]
	return f, ok
}

// Reset drops every pending effect.
func (e *Effects) Reset() {
	e.impacts = e.impacts[:0]
	clear(e.flashes)
}
