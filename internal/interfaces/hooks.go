package interfaces

//go:generate go tool mockgen -source=hooks.go -destination=mocks/mock_hooks.go -package=mocks

import (
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/vmath"
)

// DamageKind tells a damage display how to color a number.
type DamageKind int

const (
	DamageNormal DamageKind = iota
	DamagePoison
)

func (k DamageKind) String() string {
	switch k {
	case DamagePoison:
		return "poison"
	default:
		return "normal"
	}
}

// EffectTrigger plays a one-shot impact effect. Missing assets are silently ignored.
type EffectTrigger interface {
	PlayImpact(effectID string, pos vmath.Vec2, facing float64)
}

// DamageDisplay shows (or accumulates) a damage number over a target.
type DamageDisplay interface {
	ShowDamage(target types.EntityID, amount int, kind DamageKind)
}

// NopHooks implements both hooks and does nothing.
type NopHooks struct{}

func (NopHooks) PlayImpact(string, vmath.Vec2, float64)     {}
func (NopHooks) ShowDamage(types.EntityID, int, DamageKind) {}
