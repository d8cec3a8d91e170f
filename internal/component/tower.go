// component/tower.go
package component

import "go-tower-sim/pkg/vmath"

// Tower is a stationary shooter. It owns no target between ticks.
type Tower struct {
	DefID        string
	ProjectileID string     // ID снаряда из projectiles.json
	Range        float64    // Радиус обнаружения
	FireRate     float64    // Выстрелов в секунду
	FireCooldown float64    // Оставшееся время до следующего выстрела
	FirePoint    vmath.Vec2 // Смещение точки вылета снаряда
}

// Interval returns the time between shots.
func (t *Tower) Interval() float64 {
	if t.FireRate <= 0 {
		return 0
	}
	return 1.0 / t.FireRate
}
