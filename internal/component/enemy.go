// internal/component/enemy.go
package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID     string  // ID из enemies.json
	BaseSpeed float64 // Скорость без эффектов, не меняется
	Speed     float64 // Текущая скорость с учётом замедления
	Radius    float64 // Радиус столкновений
}

// EffectiveSpeed is the speed the enemy actually walks at this tick.
func (e *Enemy) EffectiveSpeed() float64 {
	return e.Speed
}

// Health — компонент здоровья
type Health struct {
	Value   int
	Initial int
}

// Dead reports whether accumulated damage has reached the starting health.
func (h *Health) Dead() bool {
	return h.Value <= 0
}
