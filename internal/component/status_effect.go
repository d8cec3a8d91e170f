// internal/component/status_effect.go
package component

// SlowEffect indicates that an entity is slowed.
type SlowEffect struct {
	Remaining  float64 // How much time is left for the effect.
	SlowFactor float64 // Multiplier for speed (e.g., 0.5 for 50% slow).
}

// PoisonEffect deals a fixed amount of damage every Interval until Remaining runs out.
type PoisonEffect struct {
	DamagePerTick int
	Interval      float64
	Remaining     float64
	TickTimer     float64 // Время, накопленное с последнего тика
}
