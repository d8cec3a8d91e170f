// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      string  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Health  int     `json:"health" yaml:"health"`
	Speed   float64 `json:"speed" yaml:"speed"`
	Radius  float64 `json:"radius,omitempty" yaml:"radius,omitempty"` // радиус столкновений
	Visuals Visuals `json:"visuals" yaml:"visuals"`
}
