// internal/defs/towers.go
package defs

// Offset is a 2D displacement in world units.
type Offset struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID           string  `json:"id" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	Range        float64 `json:"range" yaml:"range"`
	FireRate     float64 `json:"fire_rate" yaml:"fire_rate"` // Shots per second
	ProjectileID string  `json:"projectile" yaml:"projectile"`
	FirePoint    Offset  `json:"fire_point" yaml:"fire_point"`
	Visuals      Visuals `json:"visuals" yaml:"visuals"`
}
