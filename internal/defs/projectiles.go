// internal/defs/projectiles.go
package defs

// PoisonDef describes damage over time handed to a hit enemy.
type PoisonDef struct {
	DamagePerSecond float64 `json:"damage_per_second" yaml:"damage_per_second"`
	Duration        float64 `json:"duration" yaml:"duration"`
}

// SlowDef describes a speed multiplier handed to a hit enemy.
type SlowDef struct {
	Amount   float64 `json:"amount" yaml:"amount"` // 0.5 = 50% скорости
	Duration float64 `json:"duration" yaml:"duration"`
}

// PierceDef makes a projectile keep flying after a hit.
type PierceDef struct {
	MaxPierce      int     `json:"max_pierce" yaml:"max_pierce"`
	RetargetRadius float64 `json:"retarget_radius" yaml:"retarget_radius"`
	ContactRadius  float64 `json:"contact_radius,omitempty" yaml:"contact_radius,omitempty"`
}

// ProjectileDefinition holds the static data of a bullet type.
type ProjectileDefinition struct {
	ID              string     `json:"id" yaml:"id"`
	Speed           float64    `json:"speed" yaml:"speed"`
	Damage          int        `json:"damage" yaml:"damage"`
	ExplosionRadius float64    `json:"explosion_radius,omitempty" yaml:"explosion_radius,omitempty"` // 0 = без сплеша
	TurnRate        float64    `json:"turn_rate,omitempty" yaml:"turn_rate,omitempty"`
	ImpactEffect    string     `json:"impact_effect,omitempty" yaml:"impact_effect,omitempty"`
	Poison          *PoisonDef `json:"poison,omitempty" yaml:"poison,omitempty"`
	Slow            *SlowDef   `json:"slow,omitempty" yaml:"slow,omitempty"`
	Pierce          *PierceDef `json:"pierce,omitempty" yaml:"pierce,omitempty"`
	Visuals         Visuals    `json:"visuals" yaml:"visuals"`
}
