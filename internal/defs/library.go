// internal/defs/library.go
package defs

import (
	"errors"
	"fmt"
	"math"

	"go-tower-sim/internal/config"
)

var (
	ErrUnknownTower      = errors.New("unknown tower definition")
	ErrUnknownEnemy      = errors.New("unknown enemy definition")
	ErrUnknownProjectile = errors.New("unknown projectile definition")
	ErrInvalidDefinition = errors.New("invalid definition")
)

// Library holds every definition a game needs, keyed by ID.
type Library struct {
	Towers      map[string]TowerDefinition
	Enemies     map[string]EnemyDefinition
	Projectiles map[string]ProjectileDefinition
}

// NewLibrary builds a library from definition lists. Later duplicates win.
func NewLibrary(towers []TowerDefinition, enemies []EnemyDefinition, projectiles []ProjectileDefinition) *Library {
	lib := &Library{
		Towers:      make(map[string]TowerDefinition, len(towers)),
		Enemies:     make(map[string]EnemyDefinition, len(enemies)),
		Projectiles: make(map[string]ProjectileDefinition, len(projectiles)),
	}
	for _, def := range towers {
		lib.Towers[def.ID] = def
	}
	for _, def := range enemies {
		lib.Enemies[def.ID] = def
	}
	for _, def := range projectiles {
		lib.Projectiles[def.ID] = def
	}
	return lib
}

func (l *Library) Tower(id string) (TowerDefinition, error) {
	def, ok := l.Towers[id]
	if !ok {
		return def, fmt.Errorf("%w: %q", ErrUnknownTower, id)
	}
	return def, nil
}

func (l *Library) Enemy(id string) (EnemyDefinition, error) {
	def, ok := l.Enemies[id]
	if !ok {
		return def, fmt.Errorf("%w: %q", ErrUnknownEnemy, id)
	}
	return def, nil
}

func (l *Library) Projectile(id string) (ProjectileDefinition, error) {
	def, ok := l.Projectiles[id]
	if !ok {
		return def, fmt.Errorf("%w: %q", ErrUnknownProjectile, id)
	}
	return def, nil
}

// Validate checks value ranges and cross references between definitions.
func (l *Library) Validate() error {
	var errs []error
	for id, e := range l.Enemies {
		if e.Health <= 0 {
			errs = append(errs, fmt.Errorf("%w: enemy %q health must be positive", ErrInvalidDefinition, id))
		}
		if e.Speed < 0 {
			errs = append(errs, fmt.Errorf("%w: enemy %q speed is negative", ErrInvalidDefinition, id))
		}
	}
	for id, p := range l.Projectiles {
		errs = append(errs, validateProjectile(id, p)...)
	}
	for id, t := range l.Towers {
		if t.Range <= 0 || t.FireRate <= 0 {
			errs = append(errs, fmt.Errorf("%w: tower %q needs positive range and fire_rate", ErrInvalidDefinition, id))
		}
		if _, ok := l.Projectiles[t.ProjectileID]; !ok {
			errs = append(errs, fmt.Errorf("tower %q: %w: %q", id, ErrUnknownProjectile, t.ProjectileID))
		}
	}
	return errors.Join(errs...)
}

func validateProjectile(id string, p ProjectileDefinition) []error {
	var errs []error
	if p.Speed <= 0 {
		errs = append(errs, fmt.Errorf("%w: projectile %q speed must be positive", ErrInvalidDefinition, id))
	}
	if p.Damage < 0 || p.ExplosionRadius < 0 {
		errs = append(errs, fmt.Errorf("%w: projectile %q has negative damage or radius", ErrInvalidDefinition, id))
	}
	if p.Poison != nil {
		// урон за тик округляется, слабый яд не нанёс бы ничего
		if math.Round(p.Poison.DamagePerSecond*config.PoisonTickInterval) < 1 {
			errs = append(errs, fmt.Errorf("%w: projectile %q poison deals less than 1 damage per tick", ErrInvalidDefinition, id))
		}
		if p.Poison.Duration <= 0 {
			errs = append(errs, fmt.Errorf("%w: projectile %q poison duration must be positive", ErrInvalidDefinition, id))
		}
	}
	if p.Slow != nil && (p.Slow.Amount < 0 || p.Slow.Amount > 1) {
		errs = append(errs, fmt.Errorf("%w: projectile %q slow amount must be in [0,1]", ErrInvalidDefinition, id))
	}
	if p.Slow != nil && p.Slow.Duration <= 0 {
		errs = append(errs, fmt.Errorf("%w: projectile %q slow duration must be positive", ErrInvalidDefinition, id))
	}
	if p.Pierce != nil && p.Pierce.MaxPierce <= 0 {
		errs = append(errs, fmt.Errorf("%w: projectile %q max_pierce must be positive", ErrInvalidDefinition, id))
	}
	return errs
}

// Default returns the built-in definitions: 20 u/s bullets for 1 damage,
// 2 dps poison for 3 s, 50% slow for 2 s, basic towers with range 10
// firing once per second.
func Default() *Library {
	return NewLibrary(
		[]TowerDefinition{
			{ID: "TOWER_BASIC", Name: "Basic", Range: 10, FireRate: 1, ProjectileID: "BULLET", Visuals: Visuals{Color: "#ff3232"}},
			{ID: "TOWER_POISON", Name: "Poison", Range: 10, FireRate: 1, ProjectileID: "BULLET_POISON", Visuals: Visuals{Color: "#32ff32"}},
			{ID: "TOWER_SLOW", Name: "Frost", Range: 8, FireRate: 0.8, ProjectileID: "BULLET_SLOW", Visuals: Visuals{Color: "#3264ff"}},
			{ID: "TOWER_SPLASH", Name: "Mortar", Range: 12, FireRate: 0.5, ProjectileID: "BULLET_SPLASH", Visuals: Visuals{Color: "#ffa500"}},
			{ID: "TOWER_PIERCE", Name: "Lance", Range: 11, FireRate: 0.7, ProjectileID: "BULLET_PIERCE", Visuals: Visuals{Color: "#b432e6"}},
		},
		[]EnemyDefinition{
			{ID: "ENEMY_BASIC", Name: "Runner", Health: 3, Speed: 5, Radius: 0.5, Visuals: Visuals{Color: "#c8c8c8"}},
			{ID: "ENEMY_TOUGH", Name: "Brute", Health: 10, Speed: 3.5, Radius: 0.7, Visuals: Visuals{Color: "#8b5a2b"}},
			{ID: "ENEMY_FAST", Name: "Dart", Health: 2, Speed: 8, Radius: 0.4, Visuals: Visuals{Color: "#ffff64"}},
		},
		[]ProjectileDefinition{
			{ID: "BULLET", Speed: 20, Damage: 1, Visuals: Visuals{Color: "#ffd700"}},
			{ID: "BULLET_POISON", Speed: 20, Damage: 1, Poison: &PoisonDef{DamagePerSecond: 2, Duration: 3}, Visuals: Visuals{Color: "#78dc3c"}},
			{ID: "BULLET_SLOW", Speed: 20, Damage: 1, Slow: &SlowDef{Amount: 0.5, Duration: 2}, Visuals: Visuals{Color: "#50a0ff"}},
			{ID: "BULLET_SPLASH", Speed: 15, Damage: 2, ExplosionRadius: 2.5, ImpactEffect: "explosion", Visuals: Visuals{Color: "#ff8c00"}},
			{ID: "BULLET_PIERCE", Speed: 25, Damage: 1, Pierce: &PierceDef{MaxPierce: 3, RetargetRadius: 5}, Visuals: Visuals{Color: "#e6c8ff"}},
		},
	)
}
