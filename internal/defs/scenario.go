// internal/defs/scenario.go
package defs

import (
	"fmt"

	"go-tower-sim/pkg/hexmap"
	"go-tower-sim/pkg/vmath"
	"go-tower-sim/pkg/waypoint"
)

// TowerPlacement puts a tower of a given type at a world position.
type TowerPlacement struct {
	TowerID string  `json:"tower" yaml:"tower"`
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
}

// GridDef describes a hex map from which the enemy route is generated with A*.
type GridDef struct {
	Radius      int          `json:"radius" yaml:"radius"`
	HexSize     float64      `json:"hex_size" yaml:"hex_size"`
	Entry       hexmap.Hex   `json:"entry" yaml:"entry"`
	Exit        hexmap.Hex   `json:"exit" yaml:"exit"`
	Checkpoints []hexmap.Hex `json:"checkpoints" yaml:"checkpoints"`
	Blocked     []hexmap.Hex `json:"blocked" yaml:"blocked"`
}

// Scenario is a playable map: a route, initial towers and the wave list.
// Exactly one of Waypoints and Grid describes the route.
type Scenario struct {
	Name      string           `json:"name" yaml:"name"`
	Waypoints []Offset         `json:"waypoints,omitempty" yaml:"waypoints,omitempty"`
	Grid      *GridDef         `json:"grid,omitempty" yaml:"grid,omitempty"`
	Towers    []TowerPlacement `json:"towers" yaml:"towers"`
	Waves     []WaveDefinition `json:"waves" yaml:"waves"`
}

// Route builds the enemy path described by the scenario.
func (s *Scenario) Route() (waypoint.Path, error) {
	if s.Grid != nil {
		hm := hexmap.NewHexMap(s.Grid.Radius)
		hm.Entry, hm.Exit = s.Grid.Entry, s.Grid.Exit
		hm.Checkpoints = s.Grid.Checkpoints
		hm.Block(s.Grid.Blocked...)
		hexes, err := hm.Route()
		if err != nil {
			return waypoint.Path{}, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		size := s.Grid.HexSize
		if size <= 0 {
			size = 2
		}
		return waypoint.FromHexes(hexes, size)
	}
	points := make([]vmath.Vec2, 0, len(s.Waypoints))
	for _, p := range s.Waypoints {
		points = append(points, vmath.Vec2{X: p.X, Y: p.Y})
	}
	path, err := waypoint.New(points...)
	if err != nil {
		return path, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return path, nil
}

// Validate checks the scenario against a library.
func (s *Scenario) Validate(lib *Library) error {
	if (len(s.Waypoints) > 0) == (s.Grid != nil) {
		return fmt.Errorf("%w: scenario %q needs exactly one of waypoints and grid", ErrInvalidDefinition, s.Name)
	}
	if len(s.Waves) == 0 {
		return fmt.Errorf("%w: scenario %q has no waves", ErrInvalidDefinition, s.Name)
	}
	for i, w := range s.Waves {
		if w.Count < 0 || w.SpawnInterval <= 0 {
			return fmt.Errorf("%w: scenario %q wave %d needs count >= 0 and positive spawn_interval", ErrInvalidDefinition, s.Name, i+1)
		}
		if len(w.Enemies) == 0 {
			return fmt.Errorf("%w: scenario %q wave %d has no enemies", ErrInvalidDefinition, s.Name, i+1)
		}
		for _, e := range w.Enemies {
			if _, err := lib.Enemy(e.EnemyID); err != nil {
				return fmt.Errorf("scenario %q wave %d: %w", s.Name, i+1, err)
			}
		}
	}
	for _, t := range s.Towers {
		if _, err := lib.Tower(t.TowerID); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	return nil
}

// DefaultScenario is a zig-zag lane guarded by one tower of each kind.
func DefaultScenario() *Scenario {
	return &Scenario{
		Name: "zigzag",
		Waypoints: []Offset{
			{X: -35, Y: -20}, {X: -10, Y: -20}, {X: -10, Y: 0},
			{X: 15, Y: 0}, {X: 15, Y: 20}, {X: 35, Y: 20},
		},
		Towers: []TowerPlacement{
			{TowerID: "TOWER_BASIC", X: -18, Y: -12},
			{TowerID: "TOWER_SLOW", X: -3, Y: -8},
			{TowerID: "TOWER_POISON", X: 5, Y: 6},
			{TowerID: "TOWER_SPLASH", X: 22, Y: 10},
			{TowerID: "TOWER_PIERCE", X: 8, Y: 12},
		},
		Waves: []WaveDefinition{
			{Count: 6, SpawnInterval: 2, Enemies: []SpawnEntry{{EnemyID: "ENEMY_BASIC", Weight: 1}}},
			{Count: 10, SpawnInterval: 1.2, Enemies: []SpawnEntry{{EnemyID: "ENEMY_BASIC", Weight: 3}, {EnemyID: "ENEMY_FAST", Weight: 1}}},
			{Count: 12, SpawnInterval: 1, Enemies: []SpawnEntry{{EnemyID: "ENEMY_BASIC", Weight: 2}, {EnemyID: "ENEMY_TOUGH", Weight: 1}, {EnemyID: "ENEMY_FAST", Weight: 1}}},
		},
	}
}
