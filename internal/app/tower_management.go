// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/vmath"
)

// ErrInvalidPlacement is returned when a tower cannot stand at the requested spot.
var ErrInvalidPlacement = errors.New("invalid tower placement")

// PlaceTower attempts to place a tower of the given type at pos.
func (g *Game) PlaceTower(towerID string, pos vmath.Vec2) (types.EntityID, error) {
	return g.placeTower(towerID, pos, true)
}

func (g *Game) placeTower(towerID string, pos vmath.Vec2, checkPath bool) (types.EntityID, error) {
	def, err := g.Library.Tower(towerID)
	if err != nil {
		return 0, err
	}
	if err := g.canPlaceTower(pos, checkPath); err != nil {
		return 0, err
	}
	id := g.createTowerEntity(def, pos)
	g.log.Debug("tower placed", "tower", id, "def", def.ID, "x", pos.X, "y", pos.Y)
	return id, nil
}

// RemoveTower removes a tower. Projectiles already in flight keep flying.
func (g *Game) RemoveTower(id types.EntityID) bool {
	if !g.ECS.Towers.Has(id) {
		return false
	}
	return g.ECS.Remove(id, entity.RemovedSpent)
}

// TowerAt returns the tower closest to pos within radius.
func (g *Game) TowerAt(pos vmath.Vec2, radius float64) (types.EntityID, bool) {
	var found types.EntityID
	best := radius
	ok := false
	g.ECS.Towers.Each(func(id types.EntityID, _ *component.Tower) bool {
		p, has := g.ECS.Positions.Get(id)
		if !has || !g.ECS.IsAlive(id) {
			return true
		}
		if d := p.Dist(pos); d <= best {
			found, best, ok = id, d, true
		}
		return true
	})
	return found, ok
}

func (g *Game) canPlaceTower(pos vmath.Vec2, checkPath bool) error {
	if !g.Settings.PlayArea.Contains(pos) {
		return fmt.Errorf("%w: (%.1f, %.1f) is outside the play area", ErrInvalidPlacement, pos.X, pos.Y)
	}
	if _, taken := g.TowerAt(pos, config.TowerClearance); taken {
		return fmt.Errorf("%w: (%.1f, %.1f) overlaps another tower", ErrInvalidPlacement, pos.X, pos.Y)
	}
	if checkPath && g.isOnPath(pos) {
		return fmt.Errorf("%w: (%.1f, %.1f) is on the enemy path", ErrInvalidPlacement, pos.X, pos.Y)
	}
	return nil
}

func (g *Game) isOnPath(pos vmath.Vec2) bool {
	for i := 1; i < g.Route.Len(); i++ {
		if vmath.DistToSegment(pos, g.Route.At(i-1), g.Route.At(i)) < config.PathClearance {
			return true
		}
	}
	return false
}

func (g *Game) createTowerEntity(def defs.TowerDefinition, pos vmath.Vec2) types.EntityID {
	id := g.ECS.NewEntity()
	p := pos
	g.ECS.Positions.Set(id, &p)
	tower := &component.Tower{}
	applyTowerDef(tower, def)
	g.ECS.Towers.Set(id, tower)
	return id
}

func applyTowerDef(tower *component.Tower, def defs.TowerDefinition) {
	tower.DefID = def.ID
	tower.ProjectileID = def.ProjectileID
	tower.Range = def.Range
	tower.FireRate = def.FireRate
	tower.FirePoint = vmath.Vec2{X: def.FirePoint.X, Y: def.FirePoint.Y}
	if interval := tower.Interval(); tower.FireCooldown > interval {
		tower.FireCooldown = interval
	}
}

func towerPos(t defs.TowerPlacement) vmath.Vec2 {
	return vmath.Vec2{X: t.X, Y: t.Y}
}
