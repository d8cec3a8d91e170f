package system_test

import (
	"testing"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/system"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/vmath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toAny(ids []types.EntityID) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}

func placeTower(w *world, pos vmath.Vec2, rng, rate float64) types.EntityID {
	id := w.ecs.NewEntity()
	p := pos
	w.ecs.Positions.Set(id, &p)
	w.ecs.Towers.Set(id, &component.Tower{DefID: "T", ProjectileID: "BULLET", Range: rng, FireRate: rate})
	return id
}

func TestTowerTargetSelection(t *testing.T) {
	cases := []struct {
		name    string
		enemies []vmath.Vec2
		want    int // индекс ожидаемой цели, -1 = без выстрела
	}{
		{"nearest_wins", []vmath.Vec2{{X: 6}, {X: 4, Y: 3}, {X: 11}}, 1},
		{"out_of_range", []vmath.Vec2{{X: 10.5}, {Y: -12}}, -1},
		{"range_is_inclusive", []vmath.Vec2{{X: 10}}, 0},
		{"tie_goes_to_first", []vmath.Vec2{{X: 5}, {X: -5}}, 0},
		{"no_enemies", nil, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newWorld(nil)
			placeTower(w, vmath.Vec2{}, 10, 1)
			ids := make([]types.EntityID, len(c.enemies))
			for i, pos := range c.enemies {
				ids[i] = w.enemy(pos, 3, 0)
			}

			combat := system.NewCombatSystem(w.ecs, w.events, defs.Default())
			combat.Update(1.0 / 60)

			if c.want < 0 {
				assert.Equal(t, 0, w.count(event.ProjectileFired))
				assert.Equal(t, 0, w.ecs.Projectiles.Len())
				return
			}
			require.Equal(t, 1, w.count(event.ProjectileFired))
			ev, _ := w.last(event.ProjectileFired)
			data := ev.Data.(event.ProjectileData)
			assert.Equal(t, ids[c.want], data.Target)

			proj, ok := w.ecs.Projectiles.Get(data.Projectile)
			require.True(t, ok)
			assert.Equal(t, ids[c.want], proj.TargetID)
			assert.Equal(t, "BULLET", proj.DefID)
		})
	}
}

func TestTowerFiresOnCadence(t *testing.T) {
	w := newWorld(nil)
	placeTower(w, vmath.Vec2{}, 10, 1)
	w.enemy(vmath.Vec2{X: 3}, 100, 0)

	combat := system.NewCombatSystem(w.ecs, w.events, defs.Default())
	shotsAt := []int{}
	for tick := 1; tick <= 9; tick++ {
		before := w.count(event.ProjectileFired)
		combat.Update(0.25)
		if w.count(event.ProjectileFired) > before {
			shotsAt = append(shotsAt, tick)
		}
	}
	assert.Equal(t, []int{1, 5, 9}, shotsAt)
}

func TestTowerCadenceAtFrameStep(t *testing.T) {
	cases := []struct {
		rate  float64
		shots int
	}{
		{1, 60},
		{2, 120},
		{3, 180},
		{0.7, 42}, // интервал 85.7 тика, стреляет каждые 86
	}
	for _, c := range cases {
		w := newWorld(nil)
		placeTower(w, vmath.Vec2{}, 10, c.rate)
		w.enemy(vmath.Vec2{X: 3}, 1_000_000, 0)

		combat := system.NewCombatSystem(w.ecs, w.events, defs.Default())
		for tick := 0; tick < 60*60; tick++ {
			combat.Update(1.0 / 60)
		}
		assert.Equal(t, c.shots, w.count(event.ProjectileFired), "rate %v over 60s", c.rate)
	}
}

func TestTowerIdleCountdown(t *testing.T) {
	for _, hold := range []bool{false, true} {
		name := "keeps_ticking"
		if hold {
			name = "frozen"
		}
		t.Run(name, func(t *testing.T) {
			w := newWorld(nil)
			tower := placeTower(w, vmath.Vec2{}, 10, 1)
			enemy := w.enemy(vmath.Vec2{X: 3}, 100, 0)

			combat := system.NewCombatSystem(w.ecs, w.events, defs.Default())
			combat.HoldCooldownWhileIdle = hold
			combat.Update(0.25)
			require.Equal(t, 1, w.count(event.ProjectileFired))

			w.moveTo(enemy, vmath.Vec2{X: 30})
			for i := 0; i < 4; i++ {
				combat.Update(0.25)
			}
			state, _ := w.ecs.Towers.Get(tower)
			if hold {
				assert.InDelta(t, 1.0, state.FireCooldown, 1e-9)
			} else {
				assert.Zero(t, state.FireCooldown, "countdown floors at zero")
			}

			w.moveTo(enemy, vmath.Vec2{X: 3})
			combat.Update(0.25)
			if hold {
				assert.Equal(t, 1, w.count(event.ProjectileFired))
			} else {
				assert.Equal(t, 2, w.count(event.ProjectileFired), "returning target is shot at once")
			}
		})
	}
}

func TestTowerSkipsDeadEnemies(t *testing.T) {
	w := newWorld(nil)
	placeTower(w, vmath.Vec2{}, 10, 1)
	near := w.enemy(vmath.Vec2{X: 2}, 1, 0)
	far := w.enemy(vmath.Vec2{X: 8}, 1, 0)
	w.damage.TakeDamage(near, 1, 0)

	combat := system.NewCombatSystem(w.ecs, w.events, defs.Default())
	combat.Update(0.1)
	ev, ok := w.last(event.ProjectileFired)
	require.True(t, ok)
	assert.Equal(t, far, ev.Data.(event.ProjectileData).Target)
}

func TestTowerWithUnknownProjectileDoesNotFire(t *testing.T) {
	w := newWorld(nil)
	id := placeTower(w, vmath.Vec2{}, 10, 1)
	tower, _ := w.ecs.Towers.Get(id)
	tower.ProjectileID = "NOPE"
	w.enemy(vmath.Vec2{X: 2}, 1, 0)

	combat := system.NewCombatSystem(w.ecs, w.events, defs.Default())
	combat.Update(0.1)
	assert.Equal(t, 0, w.ecs.Projectiles.Len())
}
