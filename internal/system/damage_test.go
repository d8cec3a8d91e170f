package system_test

import (
	"testing"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/interfaces"
	"go-tower-sim/internal/interfaces/mocks"
	"go-tower-sim/internal/system"
	"go-tower-sim/pkg/vmath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

func TestHealthAccounting(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		initial := rapid.IntRange(1, 50).Draw(rt, "initial")
		hits := rapid.SliceOf(rapid.IntRange(-3, 10)).Draw(rt, "hits")

		w := newWorld(nil)
		id := w.enemy(vmath.Vec2{}, initial, 1)
		applied := 0
		for _, amount := range hits {
			wasAlive := w.ecs.IsAlive(id)
			killed := w.damage.TakeDamage(id, amount, interfaces.DamageNormal)
			if wasAlive && amount > 0 {
				applied += amount
			}
			wantKilled := wasAlive && amount > 0 && applied >= initial
			if killed != wantKilled {
				rt.Fatalf("killed=%v want %v after %d damage", killed, wantKilled, applied)
			}
		}
		if got := w.health(id); got != initial-applied {
			rt.Fatalf("health %d, want %d", got, initial-applied)
		}
		if w.ecs.IsAlive(id) != (applied < initial) {
			rt.Fatalf("alive=%v with %d/%d damage", w.ecs.IsAlive(id), applied, initial)
		}
	})
}

func TestKillQueuesRemovalOnce(t *testing.T) {
	w := newWorld(nil)
	id := w.enemy(vmath.Vec2{}, 2, 1)

	assert.False(t, w.damage.TakeDamage(id, 1, interfaces.DamageNormal))
	assert.True(t, w.damage.TakeDamage(id, 5, interfaces.DamageNormal))
	assert.False(t, w.damage.TakeDamage(id, 5, interfaces.DamageNormal), "dead enemies take no damage")

	reason, ok := w.ecs.PendingReason(id)
	require.True(t, ok)
	assert.Equal(t, entity.RemovedKilled, reason)
	assert.Equal(t, 1, w.count(event.EnemyDestroyed))
	assert.Equal(t, 2, w.count(event.DamageDealt))

	w.ecs.Flush()
	assert.False(t, w.ecs.Enemies.Has(id))
	assert.Equal(t, 0, w.ecs.Spatial.(interface{ Len() int }).Len())
}

func TestSlowSpeedFollowsFactor(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := rapid.Float64Range(0.1, 20).Draw(rt, "base")
		factor := rapid.Float64Range(-1, 2).Draw(rt, "factor")
		duration := rapid.Float64Range(0.1, 5).Draw(rt, "duration")

		w := newWorld(nil)
		id := w.enemy(vmath.Vec2{}, 10, base)
		enemy, _ := w.ecs.Enemies.Get(id)

		if !w.damage.ApplySlow(id, factor, duration) {
			rt.Fatalf("first slow must apply")
		}
		clamped := min(1, max(0, factor))
		if enemy.Speed != enemy.BaseSpeed*clamped {
			rt.Fatalf("speed %v != %v * %v", enemy.Speed, enemy.BaseSpeed, clamped)
		}
		if w.damage.ApplySlow(id, 0.01, 100) {
			rt.Fatalf("re-application while slowed must be ignored")
		}
		if enemy.Speed != enemy.BaseSpeed*clamped {
			rt.Fatalf("re-application changed speed")
		}

		status := system.NewStatusEffectSystem(w.ecs, w.damage)
		for elapsed := 0.0; elapsed < duration+0.1; elapsed += 0.05 {
			status.Update(0.05)
		}
		if enemy.Speed != enemy.BaseSpeed || w.ecs.SlowEffects.Has(id) {
			rt.Fatalf("slow did not expire: speed %v base %v", enemy.Speed, enemy.BaseSpeed)
		}
		if enemy.BaseSpeed != base {
			rt.Fatalf("base speed changed")
		}
	})
}

func TestPoisonReapplicationIsNoOp(t *testing.T) {
	w := newWorld(nil)
	id := w.enemy(vmath.Vec2{}, 100, 1)

	require.True(t, w.damage.ApplyPoison(id, 2, 3))
	before, _ := w.ecs.PoisonEffects.Get(id)
	snapshot := *before

	status := system.NewStatusEffectSystem(w.ecs, w.damage)
	status.Update(0.5)
	assert.False(t, w.damage.ApplyPoison(id, 50, 30))

	after, _ := w.ecs.PoisonEffects.Get(id)
	assert.Equal(t, snapshot.DamagePerTick, after.DamagePerTick)
	assert.InDelta(t, snapshot.Remaining, after.Remaining, 1e-9, "duration must not refresh")
}

func TestPoisonTicksOncePerSecond(t *testing.T) {
	w := newWorld(nil)
	id := w.enemy(vmath.Vec2{}, 100, 1)
	require.True(t, w.damage.ApplyPoison(id, 2, 3))

	status := system.NewStatusEffectSystem(w.ecs, w.damage)
	for i := 0; i < 60*5; i++ {
		status.Update(1.0 / 60)
	}
	assert.Equal(t, 100-3*2, w.health(id), "three ticks of two damage")
	assert.False(t, w.ecs.PoisonEffects.Has(id))
	assert.True(t, w.damage.ApplyPoison(id, 1, 1), "poison can be applied again once expired")
}

func TestPoisonKillStopsFurtherTicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	display := mocks.NewMockDamageDisplay(ctrl)
	w := newWorld(display)
	id := w.enemy(vmath.Vec2{}, 3, 1)

	gomock.InOrder(
		display.EXPECT().ShowDamage(id, 1, interfaces.DamageNormal),
		display.EXPECT().ShowDamage(id, 2, interfaces.DamagePoison),
	)

	w.damage.ApplyEffects(id, &component.Projectile{
		Damage: 1,
		Poison: &component.PoisonPayload{DamagePerSecond: 2, Duration: 3},
	})
	assert.Equal(t, 2, w.health(id))
	require.True(t, w.ecs.PoisonEffects.Has(id))

	status := system.NewStatusEffectSystem(w.ecs, w.damage)
	for i := 0; i < 60; i++ {
		status.Update(1.0 / 60)
	}
	assert.Equal(t, 0, w.health(id))
	assert.False(t, w.ecs.IsAlive(id))

	for i := 0; i < 60*4; i++ {
		status.Update(1.0 / 60)
	}
	assert.Equal(t, 0, w.health(id))
	assert.Equal(t, 1, w.count(event.EnemyDestroyed))
}

func TestApplyEffectsSkipsDeadTargets(t *testing.T) {
	w := newWorld(nil)
	id := w.enemy(vmath.Vec2{}, 1, 4)
	proj := &component.Projectile{
		Damage: 1,
		Poison: &component.PoisonPayload{DamagePerSecond: 1, Duration: 1},
		Slow:   &component.SlowPayload{Factor: 0.5, Duration: 1},
	}
	w.damage.ApplyEffects(id, proj)

	assert.False(t, w.ecs.IsAlive(id))
	assert.False(t, w.ecs.PoisonEffects.Has(id), "a killing hit attaches no poison")
	assert.False(t, w.ecs.SlowEffects.Has(id))
}
