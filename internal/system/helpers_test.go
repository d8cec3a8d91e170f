package system_test

import (
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/interfaces"
	"go-tower-sim/internal/physics"
	"go-tower-sim/internal/system"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/vmath"
	"go-tower-sim/pkg/waypoint"
)

var allEvents = []event.EventType{
	event.WaveStarted, event.WaveEnded, event.EnemySpawned, event.EnemyDestroyed,
	event.EnemyLeaked, event.DamageDealt, event.ProjectileFired, event.ProjectileHit,
	event.ProjectileExpired,
}

// world is a minimal simulation with a real spatial index and an event log.
type world struct {
	ecs    *entity.ECS
	events *event.Dispatcher
	damage *system.Damager
	log    []event.Event
}

func newWorld(display interfaces.DamageDisplay) *world {
	w := &world{
		ecs:    entity.NewECS(physics.NewSpace()),
		events: event.NewDispatcher(),
	}
	w.damage = system.NewDamager(w.ecs, w.events, display)
	record := event.ListenerFunc(func(e event.Event) { w.log = append(w.log, e) })
	for _, typ := range allEvents {
		w.events.Subscribe(typ, record)
	}
	return w
}

// enemy spawns a stationary-route enemy at pos walking toward +X.
func (w *world) enemy(pos vmath.Vec2, health int, speed float64) types.EntityID {
	route, err := waypoint.New(pos, pos.Add(vmath.Vec2{X: 1000}))
	if err != nil {
		panic(err)
	}
	return system.SpawnEnemy(w.ecs, defs.EnemyDefinition{ID: "TEST", Health: health, Speed: speed, Radius: 0.5}, route)
}

// moveTo teleports an entity, keeping the spatial index in sync.
func (w *world) moveTo(id types.EntityID, pos vmath.Vec2) {
	p, ok := w.ecs.Positions.Get(id)
	if !ok {
		return
	}
	*p = pos
	w.ecs.Spatial.Move(id, pos)
}

func (w *world) health(id types.EntityID) int {
	h, ok := w.ecs.Healths.Get(id)
	if !ok {
		return -1
	}
	return h.Value
}

func (w *world) count(typ event.EventType) int {
	n := 0
	for _, e := range w.log {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func (w *world) last(typ event.EventType) (event.Event, bool) {
	for i := len(w.log) - 1; i >= 0; i-- {
		if w.log[i].Type == typ {
			return w.log[i], true
		}
	}
	return event.Event{}, false
}
