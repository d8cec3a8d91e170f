// internal/system/wave.go
package system

import (
	"log/slog"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/interfaces"
	"go-tower-sim/internal/types"
	"go-tower-sim/internal/utils"

	"github.com/kamstrup/intmap"
)

// SpawnEnemy places an enemy at the start of route, heading for waypoint 0.
func SpawnEnemy(ecs *entity.ECS, def defs.EnemyDefinition, route interfaces.PathProvider) types.EntityID {
	radius := def.Radius
	if radius <= 0 {
		radius = config.DefaultEnemyRadius
	}
	pos := route.At(0)

	id := ecs.NewEntity()
	ecs.Positions.Set(id, &pos)
	ecs.Paths.Set(id, &component.Path{Route: route})
	ecs.Healths.Set(id, &component.Health{Value: def.Health, Initial: def.Health})
	ecs.Enemies.Set(id, &component.Enemy{
		DefID:     def.ID,
		BaseSpeed: def.Speed,
		Speed:     def.Speed,
		Radius:    radius,
	})
	if ecs.Spatial != nil {
		ecs.Spatial.Track(id, pos, radius)
	}
	return id
}

// SpawnSystem выпускает врагов волнами. После последней волны она повторяется.
type SpawnSystem struct {
	ecs     *entity.ECS
	events  *event.Dispatcher
	rng     *utils.PRNGService
	library *defs.Library
	owners  *intmap.Map[types.EntityID, types.EntityID] // враг -> спавнер
}

func NewSpawnSystem(ecs *entity.ECS, events *event.Dispatcher, rng *utils.PRNGService, library *defs.Library) *SpawnSystem {
	s := &SpawnSystem{
		ecs:     ecs,
		events:  events,
		rng:     rng,
		library: library,
		owners:  intmap.New[types.EntityID, types.EntityID](64),
	}
	events.Subscribe(event.EnemyDestroyed, s)
	events.Subscribe(event.EnemyLeaked, s)
	return s
}

// SetLibrary swaps the definitions used for new enemies.
func (s *SpawnSystem) SetLibrary(library *defs.Library) {
	s.library = library
}

// AddSpawner creates a spawner entity and starts its first wave.
func (s *SpawnSystem) AddSpawner(route interfaces.PathProvider, waves []defs.WaveDefinition) types.EntityID {
	id := s.ecs.NewEntity()
	sp := &component.Spawner{Route: route, Waves: waves}
	s.ecs.Spawners.Set(id, sp)
	if len(waves) > 0 {
		s.startWave(id, sp, 0)
	}
	return id
}

func (s *SpawnSystem) startWave(id types.EntityID, sp *component.Spawner, index int) {
	if index >= len(sp.Waves) {
		index = len(sp.Waves) - 1
	}
	sp.WaveIndex = index
	sp.Number++
	wave := sp.Wave()
	sp.EnemiesToSpawn = wave.Count
	if wave.Endless() {
		sp.EnemiesToSpawn = -1
	}
	sp.SpawnInterval = wave.SpawnInterval
	sp.SpawnTimer = 0 // первый враг появляется сразу
	sp.Active = true

	slog.Debug("wave started", "spawner", id, "wave", sp.Number, "count", wave.Count)
	s.events.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Spawner: id, Number: sp.Number}})
}

func (s *SpawnSystem) Update(deltaTime float64) {
	s.ecs.Spawners.Each(func(id types.EntityID, sp *component.Spawner) bool {
		if !sp.Active || !s.ecs.IsAlive(id) {
			return true
		}
		if sp.EnemiesToSpawn != 0 {
			// сначала выпуск, потом ожидание интервала
			for sp.EnemiesToSpawn != 0 && sp.SpawnTimer <= tickEpsilon {
				s.spawn(id, sp)
				if sp.EnemiesToSpawn > 0 {
					sp.EnemiesToSpawn--
				}
				if sp.SpawnInterval <= 0 {
					sp.SpawnTimer = 0
					break
				}
				sp.SpawnTimer += sp.SpawnInterval
			}
			sp.SpawnTimer -= deltaTime
			return true
		}
		if sp.Alive > 0 {
			return true
		}
		s.events.Dispatch(event.Event{Type: event.WaveEnded, Data: event.WaveData{Spawner: id, Number: sp.Number}})
		s.startWave(id, sp, sp.WaveIndex+1)
		return true
	})
}

func (s *SpawnSystem) spawn(spawnerID types.EntityID, sp *component.Spawner) {
	enemyID := s.rng.ChooseWeighted(sp.Wave().Enemies)
	def, err := s.library.Enemy(enemyID)
	if err != nil {
		slog.Warn("cannot spawn enemy", "spawner", spawnerID, "err", err)
		return
	}
	id := SpawnEnemy(s.ecs, def, sp.Route)
	s.owners.Put(id, spawnerID)
	sp.Alive++
	s.events.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{
		Enemy: id, DefID: def.ID, Pos: sp.Route.At(0),
	}})
}

// OnEvent ведёт счёт живых врагов каждой волны
func (s *SpawnSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.EnemyData)
	if !ok {
		return
	}
	spawnerID, ok := s.owners.Get(data.Enemy)
	if !ok {
		return
	}
	s.owners.Del(data.Enemy)
	if sp, ok := s.ecs.Spawners.Get(spawnerID); ok && sp.Alive > 0 {
		sp.Alive--
	}
}
