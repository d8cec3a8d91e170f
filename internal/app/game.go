// internal/app/game.go
package app

import (
	"fmt"
	"log/slog"

	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/interfaces"
	"go-tower-sim/internal/physics"
	"go-tower-sim/internal/system"
	"go-tower-sim/internal/types"
	"go-tower-sim/internal/utils"
	"go-tower-sim/pkg/waypoint"
)

// Hooks are the external services the simulation reports to. Nil hooks are no-ops.
type Hooks struct {
	Effects interfaces.EffectTrigger
	Display interfaces.DamageDisplay
}

// Game holds the main game state and logic.
type Game struct {
	ECS             *entity.ECS
	Space           *physics.Space
	EventDispatcher *event.Dispatcher
	Library         *defs.Library
	Settings        config.Settings
	Scenario        *defs.Scenario
	Route           waypoint.Path
	Rng             *utils.PRNGService
	Stats           Stats
	SpeedMultiplier float64

	Damager            *system.Damager
	SpawnSystem        *system.SpawnSystem
	MovementSystem     *system.MovementSystem
	StatusEffectSystem *system.StatusEffectSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem

	gameTime float64
	isPaused bool
	log      *slog.Logger
}

// NewGame wires the systems around an empty world.
func NewGame(settings config.Settings, library *defs.Library, hooks Hooks) *Game {
	if library == nil {
		library = defs.Default()
	}
	space := physics.NewSpace()
	ecs := entity.NewECS(space)
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)

	g := &Game{
		ECS:             ecs,
		Space:           space,
		EventDispatcher: dispatcher,
		Library:         library,
		Settings:        settings,
		Rng:             rng,
		SpeedMultiplier: 1.0,
		log:             slog.Default().With("seed", rng.Seed()),
	}
	g.Damager = system.NewDamager(ecs, dispatcher, hooks.Display)
	g.SpawnSystem = system.NewSpawnSystem(ecs, dispatcher, rng, library)
	g.MovementSystem = system.NewMovementSystem(ecs, dispatcher)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, g.Damager)
	g.CombatSystem = system.NewCombatSystem(ecs, dispatcher, library)
	g.CombatSystem.HoldCooldownWhileIdle = settings.HoldCooldownWhileIdle
	g.CombatSystem.ProjectileLifetime = settings.ProjectileLifetime
	g.ProjectileSystem = system.NewProjectileSystem(ecs, dispatcher, g.Damager, hooks.Effects, settings.PlayArea)

	listener := &GameEventListener{game: g}
	for _, t := range []event.EventType{
		event.WaveStarted, event.WaveEnded, event.EnemySpawned, event.EnemyDestroyed,
		event.EnemyLeaked, event.DamageDealt, event.ProjectileFired, event.ProjectileHit,
		event.ProjectileExpired,
	} {
		dispatcher.Subscribe(t, listener)
	}
	return g
}

// WithLogger replaces the logger used for game-level messages.
func (g *Game) WithLogger(l *slog.Logger) *Game {
	g.log = l
	return g
}

// LoadScenario builds the route, places the scenario's towers and starts its waves.
func (g *Game) LoadScenario(s *defs.Scenario) error {
	if err := s.Validate(g.Library); err != nil {
		return err
	}
	route, err := s.Route()
	if err != nil {
		return fmt.Errorf("failed to build route: %w", err)
	}
	g.Scenario = s
	g.Route = route

	for i, t := range s.Towers {
		if _, err := g.placeTower(t.TowerID, towerPos(t), false); err != nil {
			return fmt.Errorf("scenario tower %d: %w", i, err)
		}
	}
	g.SpawnSystem.AddSpawner(route, s.Waves)
	g.log.Info("scenario loaded",
		"name", s.Name,
		"waypoints", route.Len(),
		"path_length", route.Length(),
		"towers", len(s.Towers),
		"waves", len(s.Waves))
	return nil
}

// Update progresses the game state by one frame. Systems run in a fixed
// order and removals are flushed at the end. Long frames are clamped to MaxDeltaTime.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused || deltaTime <= 0 {
		return
	}
	if deltaTime > g.Settings.MaxDeltaTime {
		deltaTime = g.Settings.MaxDeltaTime
	}
	dt := deltaTime * g.SpeedMultiplier
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.SpawnSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.StatusEffectSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.ECS.Flush()
}

// Step advances the simulation by the configured fixed delta.
func (g *Game) Step() {
	g.Update(g.Settings.DeltaTime)
}

// RunFor steps the simulation until at least seconds of game time have passed.
// It does nothing while paused.
func (g *Game) RunFor(seconds float64) {
	if g.isPaused || g.Settings.DeltaTime <= 0 {
		return
	}
	target := g.gameTime + seconds
	for g.gameTime < target {
		g.Step()
	}
}

// ReloadDefinitions swaps the library. Existing towers pick up the new
// range, rate and projectile; live enemies and projectiles keep their stats.
func (g *Game) ReloadDefinitions(library *defs.Library) {
	g.Library = library
	g.CombatSystem.SetLibrary(library)
	g.SpawnSystem.SetLibrary(library)

	updated := 0
	for _, id := range g.ECS.Towers.IDs() {
		tower, _ := g.ECS.Towers.Get(id)
		def, err := library.Tower(tower.DefID)
		if err != nil {
			g.log.Warn("tower definition disappeared on reload", "tower", id, "def", tower.DefID)
			continue
		}
		applyTowerDef(tower, def)
		updated++
	}
	g.log.Info("definitions reloaded", "towers_updated", updated)
}

// EnemyIDs returns every enemy in slot order.
func (g *Game) EnemyIDs() []types.EntityID {
	return g.ECS.Enemies.IDs()
}

func (g *Game) GameTime() float64 {
	return g.gameTime
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) TogglePause() {
	g.isPaused = !g.isPaused
}

// CycleSpeed switches between x1, x2 and x4.
func (g *Game) CycleSpeed() {
	switch g.SpeedMultiplier {
	case 1.0:
		g.SpeedMultiplier = 2.0
	case 2.0:
		g.SpeedMultiplier = 4.0
	default:
		g.SpeedMultiplier = 1.0
	}
}
