// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/render/scene"
	"go-tower-sim/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settingsPath := flag.String("settings", "", "YAML settings file")
	defsPath := flag.String("defs", "", "definitions file (.json or .yaml); watched for changes")
	scenarioPath := flag.String("scenario", "", "scenario file (.json or .yaml)")
	startFromMenu := flag.Bool("menu", false, "start from the title screen")
	flag.Parse()

	settings := config.DefaultSettings()
	if *settingsPath != "" {
		var err error
		if settings, err = config.LoadSettings(*settingsPath); err != nil {
			slog.Error("failed to load settings", "err", err)
			os.Exit(1)
		}
	}
	if *defsPath == "" {
		*defsPath = settings.DefinitionsPath
	}
	if *scenarioPath == "" {
		*scenarioPath = settings.ScenarioPath
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.SlogLevel()})))

	lib := defs.Default()
	if *defsPath != "" {
		var err error
		if lib, err = defs.LoadLibrary(*defsPath); err != nil {
			slog.Error("failed to load definitions", "err", err)
			os.Exit(1)
		}
	}
	scenario := defs.DefaultScenario()
	if *scenarioPath != "" {
		var err error
		if scenario, err = defs.LoadScenario(*scenarioPath, lib); err != nil {
			slog.Error("failed to load scenario", "err", err)
			os.Exit(1)
		}
	}

	effects := scene.NewEffects()
	g := app.NewGame(settings, lib, app.Hooks{Effects: effects, Display: effects})
	if err := g.LoadScenario(scenario); err != nil {
		slog.Error("failed to start scenario", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloads := make(chan *defs.Library, 1)
	if *defsPath != "" {
		go func() {
			err := defs.Watch(ctx, *defsPath, func(l *defs.Library) {
				select {
				case reloads <- l:
				default:
					slog.Warn("dropping definitions reload, previous one not applied yet")
				}
			})
			if err != nil {
				slog.Warn("definitions watcher stopped", "err", err)
			}
		}()
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	camera := scene.NewCamera(config.ScreenWidth, config.ScreenHeight, config.WorldScale)
	gameState := state.NewGameState(sm, g, effects, camera, reloads)
	if *startFromMenu {
		sm.SetState(state.NewMenuState(sm, gameState, scenario.Name))
	} else {
		sm.SetState(gameState)
	}

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Sim: " + scenario.Name)
	if err := ebiten.RunGame(appGame); err != nil {
		slog.Error("game loop failed", "err", err)
		os.Exit(1)
	}
}
