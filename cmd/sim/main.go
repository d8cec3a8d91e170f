// cmd/sim/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// runResult is the outcome of one headless game.
type runResult struct {
	RunID string
	Seed  int64
	Stats app.Stats
	Alive int
}

func main() {
	settingsPath := flag.String("settings", "", "YAML settings file")
	defsPath := flag.String("defs", "", "definitions file (.json or .yaml)")
	scenarioPath := flag.String("scenario", "", "scenario file (.json or .yaml)")
	duration := flag.Float64("duration", 120, "simulated seconds per run")
	runs := flag.Int("runs", 4, "number of runs; run i uses seed+i")
	seed := flag.Int64("seed", 1, "base seed")
	parallel := flag.Int("parallel", runtime.NumCPU(), "maximum concurrent runs")
	flag.Parse()

	if err := run(*settingsPath, *defsPath, *scenarioPath, *duration, *runs, *seed, *parallel); err != nil {
		slog.Error("simulation failed", "err", err)
		os.Exit(1)
	}
}

func run(settingsPath, defsPath, scenarioPath string, duration float64, runs int, seed int64, parallel int) error {
	settings := config.DefaultSettings()
	if settingsPath != "" {
		var err error
		if settings, err = config.LoadSettings(settingsPath); err != nil {
			return err
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.SlogLevel()})))
	if defsPath == "" {
		defsPath = settings.DefinitionsPath
	}
	if scenarioPath == "" {
		scenarioPath = settings.ScenarioPath
	}

	lib := defs.Default()
	if defsPath != "" {
		var err error
		if lib, err = defs.LoadLibrary(defsPath); err != nil {
			return err
		}
	}
	if scenarioPath != "" {
		if _, err := defs.LoadScenario(scenarioPath, lib); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := runBatch(ctx, settings, lib, scenarioPath, duration, runs, seed, parallel)
	if err != nil {
		return err
	}
	for _, r := range results {
		s := r.Stats
		fmt.Printf("%s seed=%d wave=%d spawned=%d killed=%d leaked=%d alive=%d shots=%d hits=%d expired=%d damage=%d poison=%d\n",
			r.RunID, r.Seed, s.Wave, s.Spawned, s.Kills, s.Leaks, r.Alive, s.Shots, s.Hits, s.Expired, s.Damage, s.PoisonDamage)
	}
	return nil
}

// runBatch plays independent games concurrently. Games share only the
// read-only library; each one loads its own scenario copy.
func runBatch(ctx context.Context, settings config.Settings, lib *defs.Library, scenarioPath string, duration float64, runs int, seed int64, parallel int) ([]runResult, error) {
	results := make([]runResult, runs)
	var mu sync.Mutex

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, parallel))
	for i := 0; i < runs; i++ {
		eg.Go(func() error {
			runSettings := settings
			runSettings.Seed = seed + int64(i)
			runID := uuid.NewString()
			logger := slog.Default().With("run", runID, "seed", runSettings.Seed)

			scenario := defs.DefaultScenario()
			if scenarioPath != "" {
				var err error
				if scenario, err = defs.LoadScenario(scenarioPath, lib); err != nil {
					return fmt.Errorf("run %s: %w", runID, err)
				}
			}

			g := app.NewGame(runSettings, lib, app.Hooks{}).WithLogger(logger)
			if err := g.LoadScenario(scenario); err != nil {
				return fmt.Errorf("run %s: %w", runID, err)
			}
			// Шагаем секундами, чтобы вовремя заметить отмену
			for elapsed := 0.0; elapsed < duration; elapsed++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				g.RunFor(min(1, duration-elapsed))
			}

			logger.Info("run finished", "kills", g.Stats.Kills, "leaks", g.Stats.Leaks, "wave", g.Stats.Wave)
			mu.Lock()
			results[i] = runResult{RunID: runID, Seed: runSettings.Seed, Stats: g.Stats, Alive: len(g.EnemyIDs())}
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
