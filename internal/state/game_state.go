// internal/state/game_state.go
package state

import (
	"log/slog"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/render"
	"go-tower-sim/internal/render/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameState)(nil)

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.Renderer
	hud      *render.HUD
	effects  *scene.Effects
	reloads  <-chan *defs.Library

	towerTypes    []string
	selectedTower int
}

// NewGameState wraps a running game. Libraries received on reloads are
// applied on the game loop.
func NewGameState(sm *StateMachine, g *app.Game, effects *scene.Effects, camera scene.Camera, reloads <-chan *defs.Library) *GameState {
	return &GameState{
		sm:         sm,
		game:       g,
		renderer:   render.NewRenderer(camera, effects),
		hud:        render.NewHUD(),
		effects:    effects,
		reloads:    reloads,
		towerTypes: sortedTowerIDs(g.Library),
	}
}

func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.applyReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.game.CycleSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.renderer.ShowRanges = !g.renderer.ShowRanges
	}
	for i, key := range towerKeys {
		if i < len(g.towerTypes) && inpututil.IsKeyJustPressed(key) {
			g.selectedTower = i
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(ebiten.MouseButtonLeft)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.handleClick(ebiten.MouseButtonRight)
	}

	g.game.Update(deltaTime)
	g.effects.Update(deltaTime * g.game.SpeedMultiplier)
}

func (g *GameState) handleClick(button ebiten.MouseButton) {
	x, y := ebiten.CursorPosition()
	pos := g.renderer.Camera.ToWorld(x, y)

	switch button {
	case ebiten.MouseButtonLeft:
		if len(g.towerTypes) == 0 {
			return
		}
		if _, err := g.game.PlaceTower(g.towerTypes[g.selectedTower], pos); err != nil {
			slog.Info("tower not placed", "err", err)
		}
	case ebiten.MouseButtonRight:
		if id, ok := g.game.TowerAt(pos, 1.0); ok {
			g.game.RemoveTower(id)
		}
	}
}

func (g *GameState) applyReloads() {
	for {
		select {
		case lib := <-g.reloads:
			g.game.ReloadDefinitions(lib)
			g.towerTypes = sortedTowerIDs(lib)
			if g.selectedTower >= len(g.towerTypes) {
				g.selectedTower = 0
			}
		default:
			return
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game)
	selected := "-"
	if g.selectedTower < len(g.towerTypes) {
		selected = g.towerTypes[g.selectedTower]
	}
	g.hud.Draw(screen, g.game, selected)
}

func (g *GameState) Exit() {}
