// internal/state/pause_state.go
package state

import (
	"go-tower-sim/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру и рисует её последний кадр под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	hud           *render.HUD
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		hud:           render.NewHUD(),
	}
}

func (s *PauseState) Enter() {
	if game := s.previousState.Game(); !game.IsPaused() {
		game.TogglePause()
	}
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	s.hud.DrawPaused(screen)
}

func (s *PauseState) Exit() {
	if game := s.previousState.Game(); game.IsPaused() {
		game.TogglePause()
	}
}
