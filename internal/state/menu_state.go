// internal/state/menu_state.go
package state

import (
	"go-tower-sim/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState — стартовый экран, ждёт пробела
type MenuState struct {
	sm    *StateMachine
	next  State
	title string
}

func NewMenuState(sm *StateMachine, next State, title string) *MenuState {
	return &MenuState{sm: sm, next: next, title: title}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(m.next)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	text.Draw(screen, m.title, face, config.ScreenWidth/2-len(m.title)*7/2, config.ScreenHeight/2-20, config.TextLightColor)
	hint := "press SPACE to start"
	text.Draw(screen, hint, face, config.ScreenWidth/2-len(hint)*7/2, config.ScreenHeight/2+10, config.TextLightColor)
}

func (m *MenuState) Exit() {}
