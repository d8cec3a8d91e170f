// internal/render/hud.go
package render

import (
	"fmt"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD рисует статистику забега и подсказки по клавишам.
type HUD struct {
	face font.Face
}

func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

func (h *HUD) Draw(screen *ebiten.Image, g *app.Game, selectedTower string) {
	s := g.Stats
	lines := []string{
		fmt.Sprintf("Wave %s  time %.1fs  speed x%.0f", toRoman(s.Wave), g.GameTime(), g.SpeedMultiplier),
		fmt.Sprintf("spawned %d  killed %d  leaked %d", s.Spawned, s.Kills, s.Leaks),
		fmt.Sprintf("shots %d  hits %d  expired %d  damage %d (poison %d)", s.Shots, s.Hits, s.Expired, s.Damage, s.PoisonDamage),
		fmt.Sprintf("build: %s  [1-5] tower  [LMB] place  [RMB] remove  [S] speed  [R] ranges  [P] pause", selectedTower),
	}
	for i, line := range lines {
		text.Draw(screen, line, h.face, 10, 20+i*16, config.TextLightColor)
	}
}

// DrawPaused затемняет экран поверх кадра.
func (h *HUD) DrawPaused(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight), config.PauseOverlay, false)
	msg := "PAUSED"
	x := (config.ScreenWidth - len(msg)*7) / 2
	text.Draw(screen, msg, h.face, x, config.ScreenHeight/2, config.TextLightColor)
}
