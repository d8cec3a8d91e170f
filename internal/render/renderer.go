// internal/render/renderer.go
package render

import (
	"image/color"
	"math"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/interfaces"
	"go-tower-sim/internal/render/scene"
	"go-tower-sim/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer draws a Game with plain ebiten vector shapes.
type Renderer struct {
	Camera  scene.Camera
	Effects *scene.Effects

	// ShowRanges draws the detection circle of every tower.
	ShowRanges bool
}

func NewRenderer(camera scene.Camera, effects *scene.Effects) *Renderer {
	return &Renderer{Camera: camera, Effects: effects, ShowRanges: true}
}

// Draw рисует весь мир: путь, башни, врагов, снаряды и вспышки попаданий.
func (r *Renderer) Draw(screen *ebiten.Image, g *app.Game) {
	screen.Fill(config.BackgroundColor)
	r.drawPath(screen, g)
	r.drawTowers(screen, g)
	r.drawEnemies(screen, g)
	r.drawProjectiles(screen, g)
	r.drawImpacts(screen)
}

func (r *Renderer) drawPath(screen *ebiten.Image, g *app.Game) {
	width := r.Camera.Length(config.PathClearance * 2)
	for i := 1; i < g.Route.Len(); i++ {
		x0, y0 := r.Camera.ToScreen(g.Route.At(i - 1))
		x1, y1 := r.Camera.ToScreen(g.Route.At(i))
		vector.StrokeLine(screen, x0, y0, x1, y1, width, config.PathColor, true)
	}
	for i := 0; i < g.Route.Len(); i++ {
		x, y := r.Camera.ToScreen(g.Route.At(i))
		vector.DrawFilledCircle(screen, x, y, width/2, config.PathColor, true)
	}
}

func (r *Renderer) drawTowers(screen *ebiten.Image, g *app.Game) {
	g.ECS.Towers.Each(func(id types.EntityID, tower *component.Tower) bool {
		pos, ok := g.ECS.Positions.Get(id)
		if !ok {
			return true
		}
		x, y := r.Camera.ToScreen(*pos)
		if r.ShowRanges {
			vector.StrokeCircle(screen, x, y, r.Camera.Length(tower.Range), 1, config.RangeColor, true)
		}
		vis := towerVisuals(g.Library, tower.DefID)
		radius := r.Camera.Length(visualRadius(vis, 0.8))
		vector.DrawFilledCircle(screen, x, y, radius, vis.RGBA(), true)
		vector.StrokeCircle(screen, x, y, radius, 2, color.White, true)
		return true
	})
}

func (r *Renderer) drawEnemies(screen *ebiten.Image, g *app.Game) {
	g.ECS.Enemies.Each(func(id types.EntityID, enemy *component.Enemy) bool {
		pos, ok := g.ECS.Positions.Get(id)
		if !ok {
			return true
		}
		x, y := r.Camera.ToScreen(*pos)
		radius := r.Camera.Length(enemy.Radius)

		var c color.Color = color.RGBA{200, 200, 200, 255}
		if def, err := g.Library.Enemy(enemy.DefID); err == nil {
			c = def.Visuals.RGBA()
		}
		if flash, ok := r.Effects.Flash(id); ok {
			c = color.White
			if flash.Kind == interfaces.DamagePoison {
				c = config.PoisonTint
			}
		}
		vector.DrawFilledCircle(screen, x, y, radius, c, true)

		// Кольца статусов
		if g.ECS.PoisonEffects.Has(id) {
			vector.StrokeCircle(screen, x, y, radius+2, 2, config.PoisonTint, true)
		}
		if g.ECS.SlowEffects.Has(id) {
			vector.StrokeCircle(screen, x, y, radius+5, 2, config.SlowTint, true)
		}

		if health, ok := g.ECS.Healths.Get(id); ok && health.Initial > 0 {
			frac := float32(max(0, health.Value)) / float32(health.Initial)
			barW := radius * 2
			vector.DrawFilledRect(screen, x-radius, y-radius-8, barW, 4, config.HealthBackColor, false)
			vector.DrawFilledRect(screen, x-radius, y-radius-8, barW*frac, 4, config.HealthBarColor, false)
		}
		return true
	})
}

func (r *Renderer) drawProjectiles(screen *ebiten.Image, g *app.Game) {
	g.ECS.Projectiles.Each(func(id types.EntityID, proj *component.Projectile) bool {
		pos, ok := g.ECS.Positions.Get(id)
		if !ok {
			return true
		}
		x, y := r.Camera.ToScreen(*pos)
		vis := defs.Visuals{Color: "#ffd700"}
		if def, err := g.Library.Projectile(proj.DefID); err == nil {
			vis = def.Visuals
		}
		radius := r.Camera.Length(visualRadius(vis, 0.2))
		vector.DrawFilledCircle(screen, x, y, radius, vis.RGBA(), true)

		// Хвост показывает направление полёта
		tail := float64(radius) * 3
		tx := x - float32(math.Cos(proj.Direction)*tail)
		ty := y - float32(math.Sin(proj.Direction)*tail)
		vector.StrokeLine(screen, tx, ty, x, y, 1, vis.RGBA(), true)
		return true
	})
}

func (r *Renderer) drawImpacts(screen *ebiten.Image) {
	for _, imp := range r.Effects.Impacts() {
		x, y := r.Camera.ToScreen(imp.Pos)
		p := imp.Progress()
		alpha := uint8(255 * (1 - p))
		c := color.RGBA{255, 255, 255, alpha}
		if imp.EffectID == "explosion" {
			c = color.RGBA{255, 140, 0, alpha}
		}
		vector.StrokeCircle(screen, x, y, r.Camera.Length(0.3+2*p), 2, c, true)
	}
}

func towerVisuals(lib *defs.Library, id string) defs.Visuals {
	if def, err := lib.Tower(id); err == nil {
		return def.Visuals
	}
	return defs.Visuals{}
}

func visualRadius(v defs.Visuals, fallback float64) float64 {
	if v.Radius > 0 {
		return v.Radius
	}
	return fallback
}
