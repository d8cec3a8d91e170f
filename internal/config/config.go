// internal/config/config.go
package config

import (
	"image/color"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	WorldScale   = 18.0 // пикселей на единицу мира во вьюере

	FixedDeltaTime = 1.0 / 60
	MaxDeltaTime   = 0.06

	WaypointEpsilon    = 0.2  // Враг считается дошедшим до точки пути
	PoisonTickInterval = 1.0  // Яд наносит урон раз в секунду
	ProjectileTurnRate = 20.0 // Скорость доворота снаряда
	ProjectileLifetime = 5.0  // Сколько летит пробивающий снаряд без цели

	DefaultEnemyRadius   = 0.5
	DefaultContactRadius = 0.3
	DefaultHexSize       = 2.0

	TowerClearance = 1.5 // Минимальное расстояние между башнями
	PathClearance  = 1.0 // Башню нельзя ставить ближе к дороге

	PlayAreaHalfWidth  = 40.0
	PlayAreaHalfHeight = 30.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PathColor       = color.RGBA{70, 100, 120, 220}
	RangeColor      = color.RGBA{255, 255, 255, 24}
	HealthBarColor  = color.RGBA{50, 205, 50, 255}
	HealthBackColor = color.RGBA{120, 30, 30, 255}
	PoisonTint      = color.RGBA{120, 220, 60, 255}
	SlowTint        = color.RGBA{80, 160, 255, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PauseOverlay    = color.RGBA{0, 0, 0, 128}
)
