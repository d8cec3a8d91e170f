// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"go-tower-sim/pkg/vmath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings wraps every settings validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Bounds is an axis-aligned rectangle in world units.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// Contains reports whether p lies inside the rectangle (edges included).
func (b Bounds) Contains(p vmath.Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Settings are the runtime knobs of a simulation.
type Settings struct {
	DeltaTime          float64 `yaml:"delta_time"`
	MaxDeltaTime       float64 `yaml:"max_delta_time"`
	Seed               int64   `yaml:"seed"`
	ProjectileLifetime float64 `yaml:"projectile_lifetime"`
	// HoldCooldownWhileIdle freezes a tower's countdown while it has no target.
	// By default the countdown keeps running, so a tower fires the moment a
	// target walks back into range.
	HoldCooldownWhileIdle bool   `yaml:"hold_cooldown_while_idle"`
	PlayArea              Bounds `yaml:"play_area"`
	LogLevel              string `yaml:"log_level"`
	DefinitionsPath       string `yaml:"definitions"`
	ScenarioPath          string `yaml:"scenario"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		DeltaTime:          FixedDeltaTime,
		MaxDeltaTime:       MaxDeltaTime,
		ProjectileLifetime: ProjectileLifetime,
		PlayArea: Bounds{
			MinX: -PlayAreaHalfWidth, MinY: -PlayAreaHalfHeight,
			MaxX: PlayAreaHalfWidth, MaxY: PlayAreaHalfHeight,
		},
		LogLevel: "info",
	}
}

// LoadSettings reads YAML settings on top of DefaultSettings.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate checks that the settings can drive a simulation.
func (s Settings) Validate() error {
	switch {
	case s.DeltaTime <= 0:
		return fmt.Errorf("%w: delta_time must be positive, got %v", ErrInvalidSettings, s.DeltaTime)
	case s.MaxDeltaTime < s.DeltaTime:
		return fmt.Errorf("%w: max_delta_time %v is below delta_time %v", ErrInvalidSettings, s.MaxDeltaTime, s.DeltaTime)
	case s.ProjectileLifetime <= 0:
		return fmt.Errorf("%w: projectile_lifetime must be positive", ErrInvalidSettings)
	case s.PlayArea.MinX >= s.PlayArea.MaxX || s.PlayArea.MinY >= s.PlayArea.MaxY:
		return fmt.Errorf("%w: play_area is empty", ErrInvalidSettings)
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level; unknown names mean info.
func (s Settings) SlogLevel() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
