// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// libraryFile is the on-disk layout of a definitions file.
type libraryFile struct {
	Towers      []TowerDefinition      `json:"towers" yaml:"towers"`
	Enemies     []EnemyDefinition      `json:"enemies" yaml:"enemies"`
	Projectiles []ProjectileDefinition `json:"projectiles" yaml:"projectiles"`
}

// decodeFile unmarshals JSON or YAML depending on the file extension.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, v)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("unsupported definitions format %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// LoadLibrary reads and validates a definitions file.
func LoadLibrary(path string) (*Library, error) {
	var file libraryFile
	if err := decodeFile(path, &file); err != nil {
		return nil, err
	}
	lib := NewLibrary(file.Towers, file.Enemies, file.Projectiles)
	if err := lib.Validate(); err != nil {
		return nil, fmt.Errorf("definitions %s: %w", path, err)
	}
	slog.Info("loaded definitions",
		"path", path,
		"towers", len(lib.Towers),
		"enemies", len(lib.Enemies),
		"projectiles", len(lib.Projectiles))
	return lib, nil
}

// LoadScenario reads a scenario file and checks it against lib.
func LoadScenario(path string, lib *Library) (*Scenario, error) {
	var s Scenario
	if err := decodeFile(path, &s); err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := s.Validate(lib); err != nil {
		return nil, err
	}
	return &s, nil
}
