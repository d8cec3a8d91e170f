package defs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-tower-sim/internal/defs"
	"go-tower-sim/pkg/hexmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const libraryJSON = `{
  "towers": [{"id": "T", "name": "t", "range": 10, "fire_rate": 1, "projectile": "B"}],
  "enemies": [{"id": "E", "name": "e", "health": 3, "speed": 5}],
  "projectiles": [{"id": "B", "speed": 20, "damage": 1, "poison": {"damage_per_second": 2, "duration": 3}}]
}`

const libraryYAML = `
towers:
  - id: T
    range: 10
    fire_rate: 1
    projectile: B
enemies:
  - id: E
    health: 3
    speed: 5
projectiles:
  - id: B
    speed: 20
    damage: 1
    slow: {amount: 0.5, duration: 2}
    pierce: {max_pierce: 2, retarget_radius: 4}
`

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultLibraryIsValid(t *testing.T) {
	lib := defs.Default()
	require.NoError(t, lib.Validate())
	require.NoError(t, defs.DefaultScenario().Validate(lib))

	route, err := defs.DefaultScenario().Route()
	require.NoError(t, err)
	assert.Equal(t, 6, route.Len())
}

func TestLoadLibraryJSONAndYAML(t *testing.T) {
	lib, err := defs.LoadLibrary(write(t, "defs.json", libraryJSON))
	require.NoError(t, err)
	b, err := lib.Projectile("B")
	require.NoError(t, err)
	require.NotNil(t, b.Poison)
	assert.Equal(t, 2.0, b.Poison.DamagePerSecond)

	lib, err = defs.LoadLibrary(write(t, "defs.yaml", libraryYAML))
	require.NoError(t, err)
	b, err = lib.Projectile("B")
	require.NoError(t, err)
	require.NotNil(t, b.Slow)
	require.NotNil(t, b.Pierce)
	assert.Equal(t, 0.5, b.Slow.Amount)
	assert.Equal(t, 2, b.Pierce.MaxPierce)
}

func TestLoadLibraryErrors(t *testing.T) {
	_, err := defs.LoadLibrary(write(t, "defs.toml", ""))
	assert.Error(t, err)

	_, err = defs.LoadLibrary(write(t, "bad.json", `{"towers": [{"id": "T", "range": 10, "fire_rate": 1, "projectile": "MISSING"}]}`))
	assert.ErrorIs(t, err, defs.ErrUnknownProjectile)

	_, err = defs.LoadLibrary(write(t, "bad.yaml", "enemies: [{id: E, health: 0, speed: 1}]"))
	assert.ErrorIs(t, err, defs.ErrInvalidDefinition)
}

func TestValidateRejectsIneffectiveEffects(t *testing.T) {
	cases := []struct {
		name string
		def  defs.ProjectileDefinition
	}{
		{"poison_rounds_to_zero", defs.ProjectileDefinition{ID: "P", Speed: 10, Poison: &defs.PoisonDef{DamagePerSecond: 0.4, Duration: 3}}},
		{"negative_poison_duration", defs.ProjectileDefinition{ID: "P", Speed: 10, Poison: &defs.PoisonDef{DamagePerSecond: 2, Duration: -1}}},
		{"zero_slow_duration", defs.ProjectileDefinition{ID: "P", Speed: 10, Slow: &defs.SlowDef{Amount: 0.5}}},
		{"negative_slow_duration", defs.ProjectileDefinition{ID: "P", Speed: 10, Slow: &defs.SlowDef{Amount: 0.5, Duration: -2}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lib := defs.NewLibrary(nil, nil, []defs.ProjectileDefinition{c.def})
			assert.ErrorIs(t, lib.Validate(), defs.ErrInvalidDefinition)
		})
	}

	ok := defs.NewLibrary(nil, nil, []defs.ProjectileDefinition{
		{ID: "P", Speed: 10, Poison: &defs.PoisonDef{DamagePerSecond: 0.5, Duration: 1}},
	})
	assert.NoError(t, ok.Validate(), "0.5 dps rounds up to one damage per tick")
}

func TestLookupUnknown(t *testing.T) {
	lib := defs.Default()
	_, err := lib.Tower("nope")
	assert.ErrorIs(t, err, defs.ErrUnknownTower)
	_, err = lib.Enemy("nope")
	assert.ErrorIs(t, err, defs.ErrUnknownEnemy)
}

func TestLoadScenarioWithGrid(t *testing.T) {
	path := write(t, "grid.yaml", `
grid:
  radius: 3
  hex_size: 2
  entry: {q: -3, r: 0}
  exit: {q: 3, r: 0}
  blocked: [{q: 0, r: 0}]
towers:
  - {tower: TOWER_BASIC, x: 0, y: 0}
waves:
  - count: 3
    spawn_interval: 1
    enemies: [{enemy: ENEMY_BASIC, weight: 1}]
`)
	s, err := defs.LoadScenario(path, defs.Default())
	require.NoError(t, err)
	assert.Equal(t, "grid", s.Name)

	route, err := s.Route()
	require.NoError(t, err)
	assert.Greater(t, route.Len(), 7, "blocked center forces a detour")
}

func TestScenarioValidation(t *testing.T) {
	s := defs.DefaultScenario()
	s.Waves[0].Enemies = []defs.SpawnEntry{{EnemyID: "GHOST", Weight: 1}}
	assert.ErrorIs(t, s.Validate(defs.Default()), defs.ErrUnknownEnemy)

	s = defs.DefaultScenario()
	s.Waves = nil
	assert.ErrorIs(t, s.Validate(defs.Default()), defs.ErrInvalidDefinition)

	s = defs.DefaultScenario()
	s.Grid = &defs.GridDef{Radius: 3, Entry: hexmap.Hex{Q: -3}, Exit: hexmap.Hex{Q: 3}}
	assert.ErrorIs(t, s.Validate(defs.Default()), defs.ErrInvalidDefinition, "waypoints and grid together")

	s = defs.DefaultScenario()
	s.Waypoints = nil
	assert.ErrorIs(t, s.Validate(defs.Default()), defs.ErrInvalidDefinition, "no route at all")
}

func TestVisualsColor(t *testing.T) {
	c := defs.Visuals{Color: "#ff8000"}.RGBA()
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(128), c.G)
	assert.Equal(t, uint8(255), c.A)
	assert.Equal(t, uint8(255), defs.Visuals{Color: "junk"}.RGBA().G)
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := write(t, "defs.json", libraryJSON)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *defs.Library, 4)
	done := make(chan error, 1)
	go func() { done <- defs.Watch(ctx, path, func(l *defs.Library) { reloaded <- l }) }()

	// Give the watcher a moment to register before editing.
	time.Sleep(100 * time.Millisecond)
	updated := `{
  "towers": [{"id": "T", "range": 12, "fire_rate": 2, "projectile": "B"}],
  "enemies": [{"id": "E", "health": 3, "speed": 5}],
  "projectiles": [{"id": "B", "speed": 20, "damage": 4}]
}`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	select {
	case lib := <-reloaded:
		tower, err := lib.Tower("T")
		require.NoError(t, err)
		assert.Equal(t, 12.0, tower.Range)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestBundledAssetsLoad(t *testing.T) {
	lib, err := defs.LoadLibrary("../../assets/data/definitions.json")
	require.NoError(t, err)
	assert.Len(t, lib.Towers, 5)

	for _, name := range []string{"zigzag", "hexfield"} {
		s, err := defs.LoadScenario("../../assets/data/scenarios/"+name+".yaml", lib)
		require.NoError(t, err, name)
		_, err = s.Route()
		assert.NoError(t, err, name)
	}
}
