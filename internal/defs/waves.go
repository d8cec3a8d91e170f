// internal/defs/waves.go
package defs

// SpawnEntry is one row of a weighted enemy table.
type SpawnEntry struct {
	EnemyID string `json:"enemy" yaml:"enemy"`
	Weight  int    `json:"weight" yaml:"weight"`
}

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Count         int          `json:"count" yaml:"count"`                   // 0 = бесконечная волна
	SpawnInterval float64      `json:"spawn_interval" yaml:"spawn_interval"` // секунды
	Enemies       []SpawnEntry `json:"enemies" yaml:"enemies"`
}

// Endless reports whether the wave never runs out of enemies.
func (w WaveDefinition) Endless() bool {
	return w.Count == 0
}
