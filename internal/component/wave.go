// internal/component/wave.go
package component

import (
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/interfaces"
)

// Spawner feeds enemies onto a route one wave at a time.
type Spawner struct {
	Route          interfaces.PathProvider
	Waves          []defs.WaveDefinition
	WaveIndex      int     // Индекс в списке волн
	Number         int     // Номер волны, начиная с 1
	EnemiesToSpawn int     // Сколько осталось; -1 для бесконечной волны
	SpawnTimer     float64 // Время до следующего появления
	SpawnInterval  float64
	Alive          int // Сколько врагов текущей волны ещё на поле
	Active         bool
}

// Wave returns the definition of the wave being spawned.
func (s *Spawner) Wave() defs.WaveDefinition {
	return s.Waves[s.WaveIndex]
}
