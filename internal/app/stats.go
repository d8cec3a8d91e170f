// internal/app/stats.go
package app

import (
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/interfaces"
)

// Stats accumulates what happened during a run.
type Stats struct {
	Wave         int
	Spawned      int
	Kills        int
	Leaks        int
	Shots        int
	Hits         int
	Expired      int
	Damage       int
	PoisonDamage int
}

// GameEventListener обрабатывает события для статистики игры
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	s := &l.game.Stats
	switch e.Type {
	case event.WaveStarted:
		if data, ok := e.Data.(event.WaveData); ok {
			s.Wave = data.Number
			l.game.log.Debug("wave started", "wave", data.Number)
		}
	case event.WaveEnded:
		if data, ok := e.Data.(event.WaveData); ok {
			l.game.log.Info("wave cleared", "wave", data.Number, "kills", s.Kills, "leaks", s.Leaks)
		}
	case event.EnemySpawned:
		s.Spawned++
	case event.EnemyDestroyed:
		s.Kills++
	case event.EnemyLeaked:
		s.Leaks++
	case event.ProjectileFired:
		s.Shots++
	case event.ProjectileHit:
		s.Hits++
	case event.ProjectileExpired:
		s.Expired++
	case event.DamageDealt:
		if data, ok := e.Data.(event.DamageData); ok {
			s.Damage += data.Amount
			if data.Kind == interfaces.DamagePoison {
				s.PoisonDamage += data.Amount
			}
		}
	}
}
