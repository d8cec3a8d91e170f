// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-tower-sim/internal/defs"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the generator was created with.
func (s *PRNGService) Seed() int64 { return s.seed }

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseWeighted выполняет взвешенный случайный выбор из таблицы спавна
// и возвращает ID врага. Записи с неположительным весом не выбираются.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		if entry.Weight > 0 {
			totalWeight += entry.Weight
		}
	}
	if totalWeight <= 0 {
		return entries[0].EnemyID
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if entry.Weight <= 0 {
			continue
		}
		if upto+entry.Weight > r {
			return entry.EnemyID
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].EnemyID
}
