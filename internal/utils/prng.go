// internal/utils/prng.go
package utils

import (
	"go-survivor/internal/defs"
	"math/rand"
	"time"
)

// PRNGService — обёртка над генератором случайных чисел, чтобы один сид
// воспроизводил весь забег (состав волн и точки появления).
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

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseWeighted выполняет взвешенный случайный выбор типа врага.
// Суммирует веса, берёт число в этом диапазоне и находит элемент,
// в чей отрезок оно попало.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnWeight) defs.EnemyKind {
	if len(entries) == 0 {
		return defs.EnemyMelee
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].Kind
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.Kind
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].Kind
}
