// internal/app/stats.go
package app

import (
	"go-survivor/internal/defs"
	"go-survivor/internal/event"
)

// RunStats собирает статистику забега из событий для экрана итогов.
type RunStats struct {
	Kills       map[defs.EnemyKind]int
	ShotsFired  int
	DamageTaken int
	WavesClear  int
}

func (s *RunStats) Reset() {
	*s = RunStats{Kills: make(map[defs.EnemyKind]int)}
}

func (s *RunStats) OnEvent(e event.Event) {
	if s.Kills == nil {
		s.Kills = make(map[defs.EnemyKind]int)
	}
	switch e.Type {
	case event.EnemyKilled:
		s.Kills[e.Data.(event.EnemyData).Kind]++
	case event.ShotFired:
		s.ShotsFired++
	case event.PlayerHit:
		s.DamageTaken += e.Data.(event.PlayerHitData).Damage
	case event.WaveCleared:
		s.WavesClear++
	}
}

// TotalKills — сколько врагов убито за забег
func (s *RunStats) TotalKills() int {
	n := 0
	for _, k := range s.Kills {
		n += k
	}
	return n
}
