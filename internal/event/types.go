// internal/event/types.go
package event

import "go-survivor/internal/defs"

const (
	RunStarted       EventType = "RunStarted"
	WaveStarted      EventType = "WaveStarted"      // Волна началась
	WaveCleared      EventType = "WaveCleared"      // Поле зачищено, пошла пауза
	EnemySpawned     EventType = "EnemySpawned"
	EnemyKilled      EventType = "EnemyKilled"      // Враг уничтожен снарядом игрока
	BossSpawned      EventType = "BossSpawned"
	BossPhaseChanged EventType = "BossPhaseChanged"
	BossDefeated     EventType = "BossDefeated"
	ShotFired        EventType = "ShotFired"
	PlayerHit        EventType = "PlayerHit"
	PlayerDied       EventType = "PlayerDied"
)

// RunData — данные RunStarted
type RunData struct {
	RunID      string
	Difficulty defs.Difficulty
	Seed       int64
}

// WaveData — данные WaveStarted и WaveCleared
type WaveData struct {
	Wave       int
	MaxEnemies int
}

// EnemyData — данные событий про конкретного врага
type EnemyData struct {
	ID    uint64
	Kind  defs.EnemyKind
	X, Y  float64
	Phase int
}

// PlayerHitData — сколько здоровья игрок потерял за тик
type PlayerHitData struct {
	Damage int
	HP     int
}

// ScoreData — итог забега для PlayerDied и BossDefeated
type ScoreData struct {
	Score int
	Ticks int
	Wave  int
}
