// internal/defs/waves.go
package defs

// SpawnWeight — вес типа врага в случайном выборе
type SpawnWeight struct {
	Kind   EnemyKind
	Weight int
}

var (
	firstWaveComposition = []SpawnWeight{{EnemyMelee, 100}}
	earlyWaveComposition = []SpawnWeight{{EnemyMelee, 70}, {EnemyRanged, 30}}
	lateWaveComposition  = []SpawnWeight{{EnemyMelee, 45}, {EnemyRanged, 30}, {EnemyTank, 25}}
)

// WaveComposition возвращает веса обычных врагов для номера волны.
// Волна 1 — только ближний бой, 2-3 — добавляются стрелки, с 4-й — танки.
func WaveComposition(wave int) []SpawnWeight {
	switch {
	case wave <= 1:
		return firstWaveComposition
	case wave <= 3:
		return earlyWaveComposition
	default:
		return lateWaveComposition
	}
}
