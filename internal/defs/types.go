// internal/defs/types.go
package defs

// EnemyKind — тип врага
type EnemyKind string

const (
	EnemyMelee  EnemyKind = "MELEE"
	EnemyRanged EnemyKind = "RANGED"
	EnemyTank   EnemyKind = "TANK"
	EnemyBoss   EnemyKind = "BOSS"
)

// EnemyKinds lists every kind in the order the info screen shows them.
var EnemyKinds = []EnemyKind{EnemyMelee, EnemyRanged, EnemyTank, EnemyBoss}

// Valid сообщает, известен ли тип.
func (k EnemyKind) Valid() bool {
	switch k {
	case EnemyMelee, EnemyRanged, EnemyTank, EnemyBoss:
		return true
	}
	return false
}
