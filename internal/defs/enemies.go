// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
// Fields that a kind does not use stay zero.
type EnemyDefinition struct {
	Kind       EnemyKind `json:"-"`
	Name       string    `json:"name"`
	Shape      string    `json:"shape"`
	Health     int       `json:"health"`
	Damage     int       `json:"damage"`
	Speed      float64   `json:"speed"`
	Size       float64   `json:"size"`
	AttackRate int       `json:"attack_rate"` // кулдаун контактной атаки или темп стрельбы, в тиках

	// Дальний бой
	FirstShotDelay    int     `json:"first_shot_delay,omitempty"`
	PreferredDistance float64 `json:"preferred_distance,omitempty"`
	DistanceMargin    float64 `json:"distance_margin,omitempty"`

	// Босс
	ProjectileDamage int     `json:"projectile_damage,omitempty"`
	Phase1Shots      int     `json:"phase1_shots,omitempty"`
	Phase1ShotRate   int     `json:"phase1_shot_rate,omitempty"`
	Phase2Shots      int     `json:"phase2_shots,omitempty"`
	Phase2ShotRate   int     `json:"phase2_shot_rate,omitempty"`
	Phase2Speed      float64 `json:"phase2_speed,omitempty"`
	ChargeSpeed      float64 `json:"charge_speed,omitempty"`
	ChargeDuration   int     `json:"charge_duration,omitempty"`
	ChargeCooldown   int     `json:"charge_cooldown,omitempty"`
	ChargeMultiplier int     `json:"charge_multiplier,omitempty"`
}

// EnemyLibrary — таблица определений по типу врага.
type EnemyLibrary map[EnemyKind]EnemyDefinition

// DefaultEnemyLibrary returns a fresh copy of the built-in stat table.
func DefaultEnemyLibrary() EnemyLibrary {
	return EnemyLibrary{
		EnemyMelee: {
			Kind: EnemyMelee, Name: "Melee", Shape: "Triangle",
			Health: 40, Damage: 10, Speed: 2.0, Size: 28, AttackRate: 60,
		},
		EnemyRanged: {
			Kind: EnemyRanged, Name: "Ranged", Shape: "Diamond",
			Health: 25, Damage: 8, Speed: 1.5, Size: 24, AttackRate: 120,
			FirstShotDelay: 60, PreferredDistance: 300, DistanceMargin: 30,
		},
		EnemyTank: {
			Kind: EnemyTank, Name: "Tank", Shape: "Hexagon",
			Health: 200, Damage: 20, Speed: 0.8, Size: 44, AttackRate: 90,
		},
		EnemyBoss: {
			Kind: EnemyBoss, Name: "Boss", Shape: "Star",
			Health: 1000, Damage: 25, Speed: 1.2, Size: 70, AttackRate: 60,
			FirstShotDelay:   60,
			ProjectileDamage: 12,
			Phase1Shots:      4,
			Phase1ShotRate:   120,
			Phase2Shots:      8,
			Phase2ShotRate:   80,
			Phase2Speed:      1.8,
			ChargeSpeed:      9,
			ChargeDuration:   25,
			ChargeCooldown:   200,
			ChargeMultiplier: 2,
		},
	}
}

// Get возвращает определение; для неизвестного типа — определение ближнего боя.
func (l EnemyLibrary) Get(kind EnemyKind) EnemyDefinition {
	if def, ok := l[kind]; ok {
		return def
	}
	return DefaultEnemyLibrary()[EnemyMelee]
}

// overlay copies every non-zero field of over onto base.
func overlay(base, over EnemyDefinition) EnemyDefinition {
	if over.Name != "" {
		base.Name = over.Name
	}
	if over.Shape != "" {
		base.Shape = over.Shape
	}
	setInt(&base.Health, over.Health)
	setInt(&base.Damage, over.Damage)
	setFloat(&base.Speed, over.Speed)
	setFloat(&base.Size, over.Size)
	setInt(&base.AttackRate, over.AttackRate)
	setInt(&base.FirstShotDelay, over.FirstShotDelay)
	setFloat(&base.PreferredDistance, over.PreferredDistance)
	setFloat(&base.DistanceMargin, over.DistanceMargin)
	setInt(&base.ProjectileDamage, over.ProjectileDamage)
	setInt(&base.Phase1Shots, over.Phase1Shots)
	setInt(&base.Phase1ShotRate, over.Phase1ShotRate)
	setInt(&base.Phase2Shots, over.Phase2Shots)
	setInt(&base.Phase2ShotRate, over.Phase2ShotRate)
	setFloat(&base.Phase2Speed, over.Phase2Speed)
	setFloat(&base.ChargeSpeed, over.ChargeSpeed)
	setInt(&base.ChargeDuration, over.ChargeDuration)
	setInt(&base.ChargeCooldown, over.ChargeCooldown)
	setInt(&base.ChargeMultiplier, over.ChargeMultiplier)
	return base
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
