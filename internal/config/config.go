// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1216
	ScreenHeight = 832
	TPS          = 60 // тиков симуляции в секунду
	MaxDeltaTime = 0.06

	ProjectileMargin = 20.0 // запас за краем поля, после которого снаряд умирает
	SpawnEdgeMargin  = 60.0 // насколько за краем экрана появляются враги
	BossSpawnY       = -80.0

	InitialSpawnInterval = 120 // тиков
	MinSpawnInterval     = 40
	SpawnIntervalStep    = 10 // уменьшение интервала на каждую волну
	InterWaveDelay       = 180
	BaseEnemiesPerWave   = 8
	EnemiesPerWaveStep   = 3
	FinalWave            = 5

	ScorePerKill = 10

	PlayerMaxHP              = 100
	PlayerDamage             = 100
	PlayerAttackRange        = 300.0
	PlayerAttackRate         = 20 // тиков между выстрелами
	PlayerSize               = 32.0
	PlayerStep               = 5.0 // пикселей за тик на каждый нажатый флаг
	PlayerInvincibleDuration = 60
	EnemyInvincibleDuration  = 10

	PlayerProjectileSpeed = 10.0
	PlayerProjectileSize  = 8.0
	EnemyProjectileSpeed  = 5.0
	EnemyProjectileSize   = 10.0

	TextCharWidth = 7
	TextOffsetY   = 4
)

var (
	BackgroundColor  = color.RGBA{18, 18, 28, 255}
	GridColor        = color.RGBA{30, 30, 44, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	TextDimColor     = color.RGBA{150, 150, 165, 255}
	PlayerColor      = color.RGBA{80, 200, 120, 255}
	PlayerStroke     = color.RGBA{30, 100, 60, 255}
	FlashColor       = color.RGBA{255, 255, 255, 200}
	RangeColor       = color.RGBA{255, 255, 255, 35}
	MeleeColor       = color.RGBA{220, 60, 60, 255}
	RangedColor      = color.RGBA{0, 180, 220, 255}
	TankColor        = color.RGBA{120, 90, 160, 255}
	BossColor        = color.RGBA{200, 100, 0, 255}
	BossChargeColor  = color.RGBA{255, 200, 0, 255}
	BossAuraColor    = color.RGBA{200, 100, 0, 60}
	BossRageColor    = color.RGBA{255, 80, 0, 100}
	PlayerShotColor  = color.RGBA{255, 220, 0, 255}
	EnemyShotColor   = color.RGBA{255, 60, 60, 255}
	HPBarBackColor   = color.RGBA{40, 40, 40, 255}
	HPHighColor      = color.RGBA{50, 200, 80, 255}
	HPMidColor       = color.RGBA{230, 200, 40, 255}
	HPLowColor       = color.RGBA{220, 50, 50, 255}
	ButtonColor      = color.RGBA{60, 70, 100, 230}
	ButtonHoverColor = color.RGBA{90, 110, 160, 240}
	ButtonQuitColor  = color.RGBA{150, 50, 50, 230}
	OverlayColor     = color.RGBA{0, 0, 0, 170}
	StrokeWidth      = float32(2.0)
)

// HealthColor — цвет полосы здоровья по доле оставшегося: >50% зелёный, >25% жёлтый, иначе красный.
func HealthColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.5:
		return HPHighColor
	case ratio > 0.25:
		return HPMidColor
	}
	return HPLowColor
}
