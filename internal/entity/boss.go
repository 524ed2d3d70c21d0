// internal/entity/boss.go
package entity

import (
	"math"

	"go-survivor/internal/component"
	"go-survivor/internal/defs"
	"go-survivor/internal/utils"
)

// BossPhase — внешнее состояние босса. Переход 1 -> 2 необратим.
type BossPhase int

const (
	BossPhase1 BossPhase = 1
	BossPhase2 BossPhase = 2
)

// bossMode — вложенное состояние движения
type bossMode int

const (
	bossSeeking bossMode = iota
	bossCharging
)

// Boss — финальный враг с двумя фазами.
// Фаза 1: идёт к игроку, радиальные залпы, удар при касании.
// Фаза 2 (hp <= половины): залпы плотнее и чаще, плюс рывки в сторону игрока.
type Boss struct {
	base
	phase    BossPhase
	mode     bossMode
	Rotation float64 // для отрисовки звезды

	chargeDX, chargeDY float64
	chargeTimer        int

	attack component.Cooldown
	shoot  component.Cooldown
	charge component.Cooldown
}

func NewBoss(id ID, def defs.EnemyDefinition, x, y float64) *Boss {
	def.Kind = defs.EnemyBoss
	b := &Boss{base: newBase(id, def, x, y), phase: BossPhase1}
	b.shoot.Reset(def.FirstShotDelay)
	return b
}

func (b *Boss) Phase() int     { return int(b.phase) }
func (b *Boss) Charging() bool { return b.mode == bossCharging }

func (b *Boss) Update(player *Player, sink ProjectileSink) {
	b.tickInvincibility()
	if b.phase == BossPhase1 && b.health.Value*2 <= b.health.Max {
		b.enterPhase2()
	}
	b.Rotation += 0.03

	if b.mode == bossCharging {
		b.pos.X += b.chargeDX
		b.pos.Y += b.chargeDY
		b.chargeTimer--
		if b.touches(player) {
			// рывок обрывается при первом касании
			player.TakeDamage(b.damage * b.def.ChargeMultiplier)
			b.endCharge()
		}
		if b.chargeTimer <= 0 {
			b.endCharge()
		}
	} else {
		b.moveToward(player.Pos.X, player.Pos.Y)
	}

	b.attack.Tick()
	b.shoot.Tick()
	b.charge.Tick()

	if b.attack.Ready() && b.touches(player) {
		player.TakeDamage(b.damage)
		b.attack.Reset(b.def.AttackRate)
	}

	if b.shoot.Ready() {
		b.fireRadial(sink, b.volleySize())
		b.shoot.Reset(b.volleyRate())
	}

	if b.phase == BossPhase2 && b.mode == bossSeeking && b.charge.Ready() {
		b.startCharge(player)
	}
}

func (b *Boss) enterPhase2() {
	b.phase = BossPhase2
	b.speed = b.def.Phase2Speed
}

func (b *Boss) volleySize() int {
	if b.phase == BossPhase2 {
		return b.def.Phase2Shots
	}
	return b.def.Phase1Shots
}

func (b *Boss) volleyRate() int {
	if b.phase == BossPhase2 {
		return b.def.Phase2ShotRate
	}
	return b.def.Phase1ShotRate
}

// fireRadial выпускает count снарядов с равным шагом по кругу.
func (b *Boss) fireRadial(sink ProjectileSink, count int) {
	if count <= 0 {
		return
	}
	step := 2 * math.Pi / float64(count)
	for i := 0; i < count; i++ {
		angle := step * float64(i)
		tx := b.pos.X + math.Cos(angle)*200
		ty := b.pos.Y + math.Sin(angle)*200
		sink.Add(NewProjectile(b.pos.X, b.pos.Y, tx, ty, b.def.ProjectileDamage, FactionEnemy))
	}
}

// startCharge freezes the direction towards the player at trigger time.
func (b *Boss) startCharge(player *Player) {
	dx, dy, ok := utils.Direction(b.pos.X, b.pos.Y, player.Pos.X, player.Pos.Y)
	if ok {
		b.facing = math.Atan2(dy, dx)
	}
	b.chargeDX = dx * b.def.ChargeSpeed
	b.chargeDY = dy * b.def.ChargeSpeed
	b.chargeTimer = b.def.ChargeDuration
	b.mode = bossCharging
	b.charge.Reset(b.def.ChargeCooldown)
}

func (b *Boss) endCharge() {
	b.mode = bossSeeking
	b.chargeTimer = 0
}
