// internal/entity/chaser.go
package entity

import (
	"go-survivor/internal/component"
	"go-survivor/internal/defs"
)

// chaser идёт прямо на игрока и бьёт при касании с кулдауном.
type chaser struct {
	base
	attack component.Cooldown
}

func (c *chaser) Update(player *Player, _ ProjectileSink) {
	c.tickInvincibility()
	c.moveToward(player.Pos.X, player.Pos.Y)

	c.attack.Tick()
	if c.attack.Ready() && c.touches(player) {
		player.TakeDamage(c.damage)
		c.attack.Reset(c.def.AttackRate)
	}
}

// Melee — быстрый враг ближнего боя
type Melee struct {
	chaser
}

func NewMelee(id ID, def defs.EnemyDefinition, x, y float64) *Melee {
	def.Kind = defs.EnemyMelee
	return &Melee{chaser{base: newBase(id, def, x, y)}}
}

// Tank — медленный и живучий, бьёт сильнее и реже
type Tank struct {
	chaser
}

func NewTank(id ID, def defs.EnemyDefinition, x, y float64) *Tank {
	def.Kind = defs.EnemyTank
	return &Tank{chaser{base: newBase(id, def, x, y)}}
}
