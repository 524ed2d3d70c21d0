// internal/entity/ranged.go
package entity

import (
	"go-survivor/internal/component"
	"go-survivor/internal/defs"
	"go-survivor/internal/utils"
)

// Ranged держит дистанцию и стреляет в текущую позицию игрока.
type Ranged struct {
	base
	shoot component.Cooldown
}

func NewRanged(id ID, def defs.EnemyDefinition, x, y float64) *Ranged {
	def.Kind = defs.EnemyRanged
	r := &Ranged{base: newBase(id, def, x, y)}
	r.shoot.Reset(def.FirstShotDelay)
	return r
}

func (r *Ranged) Update(player *Player, sink ProjectileSink) {
	r.tickInvincibility()

	dist := utils.Distance(r.pos.X, r.pos.Y, player.Pos.X, player.Pos.Y)
	switch {
	case dist < r.def.PreferredDistance-r.def.DistanceMargin:
		r.moveAway(player.Pos.X, player.Pos.Y)
	case dist > r.def.PreferredDistance+r.def.DistanceMargin:
		r.moveToward(player.Pos.X, player.Pos.Y)
	}

	r.shoot.Tick()
	if r.shoot.Ready() {
		sink.Add(NewProjectile(r.pos.X, r.pos.Y, player.Pos.X, player.Pos.Y, r.damage, FactionEnemy))
		r.shoot.Reset(r.def.AttackRate)
	}
}
