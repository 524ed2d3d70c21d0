// internal/entity/enemy.go
package entity

import (
	"math"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/utils"
)

// Enemy — общий контракт для всех вариантов врагов
type Enemy interface {
	ID() ID
	Kind() defs.EnemyKind
	// Update advances one tick and may add projectiles to sink.
	Update(player *Player, sink ProjectileSink)
	// TakeDamage is ignored while the invincibility window is active.
	TakeDamage(amount int) bool
	ApplyDifficulty(m defs.Multipliers)

	Position() component.Position
	Bounds() component.Bounds
	Health() component.Health
	Alive() bool
	Damage() int
	Size() float64
	Facing() float64
	Phase() int
	Charging() bool
}

// NewEnemy создаёт врага нужного варианта по определению.
func NewEnemy(id ID, def defs.EnemyDefinition, x, y float64) Enemy {
	switch def.Kind {
	case defs.EnemyRanged:
		return NewRanged(id, def, x, y)
	case defs.EnemyTank:
		return NewTank(id, def, x, y)
	case defs.EnemyBoss:
		return NewBoss(id, def, x, y)
	default:
		return NewMelee(id, def, x, y)
	}
}

// base — поля и поведение, общие для всех врагов
type base struct {
	id     ID
	def    defs.EnemyDefinition
	pos    component.Position
	health component.Health
	damage int
	speed  float64
	facing float64
}

func newBase(id ID, def defs.EnemyDefinition, x, y float64) base {
	return base{
		id:     id,
		def:    def,
		pos:    component.Position{X: x, Y: y},
		health: component.NewHealth(def.Health, config.EnemyInvincibleDuration),
		damage: def.Damage,
		speed:  def.Speed,
		facing: math.Pi / 2,
	}
}

func (b *base) ID() ID { return b.id }
func (b *base) Kind() defs.EnemyKind { return b.def.Kind }
func (b *base) Position() component.Position { return b.pos }
func (b *base) Health() component.Health { return b.health }
func (b *base) Alive() bool { return b.health.Alive() }
func (b *base) Damage() int { return b.damage }
func (b *base) Size() float64 { return b.def.Size }
func (b *base) Facing() float64 { return b.facing }
func (b *base) Phase() int { return 1 }
func (b *base) Charging() bool { return false }
func (b *base) TakeDamage(amount int) bool { return b.health.TakeDamage(amount) }
func (b *base) Bounds() component.Bounds { return component.BoundsAt(b.pos, b.def.Size) }
func (b *base) touches(player *Player) bool { return b.Bounds().Overlaps(player.Bounds()) }
func (b *base) tickInvincibility() { b.health.Tick() }

// ApplyDifficulty scales max hp and damage once, right after construction.
// Both stay at least 1; hp is refilled to the new maximum.
func (b *base) ApplyDifficulty(m defs.Multipliers) {
	b.health.Rescale(max(1, int(float64(b.health.Max)*m.HP)))
	b.damage = max(1, int(float64(b.damage)*m.Damage))
}

// moveToward steers straight at the target without overshooting it.
func (b *base) moveToward(x, y float64) {
	if dx, dy, ok := utils.Direction(b.pos.X, b.pos.Y, x, y); ok {
		b.facing = math.Atan2(dy, dx)
	}
	b.pos.X, b.pos.Y = utils.StepToward(b.pos.X, b.pos.Y, x, y, b.speed)
}

// moveAway steps directly away from the point; a coincident point is a no-op.
func (b *base) moveAway(x, y float64) {
	dx, dy, ok := utils.Direction(x, y, b.pos.X, b.pos.Y)
	if !ok {
		return
	}
	b.facing = math.Atan2(-dy, -dx)
	b.pos.X += dx * b.speed
	b.pos.Y += dy * b.speed
}
