// internal/entity/player.go
package entity

import (
	"math"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/utils"
)

// MoveInput — четыре независимых флага движения
type MoveInput struct {
	Up, Down, Left, Right bool
}

// Player — персонаж игрока. Один на процесс, переинициализируется через Reset.
type Player struct {
	Pos         component.Position
	Health      component.Health
	Damage      int
	AttackRange float64
	AttackRate  int
	Size        float64
	AimAngle    float64

	attack component.Cooldown
}

func NewPlayer() *Player {
	p := &Player{}
	p.Reset()
	return p
}

// Reset возвращает игрока в центр с полным здоровьем.
func (p *Player) Reset() {
	p.Pos = component.Position{X: config.ScreenWidth / 2.0, Y: config.ScreenHeight / 2.0}
	p.Health = component.NewHealth(config.PlayerMaxHP, config.PlayerInvincibleDuration)
	p.Damage = config.PlayerDamage
	p.AttackRange = config.PlayerAttackRange
	p.AttackRate = config.PlayerAttackRate
	p.Size = config.PlayerSize
	p.AimAngle = -math.Pi / 2
	p.attack = component.Cooldown{}
}

func (p *Player) Alive() bool { return p.Health.Alive() }

func (p *Player) Bounds() component.Bounds {
	return component.BoundsAt(p.Pos, p.Size)
}

// TakeDamage is ignored during the post-hit invincibility window.
func (p *Player) TakeDamage(amount int) bool {
	return p.Health.TakeDamage(amount)
}

// Update runs one tick: movement, auto-fire, then damage from enemy
// projectiles. Returns whether a shot was fired.
func (p *Player) Update(in MoveInput, enemies []Enemy, projectiles *Projectiles) bool {
	p.move(in)

	fired := false
	p.attack.Tick()
	if p.attack.Ready() {
		if target := p.FindTarget(enemies); target != nil {
			p.fireAt(target.Position(), projectiles)
			fired = true
		}
	}

	p.Health.Tick()
	bounds := p.Bounds()
	for _, proj := range *projectiles {
		if proj.FromPlayer() || !proj.Alive() {
			continue
		}
		if proj.Bounds().Overlaps(bounds) {
			// снаряд поглощается даже во время неуязвимости
			p.TakeDamage(proj.Damage)
			proj.Kill()
		}
	}
	return fired
}

// move складывает флаги без нормализации: по диагонали игрок быстрее.
func (p *Player) move(in MoveInput) {
	if in.Up {
		p.Pos.Y -= config.PlayerStep
	}
	if in.Down {
		p.Pos.Y += config.PlayerStep
	}
	if in.Left {
		p.Pos.X -= config.PlayerStep
	}
	if in.Right {
		p.Pos.X += config.PlayerStep
	}
	half := p.Size / 2
	p.Pos.X = utils.Clamp(p.Pos.X, half, config.ScreenWidth-half)
	p.Pos.Y = utils.Clamp(p.Pos.Y, half, config.ScreenHeight-half)
}

// FindTarget returns the living enemy strictly closest to the player and
// strictly inside the attack range. Ties keep the first one in list order.
func (p *Player) FindTarget(enemies []Enemy) Enemy {
	var closest Enemy
	minDist := p.AttackRange
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		pos := e.Position()
		dist := utils.Distance(p.Pos.X, p.Pos.Y, pos.X, pos.Y)
		if dist < minDist {
			minDist = dist
			closest = e
		}
	}
	return closest
}

// fireAt целится в текущую позицию цели. Если цель совпала с игроком,
// угол прицела не меняется, а снаряд остаётся на месте.
func (p *Player) fireAt(target component.Position, sink ProjectileSink) {
	if dx, dy, ok := utils.Direction(p.Pos.X, p.Pos.Y, target.X, target.Y); ok {
		p.AimAngle = math.Atan2(dy, dx)
	}
	sink.Add(NewProjectile(p.Pos.X, p.Pos.Y, target.X, target.Y, p.Damage, FactionPlayer))
	p.attack.Reset(p.AttackRate)
}
