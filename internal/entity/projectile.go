// internal/entity/projectile.go
package entity

import (
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/utils"
)

// Faction — чей снаряд
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

// Projectile — летящий снаряд. Скорость задаётся один раз при создании.
type Projectile struct {
	Pos     component.Position
	Vel     component.Velocity
	Damage  int
	Size    float64
	Faction Faction
	alive   bool
}

// NewProjectile aims a projectile from (x, y) at (targetX, targetY).
// Coincident points give a projectile with zero velocity.
func NewProjectile(x, y, targetX, targetY float64, damage int, faction Faction) *Projectile {
	speed, size := config.EnemyProjectileSpeed, config.EnemyProjectileSize
	if faction == FactionPlayer {
		speed, size = config.PlayerProjectileSpeed, config.PlayerProjectileSize
	}
	dx, dy, _ := utils.Direction(x, y, targetX, targetY)
	return &Projectile{
		Pos:     component.Position{X: x, Y: y},
		Vel:     component.Velocity{DX: dx * speed, DY: dy * speed},
		Damage:  damage,
		Size:    size,
		Faction: faction,
		alive:   true,
	}
}

// Update moves the projectile one tick and kills it once it leaves the
// playfield by more than the margin.
func (p *Projectile) Update(width, height float64) {
	p.Pos.Advance(p.Vel)
	m := config.ProjectileMargin
	if p.Pos.X < -m || p.Pos.X > width+m || p.Pos.Y < -m || p.Pos.Y > height+m {
		p.alive = false
	}
}

func (p *Projectile) Bounds() component.Bounds {
	return component.BoundsAt(p.Pos, p.Size)
}

func (p *Projectile) Alive() bool { return p.alive }
func (p *Projectile) Kill() { p.alive = false }
func (p *Projectile) FromPlayer() bool { return p.Faction == FactionPlayer }

// ProjectileSink принимает новые снаряды от игрока и врагов.
type ProjectileSink interface {
	Add(p *Projectile)
}

// Projectiles — упорядоченный список живых снарядов
type Projectiles []*Projectile

func (ps *Projectiles) Add(p *Projectile) {
	*ps = append(*ps, p)
}

// Prune убирает мёртвые снаряды, сохраняя порядок.
func (ps *Projectiles) Prune() {
	kept := (*ps)[:0]
	for _, p := range *ps {
		if p.alive {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(*ps); i++ {
		(*ps)[i] = nil
	}
	*ps = kept
}
