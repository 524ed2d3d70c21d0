// internal/system/combat.go
package system

import "go-survivor/internal/entity"

// ResolveProjectileHits checks every live player projectile against the
// live enemies in list order. The first overlap takes the damage and
// consumes the projectile, so one projectile hits at most one enemy.
// Returns the enemies this sweep killed, in the order they died.
func ResolveProjectileHits(projectiles []*entity.Projectile, enemies []entity.Enemy) []entity.Enemy {
	var killed []entity.Enemy
	for _, p := range projectiles {
		if !p.FromPlayer() || !p.Alive() {
			continue
		}
		bounds := p.Bounds()
		for _, e := range enemies {
			if !e.Alive() {
				continue
			}
			if !bounds.Overlaps(e.Bounds()) {
				continue
			}
			e.TakeDamage(p.Damage)
			p.Kill()
			if !e.Alive() {
				killed = append(killed, e)
			}
			break
		}
	}
	return killed
}
