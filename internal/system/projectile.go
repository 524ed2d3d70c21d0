// internal/system/projectile.go
package system

import "go-survivor/internal/entity"

// AdvanceProjectiles убирает снаряды, погибшие в прошлом тике, и двигает
// остальные. Вылетевшие за поле помечаются мёртвыми.
func AdvanceProjectiles(projectiles *entity.Projectiles, width, height float64) {
	projectiles.Prune()
	for _, p := range *projectiles {
		p.Update(width, height)
	}
}
