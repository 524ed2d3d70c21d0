package entity

import (
	"math"
	"testing"

	"go-survivor/internal/config"
	"go-survivor/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerReset(t *testing.T) {
	p := NewPlayer()
	p.Pos.X = 10
	p.TakeDamage(100)
	require.False(t, p.Alive())

	p.Reset()
	assert.True(t, p.Alive())
	assert.Equal(t, config.PlayerMaxHP, p.Health.Value)
	assert.Equal(t, config.ScreenWidth/2.0, p.Pos.X)
	assert.Equal(t, config.ScreenHeight/2.0, p.Pos.Y)
	assert.Equal(t, -math.Pi/2, p.AimAngle)
	assert.Zero(t, p.Health.Invincible)
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name   string
		in     MoveInput
		dx, dy float64
	}{
		{"idle", MoveInput{}, 0, 0},
		{"up", MoveInput{Up: true}, 0, -5},
		{"left", MoveInput{Left: true}, -5, 0},
		{"diagonal sums both axes", MoveInput{Up: true, Right: true}, 5, -5},
		{"opposite flags cancel", MoveInput{Left: true, Right: true}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer()
			x, y := p.Pos.X, p.Pos.Y
			p.Update(tt.in, nil, &Projectiles{})
			assert.Equal(t, x+tt.dx, p.Pos.X)
			assert.Equal(t, y+tt.dy, p.Pos.Y)
		})
	}
}

func TestPlayerStaysOnScreen(t *testing.T) {
	p := newTestPlayer(17, config.ScreenHeight-17)
	p.Update(MoveInput{Left: true, Down: true}, nil, &Projectiles{})
	assert.Equal(t, config.PlayerSize/2, p.Pos.X)
	assert.Equal(t, config.ScreenHeight-config.PlayerSize/2, p.Pos.Y)
}

func TestFindTargetIsStrictlyInsideRange(t *testing.T) {
	lib := defs.DefaultEnemyLibrary()
	p := newTestPlayer(500, 400)
	atEdge := NewMelee(1, lib.Get(defs.EnemyMelee), 500+config.PlayerAttackRange, 400)
	inside := NewMelee(2, lib.Get(defs.EnemyMelee), 500, 400-config.PlayerAttackRange+1)

	assert.Nil(t, p.FindTarget([]Enemy{atEdge}))
	assert.Same(t, inside, p.FindTarget([]Enemy{atEdge, inside}))
}

func TestFindTargetTieKeepsListOrder(t *testing.T) {
	lib := defs.DefaultEnemyLibrary()
	p := newTestPlayer(500, 400)
	first := NewMelee(1, lib.Get(defs.EnemyMelee), 600, 400)
	second := NewMelee(2, lib.Get(defs.EnemyMelee), 400, 400)
	further := NewMelee(3, lib.Get(defs.EnemyMelee), 700, 400)

	assert.Same(t, first, p.FindTarget([]Enemy{further, first, second}))
	assert.Same(t, second, p.FindTarget([]Enemy{further, second, first}))
}

func TestFindTargetSkipsDead(t *testing.T) {
	lib := defs.DefaultEnemyLibrary()
	p := newTestPlayer(500, 400)
	dead := NewMelee(1, lib.Get(defs.EnemyMelee), 510, 400)
	dead.TakeDamage(1000)
	alive := NewMelee(2, lib.Get(defs.EnemyMelee), 600, 400)

	assert.Same(t, alive, p.FindTarget([]Enemy{dead, alive}))
}

func TestPlayerAutoFireCadence(t *testing.T) {
	lib := defs.DefaultEnemyLibrary()
	p := newTestPlayer(500, 400)
	var shots Projectiles

	// no target: cooldown stays untouched
	for i := 0; i < 5; i++ {
		assert.False(t, p.Update(MoveInput{}, nil, &shots))
	}
	require.Empty(t, shots)

	target := NewMelee(1, lib.Get(defs.EnemyMelee), 500, 200)
	enemies := []Enemy{target}
	require.True(t, p.Update(MoveInput{}, enemies, &shots), "fires as soon as a target appears")
	require.Len(t, shots, 1)
	assert.True(t, shots[0].FromPlayer())
	assert.Equal(t, config.PlayerDamage, shots[0].Damage)
	assert.InDelta(t, -config.PlayerProjectileSpeed, shots[0].Vel.DY, 1e-9)
	assert.InDelta(t, -math.Pi/2, p.AimAngle, 1e-9)

	for i := 1; i < config.PlayerAttackRate; i++ {
		assert.False(t, p.Update(MoveInput{}, enemies, &shots))
	}
	assert.True(t, p.Update(MoveInput{}, enemies, &shots))
	assert.Len(t, shots, 2)
}

func TestPlayerAimFollowsTarget(t *testing.T) {
	lib := defs.DefaultEnemyLibrary()
	p := newTestPlayer(500, 400)
	target := NewMelee(1, lib.Get(defs.EnemyMelee), 600, 400)
	p.Update(MoveInput{}, []Enemy{target}, &Projectiles{})
	assert.InDelta(t, 0, p.AimAngle, 1e-9)
}

func TestEnemyProjectileConsumedDuringInvincibility(t *testing.T) {
	p := newTestPlayer(500, 400)
	var shots Projectiles
	shots.Add(NewProjectile(500, 400, 600, 400, 8, FactionEnemy))
	shots.Add(NewProjectile(505, 400, 600, 400, 8, FactionEnemy))
	mine := NewProjectile(500, 400, 600, 400, 100, FactionPlayer)
	shots.Add(mine)

	p.Update(MoveInput{}, nil, &shots)

	assert.Equal(t, 92, p.Health.Value, "second hit lands inside the invincibility window")
	assert.False(t, shots[0].Alive())
	assert.False(t, shots[1].Alive())
	assert.True(t, mine.Alive(), "own projectiles never hurt the player")
}

func TestPlayerDiesAtZero(t *testing.T) {
	p := NewPlayer()
	p.TakeDamage(250)
	assert.Equal(t, 0, p.Health.Value)
	assert.False(t, p.Alive())
}
