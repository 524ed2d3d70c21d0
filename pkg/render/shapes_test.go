package render

import (
	"image/color"
	"math"
	"testing"

	"go-survivor/internal/config"
	"go-survivor/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dist(p Point, x, y float64) float64 {
	return math.Hypot(p.X-x, p.Y-y)
}

func TestShapeVertexCounts(t *testing.T) {
	assert.Len(t, ShapePoints(ShapeTriangle, 0, 0, 20, 0), 3)
	assert.Len(t, ShapePoints(ShapeDiamond, 0, 0, 20, 0), 4)
	assert.Len(t, ShapePoints(ShapeHexagon, 0, 0, 20, 0), 6)
	assert.Len(t, ShapePoints(ShapeStar, 0, 0, 20, 0), 16)
	assert.Len(t, ShapePoints("Blob", 0, 0, 20, 0), 4)
}

func TestRegularShapesOnCircle(t *testing.T) {
	for _, shape := range []string{ShapeTriangle, ShapeDiamond, ShapeHexagon} {
		for _, p := range ShapePoints(shape, 100, 50, 40, 0.3) {
			assert.InDelta(t, 20, dist(p, 100, 50), 1e-9, shape)
		}
	}
}

func TestTrianglePointsAlongFacing(t *testing.T) {
	pts := ShapePoints(ShapeTriangle, 0, 0, 20, math.Pi/2)
	assert.InDelta(t, 0, pts[0].X, 1e-9)
	assert.InDelta(t, 10, pts[0].Y, 1e-9)
}

func TestStarAlternatesRadius(t *testing.T) {
	pts := Star(8, 0, 0, 10, 5, 0)
	require.Len(t, pts, 16)
	for i, p := range pts {
		want := 10.0
		if i%2 == 1 {
			want = 5
		}
		assert.InDelta(t, want, dist(p, 0, 0), 1e-9)
	}
}

func TestFallbackSquareCoversSize(t *testing.T) {
	pts := ShapePoints("unknown", 0, 0, 20, 0)
	for _, p := range pts {
		assert.InDelta(t, 10, math.Abs(p.X), 1e-9)
		assert.InDelta(t, 10, math.Abs(p.Y), 1e-9)
	}
}

func TestArrowTipFollowsAngle(t *testing.T) {
	pts := Arrow(10, 10, 32, 0)
	assert.InDelta(t, 26, pts[0].X, 1e-9)
	assert.InDelta(t, 10, pts[0].Y, 1e-9)

	pts = Arrow(10, 10, 32, -math.Pi/2)
	assert.InDelta(t, 10, pts[0].X, 1e-9)
	assert.InDelta(t, -6, pts[0].Y, 1e-9)
}

func TestDashSegments(t *testing.T) {
	segs := DashSegments(0, 0, 300, 72)
	assert.Len(t, segs, 36)
	for _, s := range segs {
		assert.InDelta(t, 300, dist(s[0], 0, 0), 1e-9)
		assert.InDelta(t, 300, dist(s[1], 0, 0), 1e-9)
	}
}

func TestColors(t *testing.T) {
	assert.Equal(t, color.RGBA{50, 25, 10, 200}, DarkenColor(color.RGBA{100, 50, 20, 200}))
	assert.Equal(t, uint8(7), WithAlpha(config.MeleeColor, 7).A)
	assert.Equal(t, config.TankColor, KindColor(defs.EnemyTank))
	assert.Equal(t, config.MeleeColor, KindColor(defs.EnemyKind("GHOST")))
}

func TestBossAuraPulses(t *testing.T) {
	calm := BossAura(1, 0)
	assert.Equal(t, config.BossAuraColor.R, calm.R)
	assert.Equal(t, uint8(float64(config.BossAuraColor.A)*0.75), calm.A)

	peak := BossAura(1, math.Pi/8)
	assert.Equal(t, config.BossAuraColor.A, peak.A)

	rage := BossAura(2, math.Pi/8)
	assert.Equal(t, config.BossRageColor, rage)
	for r := 0.0; r < 2*math.Pi; r += 0.1 {
		assert.LessOrEqual(t, BossAura(2, r).A, config.BossRageColor.A)
	}
}
