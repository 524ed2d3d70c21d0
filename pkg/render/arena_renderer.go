// pkg/render/arena_renderer.go
package render

import (
	"image/color"
	"math"

	"go-survivor/internal/app"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	gridStep      = 64
	aimSmoothing  = 0.25
	rangeDashes   = 72
	enemyBarH     = 4
	enemyBarGap   = 8
	bossAuraScale = 0.8
)

// ArenaRenderer рисует поле, снаряды, врагов и игрока.
type ArenaRenderer struct {
	library    defs.EnemyLibrary
	fillImg    *ebiten.Image
	arenaImage *ebiten.Image
	fillVs     []ebiten.Vertex
	fillIs     []uint16
	strokeVs   []ebiten.Vertex
	strokeIs   []uint16
	displayAim float64
}

func NewArenaRenderer(library defs.EnemyLibrary) *ArenaRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &ArenaRenderer{
		library:    library,
		fillImg:    fillImg,
		arenaImage: ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
		fillVs:     make([]ebiten.Vertex, 0, 64),
		fillIs:     make([]uint16, 0, 96),
		strokeVs:   make([]ebiten.Vertex, 0, 128),
		strokeIs:   make([]uint16, 0, 192),
		displayAim: -math.Pi / 2,
	}

	// Отрисовываем фон один раз при инициализации
	r.RenderArenaImage()
	return r
}

// RenderArenaImage создаёт предрендеренное изображение фона с сеткой
func (r *ArenaRenderer) RenderArenaImage() {
	r.arenaImage.Fill(config.BackgroundColor)
	for x := gridStep; x < config.ScreenWidth; x += gridStep {
		vector.StrokeLine(r.arenaImage, float32(x), 0, float32(x), config.ScreenHeight, 1, config.GridColor, false)
	}
	for y := gridStep; y < config.ScreenHeight; y += gridStep {
		vector.StrokeLine(r.arenaImage, 0, float32(y), config.ScreenWidth, float32(y), 1, config.GridColor, false)
	}
}

// ResetAim возвращает сглаженный угол прицела в исходное положение
func (r *ArenaRenderer) ResetAim() {
	r.displayAim = -math.Pi / 2
}

func (r *ArenaRenderer) Draw(screen *ebiten.Image, g *app.Game, showRange bool) {
	screen.DrawImage(r.arenaImage, nil)

	for _, p := range g.Projectiles {
		if !p.Alive() {
			continue
		}
		clr := config.EnemyShotColor
		if p.FromPlayer() {
			clr = config.PlayerShotColor
		}
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size/2), clr, true)
	}

	for _, e := range g.Enemies() {
		if e.Alive() {
			r.drawEnemy(screen, e)
		}
	}

	r.drawPlayer(screen, g.Player, showRange)
}

func (r *ArenaRenderer) drawPlayer(screen *ebiten.Image, p *entity.Player, showRange bool) {
	r.displayAim = utils.LerpAngle(r.displayAim, p.AimAngle, aimSmoothing)

	if showRange {
		for _, seg := range DashSegments(p.Pos.X, p.Pos.Y, p.AttackRange, rangeDashes) {
			vector.StrokeLine(screen, float32(seg[0].X), float32(seg[0].Y), float32(seg[1].X), float32(seg[1].Y), 1, config.RangeColor, true)
		}
	}

	pts := Arrow(p.Pos.X, p.Pos.Y, p.Size, r.displayAim)
	r.fillPolygon(screen, pts, config.PlayerColor)
	r.strokePolygon(screen, pts, config.PlayerStroke)
	if p.Health.Invincible > 0 && (p.Health.Invincible/5)%2 == 0 {
		r.fillPolygon(screen, pts, config.FlashColor)
	}
}

func (r *ArenaRenderer) drawEnemy(screen *ebiten.Image, e entity.Enemy) {
	pos := e.Position()
	clr := KindColor(e.Kind())
	angle := 0.0

	switch e.Kind() {
	case defs.EnemyMelee:
		angle = e.Facing()
	case defs.EnemyBoss:
		if b, ok := e.(*entity.Boss); ok {
			angle = b.Rotation
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(e.Size()*bossAuraScale), BossAura(e.Phase(), angle), true)
		if e.Charging() {
			clr = config.BossChargeColor
		}
	}

	pts := ShapePoints(r.library.Get(e.Kind()).Shape, pos.X, pos.Y, e.Size(), angle)
	r.fillPolygon(screen, pts, clr)
	r.strokePolygon(screen, pts, DarkenColor(clr))
	if e.Health().Invincible > 0 {
		r.fillPolygon(screen, pts, config.FlashColor)
	}

	// у босса своя полоса внизу экрана
	if e.Kind() != defs.EnemyBoss {
		r.drawEnemyBar(screen, e)
	}
}

func (r *ArenaRenderer) drawEnemyBar(screen *ebiten.Image, e entity.Enemy) {
	pos := e.Position()
	w := float32(e.Size())
	x := float32(pos.X) - w/2
	y := float32(pos.Y-e.Size()/2) - enemyBarGap
	vector.DrawFilledRect(screen, x, y, w, enemyBarH, config.HPBarBackColor, false)
	vector.DrawFilledRect(screen, x, y, w*float32(e.Health().Ratio()), enemyBarH, config.HPLowColor, false)
}

func (r *ArenaRenderer) fillPolygon(target *ebiten.Image, pts []Point, clr color.RGBA) {
	path := polygonPath(pts)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paintVertices(r.fillVs, clr)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *ArenaRenderer) strokePolygon(target *ebiten.Image, pts []Point, clr color.RGBA) {
	path := polygonPath(pts)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: config.StrokeWidth,
	})
	paintVertices(r.strokeVs, clr)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func polygonPath(pts []Point) *vector.Path {
	path := &vector.Path{}
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	path.Close()
	return path
}

func paintVertices(vs []ebiten.Vertex, clr color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
}

// KindColor — цвет врага на поле и в таблице
func KindColor(kind defs.EnemyKind) color.RGBA {
	switch kind {
	case defs.EnemyRanged:
		return config.RangedColor
	case defs.EnemyTank:
		return config.TankColor
	case defs.EnemyBoss:
		return config.BossColor
	}
	return config.MeleeColor
}

// BossAura — цвет ауры босса. Прозрачность пульсирует вместе с вращением,
// во второй фазе аура ярче.
func BossAura(phase int, rotation float64) color.RGBA {
	base := config.BossAuraColor
	if phase == 2 {
		base = config.BossRageColor
	}
	pulse := 0.75 + 0.25*math.Sin(rotation*4)
	return WithAlpha(base, uint8(float64(base.A)*pulse))
}
