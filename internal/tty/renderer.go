// internal/tty/renderer.go
package tty

import (
	"fmt"
	"image/color"

	"go-survivor/internal/app"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/utils"

	"github.com/gdamore/tcell/v2"
)

const (
	PlayerGlyph     = '@'
	PlayerShotGlyph = '·'
	EnemyShotGlyph  = '•'
)

var enemyGlyphs = map[defs.EnemyKind]rune{
	defs.EnemyMelee:  '▲',
	defs.EnemyRanged: '◆',
	defs.EnemyTank:   '■',
	defs.EnemyBoss:   '✸',
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func fg(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(c)).Background(rgb(config.BackgroundColor))
}

// Draw рисует кадр целиком и показывает его.
func Draw(screen tcell.Screen, g *app.Game, paused bool) {
	cols, rows := screen.Size()
	grid := NewGrid(cols, rows)
	bg := fg(config.TextLightColor)
	screen.Fill(' ', bg)

	for _, p := range g.Projectiles {
		if !p.Alive() {
			continue
		}
		glyph, clr := EnemyShotGlyph, config.EnemyShotColor
		if p.FromPlayer() {
			glyph, clr = PlayerShotGlyph, config.PlayerShotColor
		}
		put(screen, grid, p.Pos.X, p.Pos.Y, glyph, fg(clr))
	}

	for _, e := range g.Enemies() {
		if e.Alive() {
			drawEnemy(screen, grid, e)
		}
	}

	style := fg(config.PlayerColor)
	if g.Player.Health.Invincible > 0 {
		style = style.Reverse(true)
	}
	put(screen, grid, g.Player.Pos.X, g.Player.Pos.Y, PlayerGlyph, style)

	drawStatus(screen, g, cols, rows-1)

	switch {
	case g.Outcome() == app.GameOver:
		banner(screen, cols, rows, "GAME OVER", "Enter: new run   Ctrl-C: quit", config.HPLowColor)
	case g.Outcome() == app.Victory:
		banner(screen, cols, rows, "VICTORY", "Enter: new run   Ctrl-C: quit", config.HPHighColor)
	case paused:
		banner(screen, cols, rows, "PAUSED", "Esc: resume   Ctrl-C: quit", config.TextLightColor)
	case g.WaitingForNextWave():
		banner(screen, cols, rows, g.NextWaveBanner(), "", config.PlayerShotColor)
	}
	screen.Show()
}

func drawEnemy(screen tcell.Screen, grid Grid, e entity.Enemy) {
	pos := e.Position()
	clr := enemyColor(e)
	style := fg(clr)
	if e.Health().Invincible > 0 {
		style = style.Reverse(true)
	}
	glyph := enemyGlyphs[e.Kind()]

	// крупные враги занимают несколько клеток
	n := grid.CellsFor(e.Size())
	if n <= 1 {
		put(screen, grid, pos.X, pos.Y, glyph, style)
		return
	}
	col, row, _ := grid.ToCell(pos.X, pos.Y)
	half := n / 2
	for dy := -half / 2; dy <= half/2; dy++ {
		for dx := -half; dx <= half; dx++ {
			screen.SetContent(col+dx, row+dy, glyph, nil, style)
		}
	}
}

func enemyColor(e entity.Enemy) color.RGBA {
	switch e.Kind() {
	case defs.EnemyRanged:
		return config.RangedColor
	case defs.EnemyTank:
		return config.TankColor
	case defs.EnemyBoss:
		if e.Charging() {
			return config.BossChargeColor
		}
		return config.BossColor
	}
	return config.MeleeColor
}

func put(screen tcell.Screen, grid Grid, x, y float64, glyph rune, style tcell.Style) {
	if col, row, ok := grid.ToCell(x, y); ok {
		screen.SetContent(col, row, glyph, nil, style)
	}
}

// StatusLine — строка состояния под полем
func StatusLine(g *app.Game) string {
	hp := g.Player.Health
	s := fmt.Sprintf(" HP %d/%d | Score %d | %s | Wave %s/%s | %s",
		hp.Value, hp.Max, g.Score(), g.SurvivalTime(),
		utils.ToRoman(g.Wave()), utils.ToRoman(config.FinalWave), g.Difficulty().Label())
	if boss := g.Boss(); boss != nil {
		s += fmt.Sprintf(" | BOSS %d/%d", boss.Health().Value, boss.Health().Max)
		if boss.Phase() == 2 {
			s += " PHASE 2"
		}
	}
	return s
}

func drawStatus(screen tcell.Screen, g *app.Game, cols, row int) {
	style := tcell.StyleDefault.Foreground(rgb(config.TextDarkColor)).Background(rgb(config.HealthColor(g.Player.Health.Ratio())))
	line := []rune(StatusLine(g))
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		screen.SetContent(x, row, r, nil, style)
	}
}

func banner(screen tcell.Screen, cols, rows int, title, hint string, clr color.RGBA) {
	drawText(screen, (cols-len([]rune(title)))/2, rows/2-1, title, fg(clr).Bold(true))
	if hint != "" {
		drawText(screen, (cols-len([]rune(hint)))/2, rows/2+1, hint, fg(config.TextDimColor))
	}
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
