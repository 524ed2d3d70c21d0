// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/system"
	"go-survivor/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelWidth    = 1070
	panelHeight   = 580
	lineHeight    = 22
	sectionGap    = 28
	columnSpacing = 90
)

var controlRows = [][2]string{
	{"Z / W / Up", "Move up"},
	{"S / Down", "Move down"},
	{"Q / A / Left", "Move left"},
	{"D / Right", "Move right"},
	{"Esc", "Pause"},
	{"Enter", "Confirm"},
}

// PlayerRows — характеристики игрока для панели
func PlayerRows(p *entity.Player) [][2]string {
	return [][2]string{
		{"Health", fmt.Sprintf("%d / %d", p.Health.Value, p.Health.Max)},
		{"Damage per shot", fmt.Sprintf("%d", p.Damage)},
		{"Attack range", fmt.Sprintf("%.0f px", p.AttackRange)},
		{"Fire rate", fmt.Sprintf("%d shots/s", config.TPS/p.AttackRate)},
	}
}

// EnemyRows — строки таблицы врагов: имя, форма, HP, урон, скорость, атак в секунду.
func EnemyRows(library defs.EnemyLibrary) [][]string {
	rows := make([][]string, 0, len(defs.EnemyKinds))
	for _, kind := range defs.EnemyKinds {
		def := library.Get(kind)
		rows = append(rows, []string{
			def.Name,
			def.Shape,
			fmt.Sprintf("%d", def.Health),
			fmt.Sprintf("%d", def.Damage),
			fmt.Sprintf("%.1f", def.Speed),
			attacksPerSecond(def.AttackRate),
		})
	}
	return rows
}

func attacksPerSecond(rate int) string {
	if rate <= 0 {
		return "-"
	}
	return strings.TrimSuffix(fmt.Sprintf("%.1f", float64(config.TPS)/float64(rate)), ".0") + "/s"
}

// WaveRows — состав волн для заданного множителя размера.
func WaveRows(waveSize float64) [][3]string {
	rows := make([][3]string, 0, config.FinalWave)
	for wave := 1; wave <= config.FinalWave; wave++ {
		parts := make([]string, 0, 4)
		for _, w := range defs.WaveComposition(wave) {
			parts = append(parts, fmt.Sprintf("%d%% %s", w.Weight, defs.DefaultEnemyLibrary()[w.Kind].Name))
		}
		if wave == config.FinalWave {
			parts = append(parts, "BOSS")
		}
		rows = append(rows, [3]string{
			fmt.Sprintf("Wave %d", wave),
			fmt.Sprintf("%d", system.MaxEnemiesForWave(wave, waveSize)),
			strings.Join(parts, " + "),
		})
	}
	return rows
}

// InfoPanel — оверлей со статистикой игрока, врагов и волн.
type InfoPanel struct {
	fonts   Fonts
	library defs.EnemyLibrary
}

func NewInfoPanel(fonts Fonts, library defs.EnemyLibrary) *InfoPanel {
	return &InfoPanel{fonts: fonts, library: library}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, player *entity.Player, difficulty defs.Difficulty) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	x0 := (config.ScreenWidth - panelWidth) / 2
	y0 := (config.ScreenHeight - panelHeight) / 2
	vector.DrawFilledRect(screen, float32(x0), float32(y0), panelWidth, panelHeight, color.RGBA{12, 12, 32, 250}, true)
	vector.StrokeRect(screen, float32(x0), float32(y0), panelWidth, panelHeight, config.StrokeWidth, color.RGBA{90, 90, 160, 255}, true)

	DrawCentered(screen, "Information", p.fonts.Title, config.ScreenWidth/2, y0+38, config.TextLightColor)

	left := x0 + 30
	right := x0 + panelWidth/2 + 10
	top := y0 + 80

	y := p.section(screen, "Player", config.PlayerColor, left, top)
	for _, row := range PlayerRows(player) {
		p.statRow(screen, left+20, y, row[0], row[1])
		y += lineHeight
	}
	y = p.section(screen, "Controls", config.RangedColor, left, y+14)
	for _, row := range controlRows {
		p.statRow(screen, left+20, y, row[0], row[1])
		y += lineHeight
	}

	y = p.section(screen, "Enemies", config.MeleeColor, right, top)
	for i, row := range EnemyRows(p.library) {
		clr := render.KindColor(defs.EnemyKinds[i])
		for c, cell := range row {
			text.Draw(screen, cell, p.fonts.Small, right+c*columnSpacing*2/3, y, clr)
		}
		y += lineHeight
	}
	text.Draw(screen, "Boss also fires radial volleys, more in phase 2", p.fonts.Small, right, y, config.TextDimColor)

	y = p.section(screen, "Waves ("+difficulty.Label()+")", config.HPMidColor, right, y+40)
	for _, row := range WaveRows(difficulty.Multipliers().WaveSize) {
		text.Draw(screen, row[0], p.fonts.Small, right, y, config.TextLightColor)
		text.Draw(screen, row[1], p.fonts.Small, right+70, y, config.TextLightColor)
		text.Draw(screen, row[2], p.fonts.Small, right+110, y, config.TextDimColor)
		y += lineHeight
	}

	DrawCentered(screen, "Click anywhere or press Esc to close", p.fonts.Small, config.ScreenWidth/2, y0+panelHeight-12, config.TextDimColor)
}

// section рисует заголовок раздела и возвращает Y первой строки под ним.
func (p *InfoPanel) section(screen *ebiten.Image, title string, clr color.Color, x, y int) int {
	vector.DrawFilledRect(screen, float32(x), float32(y-12), 3, 16, clr, false)
	text.Draw(screen, title, p.fonts.Regular, x+10, y+2, clr)
	return y + sectionGap
}

func (p *InfoPanel) statRow(screen *ebiten.Image, x, y int, label, value string) {
	text.Draw(screen, label, p.fonts.Small, x, y, config.TextDimColor)
	text.Draw(screen, value, p.fonts.Small, x+180, y, config.TextLightColor)
}
