// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-survivor/internal/app"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const (
	hpBarX      = 10
	hpBarY      = 10
	hpBarWidth  = 200
	hpBarHeight = 18

	bossBarWidth  = 400
	bossBarHeight = 22
	bossBarY      = config.ScreenHeight - 42
)

// DifficultyColor — цвет подписи сложности
func DifficultyColor(d defs.Difficulty) color.RGBA {
	switch d {
	case defs.DifficultyEasy:
		return config.HPHighColor
	case defs.DifficultyHard:
		return config.HPLowColor
	default:
		return config.HPMidColor
	}
}

// HUD рисует игровой интерфейс поверх поля.
type HUD struct {
	fonts Fonts
	wave  *WaveIndicator
}

func NewHUD(fonts Fonts) *HUD {
	return &HUD{
		fonts: fonts,
		wave:  NewWaveIndicator(config.ScreenWidth/2, 30),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, g *app.Game) {
	h.drawPlayerStatus(screen, g)
	h.wave.Draw(screen, h.fonts.Regular, g.Wave(), g.BossActive())

	if msg := g.NextWaveBanner(); msg != "" {
		DrawOutlined(screen, msg, h.fonts.Title, config.ScreenWidth/2, config.ScreenHeight/2-50, 1, config.PlayerShotColor, config.TextDarkColor)
	}
	if boss := g.Boss(); boss != nil {
		h.drawBossBar(screen, boss.Health().Value, boss.Health().Max, boss.Phase())
	}
}

func (h *HUD) drawPlayerStatus(screen *ebiten.Image, g *app.Game) {
	hp := g.Player.Health
	DrawBar(screen, hpBarX, hpBarY, hpBarWidth, hpBarHeight, hp.Ratio(), config.HealthColor(hp.Ratio()), true)
	text.Draw(screen, fmt.Sprintf("HP : %d / %d", hp.Value, hp.Max), h.fonts.Small, hpBarX+5, hpBarY+14, config.TextLightColor)

	y := hpBarY + hpBarHeight + 22
	text.Draw(screen, fmt.Sprintf("Score : %d", g.Score()), h.fonts.Regular, hpBarX, y, config.TextLightColor)
	y += 22
	text.Draw(screen, "Time : "+g.SurvivalTime(), h.fonts.Regular, hpBarX, y, config.TextLightColor)
	y += 22
	d := g.Difficulty()
	text.Draw(screen, d.Label(), h.fonts.Small, hpBarX, y, DifficultyColor(d))
}

func (h *HUD) drawBossBar(screen *ebiten.Image, hp, maxHP, phase int) {
	x := float32(config.ScreenWidth-bossBarWidth) / 2
	ratio := 0.0
	if maxHP > 0 {
		ratio = float64(hp) / float64(maxHP)
	}
	fill := config.BossColor
	if phase == 2 {
		fill = config.HPLowColor
	}
	DrawBar(screen, x, bossBarY, bossBarWidth, bossBarHeight, ratio, fill, true)

	label := fmt.Sprintf("BOSS  %d / %d", hp, maxHP)
	if phase == 2 {
		label = "PHASE 2  " + label
	}
	DrawCentered(screen, label, h.fonts.Small, config.ScreenWidth/2, bossBarY+16, config.TextLightColor)
}
