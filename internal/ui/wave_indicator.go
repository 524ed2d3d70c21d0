// internal/ui/wave_indicator.go
package ui

import (
	"image/color"

	"go-survivor/internal/config"
	"go-survivor/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	BossColor        color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.TextLightColor,
		BossColor:        config.HPLowColor,
		OutlineColor:     config.TextDarkColor,
		OutlineThickness: 2,
	}
}

// WaveLabel — подпись индикатора: "BOSS" во время боя с боссом, иначе "Wave III / V".
func WaveLabel(wave int, bossActive bool) string {
	if wave <= 0 {
		return ""
	}
	if bossActive {
		return "BOSS"
	}
	return "Wave " + utils.ToRoman(wave) + " / " + utils.ToRoman(config.FinalWave)
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, wave int, bossActive bool) {
	label := WaveLabel(wave, bossActive)
	if label == "" {
		return
	}
	clr := i.Color
	if bossActive {
		clr = i.BossColor // Красный для босса
	}
	DrawOutlined(screen, label, face, i.X, i.Y, i.OutlineThickness, clr, i.OutlineColor)
}
