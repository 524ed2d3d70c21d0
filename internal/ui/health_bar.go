// internal/ui/health_bar.go
package ui

import (
	"image/color"

	"go-survivor/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FillWidth — ширина заполненной части полосы, ratio обрезается в [0, 1].
func FillWidth(width float32, ratio float64) float32 {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return width * float32(ratio)
}

// DrawBar рисует полосу с фоном, заполнением и рамкой.
func DrawBar(screen *ebiten.Image, x, y, w, h float32, ratio float64, fill color.Color, border bool) {
	vector.DrawFilledRect(screen, x, y, w, h, config.HPBarBackColor, false)
	if fw := FillWidth(w, ratio); fw > 0 {
		vector.DrawFilledRect(screen, x, y, fw, h, fill, false)
	}
	if border {
		vector.StrokeRect(screen, x, y, w, h, config.StrokeWidth, color.White, true)
	}
}
