// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextWidth — ширина строки в пикселях
func TextWidth(face font.Face, s string) int {
	b := text.BoundString(face, s)
	return b.Max.X - b.Min.X
}

// DrawCentered рисует строку с центром по X в cx; y — базовая линия.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	text.Draw(screen, s, face, cx-TextWidth(face, s)/2, y, clr)
}

// DrawOutlined рисует центрированный текст с обводкой толщиной thickness.
func DrawOutlined(screen *ebiten.Image, s string, face font.Face, cx, y, thickness int, clr, outline color.Color) {
	x := cx - TextWidth(face, s)/2
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, face, x+dx, y+dy, outline)
		}
	}
	text.Draw(screen, s, face, x, y, clr)
}
