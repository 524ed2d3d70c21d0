// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-survivor/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	ButtonWidth   = 320
	ButtonHeight  = 56
	ButtonSpacing = 18
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	BgColor    color.Color
	HoverColor color.Color
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
	}
}

// ButtonColumn раскладывает кнопки столбцом по центру экрана начиная с top.
func ButtonColumn(top int, labels ...string) []*Button {
	buttons := make([]*Button, 0, len(labels))
	x := (config.ScreenWidth - ButtonWidth) / 2
	for i, label := range labels {
		y := top + i*(ButtonHeight+ButtonSpacing)
		buttons = append(buttons, NewButton(image.Rect(x, y, x+ButtonWidth, y+ButtonHeight), label))
	}
	return buttons
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked — был ли клик по кнопке в этом тике
func (b *Button) IsClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return b.Contains(ebiten.CursorPosition())
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	bg := b.BgColor
	if b.Contains(ebiten.CursorPosition()) {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, config.StrokeWidth, config.TextDimColor, true)

	m := face.Metrics()
	textH := (m.Ascent + m.Descent).Ceil()
	baseline := b.Rect.Min.Y + (b.Rect.Dy()-textH)/2 + m.Ascent.Ceil()
	DrawCentered(screen, b.Text, face, b.Rect.Min.X+b.Rect.Dx()/2, baseline, config.TextLightColor)
}
