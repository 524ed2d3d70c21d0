// internal/ui/fonts.go
package ui

import (
	"fmt"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts — набор шрифтов интерфейса
type Fonts struct {
	Small   font.Face
	Regular font.Face
	Title   font.Face
	Huge    font.Face
}

// LoadFonts разбирает встроенные Go-шрифты. При ошибке откатывается на basicfont.
func LoadFonts() Fonts {
	f, err := loadGoFonts()
	if err != nil {
		log.Printf("Failed to load fonts, using basicfont: %v", err)
		return FallbackFonts()
	}
	return f
}

func FallbackFonts() Fonts {
	face := basicfont.Face7x13
	return Fonts{Small: face, Regular: face, Title: face, Huge: face}
}

func loadGoFonts() (Fonts, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return Fonts{}, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return Fonts{}, fmt.Errorf("failed to parse bold font: %w", err)
	}

	var fonts Fonts
	for _, want := range []struct {
		dst  *font.Face
		tt   *opentype.Font
		size float64
	}{
		{&fonts.Small, regular, 13},
		{&fonts.Regular, regular, 18},
		{&fonts.Title, bold, 28},
		{&fonts.Huge, bold, 56},
	} {
		face, err := opentype.NewFace(want.tt, &opentype.FaceOptions{
			Size:    want.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return Fonts{}, fmt.Errorf("failed to create font face (size %.0f): %w", want.size, err)
		}
		*want.dst = face
	}
	return fonts, nil
}
