// internal/state/input.go
package state

import (
	"go-survivor/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Раскладки ZQSD и WASD плюс стрелки
var (
	upKeys    = []ebiten.Key{ebiten.KeyZ, ebiten.KeyW, ebiten.KeyArrowUp}
	downKeys  = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	leftKeys  = []ebiten.Key{ebiten.KeyQ, ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
)

// MoveInputFrom собирает флаги движения по предикату нажатой клавиши.
func MoveInputFrom(pressed func(ebiten.Key) bool) entity.MoveInput {
	held := func(keys []ebiten.Key) bool {
		for _, k := range keys {
			if pressed(k) {
				return true
			}
		}
		return false
	}
	return entity.MoveInput{
		Up:    held(upKeys),
		Down:  held(downKeys),
		Left:  held(leftKeys),
		Right: held(rightKeys),
	}
}

func readMoveInput() entity.MoveInput {
	return MoveInputFrom(ebiten.IsKeyPressed)
}

func escPressed() bool   { return inpututil.IsKeyJustPressed(ebiten.KeyEscape) }
func enterPressed() bool { return inpututil.IsKeyJustPressed(ebiten.KeyEnter) }
func clicked() bool      { return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) }
