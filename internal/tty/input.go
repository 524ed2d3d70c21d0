// internal/tty/input.go
package tty

import (
	"unicode"

	"go-survivor/internal/entity"

	"github.com/gdamore/tcell/v2"
)

// KeyHoldTicks — сколько тиков клавиша считается зажатой после последнего
// события. Терминал не сообщает об отпускании, только об автоповторе.
const KeyHoldTicks = 20

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

// Input хранит оставшееся время удержания по каждому направлению.
type Input struct {
	hold [dirCount]int
}

// Press продлевает удержание направления, соответствующего клавише.
// Возвращает false, если клавиша не про движение.
func (in *Input) Press(ev *tcell.EventKey) bool {
	d, ok := keyDirection(ev)
	if ok {
		in.hold[d] = KeyHoldTicks
	}
	return ok
}

// Tick уменьшает таймеры удержания.
func (in *Input) Tick() {
	for i := range in.hold {
		if in.hold[i] > 0 {
			in.hold[i]--
		}
	}
}

func (in *Input) Release() {
	in.hold = [dirCount]int{}
}

func (in *Input) MoveInput() entity.MoveInput {
	return entity.MoveInput{
		Up:    in.hold[dirUp] > 0,
		Down:  in.hold[dirDown] > 0,
		Left:  in.hold[dirLeft] > 0,
		Right: in.hold[dirRight] > 0,
	}
}

func keyDirection(ev *tcell.EventKey) (direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return dirUp, true
	case tcell.KeyDown:
		return dirDown, true
	case tcell.KeyLeft:
		return dirLeft, true
	case tcell.KeyRight:
		return dirRight, true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'z', 'w':
			return dirUp, true
		case 's':
			return dirDown, true
		case 'q', 'a':
			return dirLeft, true
		case 'd':
			return dirRight, true
		}
	}
	return 0, false
}
