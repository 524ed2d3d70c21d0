// internal/tty/grid.go
package tty

import "go-survivor/internal/config"

// Grid переводит координаты поля в клетки терминала. Последняя строка
// отдана под статус.
type Grid struct {
	Cols, Rows int
}

func NewGrid(cols, rows int) Grid {
	return Grid{Cols: max(cols, 1), Rows: max(rows-1, 1)}
}

// ToCell возвращает клетку для точки поля и признак попадания в видимую область.
func (g Grid) ToCell(x, y float64) (col, row int, ok bool) {
	if x < 0 || y < 0 || x >= config.ScreenWidth || y >= config.ScreenHeight {
		return 0, 0, false
	}
	col = int(x * float64(g.Cols) / config.ScreenWidth)
	row = int(y * float64(g.Rows) / config.ScreenHeight)
	return col, row, true
}

// CellsFor — сколько клеток по горизонтали занимает объект размера size.
func (g Grid) CellsFor(size float64) int {
	return max(1, int(size*float64(g.Cols)/config.ScreenWidth+0.5))
}
