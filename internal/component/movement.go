// internal/component/movement.go
package component

// Position — компонент позиции (центр сущности)
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости, пикселей за тик
type Velocity struct {
	DX, DY float64
}

// Advance сдвигает позицию на один тик.
func (p *Position) Advance(v Velocity) {
	p.X += v.DX
	p.Y += v.DY
}
