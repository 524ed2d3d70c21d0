// internal/component/hitbox.go
package component

// Bounds — ось-ориентированный прямоугольник
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// BoundsAt строит квадрат со стороной size вокруг центра.
func BoundsAt(p Position, size float64) Bounds {
	half := size / 2
	return Bounds{
		MinX: p.X - half,
		MinY: p.Y - half,
		MaxX: p.X + half,
		MaxY: p.Y + half,
	}
}

// Overlaps reports whether the interiors intersect. Touching edges do not count.
func (b Bounds) Overlaps(o Bounds) bool {
	if b.MaxX <= b.MinX || b.MaxY <= b.MinY || o.MaxX <= o.MinX || o.MaxY <= o.MinY {
		return false
	}
	return b.MinX < o.MaxX && o.MinX < b.MaxX && b.MinY < o.MaxY && o.MinY < b.MaxY
}
