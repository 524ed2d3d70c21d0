// pkg/render/shapes.go
package render

import "math"

// Point — вершина многоугольника в экранных координатах
type Point struct {
	X, Y float64
}

// Shape names used by enemy definitions.
const (
	ShapeTriangle = "Triangle"
	ShapeDiamond  = "Diamond"
	ShapeHexagon  = "Hexagon"
	ShapeStar     = "Star"
)

// regular строит правильный многоугольник с n вершинами, первая смотрит вдоль angle.
func regular(n int, cx, cy, radius, angle float64) []Point {
	pts := make([]Point, n)
	for i := range pts {
		a := angle + 2*math.Pi*float64(i)/float64(n)
		pts[i] = Point{cx + radius*math.Cos(a), cy + radius*math.Sin(a)}
	}
	return pts
}

// Star — звезда с points лучами, вершины чередуют внешний и внутренний радиус.
func Star(points int, cx, cy, outer, inner, angle float64) []Point {
	pts := make([]Point, 2*points)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := angle + math.Pi*float64(i)/float64(points)
		pts[i] = Point{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return pts
}

// ShapePoints returns the outline of a named shape of the given size
// centred on (cx, cy). Unknown names fall back to a square.
func ShapePoints(shape string, cx, cy, size, angle float64) []Point {
	r := size / 2
	switch shape {
	case ShapeTriangle:
		return regular(3, cx, cy, r, angle)
	case ShapeDiamond:
		return regular(4, cx, cy, r, angle)
	case ShapeHexagon:
		return regular(6, cx, cy, r, angle+math.Pi/6)
	case ShapeStar:
		return Star(8, cx, cy, r, r*0.55, angle)
	}
	return regular(4, cx, cy, r*math.Sqrt2, angle+math.Pi/4)
}

// Arrow — стрелка игрока, остриё смотрит вдоль angle.
func Arrow(cx, cy, size, angle float64) []Point {
	r := size / 2
	local := []Point{{r, 0}, {-r, -r * 0.8}, {-r * 0.4, 0}, {-r, r * 0.8}}
	sin, cos := math.Sincos(angle)
	pts := make([]Point, len(local))
	for i, p := range local {
		pts[i] = Point{cx + p.X*cos - p.Y*sin, cy + p.X*sin + p.Y*cos}
	}
	return pts
}

// DashSegments делит окружность на n дуг и возвращает хорды чётных из них.
func DashSegments(cx, cy, radius float64, n int) [][2]Point {
	segs := make([][2]Point, 0, n/2)
	for i := 0; i < n; i += 2 {
		a0 := 2 * math.Pi * float64(i) / float64(n)
		a1 := 2 * math.Pi * float64(i+1) / float64(n)
		segs = append(segs, [2]Point{
			{cx + radius*math.Cos(a0), cy + radius*math.Sin(a0)},
			{cx + radius*math.Cos(a1), cy + radius*math.Sin(a1)},
		})
	}
	return segs
}
