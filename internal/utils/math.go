// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// LerpAngle выполняет линейную интерполяцию между двумя углами с учётом кратчайшего пути
func LerpAngle(from, to, t float64) float64 {
	from = NormalizeAngle(from)
	to = NormalizeAngle(to)

	diff := to - from
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}

	return NormalizeAngle(Lerp(from, from+diff, t))
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Distance — евклидово расстояние между двумя точками
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Direction returns the unit vector from (fromX, fromY) towards (toX, toY).
// ok is false when both points coincide; the vector is then zero.
func Direction(fromX, fromY, toX, toY float64) (dx, dy float64, ok bool) {
	dist := Distance(fromX, fromY, toX, toY)
	if dist == 0 {
		return 0, 0, false
	}
	return (toX - fromX) / dist, (toY - fromY) / dist, true
}

// StepToward moves (x, y) towards the target by at most step pixels.
// The step is clamped to the remaining distance so the mover never overshoots.
func StepToward(x, y, targetX, targetY, step float64) (float64, float64) {
	dist := Distance(x, y, targetX, targetY)
	if dist == 0 {
		return x, y
	}
	if step >= dist {
		return targetX, targetY
	}
	return x + (targetX-x)/dist*step, y + (targetY-y)/dist*step
}

// Clamp ограничивает значение отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ToRoman переводит номер волны в римские цифры для индикатора.
func ToRoman(num int) string {
	if num <= 0 {
		return ""
	}
	values := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	symbols := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
	result := ""
	for i := 0; i < len(values); i++ {
		for num >= values[i] {
			num -= values[i]
			result += symbols[i]
		}
	}
	return result
}
