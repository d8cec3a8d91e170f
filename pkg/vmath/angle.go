// pkg/vmath/angle.go
package vmath

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// LerpAngle interpolates between two angles along the shortest arc.
// t is clamped to [0, 1].
func LerpAngle(from, to, t float64) float64 {
	if t > 1 {
		t = 1
	} else if t < 0 {
		t = 0
	}
	from = NormalizeAngle(from)
	to = NormalizeAngle(to)

	// кратчайшая разница
	diff := to - from
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}

	return NormalizeAngle(from + diff*t)
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
