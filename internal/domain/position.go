package domain

import "math"

// Position - точка в мировых координатах (ялмы). Z - вертикаль.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Distance возвращает евклидово расстояние в 3D
func Distance(a, b Position) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dz := b.Z - a.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// HorizontalDistance - расстояние в плоскости X/Y (без учета высоты)
func HorizontalDistance(a, b Position) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// LinearDistance переводит квадрат дистанции из снапшота в линейные ялмы.
// Снапшот отдает дистанции уже в квадрате, сравнивать с порогами их нельзя.
func LinearDistance(squared float64) float64 {
	if squared <= 0 {
		return 0
	}
	return math.Sqrt(squared)
}

// HeadingDelta возвращает знаковую разницу между направлением взгляда и азимутом на точку (tx, ty).
// Результат в (-π, π]. Отрицательное значение - цель справа, положительное - слева.
func HeadingDelta(self Position, heading, tx, ty float64) float64 {
	bearing := math.Atan2(-(ty - self.Y), tx-self.X)
	return NormalizeAngle(bearing - heading)
}

// NormalizeAngle приводит угол в (-π, π].
// Для разности двух углов из [-π, π] это ровно один сдвиг на 2π.
func NormalizeAngle(a float64) float64 {
	if a > -math.Pi && a <= math.Pi {
		return a
	}
	a = math.Remainder(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
