package entity

import "math"

// LineSegment отрезок, найденный детектором линий.
// Координаты в пикселях, ось Y направлена вниз.
type LineSegment struct {
	X1, Y1 int // первая точка
	X2, Y2 int // вторая точка
}

// Angle возвращает угол наклона отрезка в градусах относительно горизонтали.
// Для вертикального отрезка (run == 0) угол не определён, ok == false.
func (l LineSegment) Angle() (angle float64, ok bool) {
	rise := float64(l.Y2 - l.Y1)
	run := float64(l.X2 - l.X1)
	if run == 0 {
		return 0, false
	}
	return math.Atan(rise/run) * 180 / math.Pi, true
}

// Blob — найденное детектором пятно: центр и примерный радиус.
type Blob struct {
	X, Y   float64 // центр пятна
	Radius float64 // примерный радиус
}

// Circle — окружность, найденная детектором дуг.
type Circle struct {
	X, Y   float64 // центр окружности
	Radius float64 // радиус
}
