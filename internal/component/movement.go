// internal/component/movement.go
package component

import "math"

// Position: позиция центра сущности в пикселях поля
type Position struct {
	X, Y float64
}

// Dist: евклидово расстояние между позициями
func (p Position) Dist(to Position) float64 {
	return math.Hypot(to.X-p.X, to.Y-p.Y)
}

// StepToward сдвигает позицию к цели на step по каждой оси независимо.
// Диагональ не нормализуется: по диагонали сущность движется быстрее.
// Возвращает знаки сдвига по осям.
func (p *Position) StepToward(target Position, step float64) (dx, dy int) {
	switch {
	case p.Y > target.Y:
		p.Y -= step
		dy = -1
	case p.Y < target.Y:
		p.Y += step
		dy = 1
	}
	switch {
	case p.X > target.X:
		p.X -= step
		dx = -1
	case p.X < target.X:
		p.X += step
		dx = 1
	}
	return dx, dy
}
