// pkg/gridmap/cell.go
package gridmap

import (
	"math"

	"wizard-td/internal/config"
)

// Cell: клетка поля в целочисленных координатах (X столбец, Y строка)
type Cell struct {
	X, Y int
}

// Direction: одно из четырёх направлений соседства
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// CardinalDirections задаёт порядок обхода соседей: вверх, вниз, влево, вправо.
// От этого порядка зависит выбор между путями одинаковой длины.
var CardinalDirections = []Direction{Up, Down, Left, Right}

var directionOffsets = map[Direction]Cell{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Step возвращает соседнюю клетку в заданном направлении
func (c Cell) Step(dir Direction) Cell {
	off := directionOffsets[dir]
	return Cell{X: c.X + off.X, Y: c.Y + off.Y}
}

// Center возвращает центр клетки в пикселях поля
func (c Cell) Center() (x, y float64) {
	x = float64(c.X*config.CellSize) + config.CellSize/2
	y = float64(c.Y*config.CellSize) + config.CellSize/2
	return
}

// CellAt конвертирует пиксельные координаты поля в клетку
func CellAt(x, y float64) Cell {
	return Cell{
		X: int(math.Floor(x / config.CellSize)),
		Y: int(math.Floor(y / config.CellSize)),
	}
}

// Distance: манхэттенское расстояние в клетках
func (c Cell) Distance(to Cell) int {
	return abs(c.X-to.X) + abs(c.Y-to.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
