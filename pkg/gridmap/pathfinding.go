// pkg/gridmap/pathfinding.go
package gridmap

// Path: упорядоченный маршрут от входа за краем поля до дома.
// Вычисляется один раз на уровень и дальше только читается.
type Path struct {
	cells []Cell
}

func NewPath(cells []Cell) *Path {
	return &Path{cells: append([]Cell(nil), cells...)}
}

func (p *Path) Len() int { return len(p.cells) }

func (p *Path) Empty() bool { return len(p.cells) == 0 }

func (p *Path) At(i int) Cell { return p.cells[i] }

// Start: клетка входа
func (p *Path) Start() Cell { return p.cells[0] }

// End: клетка дома
func (p *Path) End() Cell { return p.cells[len(p.cells)-1] }

// Cells возвращает копию клеток маршрута
func (p *Path) Cells() []Cell {
	return append([]Cell(nil), p.cells...)
}

// EntryPoints находит виртуальные клетки входа: для каждой дороги у края поля
// берётся первое направление (вверх, вниз, влево, вправо), в котором нет соседа,
// и клетка за краем в этом направлении.
func EntryPoints(m *Map) []Cell {
	var entries []Cell
	for _, c := range m.Cells() {
		tile := m.Tiles[c]
		if tile.Kind != PathTile {
			continue
		}
		for _, dir := range CardinalDirections {
			if _, ok := m.Neighbor(c, dir); !ok {
				entries = append(entries, c.Step(dir))
				break
			}
		}
	}
	return entries
}

// FindPath ищет кратчайший путь поиском в ширину от входа до дома.
// Если дом недостижим, возвращается пустой путь.
func FindPath(m *Map, start Cell) *Path {
	goal := m.Goal
	parent := map[Cell]Cell{}
	visited := map[Cell]bool{start: true}
	queue := []Cell{start}

	head := 0
	for head < len(queue) {
		current := queue[head]
		head++

		if current == goal {
			return NewPath(backTrace(parent, start, goal))
		}

		for _, dir := range CardinalDirections {
			next, ok := m.Neighbor(current, dir)
			if !ok || !m.IsWalkable(next) || visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = current
			queue = append(queue, next)
		}
	}
	return NewPath(nil) // Нет пути
}

func backTrace(parent map[Cell]Cell, start, goal Cell) []Cell {
	path := []Cell{goal}
	for curr := goal; curr != start; {
		curr = parent[curr]
		path = append(path, curr)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FindPaths считает путь для каждого входа. Пустые пути сохраняются,
// чтобы индекс пути совпадал с индексом входа.
func FindPaths(m *Map) []*Path {
	entries := EntryPoints(m)
	paths := make([]*Path, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, FindPath(m, entry))
	}
	return paths
}

// Reachable оставляет только непустые пути
func Reachable(paths []*Path) []*Path {
	var result []*Path
	for _, p := range paths {
		if !p.Empty() {
			result = append(result, p)
		}
	}
	return result
}
