// pkg/gridmap/map.go
package gridmap

// TileKind: тип клетки поля
type TileKind int

const (
	Grass TileKind = iota
	PathTile
	Shrub
	House
)

func (k TileKind) String() string {
	switch k {
	case PathTile:
		return "path"
	case Shrub:
		return "shrub"
	case House:
		return "house"
	default:
		return "grass"
	}
}

type Tile struct {
	Kind      TileKind
	Walkable  bool
	Placeable bool
	Occupied  bool
}

// NewTile возвращает клетку с флагами, соответствующими её типу
func NewTile(kind TileKind) Tile {
	switch kind {
	case PathTile, House:
		return Tile{Kind: kind, Walkable: true}
	case Shrub:
		return Tile{Kind: kind}
	default:
		return Tile{Kind: Grass, Placeable: true}
	}
}

// Map: статичное поле. Дом волшебника (Goal) ровно один.
type Map struct {
	Width  int
	Height int
	Tiles  map[Cell]Tile
	Goal   Cell
}

// NewMap создаёт поле заданного размера, полностью покрытое травой
func NewMap(width, height int) *Map {
	tiles := make(map[Cell]Tile, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tiles[Cell{x, y}] = NewTile(Grass)
		}
	}
	return &Map{Width: width, Height: height, Tiles: tiles}
}

// Set ставит клетку заданного типа. Клетка дома становится целью.
func (m *Map) Set(c Cell, kind TileKind) {
	if !m.Contains(c) {
		return
	}
	m.Tiles[c] = NewTile(kind)
	if kind == House {
		m.Goal = c
	}
}

func (m *Map) Contains(c Cell) bool {
	_, exists := m.Tiles[c]
	return exists
}

func (m *Map) Tile(c Cell) (Tile, bool) {
	tile, exists := m.Tiles[c]
	return tile, exists
}

func (m *Map) IsWalkable(c Cell) bool {
	if tile, exists := m.Tiles[c]; exists {
		return tile.Walkable
	}
	return false
}

// CanPlaceTower проверяет, что клетка — трава и не занята
func (m *Map) CanPlaceTower(c Cell) bool {
	if tile, exists := m.Tiles[c]; exists {
		return tile.Placeable && !tile.Occupied
	}
	return false
}

func (m *Map) SetOccupied(c Cell, occupied bool) {
	if tile, exists := m.Tiles[c]; exists {
		tile.Occupied = occupied
		m.Tiles[c] = tile
	}
}

// Neighbor возвращает соседнюю клетку, если она есть на поле
func (m *Map) Neighbor(c Cell, dir Direction) (Cell, bool) {
	n := c.Step(dir)
	return n, m.Contains(n)
}

// Cells возвращает все клетки поля построчно, сверху вниз и слева направо
func (m *Map) Cells() []Cell {
	cells := make([]Cell, 0, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := Cell{x, y}
			if m.Contains(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// IsPlaceable: на клетке в принципе можно строить (без учёта занятости)
func (m *Map) IsPlaceable(c Cell) bool {
	if tile, exists := m.Tiles[c]; exists {
		return tile.Placeable
	}
	return false
}

// Clone копирует поле, чтобы новая партия начиналась со свободными клетками
func (m *Map) Clone() *Map {
	tiles := make(map[Cell]Tile, len(m.Tiles))
	for c, t := range m.Tiles {
		t.Occupied = false
		tiles[c] = t
	}
	return &Map{Width: m.Width, Height: m.Height, Tiles: tiles, Goal: m.Goal}
}
