// internal/component/monster.go
package component

import (
	"errors"
	"fmt"

	"wizard-td/internal/config"
	"wizard-td/internal/defs"
	"wizard-td/internal/types"
	"wizard-td/pkg/gridmap"
)

var (
	ErrInvalidHP          = errors.New("initial HP must be > 0")
	ErrInvalidSpeed       = errors.New("initial speed must be > 0")
	ErrInvalidArmor       = errors.New("armour must be in [0, 1)")
	ErrInvalidManaOnDeath = errors.New("mana on death must be >= 0")
	ErrEmptyPath          = errors.New("monster path is empty")
)

// Intner: источник случайных чисел для разброса детей роя
type Intner interface {
	Intn(n int) int
}

// Monster: враг, идущий по заранее найденному пути к дому.
type Monster struct {
	ID       types.EntityID
	Behavior defs.MonsterBehavior
	Position Position

	HP          float64
	MaxHP       float64
	Speed       float64 // пикселей за кадр
	Armor       float64 // доля поглощаемого урона
	ManaOnDeath float64
	SwarmCount  int

	Path            *gridmap.Path
	Waypoint        int // индекс следующей клетки пути
	SpeedMultiplier float64
	Facing          gridmap.Direction

	deathFrame int
	deathImage int
	dead       bool
}

// NewMonster проверяет параметры и ставит монстра на начало пути.
func NewMonster(spec defs.MonsterSpec, path *gridmap.Path) (*Monster, error) {
	if spec.HP <= 0 {
		return nil, fmt.Errorf("%s: %w", spec.Behavior.Kind, ErrInvalidHP)
	}
	if spec.Speed <= 0 {
		return nil, fmt.Errorf("%s: %w", spec.Behavior.Kind, ErrInvalidSpeed)
	}
	if spec.Armor < 0 || spec.Armor >= 1 {
		return nil, fmt.Errorf("%s: %w", spec.Behavior.Kind, ErrInvalidArmor)
	}
	if spec.ManaOnDeath < 0 {
		return nil, fmt.Errorf("%s: %w", spec.Behavior.Kind, ErrInvalidManaOnDeath)
	}
	if path == nil || path.Empty() {
		return nil, ErrEmptyPath
	}

	m := &Monster{
		Behavior:        spec.Behavior,
		HP:              spec.HP,
		MaxHP:           spec.HP,
		Speed:           spec.Speed,
		Armor:           spec.Armor,
		ManaOnDeath:     spec.ManaOnDeath,
		SwarmCount:      spec.SwarmCount,
		Path:            path,
		SpeedMultiplier: 1,
		Facing:          gridmap.Up,
	}
	m.Position = cellPosition(path.Start())
	return m, nil
}

func cellPosition(c gridmap.Cell) Position {
	x, y := c.Center()
	return Position{X: x, Y: y}
}

// Spec возвращает параметры, из которых можно построить такого же монстра
func (m *Monster) Spec() defs.MonsterSpec {
	return defs.MonsterSpec{
		Behavior:    m.Behavior,
		HP:          m.MaxHP,
		Speed:       m.Speed,
		Armor:       m.Armor,
		ManaOnDeath: m.ManaOnDeath,
		SwarmCount:  m.SwarmCount,
	}
}

// Alive: у монстра осталось здоровье
func (m *Monster) Alive() bool { return m.HP > 0 }

// Dying: монстр убит, но анимация смерти ещё идёт
func (m *Monster) Dying() bool { return !m.Alive() && !m.dead }

// Dead: анимация смерти завершена, монстра можно убирать
func (m *Monster) Dead() bool { return m.dead }

// DeathImage: индекс текущего кадра анимации смерти
func (m *Monster) DeathImage() int { return m.deathImage }

func (m *Monster) Kill() { m.HP = 0 }

func (m *Monster) AddHP(hp float64) { m.HP += hp }

// RemoveHP наносит урон с учётом брони. Отрицательный урон игнорируется.
func (m *Monster) RemoveHP(damage float64) {
	if damage <= 0 {
		return
	}
	m.HP -= damage * (1 - m.Armor)
}

// Respawn возвращает монстра на начало пути
func (m *Monster) Respawn() {
	m.Waypoint = 0
	m.Position = cellPosition(m.Path.Start())
}

// ReachedGoal: живой монстр стоит в доме
func (m *Monster) ReachedGoal(goal Position) bool {
	return m.Alive() && m.Position.Dist(goal) <= config.GoalRadius
}

// Tick продвигает монстра на один кадр: движение для живого,
// анимация смерти для убитого.
func (m *Monster) Tick() {
	if m.SpeedMultiplier == 0 {
		return
	}
	if !m.Alive() {
		m.advanceDeath()
		return
	}
	m.move()
}

func (m *Monster) move() {
	if m.Waypoint >= m.Path.Len() {
		return
	}
	dest := cellPosition(m.Path.At(m.Waypoint))
	step := m.Speed * m.SpeedMultiplier
	if m.Position.Dist(dest) <= step {
		m.Position = dest
		m.Waypoint++
		return
	}

	dx, dy := m.Position.StepToward(dest, step)
	if !m.Behavior.Faces {
		return
	}
	switch {
	case dx < 0:
		m.Facing = gridmap.Left
	case dx > 0:
		m.Facing = gridmap.Right
	case dy < 0:
		m.Facing = gridmap.Up
	case dy > 0:
		m.Facing = gridmap.Down
	}
}

func (m *Monster) advanceDeath() {
	if m.deathImage >= config.DeathAnimImages {
		m.dead = true
		return
	}
	if m.deathFrame%config.DeathAnimFrameStep == 0 {
		m.deathImage++
	}
	m.deathFrame = int(float64(m.deathFrame) + m.SpeedMultiplier)
}

// SpawnChildren создаёт детей роя. Каждый ребёнок получает параметры родителя,
// его путь и прогресс по пути, и ставится недалеко от родителя.
func (m *Monster) SpawnChildren(rng Intner) []*Monster {
	if !m.Behavior.Swarm || m.SwarmCount <= 0 {
		return nil
	}
	childSpec := m.Spec()
	childSpec.Behavior = defs.MonsterLibrary[m.Behavior.SwarmChild]
	childSpec.SwarmCount = 0

	children := make([]*Monster, 0, m.SwarmCount)
	for i := 0; i < m.SwarmCount; i++ {
		child, err := NewMonster(childSpec, m.Path)
		if err != nil {
			// параметры уже проверены при создании родителя
			continue
		}
		child.Waypoint = m.Waypoint
		child.SpeedMultiplier = m.SpeedMultiplier
		child.Position = Position{
			X: m.Position.X + float64(rng.Intn(config.CellSize)),
			Y: m.Position.Y + float64(rng.Intn(config.CellSize)),
		}
		children = append(children, child)
	}
	return children
}
