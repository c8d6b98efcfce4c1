// internal/entity/world.go
package entity

import (
	"wizard-td/internal/component"
	"wizard-td/internal/types"
)

// World хранит активные сущности симуляции. Списки упорядочены:
// башни выбирают цель в порядке появления монстров, башни тикают в порядке постройки.
type World struct {
	Frame    uint64
	NextID   types.EntityID
	Monsters []*component.Monster
	Towers   []*component.Tower
}

func NewWorld() *World {
	return &World{NextID: 1}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddMonster выдаёт монстру ID и добавляет его в конец списка
func (w *World) AddMonster(m *component.Monster) {
	m.ID = w.NewEntity()
	w.Monsters = append(w.Monsters, m)
}

func (w *World) AddTower(t *component.Tower) {
	t.ID = w.NewEntity()
	w.Towers = append(w.Towers, t)
}

// SweepDead убирает монстров с завершённой анимацией смерти.
// Вызывается только после полного прохода по списку.
func (w *World) SweepDead() int {
	alive := w.Monsters[:0]
	for _, m := range w.Monsters {
		if !m.Dead() {
			alive = append(alive, m)
		}
	}
	removed := len(w.Monsters) - len(alive)
	for i := len(alive); i < len(w.Monsters); i++ {
		w.Monsters[i] = nil
	}
	w.Monsters = alive
	return removed
}

// Monster ищет монстра по ID
func (w *World) Monster(id types.EntityID) *component.Monster {
	for _, m := range w.Monsters {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// TowerAtCell возвращает башню, стоящую на клетке
func (w *World) TowerAtCell(x, y int) *component.Tower {
	for _, t := range w.Towers {
		if t.Cell.X == x && t.Cell.Y == y {
			return t
		}
	}
	return nil
}
