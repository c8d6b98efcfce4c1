// internal/system/combat.go
package system

import (
	"wizard-td/internal/entity"
	"wizard-td/internal/event"
)

// CombatSystem тикает башни в порядке постройки
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, eventDispatcher: eventDispatcher}
}

func (s *CombatSystem) Update() {
	for _, t := range s.world.Towers {
		tier := t.Tier
		t.Tick(s.world.Monsters)
		if t.Tier != tier {
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.TowerTierUp,
				Data: event.TowerData{ID: uint64(t.ID), X: t.Cell.X, Y: t.Cell.Y, Tier: t.Tier},
			})
		}
	}
}

// SetSpeedMultiplier меняет скорость башен вместе с их снарядами
func (s *CombatSystem) SetSpeedMultiplier(mul float64) {
	for _, t := range s.world.Towers {
		t.SetSpeedMultiplier(mul)
	}
}

// ProjectileCount: снарядов в полёте
func (s *CombatSystem) ProjectileCount() int {
	n := 0
	for _, t := range s.world.Towers {
		n += len(t.Projectiles)
	}
	return n
}
