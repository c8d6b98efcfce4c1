// internal/system/mana.go
package system

import (
	"wizard-td/internal/component"
	"wizard-td/internal/event"
)

// ManaSystem восполняет ману и применяет заклинание усиления
type ManaSystem struct {
	pool            *component.ManaPool
	eventDispatcher *event.Dispatcher
}

func NewManaSystem(pool *component.ManaPool, eventDispatcher *event.Dispatcher) *ManaSystem {
	return &ManaSystem{pool: pool, eventDispatcher: eventDispatcher}
}

func (s *ManaSystem) Update() { s.pool.Tick() }

func (s *ManaSystem) SetSpeedMultiplier(mul float64) { s.pool.SetSpeedMultiplier(mul) }

// Boost применяет усиление, если хватает маны
func (s *ManaSystem) Boost() bool {
	if !s.pool.Boost() {
		return false
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ManaBoosted,
		Data: event.ManaData{Cap: s.pool.Cap(), PerSec: s.pool.PerSec(), NextCost: s.pool.SpellCost()},
	})
	return true
}
