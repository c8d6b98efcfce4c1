// internal/system/state.go
package system

import (
	"wizard-td/internal/component"
	"wizard-td/internal/entity"
	"wizard-td/internal/event"
)

// Outcome: результат партии
type Outcome int

const (
	Running Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "running"
	}
}

// StateSystem проверяет конец игры. Результат фиксируется один раз.
type StateSystem struct {
	world           *entity.World
	waves           *WaveSystem
	mana            *component.ManaPool
	eventDispatcher *event.Dispatcher
	outcome         Outcome
}

func NewStateSystem(world *entity.World, waves *WaveSystem, mana *component.ManaPool, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		world:           world,
		waves:           waves,
		mana:            mana,
		eventDispatcher: eventDispatcher,
	}
}

// Update возвращает true, если игра окончена
func (s *StateSystem) Update() bool {
	if s.outcome != Running {
		return true
	}
	switch {
	case s.waves.Finished() && len(s.world.Monsters) == 0:
		s.finish(Won, event.GameWon)
	case s.mana.Current() <= 0:
		s.finish(Lost, event.GameLost)
	default:
		return false
	}
	return true
}

func (s *StateSystem) finish(o Outcome, t event.EventType) {
	s.outcome = o
	s.eventDispatcher.Dispatch(event.Event{
		Type: t,
		Data: event.ResultData{Frame: s.world.Frame, Waves: s.waves.WaveNumber()},
	})
}

func (s *StateSystem) Outcome() Outcome { return s.outcome }
