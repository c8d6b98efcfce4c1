// internal/system/movement.go
package system

import (
	"wizard-td/internal/component"
	"wizard-td/internal/entity"
	"wizard-td/internal/event"
)

// MovementSystem двигает монстров, обрабатывает дошедших до дома
// и тех, чья анимация смерти закончилась.
type MovementSystem struct {
	world           *entity.World
	mana            *component.ManaPool
	goal            component.Position
	rng             component.Intner
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(world *entity.World, mana *component.ManaPool, goal component.Position,
	rng component.Intner, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{
		world:           world,
		mana:            mana,
		goal:            goal,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Update проходит по монстрам, не меняя список во время прохода.
// Дети роя добавляются и мёртвые убираются уже после обхода.
func (s *MovementSystem) Update() {
	var children []*component.Monster
	for _, m := range s.world.Monsters {
		if m.Dead() {
			continue
		}
		m.Tick()

		if m.ReachedGoal(s.goal) {
			s.mana.Remove(m.HP)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.MonsterLeaked,
				Data: event.MonsterData{ID: uint64(m.ID), Kind: string(m.Behavior.Kind), HP: m.HP, Mana: m.HP},
			})
			m.Respawn()
			continue
		}

		if m.Dead() {
			s.mana.Add(m.ManaOnDeath)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.MonsterKilled,
				Data: event.MonsterData{ID: uint64(m.ID), Kind: string(m.Behavior.Kind), Mana: m.ManaOnDeath},
			})
			children = append(children, m.SpawnChildren(s.rng)...)
		}
	}

	for _, c := range children {
		s.world.AddMonster(c)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.MonsterSpawned,
			Data: event.MonsterData{ID: uint64(c.ID), Kind: string(c.Behavior.Kind), HP: c.HP},
		})
	}
	s.world.SweepDead()
}

// SetSpeedMultiplier меняет скорость всех монстров на поле
func (s *MovementSystem) SetSpeedMultiplier(mul float64) {
	for _, m := range s.world.Monsters {
		m.SpeedMultiplier = mul
	}
}
