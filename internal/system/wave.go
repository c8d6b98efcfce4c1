// internal/system/wave.go
package system

import (
	"math"

	"wizard-td/internal/component"
	"wizard-td/internal/config"
	"wizard-td/internal/entity"
	"wizard-td/internal/event"
)

// WaveSystem выпускает волны по таймеру: пауза перед волной, затем
// монстры волны равномерно распределены по её длительности.
type WaveSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher

	queue        []*component.Wave
	current      *component.Wave
	total        int
	number       int
	remaining    float64 // секунд до следующей волны
	frameCounter float64
	speedMul     float64
}

func NewWaveSystem(world *entity.World, eventDispatcher *event.Dispatcher, waves []*component.Wave) *WaveSystem {
	s := &WaveSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		queue:           waves,
		total:           len(waves),
		speedMul:        1,
	}
	if len(waves) > 0 {
		s.remaining = waves[0].PreWavePause
	}
	return s
}

func (s *WaveSystem) Update() {
	if s.remaining <= 0 && len(s.queue) > 0 {
		s.startNextWave()
		return
	}

	// после последней волны таймер замирает
	if len(s.queue) > 0 {
		s.remaining -= s.speedMul / config.FPS
	}

	if s.current == nil {
		return
	}
	if s.current.Empty() {
		s.frameCounter = 0
		return
	}
	if math.Round(math.Mod(s.frameCounter, s.current.FramesBetweenSpawns)) == 0 {
		s.spawn(s.current.Pop())
	}
	s.frameCounter += s.speedMul
}

func (s *WaveSystem) startNextWave() {
	s.current = s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]

	s.remaining = s.current.Duration
	if len(s.queue) > 0 {
		s.remaining += s.queue[0].PreWavePause
	}
	s.number++

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Number: s.number, Total: s.total, Monsters: len(s.current.Roster)},
	})
}

func (s *WaveSystem) spawn(m *component.Monster) {
	m.SpeedMultiplier = s.speedMul
	s.world.AddMonster(m)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.MonsterSpawned,
		Data: event.MonsterData{ID: uint64(m.ID), Kind: string(m.Behavior.Kind), HP: m.HP},
	})
}

// Finished: все волны выпущены и последний список монстров пуст
func (s *WaveSystem) Finished() bool {
	return len(s.queue) == 0 && (s.current == nil || s.current.Empty())
}

func (s *WaveSystem) SetSpeedMultiplier(mul float64) { s.speedMul = mul }

// WaveNumber: номер текущей волны, 0 до начала первой
func (s *WaveSystem) WaveNumber() int { return s.number }

func (s *WaveSystem) TotalWaves() int { return s.total }

// Remaining: секунд до следующей волны
func (s *WaveSystem) Remaining() float64 { return s.remaining }

// Pending: монстров, ещё не выпущенных на поле
func (s *WaveSystem) Pending() int {
	n := 0
	if s.current != nil {
		n += len(s.current.Roster)
	}
	for _, w := range s.queue {
		n += len(w.Roster)
	}
	return n
}
