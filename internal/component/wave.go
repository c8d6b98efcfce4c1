// internal/component/wave.go
package component

import "wizard-td/internal/config"

// Wave — одна волна, заранее построенный список монстров,
// выпускаемых равномерно за время волны.
type Wave struct {
	Number              int
	Duration            float64 // секунд
	PreWavePause        float64 // секунд
	Roster              []*Monster
	FramesBetweenSpawns float64
}

func NewWave(number int, cfg config.WaveConfig, roster []*Monster) *Wave {
	w := &Wave{
		Number:       number,
		Duration:     cfg.Duration,
		PreWavePause: cfg.PreWavePause,
		Roster:       roster,
	}
	if len(roster) > 0 {
		w.FramesBetweenSpawns = config.FPS * cfg.Duration / float64(len(roster))
	}
	return w
}

// Empty: все монстры волны уже выпущены
func (w *Wave) Empty() bool { return len(w.Roster) == 0 }

// Pop снимает первого монстра из списка
func (w *Wave) Pop() *Monster {
	if w.Empty() {
		return nil
	}
	m := w.Roster[0]
	w.Roster[0] = nil
	w.Roster = w.Roster[1:]
	return m
}
