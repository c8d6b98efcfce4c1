// internal/app/listeners.go
package app

import (
	"log"

	"wizard-td/internal/event"
)

// LogListener пишет в журнал редкие события партии. Покадровые события не логируются.
type LogListener struct{}

func NewLogListener() *LogListener { return &LogListener{} }

func (l *LogListener) OnEvent(e event.Event) {
	switch d := e.Data.(type) {
	case event.WaveData:
		log.Printf("Wave %d/%d started: %d monsters", d.Number, d.Total, d.Monsters)
	case event.TowerData:
		switch e.Type {
		case event.TowerBuilt:
			log.Printf("Tower %d built at (%d, %d) for %.0f mana", d.ID, d.X, d.Y, d.Cost)
		case event.TowerTierUp:
			log.Printf("Tower %d reached tier %d", d.ID, d.Tier)
		}
	case event.ManaData:
		log.Printf("Mana pool boosted: cap %.0f, %.2f/s, next boost %.0f", d.Cap, d.PerSec, d.NextCost)
	case event.ResultData:
		if e.Type == event.GameWon {
			log.Printf("Game won at frame %d after %d waves", d.Frame, d.Waves)
		} else {
			log.Printf("Game lost at frame %d on wave %d", d.Frame, d.Waves)
		}
	}
}

// Stats: счётчики партии для HUD и тестов
type Stats struct {
	Spawned     int
	Killed      int
	Leaked      int
	ManaEarned  float64
	ManaLost    float64
	TowersBuilt int
	Upgrades    int
	TierUps     int
	Boosts      int
	WavesSeen   int
}

// StatsListener считает события партии
type StatsListener struct {
	stats Stats
}

func NewStatsListener() *StatsListener { return &StatsListener{} }

func (l *StatsListener) Stats() Stats { return l.stats }

func (l *StatsListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.MonsterSpawned:
		l.stats.Spawned++
	case event.MonsterKilled:
		l.stats.Killed++
		if d, ok := e.Data.(event.MonsterData); ok {
			l.stats.ManaEarned += d.Mana
		}
	case event.MonsterLeaked:
		l.stats.Leaked++
		if d, ok := e.Data.(event.MonsterData); ok {
			l.stats.ManaLost += d.Mana
		}
	case event.WaveStarted:
		l.stats.WavesSeen++
	case event.TowerBuilt:
		l.stats.TowersBuilt++
	case event.TowerUpgraded:
		l.stats.Upgrades++
	case event.TowerTierUp:
		l.stats.TierUps++
	case event.ManaBoosted:
		l.stats.Boosts++
	}
}
