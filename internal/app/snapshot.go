// internal/app/snapshot.go
package app

import (
	"wizard-td/internal/component"
	"wizard-td/internal/system"
	"wizard-td/pkg/gridmap"
)

type MonsterView struct {
	ID         uint64
	Kind       string
	X, Y       float64
	HP, MaxHP  float64
	Alive      bool
	DeathImage int
	Facing     gridmap.Direction
}

type ProjectileView struct {
	TowerID uint64
	X, Y    float64
}

type TowerView struct {
	ID          uint64
	Cell        gridmap.Cell
	X, Y        float64
	Range       float64
	FiringSpeed float64
	Damage      float64
	Levels      [3]int
	Costs       [3]float64
	Tier        int
	TargetID    uint64 // 0: цели нет
}

type PlaceholderView struct {
	Visible   bool
	Cell      gridmap.Cell
	Range     float64
	Levels    [3]int
	Tier      int
	BuildCost float64
	CanBuild  bool
}

// Snapshot: копия состояния для отрисовки. Не ссылается на живые сущности.
type Snapshot struct {
	Frame       uint64
	Monsters    []MonsterView
	Towers      []TowerView
	Projectiles []ProjectileView
	Placeholder PlaceholderView
	Building    bool

	Mana       float64
	ManaCap    float64
	ManaPerSec float64
	BoostCost  float64

	Wave       int
	TotalWaves int
	Remaining  float64
	Pending    int

	Speed   float64
	Paused  bool
	Outcome system.Outcome
	Won     bool
	Lost    bool
	Stats   Stats
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Frame:      g.World.Frame,
		Building:   g.building,
		Mana:       g.Mana.Current(),
		ManaCap:    g.Mana.Cap(),
		ManaPerSec: g.Mana.PerSec(),
		BoostCost:  g.Mana.SpellCost(),
		Wave:       g.WaveSystem.WaveNumber(),
		TotalWaves: g.WaveSystem.TotalWaves(),
		Remaining:  g.WaveSystem.Remaining(),
		Pending:    g.WaveSystem.Pending(),
		Speed:      g.speed,
		Paused:     g.paused,
		Outcome:    g.Outcome(),
		Stats:      g.Stats.Stats(),
	}
	s.Won = s.Outcome == system.Won
	s.Lost = s.Outcome == system.Lost

	s.Monsters = make([]MonsterView, 0, len(g.World.Monsters))
	for _, m := range g.World.Monsters {
		s.Monsters = append(s.Monsters, MonsterView{
			ID:         uint64(m.ID),
			Kind:       string(m.Behavior.Kind),
			X:          m.Position.X,
			Y:          m.Position.Y,
			HP:         m.HP,
			MaxHP:      m.MaxHP,
			Alive:      m.Alive(),
			DeathImage: m.DeathImage(),
			Facing:     m.Facing,
		})
	}

	s.Towers = make([]TowerView, 0, len(g.World.Towers))
	for _, t := range g.World.Towers {
		s.Towers = append(s.Towers, towerView(t))
		for _, p := range t.Projectiles {
			s.Projectiles = append(s.Projectiles, ProjectileView{TowerID: uint64(t.ID), X: p.Position.X, Y: p.Position.Y})
		}
	}

	p := g.placeholder
	s.Placeholder = PlaceholderView{
		Visible:   g.building && p.Visible,
		Cell:      p.Cell,
		Range:     p.Range,
		Levels:    p.Levels,
		Tier:      p.Tier,
		BuildCost: p.BuildCost,
		CanBuild:  g.CanBuild(),
	}
	return s
}

func towerView(t *component.Tower) TowerView {
	v := TowerView{
		ID:          uint64(t.ID),
		Cell:        t.Cell,
		X:           t.Position.X,
		Y:           t.Position.Y,
		Range:       t.Range,
		FiringSpeed: t.FiringSpeed,
		Damage:      t.Damage,
		Levels:      t.Levels,
		Tier:        t.Tier,
	}
	for i, track := range component.Tracks {
		v.Costs[i] = t.UpgradeCost(track)
	}
	if t.Target != nil {
		v.TargetID = uint64(t.Target.ID)
	}
	return v
}
