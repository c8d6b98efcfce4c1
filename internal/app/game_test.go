package app

import (
	"errors"
	"strings"
	"testing"

	"wizard-td/internal/component"
	"wizard-td/internal/config"
	"wizard-td/pkg/gridmap"
)

func testMap(t *testing.T, row5 string) *gridmap.Map {
	t.Helper()
	lines := make([]string, 20)
	lines[5] = row5
	m, err := gridmap.ParseLayout(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("ParseLayout failed: %v", err)
	}
	return m
}

func testConfig() *config.LevelConfig {
	return &config.LevelConfig{
		Waves: []config.WaveConfig{{
			Duration: 1,
			Monsters: []config.MonsterConfig{
				{Type: "gremlin", HP: 100, Speed: 1, ManaGainedOnKill: 10, Quantity: 1},
			},
		}},
		InitialTowerRange:         96,
		InitialTowerFiringSpeed:   1,
		InitialTowerDamage:        40,
		TowerCost:                 100,
		InitialMana:               200,
		InitialManaCap:            1000,
		ManaSpellInitialCost:      150,
		ManaSpellCostIncrease:     100,
		ManaSpellCapMultiplier:    1.5,
		ManaSpellGainedMultiplier: 1.1,
	}
}

func newTestGame(t *testing.T, cfg *config.LevelConfig) *Game {
	t.Helper()
	g, err := NewGame(cfg, testMap(t, "XXXXW"), WithSeed(1), WithLogging(false))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g
}

func ticks(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Tick()
	}
}

func TestNewGame_Errors(t *testing.T) {
	badArmour := testConfig()
	badArmour.Waves[0].Monsters[0].Armour = 1
	unknown := testConfig()
	unknown.Waves[0].Monsters[0].Type = "dragon"

	tests := []struct {
		name string
		cfg  *config.LevelConfig
		row  string
		want error
	}{
		{"nil config", nil, "XXXXW", ErrNilConfig},
		{"unreachable house", testConfig(), "XSXXW", ErrUnreachable},
		{"full armour", badArmour, "XXXXW", component.ErrInvalidArmor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGame(tt.cfg, testMap(t, tt.row), WithLogging(false))
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := NewGame(testConfig(), nil); !errors.Is(err, ErrNilMap) {
		t.Errorf("Expected ErrNilMap, got %v", err)
	}
	if _, err := NewGame(unknown, testMap(t, "XXXXW"), WithLogging(false)); err == nil {
		t.Error("Expected error for unknown monster type")
	}
}

func TestGame_BuildTower(t *testing.T) {
	g := newTestGame(t, testConfig())
	cell := gridmap.Cell{X: 2, Y: 4}

	g.BeginBuild()
	g.MovePlaceholder(cell)
	if !g.UpgradePlaceholder(component.TrackRange) {
		t.Fatal("placeholder range raise must apply")
	}
	if !g.CanBuild() {
		t.Fatal("grass cell with enough mana must be buildable")
	}
	tower, ok := g.CommitBuild()
	if !ok {
		t.Fatal("CommitBuild failed")
	}

	if g.Mana.Current() != 80 {
		t.Errorf("Expected base cost and one upgrade charged, mana=%v", g.Mana.Current())
	}
	if tower.Range != 128 || tower.Level(component.TrackRange) != 1 || tower.UpgradeCost(component.TrackRange) != 30 {
		t.Errorf("placeholder levels must become paid upgrades, got range=%v", tower.Range)
	}
	if g.Map.CanPlaceTower(cell) {
		t.Error("cell must be occupied after building")
	}
	if g.Building() {
		t.Error("build mode must end after commit")
	}

	s := g.Snapshot()
	if len(s.Towers) != 1 || s.Towers[0].Cell != cell || s.Stats.TowersBuilt != 1 {
		t.Errorf("unexpected snapshot: %+v", s.Towers)
	}

	g.BeginBuild()
	g.MovePlaceholder(cell)
	if _, ok := g.CommitBuild(); ok {
		t.Error("occupied cell must reject a second tower")
	}
	g.MovePlaceholder(gridmap.Cell{X: 1, Y: 5})
	if _, ok := g.CommitBuild(); ok {
		t.Error("path cell must reject a tower")
	}
	if g.TowerAt(90, 150) != tower {
		t.Error("TowerAt must find the tower within half a cell")
	}
	if g.TowerAt(100, 144) != nil {
		t.Error("TowerAt must ignore points further than half a cell")
	}
}

func TestGame_BuildNeedsMana(t *testing.T) {
	cfg := testConfig()
	cfg.TowerCost = 200
	g := newTestGame(t, cfg)
	g.BeginBuild()
	g.MovePlaceholder(gridmap.Cell{X: 2, Y: 4})
	if _, ok := g.CommitBuild(); ok {
		t.Error("base cost equal to mana must not build")
	}
	if g.Mana.Current() != 200 {
		t.Errorf("failed build must not charge, mana=%v", g.Mana.Current())
	}
}

func TestGame_BuildReplaysOnlyAffordableUpgrades(t *testing.T) {
	cfg := testConfig()
	cfg.InitialMana = 130
	g := newTestGame(t, cfg)
	g.BeginBuild()
	g.MovePlaceholder(gridmap.Cell{X: 2, Y: 4})
	g.UpgradePlaceholder(component.TrackRange)
	g.UpgradePlaceholder(component.TrackDamage)

	tower, ok := g.CommitBuild()
	if !ok {
		t.Fatal("base cost below mana must build")
	}
	if tower.Level(component.TrackRange) != 1 || tower.Level(component.TrackDamage) != 0 {
		t.Errorf("unexpected levels: %v", tower.Levels)
	}
	if g.Mana.Current() != 10 {
		t.Errorf("Expected 10 mana left, got %v", g.Mana.Current())
	}
}

func TestGame_UpgradeTowerAndBoost(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.BeginBuild()
	g.MovePlaceholder(gridmap.Cell{X: 2, Y: 4})
	tower, _ := g.CommitBuild()

	if !g.UpgradeTower(tower, component.TrackDamage) || tower.Damage != 60 {
		t.Errorf("Expected damage upgrade, got %v", tower.Damage)
	}
	if g.UpgradeTower(nil, component.TrackDamage) {
		t.Error("nil tower must not upgrade")
	}
	if g.BoostMana() {
		t.Error("boost costs 150 and only 80 mana is left")
	}
	g.Mana.Add(200)
	if !g.BoostMana() {
		t.Fatal("boost must apply")
	}
	s := g.Snapshot()
	if s.BoostCost != 250 || s.ManaCap != 1500 || s.Stats.Upgrades != 1 || s.Stats.Boosts != 1 {
		t.Errorf("unexpected snapshot: %+v", s)
	}
}

func TestGame_PausePreservesState(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.TogglePause()
	ticks(g, 50)
	s := g.Snapshot()
	if s.Frame != 0 || s.Wave != 0 || !s.Paused {
		t.Fatalf("paused game must not advance, got frame=%d wave=%d", s.Frame, s.Wave)
	}
	g.SetPaused(false)
	g.Tick()
	if s := g.Snapshot(); s.Frame != 1 || s.Wave != 1 {
		t.Errorf("Expected first frame to start the wave, got frame=%d wave=%d", s.Frame, s.Wave)
	}
}

func TestGame_SpeedPropagation(t *testing.T) {
	cfg := testConfig()
	cfg.Waves[0].Monsters[0].Quantity = 2
	cfg.Waves[0].Monsters[0].Speed = 0.5
	g := newTestGame(t, cfg)

	g.Tick() // волна стартует
	g.SetSpeed(config.FastForwardSpeed)
	g.Tick() // первый монстр
	if len(g.World.Monsters) != 1 || g.World.Monsters[0].SpeedMultiplier != 2 {
		t.Fatal("monster spawned after SetSpeed must inherit it")
	}

	ticks(g, 15)
	if len(g.World.Monsters) != 2 {
		t.Fatalf("Expected second spawn at double speed, got %d", len(g.World.Monsters))
	}

	g.ToggleFastForward()
	for _, m := range g.World.Monsters {
		if m.SpeedMultiplier != 1 {
			t.Errorf("monster %d kept speed %v", m.ID, m.SpeedMultiplier)
		}
	}
	if s := g.Snapshot(); s.Speed != 1 {
		t.Errorf("Expected speed 1 in snapshot, got %v", s.Speed)
	}
}

func TestGame_LeakLosesGame(t *testing.T) {
	cfg := testConfig()
	cfg.Waves[0].Monsters[0].HP = 1000
	cfg.Waves[0].Monsters[0].Speed = 8
	g := newTestGame(t, cfg)

	ticks(g, 100)
	s := g.Snapshot()
	if !s.Lost || s.Won {
		t.Fatalf("Expected loss, got %+v", s.Outcome)
	}
	if s.Mana != 0 || s.Stats.Leaked < 1 || s.Stats.ManaLost < 1000 {
		t.Errorf("leak must drain the pool: mana=%v stats=%+v", s.Mana, s.Stats)
	}

	ticks(g, 10)
	if g.Snapshot().Frame != s.Frame {
		t.Error("finished game must not advance")
	}
	if g.BoostMana() {
		t.Error("finished game must reject commands")
	}
}

func TestGame_KillAllWins(t *testing.T) {
	g := newTestGame(t, testConfig())
	ticks(g, 2)
	if len(g.World.Monsters) != 1 {
		t.Fatalf("Expected one monster, got %d", len(g.World.Monsters))
	}
	g.World.Monsters[0].Kill()

	ticks(g, 30)
	s := g.Snapshot()
	if !s.Won {
		t.Fatalf("Expected win, got %v", s.Outcome)
	}
	if s.Mana != 210 || s.Stats.Killed != 1 || len(s.Monsters) != 0 {
		t.Errorf("unexpected end state: mana=%v stats=%+v", s.Mana, s.Stats)
	}
}

func TestGame_TowerDefendsHouse(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.BeginBuild()
	g.MovePlaceholder(gridmap.Cell{X: 2, Y: 4})
	if _, ok := g.CommitBuild(); !ok {
		t.Fatal("CommitBuild failed")
	}

	ticks(g, 300)
	s := g.Snapshot()
	if !s.Won || s.Stats.Killed != 1 || s.Stats.Leaked != 0 {
		t.Errorf("tower must stop the gremlin: outcome=%v stats=%+v", s.Outcome, s.Stats)
	}
}

func TestGame_Restart(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.BeginBuild()
	g.MovePlaceholder(gridmap.Cell{X: 2, Y: 4})
	g.CommitBuild()
	ticks(g, 10)

	next, err := g.Restart(WithLogging(false))
	if err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	s := next.Snapshot()
	if s.Frame != 0 || len(s.Towers) != 0 || s.Mana != 200 {
		t.Errorf("restart must start a fresh game, got %+v", s)
	}
	if !next.Map.CanPlaceTower(gridmap.Cell{X: 2, Y: 4}) {
		t.Error("restart must free built cells")
	}
}

func TestGame_SnapshotPlaceholder(t *testing.T) {
	g := newTestGame(t, testConfig())
	if g.Snapshot().Placeholder.Visible {
		t.Fatal("placeholder hidden outside build mode")
	}
	g.BeginBuild()
	g.MovePlaceholder(gridmap.Cell{X: 2, Y: 4})
	g.UpgradePlaceholder(component.TrackFiringSpeed)
	p := g.Snapshot().Placeholder
	if !p.Visible || p.BuildCost != 120 || !p.CanBuild || p.Levels[component.TrackFiringSpeed] != 1 {
		t.Errorf("unexpected placeholder view: %+v", p)
	}
	g.CancelBuild()
	if g.Snapshot().Placeholder.Visible {
		t.Error("CancelBuild must hide the placeholder")
	}
}
