package component

import (
	"testing"

	"wizard-td/internal/config"
	"wizard-td/pkg/gridmap"
)

type testWallet struct {
	mana float64
}

func (w *testWallet) Current() float64 { return w.mana }

func (w *testWallet) Remove(amount float64) {
	w.mana -= amount
	if w.mana < 0 {
		w.mana = 0
	}
}

func testParams() TowerParams {
	return TowerParams{
		BaseCost:             100,
		InitialRange:         96,
		InitialFiringSpeed:   1,
		InitialDamage:        40,
		InitialUpgradeCost:   20,
		CostIncreasePerLevel: 10,
		RangeIncrease:        32,
		FiringSpeedIncrease:  0.5,
		DamageIncrease:       20,
	}
}

func TestNewTowerParams(t *testing.T) {
	p := NewTowerParams(&config.LevelConfig{
		TowerCost:               100,
		InitialTowerRange:       96,
		InitialTowerFiringSpeed: 1.5,
		InitialTowerDamage:      40,
	})
	if p.DamageIncrease != 20 {
		t.Errorf("Expected damage increase of half the initial damage, got %v", p.DamageIncrease)
	}
	if p.InitialUpgradeCost != 20 || p.CostIncreasePerLevel != 10 || p.RangeIncrease != 32 || p.FiringSpeedIncrease != 0.5 {
		t.Errorf("unexpected tower manager constants: %+v", p)
	}
}

func TestTower_Upgrade(t *testing.T) {
	tests := []struct {
		name      string
		track     Track
		mana      float64
		applied   bool
		wantMana  float64
		wantStat  float64
		wantLevel int
	}{
		{"range", TrackRange, 25, true, 5, 128, 1},
		{"firing speed", TrackFiringSpeed, 25, true, 5, 1.5, 1},
		{"damage", TrackDamage, 25, true, 5, 60, 1},
		{"exact cost is not enough", TrackRange, 20, false, 20, 96, 0},
		{"shortfall", TrackDamage, 10, false, 10, 40, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tower := NewTower(testParams(), gridmap.Cell{X: 0, Y: 0})
			w := &testWallet{mana: tt.mana}
			if got := tower.Upgrade(tt.track, w); got != tt.applied {
				t.Fatalf("Upgrade returned %v, want %v", got, tt.applied)
			}
			if w.mana != tt.wantMana {
				t.Errorf("Expected mana %v, got %v", tt.wantMana, w.mana)
			}
			var stat float64
			switch tt.track {
			case TrackRange:
				stat = tower.Range
			case TrackFiringSpeed:
				stat = tower.FiringSpeed
			case TrackDamage:
				stat = tower.Damage
			}
			if stat != tt.wantStat {
				t.Errorf("Expected stat %v, got %v", tt.wantStat, stat)
			}
			if tower.Level(tt.track) != tt.wantLevel {
				t.Errorf("Expected level %d, got %d", tt.wantLevel, tower.Level(tt.track))
			}
		})
	}
}

func TestTower_UpgradeCostGrows(t *testing.T) {
	tower := NewTower(testParams(), gridmap.Cell{})
	w := &testWallet{mana: 1000}
	for _, want := range []float64{20, 30, 40} {
		if got := tower.UpgradeCost(TrackRange); got != want {
			t.Errorf("Expected cost %v, got %v", want, got)
		}
		tower.UpgradeRange(w)
	}
	if w.mana != 1000-20-30-40 {
		t.Errorf("Expected all three upgrades charged, got %v", w.mana)
	}
}

func TestTower_FiringSpeedRecomputesFrames(t *testing.T) {
	tower := NewTower(testParams(), gridmap.Cell{})
	if tower.FramesBetweenShots != 60 {
		t.Fatalf("Expected 60 frames between shots, got %v", tower.FramesBetweenShots)
	}
	tower.UpgradeFiringSpeed(&testWallet{mana: 100})
	if tower.FramesBetweenShots != 40 {
		t.Errorf("Expected 40 frames between shots, got %v", tower.FramesBetweenShots)
	}
}

func TestTower_Tier(t *testing.T) {
	tower := NewTower(testParams(), gridmap.Cell{})
	w := &testWallet{mana: 10000}

	if tower.UpgradeTierIfPossible() {
		t.Fatal("fresh tower must stay tier 1")
	}
	tower.UpgradeRange(w)
	tower.UpgradeFiringSpeed(w)
	if tower.UpgradeTierIfPossible() {
		t.Fatal("tier needs every track")
	}
	tower.UpgradeDamage(w)
	if !tower.UpgradeTierIfPossible() || tower.Tier != 2 {
		t.Fatalf("Expected tier 2, got %d", tower.Tier)
	}
	if tower.UpgradeTierIfPossible() {
		t.Fatal("tier 3 needs level 2 everywhere")
	}
	for _, track := range Tracks {
		tower.Upgrade(track, w)
	}
	if !tower.UpgradeTierIfPossible() || tower.Tier != 3 {
		t.Fatalf("Expected tier 3, got %d", tower.Tier)
	}
	for _, track := range Tracks {
		tower.Upgrade(track, w)
	}
	if tower.UpgradeTierIfPossible() || tower.Tier != 3 {
		t.Errorf("tier must stop at 3, got %d", tower.Tier)
	}
}

func TestTower_FiresAtTargetInRange(t *testing.T) {
	tower := NewTower(testParams(), gridmap.Cell{X: 0, Y: 0})
	m := mustMonster(t, gremlin(100, 1, 0), testPath(gridmap.Cell{X: 1, Y: 0}, gridmap.Cell{X: 2, Y: 0}))
	monsters := []*Monster{m}

	tower.Tick(monsters)
	if tower.Target != m {
		t.Fatal("monster in range must be targeted")
	}
	if len(tower.Projectiles) != 1 {
		t.Fatalf("Expected one projectile, got %d", len(tower.Projectiles))
	}

	for i := 0; i < 7; i++ {
		tower.Tick(monsters)
	}
	if m.HP != 60 {
		t.Errorf("Expected fireball to hit for 40, HP=%v", m.HP)
	}
	if len(tower.Projectiles) != 0 {
		t.Errorf("reached projectile must be swept, got %d", len(tower.Projectiles))
	}
}

func TestTower_Targeting(t *testing.T) {
	far := testPath(gridmap.Cell{X: 10, Y: 0})
	near := testPath(gridmap.Cell{X: 1, Y: 0})
	edge := testPath(gridmap.Cell{X: 3, Y: 0}) // ровно на границе радиуса 96

	tests := []struct {
		name     string
		monsters func(t *testing.T) []*Monster
		want     int // индекс ожидаемой цели, -1: нет цели
	}{
		{"out of range", func(t *testing.T) []*Monster {
			return []*Monster{mustMonster(t, gremlin(100, 1, 0), far)}
		}, -1},
		{"first eligible wins", func(t *testing.T) []*Monster {
			return []*Monster{
				mustMonster(t, gremlin(100, 1, 0), far),
				mustMonster(t, gremlin(100, 1, 0), edge),
				mustMonster(t, gremlin(100, 1, 0), near),
			}
		}, 1},
		{"dying monsters are skipped", func(t *testing.T) []*Monster {
			dying := mustMonster(t, gremlin(100, 1, 0), near)
			dying.Kill()
			return []*Monster{dying, mustMonster(t, gremlin(100, 1, 0), near)}
		}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tower := NewTower(testParams(), gridmap.Cell{X: 0, Y: 0})
			monsters := tt.monsters(t)
			tower.Tick(monsters)
			if tt.want < 0 {
				if tower.Target != nil || len(tower.Projectiles) != 0 {
					t.Errorf("Expected no target and no shot")
				}
				return
			}
			if tower.Target != monsters[tt.want] {
				t.Errorf("Expected monster %d as target", tt.want)
			}
		})
	}
}

func TestTower_SetSpeedMultiplierReachesProjectiles(t *testing.T) {
	tower := NewTower(testParams(), gridmap.Cell{X: 0, Y: 0})
	m := mustMonster(t, gremlin(100, 1, 0), testPath(gridmap.Cell{X: 2, Y: 0}))
	tower.Tick([]*Monster{m})
	tower.SetSpeedMultiplier(2)
	if tower.Projectiles[0].SpeedMultiplier != 2 {
		t.Errorf("live projectile must follow the tower speed, got %v", tower.Projectiles[0].SpeedMultiplier)
	}
}
