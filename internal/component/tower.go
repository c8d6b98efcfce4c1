// internal/component/tower.go
package component

import (
	"math"

	"wizard-td/internal/config"
	"wizard-td/internal/types"
	"wizard-td/pkg/gridmap"
)

// Track: одна из трёх веток улучшения башни
type Track int

const (
	TrackRange Track = iota
	TrackFiringSpeed
	TrackDamage
)

// Tracks: все ветки в порядке отображения на панели
var Tracks = []Track{TrackRange, TrackFiringSpeed, TrackDamage}

func (t Track) String() string {
	switch t {
	case TrackRange:
		return "range"
	case TrackFiringSpeed:
		return "firing speed"
	case TrackDamage:
		return "damage"
	default:
		return "unknown"
	}
}

// Upgrades: уровни веток и тир башни, общие для построенной башни и макета
type Upgrades struct {
	Levels [3]int
	Tier   int
}

func (u Upgrades) Level(t Track) int { return u.Levels[t] }

func (u Upgrades) minLevel() int {
	lowest := u.Levels[0]
	for _, l := range u.Levels[1:] {
		if l < lowest {
			lowest = l
		}
	}
	return lowest
}

// TowerParams: параметры башен уровня
type TowerParams struct {
	BaseCost           float64
	InitialRange       float64
	InitialFiringSpeed float64 // выстрелов в секунду
	InitialDamage      float64

	InitialUpgradeCost   float64
	CostIncreasePerLevel float64
	RangeIncrease        float64
	FiringSpeedIncrease  float64
	DamageIncrease       float64
}

// NewTowerParams собирает параметры из конфига уровня и констант
func NewTowerParams(cfg *config.LevelConfig) TowerParams {
	return TowerParams{
		BaseCost:             cfg.TowerCost,
		InitialRange:         cfg.InitialTowerRange,
		InitialFiringSpeed:   cfg.InitialTowerFiringSpeed,
		InitialDamage:        cfg.InitialTowerDamage,
		InitialUpgradeCost:   config.InitialUpgradeCost,
		CostIncreasePerLevel: config.CostIncreasePerLevel,
		RangeIncrease:        config.RangeIncreasePerUpgrade,
		FiringSpeedIncrease:  config.FiringSpeedIncreasePerUpgrade,
		DamageIncrease:       cfg.InitialTowerDamage / 2,
	}
}

// Tower: построенная башня, стреляющая огненными шарами.
type Tower struct {
	ID       types.EntityID
	Cell     gridmap.Cell
	Position Position

	Range              float64
	FiringSpeed        float64
	Damage             float64
	FramesBetweenShots float64
	Upgrades

	SpeedMultiplier float64
	Target          *Monster
	Projectiles     []*Projectile

	params       TowerParams
	costs        [3]float64
	frameCounter float64
}

func NewTower(params TowerParams, cell gridmap.Cell) *Tower {
	t := &Tower{
		Cell:            cell,
		Position:        cellPosition(cell),
		Range:           params.InitialRange,
		FiringSpeed:     params.InitialFiringSpeed,
		Damage:          params.InitialDamage,
		Upgrades:        Upgrades{Tier: 1},
		SpeedMultiplier: 1,
		params:          params,
	}
	t.FramesBetweenShots = config.FPS / t.FiringSpeed
	for i := range t.costs {
		t.costs[i] = params.InitialUpgradeCost
	}
	return t
}

// UpgradeCost: цена следующего улучшения ветки
func (t *Tower) UpgradeCost(track Track) float64 { return t.costs[track] }

// Upgrade улучшает ветку, если маны строго больше цены.
func (t *Tower) Upgrade(track Track, w Wallet) bool {
	cost := t.costs[track]
	if cost >= w.Current() {
		return false
	}
	w.Remove(cost)
	switch track {
	case TrackRange:
		t.Range += t.params.RangeIncrease
	case TrackFiringSpeed:
		t.FiringSpeed += t.params.FiringSpeedIncrease
		t.FramesBetweenShots = config.FPS / t.FiringSpeed
	case TrackDamage:
		t.Damage += t.params.DamageIncrease
	}
	t.Levels[track]++
	t.costs[track] += t.params.CostIncreasePerLevel
	return true
}

func (t *Tower) UpgradeRange(w Wallet) bool { return t.Upgrade(TrackRange, w) }

func (t *Tower) UpgradeFiringSpeed(w Wallet) bool { return t.Upgrade(TrackFiringSpeed, w) }

func (t *Tower) UpgradeDamage(w Wallet) bool { return t.Upgrade(TrackDamage, w) }

// UpgradeTierIfPossible поднимает тир на один шаг, когда все ветки
// доросли до текущего тира. Выше MaxTowerTier не растёт.
func (t *Tower) UpgradeTierIfPossible() bool {
	if t.Tier >= config.MaxTowerTier {
		return false
	}
	if t.minLevel() >= t.Tier {
		t.Tier++
		return true
	}
	return false
}

// SetSpeedMultiplier меняет скорость башни и уже летящих снарядов
func (t *Tower) SetSpeedMultiplier(mul float64) {
	t.SpeedMultiplier = mul
	for _, p := range t.Projectiles {
		p.SpeedMultiplier = mul
	}
}

// InRange: монстр в радиусе действия
func (t *Tower) InRange(m *Monster) bool {
	return t.Position.Dist(m.Position) <= t.Range
}

// AcquireTarget: первый живой монстр в радиусе в порядке обхода
func (t *Tower) AcquireTarget(monsters []*Monster) *Monster {
	for _, m := range monsters {
		if m.Alive() && t.InRange(m) {
			return m
		}
	}
	return nil
}

// Tick: проверка тира, выбор цели, полёт снарядов, выстрел.
func (t *Tower) Tick(monsters []*Monster) {
	t.UpgradeTierIfPossible()
	t.Target = t.AcquireTarget(monsters)
	t.tickProjectiles()

	if t.Target == nil {
		t.frameCounter = 0
		return
	}
	if math.Round(math.Mod(t.frameCounter, t.FramesBetweenShots)) == 0 {
		t.Projectiles = append(t.Projectiles,
			NewProjectile(t.Position, t.Target, t.Damage, t.SpeedMultiplier))
	}
	t.frameCounter += t.SpeedMultiplier
}

func (t *Tower) tickProjectiles() {
	for _, p := range t.Projectiles {
		p.Tick()
	}
	alive := t.Projectiles[:0]
	for _, p := range t.Projectiles {
		if !p.Reached() {
			alive = append(alive, p)
		}
	}
	for i := len(alive); i < len(t.Projectiles); i++ {
		t.Projectiles[i] = nil
	}
	t.Projectiles = alive
}
