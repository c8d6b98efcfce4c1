// internal/component/mana.go
package component

import "wizard-td/internal/config"

// Wallet: то, с чего списывается мана за покупки
type Wallet interface {
	Current() float64
	Remove(amount float64)
}

// ManaPool: восполняемый запас маны с потолком и заклинанием усиления.
type ManaPool struct {
	current  float64
	cap      float64
	perSec   float64
	speedMul float64

	spellCost              float64
	spellCostIncrease      float64
	spellCapMultiplier     float64
	spellPerSecMultiplier  float64
	perSecMultiplierGrowth float64
}

// NewManaPool создаёт пул из параметров уровня
func NewManaPool(cfg *config.LevelConfig) *ManaPool {
	return &ManaPool{
		current:                cfg.InitialMana,
		cap:                    cfg.InitialManaCap,
		perSec:                 cfg.InitialManaGainedPerSec,
		speedMul:               1,
		spellCost:              cfg.ManaSpellInitialCost,
		spellCostIncrease:      cfg.ManaSpellCostIncrease,
		spellCapMultiplier:     cfg.ManaSpellCapMultiplier,
		spellPerSecMultiplier:  cfg.ManaSpellGainedMultiplier,
		perSecMultiplierGrowth: cfg.ManaSpellGainedMultiplier - 1,
	}
}

func (p *ManaPool) Current() float64 { return p.current }

func (p *ManaPool) Cap() float64 { return p.cap }

func (p *ManaPool) PerSec() float64 { return p.perSec }

// SpellCost: цена следующего усиления
func (p *ManaPool) SpellCost() float64 { return p.spellCost }

// SpellPerSecMultiplier: множитель прироста, который применит следующее усиление
func (p *ManaPool) SpellPerSecMultiplier() float64 { return p.spellPerSecMultiplier }

func (p *ManaPool) SetSpeedMultiplier(mul float64) { p.speedMul = mul }

func (p *ManaPool) Add(amount float64) { p.current += amount }

// Remove списывает ману, не опуская её ниже нуля
func (p *ManaPool) Remove(amount float64) {
	if amount > p.current {
		p.current = 0
		return
	}
	p.current -= amount
}

// CanAfford: покупка возможна только если цена строго меньше текущей маны
func (p *ManaPool) CanAfford(cost float64) bool {
	return cost < p.current
}

// Tick восполняет ману. Пустой пул сам не восстанавливается.
func (p *ManaPool) Tick() {
	if p.current >= p.cap {
		p.current = p.cap
	} else if p.current > 0 {
		p.current += p.perSec * p.speedMul / config.FPS
	}
}

// Boost применяет заклинание усиления: поднимает потолок и прирост,
// растит собственный множитель прироста и цену следующего использования.
func (p *ManaPool) Boost() bool {
	if !p.CanAfford(p.spellCost) {
		return false
	}
	p.Remove(p.spellCost)
	p.cap *= p.spellCapMultiplier
	p.perSec *= p.spellPerSecMultiplier
	p.spellPerSecMultiplier += p.perSecMultiplierGrowth
	p.spellCost += p.spellCostIncrease
	return true
}
