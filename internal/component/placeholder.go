// internal/component/placeholder.go
package component

import "wizard-td/pkg/gridmap"

// Placeholder: макет башни, который игрок двигает по полю до постройки.
// Не стреляет и не попадает в список активных башен.
type Placeholder struct {
	Cell     gridmap.Cell
	Position Position
	Visible  bool

	Range       float64
	FiringSpeed float64
	Damage      float64
	Upgrades

	BuildCost float64
	params    TowerParams
}

func NewPlaceholder(params TowerParams) *Placeholder {
	return &Placeholder{
		Range:       params.InitialRange,
		FiringSpeed: params.InitialFiringSpeed,
		Damage:      params.InitialDamage,
		Upgrades:    Upgrades{Tier: 1},
		BuildCost:   params.BaseCost,
		params:      params,
	}
}

// Show ставит макет на клетку
func (p *Placeholder) Show(cell gridmap.Cell) {
	p.Cell = cell
	p.Position = cellPosition(cell)
	p.Visible = true
}

func (p *Placeholder) Hide() { p.Visible = false }

// Upgrade поднимает ветку до первого уровня. Каждое поднятие
// добавляет к цене постройки цену первого улучшения.
func (p *Placeholder) Upgrade(track Track) bool {
	if p.Levels[track] != 0 {
		return false
	}
	p.apply(track, 1)
	return true
}

// Downgrade отменяет поднятие ветки
func (p *Placeholder) Downgrade(track Track) bool {
	if p.Levels[track] <= 0 {
		return false
	}
	p.apply(track, -1)
	return true
}

func (p *Placeholder) apply(track Track, sign float64) {
	switch track {
	case TrackRange:
		p.Range += sign * p.params.RangeIncrease
	case TrackFiringSpeed:
		p.FiringSpeed += sign * p.params.FiringSpeedIncrease
	case TrackDamage:
		p.Damage += sign * p.params.DamageIncrease
	}
	p.Levels[track] += int(sign)
	p.BuildCost += sign * p.params.InitialUpgradeCost
	if p.minLevel() >= 1 {
		p.Tier = 2
	} else {
		p.Tier = 1
	}
}

// Reset возвращает макет к базовой башне
func (p *Placeholder) Reset() {
	*p = *NewPlaceholder(p.params)
}
