// internal/app/tower_management.go
package app

import (
	"math"

	"wizard-td/internal/component"
	"wizard-td/internal/config"
	"wizard-td/internal/event"
	"wizard-td/pkg/gridmap"
)

// BeginBuild включает режим постройки со свежим макетом
func (g *Game) BeginBuild() {
	g.placeholder.Reset()
	g.building = true
}

func (g *Game) Building() bool { return g.building }

// Placeholder: текущий макет башни
func (g *Game) Placeholder() *component.Placeholder { return g.placeholder }

// MovePlaceholder ставит макет на клетку под курсором
func (g *Game) MovePlaceholder(cell gridmap.Cell) {
	if !g.building {
		return
	}
	if !g.Map.Contains(cell) {
		g.placeholder.Hide()
		return
	}
	g.placeholder.Show(cell)
}

func (g *Game) CancelBuild() {
	g.placeholder.Hide()
	g.building = false
}

// CanBuild: макет стоит на свободной траве и базовая цена меньше маны
func (g *Game) CanBuild() bool {
	p := g.placeholder
	return g.building && p.Visible && g.Map.CanPlaceTower(p.Cell) && g.Mana.CanAfford(g.TowerParams.BaseCost)
}

// CommitBuild строит башню на месте макета: списывает базовую цену
// и повторяет улучшения макета как обычные платные улучшения.
func (g *Game) CommitBuild() (*component.Tower, bool) {
	if g.Over() || !g.CanBuild() {
		return nil, false
	}
	p := g.placeholder

	tower := component.NewTower(g.TowerParams, p.Cell)
	tower.SetSpeedMultiplier(g.speed)
	g.Mana.Remove(g.TowerParams.BaseCost)
	for _, track := range component.Tracks {
		for l := 0; l < p.Level(track); l++ {
			tower.Upgrade(track, g.Mana)
		}
	}
	g.World.AddTower(tower)
	g.Map.SetOccupied(p.Cell, true)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerBuilt,
		Data: event.TowerData{ID: uint64(tower.ID), X: tower.Cell.X, Y: tower.Cell.Y, Tier: tower.Tier, Cost: p.BuildCost},
	})
	g.CancelBuild()
	return tower, true
}

func (g *Game) UpgradePlaceholder(track component.Track) bool {
	return g.building && g.placeholder.Upgrade(track)
}

func (g *Game) DowngradePlaceholder(track component.Track) bool {
	return g.building && g.placeholder.Downgrade(track)
}

// UpgradeTower улучшает ветку построенной башни за ману
func (g *Game) UpgradeTower(tower *component.Tower, track component.Track) bool {
	if tower == nil || g.Over() {
		return false
	}
	cost := tower.UpgradeCost(track)
	if !tower.Upgrade(track, g.Mana) {
		return false
	}
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerUpgraded,
		Data: event.TowerData{ID: uint64(tower.ID), X: tower.Cell.X, Y: tower.Cell.Y,
			Track: track.String(), Tier: tower.Tier, Cost: cost},
	})
	return true
}

// TowerAt ищет башню, центр которой не дальше половины клетки от точки поля
func (g *Game) TowerAt(x, y float64) *component.Tower {
	half := float64(config.CellSize) / 2
	for _, t := range g.World.Towers {
		if math.Abs(t.Position.X-x) <= half && math.Abs(t.Position.Y-y) <= half {
			return t
		}
	}
	return nil
}
