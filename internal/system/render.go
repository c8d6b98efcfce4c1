// internal/system/render.go
package system

import (
	"image/color"

	"wizard-td/internal/component"
	"wizard-td/internal/config"
	"wizard-td/internal/entity"
	"wizard-td/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует поле и сущности. Поле сдвинуто вниз на высоту верхней панели.
type RenderSystem struct {
	world       *entity.World
	gameMap     *gridmap.Map
	placeholder *component.Placeholder
}

func NewRenderSystem(world *entity.World, gameMap *gridmap.Map, placeholder *component.Placeholder) *RenderSystem {
	return &RenderSystem{world: world, gameMap: gameMap, placeholder: placeholder}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawBoard(screen)

	for _, m := range s.world.Monsters {
		s.drawMonster(screen, m)
	}
	for _, t := range s.world.Towers {
		s.drawTower(screen, t)
	}
	if s.placeholder != nil && s.placeholder.Visible {
		s.drawPlaceholder(screen, s.placeholder)
	}
}

func (s *RenderSystem) drawBoard(screen *ebiten.Image) {
	for _, c := range s.gameMap.Cells() {
		tile := s.gameMap.Tiles[c]
		var clr color.RGBA
		switch tile.Kind {
		case gridmap.PathTile:
			clr = config.PathColor
		case gridmap.Shrub:
			clr = config.ShrubColor
		case gridmap.House:
			clr = config.HouseColor
		default:
			clr = config.GrassColor
		}
		x := float32(c.X * config.CellSize)
		y := float32(c.Y*config.CellSize + config.TopBar)
		vector.DrawFilledRect(screen, x, y, config.CellSize, config.CellSize, clr, false)
	}
}

func screenPos(p component.Position) (float32, float32) {
	return float32(p.X), float32(p.Y + config.TopBar)
}

func (s *RenderSystem) drawMonster(screen *ebiten.Image, m *component.Monster) {
	x, y := screenPos(m.Position)
	radius := float32(config.CellSize) / 3

	if !m.Alive() {
		// анимация смерти: монстр сжимается с каждым кадром
		shrink := float32(config.DeathAnimImages-m.DeathImage()) / config.DeathAnimImages
		vector.DrawFilledCircle(screen, x, y, radius*shrink, config.DyingColor, true)
		return
	}

	clr, ok := config.MonsterColors[string(m.Behavior.Kind)]
	if !ok {
		clr = config.DyingColor
	}
	vector.DrawFilledCircle(screen, x, y, radius, clr, true)
	if m.Behavior.Faces {
		fx, fy := facingOffset(m.Facing, radius)
		vector.DrawFilledCircle(screen, x+fx, y+fy, radius/3, config.TextColor, true)
	}

	// полоска здоровья над монстром
	barW := float32(config.CellSize) * 0.8
	barX := x - barW/2
	barY := y - radius - config.HealthBarHeight - 2
	vector.DrawFilledRect(screen, barX, barY, barW, config.HealthBarHeight, config.HealthBarBack, false)
	if m.MaxHP > 0 && m.HP > 0 {
		fill := float32(m.HP / m.MaxHP)
		if fill > 1 {
			fill = 1
		}
		vector.DrawFilledRect(screen, barX, barY, barW*fill, config.HealthBarHeight, config.HealthBarFill, false)
	}
}

func facingOffset(dir gridmap.Direction, r float32) (float32, float32) {
	switch dir {
	case gridmap.Down:
		return 0, r * 0.6
	case gridmap.Left:
		return -r * 0.6, 0
	case gridmap.Right:
		return r * 0.6, 0
	default:
		return 0, -r * 0.6
	}
}

func tierColor(tier int) color.RGBA {
	if tier < 1 {
		tier = 1
	}
	if tier > len(config.TowerTierColors) {
		tier = len(config.TowerTierColors)
	}
	return config.TowerTierColors[tier-1]
}

func (s *RenderSystem) drawTower(screen *ebiten.Image, t *component.Tower) {
	x, y := screenPos(t.Position)
	half := float32(config.CellSize) / 2
	vector.DrawFilledRect(screen, x-half+2, y-half+2, config.CellSize-4, config.CellSize-4, tierColor(t.Tier), false)
	drawUpgradeMarks(screen, x, y, t.Upgrades)

	for _, p := range t.Projectiles {
		px, py := screenPos(p.Position)
		vector.DrawFilledCircle(screen, px, py, 4, config.FireballColor, true)
	}
}

func (s *RenderSystem) drawPlaceholder(screen *ebiten.Image, p *component.Placeholder) {
	x, y := screenPos(p.Position)
	half := float32(config.CellSize) / 2
	vector.DrawFilledCircle(screen, x, y, float32(p.Range), config.RangeColor, true)
	vector.StrokeRect(screen, x-half+2, y-half+2, config.CellSize-4, config.CellSize-4, 2, config.PlaceholderColor, false)
	drawUpgradeMarks(screen, x, y, p.Upgrades)
}

// drawUpgradeMarks рисует по точке на каждый уровень ветки
func drawUpgradeMarks(screen *ebiten.Image, x, y float32, u component.Upgrades) {
	marks := []color.RGBA{config.RangeMarkColor, config.RateMarkColor, config.DamageMarkColor}
	for i, track := range component.Tracks {
		for l := 0; l < u.Level(track); l++ {
			mx := x - 10 + float32(l)*5
			my := y - 8 + float32(i)*8
			vector.DrawFilledCircle(screen, mx, my, 2, marks[i], false)
		}
	}
}
