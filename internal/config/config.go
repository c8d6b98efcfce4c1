// internal/config/config.go
package config

import "image/color"

const (
	FPS         = 60 // Кадров в секунду, один Tick: один кадр
	CellSize    = 32 // Размер клетки в пикселях
	BoardWidth  = 20 // Ширина поля в клетках
	BoardHeight = 20 // Высота поля в клетках

	LevelWidth  = CellSize * BoardWidth
	LevelHeight = CellSize * BoardHeight
	TopBar      = 40
	SideBar     = 120

	ScreenWidth  = LevelWidth + SideBar
	ScreenHeight = LevelHeight + TopBar

	GoalRadius = 5.0 // Монстр дошёл до дома, если центр ближе этого расстояния

	DeathAnimImages    = 5 // Количество кадров анимации смерти
	DeathAnimFrameStep = DeathAnimImages - 1

	ProjectileSpeed     = 5.0 // пикселей за кадр
	ProjectileHitRadius = 6.0 // пикселей

	InitialUpgradeCost            = 20.0
	CostIncreasePerLevel          = 10.0
	RangeIncreasePerUpgrade       = float64(CellSize)
	FiringSpeedIncreasePerUpgrade = 0.5

	MaxTowerTier = 3

	NormalSpeed      = 1.0
	FastForwardSpeed = 2.0

	HealthBarHeight = 4
	ButtonSize      = 40
	ButtonGap       = 10
)

var (
	BackgroundColor = color.RGBA{200, 100, 50, 255}
	GrassColor      = color.RGBA{90, 160, 70, 255}
	PathColor       = color.RGBA{190, 170, 120, 255}
	ShrubColor      = color.RGBA{40, 90, 40, 255}
	HouseColor      = color.RGBA{150, 70, 160, 255}
	EntryColor      = color.RGBA{0, 255, 0, 255}

	MonsterColors = map[string]color.RGBA{
		"gremlin": {120, 200, 90, 255},
		"worm":    {220, 160, 180, 255},
		"beetle":  {60, 60, 140, 255},
		"moag":    {200, 0, 100, 255},
	}
	DyingColor      = color.RGBA{80, 80, 80, 200}
	TowerTierColors = []color.RGBA{
		{160, 160, 160, 255}, // tier 1
		{200, 150, 60, 255},  // tier 2
		{230, 60, 60, 255},   // tier 3
	}
	PlaceholderColor = color.RGBA{255, 255, 255, 120}
	RangeColor       = color.RGBA{20, 20, 20, 50}
	FireballColor    = color.RGBA{255, 120, 0, 255}

	RangeMarkColor  = color.RGBA{0, 220, 0, 255}
	RateMarkColor   = color.RGBA{0, 150, 255, 255}
	DamageMarkColor = color.RGBA{240, 0, 0, 255}

	HealthBarBack = color.RGBA{255, 0, 0, 255}
	HealthBarFill = color.RGBA{0, 255, 0, 255}
	ManaBarBack   = color.RGBA{255, 255, 255, 255}
	ManaBarFill   = color.RGBA{5, 210, 215, 255}

	ButtonColor       = color.RGBA{200, 100, 50, 255}
	ButtonActiveColor = color.RGBA{255, 255, 0, 255}
	TextColor         = color.RGBA{0, 0, 0, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 150}
	WinTextColor      = color.RGBA{0, 255, 0, 255}
	LoseTextColor     = color.RGBA{255, 0, 0, 255}
)
