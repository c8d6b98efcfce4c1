// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"wizard-td/internal/component"
	"wizard-td/internal/config"
	"wizard-td/internal/defs"
	"wizard-td/internal/entity"
	"wizard-td/internal/event"
	"wizard-td/internal/system"
	"wizard-td/internal/utils"
	"wizard-td/pkg/gridmap"
)

var (
	ErrNilConfig   = errors.New("level config is nil")
	ErrNilMap      = errors.New("map is nil")
	ErrUnreachable = errors.New("no entry point reaches the wizard house")
)

// Game — оркестратор симуляции. Владеет миром, системами и экономикой.
// Вся работа идёт в одной горутине, один Tick: один кадр.
type Game struct {
	Config      *config.LevelConfig
	Map         *gridmap.Map
	Paths       []*gridmap.Path
	World       *entity.World
	Mana        *component.ManaPool
	TowerParams component.TowerParams
	Rng         *utils.PRNGService
	Stats       *StatsListener
	Entries     []gridmap.Cell

	EventDispatcher *event.Dispatcher
	WaveSystem      *system.WaveSystem
	MovementSystem  *system.MovementSystem
	CombatSystem    *system.CombatSystem
	ManaSystem      *system.ManaSystem
	StateSystem     *system.StateSystem
	RenderSystem    *system.RenderSystem

	placeholder *component.Placeholder
	building    bool
	paused      bool
	speed       float64
}

// Option настраивает Game при создании
type Option func(*gameOptions)

type gameOptions struct {
	seed    int64
	rng     *utils.PRNGService
	logging bool
}

// WithSeed задаёт сид генератора случайных чисел
func WithSeed(seed int64) Option {
	return func(o *gameOptions) { o.seed = seed }
}

// WithRNG подставляет готовый генератор
func WithRNG(rng *utils.PRNGService) Option {
	return func(o *gameOptions) { o.rng = rng }
}

// WithLogging включает или выключает журнал событий
func WithLogging(enabled bool) Option {
	return func(o *gameOptions) { o.logging = enabled }
}

// NewGame строит уровень: пути, экономику, волны и системы.
// Ошибки конструирования монстров всплывают здесь.
func NewGame(cfg *config.LevelConfig, m *gridmap.Map, opts ...Option) (*Game, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if m == nil {
		return nil, ErrNilMap
	}
	o := gameOptions{logging: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = utils.NewPRNGService(o.seed)
	}

	paths := gridmap.FindPaths(m)
	reachable := gridmap.Reachable(paths)
	if len(reachable) == 0 {
		return nil, ErrUnreachable
	}

	world := entity.NewWorld()
	dispatcher := event.NewDispatcher()
	g := &Game{
		Config:          cfg,
		Map:             m,
		Paths:           paths,
		World:           world,
		Mana:            component.NewManaPool(cfg),
		TowerParams:     component.NewTowerParams(cfg),
		Rng:             o.rng,
		Entries:         gridmap.EntryPoints(m),
		EventDispatcher: dispatcher,
		speed:           config.NormalSpeed,
	}
	g.placeholder = component.NewPlaceholder(g.TowerParams)

	waves, err := buildWaves(cfg, reachable, g.Rng)
	if err != nil {
		return nil, err
	}

	gx, gy := m.Goal.Center()
	g.WaveSystem = system.NewWaveSystem(world, dispatcher, waves)
	g.MovementSystem = system.NewMovementSystem(world, g.Mana, component.Position{X: gx, Y: gy}, g.Rng, dispatcher)
	g.CombatSystem = system.NewCombatSystem(world, dispatcher)
	g.ManaSystem = system.NewManaSystem(g.Mana, dispatcher)
	g.StateSystem = system.NewStateSystem(world, g.WaveSystem, g.Mana, dispatcher)
	g.RenderSystem = system.NewRenderSystem(world, m, g.placeholder)

	g.Stats = NewStatsListener()
	dispatcher.SubscribeAll(g.Stats, event.AllTypes...)
	if o.logging {
		dispatcher.SubscribeAll(NewLogListener(), event.WaveStarted, event.TowerBuilt,
			event.TowerTierUp, event.ManaBoosted, event.GameWon, event.GameLost)
	}
	return g, nil
}

// buildWaves заранее создаёт всех монстров всех волн.
// Путь каждого монстра выбирается случайно среди достижимых.
func buildWaves(cfg *config.LevelConfig, paths []*gridmap.Path, rng *utils.PRNGService) ([]*component.Wave, error) {
	waves := make([]*component.Wave, 0, len(cfg.Waves))
	for i, wc := range cfg.Waves {
		var roster []*component.Monster
		for _, mc := range wc.Monsters {
			behavior, err := defs.LookupMonster(mc.Type)
			if err != nil {
				return nil, fmt.Errorf("wave %d: %w", i+1, err)
			}
			spec := defs.MonsterSpec{
				Behavior:    behavior,
				HP:          mc.HP,
				Speed:       mc.Speed,
				Armor:       mc.Armour,
				ManaOnDeath: mc.ManaGainedOnKill,
				SwarmCount:  mc.MonstersInMoag,
			}
			for q := 0; q < mc.Quantity; q++ {
				monster, err := component.NewMonster(spec, paths[rng.Intn(len(paths))])
				if err != nil {
					return nil, fmt.Errorf("wave %d: %w", i+1, err)
				}
				roster = append(roster, monster)
			}
		}
		waves = append(waves, component.NewWave(i+1, wc, roster))
	}
	return waves, nil
}

// Tick продвигает симуляцию на один кадр. На паузе и после конца игры ничего не делает.
func (g *Game) Tick() {
	if g.paused || g.StateSystem.Update() {
		return
	}
	g.World.Frame++
	g.WaveSystem.Update()
	g.MovementSystem.Update()
	g.CombatSystem.Update()
	g.ManaSystem.Update()
}

// SetSpeed меняет множитель времени для всех систем сразу.
// Монстры, выпущенные позже, получают текущий множитель.
func (g *Game) SetSpeed(mul float64) {
	g.speed = mul
	g.WaveSystem.SetSpeedMultiplier(mul)
	g.CombatSystem.SetSpeedMultiplier(mul)
	g.ManaSystem.SetSpeedMultiplier(mul)
	g.MovementSystem.SetSpeedMultiplier(mul)
}

func (g *Game) Speed() float64 { return g.speed }

// ToggleFastForward переключает обычную и ускоренную скорость
func (g *Game) ToggleFastForward() {
	if g.speed == config.FastForwardSpeed {
		g.SetSpeed(config.NormalSpeed)
	} else {
		g.SetSpeed(config.FastForwardSpeed)
	}
}

func (g *Game) TogglePause() { g.paused = !g.paused }

func (g *Game) SetPaused(paused bool) { g.paused = paused }

func (g *Game) Paused() bool { return g.paused }

// Over: игра окончена победой или поражением
func (g *Game) Over() bool { return g.StateSystem.Outcome() != system.Running }

func (g *Game) Outcome() system.Outcome { return g.StateSystem.Outcome() }

// BoostMana применяет заклинание усиления пула
func (g *Game) BoostMana() bool {
	if g.Over() {
		return false
	}
	return g.ManaSystem.Boost()
}

// Restart создаёт новую партию с той же конфигурацией
func (g *Game) Restart(opts ...Option) (*Game, error) {
	return NewGame(g.Config, g.Map.Clone(), opts...)
}
