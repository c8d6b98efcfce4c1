// cmd/game/main.go
package main

import (
	"flag"
	"log"

	game "wizard-td/internal/app"
	"wizard-td/internal/config"
	"wizard-td/internal/state"
	"wizard-td/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = false // true: начинать с игры, false: с заставки

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "levels/config.json", "path to the level config")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	flag.Parse()

	cfg, err := config.LoadLevelConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	gameMap, err := gridmap.LoadLayout(cfg.Layout)
	if err != nil {
		log.Fatal(err)
	}
	g, err := game.NewGame(cfg, gameMap, game.WithSeed(*seed))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Level loaded: %d waves, %d entry points, seed %d", len(cfg.Waves), len(g.Entries), g.Rng.Seed())

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, g))
	} else {
		sm.SetState(state.NewMenuState(sm, g))
	}

	ebiten.SetTPS(config.FPS)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Wizard Tower Defense")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}
