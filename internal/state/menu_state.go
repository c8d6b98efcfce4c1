// internal/state/menu_state.go
package state

import (
	"fmt"

	game "wizard-td/internal/app"
	"wizard-td/internal/config"
	"wizard-td/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState: заставка перед партией, Space начинает игру
type MenuState struct {
	sm   *StateMachine
	game *game.Game
}

func NewMenuState(sm *StateMachine, g *game.Game) *MenuState {
	return &MenuState{sm: sm, game: g}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.game))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx, cy := float64(config.ScreenWidth)/2, float64(config.ScreenHeight)/2
	ui.DrawTextCentered(screen, "WIZARD TOWER DEFENSE", cx, cy-40, config.TextColor)
	ui.DrawTextCentered(screen, fmt.Sprintf("%d waves, %d entries", len(m.game.Config.Waves), len(m.game.Entries)), cx, cy, config.TextColor)
	ui.DrawTextCentered(screen, "press SPACE to start", cx, cy+40, config.TextColor)
	ui.DrawTextCentered(screen, "t build  1/2/3 upgrade  m mana  f fast  p pause", cx, cy+80, config.TextColor)
}

func (m *MenuState) Exit() {}
