// internal/state/game_state.go
package state

import (
	"log"

	game "wizard-td/internal/app"
	"wizard-td/internal/component"
	"wizard-td/internal/config"
	"wizard-td/internal/ui"
	"wizard-td/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState обрабатывает ввод, двигает симуляцию и рисует кадр
type GameState struct {
	sm       *StateMachine
	game     *game.Game
	hud      *ui.HUD
	selected *component.Tower
}

func NewGameState(sm *StateMachine, g *game.Game) *GameState {
	return &GameState{sm: sm, game: g, hud: ui.NewHUD()}
}

// Game возвращает текущую партию
func (g *GameState) Game() *game.Game { return g.game }

func (g *GameState) Enter() {}

func (g *GameState) Exit() {}

var upgradeKeys = map[ebiten.Key]component.Track{
	ebiten.Key1: component.TrackRange,
	ebiten.Key2: component.TrackFiringSpeed,
	ebiten.Key3: component.TrackDamage,
}

func (g *GameState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.game.Over() {
		g.restart()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.handleKeys()
	g.handleMouse()
	g.game.Tick()
}

func (g *GameState) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.game.ToggleFastForward()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.game.BoostMana()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.toggleBuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.game.CancelBuild()
		g.selected = nil
	}
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for key, track := range upgradeKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if shift {
			g.game.DowngradePlaceholder(track)
		} else {
			g.upgrade(track)
		}
	}
}

func (g *GameState) toggleBuild() {
	if g.game.Building() {
		g.game.CancelBuild()
		return
	}
	g.selected = nil
	g.game.BeginBuild()
}

// upgrade улучшает макет в режиме постройки, иначе выбранную башню
func (g *GameState) upgrade(track component.Track) {
	if g.game.Building() {
		g.game.UpgradePlaceholder(track)
		return
	}
	g.game.UpgradeTower(g.selected, track)
}

func boardPoint(x, y int) (float64, float64, bool) {
	bx, by := float64(x), float64(y-config.TopBar)
	inside := bx >= 0 && bx < config.LevelWidth && by >= 0 && by < config.LevelHeight
	return bx, by, inside
}

func (g *GameState) handleMouse() {
	x, y := ebiten.CursorPosition()
	bx, by, onBoard := boardPoint(x, y)
	if onBoard {
		g.game.MovePlaceholder(gridmap.CellAt(bx, by))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.CancelBuild()
		g.selected = nil
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if action := g.hud.ActionAt(x, y); action != ui.ActionNone {
		g.handleAction(action)
		return
	}
	if !onBoard {
		return
	}
	if g.game.Building() {
		if _, ok := g.game.CommitBuild(); !ok {
			log.Printf("Cannot build at (%d, %d)", g.game.Placeholder().Cell.X, g.game.Placeholder().Cell.Y)
		}
		return
	}
	g.selected = g.game.TowerAt(bx, by)
}

func (g *GameState) handleAction(a ui.Action) {
	switch a {
	case ui.ActionBuild:
		g.toggleBuild()
	case ui.ActionUpgradeRange:
		g.upgrade(component.TrackRange)
	case ui.ActionUpgradeFiringSpeed:
		g.upgrade(component.TrackFiringSpeed)
	case ui.ActionUpgradeDamage:
		g.upgrade(component.TrackDamage)
	case ui.ActionBoostMana:
		g.game.BoostMana()
	case ui.ActionFastForward:
		g.game.ToggleFastForward()
	case ui.ActionPause:
		g.sm.SetState(NewPauseState(g.sm, g))
	}
}

func (g *GameState) restart() {
	next, err := g.game.Restart()
	if err != nil {
		log.Printf("Restart failed: %v", err)
		return
	}
	g.sm.SetState(NewGameState(g.sm, next))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.game.RenderSystem.Draw(screen)
	if g.selected != nil {
		drawSelection(screen, g.selected)
	}
	s := g.game.Snapshot()
	g.hud.Draw(screen, s)
	ui.DrawOverlay(screen, s)
}
