// internal/ui/hud.go
package ui

import (
	"fmt"

	"wizard-td/internal/app"
	"wizard-td/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Action: команда, которую отдаёт кнопка панели
type Action int

const (
	ActionNone Action = iota
	ActionBuild
	ActionUpgradeRange
	ActionUpgradeFiringSpeed
	ActionUpgradeDamage
	ActionBoostMana
	ActionFastForward
	ActionPause
)

// HUD: верхняя полоса (мана, волны) и боковая панель с кнопками
type HUD struct {
	Buttons []*Button
	Wave    *WaveIndicator
}

func NewHUD() *HUD {
	x := float32(config.LevelWidth + config.ButtonGap)
	y := float32(config.TopBar + config.ButtonGap)
	step := float32(config.ButtonSize + config.ButtonGap)

	h := &HUD{Wave: NewWaveIndicator(config.LevelWidth/2, 14)}
	labels := []struct {
		label  string
		action Action
	}{
		{"Tower", ActionBuild},
		{"Range", ActionUpgradeRange},
		{"Speed", ActionUpgradeFiringSpeed},
		{"Damage", ActionUpgradeDamage},
		{"Mana", ActionBoostMana},
		{">>", ActionFastForward},
		{"||", ActionPause},
	}
	for i, l := range labels {
		h.Buttons = append(h.Buttons, NewButton(x, y+float32(i)*step, l.label, l.action))
	}
	h.Buttons[1].Mark = config.RangeMarkColor
	h.Buttons[2].Mark = config.RateMarkColor
	h.Buttons[3].Mark = config.DamageMarkColor
	return h
}

// ActionAt возвращает команду кнопки под курсором
func (h *HUD) ActionAt(x, y int) Action {
	for _, b := range h.Buttons {
		if b.Contains(x, y) {
			return b.Action
		}
	}
	return ActionNone
}

func (h *HUD) Draw(screen *ebiten.Image, s app.Snapshot) {
	for _, b := range h.Buttons {
		switch b.Action {
		case ActionBuild:
			b.Active = s.Building
		case ActionFastForward:
			b.Active = s.Speed == config.FastForwardSpeed
		case ActionPause:
			b.Active = s.Paused
		}
		b.Draw(screen)
	}

	h.drawManaBar(screen, s)
	h.Wave.Draw(screen, s.Wave, s.TotalWaves, s.Remaining, s.Pending > 0)

	info := fmt.Sprintf("Boost: %.0f", s.BoostCost)
	if s.Placeholder.Visible {
		info = fmt.Sprintf("Build: %.0f", s.Placeholder.BuildCost)
	}
	DrawText(screen, info, config.LevelWidth+config.ButtonGap, 14, config.TextColor)
	DrawText(screen, fmt.Sprintf("Kills: %d", s.Stats.Killed),
		config.LevelWidth+config.ButtonGap, config.ScreenHeight-24, config.TextColor)
}

func (h *HUD) drawManaBar(screen *ebiten.Image, s app.Snapshot) {
	const x, y, w, hgt = 10, 10, 200, 20
	vector.DrawFilledRect(screen, x, y, w, hgt, config.ManaBarBack, false)
	if s.ManaCap > 0 && s.Mana > 0 {
		fill := s.Mana / s.ManaCap
		if fill > 1 {
			fill = 1
		}
		vector.DrawFilledRect(screen, x, y, float32(w*fill), hgt, config.ManaBarFill, false)
	}
	vector.StrokeRect(screen, x, y, w, hgt, 1, config.TextColor, false)
	DrawTextCentered(screen, fmt.Sprintf("%.0f / %.0f", s.Mana, s.ManaCap), x+w/2, y+hgt/2, config.TextColor)
}

// DrawOverlay затемняет экран и пишет итог партии
func DrawOverlay(screen *ebiten.Image, s app.Snapshot) {
	switch {
	case s.Won:
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
		DrawTextCentered(screen, "YOU WIN!  (r to restart)", config.ScreenWidth/2, config.ScreenHeight/2, config.WinTextColor)
	case s.Lost:
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
		DrawTextCentered(screen, "GAME OVER  (r to restart)", config.ScreenWidth/2, config.ScreenHeight/2, config.LoseTextColor)
	case s.Paused:
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
		DrawTextCentered(screen, "PAUSED", config.ScreenWidth/2, config.ScreenHeight/2, config.ButtonActiveColor)
	}
}
