// internal/state/selection.go
package state

import (
	"wizard-td/internal/component"
	"wizard-td/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawSelection показывает радиус выбранной башни
func drawSelection(screen *ebiten.Image, t *component.Tower) {
	x, y := float32(t.Position.X), float32(t.Position.Y+config.TopBar)
	vector.DrawFilledCircle(screen, x, y, float32(t.Range), config.RangeColor, true)
	vector.StrokeCircle(screen, x, y, float32(t.Range), 1, config.TextColor, true)
}
