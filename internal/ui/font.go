// internal/ui/font.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face: шрифт интерфейса
var Face font.Face = basicfont.Face7x13

// DrawText рисует строку, левый верхний угол в (x, y)
func DrawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	bounds := text.BoundString(Face, s)
	text.Draw(screen, s, Face, int(x), int(y)-bounds.Min.Y, clr)
}

// DrawTextCentered рисует строку с центром в (x, y)
func DrawTextCentered(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	bounds := text.BoundString(Face, s)
	tx := int(x) - bounds.Dx()/2 - bounds.Min.X
	ty := int(y) - bounds.Dy()/2 - bounds.Min.Y
	text.Draw(screen, s, Face, tx, ty, clr)
}
