// internal/ui/button.go
package ui

import (
	"image/color"

	"wizard-td/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button: прямоугольная кнопка боковой панели
type Button struct {
	X, Y          float32
	Width, Height float32
	Label         string
	Action        Action
	Active        bool
	Mark          color.Color // цветная метка слева, nil: без метки
}

func NewButton(x, y float32, label string, action Action) *Button {
	return &Button{
		X:      x,
		Y:      y,
		Width:  config.SideBar - 2*config.ButtonGap,
		Height: config.ButtonSize,
		Label:  label,
		Action: action,
	}
}

// Contains: точка экрана внутри кнопки
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.Width && fy >= b.Y && fy <= b.Y+b.Height
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := config.ButtonColor
	if b.Active {
		bg = config.ButtonActiveColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bg, false)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 1, config.TextColor, false)
	if b.Mark != nil {
		vector.DrawFilledCircle(screen, b.X+8, b.Y+b.Height/2, 4, b.Mark, true)
	}
	DrawTextCentered(screen, b.Label, float64(b.X+b.Width/2), float64(b.Y+b.Height/2), config.TextColor)
}
