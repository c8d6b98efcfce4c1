// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"strings"

	"wizard-td/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// WaveIndicator отображает номер волны римскими цифрами и таймер до следующей.
type WaveIndicator struct {
	X, Y float64
}

func NewWaveIndicator(x, y float64) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Label: подпись индикатора
func (i *WaveIndicator) Label(wave, total int, remaining float64, pending bool) string {
	if wave == 0 {
		return fmt.Sprintf("First wave in %.0fs", remaining)
	}
	if wave >= total {
		if pending {
			return fmt.Sprintf("Wave %s (last)", toRoman(wave))
		}
		return fmt.Sprintf("Wave %s (last, all out)", toRoman(wave))
	}
	return fmt.Sprintf("Wave %s/%s, next in %.0fs", toRoman(wave), toRoman(total), remaining)
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, wave, total int, remaining float64, pending bool) {
	DrawText(screen, i.Label(wave, total, remaining, pending), i.X, i.Y, config.TextColor)
}
