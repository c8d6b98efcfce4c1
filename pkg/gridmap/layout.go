// pkg/gridmap/layout.go
package gridmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"wizard-td/internal/config"
)

var (
	ErrNoGoal        = errors.New("layout has no wizard house")
	ErrMultipleGoals = errors.New("layout has more than one wizard house")
)

// LoadLayout reads a board layout file.
func LoadLayout(path string) (*Map, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout file: %w", err)
	}
	defer file.Close()

	m, err := ParseLayout(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	return m, nil
}

// ParseLayout строит поле 20x20 из текстовой раскладки.
// 'X' дорога, 'S' куст, 'W' дом, всё остальное трава.
// Короткие и отсутствующие строки дополняются травой.
func ParseLayout(r io.Reader) (*Map, error) {
	m := NewMap(config.BoardWidth, config.BoardHeight)
	scanner := bufio.NewScanner(r)
	goals := 0
	for y := 0; y < config.BoardHeight && scanner.Scan(); y++ {
		line := []rune(scanner.Text())
		for x := 0; x < config.BoardWidth && x < len(line); x++ {
			switch line[x] {
			case 'X':
				m.Set(Cell{x, y}, PathTile)
			case 'S':
				m.Set(Cell{x, y}, Shrub)
			case 'W':
				m.Set(Cell{x, y}, House)
				goals++
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}

	switch {
	case goals == 0:
		return nil, ErrNoGoal
	case goals > 1:
		return nil, ErrMultipleGoals
	}
	return m, nil
}
