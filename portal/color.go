package portal

import (
	"fmt"
	"strings"
)

// Color identifies one end of the teleport pair.
type Color uint8

const (
	Blue Color = iota
	Orange
)

// Colors fixes the per-frame processing order: Blue is always handled first.
var Colors = [2]Color{Blue, Orange}

// Other returns the paired color.
func (c Color) Other() Color {
	if c == Blue {
		return Orange
	}
	return Blue
}

func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Orange:
		return "orange"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blue", "a":
		return Blue, nil
	case "orange", "b":
		return Orange, nil
	}
	return Blue, fmt.Errorf("portal: unknown color %q", s)
}
