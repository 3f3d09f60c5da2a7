package common

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Direction is one of the four cardinal directions. The zero value,
// NoDirection, means "not facing anywhere" and is never a travel direction.
type Direction uint8

const (
	NoDirection Direction = iota
	Left
	Right
	Up
	Down
)

// Directions lists the cardinal directions in a stable order.
var Directions = [4]Direction{Left, Right, Up, Down}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Left && d <= Down
}

// Opposite returns the reverse direction. NoDirection maps to itself.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	}
	return NoDirection
}

// Delta returns the unit step for d in screen space (y grows downward).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	}
	return 0, 0
}

// Horizontal reports whether d moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case NoDirection:
		return "none"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection accepts "left"/"l", "right"/"r", "up"/"u", "down"/"d" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "", "none":
		return NoDirection, nil
	}
	return NoDirection, fmt.Errorf("common: unknown direction %q", s)
}

func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("direction must be a string")
	}
	parsed, err := ParseDirection(value.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
