package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Default is the level the demo opens with.
const Default = "classic"

var ErrInvalidLevel = errors.New("levels: invalid level")

const (
	WallTile  = '#'
	FloorTile = '.'
)

// Spawn is a grid cell an actor starts in.
type Spawn struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Level is a rectangular maze. Tiles holds one string per row, '#' for a wall
// and '.' for floor.
type Level struct {
	Name   string   `json:"name"`
	Tiles  []string `json:"tiles"`
	Player Spawn    `json:"player"`
	Ghosts []Spawn  `json:"ghosts,omitempty"`
}

func (l *Level) Rows() int { return len(l.Tiles) }

func (l *Level) Cols() int {
	if len(l.Tiles) == 0 {
		return 0
	}
	return len(l.Tiles[0])
}

// Wall reports whether (row, col) is a wall. Cells outside the level count as
// walls.
func (l *Level) Wall(row, col int) bool {
	if row < 0 || col < 0 || row >= l.Rows() || col >= len(l.Tiles[row]) {
		return true
	}
	return l.Tiles[row][col] == WallTile
}

// Validate checks that the level is a closed rectangle and that every spawn
// stands on floor.
func (l *Level) Validate() error {
	rows, cols := l.Rows(), l.Cols()
	if rows < 3 || cols < 3 {
		return fmt.Errorf("%w: %q is %dx%d, need at least 3x3", ErrInvalidLevel, l.Name, rows, cols)
	}
	for r, line := range l.Tiles {
		if len(line) != cols {
			return fmt.Errorf("%w: %q row %d has %d tiles, want %d", ErrInvalidLevel, l.Name, r, len(line), cols)
		}
		for c := 0; c < cols; c++ {
			switch line[c] {
			case WallTile, FloorTile:
			default:
				return fmt.Errorf("%w: %q has unknown tile %q at (%d,%d)", ErrInvalidLevel, l.Name, line[c], r, c)
			}
			border := r == 0 || c == 0 || r == rows-1 || c == cols-1
			if border && line[c] != WallTile {
				return fmt.Errorf("%w: %q border is open at (%d,%d)", ErrInvalidLevel, l.Name, r, c)
			}
		}
	}
	if l.Wall(l.Player.Row, l.Player.Col) {
		return fmt.Errorf("%w: %q player spawn (%d,%d) is not floor", ErrInvalidLevel, l.Name, l.Player.Row, l.Player.Col)
	}
	for i, g := range l.Ghosts {
		if l.Wall(g.Row, g.Col) {
			return fmt.Errorf("%w: %q ghost %d spawn (%d,%d) is not floor", ErrInvalidLevel, l.Name, i, g.Row, g.Col)
		}
	}
	return nil
}

// Load reads and validates an embedded level. The .json extension is
// optional.
func Load(name string) (*Level, error) {
	file := path.Base(name)
	if !strings.HasSuffix(file, ".json") {
		file += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, file)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", file, err)
	}
	return Parse(data)
}

// Parse decodes and validates a level.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Names lists the embedded levels without their extension.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if n, ok := strings.CutSuffix(e.Name(), ".json"); ok {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}
