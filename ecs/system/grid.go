package system

import (
	"github.com/milk9111/mazeportal/common"
	"github.com/milk9111/mazeportal/ecs"
	"github.com/milk9111/mazeportal/ecs/component"
	"github.com/milk9111/mazeportal/grid"
)

// Walls is the part of the maze the movement and ghost systems read.
type Walls interface {
	Mapper() grid.Mapper
	Size() (rows, cols int)
	WallAt(row, col int) bool
}

// open reports whether the cell next to (row, col) in direction d is floor.
func open(walls Walls, row, col int, d common.Direction) bool {
	if !d.Valid() {
		return false
	}
	dx, dy := d.Delta()
	return !walls.WallAt(row+dy, col+dx)
}

// openDirections lists the floor neighbours of (row, col) in Directions order.
func openDirections(walls Walls, row, col int) []common.Direction {
	dirs := make([]common.Direction, 0, len(common.Directions))
	for _, d := range common.Directions {
		if open(walls, row, col, d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// playerCell returns the grid cell the player occupies.
func playerCell(w *ecs.World, mapper grid.Mapper) (Cell, bool) {
	e, _, ok := ecs.First(w, component.PlayerControlComponent)
	if !ok {
		return Cell{}, false
	}
	body, ok := ecs.Get(w, e, component.BodyComponent)
	if !ok {
		return Cell{}, false
	}
	cx, cy := body.Rect.Center()
	row, col := mapper.PixelToCell(common.Rect{X: cx, Y: cy})
	return Cell{Row: row, Col: col}, true
}
