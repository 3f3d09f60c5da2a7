package system

import (
	"github.com/milk9111/mazeportal/common"
	"github.com/milk9111/mazeportal/ecs"
	"github.com/milk9111/mazeportal/ecs/component"
)

// MovementSystem walks every Mover through the maze corridors. Turns are only
// taken when an actor sits exactly on a cell; reversing works anywhere.
type MovementSystem struct {
	walls Walls
}

func NewMovementSystem(walls Walls) *MovementSystem {
	return &MovementSystem{walls: walls}
}

func (s *MovementSystem) Update(w *ecs.World) error {
	if s == nil || w == nil || s.walls == nil {
		return nil
	}
	ecs.ForEach2(w, component.BodyComponent, component.MoverComponent, func(_ ecs.Entity, b *component.Body, m *component.Mover) {
		s.step(b, m)
	})
	return nil
}

func (s *MovementSystem) step(b *component.Body, m *component.Mover) {
	mapper := s.walls.Mapper()
	tile := mapper.TileSize
	if tile <= 0 || m.Speed <= 0 {
		return
	}
	offX, offY := mapper.CellOffset(b.Rect)
	aligned := offX == 0 && offY == 0

	if m.Next.Valid() {
		switch {
		case m.Next == m.Dir:
			m.Next = common.NoDirection
		case m.Dir.Valid() && m.Next == m.Dir.Opposite():
			m.Dir = m.Next
			m.Next = common.NoDirection
		case aligned:
			row, col := mapper.PixelToCell(b.Rect)
			if open(s.walls, row, col, m.Next) {
				m.Dir = m.Next
				m.Next = common.NoDirection
			}
		case !m.Dir.Valid():
			// Stranded between cells: only moves along the open axis work.
			if (offX != 0) == m.Next.Horizontal() {
				m.Dir = m.Next
				m.Next = common.NoDirection
			}
		}
	}

	if !m.Dir.Valid() {
		return
	}
	if aligned {
		row, col := mapper.PixelToCell(b.Rect)
		if !open(s.walls, row, col, m.Dir) {
			m.Dir = common.NoDirection
			return
		}
	}

	off := offY
	if m.Dir.Horizontal() {
		off = offX
	}
	dist := tile
	if off != 0 {
		dist = off
		if m.Dir == common.Right || m.Dir == common.Down {
			dist = tile - off
		}
	}
	n := min(m.Speed, dist)
	dx, dy := m.Dir.Delta()
	b.Rect = b.Rect.Moved(dx*n, dy*n)
	m.Facing = m.Dir
}
