// Package grid converts between screen pixels and maze cells.
//
// The maze playfield starts at (ScreenWidth/5, ScreenHeight/12) and every cell
// is TileSize pixels square. Anything placing or locating tiles must go through
// the same Mapper so that cell/pixel round trips agree.
package grid

import "github.com/milk9111/mazeportal/common"

type Mapper struct {
	ScreenWidth  int
	ScreenHeight int
	TileSize     int
}

func NewMapper(screenWidth, screenHeight, tileSize int) Mapper {
	return Mapper{ScreenWidth: screenWidth, ScreenHeight: screenHeight, TileSize: tileSize}
}

// Origin returns the pixel position of cell (0, 0).
func (m Mapper) Origin() (int, int) {
	return m.ScreenWidth / 5, m.ScreenHeight / 12
}

// PixelToCell returns the cell containing the top-left corner of r.
func (m Mapper) PixelToCell(r common.Rect) (row, col int) {
	if m.TileSize <= 0 {
		return 0, 0
	}
	ox, oy := m.Origin()
	return floorDiv(r.Y-oy, m.TileSize), floorDiv(r.X-ox, m.TileSize)
}

// CellToPixel returns the top-left pixel of the cell at (row, col).
func (m Mapper) CellToPixel(row, col int) (x, y int) {
	ox, oy := m.Origin()
	return ox + col*m.TileSize, oy + row*m.TileSize
}

// CellRect returns the tile-sized rect covering (row, col).
func (m Mapper) CellRect(row, col int) common.Rect {
	x, y := m.CellToPixel(row, col)
	return common.Rect{X: x, Y: y, Width: m.TileSize, Height: m.TileSize}
}

// Aligned reports whether r's top-left corner sits exactly on a cell corner.
func (m Mapper) Aligned(r common.Rect) bool {
	if m.TileSize <= 0 {
		return false
	}
	ox, oy := m.Origin()
	return mod(r.X-ox, m.TileSize) == 0 && mod(r.Y-oy, m.TileSize) == 0
}

// CellOffset returns how far r's top-left corner sits inside its cell.
func (m Mapper) CellOffset(r common.Rect) (dx, dy int) {
	if m.TileSize <= 0 {
		return 0, 0
	}
	ox, oy := m.Origin()
	return mod(r.X-ox, m.TileSize), mod(r.Y-oy, m.TileSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
