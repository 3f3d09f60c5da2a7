// Package maze holds the wall tiles of the playfield.
package maze

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/mazeportal/common"
	"github.com/milk9111/mazeportal/grid"
	"github.com/milk9111/mazeportal/levels"
	"golang.org/x/image/colornames"
)

// Block is one wall tile.
type Block struct {
	Rect common.Rect
}

type cell struct{ row, col int }

// Maze is the ordered set of wall blocks built from a level. Blocks are
// placed through the grid mapper so their rects round trip to cells.
type Maze struct {
	mapper     grid.Mapper
	rows, cols int
	blocks     []*Block
	at         map[cell]*Block

	image *ebiten.Image
	fill  color.Color
}

// New builds a maze from lvl, one block per wall tile in row-major order.
func New(lvl *levels.Level, mapper grid.Mapper) *Maze {
	m := &Maze{
		mapper: mapper,
		rows:   lvl.Rows(),
		cols:   lvl.Cols(),
		at:     make(map[cell]*Block),
		fill:   colornames.Mediumblue,
	}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if lvl.Wall(r, c) {
				m.add(mapper.CellRect(r, c))
			}
		}
	}
	return m
}

// SetImage sets the block image. Without one blocks are drawn as flat
// squares.
func (m *Maze) SetImage(img *ebiten.Image) { m.image = img }

func (m *Maze) Mapper() grid.Mapper { return m.mapper }
func (m *Maze) TileSize() int       { return m.mapper.TileSize }
func (m *Maze) Len() int            { return len(m.blocks) }

// Size returns the level dimensions in cells.
func (m *Maze) Size() (rows, cols int) { return m.rows, m.cols }

// Blocks returns a copy of the block rects in maze order.
func (m *Maze) Blocks() []common.Rect {
	out := make([]common.Rect, len(m.blocks))
	for i, b := range m.blocks {
		out[i] = b.Rect
	}
	return out
}

// FirstOverlap returns the first block, in maze order, that overlaps r.
func (m *Maze) FirstOverlap(r common.Rect) (common.Rect, bool) {
	for _, b := range m.blocks {
		if b.Rect.Intersects(r) {
			return b.Rect, true
		}
	}
	return common.Rect{}, false
}

// Collides reports whether r overlaps any block.
func (m *Maze) Collides(r common.Rect) bool {
	_, hit := m.FirstOverlap(r)
	return hit
}

// WallAt reports whether a block occupies (row, col). Cells outside the
// level count as walls.
func (m *Maze) WallAt(row, col int) bool {
	if row < 0 || col < 0 || row >= m.rows || col >= m.cols {
		return true
	}
	_, ok := m.at[cell{row, col}]
	return ok
}

// Remove deletes the block whose rect equals r.
func (m *Maze) Remove(r common.Rect) bool {
	for i, b := range m.blocks {
		if b.Rect != r {
			continue
		}
		m.blocks = append(m.blocks[:i], m.blocks[i+1:]...)
		row, col := m.mapper.PixelToCell(r)
		if m.at[cell{row, col}] == b {
			delete(m.at, cell{row, col})
		}
		return true
	}
	return false
}

// AddBlock puts a plain tile-sized block with its top-left at (x, y). It does
// nothing if an identical block is already there.
func (m *Maze) AddBlock(x, y int) {
	r := common.Rect{X: x, Y: y, Width: m.mapper.TileSize, Height: m.mapper.TileSize}
	for _, b := range m.blocks {
		if b.Rect == r {
			return
		}
	}
	m.add(r)
}

func (m *Maze) add(r common.Rect) {
	b := &Block{Rect: r}
	m.blocks = append(m.blocks, b)
	if m.mapper.Aligned(r) {
		row, col := m.mapper.PixelToCell(r)
		m.at[cell{row, col}] = b
	}
}

func (m *Maze) Draw(screen *ebiten.Image) {
	for _, b := range m.blocks {
		r := b.Rect
		if m.image == nil {
			vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), m.fill, false)
			continue
		}
		ib := m.image.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(r.Width)/float64(ib.Dx()), float64(r.Height)/float64(ib.Dy()))
		op.GeoM.Translate(float64(r.X), float64(r.Y))
		screen.DrawImage(m.image, op)
	}
}
