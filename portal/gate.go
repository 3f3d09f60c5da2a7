package portal

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mazeportal/common"
	"github.com/milk9111/mazeportal/grid"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// gateOpenSeconds is how long a new gate takes to scale in.
const gateOpenSeconds = 0.2

// Gate is one placed end of the teleport pair. It always covers exactly one
// maze cell.
type Gate struct {
	rect   common.Rect
	color  Color
	facing common.Direction
	mapper grid.Mapper
	anim   Animator

	open  *gween.Tween
	scale float32
}

// NewGate places a gate with its top-left corner at (x, y).
func NewGate(x, y int, facing common.Direction, c Color, mapper grid.Mapper, anim Animator) *Gate {
	return &Gate{
		rect:   common.Rect{X: x, Y: y, Width: mapper.TileSize, Height: mapper.TileSize},
		color:  c,
		facing: facing,
		mapper: mapper,
		anim:   anim,
		open:   gween.New(0, 1, gateOpenSeconds, ease.OutBack),
		scale:  0,
	}
}

func (g *Gate) Rect() common.Rect        { return g.rect }
func (g *Gate) Color() Color             { return g.color }
func (g *Gate) Facing() common.Direction { return g.facing }

// GridRow returns the maze row the gate occupies.
func (g *Gate) GridRow() int {
	row, _ := g.mapper.PixelToCell(g.rect)
	return row
}

// GridCol returns the maze column the gate occupies.
func (g *Gate) GridCol() int {
	_, col := g.mapper.PixelToCell(g.rect)
	return col
}

func (g *Gate) Overlaps(r common.Rect) bool {
	return g.rect.Intersects(r)
}

// ExitCell returns the cell one step away from the gate along its facing.
// Travelers arriving through the paired gate are placed there.
func (g *Gate) ExitCell() (row, col int) {
	row, col = g.mapper.PixelToCell(g.rect)
	dx, dy := g.facing.Delta()
	return row + dy, col + dx
}

// AdvanceAnimation steps the frame sequence and the open effect by dt.
func (g *Gate) AdvanceAnimation(dt time.Duration) {
	if g.anim != nil {
		g.anim.Advance(dt)
	}
	if g.open == nil {
		return
	}
	s, done := g.open.Update(float32(dt.Seconds()))
	g.scale = s
	if done {
		g.open = nil
		g.scale = 1
	}
}

// Opening reports whether the gate is still scaling in.
func (g *Gate) Opening() bool {
	return g.open != nil
}

func (g *Gate) Draw(screen *ebiten.Image) {
	if g.anim == nil || screen == nil {
		return
	}
	g.anim.Draw(screen, g.drawRect())
}

func (g *Gate) drawRect() common.Rect {
	if g.open == nil {
		return g.rect
	}
	cx, cy := g.rect.Center()
	r := g.rect
	r.Width = int(float32(g.rect.Width) * g.scale)
	r.Height = int(float32(g.rect.Height) * g.scale)
	return r.WithCenter(cx, cy)
}
