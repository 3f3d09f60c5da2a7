package portal

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/mazeportal/common"
)

// Projectile is the probe that turns into a gate when it strikes a wall.
// Only its position changes after launch.
type Projectile struct {
	rect  common.Rect
	color Color
	dir   common.Direction
	speed int
	tint  color.Color
}

// NewProjectile centers a size×size probe on source and then pushes it half
// the source's extent along dir so it starts at the source's edge.
func NewProjectile(source common.Rect, dir common.Direction, c Color, size, speed int, tint color.Color) *Projectile {
	cx, cy := source.Center()
	switch dir {
	case common.Left:
		cx -= source.Width / 2
	case common.Right:
		cx += source.Width / 2
	case common.Up:
		cy -= source.Height / 2
	case common.Down:
		cy += source.Height / 2
	}
	return &Projectile{
		rect:  common.Rect{Width: size, Height: size}.WithCenter(cx, cy),
		color: c,
		dir:   dir,
		speed: speed,
		tint:  tint,
	}
}

func (p *Projectile) Rect() common.Rect           { return p.rect }
func (p *Projectile) Color() Color                { return p.color }
func (p *Projectile) Direction() common.Direction { return p.dir }
func (p *Projectile) Speed() int                  { return p.speed }

// Advance moves the projectile speed pixels along its direction.
func (p *Projectile) Advance() {
	dx, dy := p.dir.Delta()
	p.rect = p.rect.Moved(dx*p.speed, dy*p.speed)
}

// OffScreen reports whether the projectile has left a screenW×screenH play
// area. The far edges allow the projectile's own size as margin.
func (p *Projectile) OffScreen(screenW, screenH int) bool {
	r := p.rect
	return r.X < 0 || r.Y < 0 || r.X > screenW+r.Width || r.Y > screenH+r.Height
}

func (p *Projectile) Draw(screen *ebiten.Image) {
	if screen == nil || p.tint == nil {
		return
	}
	vector.FillRect(screen, float32(p.rect.X), float32(p.rect.Y), float32(p.rect.Width), float32(p.rect.Height), p.tint, false)
}
