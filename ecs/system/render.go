package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/mazeportal/ecs"
	"github.com/milk9111/mazeportal/ecs/component"
	"github.com/milk9111/mazeportal/portal"
	"golang.org/x/image/colornames"
)

// Backdrop draws the static part of the playfield.
type Backdrop interface {
	Draw(screen *ebiten.Image)
}

// RenderSystem draws the maze, then actors, then projectiles and gates.
type RenderSystem struct {
	maze Backdrop
	ctrl *portal.Controller
}

func NewRenderSystem(maze Backdrop, ctrl *portal.Controller) *RenderSystem {
	return &RenderSystem{maze: maze, ctrl: ctrl}
}

func (r *RenderSystem) Update(*ecs.World) error { return nil }

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || screen == nil {
		return
	}
	if r.maze != nil {
		r.maze.Draw(screen)
	}

	ecs.ForEach(w, component.BodyComponent, func(e ecs.Entity, b *component.Body) {
		var c color.Color = colornames.White
		if t, ok := ecs.Get(w, e, component.TintComponent); ok && t.Color != nil {
			c = t.Color
		}
		cx, cy := b.Rect.Center()
		radius := float32(min(b.Rect.Width, b.Rect.Height)) / 2
		if ecs.Has(w, e, component.GhostComponent) {
			// ghosts get a flat skirt under the round head
			vector.FillRect(screen, float32(b.Rect.X), float32(cy), float32(b.Rect.Width), float32(b.Rect.Height)/2, c, false)
		}
		vector.FillCircle(screen, float32(cx), float32(cy), radius, c, true)

		m, ok := ecs.Get(w, e, component.MoverComponent)
		if !ok || !m.Facing.Valid() {
			return
		}
		dx, dy := m.Facing.Delta()
		eye := radius / 2
		vector.FillCircle(screen, float32(cx)+float32(dx)*eye, float32(cy)+float32(dy)*eye, radius/4, colornames.Black, true)
	})

	if r.ctrl != nil {
		r.ctrl.Render(screen)
	}
}
