package ecs

import "github.com/hajimehoshi/ebiten/v2"

type System interface {
	Update(w *World) error
}

// RenderSystem is a System that also draws.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// Scheduler runs systems in insertion order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system and stops at the first error. Events pushed
// during the frame are dropped afterwards.
func (s *Scheduler) Update(w *World) error {
	defer w.events.flush()
	for _, system := range s.systems {
		if err := system.Update(w); err != nil {
			return err
		}
	}
	return nil
}

// Draw calls every system that implements RenderSystem.
func (s *Scheduler) Draw(w *World, screen *ebiten.Image) {
	if screen == nil {
		return
	}
	for _, system := range s.systems {
		if rs, ok := system.(RenderSystem); ok {
			rs.Draw(w, screen)
		}
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
