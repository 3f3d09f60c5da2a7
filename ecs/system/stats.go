package system

import "github.com/milk9111/mazeportal/ecs"

// Stats are running totals shown on the debug HUD.
type Stats struct {
	Frames     int
	Teleports  int
	GatesOpen  int
	Resets     int
	LastEvents []ecs.Event
}

// StatsSystem tallies the events raised during each frame. It should run last.
type StatsSystem struct {
	stats Stats
}

func NewStatsSystem() *StatsSystem { return &StatsSystem{} }

func (s *StatsSystem) Update(w *ecs.World) error {
	if s == nil || w == nil {
		return nil
	}
	s.stats.Frames++
	events := w.Events().Peek()
	for _, evt := range events {
		switch evt.Type {
		case ecs.EventTeleported:
			s.stats.Teleports++
		case ecs.EventGateOpened:
			s.stats.GatesOpen++
		case ecs.EventReset:
			s.stats.Resets++
		}
	}
	if len(events) > 0 {
		s.stats.LastEvents = append(s.stats.LastEvents[:0], events...)
	}
	return nil
}

func (s *StatsSystem) Stats() Stats {
	out := s.stats
	out.LastEvents = append([]ecs.Event(nil), s.stats.LastEvents...)
	return out
}
