package system

import (
	"github.com/milk9111/mazeportal/common"
	"github.com/milk9111/mazeportal/ecs"
	"github.com/milk9111/mazeportal/ecs/component"
	"github.com/milk9111/mazeportal/grid"
)

// RespawnSystem puts every actor back on its Spawn cell when a reset event was
// raised earlier in the frame.
type RespawnSystem struct {
	mapper grid.Mapper
}

func NewRespawnSystem(mapper grid.Mapper) *RespawnSystem {
	return &RespawnSystem{mapper: mapper}
}

func (s *RespawnSystem) Update(w *ecs.World) error {
	if s == nil || w == nil {
		return nil
	}
	reset := false
	for _, evt := range w.Events().Peek() {
		if evt.Type == ecs.EventReset {
			reset = true
			break
		}
	}
	if !reset {
		return nil
	}
	ecs.ForEach2(w, component.BodyComponent, component.SpawnComponent, func(e ecs.Entity, b *component.Body, sp *component.Spawn) {
		x, y := s.mapper.CellToPixel(sp.Row, sp.Col)
		b.Rect = b.Rect.At(x, y)
		if m, ok := ecs.Get(w, e, component.MoverComponent); ok {
			m.Dir = sp.Dir
			m.Next = common.NoDirection
			m.Facing = sp.Dir
		}
	})
	return nil
}
