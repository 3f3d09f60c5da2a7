package system

import (
	"math/rand"

	"github.com/milk9111/mazeportal/common"
	"github.com/milk9111/mazeportal/ecs"
	"github.com/milk9111/mazeportal/ecs/component"
)

const defaultPathLimit = 600

// GhostSystem picks a new direction for every ghost standing on a cell. With
// probability ChaseChance a ghost follows the shortest corridor path to the
// player; otherwise it wanders, never reversing unless it hit a dead end.
type GhostSystem struct {
	walls Walls
	rng   *rand.Rand
}

func NewGhostSystem(walls Walls, seed int64) *GhostSystem {
	return &GhostSystem{walls: walls, rng: rand.New(rand.NewSource(seed))}
}

func (s *GhostSystem) Update(w *ecs.World) error {
	if s == nil || w == nil || s.walls == nil {
		return nil
	}
	mapper := s.walls.Mapper()
	target, hasTarget := playerCell(w, mapper)

	ecs.ForEach2(w, component.GhostComponent, component.MoverComponent, func(e ecs.Entity, g *component.Ghost, m *component.Mover) {
		body, ok := ecs.Get(w, e, component.BodyComponent)
		if !ok || !mapper.Aligned(body.Rect) {
			return
		}
		row, col := mapper.PixelToCell(body.Rect)
		options := openDirections(s.walls, row, col)
		if len(options) == 0 {
			return
		}

		if hasTarget && g.ChaseChance > 0 && s.rng.Float64() < g.ChaseChance {
			if d, ok := s.chase(Cell{Row: row, Col: col}, target, g.PathLimit); ok {
				m.Next = d
				return
			}
		}
		m.Next = s.wander(options, m.Dir)
	})
	return nil
}

func (s *GhostSystem) chase(from, to Cell, limit int) (common.Direction, bool) {
	if limit <= 0 {
		limit = defaultPathLimit
	}
	rows, cols := s.walls.Size()
	path := FindPath(from, to, rows, cols, func(c Cell) bool {
		return s.walls.WallAt(c.Row, c.Col)
	}, limit)
	if len(path) < 2 {
		return common.NoDirection, false
	}
	next := path[1]
	for _, d := range common.Directions {
		dx, dy := d.Delta()
		if from.Step(dy, dx) == next {
			return d, true
		}
	}
	return common.NoDirection, false
}

func (s *GhostSystem) wander(options []common.Direction, current common.Direction) common.Direction {
	forward := options[:0:0]
	for _, d := range options {
		if !current.Valid() || d != current.Opposite() {
			forward = append(forward, d)
		}
	}
	if len(forward) == 0 {
		return options[0]
	}
	return forward[s.rng.Intn(len(forward))]
}
