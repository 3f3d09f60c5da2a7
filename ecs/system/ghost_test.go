package system

import (
	"testing"

	"github.com/milk9111/mazeportal/common"
	"github.com/milk9111/mazeportal/ecs"
	"github.com/milk9111/mazeportal/ecs/component"
	"github.com/milk9111/mazeportal/levels"
	"github.com/milk9111/mazeportal/maze"
)

func addGhost(w *ecs.World, row, col int, dir common.Direction, chase float64) *component.Mover {
	e, _, m := spawnActor(w, row, col, component.Mover{Dir: dir, Speed: 1})
	_ = ecs.Add(w, e, component.GhostComponent, &component.Ghost{ChaseChance: chase})
	return m
}

func addPlayer(w *ecs.World, row, col int) ecs.Entity {
	e, _, _ := spawnActor(w, row, col, component.Mover{Speed: 2})
	_ = ecs.Add(w, e, component.PlayerControlComponent, &component.PlayerControl{})
	return e
}

func TestGhostChasesPlayer(t *testing.T) {
	w := ecs.NewWorld()
	s := NewGhostSystem(ringMaze(), 1)
	addPlayer(w, 3, 3)
	m := addGhost(w, 1, 3, common.Left, 1)

	if err := s.Update(w); err != nil {
		t.Fatalf("update: %v", err)
	}
	if m.Next != common.Down {
		t.Fatalf("next = %v, want Down toward the player", m.Next)
	}
}

func TestGhostWanderNeverReversesInCorridor(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		w := ecs.NewWorld()
		s := NewGhostSystem(ringMaze(), seed)
		// (1,2) only opens Left and Right.
		m := addGhost(w, 1, 2, common.Right, 0)

		if err := s.Update(w); err != nil {
			t.Fatalf("update: %v", err)
		}
		if m.Next != common.Right {
			t.Fatalf("seed %d: next = %v, want Right", seed, m.Next)
		}
	}
}

func TestGhostReversesAtDeadEnd(t *testing.T) {
	w := ecs.NewWorld()
	walls := maze.New(&levels.Level{Tiles: []string{
		"#####",
		"#...#",
		"#####",
	}}, testMapper)
	s := NewGhostSystem(walls, 3)
	m := addGhost(w, 1, 3, common.Right, 0)

	if err := s.Update(w); err != nil {
		t.Fatalf("update: %v", err)
	}
	if m.Next != common.Left {
		t.Fatalf("next = %v, want Left out of the dead end", m.Next)
	}
}

func TestGhostBetweenCellsKeepsCourse(t *testing.T) {
	w := ecs.NewWorld()
	s := NewGhostSystem(ringMaze(), 1)
	addPlayer(w, 3, 3)
	e, body, m := spawnActor(w, 1, 1, component.Mover{Dir: common.Right, Speed: 1})
	_ = ecs.Add(w, e, component.GhostComponent, &component.Ghost{ChaseChance: 1})
	body.Rect = body.Rect.Moved(3, 0)

	if err := s.Update(w); err != nil {
		t.Fatalf("update: %v", err)
	}
	if m.Next != common.NoDirection {
		t.Fatalf("next = %v, want no decision off the grid", m.Next)
	}
}

func TestGhostAndMovementReachPlayer(t *testing.T) {
	w := ecs.NewWorld()
	walls := ringMaze()
	ghosts := NewGhostSystem(walls, 5)
	move := NewMovementSystem(walls)
	addPlayer(w, 3, 3)
	e, body, _ := spawnActor(w, 1, 1, component.Mover{Speed: 4})
	_ = ecs.Add(w, e, component.GhostComponent, &component.Ghost{ChaseChance: 1})

	for i := 0; i < 40; i++ {
		if err := ghosts.Update(w); err != nil {
			t.Fatalf("ghost: %v", err)
		}
		if err := move.Update(w); err != nil {
			t.Fatalf("move: %v", err)
		}
		if row, col := cellOf(body.Rect); row == 3 && col == 3 && testMapper.Aligned(body.Rect) {
			return
		}
	}
	t.Fatalf("ghost never reached the player, stuck at %+v", body.Rect)
}
