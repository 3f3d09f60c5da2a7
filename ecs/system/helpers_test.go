package system

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mazeportal/common"
	"github.com/milk9111/mazeportal/ecs"
	"github.com/milk9111/mazeportal/ecs/component"
	"github.com/milk9111/mazeportal/grid"
	"github.com/milk9111/mazeportal/levels"
	"github.com/milk9111/mazeportal/maze"
)

var testMapper = grid.NewMapper(800, 600, 20)

// ringMaze is a 3x3 loop of corridor around a single pillar.
func ringMaze() *maze.Maze {
	return maze.New(&levels.Level{
		Name: "ring",
		Tiles: []string{
			"#####",
			"#...#",
			"#.#.#",
			"#...#",
			"#####",
		},
	}, testMapper)
}

func spawnActor(w *ecs.World, row, col int, m component.Mover) (ecs.Entity, *component.Body, *component.Mover) {
	e := ecs.CreateEntity(w)
	body := &component.Body{Rect: testMapper.CellRect(row, col)}
	mover := &m
	_ = ecs.Add(w, e, component.BodyComponent, body)
	_ = ecs.Add(w, e, component.MoverComponent, mover)
	return e, body, mover
}

func cellOf(r common.Rect) (int, int) {
	return testMapper.PixelToCell(r)
}

type stillAnim struct{}

func (stillAnim) Advance(time.Duration)           {}
func (stillAnim) Draw(*ebiten.Image, common.Rect) {}
