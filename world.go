package main

import (
	"image/color"

	"github.com/milk9111/mazeportal/common"
	"github.com/milk9111/mazeportal/ecs"
	"github.com/milk9111/mazeportal/ecs/component"
	"github.com/milk9111/mazeportal/grid"
	"github.com/milk9111/mazeportal/levels"
	"github.com/milk9111/mazeportal/prefabs"
	"golang.org/x/image/colornames"
)

var defaultGhostColors = []color.Color{
	colornames.Red,
	colornames.Pink,
	colornames.Cyan,
	colornames.Orange,
}

// spawnPlayer creates the player on its level spawn.
func spawnPlayer(w *ecs.World, mapper grid.Mapper, lvl *levels.Level, spec *prefabs.ActorsSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerControlComponent, &component.PlayerControl{}); err != nil {
		return e, err
	}
	tint := spec.Player.Color.ColorOr(colornames.Yellow)
	return e, addActor(w, e, mapper, lvl.Player, spec.Player.Speed, spec.Player.Facing, tint)
}

// spawnGhosts creates up to n ghosts on the level's ghost spawns.
func spawnGhosts(w *ecs.World, mapper grid.Mapper, lvl *levels.Level, spec *prefabs.ActorsSpec, n int) ([]ecs.Entity, error) {
	spawns := lvl.Ghosts
	if n < len(spawns) {
		spawns = spawns[:n]
	}
	ghosts := make([]ecs.Entity, 0, len(spawns))
	for i, sp := range spawns {
		e := ecs.CreateEntity(w)
		ghosts = append(ghosts, e)
		ghost := &component.Ghost{ChaseChance: spec.Ghosts.ChaseChance, PathLimit: spec.Ghosts.PathLimit}
		if err := ecs.Add(w, e, component.GhostComponent, ghost); err != nil {
			return ghosts, err
		}
		if err := addActor(w, e, mapper, sp, spec.Ghosts.Speed, spec.Ghosts.Facing, ghostColor(spec, i)); err != nil {
			return ghosts, err
		}
	}
	return ghosts, nil
}

func ghostColor(spec *prefabs.ActorsSpec, i int) color.Color {
	fallback := defaultGhostColors[i%len(defaultGhostColors)]
	if len(spec.Ghosts.Colors) == 0 {
		return fallback
	}
	return spec.Ghosts.Colors[i%len(spec.Ghosts.Colors)].ColorOr(fallback)
}

func addActor(w *ecs.World, e ecs.Entity, mapper grid.Mapper, sp levels.Spawn, speed int, facing common.Direction, tint color.Color) error {
	if speed <= 0 {
		speed = 1
	}
	if err := ecs.Add(w, e, component.BodyComponent, &component.Body{Rect: mapper.CellRect(sp.Row, sp.Col)}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.MoverComponent, &component.Mover{Dir: facing, Facing: facing, Speed: speed}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.SpawnComponent, &component.Spawn{Row: sp.Row, Col: sp.Col, Dir: facing}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.TintComponent, &component.Tint{Color: tint}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.TravelerComponent, &component.Traveler{})
}

// applyActorSpeeds pushes reloaded speeds onto live actors.
func applyActorSpeeds(w *ecs.World, spec *prefabs.ActorsSpec) {
	ecs.ForEach2(w, component.MoverComponent, component.PlayerControlComponent, func(_ ecs.Entity, m *component.Mover, _ *component.PlayerControl) {
		if spec.Player.Speed > 0 {
			m.Speed = spec.Player.Speed
		}
	})
	ecs.ForEach2(w, component.MoverComponent, component.GhostComponent, func(_ ecs.Entity, m *component.Mover, g *component.Ghost) {
		if spec.Ghosts.Speed > 0 {
			m.Speed = spec.Ghosts.Speed
		}
		g.ChaseChance = spec.Ghosts.ChaseChance
		g.PathLimit = spec.Ghosts.PathLimit
	})
}
