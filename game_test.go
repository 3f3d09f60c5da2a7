package main

import (
	"errors"
	"image/color"
	"testing"

	"github.com/milk9111/mazeportal/config"
	"github.com/milk9111/mazeportal/ecs"
	"github.com/milk9111/mazeportal/ecs/component"
	"github.com/milk9111/mazeportal/grid"
	"github.com/milk9111/mazeportal/levels"
	"github.com/milk9111/mazeportal/maze"
	"github.com/milk9111/mazeportal/portal"
	"github.com/milk9111/mazeportal/prefabs"
	"github.com/milk9111/mazeportal/sound"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestPortalTuningFromSpec(t *testing.T) {
	spec, err := prefabs.LoadPortalSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	tuning := portalTuning(spec)
	if tuning.ProjectileSize != 5 || tuning.ProjectileSpeed != 10 {
		t.Fatalf("tuning = %+v, want 5px at 10px/frame", tuning)
	}
	want := color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}
	if tuning.Tints[portal.Orange] != want {
		t.Fatalf("orange tint = %v, want %v", tuning.Tints[portal.Orange], want)
	}
}

func TestPortalTuningFallsBackToDefaults(t *testing.T) {
	tuning := portalTuning(&prefabs.PortalSpec{})
	def := portal.DefaultTuning()
	if tuning.Tints != def.Tints {
		t.Fatalf("tints = %v, want defaults %v", tuning.Tints, def.Tints)
	}
	if want := (color.NRGBA{R: 0xff, G: 0x80, A: 0xff}); tuning.Tints[portal.Orange] != want {
		t.Fatalf("orange fallback = %v, want %v", tuning.Tints[portal.Orange], want)
	}
}

func TestLoadLevelGeneratedFitsScreen(t *testing.T) {
	cfg := &config.Config{
		Window: config.WindowConfig{Width: 800, Height: 600},
		Game:   config.GameConfig{TileSize: 20, Ghosts: 2, GenerateSeed: 42},
	}
	lvl, err := loadLevel(cfg)
	if err != nil {
		t.Fatalf("loadLevel: %v", err)
	}
	if err := lvl.Validate(); err != nil {
		t.Fatalf("generated level invalid: %v", err)
	}
	mapper := grid.NewMapper(800, 600, 20)
	last := mapper.CellRect(lvl.Rows()-1, lvl.Cols()-1)
	if last.Right() > 800 || last.Bottom() > 600 {
		t.Fatalf("last cell %+v leaves the screen", last)
	}
}

func TestSpawnActors(t *testing.T) {
	cfg := &config.Config{Game: config.GameConfig{Level: "classic"}}
	lvl, err := loadLevel(cfg)
	if err != nil {
		t.Fatalf("loadLevel: %v", err)
	}
	spec, err := prefabs.LoadActorsSpec()
	if err != nil {
		t.Fatalf("actors: %v", err)
	}
	mapper := grid.NewMapper(800, 600, 20)
	w := ecs.NewWorld()

	player, err := spawnPlayer(w, mapper, lvl, spec)
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	ghosts, err := spawnGhosts(w, mapper, lvl, spec, 2)
	if err != nil {
		t.Fatalf("ghosts: %v", err)
	}
	if len(ghosts) != 2 {
		t.Fatalf("ghosts = %d, want capped at 2", len(ghosts))
	}
	body, ok := ecs.Get(w, player, component.BodyComponent)
	if !ok || body.Rect != mapper.CellRect(lvl.Player.Row, lvl.Player.Col) {
		t.Fatalf("player body = %+v", body)
	}
	pm, _ := ecs.Get(w, player, component.MoverComponent)
	home, _ := ecs.Get(w, player, component.SpawnComponent)
	if pm.Facing != spec.Player.Facing || pm.Dir != spec.Player.Facing || home.Dir != spec.Player.Facing {
		t.Fatalf("player mover %+v spawn %+v, want heading %v from actors.yaml", *pm, *home, spec.Player.Facing)
	}
	for _, e := range append(ghosts, player) {
		if !ecs.Has(w, e, component.TravelerComponent) {
			t.Fatalf("entity %s cannot travel through gates", e)
		}
	}

	spec.Ghosts.Speed = 3
	applyActorSpeeds(w, spec)
	m, _ := ecs.Get(w, ghosts[0], component.MoverComponent)
	if m.Speed != 3 {
		t.Fatalf("ghost speed = %d after reload, want 3", m.Speed)
	}
}

func TestLoadPortalCuesFailsOnMissingAsset(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cases := []struct {
		name string
		cues []prefabs.CueSpec
		want error
	}{
		{"missing_wav", []prefabs.CueSpec{{Name: "open", File: "does-not-exist.wav", Volume: 1}}, nil},
		{"no_cues", nil, sound.ErrNoCues},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := &prefabs.PortalSpec{Audio: prefabs.AudioSpec{Channel: 3, Cues: c.cues}}
			ch, err := loadPortalCues(spec, 1, logger)
			if err == nil || ch != nil {
				t.Fatalf("loadPortalCues = %v, %v; want an error and no channel", ch, err)
			}
			if c.want != nil && !errors.Is(err, c.want) {
				t.Fatalf("err = %v, want %v", err, c.want)
			}
		})
	}
}

func TestLoadBlockImageFailsOnMissingAsset(t *testing.T) {
	lvl := &levels.Level{Tiles: []string{"###", "#.#", "###"}}
	mz := maze.New(lvl, grid.NewMapper(800, 600, 20))
	if err := loadBlockImage(mz, "missing-block.png"); err == nil {
		t.Fatalf("missing block image was accepted")
	}
}
