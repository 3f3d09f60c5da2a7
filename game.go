package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/mazeportal/assets"
	"github.com/milk9111/mazeportal/component"
	"github.com/milk9111/mazeportal/config"
	"github.com/milk9111/mazeportal/ecs"
	"github.com/milk9111/mazeportal/ecs/system"
	"github.com/milk9111/mazeportal/grid"
	"github.com/milk9111/mazeportal/levels"
	"github.com/milk9111/mazeportal/maze"
	"github.com/milk9111/mazeportal/portal"
	"github.com/milk9111/mazeportal/prefabs"
	"github.com/milk9111/mazeportal/sound"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"
)

type Game struct {
	cfg *config.Config
	log logrus.FieldLogger

	level *levels.Level
	maze  *maze.Maze
	world *ecs.World
	sched *ecs.Scheduler
	stats *system.StatsSystem

	ctrl  *portal.Controller
	clips *component.AnimationLibrary
	cues  *sound.Channel

	watcher *prefabs.Watcher

	face    text.Face
	pauseUI *ebitenui.UI
	paused  bool
	quit    bool
}

func NewGame(cfg *config.Config, logger logrus.FieldLogger) (*Game, error) {
	lvl, err := loadLevel(cfg)
	if err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{
		"level": lvl.Name,
		"rows":  lvl.Rows(),
		"cols":  lvl.Cols(),
	}).Info("level loaded")

	portalSpec, err := prefabs.LoadPortalSpec()
	if err != nil {
		return nil, err
	}
	if err := checkGateSheets(portalSpec); err != nil {
		return nil, err
	}
	actorsSpec, err := prefabs.LoadActorsSpec()
	if err != nil {
		return nil, err
	}

	mapper := grid.NewMapper(cfg.Window.Width, cfg.Window.Height, cfg.Game.TileSize)
	mz := maze.New(lvl, mapper)
	if err := loadBlockImage(mz, blockImage); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:   cfg,
		log:   logger,
		level: lvl,
		maze:  mz,
		world: ecs.NewWorld(),
		clips: component.NewAnimationLibrary(assets.LoadImage),
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
	registerGateClips(g.clips, portalSpec)

	player, err := spawnPlayer(g.world, mapper, lvl, actorsSpec)
	if err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}
	if _, err := spawnGhosts(g.world, mapper, lvl, actorsSpec, cfg.Game.Ghosts); err != nil {
		return nil, fmt.Errorf("spawn ghosts: %w", err)
	}

	g.cues, err = loadPortalCues(portalSpec, cfg.Audio.EffectiveVolume(), logger)
	if err != nil {
		return nil, err
	}
	g.ctrl, err = portal.NewController(portal.Options{
		Mapper:              mapper,
		Tiles:               mz,
		Cues:                g.cues,
		Animations:          gateAnimations(g.clips, mapper.TileSize),
		Shooter:             system.NewShooter(g.world, player),
		Tuning:              portalTuning(portalSpec),
		RestoreTilesOnClear: portalSpec.RestoreTilesOnClear,
		Logger:              logger,
	})
	if err != nil {
		return nil, err
	}

	g.stats = system.NewStatsSystem()
	g.sched = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewGhostSystem(mz, actorsSpec.Ghosts.Seed),
		system.NewMovementSystem(mz),
		system.NewPortalSystem(g.ctrl, logger),
		system.NewRespawnSystem(mapper),
		g.stats,
		system.NewRenderSystem(mz, g.ctrl),
	)

	if cfg.Game.Watch {
		g.watcher, err = prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			logger.WithError(err).Warn("prefab hot reload disabled")
		}
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

const blockImage = "block.png"

func loadBlockImage(mz *maze.Maze, path string) error {
	img, err := assets.LoadImage(path)
	if err != nil {
		return fmt.Errorf("maze block: %w", err)
	}
	mz.SetImage(img)
	return nil
}

func loadLevel(cfg *config.Config) (*levels.Level, error) {
	if cfg.Game.GenerateSeed == 0 {
		return levels.Load(cfg.Game.Level)
	}
	mapper := grid.NewMapper(cfg.Window.Width, cfg.Window.Height, cfg.Game.TileSize)
	ox, oy := mapper.Origin()
	return levels.Generate(levels.GenerateConfig{
		Rows:   (cfg.Window.Height - 2*oy) / cfg.Game.TileSize,
		Cols:   (cfg.Window.Width - 2*ox) / cfg.Game.TileSize,
		Braid:  0.3,
		Ghosts: cfg.Game.Ghosts,
		Seed:   cfg.Game.GenerateSeed,
	}), nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.reload()

	if err := g.sched.Update(g.world); err != nil {
		return fmt.Errorf("frame %d: %w", g.stats.Stats().Frames, err)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.sched.Draw(g.world, screen)

	if g.cfg.Game.Debug {
		s := g.stats.Stats()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  frames: %d\nteleports: %d  gates: %d  resets: %d",
			ebiten.ActualFPS(), s.Frames, s.Teleports, s.GatesOpen, s.Resets))
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, float64(g.cfg.Window.Height-20))
	op.ColorScale.ScaleWithColor(color.Gray{Y: 0xaa})
	text.Draw(screen, "arrows/WASD move  Z blue  X orange  R reset  Esc pause", g.face, op)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Reset clears both gates and sends every actor home.
func (g *Game) Reset() {
	g.ctrl.Clear()
	g.world.Events().Push(ecs.Event{Type: ecs.EventReset})
	if err := system.NewRespawnSystem(g.maze.Mapper()).Update(g.world); err != nil {
		g.log.WithError(err).Warn("reset")
	}
	g.world.Events().Drain()
}

func (g *Game) Close() error {
	if g.cues != nil {
		g.cues.Stop()
	}
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}
