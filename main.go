package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mazeportal/config"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "settings file (yaml, json or toml)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional)")
	debug := flag.Bool("debug", false, "show the debug HUD and log at debug level")
	watch := flag.Bool("watch", false, "hot reload prefabs/*.yaml while running")
	seed := flag.Int64("generate", 0, "play a generated maze with this seed instead of a level")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	if *levelName != "" {
		cfg.Game.Level = *levelName
	}
	if *seed != 0 {
		cfg.Game.GenerateSeed = *seed
	}
	cfg.Game.Debug = cfg.Game.Debug || *debug
	cfg.Game.Watch = cfg.Game.Watch || *watch

	logger := logrus.New()
	level, _ := cfg.Log.ParseLevel()
	if cfg.Game.Debug {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game, err := NewGame(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("start game")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		game.Close()
		logger.WithError(err).Fatal("game stopped")
	}
}
