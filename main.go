package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/dungeon/config"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the TOML config")
	levelName := flag.String("level", "", "level name in levels/ (basename, .yaml optional)")
	debug := flag.Bool("debug", false, "draw colliders and entity state")
	watch := flag.Bool("watch", false, "reload prefabs when files under prefabs/ change")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *levelName != "" {
		cfg.Game.Level = *levelName
	}
	cfg.Game.Debug = cfg.Game.Debug || *debug
	cfg.Game.WatchPrefabs = cfg.Game.WatchPrefabs || *watch

	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	game, err := NewGame(cfg, logger)
	if err != nil {
		logger.Fatal("game: start", zap.Error(err))
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Game.TPS)

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game: stopped", zap.Error(err))
	}
}
