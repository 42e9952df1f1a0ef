package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sqweek/dialog"

	"github.com/example/paperio/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML settings file")
	debug := flag.Bool("debug", false, "log debug output and show the debug overlay")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*configPath, *debug, logger); err != nil {
		logger.Error("paperio stopped", "err", err)
		dialog.Message("%v", err).Title("paperio").Error()
		os.Exit(1)
	}
}

func run(configPath string, debug bool, logger *slog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg.Debug = cfg.Debug || debug

	game, err := NewGame(cfg, logger)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	logger.Debug("starting", "config", configPath, "width", cfg.Window.Width, "height", cfg.Window.Height)
	return ebiten.RunGame(game)
}
