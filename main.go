package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/glyph-particles/internal/config"
	"github.com/iburimskiy/glyph-particles/internal/game"
	"github.com/iburimskiy/glyph-particles/internal/particles"
)

func run(logger *slog.Logger) error {
	ebiten.SetWindowSize(config.WindowWidth, config.HeaderHeight)
	ebiten.SetWindowTitle(config.WindowTitle + " - M: menu, Space: pause, S: mute, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g, err := game.New(logger)
	if err != nil {
		return err
	}
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	particles.SetLogger(logger)

	if err := run(logger); err != nil {
		logger.Error("header failed", "err", err)
		_ = zenity.Error(err.Error(),
			zenity.Title(config.WindowTitle),
			zenity.ErrorIcon,
		)
		os.Exit(1)
	}
}
