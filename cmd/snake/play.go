package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the menu and play",
	Long: `Open the snake menu in this terminal.

Scores go to the database given by --db. Logs are discarded unless
--log-file or log.file is set, since the game owns the screen.

Examples:
  snake play
  snake play --difficulty easy
  snake play --config ./my-snake.yaml --log-file /tmp/snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("snake needs an interactive terminal")
	}

	cfg, source, err := loadSettings()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		Prefix: "snake",
	})
	if err != nil {
		return err
	}
	defer logger.Close()
	logger.Info("starting", "config", source, "tick", cfg.Timing.Tick, "fps", cfg.Timing.FPS)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Play on without persistence.
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := audio.New(audioConfig(cfg), logger.Logger)
	defer player.Close()

	deps := tui.Deps{
		Store:  store,
		Player: player,
		Logger: logger.Logger,
	}
	if err := tui.Run(gameID, deps, runtimeConfig(cfg, width, height)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
