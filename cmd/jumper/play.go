package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
	"github.com/vovakirdan/tui-jumper/internal/session"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var flagBell bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W  - Jump
  P/Esc       - Pause
  R           - Restart (after game over)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Examples:
  jumper play
  jumper play --bell
  jumper play --seed 42
  jumper play --config ./my-jumper.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on game over")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("jumper", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := config.LoadJumper(flagConfig)
	if err != nil {
		return err
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open the run journal; the game still works without it
	var saver storage.RunSaver
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		logger.Warn("could not open run journal", "error", err)
	} else {
		saver = store
		defer store.Close()
	}

	var audio jumper.Audio
	if flagBell {
		audio = tui.NewBellAudio(os.Stdout)
	}

	s := session.New(session.Options{
		Config:  gameCfg,
		Runtime: cfg,
		Host:    "terminal",
		Audio:   audio,
		Logger:  logger,
		Store:   saver,
	})

	if err := tui.Run(s, cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
