// jumper-window plays jumper in a desktop window.
//
// It is a separate binary so the terminal and server builds do not need
// a graphics stack.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/platform/window"
	"github.com/vovakirdan/tui-jumper/internal/session"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var (
	flagTPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagMute     bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper-window",
	Short: "Play jumper in a desktop window",
	Long: `Open a window and play.

Controls:
  Space/Up/W, click or tap  - Jump (restarts after game over)
  P                         - Pause
  R                         - Restart
  Q/Esc                     - Quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&flagTPS, "tps", 60, "Updates per second")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.jumper/runs.db", "Path to run journal database")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "jumper-window",
		Level:           level,
	})

	gameCfg, err := config.LoadJumper(flagConfig)
	if err != nil {
		return err
	}

	var saver storage.RunSaver
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run journal", "error", err)
	} else {
		saver = store
		defer store.Close()
	}

	opts := session.Options{
		Config:  gameCfg,
		Runtime: core.RuntimeConfig{TickRate: flagTPS, Seed: flagSeed},
		Host:    "window",
		Logger:  logger,
		Store:   saver,
	}
	if !flagMute {
		opts.Audio = window.NewBeeper(audio.NewContext(window.SampleRate))
	}

	return window.Run(session.New(opts), flagTPS, logger)
}
