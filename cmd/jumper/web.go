package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/platform/web"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the browser client",
	Long: `Start an HTTP server with the canvas client. Each browser tab plays its
own game over a websocket; the server owns the clock.

Controls in the browser:
  Space/Up/W or tap  - Jump
  P                  - Pause
  R or tap           - Restart (after game over)

Examples:
  jumper web
  jumper web --addr :9000 --fps 30`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("jumper-web", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewServer(web.Config{
		Address:  flagWebAddr,
		TickRate: flagFPS,
		Game:     gameCfg,
	}, saver, logger)

	fmt.Printf("Open http://localhost%s in a browser\n", flagWebAddr)
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
