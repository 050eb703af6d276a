package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var flagClearRuns bool

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse the run journal",
	Long: `Show recent runs recorded in the journal database, with totals.

Examples:
  jumper runs
  jumper runs --db ./runs.db
  jumper runs --clear`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagClearRuns, "clear", false, "Delete every journaled run")
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run journal: %w", err)
	}
	defer store.Close()

	if flagClearRuns {
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("error clearing runs: %w", err)
		}
		fmt.Println("Run journal cleared.")
		return nil
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return tui.RunRuns(store, width, height)
}
