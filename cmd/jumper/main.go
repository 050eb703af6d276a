// jumper is an endless side-scrolling jump game for the terminal, SSH and the browser.
//
// Usage:
//
//	jumper play    - Play in this terminal
//	jumper serve   - Start SSH server for remote play
//	jumper web     - Serve the browser client
//	jumper runs    - Browse the run journal
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set run journal path (default: ~/.jumper/runs.db)
//	--config <path>       - Load gameplay tuning from YAML
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Jumper - Jump over pipes in your terminal",
	Long: `Jumper is an endless side-scroller: pipes slide in from the right,
you jump over them, and every pipe you clear scores a point. Every few
points the pipes get faster and come more often.

Available commands:
  play   - Play in this terminal
  serve  - Start SSH server for remote play
  web    - Serve the browser client
  runs   - Browse the run journal

Examples:
  jumper play
  jumper play --seed 42 --config ./easy.yaml
  jumper serve --ssh :2222
  jumper web --addr :8080
  jumper runs`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jumper/runs.db", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(runsCmd)
}
