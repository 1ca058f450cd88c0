// runner is a terminal endless-runner with selectable modes.
//
// Usage:
//
//	runner modes             - List available modes
//	runner play [mode]       - Play a mode (default: sprint)
//	runner serve             - Start SSH server for remote play
//	runner scores [mode]     - Show best runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.runner/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "TUI Runner - An endless runner in your terminal",
	Long: `TUI Runner is a terminal endless-runner. Pick a mode, jump over
obstacles, and chase your best score while the world speeds up.

Available commands:
  modes    - Show all available modes
  play     - Play a mode directly
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  runner modes
  runner play sprint
  runner play flux --seed 42
  runner serve --ssh :2222
  runner scores sprint`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
