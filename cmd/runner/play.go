package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/modes"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var flagTuning string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start a run in the specified mode (default: sprint).

Controls:
  Space/Up   - Jump (or flip gravity, in flux)
  P/Esc      - Pause
  R          - Restart (after game over)
  M          - Mode picker (menu and game over)
  Q/Ctrl+C   - Quit

Examples:
  runner play
  runner play flux
  runner play drifter --seed 42
  runner play sprint --tuning ./my-modes.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagTuning, "tuning", "", "Path to custom mode tuning YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := "sprint"
	if len(args) > 0 {
		modeID = args[0]
	}

	if !modes.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'runner modes' to see available modes.")
		os.Exit(1)
	}

	// Tuning overrides are applied once, before the first controller exists
	tuning, err := config.Load(flagTuning)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tuning: %v\n", err)
		os.Exit(1)
	}
	if err := tuning.Apply(); err != nil {
		fmt.Fprintf(os.Stderr, "Error applying tuning: %v\n", err)
		os.Exit(1)
	}

	// Size the play field from the terminal
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ViewW:    width,
		ViewH:    height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the run still works
		store = nil
	}

	runErr := tui.Run(modeID, store, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
