package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/modes"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List all available modes",
	Long:  `Shows a list of all registered runner modes.`,
	Run:   runModes,
}

func runModes(cmd *cobra.Command, args []string) {
	catalog := modes.List()

	if len(catalog) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxNameLen := 4
	for _, m := range catalog {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
		if len(m.Name) > maxNameLen {
			maxNameLen = len(m.Name)
		}
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Hint")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxNameLen, "----", "----")

	for _, m := range catalog {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, m.ID, maxNameLen, m.Name, m.Hint)
	}

	fmt.Println()
	fmt.Println("Run 'runner play <id>' to start a run.")
}
