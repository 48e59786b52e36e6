package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ortho-arena/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows a list of all levels registered in the arena.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	levels := registry.List()

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxTitleLen = max(maxTitleLen, len(l.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----------")

	for _, l := range levels {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, l.ID, maxTitleLen, l.Title, l.Description)
	}

	fmt.Println()
	fmt.Println("Run 'arena play <id>' to play a level.")
}
