package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pairs/internal/config"
	"github.com/vovakirdan/tui-pairs/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List all tile themes",
	Long:  `Shows the tile themes available for play, including any declared in the config file.`,
	Run:   runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	if cfg, err := config.LoadPairs(flagConfigPath); err == nil {
		registerConfiguredThemes(cfg)
	}

	themes := theme.List()

	if len(themes) == 0 {
		fmt.Println("No themes available.")
		return
	}

	fmt.Println("Available themes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, t := range themes {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "ID", "Title", "Symbols")
	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "--", "-----", "-------")

	// Print themes
	for _, t := range themes {
		fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, t.ID, t.Title, strings.Join(t.Symbols, " "))
	}

	fmt.Println()
	fmt.Println("Run 'pairs play --theme <id>' to use a theme.")
}
