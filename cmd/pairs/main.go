// pairs is a TUI memory game: flip tiles two at a time and clear the board
// by finding every matching pair.
//
// Usage:
//
//	pairs play               - Play in the local terminal
//	pairs scores             - Show saved best scores
//	pairs themes             - List tile themes
//	pairs serve              - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>      - Score store path (default: ~/.pairs/scores.db)
//	--config <path>  - Custom config YAML path
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pairs/internal/config"
	"github.com/vovakirdan/tui-pairs/internal/theme"
)

var (
	// Global flags
	flagDBPath     string
	flagConfigPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pairs",
	Short: "Pairs - a memory matching game for your terminal",
	Long: `Pairs is a terminal memory game. Tiles are dealt face down in
matching pairs; flip two at a time and clear the board in as few moves
and seconds as you can.

Available commands:
  play     - Play in the local terminal
  scores   - View saved best scores
  themes   - List available tile themes
  serve    - Start SSH server for remote play

Examples:
  pairs play
  pairs play --difficulty hard --theme fruits
  pairs scores animals-medium
  pairs serve --ssh :2222`,
}

func init() {
	// A .env file can provide PAIRS_DB and PAIRS_CONFIG
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr("PAIRS_DB", "~/.pairs/scores.db"),
		"Path to the score store (a .json extension selects the plain-file backend)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", os.Getenv("PAIRS_CONFIG"),
		"Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(serveCmd)
}

// envOr returns the environment value for key, or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// registerConfiguredThemes adds themes declared in the config file to the
// registry. Bad declarations are skipped with a warning.
func registerConfiguredThemes(cfg config.PairsConfig) {
	for _, tc := range cfg.Themes {
		t := theme.Theme{ID: tc.ID, Title: tc.Title, Symbols: tc.Symbols}
		if err := theme.RegisterConfigured(t); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping theme %q: %v\n", tc.ID, err)
		}
	}
}
