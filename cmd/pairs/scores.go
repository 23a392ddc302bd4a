package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pairs/internal/leaderboard"
	"github.com/vovakirdan/tui-pairs/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show saved best scores",
	Long: `Display the saved best scores.

With no argument, every board with recorded entries is shown. A board
key is "<theme>-<difficulty>", e.g. "animals-medium".

Examples:
  pairs scores
  pairs scores animals-medium
  pairs scores fruits-hard --db ./scores.json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.OpenAuto(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores := leaderboard.Open(store)

	keys := scores.Keys()
	if len(args) == 1 {
		keys = []string{args[0]}
	}

	if len(keys) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pairs play' to set the first best time!")
		return
	}

	for _, key := range keys {
		printBoard(key, scores.Read(key))
	}
}

// printBoard writes one board's ranked table to stdout.
func printBoard(key string, entries []leaderboard.Entry) {
	themeID, difficulty := leaderboard.SplitKey(key)
	fmt.Printf("Best Scores - %s (%s)\n", themeID, difficulty)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "Rank", "Name", "Time", "Moves")
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "----", "----", "----", "-----")

	// Print entries
	for i, e := range entries {
		fmt.Printf("  %-4d  %-16s  %-8s  %d\n", i+1, e.Name, formatElapsed(e.ElapsedSeconds), e.Moves)
	}
	fmt.Println()
}

// formatElapsed renders elapsed seconds as mm:ss.
func formatElapsed(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
