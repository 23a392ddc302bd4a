package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pairs/internal/config"
	"github.com/vovakirdan/tui-pairs/internal/leaderboard"
	"github.com/vovakirdan/tui-pairs/internal/pairs"
	"github.com/vovakirdan/tui-pairs/internal/platform/tui"
	"github.com/vovakirdan/tui-pairs/internal/storage"
	"github.com/vovakirdan/tui-pairs/internal/theme"
)

var (
	flagDifficulty string
	flagTheme      string
	flagSymbols    string
	flagSeed       int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a game in the local terminal.

With no flags you get a setup menu for difficulty and theme. Passing
--difficulty, --theme or --symbols skips the menu and deals straight away.

Controls:
  Arrows/WASD  - Move the cursor
  Enter/Space  - Flip a tile
  R            - Redeal the board
  Esc          - Back to the setup menu
  Q/Ctrl+C     - Quit

Examples:
  pairs play
  pairs play --difficulty easy
  pairs play --difficulty hard --theme fruits
  pairs play --symbols "ABCDEFGH"
  pairs play --db ./scores.json`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Tile theme (see 'pairs themes')")
	playCmd.Flags().StringVar(&flagSymbols, "symbols", "", "Custom tile symbols, one per rune")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Shuffle seed (0 = random based on time)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadPairs(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	registerConfiguredThemes(cfg)

	// Open score storage
	store, err := storage.OpenAuto(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score store: %v\n", err)
		// Continue without persistence - the game still works
		store = nil
	}
	scores := leaderboard.Open(store)

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Direct launch when flags pick the setup
	if flagDifficulty != "" || flagTheme != "" || flagSymbols != "" {
		runErr := playDirect(cfg, scores, width, height)
		closeStore(store)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
			os.Exit(1)
		}
		return
	}

	// One controller lives for the whole menu loop; each selection
	// reconfigures it with a fresh shuffle.
	controller := pairs.NewController(pairs.Config{RevealDelay: cfg.Game.RevealDelay()}, scores)

	// Setup menu loop
	for {
		result, selErr := tui.RunSetupSelector(width, height)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			break
		}

		// Check if user wants the scoreboard
		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(scores, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to the setup menu
			}
			break // User quit from the scoreboard
		}

		if result.Quit || result.Selection == nil {
			break
		}

		if ctrlErr := controller.Configure(result.Selection.Difficulty, result.Selection.ThemeID, nil); ctrlErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", ctrlErr)
			continue
		}

		backToMenu, runErr := tui.RunBoard(controller, width, height)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			break
		}
		if !backToMenu {
			break
		}

		// Loop back to the setup menu
	}

	closeStore(store)
}

// playDirect deals one session straight from the flags, falling back to the
// config defaults for whatever the flags leave out.
func playDirect(cfg config.PairsConfig, scores *leaderboard.Board, width, height int) error {
	difficultyName := flagDifficulty
	if difficultyName == "" {
		difficultyName = cfg.Game.DefaultDifficulty
	}
	difficulty, err := pairs.ParseDifficulty(difficultyName)
	if err != nil {
		return err
	}

	themeID := flagTheme
	if themeID == "" {
		themeID = cfg.Game.DefaultTheme
	}

	var customSymbols []string
	if flagSymbols != "" {
		themeID = theme.CustomID
		customSymbols = theme.SplitSymbols(flagSymbols)
	}

	controller, err := newController(cfg, scores, difficulty, themeID, customSymbols)
	if err != nil {
		return err
	}

	_, err = tui.RunBoard(controller, width, height)
	return err
}

// newController resolves the theme and deals a fresh session.
func newController(cfg config.PairsConfig, scores *leaderboard.Board, difficulty pairs.Difficulty, themeID string, customSymbols []string) (*pairs.Controller, error) {
	symbols, err := pairs.ResolveSymbols(themeID, customSymbols)
	if err != nil {
		return nil, err
	}

	return pairs.NewController(pairs.Config{
		Difficulty:  difficulty,
		Theme:       themeID,
		Symbols:     symbols,
		RevealDelay: cfg.Game.RevealDelay(),
		Seed:        flagSeed,
	}, scores), nil
}

// closeStore releases the score store if one was opened.
func closeStore(store storage.Backend) {
	if store != nil {
		store.Close()
	}
}
