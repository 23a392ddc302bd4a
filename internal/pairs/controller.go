package pairs

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pairs/internal/leaderboard"
	"github.com/vovakirdan/tui-pairs/internal/theme"
)

// AnonymousName is recorded when a win is finished with a blank name.
const AnonymousName = "anonymous"

// Recorder persists win results. leaderboard.Board satisfies it; a nil
// Recorder disables recording.
type Recorder interface {
	Commit(key string, entry leaderboard.Entry) ([]leaderboard.Entry, error)
}

// Controller drives a session through the configure, restart and finish
// flows and records wins on the leaderboard.
type Controller struct {
	session *Session
	scores  Recorder
}

// NewController wraps a freshly dealt session. cfg.Symbols must already be
// resolved, see ResolveSymbols.
func NewController(cfg Config, scores Recorder) *Controller {
	return &Controller{
		session: NewSession(cfg),
		scores:  scores,
	}
}

// Session exposes the underlying session for input and rendering.
func (c *Controller) Session() *Session {
	return c.session
}

// ResolveSymbols turns a theme selection into the symbol source for a deal.
// theme.CustomID selects the caller-supplied symbols; any other id is
// looked up in the registry.
func ResolveSymbols(themeID string, customSymbols []string) ([]string, error) {
	if themeID == theme.CustomID {
		if len(customSymbols) == 0 {
			return nil, fmt.Errorf("pairs: custom theme needs at least one symbol")
		}
		return customSymbols, nil
	}
	t, err := theme.Get(themeID)
	if err != nil {
		return nil, err
	}
	return t.Symbols, nil
}

// Configure redeals the session for a new tier and theme selection.
// A reveal resolve or clock tick still pending for the old deal is
// discarded by the generation rotation in Session.Configure.
func (c *Controller) Configure(difficulty Difficulty, themeID string, customSymbols []string) error {
	symbols, err := ResolveSymbols(themeID, customSymbols)
	if err != nil {
		return err
	}

	cfg := c.session.Config()
	cfg.Difficulty = difficulty
	cfg.Theme = themeID
	cfg.Symbols = symbols
	cfg.Seed = 0 // fresh shuffle
	c.session.Configure(cfg)
	return nil
}

// Restart redeals the current configuration.
func (c *Controller) Restart() {
	c.session.Restart()
}

// Key returns the leaderboard key for the current session.
func (c *Controller) Key() string {
	cfg := c.session.Config()
	return leaderboard.Key(cfg.Theme, string(cfg.Difficulty))
}

// FinishWin records the finished session under the player's name, then
// redeals. The ranked table for the session key is returned; a persist
// failure is reported alongside it without blocking the redeal. A blank
// name is recorded as AnonymousName.
func (c *Controller) FinishWin(name string) ([]leaderboard.Entry, error) {
	if !c.session.Won() {
		return nil, fmt.Errorf("pairs: session is not won")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = AnonymousName
	}

	var ranked []leaderboard.Entry
	var err error
	if c.scores != nil {
		stats := c.session.Stats()
		ranked, err = c.scores.Commit(c.Key(), leaderboard.Entry{
			Name:           name,
			Moves:          stats.Moves,
			ElapsedSeconds: stats.ElapsedSeconds,
		})
	}

	c.session.Restart()
	return ranked, err
}
