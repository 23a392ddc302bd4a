package pairs

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pairs/internal/leaderboard"
	"github.com/vovakirdan/tui-pairs/internal/theme"
)

// fakeRecorder captures commits without touching storage.
type fakeRecorder struct {
	key     string
	entries []leaderboard.Entry
	err     error
}

func (f *fakeRecorder) Commit(key string, e leaderboard.Entry) ([]leaderboard.Entry, error) {
	f.key = key
	f.entries = append(f.entries, e)
	return f.entries, f.err
}

// winSession matches every pair until the session is won.
func winSession(t *testing.T, s *Session) {
	t.Helper()
	for !s.Won() {
		a, b := findUnmatchedPair(s)
		if a < 0 {
			t.Fatal("Ran out of pairs before winning")
		}
		s.Flip(a)
		res := s.Flip(b)
		s.Resolve(res.Generation)
	}
}

func TestResolveSymbols(t *testing.T) {
	symbols, err := ResolveSymbols("animals", nil)
	if err != nil {
		t.Fatalf("ResolveSymbols(animals) failed: %v", err)
	}
	if len(symbols) < DifficultyHard.PairCount() {
		t.Errorf("Built-in theme should cover the hard tier, got %d symbols", len(symbols))
	}

	custom, err := ResolveSymbols(theme.CustomID, []string{"A", "B"})
	if err != nil {
		t.Fatalf("ResolveSymbols(custom) failed: %v", err)
	}
	if len(custom) != 2 {
		t.Errorf("Expected the custom symbols back, got %v", custom)
	}

	if _, err := ResolveSymbols(theme.CustomID, nil); err == nil {
		t.Error("Custom theme without symbols should fail")
	}
	if _, err := ResolveSymbols("no-such-theme", nil); err == nil {
		t.Error("Unknown theme should fail")
	}
}

func TestControllerConfigure(t *testing.T) {
	c := NewController(testConfig(DifficultyEasy, 42), nil)

	if err := c.Configure(DifficultyMedium, "animals", nil); err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}

	snap := c.Session().Snapshot()
	if snap.Theme != "animals" {
		t.Errorf("Expected theme animals, got %q", snap.Theme)
	}
	if snap.Difficulty != DifficultyMedium {
		t.Errorf("Expected medium tier, got %s", snap.Difficulty)
	}
	if len(snap.Tiles) != DifficultyMedium.PairCount()*2 {
		t.Errorf("Expected %d tiles, got %d", DifficultyMedium.PairCount()*2, len(snap.Tiles))
	}
}

func TestControllerConfigureUnknownTheme(t *testing.T) {
	c := NewController(testConfig(DifficultyEasy, 42), nil)

	if err := c.Configure(DifficultyHard, "no-such-theme", nil); err == nil {
		t.Fatal("Configure with an unknown theme should fail")
	}

	// A failed configure must leave the session untouched
	snap := c.Session().Snapshot()
	if snap.Theme != "letters" || snap.Difficulty != DifficultyEasy {
		t.Errorf("Session changed by failed configure: theme=%q difficulty=%s", snap.Theme, snap.Difficulty)
	}
}

func TestControllerConfigureCustomTruncates(t *testing.T) {
	c := NewController(testConfig(DifficultyEasy, 42), nil)

	// Two custom symbols cannot fill the easy tier's four pairs; the deal
	// shrinks silently
	if err := c.Configure(DifficultyEasy, theme.CustomID, []string{"X", "Y"}); err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}

	snap := c.Session().Snapshot()
	if snap.Theme != theme.CustomID {
		t.Errorf("Expected theme %q, got %q", theme.CustomID, snap.Theme)
	}
	if len(snap.Tiles) != 4 {
		t.Errorf("Expected 4 tiles from 2 custom symbols, got %d", len(snap.Tiles))
	}
}

func TestControllerKey(t *testing.T) {
	c := NewController(testConfig(DifficultyMedium, 42), nil)
	if got := c.Key(); got != "letters-medium" {
		t.Errorf("Expected key letters-medium, got %q", got)
	}
}

func TestControllerFinishWin(t *testing.T) {
	rec := &fakeRecorder{}
	c := NewController(testConfig(DifficultyEasy, 42), rec)

	s := c.Session()
	s.TickClock(s.Generation())
	s.TickClock(s.Generation())
	winSession(t, s)

	ranked, err := c.FinishWin("  Ada  ")
	if err != nil {
		t.Fatalf("FinishWin() failed: %v", err)
	}
	if len(ranked) != 1 {
		t.Fatalf("Expected 1 ranked entry, got %d", len(ranked))
	}

	if rec.key != "letters-easy" {
		t.Errorf("Expected commit under letters-easy, got %q", rec.key)
	}
	got := rec.entries[0]
	if got.Name != "Ada" {
		t.Errorf("Expected trimmed name Ada, got %q", got.Name)
	}
	if got.Moves != DifficultyEasy.PairCount() {
		t.Errorf("Expected %d moves recorded, got %d", DifficultyEasy.PairCount(), got.Moves)
	}
	if got.ElapsedSeconds != 2 {
		t.Errorf("Expected 2 elapsed seconds recorded, got %d", got.ElapsedSeconds)
	}

	// FinishWin redeals for the next round
	snap := s.Snapshot()
	if snap.Won || snap.Moves != 0 || snap.ElapsedSeconds != 0 {
		t.Errorf("Expected a fresh deal after FinishWin, got %+v", snap)
	}
}

func TestControllerFinishWinAnonymous(t *testing.T) {
	rec := &fakeRecorder{}
	c := NewController(testConfig(DifficultyEasy, 42), rec)

	winSession(t, c.Session())
	if _, err := c.FinishWin("   "); err != nil {
		t.Fatalf("FinishWin() failed: %v", err)
	}

	if rec.entries[0].Name != AnonymousName {
		t.Errorf("Blank name should record as %q, got %q", AnonymousName, rec.entries[0].Name)
	}
}

func TestControllerFinishWinNotWon(t *testing.T) {
	c := NewController(testConfig(DifficultyEasy, 42), &fakeRecorder{})

	if _, err := c.FinishWin("Ada"); err == nil {
		t.Error("FinishWin on a running session should fail")
	}
}

func TestControllerFinishWinPersistError(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	c := NewController(testConfig(DifficultyEasy, 42), rec)

	winSession(t, c.Session())
	ranked, err := c.FinishWin("Ada")

	// The ranked list comes back even when persisting fails
	if err == nil {
		t.Error("Expected the persist error to surface")
	}
	if len(ranked) != 1 {
		t.Errorf("Expected the ranked list despite the error, got %v", ranked)
	}
	if c.Session().Won() {
		t.Error("FinishWin should redeal even when persisting fails")
	}
}

func TestControllerNilRecorder(t *testing.T) {
	c := NewController(testConfig(DifficultyEasy, 42), nil)

	winSession(t, c.Session())
	ranked, err := c.FinishWin("Ada")
	if err != nil {
		t.Fatalf("FinishWin() without a recorder failed: %v", err)
	}
	if ranked != nil {
		t.Errorf("No recorder means no ranked list, got %v", ranked)
	}
}
