package leaderboard

import (
	"errors"
	"testing"
)

// fakeStore records saves and can fail on demand.
type fakeStore struct {
	table   Table
	loadErr error
	saveErr error
	saves   int
	last    Table
}

func (f *fakeStore) Load() (Table, error) { return f.table, f.loadErr }

func (f *fakeStore) Save(t Table) error {
	f.saves++
	f.last = t
	return f.saveErr
}

func TestKeyRoundTrip(t *testing.T) {
	key := Key("animals", "medium")
	if key != "animals-medium" {
		t.Fatalf("Expected animals-medium, got %q", key)
	}

	theme, difficulty := SplitKey(key)
	if theme != "animals" || difficulty != "medium" {
		t.Errorf("SplitKey(%q) = %q, %q", key, theme, difficulty)
	}

	// Theme ids may contain dashes; the difficulty is the last segment
	theme, difficulty = SplitKey("retro-games-hard")
	if theme != "retro-games" || difficulty != "hard" {
		t.Errorf("SplitKey(retro-games-hard) = %q, %q", theme, difficulty)
	}
}

func TestCommitRanksAscending(t *testing.T) {
	b := Open(nil)

	b.Commit("k", Entry{Name: "slow", Moves: 10, ElapsedSeconds: 90})
	b.Commit("k", Entry{Name: "fast", Moves: 12, ElapsedSeconds: 30})
	ranked, err := b.Commit("k", Entry{Name: "mid", Moves: 8, ElapsedSeconds: 60})
	if err != nil {
		t.Fatalf("Commit() failed: %v", err)
	}

	names := []string{"fast", "mid", "slow"}
	for i, want := range names {
		if ranked[i].Name != want {
			t.Errorf("Rank %d: expected %s, got %s", i+1, want, ranked[i].Name)
		}
	}
}

func TestCommitTieBreaksOnMoves(t *testing.T) {
	b := Open(nil)

	b.Commit("k", Entry{Name: "more-moves", Moves: 20, ElapsedSeconds: 45})
	ranked, _ := b.Commit("k", Entry{Name: "fewer-moves", Moves: 10, ElapsedSeconds: 45})

	if ranked[0].Name != "fewer-moves" {
		t.Errorf("Equal times should rank by moves, got %s first", ranked[0].Name)
	}
}

func TestCommitStableOnFullTie(t *testing.T) {
	b := Open(nil)

	b.Commit("k", Entry{Name: "first", Moves: 10, ElapsedSeconds: 45})
	ranked, _ := b.Commit("k", Entry{Name: "second", Moves: 10, ElapsedSeconds: 45})

	// The earlier win keeps the higher rank
	if ranked[0].Name != "first" || ranked[1].Name != "second" {
		t.Errorf("Full ties should keep insertion order, got %s then %s", ranked[0].Name, ranked[1].Name)
	}
}

func TestCommitTruncatesToMax(t *testing.T) {
	b := Open(nil)

	for i := range MaxEntries + 2 {
		b.Commit("k", Entry{Name: "p", Moves: 10, ElapsedSeconds: 10 + i})
	}

	ranked := b.Read("k")
	if len(ranked) != MaxEntries {
		t.Fatalf("Expected %d entries, got %d", MaxEntries, len(ranked))
	}
	if last := ranked[len(ranked)-1].ElapsedSeconds; last != 10+MaxEntries-1 {
		t.Errorf("Slowest kept entry should be %ds, got %ds", 10+MaxEntries-1, last)
	}
}

func TestCommitSlowEntryStillPersists(t *testing.T) {
	store := &fakeStore{}
	b := Open(store)

	for i := range MaxEntries {
		b.Commit("k", Entry{Name: "p", Moves: 5, ElapsedSeconds: 10 + i})
	}
	savesBefore := store.saves

	// Too slow to place, but the save still happens
	ranked, err := b.Commit("k", Entry{Name: "late", Moves: 5, ElapsedSeconds: 999})
	if err != nil {
		t.Fatalf("Commit() failed: %v", err)
	}
	if store.saves != savesBefore+1 {
		t.Error("Commit should persist even when the entry does not place")
	}
	if Rank(ranked, Entry{Name: "late", Moves: 5, ElapsedSeconds: 999}) != 0 {
		t.Error("An entry slower than a full table should not place")
	}
}

func TestCommitPersistsWholeTable(t *testing.T) {
	store := &fakeStore{}
	b := Open(store)

	b.Commit("animals-easy", Entry{Name: "a", Moves: 5, ElapsedSeconds: 10})
	b.Commit("fruits-hard", Entry{Name: "b", Moves: 30, ElapsedSeconds: 120})

	if len(store.last) != 2 {
		t.Fatalf("Save should carry the whole table, got %d keys", len(store.last))
	}
	if len(store.last["animals-easy"]) != 1 || len(store.last["fruits-hard"]) != 1 {
		t.Error("Both boards should be in the saved table")
	}
}

func TestCommitPersistError(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	b := Open(store)

	ranked, err := b.Commit("k", Entry{Name: "a", Moves: 5, ElapsedSeconds: 10})
	if err == nil {
		t.Error("Expected the persist error to surface")
	}
	if len(ranked) != 1 {
		t.Errorf("The ranked list should come back despite the error, got %v", ranked)
	}

	// The in-memory table keeps the entry
	if got := b.Read("k"); len(got) != 1 {
		t.Errorf("Entry should survive in memory, got %v", got)
	}
}

func TestOpenToleratesLoadFailure(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("corrupt record")}
	b := Open(store)

	if keys := b.Keys(); len(keys) != 0 {
		t.Errorf("A failed load should start empty, got keys %v", keys)
	}

	// The board still works after the failed load
	if _, err := b.Commit("k", Entry{Name: "a", Moves: 5, ElapsedSeconds: 10}); err != nil {
		t.Errorf("Commit after failed load failed: %v", err)
	}
}

func TestOpenLoadsExistingTable(t *testing.T) {
	store := &fakeStore{table: Table{
		"animals-easy": {{Name: "a", Moves: 5, ElapsedSeconds: 10}},
	}}
	b := Open(store)

	ranked := b.Read("animals-easy")
	if len(ranked) != 1 || ranked[0].Name != "a" {
		t.Errorf("Expected the loaded entry, got %v", ranked)
	}
}

func TestReadReturnsCopy(t *testing.T) {
	b := Open(nil)
	b.Commit("k", Entry{Name: "a", Moves: 5, ElapsedSeconds: 10})

	ranked := b.Read("k")
	ranked[0].Name = "mutated"

	if b.Read("k")[0].Name != "a" {
		t.Error("Mutating a Read result must not touch the board")
	}

	if got := b.Read("missing"); len(got) != 0 {
		t.Errorf("Missing key should read empty, got %v", got)
	}
}

func TestKeysSortedAndNonEmpty(t *testing.T) {
	store := &fakeStore{table: Table{
		"fruits-hard":  {{Name: "b", Moves: 30, ElapsedSeconds: 120}},
		"animals-easy": {{Name: "a", Moves: 5, ElapsedSeconds: 10}},
		"sports-easy":  {},
	}}
	b := Open(store)

	keys := b.Keys()
	if len(keys) != 2 {
		t.Fatalf("Empty boards should be skipped, got %v", keys)
	}
	if keys[0] != "animals-easy" || keys[1] != "fruits-hard" {
		t.Errorf("Keys should be sorted, got %v", keys)
	}
}

func TestRank(t *testing.T) {
	ranked := []Entry{
		{Name: "a", Moves: 5, ElapsedSeconds: 10},
		{Name: "b", Moves: 8, ElapsedSeconds: 20},
	}

	if got := Rank(ranked, ranked[1]); got != 2 {
		t.Errorf("Expected rank 2, got %d", got)
	}
	if got := Rank(ranked, Entry{Name: "c", Moves: 1, ElapsedSeconds: 1}); got != 0 {
		t.Errorf("Absent entries should rank 0, got %d", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	table := Table{"k": {{Name: "a", Moves: 5, ElapsedSeconds: 10}}}

	clone := table.Clone()
	clone["k"][0].Name = "mutated"

	if table["k"][0].Name != "a" {
		t.Error("Clone should copy entry slices")
	}

	var nilTable Table
	if got := nilTable.Clone(); got == nil {
		t.Error("Cloning a nil table should give an empty table")
	}
}
