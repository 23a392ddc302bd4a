package leaderboard

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// MaxEntries caps each ranked table.
const MaxEntries = 5

// Entry is one recorded win.
type Entry struct {
	Name           string `json:"name"`
	Moves          int    `json:"moves"`
	ElapsedSeconds int    `json:"elapsedSeconds"`
}

// Table maps board keys to their ranked entries.
type Table map[string][]Entry

// Key builds the board key for a theme and difficulty, e.g. "animals-medium".
func Key(theme, difficulty string) string {
	return theme + "-" + difficulty
}

// SplitKey is the inverse of Key. Theme ids may contain dashes, so the
// difficulty is everything after the last one.
func SplitKey(key string) (theme, difficulty string) {
	i := strings.LastIndex(key, "-")
	if i < 0 {
		return key, ""
	}
	return key[:i], key[i+1:]
}

// Clone deep-copies the table.
func (t Table) Clone() Table {
	if t == nil {
		return Table{}
	}
	return lo.MapValues(t, func(entries []Entry, _ string) []Entry {
		return slices.Clone(entries)
	})
}

// Store loads and saves whole tables. internal/storage provides the SQLite
// and JSON file implementations.
type Store interface {
	Load() (Table, error)
	Save(Table) error
}

// Board is the in-memory leaderboard backed by a Store. Safe for concurrent
// use from multiple SSH sessions.
type Board struct {
	mu    sync.Mutex
	store Store
	table Table
}

// Open loads the persisted table into a Board. A nil store disables
// persistence; a store that cannot be read starts empty. Opening never
// fails.
func Open(store Store) *Board {
	b := &Board{store: store, table: Table{}}
	if store == nil {
		return b
	}
	if t, err := store.Load(); err == nil && t != nil {
		b.table = t
	}
	return b
}

// Commit inserts entry into the key's table, re-ranks, truncates to
// MaxEntries and persists the whole table in one replace-style save. The
// ranked list for the key is returned even when persisting fails; the
// error reports the persist failure.
func (b *Board) Commit(key string, entry Entry) ([]Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ranked := append(slices.Clone(b.table[key]), entry)
	sortEntries(ranked)
	if len(ranked) > MaxEntries {
		ranked = ranked[:MaxEntries]
	}
	b.table[key] = ranked

	if b.store != nil {
		if err := b.store.Save(b.table.Clone()); err != nil {
			return slices.Clone(ranked), fmt.Errorf("leaderboard: persist %s: %w", key, err)
		}
	}
	return slices.Clone(ranked), nil
}

// Read returns a copy of the ranked list for key, empty when absent.
func (b *Board) Read(key string) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.table[key])
}

// Keys returns the board keys that hold at least one entry, sorted.
func (b *Board) Keys() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var keys []string
	for k, entries := range b.table {
		if len(entries) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Rank returns the 1-based position of entry in a ranked list, or 0 when
// the entry did not place.
func Rank(ranked []Entry, entry Entry) int {
	for i, e := range ranked {
		if e == entry {
			return i + 1
		}
	}
	return 0
}

// sortEntries ranks ascending by elapsed seconds, then by moves. Equal
// entries keep their insertion order, so the earlier win ranks higher.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].ElapsedSeconds != entries[j].ElapsedSeconds {
			return entries[i].ElapsedSeconds < entries[j].ElapsedSeconds
		}
		return entries[i].Moves < entries[j].Moves
	})
}
