// Package theme provides a global registry for tile symbol themes.
// Built-in themes register themselves in init(); extra themes arrive from
// the config file at startup. The board only ever sees a resolved symbol
// slice, so themes never leak into the engine.
package theme

import (
	"fmt"
	"slices"
	"sort"
	"sync"
	"unicode"

	"github.com/samber/lo"
)

// CustomID marks an ad-hoc symbol list supplied by the player instead of a
// registered theme. The id is reserved; it can never be registered.
const CustomID = "custom"

// Theme is a named set of tile symbols.
type Theme struct {
	ID      string
	Title   string
	Symbols []string
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

// Register adds a theme to the registry.
// Typically called from an init() function.
// Panics if the id is reserved or already taken.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if t.ID == CustomID {
		panic(fmt.Sprintf("theme: id %q is reserved", CustomID))
	}
	if _, exists := themes[t.ID]; exists {
		panic(fmt.Sprintf("theme: theme %q already registered", t.ID))
	}

	themes[t.ID] = t
}

// RegisterConfigured adds a theme declared in a config file. Unlike
// Register it reports collisions and bad declarations as errors, so a user
// config cannot crash startup.
func RegisterConfigured(t Theme) error {
	mu.Lock()
	defer mu.Unlock()

	if t.ID == "" {
		return fmt.Errorf("theme: empty theme id")
	}
	if t.ID == CustomID {
		return fmt.Errorf("theme: id %q is reserved", CustomID)
	}
	if len(t.Symbols) == 0 {
		return fmt.Errorf("theme: theme %q has no symbols", t.ID)
	}
	if _, exists := themes[t.ID]; exists {
		return fmt.Errorf("theme: theme %q already registered", t.ID)
	}

	themes[t.ID] = t
	return nil
}

// Get returns the theme with the given id, with its own copy of the symbol
// slice. Returns an error if the id is not registered.
func Get(id string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[id]
	if !ok {
		return Theme{}, fmt.Errorf("theme: unknown theme %q", id)
	}

	t.Symbols = slices.Clone(t.Symbols)
	return t, nil
}

// List returns all registered themes, sorted by ID.
func List() []Theme {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Theme, 0, len(themes))
	for _, t := range themes {
		t.Symbols = slices.Clone(t.Symbols)
		result = append(result, t)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Exists checks if a theme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[id]
	return ok
}

// SplitSymbols turns a custom symbol string into per-tile symbols, one rune
// each. Whitespace is dropped and duplicates collapse to their first
// occurrence.
func SplitSymbols(s string) []string {
	var out []string
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		out = append(out, string(r))
	}
	return lo.Uniq(out)
}
