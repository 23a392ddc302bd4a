package pairs

import (
	"math/rand"

	"github.com/samber/lo"
)

// Tile is one card on the board. ID is the tile's position in the deck,
// assigned after shuffling and stable for the life of the deck.
// Matched tiles stay face up.
type Tile struct {
	ID      int
	Symbol  string
	FaceUp  bool
	Matched bool
}

// NewDeck deals a shuffled deck with two tiles per symbol, taking the first
// pairCount symbols from the source. A source shorter than pairCount yields
// a smaller deck from every available symbol, not an error. A non-positive
// pairCount or an empty source yields an empty deck.
func NewDeck(symbols []string, pairCount int, rng *rand.Rand) []Tile {
	if pairCount > len(symbols) {
		pairCount = len(symbols)
	}
	if pairCount <= 0 {
		return nil
	}

	deck := lo.FlatMap(symbols[:pairCount], func(sym string, _ int) []Tile {
		return []Tile{{Symbol: sym}, {Symbol: sym}}
	})

	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	// IDs follow the shuffled order
	for i := range deck {
		deck[i].ID = i
	}
	return deck
}

// AllMatched reports whether every tile in a non-empty deck is matched.
// An empty deck is never "all matched".
func AllMatched(deck []Tile) bool {
	return len(deck) > 0 && lo.EveryBy(deck, func(t Tile) bool {
		return t.Matched
	})
}

// MatchedPairs counts the pairs already matched.
func MatchedPairs(deck []Tile) int {
	return lo.CountBy(deck, func(t Tile) bool { return t.Matched }) / 2
}
