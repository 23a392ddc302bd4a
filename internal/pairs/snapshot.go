package pairs

import "slices"

// SessionState names the resolver's phase.
type SessionState string

const (
	StateIdle      SessionState = "idle"
	StateOneFaceUp SessionState = "one_face_up"
	StateComparing SessionState = "comparing"
	StateWon       SessionState = "won"
)

// Snapshot captures the complete session state for rendering and
// determinism testing. Slices are copies; mutating them does not touch the
// session.
type Snapshot struct {
	Tiles          []Tile
	Pending        []int
	State          SessionState
	Moves          int
	ElapsedSeconds int
	Running        bool
	Won            bool
	Difficulty     Difficulty
	Theme          string
	PairCount      int // pairs actually dealt
	MatchedPairs   int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	state := StateIdle
	switch {
	case s.won:
		state = StateWon
	case len(s.pending) == 2:
		state = StateComparing
	case len(s.pending) == 1:
		state = StateOneFaceUp
	}

	return Snapshot{
		Tiles:          slices.Clone(s.deck),
		Pending:        slices.Clone(s.pending),
		State:          state,
		Moves:          s.stats.Moves,
		ElapsedSeconds: s.stats.ElapsedSeconds,
		Running:        s.stats.Running,
		Won:            s.won,
		Difficulty:     s.cfg.Difficulty,
		Theme:          s.cfg.Theme,
		PairCount:      len(s.deck) / 2,
		MatchedPairs:   MatchedPairs(s.deck),
	}
}
