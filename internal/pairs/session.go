package pairs

import (
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultRevealDelay is how long a second flipped tile stays visible before
// the pair is compared.
const DefaultRevealDelay = 900 * time.Millisecond

// Event identifies what a session transition produced.
type Event int

const (
	EventNone Event = iota
	EventFlip
	EventMatch
	EventMismatch
)

func (e Event) String() string {
	switch e {
	case EventFlip:
		return "flip"
	case EventMatch:
		return "match"
	case EventMismatch:
		return "mismatch"
	default:
		return "none"
	}
}

// Config describes one session.
type Config struct {
	Difficulty  Difficulty
	Theme       string   // theme id recorded on the leaderboard key
	Symbols     []string // resolved symbol source
	RevealDelay time.Duration
	Seed        int64 // 0 means seed from the clock
}

// Stats are the counters shown in the HUD and recorded on a win.
type Stats struct {
	Moves          int
	ElapsedSeconds int
	Running        bool
}

// Session is the pairs engine: a dealt deck plus the flip/compare state
// machine and the session clock counters. It owns no timers. Callers
// schedule the reveal resolve and the one-second clock tick themselves and
// report back through Resolve and TickClock, quoting the generation the
// callback was scheduled under; callbacks from an abandoned session
// generation are discarded.
type Session struct {
	cfg     Config
	rng     *rand.Rand
	deck    []Tile
	pending []int // ids of face-up unmatched tiles, at most 2
	stats   Stats
	won     bool
	gen     uuid.UUID
}

// NewSession deals a session from cfg.
func NewSession(cfg Config) *Session {
	s := &Session{}
	s.Configure(cfg)
	return s
}

// Configure applies cfg and deals a fresh deck: zeroed counters, empty
// pending selection, clock running, and a new generation so callbacks
// scheduled for the previous deal are discarded.
func (s *Session) Configure(cfg Config) {
	if cfg.RevealDelay <= 0 {
		cfg.RevealDelay = DefaultRevealDelay
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	s.cfg = cfg
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.deck = NewDeck(cfg.Symbols, cfg.Difficulty.PairCount(), s.rng)
	s.pending = nil
	s.stats = Stats{Running: true}
	s.won = false
	s.gen = uuid.New()
}

// Restart redeals the current configuration with a new shuffle.
func (s *Session) Restart() {
	cfg := s.cfg
	cfg.Seed = s.rng.Int63()
	s.Configure(cfg)
}

// FlipResult reports the outcome of a Flip call.
type FlipResult struct {
	Event        Event
	NeedsResolve bool      // second tile went up; schedule Resolve after RevealDelay
	Generation   uuid.UUID // tag for the scheduled callback
}

// Flip turns the tile with the given id face up and adds it to the pending
// selection. It is a no-op returning a zero result when the id is out of
// range, the tile is already face up or matched, two tiles are already
// pending, or the session is won.
func (s *Session) Flip(id int) FlipResult {
	if s.won || len(s.pending) == 2 {
		return FlipResult{}
	}
	if id < 0 || id >= len(s.deck) {
		return FlipResult{}
	}
	t := &s.deck[id]
	if t.FaceUp || t.Matched {
		return FlipResult{}
	}

	t.FaceUp = true
	s.pending = append(s.pending, id)
	return FlipResult{
		Event:        EventFlip,
		NeedsResolve: len(s.pending) == 2,
		Generation:   s.gen,
	}
}

// ResolveResult reports the outcome of a pair comparison.
type ResolveResult struct {
	Event Event
	Won   bool
}

// Resolve compares the two pending tiles: equal symbols lock both as
// matched, different symbols turn both back face down. Either way the move
// counter advances exactly once and the pending selection empties. A call
// with a stale generation, or without two pending tiles, is a no-op
// returning a zero result.
func (s *Session) Resolve(gen uuid.UUID) ResolveResult {
	if gen != s.gen || len(s.pending) != 2 {
		return ResolveResult{}
	}

	a := &s.deck[s.pending[0]]
	b := &s.deck[s.pending[1]]
	s.pending = nil
	s.stats.Moves++

	if a.Symbol != b.Symbol {
		a.FaceUp = false
		b.FaceUp = false
		return ResolveResult{Event: EventMismatch}
	}

	a.Matched = true
	b.Matched = true
	if AllMatched(s.deck) {
		s.won = true
		s.stats.Running = false
	}
	return ResolveResult{Event: EventMatch, Won: s.won}
}

// TickClock advances the elapsed-seconds counter by one and reports whether
// the caller should schedule the next tick. Ticks for a stale generation or
// a stopped clock are discarded.
func (s *Session) TickClock(gen uuid.UUID) bool {
	if gen != s.gen || !s.stats.Running {
		return false
	}
	s.stats.ElapsedSeconds++
	return true
}

// Generation identifies the current deal. Scheduled callbacks quote it so
// Resolve and TickClock can discard leftovers from an earlier deal.
func (s *Session) Generation() uuid.UUID {
	return s.gen
}

// Won reports whether every pair has been matched.
func (s *Session) Won() bool {
	return s.won
}

// Stats returns the current counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// RevealDelay returns how long a completed selection stays visible before
// Resolve should run.
func (s *Session) RevealDelay() time.Duration {
	return s.cfg.RevealDelay
}

// Config returns a copy of the session configuration.
func (s *Session) Config() Config {
	cfg := s.cfg
	cfg.Symbols = slices.Clone(s.cfg.Symbols)
	return cfg
}
