package pairs

import (
	"fmt"
	"strings"
)

// Difficulty selects how many symbol pairs a session is dealt.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// PairCount returns the number of pairs dealt for the tier.
// The three tiers and their counts are fixed.
func (d Difficulty) PairCount() int {
	switch d {
	case DifficultyEasy:
		return 4
	case DifficultyMedium:
		return 8
	case DifficultyHard:
		return 12
	default:
		return 0
	}
}

// Valid reports whether d is one of the three tiers.
func (d Difficulty) Valid() bool {
	return d.PairCount() > 0
}

// Difficulties returns the tiers in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty parses a tier name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("pairs: unknown difficulty %q", s)
	}
	return d, nil
}
