package exam

import "fmt"

// Difficulty is the static difficulty label assigned to an item at ingestion.
type Difficulty string

const (
	DifficultyEasy         Difficulty = "easy"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyHard         Difficulty = "hard"
)

// ParseDifficulty validates a difficulty string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyIntermediate, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// IntervalMultiplier scales grown review intervals by difficulty.
func (d Difficulty) IntervalMultiplier() float64 {
	switch d {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.3
	default:
		return 1.0
	}
}
