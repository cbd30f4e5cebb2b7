package scheduler

// DefaultEaseFactor is the SM-2 starting ease for new items.
const DefaultEaseFactor = 2.5

// Config holds the scheduling policy constants. The source algorithm
// is a modified SM-2; the exact coefficients are policy, not physics,
// so they are configurable rather than hard-coded.
type Config struct {
	// EaseFloor is the minimum ease factor.
	EaseFloor float64
	// LapsePenalty is subtracted from the ease factor on every lapse.
	LapsePenalty float64
	// LapseIntervalDays is the short fixed step an item falls back to
	// after a lapse in Learning or Reviewing.
	LapseIntervalDays int
	// GraduatingSteps is the number of consecutive non-lapse responses
	// needed to leave Learning.
	GraduatingSteps int
	// GraduatingIntervalDays is the interval granted on graduation,
	// and the interval a lapsed Mastered item falls back to.
	GraduatingIntervalDays int
	// MasteredIntervalDays is the interval an item must exceed to be
	// promoted to Mastered.
	MasteredIntervalDays int
	// MasteredMinReps is the repetition count an item must exceed to
	// be promoted to Mastered.
	MasteredMinReps int
	// MaxIntervalDays caps interval growth to bound due-date drift.
	MaxIntervalDays int
}

// DefaultConfig returns the standard scheduling policy.
func DefaultConfig() Config {
	return Config{
		EaseFloor:              1.3,
		LapsePenalty:           0.2,
		LapseIntervalDays:      1,
		GraduatingSteps:        2,
		GraduatingIntervalDays: 6,
		MasteredIntervalDays:   90,
		MasteredMinReps:        5,
		MaxIntervalDays:        365,
	}
}
