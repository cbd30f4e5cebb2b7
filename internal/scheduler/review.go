package scheduler

import (
	"fmt"
	"math"
	"time"
)

// Review applies one graded response to an item's scheduling state and
// returns the new state. It is a pure function of (state, grade, now,
// config): no hidden globals, no I/O.
func Review(it Item, g Grade, now time.Time, cfg Config) (Item, error) {
	if !g.Valid() {
		return Item{}, fmt.Errorf("%w: %d", ErrInvalidGrade, g)
	}

	next := it
	reviewedAt := now
	next.LastReviewedAt = &reviewedAt

	if g.IsLapse() {
		applyLapse(&next, cfg)
	} else {
		applySuccess(&next, g, cfg)
	}

	next.DueAt = now.AddDate(0, 0, next.IntervalDays)
	return next, nil
}

// applyLapse demotes mastery and shrinks the interval. A single miss
// ends Mastered status unconditionally, but a formerly mastered item
// falls back to the graduating interval rather than all the way to the
// relearning step.
func applyLapse(it *Item, cfg Config) {
	if it.Mastery == MasteryMastered {
		it.Mastery = MasteryReviewing
		it.IntervalDays = cfg.GraduatingIntervalDays
	} else {
		it.Mastery = MasteryLearning
		it.IntervalDays = cfg.LapseIntervalDays
	}

	it.Repetitions = 0
	it.Lapses++
	it.EaseFactor = math.Max(cfg.EaseFloor, it.EaseFactor-cfg.LapsePenalty)
}

func applySuccess(it *Item, g Grade, cfg Config) {
	switch it.Mastery {
	case MasteryLearning:
		it.Repetitions++
		if it.Repetitions >= cfg.GraduatingSteps {
			it.Mastery = MasteryReviewing
			it.IntervalDays = cfg.GraduatingIntervalDays
		} else {
			it.IntervalDays = cfg.LapseIntervalDays
		}

	case MasteryReviewing, MasteryMastered:
		it.EaseFactor = nextEase(it.EaseFactor, g, cfg.EaseFloor)
		it.IntervalDays = growInterval(it, cfg)
		it.Repetitions++

		if it.Mastery == MasteryReviewing &&
			it.IntervalDays > cfg.MasteredIntervalDays &&
			it.Repetitions > cfg.MasteredMinReps {
			it.Mastery = MasteryMastered
		}
	}
}

// nextEase is the SM-2 ease update: perfect responses grow the ease by
// 0.1, grade 4 leaves it unchanged, grade 3 shrinks it by 0.14.
func nextEase(ease float64, g Grade, floor float64) float64 {
	q := float64(g)
	ease += 0.1 - (5-q)*(0.08+(5-q)*0.02)
	return math.Max(floor, ease)
}

// growInterval multiplies the interval by the new ease factor, scales
// by static difficulty, and clamps to [1, MaxIntervalDays].
func growInterval(it *Item, cfg Config) int {
	grown := math.Round(float64(it.IntervalDays) * it.EaseFactor)
	grown = math.Round(grown * it.Difficulty.IntervalMultiplier())

	days := int(grown)
	if days < 1 {
		days = 1
	}
	if days > cfg.MaxIntervalDays {
		days = cfg.MaxIntervalDays
	}
	return days
}
