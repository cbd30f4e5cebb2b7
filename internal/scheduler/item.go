package scheduler

import (
	"time"

	"github.com/abhisek/radprep/internal/exam"
)

// Mastery is an item's coarse progress bucket, derived from interval
// and repetition count.
type Mastery string

const (
	MasteryLearning  Mastery = "learning"
	MasteryReviewing Mastery = "reviewing"
	MasteryMastered  Mastery = "mastered"
)

// Item is the scheduling state for one practice item. Owned
// exclusively by the Scheduler; the store only persists it.
type Item struct {
	ID             string
	Section        exam.SectionID
	Difficulty     exam.Difficulty
	EaseFactor     float64
	IntervalDays   int
	Repetitions    int
	Lapses         int
	DueAt          time.Time
	Mastery        Mastery
	LastReviewedAt *time.Time
	CreatedAt      time.Time
}

// NewItem returns the default scheduling state for a freshly
// registered item: due immediately, in the Learning state.
func NewItem(id string, section exam.SectionID, difficulty exam.Difficulty, now time.Time) Item {
	return Item{
		ID:         id,
		Section:    section,
		Difficulty: difficulty,
		EaseFactor: DefaultEaseFactor,
		Mastery:    MasteryLearning,
		DueAt:      now,
		CreatedAt:  now,
	}
}

// IsDue reports whether the item is due at or past the given time.
func (it *Item) IsDue(now time.Time) bool {
	return !now.Before(it.DueAt)
}

// OverdueDays returns how many days past due the item is, or 0 if not
// yet due.
func (it *Item) OverdueDays(now time.Time) float64 {
	if now.Before(it.DueAt) {
		return 0
	}
	return now.Sub(it.DueAt).Hours() / 24.0
}
