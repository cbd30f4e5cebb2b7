// Package ranker scores items for session inclusion by blending three
// signals: how overdue an item is, how weak the learner is in its
// section, and how much the section counts on the exam.
package ranker

import (
	"sort"
	"time"

	"github.com/abhisek/radprep/internal/exam"
	"github.com/abhisek/radprep/internal/scheduler"
)

// Weights is the blend policy. The values are tunable but must stay
// stable within a deployment so that plans are reproducible.
type Weights struct {
	Overdue    float64
	Weakness   float64
	ExamWeight float64
}

// DefaultWeights returns the standard 0.5/0.3/0.2 blend.
func DefaultWeights() Weights {
	return Weights{Overdue: 0.5, Weakness: 0.3, ExamWeight: 0.2}
}

// AccuracySource supplies rolling section accuracy in [0,1].
type AccuracySource interface {
	SectionAccuracy(id exam.SectionID) float64
}

// Ranker computes priority scores against a section table and an
// accuracy source.
type Ranker struct {
	weights Weights
	table   *exam.Table
	acc     AccuracySource
}

// New creates a Ranker.
func New(table *exam.Table, acc AccuracySource, weights Weights) *Ranker {
	return &Ranker{weights: weights, table: table, acc: acc}
}

// OverdueFactor is how far past due the item is, in units of its own
// interval, clamped to [0,2] so long-neglected items cannot skew the
// ranking without bound. Items not yet due score 0 but stay eligible.
func OverdueFactor(it scheduler.Item, now time.Time) float64 {
	if now.Before(it.DueAt) {
		return 0
	}
	if it.IntervalDays <= 0 {
		// A due item with no interval yet (fresh registration) is
		// maximally urgent.
		return 2
	}
	f := it.OverdueDays(now) / float64(it.IntervalDays)
	if f > 2 {
		return 2
	}
	return f
}

// Priority returns the composite urgency score for an item; higher is
// more urgent.
func (r *Ranker) Priority(it scheduler.Item, now time.Time) float64 {
	overdue := OverdueFactor(it, now)
	weakness := 1 - r.acc.SectionAccuracy(it.Section)

	examWeight := 0.0
	if sec, ok := r.table.Get(it.Section); ok && r.table.MaxWeight() > 0 {
		examWeight = sec.Weight / r.table.MaxWeight()
	}

	return overdue*r.weights.Overdue +
		weakness*r.weights.Weakness +
		examWeight*r.weights.ExamWeight
}

// Scored pairs an item with its priority.
type Scored struct {
	Item     scheduler.Item
	Priority float64
}

// Rank scores items and sorts them by descending priority. Equal
// priorities fall back to ascending item id so output is deterministic
// for a given store snapshot.
func (r *Ranker) Rank(items []scheduler.Item, now time.Time) []Scored {
	scored := make([]Scored, len(items))
	for i, it := range items {
		scored[i] = Scored{Item: it, Priority: r.Priority(it, now)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Priority != scored[j].Priority {
			return scored[i].Priority > scored[j].Priority
		}
		return scored[i].Item.ID < scored[j].Item.ID
	})
	return scored
}
