package tracker

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/abhisek/radprep/internal/exam"
	"github.com/abhisek/radprep/internal/store"
)

// DefaultWindowSize is the number of recent responses per section that
// feed the rolling accuracy estimate.
const DefaultWindowSize = 50

// Config holds performance tracking settings.
type Config struct {
	WindowSize int
}

// DefaultConfig returns sensible tracking defaults.
func DefaultConfig() Config {
	return Config{WindowSize: DefaultWindowSize}
}

// Record is one response event as seen by the tracker.
type Record struct {
	ItemID    string
	Section   exam.SectionID
	Correct   bool
	Grade     int
	LatencyMs int
	At        time.Time
}

// sectionWindow is the rolling state for one section: a fixed-size
// window of recent outcomes plus lifetime counters and streaks.
type sectionWindow struct {
	outcomes      []bool // oldest first, len <= window size
	windowCorrect int
	samples       int // lifetime
	correctTotal  int // lifetime
	streak        int
	bestStreak    int
	updatedAt     time.Time
}

func (w *sectionWindow) push(correct bool, size int, at time.Time) {
	w.outcomes = append(w.outcomes, correct)
	if correct {
		w.windowCorrect++
	}
	if len(w.outcomes) > size {
		if w.outcomes[0] {
			w.windowCorrect--
		}
		w.outcomes = w.outcomes[1:]
	}

	w.samples++
	if correct {
		w.correctTotal++
		w.streak++
		if w.streak > w.bestStreak {
			w.bestStreak = w.streak
		}
	} else {
		w.streak = 0
	}
	w.updatedAt = at
}

func (w *sectionWindow) accuracy() float64 {
	if len(w.outcomes) == 0 {
		return 0
	}
	return float64(w.windowCorrect) / float64(len(w.outcomes))
}

// Tracker maintains rolling per-section and global performance
// aggregates. Every recorded response is appended to the durable
// response log; the aggregates are derived state and can be rebuilt
// from it.
type Tracker struct {
	cfg    Config
	table  *exam.Table
	events store.EventRepo
	aggs   store.AggregateRepo

	mu      sync.RWMutex
	windows map[exam.SectionID]*sectionWindow
}

// New builds a Tracker, restoring aggregates from the store when
// present. events or aggs may be nil in tests.
func New(ctx context.Context, table *exam.Table, cfg Config, events store.EventRepo, aggs store.AggregateRepo) (*Tracker, error) {
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = DefaultWindowSize
	}
	t := &Tracker{
		cfg:     cfg,
		table:   table,
		events:  events,
		aggs:    aggs,
		windows: make(map[exam.SectionID]*sectionWindow),
	}

	if aggs == nil {
		return t, nil
	}
	records, err := aggs.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aggregates: %w", err)
	}
	for _, rec := range records {
		id := exam.SectionID(rec.Section)
		if _, ok := table.Get(id); !ok {
			return nil, &store.CorruptStateError{
				Kind:   "aggregate",
				ID:     rec.Section,
				Reason: "unknown section",
			}
		}
		w := &sectionWindow{
			outcomes:     append([]bool(nil), rec.Window...),
			samples:      rec.Samples,
			correctTotal: rec.CorrectTotal,
			streak:       rec.Streak,
			bestStreak:   rec.BestStreak,
			updatedAt:    rec.UpdatedAt,
		}
		for _, ok := range w.outcomes {
			if ok {
				w.windowCorrect++
			}
		}
		t.windows[id] = w
	}
	return t, nil
}

// Record appends a performance record to the log and folds it into the
// section's rolling aggregate in O(1).
func (t *Tracker) Record(ctx context.Context, rec Record) error {
	if _, ok := t.table.Get(rec.Section); !ok {
		return fmt.Errorf("record response: unknown section %q", rec.Section)
	}

	if t.events != nil {
		_, err := t.events.AppendResponse(ctx, store.ResponseRecord{
			ItemID:    rec.ItemID,
			Section:   string(rec.Section),
			Correct:   rec.Correct,
			Grade:     rec.Grade,
			LatencyMs: rec.LatencyMs,
			Timestamp: rec.At,
		})
		if err != nil {
			return err
		}
	}

	t.mu.Lock()
	w := t.window(rec.Section)
	w.push(rec.Correct, t.cfg.WindowSize, rec.At)
	agg := t.aggregateRecord(rec.Section, w)
	t.mu.Unlock()

	if t.aggs != nil {
		if err := t.aggs.Upsert(ctx, agg); err != nil {
			return err
		}
	}
	return nil
}

// SectionAccuracy returns the rolling accuracy for a section in [0,1].
// Sections with no recorded responses report 0.
func (t *Tracker) SectionAccuracy(id exam.SectionID) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	w, ok := t.windows[id]
	if !ok {
		return 0
	}
	return w.accuracy()
}

// SectionStats is a per-section performance summary.
type SectionStats struct {
	Section    exam.Section
	Accuracy   float64
	Samples    int
	Streak     int
	BestStreak int
}

// Stats returns per-section summaries ordered like the exam table.
func (t *Tracker) Stats() []SectionStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]SectionStats, 0, t.table.Len())
	for _, sec := range t.table.Sections() {
		st := SectionStats{Section: sec}
		if w, ok := t.windows[sec.ID]; ok {
			st.Accuracy = w.accuracy()
			st.Samples = w.samples
			st.Streak = w.streak
			st.BestStreak = w.bestStreak
		}
		out = append(out, st)
	}
	return out
}

// WeakSections returns the sections whose rolling accuracy is below
// threshold, ordered ascending by accuracy; ties break by descending
// exam weight so high-weight weak sections surface first, then by id.
func (t *Tracker) WeakSections(threshold float64) []exam.SectionID {
	t.mu.RLock()
	defer t.mu.RUnlock()

	type weak struct {
		id     exam.SectionID
		acc    float64
		weight float64
	}
	var weaks []weak
	for _, sec := range t.table.Sections() {
		acc := 0.0
		if w, ok := t.windows[sec.ID]; ok {
			acc = w.accuracy()
		}
		if acc < threshold {
			weaks = append(weaks, weak{id: sec.ID, acc: acc, weight: sec.Weight})
		}
	}

	sort.Slice(weaks, func(i, j int) bool {
		if weaks[i].acc != weaks[j].acc {
			return weaks[i].acc < weaks[j].acc
		}
		if weaks[i].weight != weaks[j].weight {
			return weaks[i].weight > weaks[j].weight
		}
		return weaks[i].id < weaks[j].id
	})

	ids := make([]exam.SectionID, len(weaks))
	for i, w := range weaks {
		ids[i] = w.id
	}
	return ids
}

// Rebuild discards the in-memory aggregates and replays the response
// log from the beginning. Used when aggregates are missing or suspect.
func (t *Tracker) Rebuild(ctx context.Context) error {
	if t.events == nil {
		return fmt.Errorf("rebuild: no event log")
	}
	records, err := t.events.Responses(ctx, store.QueryOpts{})
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.windows = make(map[exam.SectionID]*sectionWindow)
	for _, rec := range records {
		id := exam.SectionID(rec.Section)
		if _, ok := t.table.Get(id); !ok {
			continue // sections may be retired; their history stays in the log
		}
		t.window(id).push(rec.Correct, t.cfg.WindowSize, rec.Timestamp)
	}
	aggs := make([]store.AggregateRecord, 0, len(t.windows))
	for id, w := range t.windows {
		aggs = append(aggs, t.aggregateRecord(id, w))
	}
	t.mu.Unlock()

	if t.aggs != nil {
		for _, agg := range aggs {
			if err := t.aggs.Upsert(ctx, agg); err != nil {
				return err
			}
		}
	}
	return nil
}

// window returns the rolling state for a section, creating it on first
// use. Caller must hold t.mu.
func (t *Tracker) window(id exam.SectionID) *sectionWindow {
	w, ok := t.windows[id]
	if !ok {
		w = &sectionWindow{}
		t.windows[id] = w
	}
	return w
}

// aggregateRecord exports a window for persistence. Caller must hold t.mu.
func (t *Tracker) aggregateRecord(id exam.SectionID, w *sectionWindow) store.AggregateRecord {
	return store.AggregateRecord{
		Section:      string(id),
		Window:       append([]bool(nil), w.outcomes...),
		Samples:      w.samples,
		CorrectTotal: w.correctTotal,
		Streak:       w.streak,
		BestStreak:   w.bestStreak,
		UpdatedAt:    w.updatedAt,
	}
}
