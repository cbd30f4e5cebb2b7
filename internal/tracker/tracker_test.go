package tracker

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/abhisek/radprep/internal/exam"
	"github.com/abhisek/radprep/internal/store"
)

// mockEventRepo is an in-memory append-only response log for tests.
type mockEventRepo struct {
	records []store.ResponseRecord
	nextSeq int64
}

func (m *mockEventRepo) AppendResponse(_ context.Context, rec store.ResponseRecord) (int64, error) {
	m.nextSeq++
	rec.Sequence = m.nextSeq
	m.records = append(m.records, rec)
	return m.nextSeq, nil
}

func (m *mockEventRepo) Responses(_ context.Context, opts store.QueryOpts) ([]store.ResponseRecord, error) {
	var out []store.ResponseRecord
	for _, rec := range m.records {
		if rec.Sequence <= opts.After {
			continue
		}
		if opts.Section != "" && rec.Section != opts.Section {
			continue
		}
		out = append(out, rec)
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
	}
	return out, nil
}

// mockAggRepo is an in-memory AggregateRepo for tests.
type mockAggRepo struct {
	rows map[string]store.AggregateRecord
}

func newMockAggRepo() *mockAggRepo {
	return &mockAggRepo{rows: make(map[string]store.AggregateRecord)}
}

func (m *mockAggRepo) Upsert(_ context.Context, rec store.AggregateRecord) error {
	m.rows[rec.Section] = rec
	return nil
}

func (m *mockAggRepo) All(_ context.Context) ([]store.AggregateRecord, error) {
	out := make([]store.AggregateRecord, 0, len(m.rows))
	for _, rec := range m.rows {
		out = append(out, rec)
	}
	return out, nil
}

func testAt() time.Time {
	return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
}

func newTestTracker(t *testing.T, cfg Config) *Tracker {
	t.Helper()
	tr, err := New(context.Background(), exam.CoreTable(), cfg, &mockEventRepo{}, newMockAggRepo())
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func record(t *testing.T, tr *Tracker, section exam.SectionID, outcomes ...bool) {
	t.Helper()
	for i, correct := range outcomes {
		grade := 5
		if !correct {
			grade = 1
		}
		err := tr.Record(context.Background(), Record{
			ItemID:  "itm",
			Section: section,
			Correct: correct,
			Grade:   grade,
			At:      testAt().Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestSectionAccuracy_Empty(t *testing.T) {
	tr := newTestTracker(t, DefaultConfig())
	if got := tr.SectionAccuracy(exam.SectionPhysics); got != 0 {
		t.Errorf("accuracy with no responses = %v, want 0", got)
	}
}

func TestSectionAccuracy_Basic(t *testing.T) {
	tr := newTestTracker(t, DefaultConfig())
	record(t, tr, exam.SectionPhysics, true, true, false, true)

	if got := tr.SectionAccuracy(exam.SectionPhysics); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("accuracy = %v, want 0.75", got)
	}
	if got := tr.SectionAccuracy(exam.SectionNeuro); got != 0 {
		t.Errorf("untouched section accuracy = %v, want 0", got)
	}
}

func TestSectionAccuracy_WindowEvictsOldest(t *testing.T) {
	// Window of 3: [miss, hit, hit] then one more hit evicts the miss.
	tr := newTestTracker(t, Config{WindowSize: 3})
	record(t, tr, exam.SectionMSK, false, true, true)

	if got := tr.SectionAccuracy(exam.SectionMSK); math.Abs(got-2.0/3.0) > 1e-9 {
		t.Fatalf("accuracy = %v, want 2/3", got)
	}
	record(t, tr, exam.SectionMSK, true)
	if got := tr.SectionAccuracy(exam.SectionMSK); got != 1.0 {
		t.Errorf("accuracy after eviction = %v, want 1.0", got)
	}
}

func TestStats_StreaksAndLifetime(t *testing.T) {
	tr := newTestTracker(t, Config{WindowSize: 3})
	record(t, tr, exam.SectionBreast, true, true, true, false, true, true)

	var st SectionStats
	for _, s := range tr.Stats() {
		if s.Section.ID == exam.SectionBreast {
			st = s
		}
	}
	if st.Samples != 6 {
		t.Errorf("Samples = %d, want lifetime 6 despite window 3", st.Samples)
	}
	if st.Streak != 2 {
		t.Errorf("Streak = %d, want 2", st.Streak)
	}
	if st.BestStreak != 3 {
		t.Errorf("BestStreak = %d, want 3", st.BestStreak)
	}
}

func TestRecord_UnknownSection(t *testing.T) {
	tr := newTestTracker(t, DefaultConfig())
	err := tr.Record(context.Background(), Record{ItemID: "itm", Section: "astrology", At: testAt()})
	if err == nil {
		t.Fatal("expected error for unknown section")
	}
}

func TestRecord_AppendsToLogAndUpserts(t *testing.T) {
	events := &mockEventRepo{}
	aggs := newMockAggRepo()
	tr, err := New(context.Background(), exam.CoreTable(), DefaultConfig(), events, aggs)
	if err != nil {
		t.Fatal(err)
	}

	err = tr.Record(context.Background(), Record{
		ItemID: "itm-1", Section: exam.SectionNuclear, Correct: true, Grade: 5, LatencyMs: 4200, At: testAt(),
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(events.records) != 1 || events.records[0].Sequence != 1 {
		t.Fatalf("event log = %+v, want one record at sequence 1", events.records)
	}
	agg, ok := aggs.rows[string(exam.SectionNuclear)]
	if !ok || agg.Samples != 1 || agg.CorrectTotal != 1 {
		t.Errorf("aggregate = %+v, want one correct sample", agg)
	}
}

func TestNew_RestoresFromAggregates(t *testing.T) {
	aggs := newMockAggRepo()
	aggs.rows[string(exam.SectionNeuro)] = store.AggregateRecord{
		Section:      string(exam.SectionNeuro),
		Window:       []bool{true, false, true, true},
		Samples:      40,
		CorrectTotal: 30,
		Streak:       2,
		BestStreak:   9,
		UpdatedAt:    testAt(),
	}

	tr, err := New(context.Background(), exam.CoreTable(), DefaultConfig(), &mockEventRepo{}, aggs)
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.SectionAccuracy(exam.SectionNeuro); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("restored accuracy = %v, want 0.75", got)
	}
	var st SectionStats
	for _, s := range tr.Stats() {
		if s.Section.ID == exam.SectionNeuro {
			st = s
		}
	}
	if st.Samples != 40 || st.BestStreak != 9 {
		t.Errorf("restored stats = %+v, want lifetime counters intact", st)
	}
}

func TestNew_RejectsUnknownAggregateSection(t *testing.T) {
	aggs := newMockAggRepo()
	aggs.rows["astrology"] = store.AggregateRecord{Section: "astrology"}

	_, err := New(context.Background(), exam.CoreTable(), DefaultConfig(), &mockEventRepo{}, aggs)
	if !store.IsCorruptState(err) {
		t.Fatalf("err = %v, want CorruptStateError", err)
	}
}

func TestWeakSections_OrderAndThreshold(t *testing.T) {
	tr := newTestTracker(t, DefaultConfig())
	record(t, tr, exam.SectionCardiothoracic, true, true, true, true) // 1.00
	record(t, tr, exam.SectionPhysics, true, false)                   // 0.50
	record(t, tr, exam.SectionNeuro, true, true, false)               // 0.67

	got := tr.WeakSections(0.75)

	// Empty sections score 0 and come first; equal-zero ties order by
	// weight desc then id. Physics at 0.50 precedes neuro at 0.67;
	// cardiothoracic clears the threshold.
	want := []exam.SectionID{
		exam.SectionAbdominal, // 0.15, zero samples
		exam.SectionMSK,       // 0.10
		exam.SectionNuclear,   // 0.10
		exam.SectionBreast,    // 0.08
		exam.SectionPediatric, // 0.07
		exam.SectionPhysics,
		exam.SectionNeuro,
	}
	if len(got) != len(want) {
		t.Fatalf("WeakSections = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("WeakSections[%d] = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestRebuild_ReplaysLog(t *testing.T) {
	events := &mockEventRepo{}
	aggs := newMockAggRepo()
	tr, err := New(context.Background(), exam.CoreTable(), Config{WindowSize: 3}, events, aggs)
	if err != nil {
		t.Fatal(err)
	}
	record(t, tr, exam.SectionPediatric, true, false, true, true)
	before := tr.SectionAccuracy(exam.SectionPediatric)

	// Wipe derived state, then rebuild from the log alone.
	tr.windows = make(map[exam.SectionID]*sectionWindow)
	if err := tr.Rebuild(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := tr.SectionAccuracy(exam.SectionPediatric); got != before {
		t.Errorf("rebuilt accuracy = %v, want %v", got, before)
	}
	var st SectionStats
	for _, s := range tr.Stats() {
		if s.Section.ID == exam.SectionPediatric {
			st = s
		}
	}
	if st.Samples != 4 {
		t.Errorf("rebuilt Samples = %d, want 4", st.Samples)
	}
}
