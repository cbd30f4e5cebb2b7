package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testTime() time.Time {
	return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
}

func testItemRecord(id string) ItemRecord {
	return ItemRecord{
		ItemID:       id,
		Section:      "physics",
		Difficulty:   "intermediate",
		EaseFactor:   2.5,
		IntervalDays: 0,
		Mastery:      "learning",
		DueAt:        testTime(),
		CreatedAt:    testTime(),
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestItemCreateAndAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, testItemRecord("itm-1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	records, corrupt, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(corrupt) != 0 {
		t.Fatalf("corrupt = %v, want none", corrupt)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	rec := records[0]
	if rec.ItemID != "itm-1" || rec.Section != "physics" || rec.EaseFactor != 2.5 {
		t.Errorf("record = %+v, want the created item back", rec)
	}
	if rec.LastReviewedAt != nil {
		t.Errorf("LastReviewedAt = %v, want nil for a fresh item", rec.LastReviewedAt)
	}
}

func TestItemCreateDuplicate(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, testItemRecord("itm-1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.Create(ctx, testItemRecord("itm-1"))
	if !errors.Is(err, ErrDuplicateItem) {
		t.Fatalf("duplicate create err = %v, want ErrDuplicateItem", err)
	}
}

func TestItemSave(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, testItemRecord("itm-1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	reviewed := testTime().Add(time.Hour)
	rec := testItemRecord("itm-1")
	rec.EaseFactor = 2.6
	rec.IntervalDays = 6
	rec.Repetitions = 2
	rec.Mastery = "reviewing"
	rec.DueAt = testTime().AddDate(0, 0, 6)
	rec.LastReviewedAt = &reviewed

	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	records, _, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	got := records[0]
	if got.Mastery != "reviewing" || got.IntervalDays != 6 || got.Repetitions != 2 {
		t.Errorf("record = %+v, want saved scheduling state", got)
	}
	if got.LastReviewedAt == nil || !got.LastReviewedAt.Equal(reviewed) {
		t.Errorf("LastReviewedAt = %v, want %v", got.LastReviewedAt, reviewed)
	}
}

func TestItemSaveUnknown(t *testing.T) {
	s := openTestStore(t)
	if err := s.ItemRepo().Save(context.Background(), testItemRecord("ghost")); err == nil {
		t.Fatal("expected error saving an unknown item")
	}
}

func TestItemAllQuarantinesInvalidRecords(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, testItemRecord("good")); err != nil {
		t.Fatalf("create: %v", err)
	}
	// Corrupt a row behind the repo's back: ease below the 1.3 floor.
	if _, err := s.DB().Exec(`INSERT INTO items
		(item_id, section, difficulty, ease_factor, interval_days, repetitions, lapses, due_at, mastery, created_at)
		VALUES ('bad', 'physics', 'intermediate', 0.5, 0, 0, 0, ?, 'learning', ?)`,
		testTime(), testTime()); err != nil {
		t.Fatalf("raw insert: %v", err)
	}

	records, corrupt, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(records) != 1 || records[0].ItemID != "good" {
		t.Fatalf("records = %+v, want only the valid row", records)
	}
	if len(corrupt) != 1 || corrupt[0].ID != "bad" {
		t.Fatalf("corrupt = %+v, want the bad row quarantined", corrupt)
	}
}

func TestResponseSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		seq, err := repo.AppendResponse(ctx, ResponseRecord{
			ItemID:    "itm-1",
			Section:   "physics",
			Correct:   i%2 == 0,
			Grade:     4,
			Timestamp: testTime().Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if seq <= last {
			t.Fatalf("sequence %d not greater than previous %d", seq, last)
		}
		last = seq
	}
}

func TestResponseQueryFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	sections := []string{"physics", "neuro", "physics", "breast", "physics"}
	for i, sec := range sections {
		_, err := repo.AppendResponse(ctx, ResponseRecord{
			ItemID:    "itm",
			Section:   sec,
			Correct:   true,
			Grade:     5,
			Timestamp: testTime().Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.Responses(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("responses: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("len(all) = %d, want 5", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Sequence <= all[i-1].Sequence {
			t.Fatal("responses not in ascending sequence order")
		}
	}

	physics, err := repo.Responses(ctx, QueryOpts{Section: "physics"})
	if err != nil {
		t.Fatalf("responses by section: %v", err)
	}
	if len(physics) != 3 {
		t.Errorf("len(physics) = %d, want 3", len(physics))
	}

	after, err := repo.Responses(ctx, QueryOpts{After: all[2].Sequence})
	if err != nil {
		t.Fatalf("responses after: %v", err)
	}
	if len(after) != 2 {
		t.Errorf("len(after) = %d, want 2", len(after))
	}

	limited, err := repo.Responses(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("responses limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("len(limited) = %d, want 2", len(limited))
	}
}

func TestAggregateUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.AggregateRepo()
	ctx := context.Background()

	rec := AggregateRecord{
		Section:      "neuro",
		Window:       []bool{true, false, true},
		Samples:      3,
		CorrectTotal: 2,
		Streak:       1,
		BestStreak:   1,
		UpdatedAt:    testTime(),
	}
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	rec.Window = append(rec.Window, true)
	rec.Samples = 4
	rec.CorrectTotal = 3
	rec.Streak = 2
	rec.BestStreak = 2
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("len(all) = %d, want 1 after upsert of same section", len(all))
	}
	got := all[0]
	if got.Samples != 4 || got.Streak != 2 || len(got.Window) != 4 {
		t.Errorf("aggregate = %+v, want the replaced row", got)
	}
}

func TestFormatVersionGate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radprep.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	// Stamp an incompatible major version, then reopen.
	if _, err := s.DB().Exec(`UPDATE store_meta SET format_version = 'v2.0.0' WHERE id = 1`); err != nil {
		t.Fatalf("stamp version: %v", err)
	}
	s.Close()

	_, err = Open(path)
	if !IsCorruptState(err) {
		t.Fatalf("reopen err = %v, want CorruptStateError for major mismatch", err)
	}
}

func TestFormatVersionInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radprep.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.DB().Exec(`UPDATE store_meta SET format_version = 'garbage' WHERE id = 1`); err != nil {
		t.Fatalf("stamp version: %v", err)
	}
	s.Close()

	_, err = Open(path)
	if !IsCorruptState(err) {
		t.Fatalf("reopen err = %v, want CorruptStateError for invalid version", err)
	}
}

func TestJournalModeWALOnFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radprep.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}
