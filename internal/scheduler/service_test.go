package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/abhisek/radprep/internal/exam"
	"github.com/abhisek/radprep/internal/store"
)

// mockItemRepo is an in-memory ItemRepo for tests.
type mockItemRepo struct {
	mu      sync.Mutex
	records map[string]store.ItemRecord
	corrupt []*store.CorruptStateError

	createErr error
	saveErr   error
}

func newMockItemRepo() *mockItemRepo {
	return &mockItemRepo{records: make(map[string]store.ItemRecord)}
}

func (m *mockItemRepo) Create(_ context.Context, rec store.ItemRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if _, exists := m.records[rec.ItemID]; exists {
		return store.ErrDuplicateItem
	}
	m.records[rec.ItemID] = rec
	return nil
}

func (m *mockItemRepo) Save(_ context.Context, rec store.ItemRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records[rec.ItemID] = rec
	return nil
}

func (m *mockItemRepo) All(_ context.Context) ([]store.ItemRecord, []*store.CorruptStateError, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]store.ItemRecord, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	return out, m.corrupt, nil
}

func newTestService(t *testing.T, repo store.ItemRepo) *Service {
	t.Helper()
	svc, err := NewService(context.Background(), exam.CoreTable(), DefaultConfig(), repo)
	if err != nil {
		t.Fatal(err)
	}
	return svc
}

func TestService_RegisterAndState(t *testing.T) {
	repo := newMockItemRepo()
	svc := newTestService(t, repo)

	it, err := svc.Register(context.Background(), "itm-1", exam.SectionNeuro, exam.DifficultyHard, testNow())
	if err != nil {
		t.Fatal(err)
	}
	if it.Mastery != MasteryLearning || it.EaseFactor != DefaultEaseFactor {
		t.Errorf("fresh item = %+v, want learning at default ease", it)
	}
	if !it.DueAt.Equal(testNow()) {
		t.Errorf("DueAt = %v, want due immediately", it.DueAt)
	}

	got, err := svc.ItemState("itm-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Section != exam.SectionNeuro {
		t.Errorf("Section = %q, want neuro", got.Section)
	}
	if _, persisted := repo.records["itm-1"]; !persisted {
		t.Error("Register did not persist the record")
	}
}

func TestService_RegisterDuplicate(t *testing.T) {
	svc := newTestService(t, newMockItemRepo())

	if _, err := svc.Register(context.Background(), "itm-1", exam.SectionMSK, exam.DifficultyEasy, testNow()); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Register(context.Background(), "itm-1", exam.SectionMSK, exam.DifficultyEasy, testNow())
	if !errors.Is(err, store.ErrDuplicateItem) {
		t.Fatalf("duplicate register err = %v, want ErrDuplicateItem", err)
	}
}

func TestService_RegisterUnknownSection(t *testing.T) {
	svc := newTestService(t, newMockItemRepo())

	_, err := svc.Register(context.Background(), "itm-1", "dermatology", exam.DifficultyEasy, testNow())
	if !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("err = %v, want ErrUnknownSection", err)
	}
}

func TestService_RegisterBadDifficulty(t *testing.T) {
	svc := newTestService(t, newMockItemRepo())

	if _, err := svc.Register(context.Background(), "itm-1", exam.SectionMSK, "impossible", testNow()); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
}

func TestService_RecordResponseUnknownItem(t *testing.T) {
	svc := newTestService(t, newMockItemRepo())

	_, err := svc.RecordResponse(context.Background(), "ghost", GradePerfect, testNow())
	if !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("err = %v, want ErrUnknownItem", err)
	}
}

func TestService_RecordResponsePersists(t *testing.T) {
	repo := newMockItemRepo()
	svc := newTestService(t, repo)

	if _, err := svc.Register(context.Background(), "itm-1", exam.SectionBreast, exam.DifficultyIntermediate, testNow()); err != nil {
		t.Fatal(err)
	}
	got, err := svc.RecordResponse(context.Background(), "itm-1", GradePerfect, testNow())
	if err != nil {
		t.Fatal(err)
	}
	if got.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", got.Repetitions)
	}

	rec := repo.records["itm-1"]
	if rec.Repetitions != 1 {
		t.Errorf("persisted Repetitions = %d, want 1", rec.Repetitions)
	}
}

func TestService_RecordResponseSaveFailureKeepsState(t *testing.T) {
	repo := newMockItemRepo()
	svc := newTestService(t, repo)

	if _, err := svc.Register(context.Background(), "itm-1", exam.SectionBreast, exam.DifficultyIntermediate, testNow()); err != nil {
		t.Fatal(err)
	}
	repo.saveErr = errors.New("disk full")

	if _, err := svc.RecordResponse(context.Background(), "itm-1", GradePerfect, testNow()); err == nil {
		t.Fatal("expected save error to surface")
	}
	got, err := svc.ItemState("itm-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want in-memory state unchanged after failed save", got.Repetitions)
	}
}

func TestService_QuarantinedRecordOnLoad(t *testing.T) {
	repo := newMockItemRepo()
	repo.records["bad"] = store.ItemRecord{
		ItemID:     "bad",
		Section:    "astrology",
		Difficulty: "easy",
		EaseFactor: 2.5,
		Mastery:    "learning",
		DueAt:      testNow(),
		CreatedAt:  testNow(),
	}
	repo.records["good"] = store.ItemRecord{
		ItemID:     "good",
		Section:    string(exam.SectionPhysics),
		Difficulty: "easy",
		EaseFactor: 2.5,
		Mastery:    "learning",
		DueAt:      testNow(),
		CreatedAt:  testNow(),
	}

	svc := newTestService(t, repo)

	if items := svc.Items(); len(items) != 1 || items[0].ID != "good" {
		t.Fatalf("Items() = %v, want only the valid record", items)
	}
	corrupt := svc.CorruptItems()
	if len(corrupt) != 1 || corrupt[0].ID != "bad" {
		t.Fatalf("CorruptItems() = %v, want the bad record", corrupt)
	}

	_, err := svc.RecordResponse(context.Background(), "bad", GradePerfect, testNow())
	if !store.IsCorruptState(err) {
		t.Fatalf("RecordResponse(quarantined) err = %v, want CorruptStateError", err)
	}
	_, err = svc.Register(context.Background(), "bad", exam.SectionPhysics, exam.DifficultyEasy, testNow())
	if !errors.Is(err, store.ErrDuplicateItem) {
		t.Fatalf("Register(quarantined id) err = %v, want ErrDuplicateItem", err)
	}
}

func TestService_ConcurrentResponsesSameItem(t *testing.T) {
	// 20 concurrent lapses against one item must each be counted: the
	// per-item lock serializes read-modify-write cycles.
	repo := newMockItemRepo()
	svc := newTestService(t, repo)

	if _, err := svc.Register(context.Background(), "itm-1", exam.SectionNuclear, exam.DifficultyHard, testNow()); err != nil {
		t.Fatal(err)
	}

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.RecordResponse(context.Background(), "itm-1", GradeBlackout, testNow()); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	got, err := svc.ItemState("itm-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Lapses != n {
		t.Errorf("Lapses = %d, want %d", got.Lapses, n)
	}
}

func TestService_ItemsSortedByID(t *testing.T) {
	svc := newTestService(t, newMockItemRepo())

	for _, id := range []string{"c", "a", "b"} {
		if _, err := svc.Register(context.Background(), id, exam.SectionPediatric, exam.DifficultyEasy, testNow()); err != nil {
			t.Fatal(err)
		}
	}
	items := svc.Items()
	for i, want := range []string{"a", "b", "c"} {
		if items[i].ID != want {
			t.Fatalf("Items()[%d] = %q, want %q", i, items[i].ID, want)
		}
	}
}
