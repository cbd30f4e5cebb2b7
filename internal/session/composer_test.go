package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/radprep/internal/exam"
	"github.com/abhisek/radprep/internal/ranker"
	"github.com/abhisek/radprep/internal/scheduler"
)

// stubItems is a fixed ItemSource.
type stubItems []scheduler.Item

func (s stubItems) Items() []scheduler.Item {
	return append([]scheduler.Item(nil), s...)
}

// stubWeak is a fixed WeaknessSource.
type stubWeak []exam.SectionID

func (s stubWeak) WeakSections(_ float64) []exam.SectionID {
	return s
}

// stubAccuracy returns fixed accuracy per section, 0 for the rest.
type stubAccuracy map[exam.SectionID]float64

func (s stubAccuracy) SectionAccuracy(id exam.SectionID) float64 {
	return s[id]
}

func composeNow() time.Time {
	return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
}

func poolItem(id string, section exam.SectionID, overdueDays int) scheduler.Item {
	return scheduler.Item{
		ID:           id,
		Section:      section,
		Difficulty:   exam.DifficultyIntermediate,
		IntervalDays: 10,
		DueAt:        composeNow().AddDate(0, 0, -overdueDays),
		Mastery:      scheduler.MasteryReviewing,
	}
}

// fullPool builds n items per section, ids <section>-0 .. <section>-(n-1),
// each slightly more overdue than the last.
func fullPool(n int) stubItems {
	var pool stubItems
	for _, sec := range exam.CoreTable().Sections() {
		for i := 0; i < n; i++ {
			pool = append(pool, poolItem(fmt.Sprintf("%s-%d", sec.ID, i), sec.ID, i))
		}
	}
	return pool
}

func testComposer(items ItemSource, weak WeaknessSource, acc stubAccuracy) *Composer {
	table := exam.CoreTable()
	rk := ranker.New(table, acc, ranker.DefaultWeights())
	return NewComposer(table, items, rk, weak, DefaultConfig())
}

func TestCompose_PracticeTakesHighestPriority(t *testing.T) {
	pool := stubItems{
		poolItem("mild", exam.SectionPediatric, 1),
		poolItem("urgent", exam.SectionCardiothoracic, 20),
		poolItem("medium", exam.SectionNeuro, 5),
	}
	c := testComposer(pool, stubWeak{}, stubAccuracy{})

	plan, err := c.Compose(context.Background(), Request{Mode: ModePractice, Count: 2, Now: composeNow()})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.ItemIDs) != 2 {
		t.Fatalf("len(ItemIDs) = %d, want 2", len(plan.ItemIDs))
	}
	if plan.ItemIDs[0] != "urgent" {
		t.Errorf("first item = %q, want the most overdue heavy-section item", plan.ItemIDs[0])
	}
	if plan.Shortfall != 0 {
		t.Errorf("Shortfall = %d, want 0", plan.Shortfall)
	}
}

func TestCompose_CountFromTimeBudget(t *testing.T) {
	c := testComposer(fullPool(3), stubWeak{}, stubAccuracy{})

	// 15 minutes at 90 seconds per item is 10 items.
	plan, err := c.Compose(context.Background(), Request{
		Mode: ModePractice, TimeBudget: 15 * time.Minute, Now: composeNow(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if plan.RequestedCount != 10 {
		t.Errorf("RequestedCount = %d, want 10", plan.RequestedCount)
	}
}

func TestCompose_RejectsZeroCount(t *testing.T) {
	c := testComposer(fullPool(1), stubWeak{}, stubAccuracy{})
	if _, err := c.Compose(context.Background(), Request{Mode: ModePractice, Now: composeNow()}); err == nil {
		t.Fatal("expected error for zero count and no budget")
	}
}

func TestCompose_RejectsUnknownMode(t *testing.T) {
	c := testComposer(fullPool(1), stubWeak{}, stubAccuracy{})
	if _, err := c.Compose(context.Background(), Request{Mode: "cram", Count: 5, Now: composeNow()}); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestCompose_ShortfallReported(t *testing.T) {
	pool := stubItems{poolItem("only", exam.SectionMSK, 1)}
	c := testComposer(pool, stubWeak{}, stubAccuracy{})

	plan, err := c.Compose(context.Background(), Request{Mode: ModePractice, Count: 5, Now: composeNow()})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.ItemIDs) != 1 {
		t.Fatalf("len(ItemIDs) = %d, want 1", len(plan.ItemIDs))
	}
	if plan.Shortfall != 4 {
		t.Errorf("Shortfall = %d, want 4", plan.Shortfall)
	}
}

func TestCompose_WeakAreaFiltersSections(t *testing.T) {
	c := testComposer(fullPool(3), stubWeak{exam.SectionPhysics, exam.SectionBreast}, stubAccuracy{})

	plan, err := c.Compose(context.Background(), Request{Mode: ModeWeakArea, Count: 6, Now: composeNow()})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.ItemIDs) != 6 {
		t.Fatalf("len(ItemIDs) = %d, want 6", len(plan.ItemIDs))
	}
	for _, id := range plan.ItemIDs {
		if id[:len("physics")] != "physics" && id[:len("breast")] != "breast" {
			t.Errorf("item %q is outside the weak sections", id)
		}
	}
}

func TestCompose_SectionFocus(t *testing.T) {
	c := testComposer(fullPool(3), stubWeak{}, stubAccuracy{})

	plan, err := c.Compose(context.Background(), Request{
		Mode: ModeSectionFocus, Section: exam.SectionNuclear, Count: 2, Now: composeNow(),
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range plan.ItemIDs {
		if id[:len("nuclear")] != "nuclear" {
			t.Errorf("item %q is outside the focus section", id)
		}
	}
}

func TestCompose_SectionFocusUnknownSection(t *testing.T) {
	c := testComposer(fullPool(1), stubWeak{}, stubAccuracy{})
	_, err := c.Compose(context.Background(), Request{
		Mode: ModeSectionFocus, Section: "astrology", Count: 2, Now: composeNow(),
	})
	if err == nil {
		t.Fatal("expected error for unknown section")
	}
}

func TestCompose_ExamSimulationHonorsQuotas(t *testing.T) {
	c := testComposer(fullPool(45), stubWeak{}, stubAccuracy{})

	plan, err := c.Compose(context.Background(), Request{
		Mode: ModeExamSimulation, Count: 200, Seed: 7, Now: composeNow(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.ItemIDs) != 200 {
		t.Fatalf("len(ItemIDs) = %d, want 200", len(plan.ItemIDs))
	}
	if plan.Shortfall != 0 {
		t.Errorf("Shortfall = %d, want 0", plan.Shortfall)
	}

	wantQuota := map[exam.SectionID]int{
		exam.SectionCardiothoracic: 40,
		exam.SectionAbdominal:      30,
		exam.SectionNeuro:          30,
		exam.SectionPhysics:        30,
		exam.SectionMSK:            20,
		exam.SectionNuclear:        20,
		exam.SectionBreast:         16,
		exam.SectionPediatric:      14,
	}
	for _, fill := range plan.Fills {
		if fill.Quota != wantQuota[fill.Section] {
			t.Errorf("%s quota = %d, want %d", fill.Section, fill.Quota, wantQuota[fill.Section])
		}
		if fill.Filled != fill.Quota {
			t.Errorf("%s filled %d of %d with a deep pool", fill.Section, fill.Filled, fill.Quota)
		}
		if fill.RandomFill != 0 {
			t.Errorf("%s RandomFill = %d, want 0 with a deep pool", fill.Section, fill.RandomFill)
		}
	}
}

func TestCompose_ExamSimulationRandomFallback(t *testing.T) {
	// Pediatric has no items at all, so its 14-question quota must be
	// covered by the seeded random draw from the remaining pool.
	var pool stubItems
	for _, sec := range exam.CoreTable().Sections() {
		if sec.ID == exam.SectionPediatric {
			continue
		}
		for i := 0; i < 45; i++ {
			pool = append(pool, poolItem(fmt.Sprintf("%s-%d", sec.ID, i), sec.ID, i))
		}
	}
	c := testComposer(pool, stubWeak{}, stubAccuracy{})

	plan, err := c.Compose(context.Background(), Request{
		Mode: ModeExamSimulation, Count: 200, Seed: 11, Now: composeNow(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.ItemIDs) != 200 {
		t.Fatalf("len(ItemIDs) = %d, want 200 via fallback", len(plan.ItemIDs))
	}

	randomTotal := 0
	for _, fill := range plan.Fills {
		randomTotal += fill.RandomFill
		if fill.Section == exam.SectionPediatric && fill.Filled != 0 {
			t.Errorf("pediatric Filled = %d, want 0 with an empty section", fill.Filled)
		}
	}
	if randomTotal != 14 {
		t.Errorf("random fallback total = %d, want 14", randomTotal)
	}

	seen := make(map[string]bool)
	for _, id := range plan.ItemIDs {
		if seen[id] {
			t.Fatalf("item %q selected twice", id)
		}
		seen[id] = true
	}
}

func TestCompose_SameSeedSamePlan(t *testing.T) {
	pool := fullPool(20) // shallow enough to force random fallback at 200
	c := testComposer(pool, stubWeak{}, stubAccuracy{})

	req := Request{Mode: ModeExamSimulation, Count: 200, Seed: 42, Now: composeNow()}
	first, err := c.Compose(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Compose(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}

	if len(first.ItemIDs) != len(second.ItemIDs) {
		t.Fatalf("plan lengths differ: %d vs %d", len(first.ItemIDs), len(second.ItemIDs))
	}
	for i := range first.ItemIDs {
		if first.ItemIDs[i] != second.ItemIDs[i] {
			t.Fatalf("plans diverge at index %d: %q vs %q", i, first.ItemIDs[i], second.ItemIDs[i])
		}
	}
}

func TestCompose_DifferentSeedDifferentFallback(t *testing.T) {
	pool := fullPool(20)
	c := testComposer(pool, stubWeak{}, stubAccuracy{})

	first, err := c.Compose(context.Background(), Request{
		Mode: ModeExamSimulation, Count: 200, Seed: 1, Now: composeNow(),
	})
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Compose(context.Background(), Request{
		Mode: ModeExamSimulation, Count: 200, Seed: 2, Now: composeNow(),
	})
	if err != nil {
		t.Fatal(err)
	}

	same := len(first.ItemIDs) == len(second.ItemIDs)
	if same {
		for i := range first.ItemIDs {
			if first.ItemIDs[i] != second.ItemIDs[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical fallback ordering")
	}
}

func TestCompose_CanceledContextTruncates(t *testing.T) {
	c := testComposer(fullPool(10), stubWeak{}, stubAccuracy{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plan, err := c.Compose(ctx, Request{Mode: ModePractice, Count: 20, Now: composeNow()})
	if err != nil {
		t.Fatal(err)
	}
	if !plan.Truncated {
		t.Error("Truncated = false, want true for a canceled context")
	}
	if len(plan.ItemIDs) != 0 {
		t.Errorf("len(ItemIDs) = %d, want 0 when canceled before filling", len(plan.ItemIDs))
	}
	if plan.Shortfall != 20 {
		t.Errorf("Shortfall = %d, want 20", plan.Shortfall)
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"practice", "weak_area", "section_focus", "exam_simulation"} {
		if _, ok := ParseMode(s); !ok {
			t.Errorf("ParseMode(%q) = !ok", s)
		}
	}
	if _, ok := ParseMode("cram"); ok {
		t.Error("ParseMode(cram) = ok, want rejection")
	}
}
