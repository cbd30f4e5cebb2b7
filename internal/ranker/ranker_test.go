package ranker

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/radprep/internal/exam"
	"github.com/abhisek/radprep/internal/scheduler"
)

// stubAccuracy returns fixed accuracy per section, 0 for the rest.
type stubAccuracy map[exam.SectionID]float64

func (s stubAccuracy) SectionAccuracy(id exam.SectionID) float64 {
	return s[id]
}

func rankNow() time.Time {
	return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
}

func dueItem(id string, section exam.SectionID, interval, overdueDays int) scheduler.Item {
	return scheduler.Item{
		ID:           id,
		Section:      section,
		Difficulty:   exam.DifficultyIntermediate,
		IntervalDays: interval,
		DueAt:        rankNow().AddDate(0, 0, -overdueDays),
		Mastery:      scheduler.MasteryReviewing,
	}
}

func TestOverdueFactor_NotDue(t *testing.T) {
	it := dueItem("a", exam.SectionPhysics, 10, 0)
	it.DueAt = rankNow().Add(time.Hour)
	if got := OverdueFactor(it, rankNow()); got != 0 {
		t.Errorf("OverdueFactor = %v, want 0 for a future due date", got)
	}
}

func TestOverdueFactor_Proportional(t *testing.T) {
	// 5 days overdue on a 10-day interval: factor 0.5.
	it := dueItem("a", exam.SectionPhysics, 10, 5)
	if got := OverdueFactor(it, rankNow()); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("OverdueFactor = %v, want 0.5", got)
	}
}

func TestOverdueFactor_ClampedAtTwo(t *testing.T) {
	// 50 days overdue on a 10-day interval clamps at 2.
	it := dueItem("a", exam.SectionPhysics, 10, 50)
	if got := OverdueFactor(it, rankNow()); got != 2 {
		t.Errorf("OverdueFactor = %v, want clamp at 2", got)
	}
}

func TestOverdueFactor_FreshItemIsMaximal(t *testing.T) {
	// Fresh registrations have interval 0 and are due immediately.
	it := dueItem("a", exam.SectionPhysics, 0, 0)
	if got := OverdueFactor(it, rankNow()); got != 2 {
		t.Errorf("OverdueFactor = %v, want 2 for a due zero-interval item", got)
	}
}

func TestPriority_Blend(t *testing.T) {
	// Overdue factor 1.0, accuracy 0.4 -> weakness 0.6, cardiothoracic
	// weight 0.20 over max 0.20 -> exam factor 1.0.
	// 1.0*0.5 + 0.6*0.3 + 1.0*0.2 = 0.88.
	r := New(exam.CoreTable(), stubAccuracy{exam.SectionCardiothoracic: 0.4}, DefaultWeights())
	it := dueItem("a", exam.SectionCardiothoracic, 10, 10)

	if got := r.Priority(it, rankNow()); math.Abs(got-0.88) > 1e-9 {
		t.Errorf("Priority = %v, want 0.88", got)
	}
}

func TestPriority_WeakSectionOutranksStrong(t *testing.T) {
	acc := stubAccuracy{
		exam.SectionPhysics: 0.3,
		exam.SectionNeuro:   0.9,
	}
	r := New(exam.CoreTable(), acc, DefaultWeights())
	weak := dueItem("weak", exam.SectionPhysics, 10, 5)
	strong := dueItem("strong", exam.SectionNeuro, 10, 5)

	if r.Priority(weak, rankNow()) <= r.Priority(strong, rankNow()) {
		t.Error("equal overdue: weak section should outrank strong section")
	}
}

func TestPriority_HeavySectionOutranksLight(t *testing.T) {
	// Same accuracy and overdue state; cardiothoracic carries 0.20
	// weight against pediatric's 0.07.
	r := New(exam.CoreTable(), stubAccuracy{}, DefaultWeights())
	heavy := dueItem("heavy", exam.SectionCardiothoracic, 10, 5)
	light := dueItem("light", exam.SectionPediatric, 10, 5)

	if r.Priority(heavy, rankNow()) <= r.Priority(light, rankNow()) {
		t.Error("heavier exam section should outrank lighter one")
	}
}

func TestRank_DescendingWithIDTiebreak(t *testing.T) {
	r := New(exam.CoreTable(), stubAccuracy{}, DefaultWeights())
	items := []scheduler.Item{
		dueItem("b", exam.SectionPhysics, 10, 5),
		dueItem("a", exam.SectionPhysics, 10, 5),
		dueItem("c", exam.SectionPhysics, 10, 20),
	}

	got := r.Rank(items, rankNow())
	wantOrder := []string{"c", "a", "b"}
	for i, want := range wantOrder {
		if got[i].Item.ID != want {
			t.Fatalf("Rank[%d] = %q, want %q", i, got[i].Item.ID, want)
		}
	}
	if got[0].Priority <= got[1].Priority {
		t.Error("more overdue item should score strictly higher")
	}
}

func TestRank_Deterministic(t *testing.T) {
	r := New(exam.CoreTable(), stubAccuracy{}, DefaultWeights())
	items := []scheduler.Item{
		dueItem("x", exam.SectionMSK, 5, 2),
		dueItem("y", exam.SectionBreast, 5, 2),
		dueItem("z", exam.SectionMSK, 5, 2),
	}

	first := r.Rank(items, rankNow())
	second := r.Rank(items, rankNow())
	for i := range first {
		if first[i].Item.ID != second[i].Item.ID {
			t.Fatalf("rank order differs between runs at index %d", i)
		}
	}
}
