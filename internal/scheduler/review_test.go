package scheduler

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/abhisek/radprep/internal/exam"
)

func testNow() time.Time {
	return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
}

func newTestItem() Item {
	return NewItem("itm-1", exam.SectionPhysics, exam.DifficultyIntermediate, testNow())
}

func TestReview_InvalidGrade(t *testing.T) {
	_, err := Review(newTestItem(), Grade(6), testNow(), DefaultConfig())
	if !errors.Is(err, ErrInvalidGrade) {
		t.Fatalf("Review(grade 6) err = %v, want ErrInvalidGrade", err)
	}
	_, err = Review(newTestItem(), Grade(-1), testNow(), DefaultConfig())
	if !errors.Is(err, ErrInvalidGrade) {
		t.Fatalf("Review(grade -1) err = %v, want ErrInvalidGrade", err)
	}
}

func TestReview_LearningFirstSuccess(t *testing.T) {
	it, err := Review(newTestItem(), GradePerfect, testNow(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if it.Mastery != MasteryLearning {
		t.Errorf("Mastery = %q, want learning before graduation", it.Mastery)
	}
	if it.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", it.IntervalDays)
	}
	if it.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", it.Repetitions)
	}
	if it.EaseFactor != DefaultEaseFactor {
		t.Errorf("EaseFactor = %v, want unchanged in learning", it.EaseFactor)
	}
}

func TestReview_GraduatesAfterTwoSuccesses(t *testing.T) {
	cfg := DefaultConfig()
	it := newTestItem()
	var err error
	for _, g := range []Grade{GradePerfect, GradePerfect} {
		if it, err = Review(it, g, testNow(), cfg); err != nil {
			t.Fatal(err)
		}
	}
	if it.Mastery != MasteryReviewing {
		t.Errorf("Mastery = %q, want reviewing after graduation", it.Mastery)
	}
	if it.IntervalDays != cfg.GraduatingIntervalDays {
		t.Errorf("IntervalDays = %d, want %d", it.IntervalDays, cfg.GraduatingIntervalDays)
	}
}

func TestReview_ReviewingGrowsInterval(t *testing.T) {
	// [5, 5, 4]: graduate to 6 days, then grade 4 keeps ease at 2.5
	// and grows the interval to round(6 * 2.5) = 15.
	it := newTestItem()
	var err error
	for _, g := range []Grade{GradePerfect, GradePerfect, GradeHesitation} {
		if it, err = Review(it, g, testNow(), DefaultConfig()); err != nil {
			t.Fatal(err)
		}
	}
	if it.IntervalDays != 15 {
		t.Errorf("IntervalDays = %d, want 15", it.IntervalDays)
	}
	if math.Abs(it.EaseFactor-2.5) > 1e-9 {
		t.Errorf("EaseFactor = %v, want 2.5", it.EaseFactor)
	}
	wantDue := testNow().AddDate(0, 0, 15)
	if !it.DueAt.Equal(wantDue) {
		t.Errorf("DueAt = %v, want %v", it.DueAt, wantDue)
	}
}

func TestReview_EaseUpdatePerGrade(t *testing.T) {
	// Grade 5 grows ease by 0.1, grade 4 leaves it, grade 3 shrinks it
	// by 0.14.
	cases := []struct {
		grade Grade
		want  float64
	}{
		{GradePerfect, 2.6},
		{GradeHesitation, 2.5},
		{GradeHard, 2.36},
	}
	for _, tc := range cases {
		it := newTestItem()
		it.Mastery = MasteryReviewing
		it.IntervalDays = 6

		got, err := Review(it, tc.grade, testNow(), DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got.EaseFactor-tc.want) > 1e-9 {
			t.Errorf("grade %d: EaseFactor = %v, want %v", tc.grade, got.EaseFactor, tc.want)
		}
	}
}

func TestReview_EaseNeverBelowFloor(t *testing.T) {
	cfg := DefaultConfig()
	it := newTestItem()
	it.Mastery = MasteryReviewing
	it.IntervalDays = 6
	it.EaseFactor = cfg.EaseFloor

	var err error
	for i := 0; i < 10; i++ {
		if it, err = Review(it, GradeHard, testNow(), cfg); err != nil {
			t.Fatal(err)
		}
		if it.EaseFactor < cfg.EaseFloor {
			t.Fatalf("EaseFactor = %v, fell below floor %v", it.EaseFactor, cfg.EaseFloor)
		}
	}
}

func TestReview_LapseFromLearning(t *testing.T) {
	it := newTestItem()
	it.Repetitions = 1

	got, err := Review(it, GradeBlackout, testNow(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got.Mastery != MasteryLearning {
		t.Errorf("Mastery = %q, want learning", got.Mastery)
	}
	if got.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", got.IntervalDays)
	}
	if got.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want reset to 0", got.Repetitions)
	}
	if got.Lapses != 1 {
		t.Errorf("Lapses = %d, want 1", got.Lapses)
	}
	if math.Abs(got.EaseFactor-2.3) > 1e-9 {
		t.Errorf("EaseFactor = %v, want 2.3 after penalty", got.EaseFactor)
	}
}

func TestReview_LapseFromReviewing(t *testing.T) {
	it := newTestItem()
	it.Mastery = MasteryReviewing
	it.IntervalDays = 30
	it.Repetitions = 4

	got, err := Review(it, GradeNearMiss, testNow(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got.Mastery != MasteryLearning {
		t.Errorf("Mastery = %q, want demotion to learning", got.Mastery)
	}
	if got.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", got.IntervalDays)
	}
}

func TestReview_LapseFromMastered(t *testing.T) {
	// A mastered item that lapses falls back to reviewing at the
	// graduating interval, not to the one-day relearning step.
	cfg := DefaultConfig()
	it := newTestItem()
	it.Mastery = MasteryMastered
	it.IntervalDays = 120
	it.Repetitions = 8
	it.EaseFactor = 2.6

	got, err := Review(it, GradeWrong, testNow(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got.Mastery != MasteryReviewing {
		t.Errorf("Mastery = %q, want reviewing", got.Mastery)
	}
	if got.IntervalDays != cfg.GraduatingIntervalDays {
		t.Errorf("IntervalDays = %d, want %d", got.IntervalDays, cfg.GraduatingIntervalDays)
	}
	if got.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want reset to 0", got.Repetitions)
	}
	if got.Lapses != 1 {
		t.Errorf("Lapses = %d, want 1", got.Lapses)
	}
	if math.Abs(got.EaseFactor-2.4) > 1e-9 {
		t.Errorf("EaseFactor = %v, want 2.4", got.EaseFactor)
	}
	wantDue := testNow().AddDate(0, 0, cfg.GraduatingIntervalDays)
	if !got.DueAt.Equal(wantDue) {
		t.Errorf("DueAt = %v, want %v", got.DueAt, wantDue)
	}
}

func TestReview_PromotionToMastered(t *testing.T) {
	// Interval 40 * ease 2.5 = 100 > 90 days, reps 6 > 5 -> mastered.
	it := newTestItem()
	it.Mastery = MasteryReviewing
	it.IntervalDays = 40
	it.Repetitions = 5

	got, err := Review(it, GradeHesitation, testNow(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got.Mastery != MasteryMastered {
		t.Errorf("Mastery = %q, want mastered", got.Mastery)
	}
	if got.IntervalDays != 100 {
		t.Errorf("IntervalDays = %d, want 100", got.IntervalDays)
	}
}

func TestReview_NoPromotionWithoutReps(t *testing.T) {
	// Interval clears 90 days but only 3 repetitions: stays reviewing.
	it := newTestItem()
	it.Mastery = MasteryReviewing
	it.IntervalDays = 40
	it.Repetitions = 2

	got, err := Review(it, GradeHesitation, testNow(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got.Mastery != MasteryReviewing {
		t.Errorf("Mastery = %q, want reviewing", got.Mastery)
	}
}

func TestReview_IntervalCappedAtMax(t *testing.T) {
	cfg := DefaultConfig()
	it := newTestItem()
	it.Mastery = MasteryMastered
	it.IntervalDays = 300
	it.Repetitions = 10

	got, err := Review(it, GradePerfect, testNow(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got.IntervalDays != cfg.MaxIntervalDays {
		t.Errorf("IntervalDays = %d, want capped at %d", got.IntervalDays, cfg.MaxIntervalDays)
	}
}

func TestReview_DifficultyScalesInterval(t *testing.T) {
	// Base growth round(10 * 2.5) = 25; easy shrinks to 20, hard
	// stretches to 33.
	cases := []struct {
		difficulty exam.Difficulty
		want       int
	}{
		{exam.DifficultyEasy, 20},
		{exam.DifficultyIntermediate, 25},
		{exam.DifficultyHard, 33},
	}
	for _, tc := range cases {
		it := newTestItem()
		it.Difficulty = tc.difficulty
		it.Mastery = MasteryReviewing
		it.IntervalDays = 10

		got, err := Review(it, GradeHesitation, testNow(), DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		if got.IntervalDays != tc.want {
			t.Errorf("%s: IntervalDays = %d, want %d", tc.difficulty, got.IntervalDays, tc.want)
		}
	}
}

func TestReview_IntervalNonDecreasingOnSuccess(t *testing.T) {
	// Even at the ease floor with the easy multiplier shrinking growth,
	// consecutive successes never shorten the interval.
	it := newTestItem()
	it.Difficulty = exam.DifficultyEasy
	it.Mastery = MasteryReviewing
	it.IntervalDays = 1

	var err error
	prev := it.IntervalDays
	for i := 0; i < 20; i++ {
		if it, err = Review(it, GradeHard, testNow(), DefaultConfig()); err != nil {
			t.Fatal(err)
		}
		if it.IntervalDays < prev {
			t.Fatalf("interval shrank from %d to %d on a success", prev, it.IntervalDays)
		}
		prev = it.IntervalDays
	}
}

func TestReview_SetsLastReviewedAt(t *testing.T) {
	got, err := Review(newTestItem(), GradePerfect, testNow(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got.LastReviewedAt == nil || !got.LastReviewedAt.Equal(testNow()) {
		t.Errorf("LastReviewedAt = %v, want %v", got.LastReviewedAt, testNow())
	}
}

func TestReview_DoesNotMutateInput(t *testing.T) {
	it := newTestItem()
	before := it
	if _, err := Review(it, GradeBlackout, testNow(), DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	if it != before {
		t.Error("Review mutated its input item")
	}
}
