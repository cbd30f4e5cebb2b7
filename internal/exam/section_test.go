package exam

import (
	"math"
	"strings"
	"testing"
)

func TestCoreTable_WeightsSumToOne(t *testing.T) {
	table := CoreTable()
	sum := 0.0
	for _, s := range table.Sections() {
		sum += s.Weight
	}
	if math.Abs(sum-1.0) > WeightTolerance {
		t.Errorf("core weights sum to %v, want 1.0", sum)
	}
	if table.Len() != 8 {
		t.Errorf("Len() = %d, want 8", table.Len())
	}
}

func TestCoreTable_OrderedByWeight(t *testing.T) {
	secs := CoreTable().Sections()
	if secs[0].ID != SectionCardiothoracic {
		t.Errorf("heaviest section = %q, want cardiothoracic", secs[0].ID)
	}
	for i := 1; i < len(secs); i++ {
		if secs[i].Weight > secs[i-1].Weight {
			t.Fatalf("sections not in descending weight order at index %d", i)
		}
	}
	// Equal weights break ties by id.
	if secs[1].ID != SectionAbdominal || secs[2].ID != SectionNeuro || secs[3].ID != SectionPhysics {
		t.Errorf("0.15 tie order = %q %q %q, want abdominal neuro physics",
			secs[1].ID, secs[2].ID, secs[3].ID)
	}
}

func TestCoreTable_MaxWeight(t *testing.T) {
	if got := CoreTable().MaxWeight(); got != 0.20 {
		t.Errorf("MaxWeight() = %v, want 0.20", got)
	}
}

func TestNewTable_RejectsBadWeightSum(t *testing.T) {
	_, err := NewTable([]Section{
		{ID: "a", Name: "A", Weight: 0.5},
		{ID: "b", Name: "B", Weight: 0.4},
	})
	if err == nil || !strings.Contains(err.Error(), "sum") {
		t.Fatalf("err = %v, want weight-sum error", err)
	}
}

func TestNewTable_RejectsDuplicateID(t *testing.T) {
	_, err := NewTable([]Section{
		{ID: "a", Name: "A", Weight: 0.5},
		{ID: "a", Name: "A again", Weight: 0.5},
	})
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("err = %v, want duplicate-id error", err)
	}
}

func TestNewTable_RejectsNonPositiveWeight(t *testing.T) {
	_, err := NewTable([]Section{
		{ID: "a", Name: "A", Weight: 0},
		{ID: "b", Name: "B", Weight: 1.0},
	})
	if err == nil {
		t.Fatal("expected error for zero weight")
	}
}

func TestNewTable_RejectsEmpty(t *testing.T) {
	if _, err := NewTable(nil); err == nil {
		t.Fatal("expected error for empty table")
	}
}

func TestTable_Get(t *testing.T) {
	table := CoreTable()
	s, ok := table.Get(SectionPhysics)
	if !ok || s.Weight != 0.15 {
		t.Errorf("Get(physics) = %+v %v, want weight 0.15", s, ok)
	}
	if _, ok := table.Get("dermatology"); ok {
		t.Error("Get(dermatology) = ok, want missing")
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, s := range []string{"easy", "intermediate", "hard"} {
		if _, err := ParseDifficulty(s); err != nil {
			t.Errorf("ParseDifficulty(%q) err = %v", s, err)
		}
	}
	if _, err := ParseDifficulty("brutal"); err == nil {
		t.Error("ParseDifficulty(brutal) = nil err, want error")
	}
}

func TestIntervalMultiplier(t *testing.T) {
	cases := []struct {
		d    Difficulty
		want float64
	}{
		{DifficultyEasy, 0.8},
		{DifficultyIntermediate, 1.0},
		{DifficultyHard, 1.3},
	}
	for _, tc := range cases {
		if got := tc.d.IntervalMultiplier(); got != tc.want {
			t.Errorf("%s multiplier = %v, want %v", tc.d, got, tc.want)
		}
	}
}
