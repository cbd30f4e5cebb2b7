package session

import (
	"math"
	"testing"

	"github.com/abhisek/radprep/internal/exam"
)

func TestQuotas_FullExamCount(t *testing.T) {
	// 200 questions over [0.20 0.15 0.15 0.15 0.10 0.10 0.08 0.07]
	// lands exactly with no residual.
	want := map[exam.SectionID]int{
		exam.SectionCardiothoracic: 40,
		exam.SectionAbdominal:      30,
		exam.SectionNeuro:          30,
		exam.SectionPhysics:        30,
		exam.SectionMSK:            20,
		exam.SectionNuclear:        20,
		exam.SectionBreast:         16,
		exam.SectionPediatric:      14,
	}
	for _, sq := range Quotas(exam.CoreTable(), 200) {
		if sq.Quota != want[sq.Section] {
			t.Errorf("%s quota = %d, want %d", sq.Section, sq.Quota, want[sq.Section])
		}
	}
}

func TestQuotas_AlwaysSumToCount(t *testing.T) {
	table := exam.CoreTable()
	for count := 1; count <= 250; count++ {
		sum := 0
		for _, sq := range Quotas(table, count) {
			if sq.Quota < 0 {
				t.Fatalf("count %d: negative quota for %s", count, sq.Section)
			}
			sum += sq.Quota
		}
		if sum != count {
			t.Fatalf("count %d: quotas sum to %d", count, sum)
		}
	}
}

func TestQuotas_StayNearExactShare(t *testing.T) {
	table := exam.CoreTable()
	for _, count := range []int{7, 25, 100, 199} {
		for _, sq := range Quotas(table, count) {
			sec, _ := table.Get(sq.Section)
			exact := float64(count) * sec.Weight
			if math.Abs(float64(sq.Quota)-exact) > 1.0+1e-9 {
				t.Errorf("count %d: %s quota %d strays from exact share %.2f",
					count, sq.Section, sq.Quota, exact)
			}
		}
	}
}

func TestQuotas_SingleSlotGoesToHeaviest(t *testing.T) {
	quotas := Quotas(exam.CoreTable(), 1)
	for _, sq := range quotas {
		want := 0
		if sq.Section == exam.SectionCardiothoracic {
			want = 1
		}
		if sq.Quota != want {
			t.Errorf("%s quota = %d, want %d", sq.Section, sq.Quota, want)
		}
	}
}

func TestQuotas_Deterministic(t *testing.T) {
	table := exam.CoreTable()
	first := Quotas(table, 37)
	second := Quotas(table, 37)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("quota order differs at index %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}
