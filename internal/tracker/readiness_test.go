package tracker

import (
	"math"
	"testing"

	"github.com/abhisek/radprep/internal/exam"
)

func TestOverallReadiness_NoResponses(t *testing.T) {
	tr := newTestTracker(t, DefaultConfig())
	if got := tr.OverallReadiness(); got != 0 {
		t.Errorf("readiness with no responses = %v, want 0", got)
	}
	if got := tr.Report().Band; got != BandLow {
		t.Errorf("band = %q, want %q", got, BandLow)
	}
}

func TestOverallReadiness_WeightedSum(t *testing.T) {
	// Perfect cardiothoracic (0.20) plus 50% physics (0.15):
	// 1.0*0.20 + 0.5*0.15 = 0.275.
	tr := newTestTracker(t, DefaultConfig())
	record(t, tr, exam.SectionCardiothoracic, true, true)
	record(t, tr, exam.SectionPhysics, true, false)

	if got := tr.OverallReadiness(); math.Abs(got-0.275) > 1e-9 {
		t.Errorf("readiness = %v, want 0.275", got)
	}
}

func TestOverallReadiness_PerfectEverywhere(t *testing.T) {
	tr := newTestTracker(t, DefaultConfig())
	for _, sec := range exam.CoreTable().Sections() {
		record(t, tr, sec.ID, true, true, true)
	}
	if got := tr.OverallReadiness(); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("readiness = %v, want 1.0", got)
	}
	if got := tr.Report().Band; got != BandReady {
		t.Errorf("band = %q, want %q", got, BandReady)
	}
}

func TestBandFor_Thresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  Band
	}{
		{0.90, BandReady},
		{0.85, BandReady},
		{0.84, BandNearly},
		{0.75, BandNearly},
		{0.74, BandFair},
		{0.65, BandFair},
		{0.64, BandLow},
		{0.0, BandLow},
	}
	for _, tc := range cases {
		if got := bandFor(tc.score); got != tc.want {
			t.Errorf("bandFor(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestReport_IncludesSections(t *testing.T) {
	tr := newTestTracker(t, DefaultConfig())
	record(t, tr, exam.SectionNeuro, true)

	rep := tr.Report()
	if len(rep.Sections) != exam.CoreTable().Len() {
		t.Fatalf("report sections = %d, want %d", len(rep.Sections), exam.CoreTable().Len())
	}
	if rep.Band != bandFor(rep.Score) {
		t.Errorf("band %q does not match score %v", rep.Band, rep.Score)
	}
}
