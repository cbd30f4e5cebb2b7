package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/radprep/internal/exam"
	"github.com/abhisek/radprep/internal/scheduler"
)

func TestGrade_CorrectByConfidence(t *testing.T) {
	tests := []struct {
		name       string
		confidence Confidence
		want       scheduler.Grade
	}{
		{"high confidence", ConfidenceHigh, scheduler.GradePerfect},
		{"no confidence reported", ConfidenceUnknown, scheduler.GradeHesitation},
		{"low confidence", ConfidenceLow, scheduler.GradeHard},
	}

	p := DefaultPolicy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Response{ItemID: "itm", Correct: true, Confidence: tt.confidence}
			assert.Equal(t, tt.want, p.Grade(resp, exam.DifficultyIntermediate))
		})
	}
}

func TestGrade_IncorrectByLatency(t *testing.T) {
	// Intermediate expects 60s: 30s+ is a near miss, 6s+ is wrong,
	// under 6s is a blackout.
	tests := []struct {
		name      string
		latencyMs int
		want      scheduler.Grade
	}{
		{"long engagement", 45_000, scheduler.GradeNearMiss},
		{"at the near-miss bar", 30_000, scheduler.GradeNearMiss},
		{"just under the bar", 29_999, scheduler.GradeWrong},
		{"at the wrong bar", 6_000, scheduler.GradeWrong},
		{"just under the wrong bar", 5_999, scheduler.GradeBlackout},
		{"instant miss", 0, scheduler.GradeBlackout},
	}

	p := DefaultPolicy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Response{ItemID: "itm", Correct: false, LatencyMs: tt.latencyMs}
			assert.Equal(t, tt.want, p.Grade(resp, exam.DifficultyIntermediate))
		})
	}
}

func TestGrade_ThresholdsScaleWithDifficulty(t *testing.T) {
	// 40s of effort clears the easy near-miss bar (15s) but not the
	// hard one (45s).
	p := DefaultPolicy()
	resp := Response{ItemID: "itm", Correct: false, LatencyMs: 40_000}

	assert.Equal(t, scheduler.GradeNearMiss, p.Grade(resp, exam.DifficultyEasy))
	assert.Equal(t, scheduler.GradeWrong, p.Grade(resp, exam.DifficultyHard))
}

func TestGrade_UnknownDifficultyFallsBack(t *testing.T) {
	p := DefaultPolicy()
	resp := Response{ItemID: "itm", Correct: false, LatencyMs: 30_000}

	// Unknown difficulty grades on the intermediate thresholds.
	assert.Equal(t, scheduler.GradeNearMiss, p.Grade(resp, exam.Difficulty("weird")))
}

func TestGrade_ConfidenceIgnoredWhenIncorrect(t *testing.T) {
	p := DefaultPolicy()
	resp := Response{ItemID: "itm", Correct: false, LatencyMs: 1_000, Confidence: ConfidenceHigh}

	assert.Equal(t, scheduler.GradeBlackout, p.Grade(resp, exam.DifficultyIntermediate))
}
