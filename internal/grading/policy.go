// Package grading maps raw response events from the delivery layer
// (correct/incorrect, latency, optional confidence) onto the 0-5 grade
// ordinal the scheduler consumes. The mapping is policy, not physics,
// so it sits behind an interface.
package grading

import (
	"github.com/abhisek/radprep/internal/exam"
	"github.com/abhisek/radprep/internal/scheduler"
)

// Confidence is the learner's optional self-reported confidence.
type Confidence string

const (
	ConfidenceUnknown Confidence = ""
	ConfidenceLow     Confidence = "low"
	ConfidenceHigh    Confidence = "high"
)

// Response is one raw response event from the delivery layer.
type Response struct {
	ItemID     string
	Correct    bool
	LatencyMs  int
	Confidence Confidence
}

// Policy converts a raw response into a grade, given the item's static
// difficulty.
type Policy interface {
	Grade(resp Response, difficulty exam.Difficulty) scheduler.Grade
}

// LatencyPolicy is the default grading policy. Correct answers grade by
// confidence; incorrect answers grade by how long the learner engaged
// relative to the expected answer time for the difficulty. A miss
// after real effort is a near miss, an instant miss is a blackout.
type LatencyPolicy struct {
	// ExpectedMs is the expected answer time per difficulty.
	ExpectedMs map[exam.Difficulty]int
}

// DefaultPolicy returns a LatencyPolicy with standard expected times.
func DefaultPolicy() *LatencyPolicy {
	return &LatencyPolicy{
		ExpectedMs: map[exam.Difficulty]int{
			exam.DifficultyEasy:         30_000,
			exam.DifficultyIntermediate: 60_000,
			exam.DifficultyHard:         90_000,
		},
	}
}

func (p *LatencyPolicy) Grade(resp Response, difficulty exam.Difficulty) scheduler.Grade {
	if resp.Correct {
		switch resp.Confidence {
		case ConfidenceHigh:
			return scheduler.GradePerfect
		case ConfidenceLow:
			return scheduler.GradeHard
		default:
			return scheduler.GradeHesitation
		}
	}

	expected := p.ExpectedMs[difficulty]
	if expected <= 0 {
		expected = p.ExpectedMs[exam.DifficultyIntermediate]
	}
	switch {
	case expected > 0 && resp.LatencyMs >= expected/2:
		return scheduler.GradeNearMiss
	case expected > 0 && resp.LatencyMs >= expected/10:
		return scheduler.GradeWrong
	default:
		return scheduler.GradeBlackout
	}
}
