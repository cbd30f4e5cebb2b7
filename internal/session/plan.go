package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/radprep/internal/exam"
)

// Mode selects the session composition strategy.
type Mode string

const (
	// ModePractice fills slots by priority across all sections.
	ModePractice Mode = "practice"
	// ModeWeakArea restricts the pool to sections below the weakness
	// threshold before ranking.
	ModeWeakArea Mode = "weak_area"
	// ModeSectionFocus restricts the pool to one named section.
	ModeSectionFocus Mode = "section_focus"
	// ModeExamSimulation fills per-section quotas proportional to the
	// exam weight table.
	ModeExamSimulation Mode = "exam_simulation"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModePractice, ModeWeakArea, ModeSectionFocus, ModeExamSimulation:
		return Mode(s), true
	}
	return "", false
}

// Request describes the session to compose.
type Request struct {
	Mode Mode

	// Count is the number of items requested. If zero and TimeBudget is
	// set, a count is derived from the budget.
	Count int

	// TimeBudget optionally bounds the session by study time instead of
	// item count.
	TimeBudget time.Duration

	// Section names the target section for ModeSectionFocus.
	Section exam.SectionID

	// Seed drives the RNG used for random fallback fill. It is recorded
	// on the plan so any composition can be reproduced.
	Seed int64

	// WeakThreshold overrides the weak-area accuracy threshold
	// (0 means DefaultWeakThreshold).
	WeakThreshold float64

	// Now fixes the composition time. Zero means time.Now; tests and
	// replays pass an explicit instant for determinism.
	Now time.Time
}

// SectionFill reports how one section's exam-simulation quota was met.
type SectionFill struct {
	Section    exam.SectionID
	Quota      int
	Filled     int // by priority within the section
	RandomFill int // extra items this section contributed via random fallback
}

// Plan is an immutable composed session: an ordered sequence of item
// ids plus everything needed to reproduce it.
type Plan struct {
	ID             uuid.UUID
	Mode           Mode
	ItemIDs        []string
	RequestedCount int
	Shortfall      int  // requested slots that could not be filled
	Truncated      bool // composition stopped early at the caller's deadline
	Seed           int64
	GeneratedAt    time.Time
	Fills          []SectionFill // exam_simulation only
}
