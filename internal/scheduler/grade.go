package scheduler

// Grade is the quality ordinal for a single response, on the SM-2
// scale: 0-2 is a lapse, 3-5 is a graded success.
type Grade int

const (
	GradeBlackout   Grade = 0 // no recall at all
	GradeWrong      Grade = 1 // incorrect, answer familiar once seen
	GradeNearMiss   Grade = 2 // incorrect, but close
	GradeHard       Grade = 3 // correct with significant effort
	GradeHesitation Grade = 4 // correct after hesitation
	GradePerfect    Grade = 5 // correct without hesitation
)

// Valid reports whether g is inside the defined ordinal range.
func (g Grade) Valid() bool {
	return g >= GradeBlackout && g <= GradePerfect
}

// IsLapse reports whether g is below the success threshold.
func (g Grade) IsLapse() bool {
	return g <= GradeNearMiss
}
