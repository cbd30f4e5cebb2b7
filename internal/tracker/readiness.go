package tracker

// Band is a coarse readiness label derived from the weighted score.
type Band string

const (
	BandReady  Band = "board ready"
	BandNearly Band = "nearly board ready"
	BandFair   Band = "more preparation needed"
	BandLow    Band = "needs significant preparation"
)

// bandFor maps a readiness score to its label.
func bandFor(score float64) Band {
	switch {
	case score >= 0.85:
		return BandReady
	case score >= 0.75:
		return BandNearly
	case score >= 0.65:
		return BandFair
	default:
		return BandLow
	}
}

// OverallReadiness is the weighted sum over sections of accuracy times
// exam weight, clamped to [0,1]. Sections with no responses count as 0
// accuracy, which keeps the estimate conservative early on.
func (t *Tracker) OverallReadiness() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	score := 0.0
	for _, sec := range t.table.Sections() {
		if w, ok := t.windows[sec.ID]; ok {
			score += w.accuracy() * sec.Weight
		}
	}
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// ReadinessReport is the full readiness picture: the weighted score,
// its band, and the per-section breakdown.
type ReadinessReport struct {
	Score    float64
	Band     Band
	Sections []SectionStats
}

// Report assembles a ReadinessReport from the current aggregates.
func (t *Tracker) Report() ReadinessReport {
	score := t.OverallReadiness()
	return ReadinessReport{
		Score:    score,
		Band:     bandFor(score),
		Sections: t.Stats(),
	}
}
