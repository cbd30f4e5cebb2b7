package session

import (
	"math"

	"github.com/abhisek/radprep/internal/exam"
)

// SectionQuota is one section's share of an exam simulation.
type SectionQuota struct {
	Section exam.SectionID
	Quota   int
}

// Quotas splits count across sections proportionally to their exam
// weights. Each quota starts as round(count * weight); any residual
// from rounding is absorbed by the sections with the largest
// fractional remainders, so the quotas always sum exactly to count.
// Section order follows the exam table for determinism.
func Quotas(table *exam.Table, count int) []SectionQuota {
	sections := table.Sections()
	quotas := make([]SectionQuota, len(sections))
	remainders := make([]float64, len(sections))

	sum := 0
	for i, sec := range sections {
		exact := float64(count) * sec.Weight
		q := int(math.Round(exact))
		quotas[i] = SectionQuota{Section: sec.ID, Quota: q}
		remainders[i] = exact - math.Floor(exact)
		sum += q
	}

	// Hand the residual, one slot at a time, to the section whose
	// rounding moved it furthest from its exact share.
	for sum != count {
		step := 1
		if sum > count {
			step = -1
		}
		best := -1
		for i := range quotas {
			if step < 0 && quotas[i].Quota == 0 {
				continue
			}
			if best == -1 {
				best = i
				continue
			}
			if step > 0 && remainders[i] > remainders[best] {
				best = i
			}
			if step < 0 && remainders[i] < remainders[best] {
				best = i
			}
		}
		quotas[best].Quota += step
		// Neutralize so repeated residual slots spread across sections.
		if step > 0 {
			remainders[best] -= 1
		} else {
			remainders[best] += 1
		}
		sum += step
	}

	return quotas
}
