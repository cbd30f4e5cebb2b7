package exam

import (
	"fmt"
	"math"
	"sort"
)

// SectionID identifies one topical section of the board exam.
type SectionID string

// The eight CORE exam sections.
const (
	SectionCardiothoracic SectionID = "cardiothoracic"
	SectionPhysics        SectionID = "physics"
	SectionNeuro          SectionID = "neuro"
	SectionAbdominal      SectionID = "abdominal"
	SectionMSK            SectionID = "msk"
	SectionNuclear        SectionID = "nuclear"
	SectionBreast         SectionID = "breast"
	SectionPediatric      SectionID = "pediatric"
)

// Section is one weighted exam section.
type Section struct {
	ID     SectionID `json:"id"`
	Name   string    `json:"name"`
	Weight float64   `json:"weight"`
}

// WeightTolerance is the floating-point slack allowed when checking
// that section weights sum to 1.0.
const WeightTolerance = 1e-9

// Table is a validated, immutable set of exam sections.
type Table struct {
	sections  []Section
	byID      map[SectionID]Section
	maxWeight float64
}

// NewTable validates sections and builds a Table. Weights must be
// positive and sum to 1.0 within WeightTolerance; IDs must be unique.
func NewTable(sections []Section) (*Table, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("section table: no sections")
	}

	byID := make(map[SectionID]Section, len(sections))
	sum := 0.0
	maxW := 0.0
	for _, s := range sections {
		if s.ID == "" {
			return nil, fmt.Errorf("section table: empty section id")
		}
		if _, dup := byID[s.ID]; dup {
			return nil, fmt.Errorf("section table: duplicate section %q", s.ID)
		}
		if s.Weight <= 0 || s.Weight > 1 {
			return nil, fmt.Errorf("section %q: weight %v outside (0, 1]", s.ID, s.Weight)
		}
		byID[s.ID] = s
		sum += s.Weight
		if s.Weight > maxW {
			maxW = s.Weight
		}
	}
	if math.Abs(sum-1.0) > WeightTolerance {
		return nil, fmt.Errorf("section weights sum to %v, want 1.0", sum)
	}

	ordered := make([]Section, len(sections))
	copy(ordered, sections)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Weight != ordered[j].Weight {
			return ordered[i].Weight > ordered[j].Weight
		}
		return ordered[i].ID < ordered[j].ID
	})

	return &Table{sections: ordered, byID: byID, maxWeight: maxW}, nil
}

// CoreTable returns the standard CORE exam section table.
func CoreTable() *Table {
	t, err := NewTable([]Section{
		{ID: SectionCardiothoracic, Name: "Cardiothoracic", Weight: 0.20},
		{ID: SectionPhysics, Name: "Physics & Safety", Weight: 0.15},
		{ID: SectionNeuro, Name: "Neuroradiology", Weight: 0.15},
		{ID: SectionAbdominal, Name: "Abdominal & Pelvic", Weight: 0.15},
		{ID: SectionMSK, Name: "Musculoskeletal", Weight: 0.10},
		{ID: SectionNuclear, Name: "Nuclear Medicine", Weight: 0.10},
		{ID: SectionBreast, Name: "Breast Imaging", Weight: 0.08},
		{ID: SectionPediatric, Name: "Pediatric Radiology", Weight: 0.07},
	})
	if err != nil {
		panic(err) // static table, validated by tests
	}
	return t
}

// Get returns the section with the given id.
func (t *Table) Get(id SectionID) (Section, bool) {
	s, ok := t.byID[id]
	return s, ok
}

// Sections returns all sections ordered by descending weight, then id.
func (t *Table) Sections() []Section {
	out := make([]Section, len(t.sections))
	copy(out, t.sections)
	return out
}

// Len returns the number of sections.
func (t *Table) Len() int {
	return len(t.sections)
}

// MaxWeight returns the largest section weight, used to normalize
// exam-weight priority factors.
func (t *Table) MaxWeight() float64 {
	return t.maxWeight
}
