package store

import (
	"context"
	"fmt"

	"github.com/abhisek/radprep/ent"
	"github.com/abhisek/radprep/ent/item"
)

// itemRepo implements ItemRepo using the ent client.
type itemRepo struct {
	client *ent.Client
}

func (r *itemRepo) Create(ctx context.Context, rec ItemRecord) error {
	builder := r.client.Item.Create().
		SetItemID(rec.ItemID).
		SetSection(rec.Section).
		SetDifficulty(rec.Difficulty).
		SetEaseFactor(rec.EaseFactor).
		SetIntervalDays(rec.IntervalDays).
		SetRepetitions(rec.Repetitions).
		SetLapses(rec.Lapses).
		SetDueAt(rec.DueAt).
		SetMastery(rec.Mastery)
	if !rec.CreatedAt.IsZero() {
		builder = builder.SetCreatedAt(rec.CreatedAt)
	}
	if rec.LastReviewedAt != nil {
		builder = builder.SetLastReviewedAt(*rec.LastReviewedAt)
	}

	_, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateItem, rec.ItemID)
		}
		return fmt.Errorf("create item %s: %w", rec.ItemID, err)
	}
	return nil
}

func (r *itemRepo) Save(ctx context.Context, rec ItemRecord) error {
	builder := r.client.Item.Update().
		Where(item.ItemID(rec.ItemID)).
		SetEaseFactor(rec.EaseFactor).
		SetIntervalDays(rec.IntervalDays).
		SetRepetitions(rec.Repetitions).
		SetLapses(rec.Lapses).
		SetDueAt(rec.DueAt).
		SetMastery(rec.Mastery)
	if rec.LastReviewedAt != nil {
		builder = builder.SetLastReviewedAt(*rec.LastReviewedAt)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save item %s: %w", rec.ItemID, err)
	}
	if n == 0 {
		return fmt.Errorf("save item %s: no such record", rec.ItemID)
	}
	return nil
}

func (r *itemRepo) All(ctx context.Context) ([]ItemRecord, []*CorruptStateError, error) {
	rows, err := r.client.Item.Query().
		Order(ent.Asc(item.FieldItemID)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("query items: %w", err)
	}

	var (
		records []ItemRecord
		corrupt []*CorruptStateError
	)
	for _, row := range rows {
		rec := ItemRecord{
			ItemID:         row.ItemID,
			Section:        row.Section,
			Difficulty:     row.Difficulty,
			EaseFactor:     row.EaseFactor,
			IntervalDays:   row.IntervalDays,
			Repetitions:    row.Repetitions,
			Lapses:         row.Lapses,
			DueAt:          row.DueAt,
			Mastery:        row.Mastery,
			LastReviewedAt: row.LastReviewedAt,
			CreatedAt:      row.CreatedAt,
		}
		if ce := validateItemRecord(rec); ce != nil {
			corrupt = append(corrupt, ce)
			continue
		}
		records = append(records, rec)
	}
	return records, corrupt, nil
}

// validateItemRecord checks the invariants every persisted item record
// must satisfy. Violations are not repaired silently; the record is
// quarantined until corrected.
func validateItemRecord(rec ItemRecord) *CorruptStateError {
	fail := func(reason string) *CorruptStateError {
		return &CorruptStateError{Kind: "item", ID: rec.ItemID, Reason: reason}
	}

	if rec.EaseFactor < 1.3 {
		return fail(fmt.Sprintf("ease_factor %v below floor 1.3", rec.EaseFactor))
	}
	if rec.IntervalDays < 0 {
		return fail(fmt.Sprintf("negative interval_days %d", rec.IntervalDays))
	}
	if rec.Repetitions < 0 {
		return fail(fmt.Sprintf("negative repetitions %d", rec.Repetitions))
	}
	if rec.Lapses < 0 {
		return fail(fmt.Sprintf("negative lapses %d", rec.Lapses))
	}
	switch rec.Mastery {
	case "learning", "reviewing", "mastered":
	default:
		return fail(fmt.Sprintf("unknown mastery %q", rec.Mastery))
	}
	if rec.DueAt.IsZero() {
		return fail("missing due_at")
	}
	return nil
}
