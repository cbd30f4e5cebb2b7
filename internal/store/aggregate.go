package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/radprep/ent"
	"github.com/abhisek/radprep/ent/sectionaggregate"
)

// aggregateRepo implements AggregateRepo using the ent client.
type aggregateRepo struct {
	client *ent.Client
}

func (r *aggregateRepo) Upsert(ctx context.Context, rec AggregateRecord) error {
	updated := rec.UpdatedAt
	if updated.IsZero() {
		updated = time.Now().UTC()
	}

	n, err := r.client.SectionAggregate.Update().
		Where(sectionaggregate.Section(rec.Section)).
		SetWindow(rec.Window).
		SetSamples(rec.Samples).
		SetCorrectTotal(rec.CorrectTotal).
		SetStreak(rec.Streak).
		SetBestStreak(rec.BestStreak).
		SetUpdatedAt(updated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update aggregate %s: %w", rec.Section, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.SectionAggregate.Create().
		SetSection(rec.Section).
		SetWindow(rec.Window).
		SetSamples(rec.Samples).
		SetCorrectTotal(rec.CorrectTotal).
		SetStreak(rec.Streak).
		SetBestStreak(rec.BestStreak).
		SetUpdatedAt(updated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create aggregate %s: %w", rec.Section, err)
	}
	return nil
}

func (r *aggregateRepo) All(ctx context.Context) ([]AggregateRecord, error) {
	rows, err := r.client.SectionAggregate.Query().
		Order(ent.Asc(sectionaggregate.FieldSection)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query aggregates: %w", err)
	}

	records := make([]AggregateRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, AggregateRecord{
			Section:      row.Section,
			Window:       row.Window,
			Samples:      row.Samples,
			CorrectTotal: row.CorrectTotal,
			Streak:       row.Streak,
			BestStreak:   row.BestStreak,
			UpdatedAt:    row.UpdatedAt,
		})
	}
	return records, nil
}
