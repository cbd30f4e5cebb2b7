package store

import (
	"context"
	"fmt"

	"github.com/abhisek/radprep/ent"
	"github.com/abhisek/radprep/ent/responseevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendResponse(ctx context.Context, rec ResponseRecord) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ResponseEvent.Create().
		SetSequence(seqNum).
		SetItemID(rec.ItemID).
		SetSection(rec.Section).
		SetCorrect(rec.Correct).
		SetGrade(rec.Grade).
		SetLatencyMs(rec.LatencyMs)
	if !rec.Timestamp.IsZero() {
		builder = builder.SetTimestamp(rec.Timestamp)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save response event: %w", err)
	}
	return seqNum, nil
}

func (r *eventRepo) Responses(ctx context.Context, opts QueryOpts) ([]ResponseRecord, error) {
	q := r.client.ResponseEvent.Query()
	if opts.Section != "" {
		q = q.Where(responseevent.Section(opts.Section))
	}
	if opts.After > 0 {
		q = q.Where(responseevent.SequenceGT(opts.After))
	}
	q = q.Order(ent.Asc(responseevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query response events: %w", err)
	}

	records := make([]ResponseRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, ResponseRecord{
			Sequence:  row.Sequence,
			ItemID:    row.ItemID,
			Section:   row.Section,
			Correct:   row.Correct,
			Grade:     row.Grade,
			LatencyMs: row.LatencyMs,
			Timestamp: row.Timestamp,
		})
	}
	return records, nil
}
