package store

import (
	"context"
	"time"
)

// ItemRecord is the persisted scheduling state for one practice item,
// keyed by its content-derived id. The Scheduler owns the semantics of
// these fields; the store only persists and validates them.
type ItemRecord struct {
	ItemID         string
	Section        string
	Difficulty     string
	EaseFactor     float64
	IntervalDays   int
	Repetitions    int
	Lapses         int
	DueAt          time.Time
	Mastery        string
	LastReviewedAt *time.Time
	CreatedAt      time.Time
}

// ItemRepo persists per-item scheduling state.
type ItemRepo interface {
	// Create inserts a new item record. Returns ErrDuplicateItem if the
	// item id already exists.
	Create(ctx context.Context, rec ItemRecord) error

	// Save updates the scheduling state of an existing item record.
	Save(ctx context.Context, rec ItemRecord) error

	// All returns every item record, ordered by item id. Records that
	// fail basic field validation are returned separately as
	// CorruptStateErrors rather than aborting the load.
	All(ctx context.Context) ([]ItemRecord, []*CorruptStateError, error)
}

// ResponseRecord is one append-only performance record: a single
// learner response to an item. Never mutated or deleted.
type ResponseRecord struct {
	Sequence  int64
	ItemID    string
	Section   string // denormalized for fast per-section aggregation
	Correct   bool
	Grade     int
	LatencyMs int
	Timestamp time.Time
}

// QueryOpts configures response-log queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	After   int64  // sequence > After
	Section string // restrict to one section ("" = all)
}

// EventRepo provides append and query access to the response log.
type EventRepo interface {
	// AppendResponse records a response event, assigning it the next
	// global sequence number. Returns the assigned sequence.
	AppendResponse(ctx context.Context, rec ResponseRecord) (int64, error)

	// Responses returns response records in ascending sequence order.
	Responses(ctx context.Context, opts QueryOpts) ([]ResponseRecord, error)
}

// AggregateRecord is the persisted rolling aggregate for one section.
// Derived state: rebuildable from the response log.
type AggregateRecord struct {
	Section      string
	Window       []bool // most recent outcomes, oldest first
	Samples      int    // lifetime response count
	CorrectTotal int    // lifetime correct count
	Streak       int    // current consecutive-correct run
	BestStreak   int
	UpdatedAt    time.Time
}

// AggregateRepo persists per-section rolling aggregates.
type AggregateRepo interface {
	// Upsert stores the aggregate for a section, replacing any prior row.
	Upsert(ctx context.Context, rec AggregateRecord) error

	// All returns every section aggregate, ordered by section id.
	All(ctx context.Context) ([]AggregateRecord, error)
}
