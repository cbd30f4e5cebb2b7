package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/abhisek/radprep/internal/exam"
	"github.com/abhisek/radprep/internal/store"
)

// Service manages scheduling state for all registered items. Writes to
// a given item are serialized with a per-item lock; reads may run
// concurrently with writes to other items.
type Service struct {
	cfg   Config
	table *exam.Table
	repo  store.ItemRepo

	mu      sync.RWMutex
	items   map[string]Item
	corrupt map[string]*store.CorruptStateError

	lockMu sync.Mutex
	locks  map[string]*sync.Mutex
}

// NewService loads all persisted item records and builds a Service.
// Records that fail invariant validation are quarantined: they are
// reported by CorruptItems and refuse scheduling until corrected, but
// they do not abort the load.
func NewService(ctx context.Context, table *exam.Table, cfg Config, repo store.ItemRepo) (*Service, error) {
	s := &Service{
		cfg:     cfg,
		table:   table,
		repo:    repo,
		items:   make(map[string]Item),
		corrupt: make(map[string]*store.CorruptStateError),
		locks:   make(map[string]*sync.Mutex),
	}

	records, corrupt, err := repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	for _, ce := range corrupt {
		s.corrupt[ce.ID] = ce
	}
	for _, rec := range records {
		it, ce := itemFromRecord(rec, table)
		if ce != nil {
			s.corrupt[ce.ID] = ce
			continue
		}
		s.items[it.ID] = it
	}
	return s, nil
}

// Register creates default scheduling state for a new item. Fails with
// store.ErrDuplicateItem if the id is already registered.
func (s *Service) Register(ctx context.Context, id string, section exam.SectionID, difficulty exam.Difficulty, now time.Time) (Item, error) {
	if id == "" {
		return Item{}, fmt.Errorf("register: empty item id")
	}
	if _, ok := s.table.Get(section); !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
	if _, err := exam.ParseDifficulty(string(difficulty)); err != nil {
		return Item{}, fmt.Errorf("register %s: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; exists {
		return Item{}, fmt.Errorf("%w: %s", store.ErrDuplicateItem, id)
	}
	if _, quarantined := s.corrupt[id]; quarantined {
		return Item{}, fmt.Errorf("%w: %s", store.ErrDuplicateItem, id)
	}

	it := NewItem(id, section, difficulty, now)
	if err := s.repo.Create(ctx, recordFromItem(it)); err != nil {
		return Item{}, err
	}
	s.items[id] = it
	return it, nil
}

// RecordResponse applies one graded response to an item and persists
// the new state. Concurrent responses to the same item are serialized.
func (s *Service) RecordResponse(ctx context.Context, id string, g Grade, now time.Time) (Item, error) {
	if !g.Valid() {
		return Item{}, fmt.Errorf("%w: %d", ErrInvalidGrade, g)
	}

	lock := s.itemLock(id)
	lock.Lock()
	defer lock.Unlock()

	s.mu.RLock()
	it, ok := s.items[id]
	ce := s.corrupt[id]
	s.mu.RUnlock()

	if ce != nil {
		return Item{}, ce
	}
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}

	next, err := Review(it, g, now, s.cfg)
	if err != nil {
		return Item{}, err
	}
	if err := s.repo.Save(ctx, recordFromItem(next)); err != nil {
		return Item{}, err
	}

	s.mu.Lock()
	s.items[id] = next
	s.mu.Unlock()
	return next, nil
}

// ItemState returns a read-only snapshot of one item's state.
func (s *Service) ItemState(id string) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if ce := s.corrupt[id]; ce != nil {
		return Item{}, ce
	}
	it, ok := s.items[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	return it, nil
}

// Items returns a snapshot of all schedulable items, ordered by id.
// Quarantined items are excluded.
func (s *Service) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CorruptItems returns the load-time validation failures, ordered by id.
func (s *Service) CorruptItems() []*store.CorruptStateError {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*store.CorruptStateError, 0, len(s.corrupt))
	for _, ce := range s.corrupt {
		out = append(out, ce)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// itemLock returns the write lock for an item id, creating it on first use.
func (s *Service) itemLock(id string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()

	if l, ok := s.locks[id]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.locks[id] = l
	return l
}

// itemFromRecord converts a validated store record into an Item,
// quarantining records whose section is not in the exam table.
func itemFromRecord(rec store.ItemRecord, table *exam.Table) (Item, *store.CorruptStateError) {
	if _, ok := table.Get(exam.SectionID(rec.Section)); !ok {
		return Item{}, &store.CorruptStateError{
			Kind:   "item",
			ID:     rec.ItemID,
			Reason: fmt.Sprintf("unknown section %q", rec.Section),
		}
	}
	difficulty, err := exam.ParseDifficulty(rec.Difficulty)
	if err != nil {
		return Item{}, &store.CorruptStateError{
			Kind:   "item",
			ID:     rec.ItemID,
			Reason: err.Error(),
		}
	}

	return Item{
		ID:             rec.ItemID,
		Section:        exam.SectionID(rec.Section),
		Difficulty:     difficulty,
		EaseFactor:     rec.EaseFactor,
		IntervalDays:   rec.IntervalDays,
		Repetitions:    rec.Repetitions,
		Lapses:         rec.Lapses,
		DueAt:          rec.DueAt,
		Mastery:        Mastery(rec.Mastery),
		LastReviewedAt: rec.LastReviewedAt,
		CreatedAt:      rec.CreatedAt,
	}, nil
}

func recordFromItem(it Item) store.ItemRecord {
	return store.ItemRecord{
		ItemID:         it.ID,
		Section:        string(it.Section),
		Difficulty:     string(it.Difficulty),
		EaseFactor:     it.EaseFactor,
		IntervalDays:   it.IntervalDays,
		Repetitions:    it.Repetitions,
		Lapses:         it.Lapses,
		DueAt:          it.DueAt,
		Mastery:        string(it.Mastery),
		LastReviewedAt: it.LastReviewedAt,
		CreatedAt:      it.CreatedAt,
	}
}
