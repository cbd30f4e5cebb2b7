// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/radprep/ent/item"
	"github.com/abhisek/radprep/ent/predicate"
	"github.com/abhisek/radprep/ent/responseevent"
	"github.com/abhisek/radprep/ent/sectionaggregate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeItem             = "Item"
	TypeResponseEvent    = "ResponseEvent"
	TypeSectionAggregate = "SectionAggregate"
)

// ItemMutation represents an operation that mutates the Item nodes in the graph.
type ItemMutation struct {
	config
	op               Op
	typ              string
	id               *int
	item_id          *string
	section          *string
	difficulty       *string
	ease_factor      *float64
	addease_factor   *float64
	interval_days    *int
	addinterval_days *int
	repetitions      *int
	addrepetitions   *int
	lapses           *int
	addlapses        *int
	due_at           *time.Time
	mastery          *string
	last_reviewed_at *time.Time
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Item, error)
	predicates       []predicate.Item
}

var _ ent.Mutation = (*ItemMutation)(nil)

// itemOption allows management of the mutation configuration using functional options.
type itemOption func(*ItemMutation)

// newItemMutation creates new mutation for the Item entity.
func newItemMutation(c config, op Op, opts ...itemOption) *ItemMutation {
	m := &ItemMutation{
		config:        c,
		op:            op,
		typ:           TypeItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withItemID sets the ID field of the mutation.
func withItemID(id int) itemOption {
	return func(m *ItemMutation) {
		var (
			err   error
			once  sync.Once
			value *Item
		)
		m.oldValue = func(ctx context.Context) (*Item, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Item.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withItem sets the old Item of the mutation.
func withItem(node *Item) itemOption {
	return func(m *ItemMutation) {
		m.oldValue = func(context.Context) (*Item, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Item.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetItemID sets the "item_id" field.
func (m *ItemMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *ItemMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *ItemMutation) ResetItemID() {
	m.item_id = nil
}

// SetSection sets the "section" field.
func (m *ItemMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *ItemMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ResetSection resets all changes to the "section" field.
func (m *ItemMutation) ResetSection() {
	m.section = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *ItemMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *ItemMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *ItemMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetEaseFactor sets the "ease_factor" field.
func (m *ItemMutation) SetEaseFactor(f float64) {
	m.ease_factor = &f
	m.addease_factor = nil
}

// EaseFactor returns the value of the "ease_factor" field in the mutation.
func (m *ItemMutation) EaseFactor() (r float64, exists bool) {
	v := m.ease_factor
	if v == nil {
		return
	}
	return *v, true
}

// OldEaseFactor returns the old "ease_factor" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldEaseFactor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEaseFactor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEaseFactor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEaseFactor: %w", err)
	}
	return oldValue.EaseFactor, nil
}

// AddEaseFactor adds f to the "ease_factor" field.
func (m *ItemMutation) AddEaseFactor(f float64) {
	if m.addease_factor != nil {
		*m.addease_factor += f
	} else {
		m.addease_factor = &f
	}
}

// AddedEaseFactor returns the value that was added to the "ease_factor" field in this mutation.
func (m *ItemMutation) AddedEaseFactor() (r float64, exists bool) {
	v := m.addease_factor
	if v == nil {
		return
	}
	return *v, true
}

// ResetEaseFactor resets all changes to the "ease_factor" field.
func (m *ItemMutation) ResetEaseFactor() {
	m.ease_factor = nil
	m.addease_factor = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *ItemMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *ItemMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *ItemMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *ItemMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *ItemMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetRepetitions sets the "repetitions" field.
func (m *ItemMutation) SetRepetitions(i int) {
	m.repetitions = &i
	m.addrepetitions = nil
}

// Repetitions returns the value of the "repetitions" field in the mutation.
func (m *ItemMutation) Repetitions() (r int, exists bool) {
	v := m.repetitions
	if v == nil {
		return
	}
	return *v, true
}

// OldRepetitions returns the old "repetitions" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldRepetitions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepetitions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepetitions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepetitions: %w", err)
	}
	return oldValue.Repetitions, nil
}

// AddRepetitions adds i to the "repetitions" field.
func (m *ItemMutation) AddRepetitions(i int) {
	if m.addrepetitions != nil {
		*m.addrepetitions += i
	} else {
		m.addrepetitions = &i
	}
}

// AddedRepetitions returns the value that was added to the "repetitions" field in this mutation.
func (m *ItemMutation) AddedRepetitions() (r int, exists bool) {
	v := m.addrepetitions
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepetitions resets all changes to the "repetitions" field.
func (m *ItemMutation) ResetRepetitions() {
	m.repetitions = nil
	m.addrepetitions = nil
}

// SetLapses sets the "lapses" field.
func (m *ItemMutation) SetLapses(i int) {
	m.lapses = &i
	m.addlapses = nil
}

// Lapses returns the value of the "lapses" field in the mutation.
func (m *ItemMutation) Lapses() (r int, exists bool) {
	v := m.lapses
	if v == nil {
		return
	}
	return *v, true
}

// OldLapses returns the old "lapses" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldLapses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLapses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLapses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLapses: %w", err)
	}
	return oldValue.Lapses, nil
}

// AddLapses adds i to the "lapses" field.
func (m *ItemMutation) AddLapses(i int) {
	if m.addlapses != nil {
		*m.addlapses += i
	} else {
		m.addlapses = &i
	}
}

// AddedLapses returns the value that was added to the "lapses" field in this mutation.
func (m *ItemMutation) AddedLapses() (r int, exists bool) {
	v := m.addlapses
	if v == nil {
		return
	}
	return *v, true
}

// ResetLapses resets all changes to the "lapses" field.
func (m *ItemMutation) ResetLapses() {
	m.lapses = nil
	m.addlapses = nil
}

// SetDueAt sets the "due_at" field.
func (m *ItemMutation) SetDueAt(t time.Time) {
	m.due_at = &t
}

// DueAt returns the value of the "due_at" field in the mutation.
func (m *ItemMutation) DueAt() (r time.Time, exists bool) {
	v := m.due_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDueAt returns the old "due_at" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldDueAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueAt: %w", err)
	}
	return oldValue.DueAt, nil
}

// ResetDueAt resets all changes to the "due_at" field.
func (m *ItemMutation) ResetDueAt() {
	m.due_at = nil
}

// SetMastery sets the "mastery" field.
func (m *ItemMutation) SetMastery(s string) {
	m.mastery = &s
}

// Mastery returns the value of the "mastery" field in the mutation.
func (m *ItemMutation) Mastery() (r string, exists bool) {
	v := m.mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldMastery returns the old "mastery" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldMastery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMastery: %w", err)
	}
	return oldValue.Mastery, nil
}

// ResetMastery resets all changes to the "mastery" field.
func (m *ItemMutation) ResetMastery() {
	m.mastery = nil
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (m *ItemMutation) SetLastReviewedAt(t time.Time) {
	m.last_reviewed_at = &t
}

// LastReviewedAt returns the value of the "last_reviewed_at" field in the mutation.
func (m *ItemMutation) LastReviewedAt() (r time.Time, exists bool) {
	v := m.last_reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewedAt returns the old "last_reviewed_at" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldLastReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewedAt: %w", err)
	}
	return oldValue.LastReviewedAt, nil
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (m *ItemMutation) ClearLastReviewedAt() {
	m.last_reviewed_at = nil
	m.clearedFields[item.FieldLastReviewedAt] = struct{}{}
}

// LastReviewedAtCleared returns if the "last_reviewed_at" field was cleared in this mutation.
func (m *ItemMutation) LastReviewedAtCleared() bool {
	_, ok := m.clearedFields[item.FieldLastReviewedAt]
	return ok
}

// ResetLastReviewedAt resets all changes to the "last_reviewed_at" field.
func (m *ItemMutation) ResetLastReviewedAt() {
	m.last_reviewed_at = nil
	delete(m.clearedFields, item.FieldLastReviewedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ItemMutation builder.
func (m *ItemMutation) Where(ps ...predicate.Item) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Item, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Item).
func (m *ItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ItemMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.item_id != nil {
		fields = append(fields, item.FieldItemID)
	}
	if m.section != nil {
		fields = append(fields, item.FieldSection)
	}
	if m.difficulty != nil {
		fields = append(fields, item.FieldDifficulty)
	}
	if m.ease_factor != nil {
		fields = append(fields, item.FieldEaseFactor)
	}
	if m.interval_days != nil {
		fields = append(fields, item.FieldIntervalDays)
	}
	if m.repetitions != nil {
		fields = append(fields, item.FieldRepetitions)
	}
	if m.lapses != nil {
		fields = append(fields, item.FieldLapses)
	}
	if m.due_at != nil {
		fields = append(fields, item.FieldDueAt)
	}
	if m.mastery != nil {
		fields = append(fields, item.FieldMastery)
	}
	if m.last_reviewed_at != nil {
		fields = append(fields, item.FieldLastReviewedAt)
	}
	if m.created_at != nil {
		fields = append(fields, item.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case item.FieldItemID:
		return m.ItemID()
	case item.FieldSection:
		return m.Section()
	case item.FieldDifficulty:
		return m.Difficulty()
	case item.FieldEaseFactor:
		return m.EaseFactor()
	case item.FieldIntervalDays:
		return m.IntervalDays()
	case item.FieldRepetitions:
		return m.Repetitions()
	case item.FieldLapses:
		return m.Lapses()
	case item.FieldDueAt:
		return m.DueAt()
	case item.FieldMastery:
		return m.Mastery()
	case item.FieldLastReviewedAt:
		return m.LastReviewedAt()
	case item.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case item.FieldItemID:
		return m.OldItemID(ctx)
	case item.FieldSection:
		return m.OldSection(ctx)
	case item.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case item.FieldEaseFactor:
		return m.OldEaseFactor(ctx)
	case item.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case item.FieldRepetitions:
		return m.OldRepetitions(ctx)
	case item.FieldLapses:
		return m.OldLapses(ctx)
	case item.FieldDueAt:
		return m.OldDueAt(ctx)
	case item.FieldMastery:
		return m.OldMastery(ctx)
	case item.FieldLastReviewedAt:
		return m.OldLastReviewedAt(ctx)
	case item.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Item field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case item.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case item.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case item.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case item.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEaseFactor(v)
		return nil
	case item.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case item.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepetitions(v)
		return nil
	case item.FieldLapses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLapses(v)
		return nil
	case item.FieldDueAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueAt(v)
		return nil
	case item.FieldMastery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMastery(v)
		return nil
	case item.FieldLastReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewedAt(v)
		return nil
	case item.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Item field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ItemMutation) AddedFields() []string {
	var fields []string
	if m.addease_factor != nil {
		fields = append(fields, item.FieldEaseFactor)
	}
	if m.addinterval_days != nil {
		fields = append(fields, item.FieldIntervalDays)
	}
	if m.addrepetitions != nil {
		fields = append(fields, item.FieldRepetitions)
	}
	if m.addlapses != nil {
		fields = append(fields, item.FieldLapses)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case item.FieldEaseFactor:
		return m.AddedEaseFactor()
	case item.FieldIntervalDays:
		return m.AddedIntervalDays()
	case item.FieldRepetitions:
		return m.AddedRepetitions()
	case item.FieldLapses:
		return m.AddedLapses()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case item.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEaseFactor(v)
		return nil
	case item.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	case item.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepetitions(v)
		return nil
	case item.FieldLapses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLapses(v)
		return nil
	}
	return fmt.Errorf("unknown Item numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(item.FieldLastReviewedAt) {
		fields = append(fields, item.FieldLastReviewedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ItemMutation) ClearField(name string) error {
	switch name {
	case item.FieldLastReviewedAt:
		m.ClearLastReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown Item nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ItemMutation) ResetField(name string) error {
	switch name {
	case item.FieldItemID:
		m.ResetItemID()
		return nil
	case item.FieldSection:
		m.ResetSection()
		return nil
	case item.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case item.FieldEaseFactor:
		m.ResetEaseFactor()
		return nil
	case item.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case item.FieldRepetitions:
		m.ResetRepetitions()
		return nil
	case item.FieldLapses:
		m.ResetLapses()
		return nil
	case item.FieldDueAt:
		m.ResetDueAt()
		return nil
	case item.FieldMastery:
		m.ResetMastery()
		return nil
	case item.FieldLastReviewedAt:
		m.ResetLastReviewedAt()
		return nil
	case item.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Item field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Item unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Item edge %s", name)
}

// ResponseEventMutation represents an operation that mutates the ResponseEvent nodes in the graph.
type ResponseEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	item_id       *string
	section       *string
	correct       *bool
	grade         *int
	addgrade      *int
	latency_ms    *int
	addlatency_ms *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ResponseEvent, error)
	predicates    []predicate.ResponseEvent
}

var _ ent.Mutation = (*ResponseEventMutation)(nil)

// responseeventOption allows management of the mutation configuration using functional options.
type responseeventOption func(*ResponseEventMutation)

// newResponseEventMutation creates new mutation for the ResponseEvent entity.
func newResponseEventMutation(c config, op Op, opts ...responseeventOption) *ResponseEventMutation {
	m := &ResponseEventMutation{
		config:        c,
		op:            op,
		typ:           TypeResponseEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResponseEventID sets the ID field of the mutation.
func withResponseEventID(id int) responseeventOption {
	return func(m *ResponseEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ResponseEvent
		)
		m.oldValue = func(ctx context.Context) (*ResponseEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResponseEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResponseEvent sets the old ResponseEvent of the mutation.
func withResponseEvent(node *ResponseEvent) responseeventOption {
	return func(m *ResponseEventMutation) {
		m.oldValue = func(context.Context) (*ResponseEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResponseEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResponseEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResponseEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResponseEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResponseEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ResponseEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ResponseEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ResponseEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ResponseEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ResponseEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ResponseEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ResponseEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ResponseEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetItemID sets the "item_id" field.
func (m *ResponseEventMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *ResponseEventMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *ResponseEventMutation) ResetItemID() {
	m.item_id = nil
}

// SetSection sets the "section" field.
func (m *ResponseEventMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *ResponseEventMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ResetSection resets all changes to the "section" field.
func (m *ResponseEventMutation) ResetSection() {
	m.section = nil
}

// SetCorrect sets the "correct" field.
func (m *ResponseEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *ResponseEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *ResponseEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetGrade sets the "grade" field.
func (m *ResponseEventMutation) SetGrade(i int) {
	m.grade = &i
	m.addgrade = nil
}

// Grade returns the value of the "grade" field in the mutation.
func (m *ResponseEventMutation) Grade() (r int, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldGrade(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// AddGrade adds i to the "grade" field.
func (m *ResponseEventMutation) AddGrade(i int) {
	if m.addgrade != nil {
		*m.addgrade += i
	} else {
		m.addgrade = &i
	}
}

// AddedGrade returns the value that was added to the "grade" field in this mutation.
func (m *ResponseEventMutation) AddedGrade() (r int, exists bool) {
	v := m.addgrade
	if v == nil {
		return
	}
	return *v, true
}

// ResetGrade resets all changes to the "grade" field.
func (m *ResponseEventMutation) ResetGrade() {
	m.grade = nil
	m.addgrade = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *ResponseEventMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *ResponseEventMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the ResponseEvent entity.
// If the ResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseEventMutation) OldLatencyMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *ResponseEventMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *ResponseEventMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *ResponseEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// Where appends a list predicates to the ResponseEventMutation builder.
func (m *ResponseEventMutation) Where(ps ...predicate.ResponseEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResponseEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResponseEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResponseEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResponseEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResponseEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResponseEvent).
func (m *ResponseEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResponseEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sequence != nil {
		fields = append(fields, responseevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, responseevent.FieldTimestamp)
	}
	if m.item_id != nil {
		fields = append(fields, responseevent.FieldItemID)
	}
	if m.section != nil {
		fields = append(fields, responseevent.FieldSection)
	}
	if m.correct != nil {
		fields = append(fields, responseevent.FieldCorrect)
	}
	if m.grade != nil {
		fields = append(fields, responseevent.FieldGrade)
	}
	if m.latency_ms != nil {
		fields = append(fields, responseevent.FieldLatencyMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResponseEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case responseevent.FieldSequence:
		return m.Sequence()
	case responseevent.FieldTimestamp:
		return m.Timestamp()
	case responseevent.FieldItemID:
		return m.ItemID()
	case responseevent.FieldSection:
		return m.Section()
	case responseevent.FieldCorrect:
		return m.Correct()
	case responseevent.FieldGrade:
		return m.Grade()
	case responseevent.FieldLatencyMs:
		return m.LatencyMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResponseEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case responseevent.FieldSequence:
		return m.OldSequence(ctx)
	case responseevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case responseevent.FieldItemID:
		return m.OldItemID(ctx)
	case responseevent.FieldSection:
		return m.OldSection(ctx)
	case responseevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case responseevent.FieldGrade:
		return m.OldGrade(ctx)
	case responseevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	}
	return nil, fmt.Errorf("unknown ResponseEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResponseEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case responseevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case responseevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case responseevent.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case responseevent.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case responseevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case responseevent.FieldGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case responseevent.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown ResponseEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResponseEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, responseevent.FieldSequence)
	}
	if m.addgrade != nil {
		fields = append(fields, responseevent.FieldGrade)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, responseevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResponseEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case responseevent.FieldSequence:
		return m.AddedSequence()
	case responseevent.FieldGrade:
		return m.AddedGrade()
	case responseevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResponseEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case responseevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case responseevent.FieldGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrade(v)
		return nil
	case responseevent.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown ResponseEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResponseEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResponseEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResponseEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ResponseEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResponseEventMutation) ResetField(name string) error {
	switch name {
	case responseevent.FieldSequence:
		m.ResetSequence()
		return nil
	case responseevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case responseevent.FieldItemID:
		m.ResetItemID()
		return nil
	case responseevent.FieldSection:
		m.ResetSection()
		return nil
	case responseevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case responseevent.FieldGrade:
		m.ResetGrade()
		return nil
	case responseevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	}
	return fmt.Errorf("unknown ResponseEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResponseEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResponseEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResponseEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResponseEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResponseEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResponseEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResponseEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ResponseEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResponseEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ResponseEvent edge %s", name)
}

// SectionAggregateMutation represents an operation that mutates the SectionAggregate nodes in the graph.
type SectionAggregateMutation struct {
	config
	op               Op
	typ              string
	id               *int
	section          *string
	window           *[]bool
	appendwindow     []bool
	samples          *int
	addsamples       *int
	correct_total    *int
	addcorrect_total *int
	streak           *int
	addstreak        *int
	best_streak      *int
	addbest_streak   *int
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*SectionAggregate, error)
	predicates       []predicate.SectionAggregate
}

var _ ent.Mutation = (*SectionAggregateMutation)(nil)

// sectionaggregateOption allows management of the mutation configuration using functional options.
type sectionaggregateOption func(*SectionAggregateMutation)

// newSectionAggregateMutation creates new mutation for the SectionAggregate entity.
func newSectionAggregateMutation(c config, op Op, opts ...sectionaggregateOption) *SectionAggregateMutation {
	m := &SectionAggregateMutation{
		config:        c,
		op:            op,
		typ:           TypeSectionAggregate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSectionAggregateID sets the ID field of the mutation.
func withSectionAggregateID(id int) sectionaggregateOption {
	return func(m *SectionAggregateMutation) {
		var (
			err   error
			once  sync.Once
			value *SectionAggregate
		)
		m.oldValue = func(ctx context.Context) (*SectionAggregate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SectionAggregate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSectionAggregate sets the old SectionAggregate of the mutation.
func withSectionAggregate(node *SectionAggregate) sectionaggregateOption {
	return func(m *SectionAggregateMutation) {
		m.oldValue = func(context.Context) (*SectionAggregate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SectionAggregateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SectionAggregateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SectionAggregateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SectionAggregateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SectionAggregate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSection sets the "section" field.
func (m *SectionAggregateMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *SectionAggregateMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the SectionAggregate entity.
// If the SectionAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionAggregateMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ResetSection resets all changes to the "section" field.
func (m *SectionAggregateMutation) ResetSection() {
	m.section = nil
}

// SetWindow sets the "window" field.
func (m *SectionAggregateMutation) SetWindow(b []bool) {
	m.window = &b
	m.appendwindow = nil
}

// Window returns the value of the "window" field in the mutation.
func (m *SectionAggregateMutation) Window() (r []bool, exists bool) {
	v := m.window
	if v == nil {
		return
	}
	return *v, true
}

// OldWindow returns the old "window" field's value of the SectionAggregate entity.
// If the SectionAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionAggregateMutation) OldWindow(ctx context.Context) (v []bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindow: %w", err)
	}
	return oldValue.Window, nil
}

// AppendWindow adds b to the "window" field.
func (m *SectionAggregateMutation) AppendWindow(b []bool) {
	m.appendwindow = append(m.appendwindow, b...)
}

// AppendedWindow returns the list of values that were appended to the "window" field in this mutation.
func (m *SectionAggregateMutation) AppendedWindow() ([]bool, bool) {
	if len(m.appendwindow) == 0 {
		return nil, false
	}
	return m.appendwindow, true
}

// ResetWindow resets all changes to the "window" field.
func (m *SectionAggregateMutation) ResetWindow() {
	m.window = nil
	m.appendwindow = nil
}

// SetSamples sets the "samples" field.
func (m *SectionAggregateMutation) SetSamples(i int) {
	m.samples = &i
	m.addsamples = nil
}

// Samples returns the value of the "samples" field in the mutation.
func (m *SectionAggregateMutation) Samples() (r int, exists bool) {
	v := m.samples
	if v == nil {
		return
	}
	return *v, true
}

// OldSamples returns the old "samples" field's value of the SectionAggregate entity.
// If the SectionAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionAggregateMutation) OldSamples(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSamples is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSamples requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSamples: %w", err)
	}
	return oldValue.Samples, nil
}

// AddSamples adds i to the "samples" field.
func (m *SectionAggregateMutation) AddSamples(i int) {
	if m.addsamples != nil {
		*m.addsamples += i
	} else {
		m.addsamples = &i
	}
}

// AddedSamples returns the value that was added to the "samples" field in this mutation.
func (m *SectionAggregateMutation) AddedSamples() (r int, exists bool) {
	v := m.addsamples
	if v == nil {
		return
	}
	return *v, true
}

// ResetSamples resets all changes to the "samples" field.
func (m *SectionAggregateMutation) ResetSamples() {
	m.samples = nil
	m.addsamples = nil
}

// SetCorrectTotal sets the "correct_total" field.
func (m *SectionAggregateMutation) SetCorrectTotal(i int) {
	m.correct_total = &i
	m.addcorrect_total = nil
}

// CorrectTotal returns the value of the "correct_total" field in the mutation.
func (m *SectionAggregateMutation) CorrectTotal() (r int, exists bool) {
	v := m.correct_total
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectTotal returns the old "correct_total" field's value of the SectionAggregate entity.
// If the SectionAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionAggregateMutation) OldCorrectTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectTotal: %w", err)
	}
	return oldValue.CorrectTotal, nil
}

// AddCorrectTotal adds i to the "correct_total" field.
func (m *SectionAggregateMutation) AddCorrectTotal(i int) {
	if m.addcorrect_total != nil {
		*m.addcorrect_total += i
	} else {
		m.addcorrect_total = &i
	}
}

// AddedCorrectTotal returns the value that was added to the "correct_total" field in this mutation.
func (m *SectionAggregateMutation) AddedCorrectTotal() (r int, exists bool) {
	v := m.addcorrect_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectTotal resets all changes to the "correct_total" field.
func (m *SectionAggregateMutation) ResetCorrectTotal() {
	m.correct_total = nil
	m.addcorrect_total = nil
}

// SetStreak sets the "streak" field.
func (m *SectionAggregateMutation) SetStreak(i int) {
	m.streak = &i
	m.addstreak = nil
}

// Streak returns the value of the "streak" field in the mutation.
func (m *SectionAggregateMutation) Streak() (r int, exists bool) {
	v := m.streak
	if v == nil {
		return
	}
	return *v, true
}

// OldStreak returns the old "streak" field's value of the SectionAggregate entity.
// If the SectionAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionAggregateMutation) OldStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreak: %w", err)
	}
	return oldValue.Streak, nil
}

// AddStreak adds i to the "streak" field.
func (m *SectionAggregateMutation) AddStreak(i int) {
	if m.addstreak != nil {
		*m.addstreak += i
	} else {
		m.addstreak = &i
	}
}

// AddedStreak returns the value that was added to the "streak" field in this mutation.
func (m *SectionAggregateMutation) AddedStreak() (r int, exists bool) {
	v := m.addstreak
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreak resets all changes to the "streak" field.
func (m *SectionAggregateMutation) ResetStreak() {
	m.streak = nil
	m.addstreak = nil
}

// SetBestStreak sets the "best_streak" field.
func (m *SectionAggregateMutation) SetBestStreak(i int) {
	m.best_streak = &i
	m.addbest_streak = nil
}

// BestStreak returns the value of the "best_streak" field in the mutation.
func (m *SectionAggregateMutation) BestStreak() (r int, exists bool) {
	v := m.best_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldBestStreak returns the old "best_streak" field's value of the SectionAggregate entity.
// If the SectionAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionAggregateMutation) OldBestStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBestStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBestStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBestStreak: %w", err)
	}
	return oldValue.BestStreak, nil
}

// AddBestStreak adds i to the "best_streak" field.
func (m *SectionAggregateMutation) AddBestStreak(i int) {
	if m.addbest_streak != nil {
		*m.addbest_streak += i
	} else {
		m.addbest_streak = &i
	}
}

// AddedBestStreak returns the value that was added to the "best_streak" field in this mutation.
func (m *SectionAggregateMutation) AddedBestStreak() (r int, exists bool) {
	v := m.addbest_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetBestStreak resets all changes to the "best_streak" field.
func (m *SectionAggregateMutation) ResetBestStreak() {
	m.best_streak = nil
	m.addbest_streak = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SectionAggregateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SectionAggregateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SectionAggregate entity.
// If the SectionAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionAggregateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SectionAggregateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SectionAggregateMutation builder.
func (m *SectionAggregateMutation) Where(ps ...predicate.SectionAggregate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SectionAggregateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SectionAggregateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SectionAggregate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SectionAggregateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SectionAggregateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SectionAggregate).
func (m *SectionAggregateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SectionAggregateMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.section != nil {
		fields = append(fields, sectionaggregate.FieldSection)
	}
	if m.window != nil {
		fields = append(fields, sectionaggregate.FieldWindow)
	}
	if m.samples != nil {
		fields = append(fields, sectionaggregate.FieldSamples)
	}
	if m.correct_total != nil {
		fields = append(fields, sectionaggregate.FieldCorrectTotal)
	}
	if m.streak != nil {
		fields = append(fields, sectionaggregate.FieldStreak)
	}
	if m.best_streak != nil {
		fields = append(fields, sectionaggregate.FieldBestStreak)
	}
	if m.updated_at != nil {
		fields = append(fields, sectionaggregate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SectionAggregateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sectionaggregate.FieldSection:
		return m.Section()
	case sectionaggregate.FieldWindow:
		return m.Window()
	case sectionaggregate.FieldSamples:
		return m.Samples()
	case sectionaggregate.FieldCorrectTotal:
		return m.CorrectTotal()
	case sectionaggregate.FieldStreak:
		return m.Streak()
	case sectionaggregate.FieldBestStreak:
		return m.BestStreak()
	case sectionaggregate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SectionAggregateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sectionaggregate.FieldSection:
		return m.OldSection(ctx)
	case sectionaggregate.FieldWindow:
		return m.OldWindow(ctx)
	case sectionaggregate.FieldSamples:
		return m.OldSamples(ctx)
	case sectionaggregate.FieldCorrectTotal:
		return m.OldCorrectTotal(ctx)
	case sectionaggregate.FieldStreak:
		return m.OldStreak(ctx)
	case sectionaggregate.FieldBestStreak:
		return m.OldBestStreak(ctx)
	case sectionaggregate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SectionAggregate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SectionAggregateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sectionaggregate.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case sectionaggregate.FieldWindow:
		v, ok := value.([]bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindow(v)
		return nil
	case sectionaggregate.FieldSamples:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSamples(v)
		return nil
	case sectionaggregate.FieldCorrectTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectTotal(v)
		return nil
	case sectionaggregate.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreak(v)
		return nil
	case sectionaggregate.FieldBestStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBestStreak(v)
		return nil
	case sectionaggregate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SectionAggregate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SectionAggregateMutation) AddedFields() []string {
	var fields []string
	if m.addsamples != nil {
		fields = append(fields, sectionaggregate.FieldSamples)
	}
	if m.addcorrect_total != nil {
		fields = append(fields, sectionaggregate.FieldCorrectTotal)
	}
	if m.addstreak != nil {
		fields = append(fields, sectionaggregate.FieldStreak)
	}
	if m.addbest_streak != nil {
		fields = append(fields, sectionaggregate.FieldBestStreak)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SectionAggregateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sectionaggregate.FieldSamples:
		return m.AddedSamples()
	case sectionaggregate.FieldCorrectTotal:
		return m.AddedCorrectTotal()
	case sectionaggregate.FieldStreak:
		return m.AddedStreak()
	case sectionaggregate.FieldBestStreak:
		return m.AddedBestStreak()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SectionAggregateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sectionaggregate.FieldSamples:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSamples(v)
		return nil
	case sectionaggregate.FieldCorrectTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectTotal(v)
		return nil
	case sectionaggregate.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreak(v)
		return nil
	case sectionaggregate.FieldBestStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBestStreak(v)
		return nil
	}
	return fmt.Errorf("unknown SectionAggregate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SectionAggregateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SectionAggregateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SectionAggregateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SectionAggregate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SectionAggregateMutation) ResetField(name string) error {
	switch name {
	case sectionaggregate.FieldSection:
		m.ResetSection()
		return nil
	case sectionaggregate.FieldWindow:
		m.ResetWindow()
		return nil
	case sectionaggregate.FieldSamples:
		m.ResetSamples()
		return nil
	case sectionaggregate.FieldCorrectTotal:
		m.ResetCorrectTotal()
		return nil
	case sectionaggregate.FieldStreak:
		m.ResetStreak()
		return nil
	case sectionaggregate.FieldBestStreak:
		m.ResetBestStreak()
		return nil
	case sectionaggregate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SectionAggregate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SectionAggregateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SectionAggregateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SectionAggregateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SectionAggregateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SectionAggregateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SectionAggregateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SectionAggregateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SectionAggregate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SectionAggregateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SectionAggregate edge %s", name)
}
