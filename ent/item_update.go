// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/radprep/ent/item"
	"github.com/abhisek/radprep/ent/predicate"
)

// ItemUpdate is the builder for updating Item entities.
type ItemUpdate struct {
	config
	hooks    []Hook
	mutation *ItemMutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdate) Where(ps ...predicate.Item) *ItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ItemUpdate) SetEaseFactor(v float64) *ItemUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableEaseFactor(v *float64) *ItemUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ItemUpdate) AddEaseFactor(v float64) *ItemUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ItemUpdate) SetIntervalDays(v int) *ItemUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableIntervalDays(v *int) *ItemUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ItemUpdate) AddIntervalDays(v int) *ItemUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ItemUpdate) SetRepetitions(v int) *ItemUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableRepetitions(v *int) *ItemUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ItemUpdate) AddRepetitions(v int) *ItemUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetLapses sets the "lapses" field.
func (_u *ItemUpdate) SetLapses(v int) *ItemUpdate {
	_u.mutation.ResetLapses()
	_u.mutation.SetLapses(v)
	return _u
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableLapses(v *int) *ItemUpdate {
	if v != nil {
		_u.SetLapses(*v)
	}
	return _u
}

// AddLapses adds value to the "lapses" field.
func (_u *ItemUpdate) AddLapses(v int) *ItemUpdate {
	_u.mutation.AddLapses(v)
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ItemUpdate) SetDueAt(v time.Time) *ItemUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableDueAt(v *time.Time) *ItemUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *ItemUpdate) SetMastery(v string) *ItemUpdate {
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableMastery(v *string) *ItemUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ItemUpdate) SetLastReviewedAt(v time.Time) *ItemUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableLastReviewedAt(v *time.Time) *ItemUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *ItemUpdate) ClearLastReviewedAt() *ItemUpdate {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdate) Mutation() *ItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdate) check() error {
	if v, ok := _u.mutation.Mastery(); ok {
		if err := item.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "Item.mastery": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(item.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(item.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(item.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(item.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(item.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(item.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lapses(); ok {
		_spec.SetField(item.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapses(); ok {
		_spec.AddField(item.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(item.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(item.FieldMastery, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(item.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(item.FieldLastReviewedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemUpdateOne is the builder for updating a single Item entity.
type ItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemMutation
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ItemUpdateOne) SetEaseFactor(v float64) *ItemUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableEaseFactor(v *float64) *ItemUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ItemUpdateOne) AddEaseFactor(v float64) *ItemUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ItemUpdateOne) SetIntervalDays(v int) *ItemUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableIntervalDays(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ItemUpdateOne) AddIntervalDays(v int) *ItemUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ItemUpdateOne) SetRepetitions(v int) *ItemUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableRepetitions(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ItemUpdateOne) AddRepetitions(v int) *ItemUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetLapses sets the "lapses" field.
func (_u *ItemUpdateOne) SetLapses(v int) *ItemUpdateOne {
	_u.mutation.ResetLapses()
	_u.mutation.SetLapses(v)
	return _u
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableLapses(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetLapses(*v)
	}
	return _u
}

// AddLapses adds value to the "lapses" field.
func (_u *ItemUpdateOne) AddLapses(v int) *ItemUpdateOne {
	_u.mutation.AddLapses(v)
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ItemUpdateOne) SetDueAt(v time.Time) *ItemUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableDueAt(v *time.Time) *ItemUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *ItemUpdateOne) SetMastery(v string) *ItemUpdateOne {
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableMastery(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ItemUpdateOne) SetLastReviewedAt(v time.Time) *ItemUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableLastReviewedAt(v *time.Time) *ItemUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *ItemUpdateOne) ClearLastReviewedAt() *ItemUpdateOne {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdateOne) Mutation() *ItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdateOne) Where(ps ...predicate.Item) *ItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemUpdateOne) Select(field string, fields ...string) *ItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Item entity.
func (_u *ItemUpdateOne) Save(ctx context.Context) (*Item, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdateOne) SaveX(ctx context.Context) *Item {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdateOne) check() error {
	if v, ok := _u.mutation.Mastery(); ok {
		if err := item.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "Item.mastery": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdateOne) sqlSave(ctx context.Context) (_node *Item, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Item.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, item.FieldID)
		for _, f := range fields {
			if !item.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != item.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(item.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(item.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(item.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(item.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(item.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(item.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lapses(); ok {
		_spec.SetField(item.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapses(); ok {
		_spec.AddField(item.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(item.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(item.FieldMastery, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(item.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(item.FieldLastReviewedAt, field.TypeTime)
	}
	_node = &Item{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
