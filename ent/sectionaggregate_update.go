// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/radprep/ent/predicate"
	"github.com/abhisek/radprep/ent/sectionaggregate"
)

// SectionAggregateUpdate is the builder for updating SectionAggregate entities.
type SectionAggregateUpdate struct {
	config
	hooks    []Hook
	mutation *SectionAggregateMutation
}

// Where appends a list predicates to the SectionAggregateUpdate builder.
func (_u *SectionAggregateUpdate) Where(ps ...predicate.SectionAggregate) *SectionAggregateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSection sets the "section" field.
func (_u *SectionAggregateUpdate) SetSection(v string) *SectionAggregateUpdate {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *SectionAggregateUpdate) SetNillableSection(v *string) *SectionAggregateUpdate {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetWindow sets the "window" field.
func (_u *SectionAggregateUpdate) SetWindow(v []bool) *SectionAggregateUpdate {
	_u.mutation.SetWindow(v)
	return _u
}

// AppendWindow appends value to the "window" field.
func (_u *SectionAggregateUpdate) AppendWindow(v []bool) *SectionAggregateUpdate {
	_u.mutation.AppendWindow(v)
	return _u
}

// SetSamples sets the "samples" field.
func (_u *SectionAggregateUpdate) SetSamples(v int) *SectionAggregateUpdate {
	_u.mutation.ResetSamples()
	_u.mutation.SetSamples(v)
	return _u
}

// SetNillableSamples sets the "samples" field if the given value is not nil.
func (_u *SectionAggregateUpdate) SetNillableSamples(v *int) *SectionAggregateUpdate {
	if v != nil {
		_u.SetSamples(*v)
	}
	return _u
}

// AddSamples adds value to the "samples" field.
func (_u *SectionAggregateUpdate) AddSamples(v int) *SectionAggregateUpdate {
	_u.mutation.AddSamples(v)
	return _u
}

// SetCorrectTotal sets the "correct_total" field.
func (_u *SectionAggregateUpdate) SetCorrectTotal(v int) *SectionAggregateUpdate {
	_u.mutation.ResetCorrectTotal()
	_u.mutation.SetCorrectTotal(v)
	return _u
}

// SetNillableCorrectTotal sets the "correct_total" field if the given value is not nil.
func (_u *SectionAggregateUpdate) SetNillableCorrectTotal(v *int) *SectionAggregateUpdate {
	if v != nil {
		_u.SetCorrectTotal(*v)
	}
	return _u
}

// AddCorrectTotal adds value to the "correct_total" field.
func (_u *SectionAggregateUpdate) AddCorrectTotal(v int) *SectionAggregateUpdate {
	_u.mutation.AddCorrectTotal(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *SectionAggregateUpdate) SetStreak(v int) *SectionAggregateUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *SectionAggregateUpdate) SetNillableStreak(v *int) *SectionAggregateUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *SectionAggregateUpdate) AddStreak(v int) *SectionAggregateUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetBestStreak sets the "best_streak" field.
func (_u *SectionAggregateUpdate) SetBestStreak(v int) *SectionAggregateUpdate {
	_u.mutation.ResetBestStreak()
	_u.mutation.SetBestStreak(v)
	return _u
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_u *SectionAggregateUpdate) SetNillableBestStreak(v *int) *SectionAggregateUpdate {
	if v != nil {
		_u.SetBestStreak(*v)
	}
	return _u
}

// AddBestStreak adds value to the "best_streak" field.
func (_u *SectionAggregateUpdate) AddBestStreak(v int) *SectionAggregateUpdate {
	_u.mutation.AddBestStreak(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SectionAggregateUpdate) SetUpdatedAt(v time.Time) *SectionAggregateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *SectionAggregateUpdate) SetNillableUpdatedAt(v *time.Time) *SectionAggregateUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the SectionAggregateMutation object of the builder.
func (_u *SectionAggregateUpdate) Mutation() *SectionAggregateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SectionAggregateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SectionAggregateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SectionAggregateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SectionAggregateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SectionAggregateUpdate) check() error {
	if v, ok := _u.mutation.Section(); ok {
		if err := sectionaggregate.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "SectionAggregate.section": %w`, err)}
		}
	}
	return nil
}

func (_u *SectionAggregateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sectionaggregate.Table, sectionaggregate.Columns, sqlgraph.NewFieldSpec(sectionaggregate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(sectionaggregate.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Window(); ok {
		_spec.SetField(sectionaggregate.FieldWindow, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWindow(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sectionaggregate.FieldWindow, value)
		})
	}
	if value, ok := _u.mutation.Samples(); ok {
		_spec.SetField(sectionaggregate.FieldSamples, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSamples(); ok {
		_spec.AddField(sectionaggregate.FieldSamples, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectTotal(); ok {
		_spec.SetField(sectionaggregate.FieldCorrectTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectTotal(); ok {
		_spec.AddField(sectionaggregate.FieldCorrectTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(sectionaggregate.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(sectionaggregate.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestStreak(); ok {
		_spec.SetField(sectionaggregate.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestStreak(); ok {
		_spec.AddField(sectionaggregate.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sectionaggregate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sectionaggregate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SectionAggregateUpdateOne is the builder for updating a single SectionAggregate entity.
type SectionAggregateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SectionAggregateMutation
}

// SetSection sets the "section" field.
func (_u *SectionAggregateUpdateOne) SetSection(v string) *SectionAggregateUpdateOne {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *SectionAggregateUpdateOne) SetNillableSection(v *string) *SectionAggregateUpdateOne {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetWindow sets the "window" field.
func (_u *SectionAggregateUpdateOne) SetWindow(v []bool) *SectionAggregateUpdateOne {
	_u.mutation.SetWindow(v)
	return _u
}

// AppendWindow appends value to the "window" field.
func (_u *SectionAggregateUpdateOne) AppendWindow(v []bool) *SectionAggregateUpdateOne {
	_u.mutation.AppendWindow(v)
	return _u
}

// SetSamples sets the "samples" field.
func (_u *SectionAggregateUpdateOne) SetSamples(v int) *SectionAggregateUpdateOne {
	_u.mutation.ResetSamples()
	_u.mutation.SetSamples(v)
	return _u
}

// SetNillableSamples sets the "samples" field if the given value is not nil.
func (_u *SectionAggregateUpdateOne) SetNillableSamples(v *int) *SectionAggregateUpdateOne {
	if v != nil {
		_u.SetSamples(*v)
	}
	return _u
}

// AddSamples adds value to the "samples" field.
func (_u *SectionAggregateUpdateOne) AddSamples(v int) *SectionAggregateUpdateOne {
	_u.mutation.AddSamples(v)
	return _u
}

// SetCorrectTotal sets the "correct_total" field.
func (_u *SectionAggregateUpdateOne) SetCorrectTotal(v int) *SectionAggregateUpdateOne {
	_u.mutation.ResetCorrectTotal()
	_u.mutation.SetCorrectTotal(v)
	return _u
}

// SetNillableCorrectTotal sets the "correct_total" field if the given value is not nil.
func (_u *SectionAggregateUpdateOne) SetNillableCorrectTotal(v *int) *SectionAggregateUpdateOne {
	if v != nil {
		_u.SetCorrectTotal(*v)
	}
	return _u
}

// AddCorrectTotal adds value to the "correct_total" field.
func (_u *SectionAggregateUpdateOne) AddCorrectTotal(v int) *SectionAggregateUpdateOne {
	_u.mutation.AddCorrectTotal(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *SectionAggregateUpdateOne) SetStreak(v int) *SectionAggregateUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *SectionAggregateUpdateOne) SetNillableStreak(v *int) *SectionAggregateUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *SectionAggregateUpdateOne) AddStreak(v int) *SectionAggregateUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetBestStreak sets the "best_streak" field.
func (_u *SectionAggregateUpdateOne) SetBestStreak(v int) *SectionAggregateUpdateOne {
	_u.mutation.ResetBestStreak()
	_u.mutation.SetBestStreak(v)
	return _u
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_u *SectionAggregateUpdateOne) SetNillableBestStreak(v *int) *SectionAggregateUpdateOne {
	if v != nil {
		_u.SetBestStreak(*v)
	}
	return _u
}

// AddBestStreak adds value to the "best_streak" field.
func (_u *SectionAggregateUpdateOne) AddBestStreak(v int) *SectionAggregateUpdateOne {
	_u.mutation.AddBestStreak(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SectionAggregateUpdateOne) SetUpdatedAt(v time.Time) *SectionAggregateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *SectionAggregateUpdateOne) SetNillableUpdatedAt(v *time.Time) *SectionAggregateUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the SectionAggregateMutation object of the builder.
func (_u *SectionAggregateUpdateOne) Mutation() *SectionAggregateMutation {
	return _u.mutation
}

// Where appends a list predicates to the SectionAggregateUpdate builder.
func (_u *SectionAggregateUpdateOne) Where(ps ...predicate.SectionAggregate) *SectionAggregateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SectionAggregateUpdateOne) Select(field string, fields ...string) *SectionAggregateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SectionAggregate entity.
func (_u *SectionAggregateUpdateOne) Save(ctx context.Context) (*SectionAggregate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SectionAggregateUpdateOne) SaveX(ctx context.Context) *SectionAggregate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SectionAggregateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SectionAggregateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SectionAggregateUpdateOne) check() error {
	if v, ok := _u.mutation.Section(); ok {
		if err := sectionaggregate.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "SectionAggregate.section": %w`, err)}
		}
	}
	return nil
}

func (_u *SectionAggregateUpdateOne) sqlSave(ctx context.Context) (_node *SectionAggregate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sectionaggregate.Table, sectionaggregate.Columns, sqlgraph.NewFieldSpec(sectionaggregate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SectionAggregate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sectionaggregate.FieldID)
		for _, f := range fields {
			if !sectionaggregate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sectionaggregate.FieldID {
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
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(sectionaggregate.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Window(); ok {
		_spec.SetField(sectionaggregate.FieldWindow, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWindow(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sectionaggregate.FieldWindow, value)
		})
	}
	if value, ok := _u.mutation.Samples(); ok {
		_spec.SetField(sectionaggregate.FieldSamples, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSamples(); ok {
		_spec.AddField(sectionaggregate.FieldSamples, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectTotal(); ok {
		_spec.SetField(sectionaggregate.FieldCorrectTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectTotal(); ok {
		_spec.AddField(sectionaggregate.FieldCorrectTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(sectionaggregate.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(sectionaggregate.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestStreak(); ok {
		_spec.SetField(sectionaggregate.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestStreak(); ok {
		_spec.AddField(sectionaggregate.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sectionaggregate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SectionAggregate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sectionaggregate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
