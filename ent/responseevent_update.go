// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/radprep/ent/predicate"
	"github.com/abhisek/radprep/ent/responseevent"
)

// ResponseEventUpdate is the builder for updating ResponseEvent entities.
type ResponseEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseEventMutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdate) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ResponseEventUpdate) SetItemID(v string) *ResponseEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableItemID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *ResponseEventUpdate) SetSection(v string) *ResponseEventUpdate {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableSection(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ResponseEventUpdate) SetCorrect(v bool) *ResponseEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableCorrect(v *bool) *ResponseEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ResponseEventUpdate) SetGrade(v int) *ResponseEventUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableGrade(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *ResponseEventUpdate) AddGrade(v int) *ResponseEventUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ResponseEventUpdate) SetLatencyMs(v int) *ResponseEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableLatencyMs(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ResponseEventUpdate) AddLatencyMs(v int) *ResponseEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdate) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResponseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResponseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdate) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := responseevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Section(); ok {
		if err := responseevent.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.section": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(responseevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(responseevent.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(responseevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(responseevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(responseevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(responseevent.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(responseevent.FieldLatencyMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResponseEventUpdateOne is the builder for updating a single ResponseEvent entity.
type ResponseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseEventMutation
}

// SetItemID sets the "item_id" field.
func (_u *ResponseEventUpdateOne) SetItemID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableItemID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *ResponseEventUpdateOne) SetSection(v string) *ResponseEventUpdateOne {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableSection(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ResponseEventUpdateOne) SetCorrect(v bool) *ResponseEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableCorrect(v *bool) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ResponseEventUpdateOne) SetGrade(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableGrade(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *ResponseEventUpdateOne) AddGrade(v int) *ResponseEventUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ResponseEventUpdateOne) SetLatencyMs(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableLatencyMs(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ResponseEventUpdateOne) AddLatencyMs(v int) *ResponseEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdateOne) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdateOne) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResponseEventUpdateOne) Select(field string, fields ...string) *ResponseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResponseEvent entity.
func (_u *ResponseEventUpdateOne) Save(ctx context.Context) (*ResponseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) SaveX(ctx context.Context) *ResponseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResponseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdateOne) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := responseevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Section(); ok {
		if err := responseevent.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.section": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdateOne) sqlSave(ctx context.Context) (_node *ResponseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResponseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, responseevent.FieldID)
		for _, f := range fields {
			if !responseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != responseevent.FieldID {
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
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(responseevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(responseevent.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(responseevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(responseevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(responseevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(responseevent.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(responseevent.FieldLatencyMs, field.TypeInt, value)
	}
	_node = &ResponseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
