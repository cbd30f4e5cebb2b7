// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/radprep/ent/responseevent"
)

// ResponseEventCreate is the builder for creating a ResponseEvent entity.
type ResponseEventCreate struct {
	config
	mutation *ResponseEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ResponseEventCreate) SetSequence(v int64) *ResponseEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ResponseEventCreate) SetTimestamp(v time.Time) *ResponseEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillableTimestamp(v *time.Time) *ResponseEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *ResponseEventCreate) SetItemID(v string) *ResponseEventCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetSection sets the "section" field.
func (_c *ResponseEventCreate) SetSection(v string) *ResponseEventCreate {
	_c.mutation.SetSection(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ResponseEventCreate) SetCorrect(v bool) *ResponseEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *ResponseEventCreate) SetGrade(v int) *ResponseEventCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *ResponseEventCreate) SetLatencyMs(v int) *ResponseEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_c *ResponseEventCreate) Mutation() *ResponseEventMutation {
	return _c.mutation
}

// Save creates the ResponseEvent in the database.
func (_c *ResponseEventCreate) Save(ctx context.Context) (*ResponseEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResponseEventCreate) SaveX(ctx context.Context) *ResponseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResponseEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResponseEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResponseEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := responseevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResponseEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ResponseEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ResponseEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ResponseEvent.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := responseevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Section(); !ok {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required field "ResponseEvent.section"`)}
	}
	if v, ok := _c.mutation.Section(); ok {
		if err := responseevent.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.section": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ResponseEvent.correct"`)}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "ResponseEvent.grade"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "ResponseEvent.latency_ms"`)}
	}
	return nil
}

func (_c *ResponseEventCreate) sqlSave(ctx context.Context) (*ResponseEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResponseEventCreate) createSpec() (*ResponseEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ResponseEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(responseevent.Table, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(responseevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(responseevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(responseevent.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Section(); ok {
		_spec.SetField(responseevent.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(responseevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(responseevent.FieldGrade, field.TypeInt, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(responseevent.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = value
	}
	return _node, _spec
}

// ResponseEventCreateBulk is the builder for creating many ResponseEvent entities in bulk.
type ResponseEventCreateBulk struct {
	config
	err      error
	builders []*ResponseEventCreate
}

// Save creates the ResponseEvent entities in the database.
func (_c *ResponseEventCreateBulk) Save(ctx context.Context) ([]*ResponseEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResponseEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResponseEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ResponseEventCreateBulk) SaveX(ctx context.Context) []*ResponseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResponseEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResponseEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
