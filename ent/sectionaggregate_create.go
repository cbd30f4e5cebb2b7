// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/radprep/ent/sectionaggregate"
)

// SectionAggregateCreate is the builder for creating a SectionAggregate entity.
type SectionAggregateCreate struct {
	config
	mutation *SectionAggregateMutation
	hooks    []Hook
}

// SetSection sets the "section" field.
func (_c *SectionAggregateCreate) SetSection(v string) *SectionAggregateCreate {
	_c.mutation.SetSection(v)
	return _c
}

// SetWindow sets the "window" field.
func (_c *SectionAggregateCreate) SetWindow(v []bool) *SectionAggregateCreate {
	_c.mutation.SetWindow(v)
	return _c
}

// SetSamples sets the "samples" field.
func (_c *SectionAggregateCreate) SetSamples(v int) *SectionAggregateCreate {
	_c.mutation.SetSamples(v)
	return _c
}

// SetNillableSamples sets the "samples" field if the given value is not nil.
func (_c *SectionAggregateCreate) SetNillableSamples(v *int) *SectionAggregateCreate {
	if v != nil {
		_c.SetSamples(*v)
	}
	return _c
}

// SetCorrectTotal sets the "correct_total" field.
func (_c *SectionAggregateCreate) SetCorrectTotal(v int) *SectionAggregateCreate {
	_c.mutation.SetCorrectTotal(v)
	return _c
}

// SetNillableCorrectTotal sets the "correct_total" field if the given value is not nil.
func (_c *SectionAggregateCreate) SetNillableCorrectTotal(v *int) *SectionAggregateCreate {
	if v != nil {
		_c.SetCorrectTotal(*v)
	}
	return _c
}

// SetStreak sets the "streak" field.
func (_c *SectionAggregateCreate) SetStreak(v int) *SectionAggregateCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *SectionAggregateCreate) SetNillableStreak(v *int) *SectionAggregateCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetBestStreak sets the "best_streak" field.
func (_c *SectionAggregateCreate) SetBestStreak(v int) *SectionAggregateCreate {
	_c.mutation.SetBestStreak(v)
	return _c
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_c *SectionAggregateCreate) SetNillableBestStreak(v *int) *SectionAggregateCreate {
	if v != nil {
		_c.SetBestStreak(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SectionAggregateCreate) SetUpdatedAt(v time.Time) *SectionAggregateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SectionAggregateCreate) SetNillableUpdatedAt(v *time.Time) *SectionAggregateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SectionAggregateMutation object of the builder.
func (_c *SectionAggregateCreate) Mutation() *SectionAggregateMutation {
	return _c.mutation
}

// Save creates the SectionAggregate in the database.
func (_c *SectionAggregateCreate) Save(ctx context.Context) (*SectionAggregate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SectionAggregateCreate) SaveX(ctx context.Context) *SectionAggregate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SectionAggregateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SectionAggregateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SectionAggregateCreate) defaults() {
	if _, ok := _c.mutation.Samples(); !ok {
		v := sectionaggregate.DefaultSamples
		_c.mutation.SetSamples(v)
	}
	if _, ok := _c.mutation.CorrectTotal(); !ok {
		v := sectionaggregate.DefaultCorrectTotal
		_c.mutation.SetCorrectTotal(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := sectionaggregate.DefaultStreak
		_c.mutation.SetStreak(v)
	}
	if _, ok := _c.mutation.BestStreak(); !ok {
		v := sectionaggregate.DefaultBestStreak
		_c.mutation.SetBestStreak(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sectionaggregate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SectionAggregateCreate) check() error {
	if _, ok := _c.mutation.Section(); !ok {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required field "SectionAggregate.section"`)}
	}
	if v, ok := _c.mutation.Section(); ok {
		if err := sectionaggregate.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "SectionAggregate.section": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Window(); !ok {
		return &ValidationError{Name: "window", err: errors.New(`ent: missing required field "SectionAggregate.window"`)}
	}
	if _, ok := _c.mutation.Samples(); !ok {
		return &ValidationError{Name: "samples", err: errors.New(`ent: missing required field "SectionAggregate.samples"`)}
	}
	if _, ok := _c.mutation.CorrectTotal(); !ok {
		return &ValidationError{Name: "correct_total", err: errors.New(`ent: missing required field "SectionAggregate.correct_total"`)}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "SectionAggregate.streak"`)}
	}
	if _, ok := _c.mutation.BestStreak(); !ok {
		return &ValidationError{Name: "best_streak", err: errors.New(`ent: missing required field "SectionAggregate.best_streak"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SectionAggregate.updated_at"`)}
	}
	return nil
}

func (_c *SectionAggregateCreate) sqlSave(ctx context.Context) (*SectionAggregate, error) {
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

func (_c *SectionAggregateCreate) createSpec() (*SectionAggregate, *sqlgraph.CreateSpec) {
	var (
		_node = &SectionAggregate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sectionaggregate.Table, sqlgraph.NewFieldSpec(sectionaggregate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Section(); ok {
		_spec.SetField(sectionaggregate.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	if value, ok := _c.mutation.Window(); ok {
		_spec.SetField(sectionaggregate.FieldWindow, field.TypeJSON, value)
		_node.Window = value
	}
	if value, ok := _c.mutation.Samples(); ok {
		_spec.SetField(sectionaggregate.FieldSamples, field.TypeInt, value)
		_node.Samples = value
	}
	if value, ok := _c.mutation.CorrectTotal(); ok {
		_spec.SetField(sectionaggregate.FieldCorrectTotal, field.TypeInt, value)
		_node.CorrectTotal = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(sectionaggregate.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.BestStreak(); ok {
		_spec.SetField(sectionaggregate.FieldBestStreak, field.TypeInt, value)
		_node.BestStreak = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sectionaggregate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SectionAggregateCreateBulk is the builder for creating many SectionAggregate entities in bulk.
type SectionAggregateCreateBulk struct {
	config
	err      error
	builders []*SectionAggregateCreate
}

// Save creates the SectionAggregate entities in the database.
func (_c *SectionAggregateCreateBulk) Save(ctx context.Context) ([]*SectionAggregate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SectionAggregate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SectionAggregateMutation)
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
func (_c *SectionAggregateCreateBulk) SaveX(ctx context.Context) []*SectionAggregate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SectionAggregateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SectionAggregateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
