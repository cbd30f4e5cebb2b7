// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/radprep/ent/item"
)

// ItemCreate is the builder for creating a Item entity.
type ItemCreate struct {
	config
	mutation *ItemMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (_c *ItemCreate) SetItemID(v string) *ItemCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetSection sets the "section" field.
func (_c *ItemCreate) SetSection(v string) *ItemCreate {
	_c.mutation.SetSection(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ItemCreate) SetDifficulty(v string) *ItemCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *ItemCreate) SetEaseFactor(v float64) *ItemCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *ItemCreate) SetNillableEaseFactor(v *float64) *ItemCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ItemCreate) SetIntervalDays(v int) *ItemCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ItemCreate) SetNillableIntervalDays(v *int) *ItemCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetRepetitions sets the "repetitions" field.
func (_c *ItemCreate) SetRepetitions(v int) *ItemCreate {
	_c.mutation.SetRepetitions(v)
	return _c
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_c *ItemCreate) SetNillableRepetitions(v *int) *ItemCreate {
	if v != nil {
		_c.SetRepetitions(*v)
	}
	return _c
}

// SetLapses sets the "lapses" field.
func (_c *ItemCreate) SetLapses(v int) *ItemCreate {
	_c.mutation.SetLapses(v)
	return _c
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_c *ItemCreate) SetNillableLapses(v *int) *ItemCreate {
	if v != nil {
		_c.SetLapses(*v)
	}
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *ItemCreate) SetDueAt(v time.Time) *ItemCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *ItemCreate) SetMastery(v string) *ItemCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *ItemCreate) SetLastReviewedAt(v time.Time) *ItemCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_c *ItemCreate) SetNillableLastReviewedAt(v *time.Time) *ItemCreate {
	if v != nil {
		_c.SetLastReviewedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ItemCreate) SetCreatedAt(v time.Time) *ItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ItemCreate) SetNillableCreatedAt(v *time.Time) *ItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ItemMutation object of the builder.
func (_c *ItemCreate) Mutation() *ItemMutation {
	return _c.mutation
}

// Save creates the Item in the database.
func (_c *ItemCreate) Save(ctx context.Context) (*Item, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemCreate) SaveX(ctx context.Context) *Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemCreate) defaults() {
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := item.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := item.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		v := item.DefaultRepetitions
		_c.mutation.SetRepetitions(v)
	}
	if _, ok := _c.mutation.Lapses(); !ok {
		v := item.DefaultLapses
		_c.mutation.SetLapses(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := item.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "Item.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := item.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Item.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Section(); !ok {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required field "Item.section"`)}
	}
	if v, ok := _c.mutation.Section(); ok {
		if err := item.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "Item.section": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Item.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := item.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Item.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "Item.ease_factor"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "Item.interval_days"`)}
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "Item.repetitions"`)}
	}
	if _, ok := _c.mutation.Lapses(); !ok {
		return &ValidationError{Name: "lapses", err: errors.New(`ent: missing required field "Item.lapses"`)}
	}
	if _, ok := _c.mutation.DueAt(); !ok {
		return &ValidationError{Name: "due_at", err: errors.New(`ent: missing required field "Item.due_at"`)}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "Item.mastery"`)}
	}
	if v, ok := _c.mutation.Mastery(); ok {
		if err := item.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "Item.mastery": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Item.created_at"`)}
	}
	return nil
}

func (_c *ItemCreate) sqlSave(ctx context.Context) (*Item, error) {
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

func (_c *ItemCreate) createSpec() (*Item, *sqlgraph.CreateSpec) {
	var (
		_node = &Item{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(item.Table, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(item.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Section(); ok {
		_spec.SetField(item.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(item.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(item.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(item.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.Repetitions(); ok {
		_spec.SetField(item.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := _c.mutation.Lapses(); ok {
		_spec.SetField(item.FieldLapses, field.TypeInt, value)
		_node.Lapses = value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(item.FieldDueAt, field.TypeTime, value)
		_node.DueAt = value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(item.FieldMastery, field.TypeString, value)
		_node.Mastery = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(item.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(item.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ItemCreateBulk is the builder for creating many Item entities in bulk.
type ItemCreateBulk struct {
	config
	err      error
	builders []*ItemCreate
}

// Save creates the Item entities in the database.
func (_c *ItemCreateBulk) Save(ctx context.Context) ([]*Item, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Item, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemMutation)
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
func (_c *ItemCreateBulk) SaveX(ctx context.Context) []*Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
