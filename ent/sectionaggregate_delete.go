// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/radprep/ent/predicate"
	"github.com/abhisek/radprep/ent/sectionaggregate"
)

// SectionAggregateDelete is the builder for deleting a SectionAggregate entity.
type SectionAggregateDelete struct {
	config
	hooks    []Hook
	mutation *SectionAggregateMutation
}

// Where appends a list predicates to the SectionAggregateDelete builder.
func (_d *SectionAggregateDelete) Where(ps ...predicate.SectionAggregate) *SectionAggregateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SectionAggregateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SectionAggregateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SectionAggregateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(sectionaggregate.Table, sqlgraph.NewFieldSpec(sectionaggregate.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// SectionAggregateDeleteOne is the builder for deleting a single SectionAggregate entity.
type SectionAggregateDeleteOne struct {
	_d *SectionAggregateDelete
}

// Where appends a list predicates to the SectionAggregateDelete builder.
func (_d *SectionAggregateDeleteOne) Where(ps ...predicate.SectionAggregate) *SectionAggregateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SectionAggregateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{sectionaggregate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SectionAggregateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
