// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codemarcinu/pantry-tracker/gen/ent/correctionpattern"
	"github.com/codemarcinu/pantry-tracker/gen/ent/predicate"
)

// CorrectionPatternDelete is the builder for deleting a CorrectionPattern entity.
type CorrectionPatternDelete struct {
	config
	hooks    []Hook
	mutation *CorrectionPatternMutation
}

// Where appends a list predicates to the CorrectionPatternDelete builder.
func (_d *CorrectionPatternDelete) Where(ps ...predicate.CorrectionPattern) *CorrectionPatternDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CorrectionPatternDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CorrectionPatternDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CorrectionPatternDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(correctionpattern.Table, sqlgraph.NewFieldSpec(correctionpattern.FieldID, field.TypeUUID))
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

// CorrectionPatternDeleteOne is the builder for deleting a single CorrectionPattern entity.
type CorrectionPatternDeleteOne struct {
	_d *CorrectionPatternDelete
}

// Where appends a list predicates to the CorrectionPatternDelete builder.
func (_d *CorrectionPatternDeleteOne) Where(ps ...predicate.CorrectionPattern) *CorrectionPatternDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CorrectionPatternDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{correctionpattern.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CorrectionPatternDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
