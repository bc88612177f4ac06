// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codemarcinu/pantry-tracker/gen/ent/consumptionevent"
	"github.com/codemarcinu/pantry-tracker/gen/ent/predicate"
)

// ConsumptionEventDelete is the builder for deleting a ConsumptionEvent entity.
type ConsumptionEventDelete struct {
	config
	hooks    []Hook
	mutation *ConsumptionEventMutation
}

// Where appends a list predicates to the ConsumptionEventDelete builder.
func (_d *ConsumptionEventDelete) Where(ps ...predicate.ConsumptionEvent) *ConsumptionEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ConsumptionEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConsumptionEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ConsumptionEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(consumptionevent.Table, sqlgraph.NewFieldSpec(consumptionevent.FieldID, field.TypeUUID))
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

// ConsumptionEventDeleteOne is the builder for deleting a single ConsumptionEvent entity.
type ConsumptionEventDeleteOne struct {
	_d *ConsumptionEventDelete
}

// Where appends a list predicates to the ConsumptionEventDelete builder.
func (_d *ConsumptionEventDeleteOne) Where(ps ...predicate.ConsumptionEvent) *ConsumptionEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ConsumptionEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{consumptionevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConsumptionEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
