// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codemarcinu/pantry-tracker/gen/ent/predicate"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receipt"
	"github.com/codemarcinu/pantry-tracker/gen/ent/trainingsample"
	"github.com/google/uuid"
)

// TrainingSampleUpdate is the builder for updating TrainingSample entities.
type TrainingSampleUpdate struct {
	config
	hooks    []Hook
	mutation *TrainingSampleMutation
}

// Where appends a list predicates to the TrainingSampleUpdate builder.
func (_u *TrainingSampleUpdate) Where(ps ...predicate.TrainingSample) *TrainingSampleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReceiptID sets the "receipt_id" field.
func (_u *TrainingSampleUpdate) SetReceiptID(v uuid.UUID) *TrainingSampleUpdate {
	_u.mutation.SetReceiptID(v)
	return _u
}

// SetNillableReceiptID sets the "receipt_id" field if the given value is not nil.
func (_u *TrainingSampleUpdate) SetNillableReceiptID(v *uuid.UUID) *TrainingSampleUpdate {
	if v != nil {
		_u.SetReceiptID(*v)
	}
	return _u
}

// SetWeakText sets the "weak_text" field.
func (_u *TrainingSampleUpdate) SetWeakText(v string) *TrainingSampleUpdate {
	_u.mutation.SetWeakText(v)
	return _u
}

// SetNillableWeakText sets the "weak_text" field if the given value is not nil.
func (_u *TrainingSampleUpdate) SetNillableWeakText(v *string) *TrainingSampleUpdate {
	if v != nil {
		_u.SetWeakText(*v)
	}
	return _u
}

// SetStrongText sets the "strong_text" field.
func (_u *TrainingSampleUpdate) SetStrongText(v string) *TrainingSampleUpdate {
	_u.mutation.SetStrongText(v)
	return _u
}

// SetNillableStrongText sets the "strong_text" field if the given value is not nil.
func (_u *TrainingSampleUpdate) SetNillableStrongText(v *string) *TrainingSampleUpdate {
	if v != nil {
		_u.SetStrongText(*v)
	}
	return _u
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_u *TrainingSampleUpdate) SetReceipt(v *Receipt) *TrainingSampleUpdate {
	return _u.SetReceiptID(v.ID)
}

// Mutation returns the TrainingSampleMutation object of the builder.
func (_u *TrainingSampleUpdate) Mutation() *TrainingSampleMutation {
	return _u.mutation
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (_u *TrainingSampleUpdate) ClearReceipt() *TrainingSampleUpdate {
	_u.mutation.ClearReceipt()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrainingSampleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingSampleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrainingSampleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingSampleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrainingSampleUpdate) check() error {
	if _u.mutation.ReceiptCleared() && len(_u.mutation.ReceiptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrainingSample.receipt"`)
	}
	return nil
}

func (_u *TrainingSampleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trainingsample.Table, trainingsample.Columns, sqlgraph.NewFieldSpec(trainingsample.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WeakText(); ok {
		_spec.SetField(trainingsample.FieldWeakText, field.TypeString, value)
	}
	if value, ok := _u.mutation.StrongText(); ok {
		_spec.SetField(trainingsample.FieldStrongText, field.TypeString, value)
	}
	if _u.mutation.ReceiptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trainingsample.ReceiptTable,
			Columns: []string{trainingsample.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trainingsample.ReceiptTable,
			Columns: []string{trainingsample.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingsample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrainingSampleUpdateOne is the builder for updating a single TrainingSample entity.
type TrainingSampleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrainingSampleMutation
}

// SetReceiptID sets the "receipt_id" field.
func (_u *TrainingSampleUpdateOne) SetReceiptID(v uuid.UUID) *TrainingSampleUpdateOne {
	_u.mutation.SetReceiptID(v)
	return _u
}

// SetNillableReceiptID sets the "receipt_id" field if the given value is not nil.
func (_u *TrainingSampleUpdateOne) SetNillableReceiptID(v *uuid.UUID) *TrainingSampleUpdateOne {
	if v != nil {
		_u.SetReceiptID(*v)
	}
	return _u
}

// SetWeakText sets the "weak_text" field.
func (_u *TrainingSampleUpdateOne) SetWeakText(v string) *TrainingSampleUpdateOne {
	_u.mutation.SetWeakText(v)
	return _u
}

// SetNillableWeakText sets the "weak_text" field if the given value is not nil.
func (_u *TrainingSampleUpdateOne) SetNillableWeakText(v *string) *TrainingSampleUpdateOne {
	if v != nil {
		_u.SetWeakText(*v)
	}
	return _u
}

// SetStrongText sets the "strong_text" field.
func (_u *TrainingSampleUpdateOne) SetStrongText(v string) *TrainingSampleUpdateOne {
	_u.mutation.SetStrongText(v)
	return _u
}

// SetNillableStrongText sets the "strong_text" field if the given value is not nil.
func (_u *TrainingSampleUpdateOne) SetNillableStrongText(v *string) *TrainingSampleUpdateOne {
	if v != nil {
		_u.SetStrongText(*v)
	}
	return _u
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_u *TrainingSampleUpdateOne) SetReceipt(v *Receipt) *TrainingSampleUpdateOne {
	return _u.SetReceiptID(v.ID)
}

// Mutation returns the TrainingSampleMutation object of the builder.
func (_u *TrainingSampleUpdateOne) Mutation() *TrainingSampleMutation {
	return _u.mutation
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (_u *TrainingSampleUpdateOne) ClearReceipt() *TrainingSampleUpdateOne {
	_u.mutation.ClearReceipt()
	return _u
}

// Where appends a list predicates to the TrainingSampleUpdate builder.
func (_u *TrainingSampleUpdateOne) Where(ps ...predicate.TrainingSample) *TrainingSampleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrainingSampleUpdateOne) Select(field string, fields ...string) *TrainingSampleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrainingSample entity.
func (_u *TrainingSampleUpdateOne) Save(ctx context.Context) (*TrainingSample, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingSampleUpdateOne) SaveX(ctx context.Context) *TrainingSample {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrainingSampleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingSampleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrainingSampleUpdateOne) check() error {
	if _u.mutation.ReceiptCleared() && len(_u.mutation.ReceiptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrainingSample.receipt"`)
	}
	return nil
}

func (_u *TrainingSampleUpdateOne) sqlSave(ctx context.Context) (_node *TrainingSample, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trainingsample.Table, trainingsample.Columns, sqlgraph.NewFieldSpec(trainingsample.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrainingSample.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trainingsample.FieldID)
		for _, f := range fields {
			if !trainingsample.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trainingsample.FieldID {
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
	if value, ok := _u.mutation.WeakText(); ok {
		_spec.SetField(trainingsample.FieldWeakText, field.TypeString, value)
	}
	if value, ok := _u.mutation.StrongText(); ok {
		_spec.SetField(trainingsample.FieldStrongText, field.TypeString, value)
	}
	if _u.mutation.ReceiptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trainingsample.ReceiptTable,
			Columns: []string{trainingsample.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trainingsample.ReceiptTable,
			Columns: []string{trainingsample.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TrainingSample{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingsample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
