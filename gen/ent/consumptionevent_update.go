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
	"github.com/codemarcinu/pantry-tracker/gen/ent/consumptionevent"
	"github.com/codemarcinu/pantry-tracker/gen/ent/inventoryitem"
	"github.com/codemarcinu/pantry-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ConsumptionEventUpdate is the builder for updating ConsumptionEvent entities.
type ConsumptionEventUpdate struct {
	config
	hooks    []Hook
	mutation *ConsumptionEventMutation
}

// Where appends a list predicates to the ConsumptionEventUpdate builder.
func (_u *ConsumptionEventUpdate) Where(ps ...predicate.ConsumptionEvent) *ConsumptionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (_u *ConsumptionEventUpdate) SetInventoryItemID(v uuid.UUID) *ConsumptionEventUpdate {
	_u.mutation.SetInventoryItemID(v)
	return _u
}

// SetNillableInventoryItemID sets the "inventory_item_id" field if the given value is not nil.
func (_u *ConsumptionEventUpdate) SetNillableInventoryItemID(v *uuid.UUID) *ConsumptionEventUpdate {
	if v != nil {
		_u.SetInventoryItemID(*v)
	}
	return _u
}

// SetConsumedQty sets the "consumed_qty" field.
func (_u *ConsumptionEventUpdate) SetConsumedQty(v float64) *ConsumptionEventUpdate {
	_u.mutation.ResetConsumedQty()
	_u.mutation.SetConsumedQty(v)
	return _u
}

// SetNillableConsumedQty sets the "consumed_qty" field if the given value is not nil.
func (_u *ConsumptionEventUpdate) SetNillableConsumedQty(v *float64) *ConsumptionEventUpdate {
	if v != nil {
		_u.SetConsumedQty(*v)
	}
	return _u
}

// AddConsumedQty adds value to the "consumed_qty" field.
func (_u *ConsumptionEventUpdate) AddConsumedQty(v float64) *ConsumptionEventUpdate {
	_u.mutation.AddConsumedQty(v)
	return _u
}

// SetConsumedAt sets the "consumed_at" field.
func (_u *ConsumptionEventUpdate) SetConsumedAt(v time.Time) *ConsumptionEventUpdate {
	_u.mutation.SetConsumedAt(v)
	return _u
}

// SetNillableConsumedAt sets the "consumed_at" field if the given value is not nil.
func (_u *ConsumptionEventUpdate) SetNillableConsumedAt(v *time.Time) *ConsumptionEventUpdate {
	if v != nil {
		_u.SetConsumedAt(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ConsumptionEventUpdate) SetNotes(v string) *ConsumptionEventUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ConsumptionEventUpdate) SetNillableNotes(v *string) *ConsumptionEventUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetInventoryItem sets the "inventory_item" edge to the InventoryItem entity.
func (_u *ConsumptionEventUpdate) SetInventoryItem(v *InventoryItem) *ConsumptionEventUpdate {
	return _u.SetInventoryItemID(v.ID)
}

// Mutation returns the ConsumptionEventMutation object of the builder.
func (_u *ConsumptionEventUpdate) Mutation() *ConsumptionEventMutation {
	return _u.mutation
}

// ClearInventoryItem clears the "inventory_item" edge to the InventoryItem entity.
func (_u *ConsumptionEventUpdate) ClearInventoryItem() *ConsumptionEventUpdate {
	_u.mutation.ClearInventoryItem()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConsumptionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConsumptionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConsumptionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConsumptionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConsumptionEventUpdate) check() error {
	if _u.mutation.InventoryItemCleared() && len(_u.mutation.InventoryItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConsumptionEvent.inventory_item"`)
	}
	return nil
}

func (_u *ConsumptionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(consumptionevent.Table, consumptionevent.Columns, sqlgraph.NewFieldSpec(consumptionevent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConsumedQty(); ok {
		_spec.SetField(consumptionevent.FieldConsumedQty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConsumedQty(); ok {
		_spec.AddField(consumptionevent.FieldConsumedQty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConsumedAt(); ok {
		_spec.SetField(consumptionevent.FieldConsumedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(consumptionevent.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.InventoryItemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   consumptionevent.InventoryItemTable,
			Columns: []string{consumptionevent.InventoryItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InventoryItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   consumptionevent.InventoryItemTable,
			Columns: []string{consumptionevent.InventoryItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{consumptionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConsumptionEventUpdateOne is the builder for updating a single ConsumptionEvent entity.
type ConsumptionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConsumptionEventMutation
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (_u *ConsumptionEventUpdateOne) SetInventoryItemID(v uuid.UUID) *ConsumptionEventUpdateOne {
	_u.mutation.SetInventoryItemID(v)
	return _u
}

// SetNillableInventoryItemID sets the "inventory_item_id" field if the given value is not nil.
func (_u *ConsumptionEventUpdateOne) SetNillableInventoryItemID(v *uuid.UUID) *ConsumptionEventUpdateOne {
	if v != nil {
		_u.SetInventoryItemID(*v)
	}
	return _u
}

// SetConsumedQty sets the "consumed_qty" field.
func (_u *ConsumptionEventUpdateOne) SetConsumedQty(v float64) *ConsumptionEventUpdateOne {
	_u.mutation.ResetConsumedQty()
	_u.mutation.SetConsumedQty(v)
	return _u
}

// SetNillableConsumedQty sets the "consumed_qty" field if the given value is not nil.
func (_u *ConsumptionEventUpdateOne) SetNillableConsumedQty(v *float64) *ConsumptionEventUpdateOne {
	if v != nil {
		_u.SetConsumedQty(*v)
	}
	return _u
}

// AddConsumedQty adds value to the "consumed_qty" field.
func (_u *ConsumptionEventUpdateOne) AddConsumedQty(v float64) *ConsumptionEventUpdateOne {
	_u.mutation.AddConsumedQty(v)
	return _u
}

// SetConsumedAt sets the "consumed_at" field.
func (_u *ConsumptionEventUpdateOne) SetConsumedAt(v time.Time) *ConsumptionEventUpdateOne {
	_u.mutation.SetConsumedAt(v)
	return _u
}

// SetNillableConsumedAt sets the "consumed_at" field if the given value is not nil.
func (_u *ConsumptionEventUpdateOne) SetNillableConsumedAt(v *time.Time) *ConsumptionEventUpdateOne {
	if v != nil {
		_u.SetConsumedAt(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ConsumptionEventUpdateOne) SetNotes(v string) *ConsumptionEventUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ConsumptionEventUpdateOne) SetNillableNotes(v *string) *ConsumptionEventUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetInventoryItem sets the "inventory_item" edge to the InventoryItem entity.
func (_u *ConsumptionEventUpdateOne) SetInventoryItem(v *InventoryItem) *ConsumptionEventUpdateOne {
	return _u.SetInventoryItemID(v.ID)
}

// Mutation returns the ConsumptionEventMutation object of the builder.
func (_u *ConsumptionEventUpdateOne) Mutation() *ConsumptionEventMutation {
	return _u.mutation
}

// ClearInventoryItem clears the "inventory_item" edge to the InventoryItem entity.
func (_u *ConsumptionEventUpdateOne) ClearInventoryItem() *ConsumptionEventUpdateOne {
	_u.mutation.ClearInventoryItem()
	return _u
}

// Where appends a list predicates to the ConsumptionEventUpdate builder.
func (_u *ConsumptionEventUpdateOne) Where(ps ...predicate.ConsumptionEvent) *ConsumptionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConsumptionEventUpdateOne) Select(field string, fields ...string) *ConsumptionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConsumptionEvent entity.
func (_u *ConsumptionEventUpdateOne) Save(ctx context.Context) (*ConsumptionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConsumptionEventUpdateOne) SaveX(ctx context.Context) *ConsumptionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConsumptionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConsumptionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConsumptionEventUpdateOne) check() error {
	if _u.mutation.InventoryItemCleared() && len(_u.mutation.InventoryItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConsumptionEvent.inventory_item"`)
	}
	return nil
}

func (_u *ConsumptionEventUpdateOne) sqlSave(ctx context.Context) (_node *ConsumptionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(consumptionevent.Table, consumptionevent.Columns, sqlgraph.NewFieldSpec(consumptionevent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConsumptionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, consumptionevent.FieldID)
		for _, f := range fields {
			if !consumptionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != consumptionevent.FieldID {
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
	if value, ok := _u.mutation.ConsumedQty(); ok {
		_spec.SetField(consumptionevent.FieldConsumedQty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConsumedQty(); ok {
		_spec.AddField(consumptionevent.FieldConsumedQty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConsumedAt(); ok {
		_spec.SetField(consumptionevent.FieldConsumedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(consumptionevent.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.InventoryItemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   consumptionevent.InventoryItemTable,
			Columns: []string{consumptionevent.InventoryItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InventoryItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   consumptionevent.InventoryItemTable,
			Columns: []string{consumptionevent.InventoryItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ConsumptionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{consumptionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
