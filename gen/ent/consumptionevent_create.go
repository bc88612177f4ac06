// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codemarcinu/pantry-tracker/gen/ent/consumptionevent"
	"github.com/codemarcinu/pantry-tracker/gen/ent/inventoryitem"
	"github.com/google/uuid"
)

// ConsumptionEventCreate is the builder for creating a ConsumptionEvent entity.
type ConsumptionEventCreate struct {
	config
	mutation *ConsumptionEventMutation
	hooks    []Hook
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (_c *ConsumptionEventCreate) SetInventoryItemID(v uuid.UUID) *ConsumptionEventCreate {
	_c.mutation.SetInventoryItemID(v)
	return _c
}

// SetConsumedQty sets the "consumed_qty" field.
func (_c *ConsumptionEventCreate) SetConsumedQty(v float64) *ConsumptionEventCreate {
	_c.mutation.SetConsumedQty(v)
	return _c
}

// SetConsumedAt sets the "consumed_at" field.
func (_c *ConsumptionEventCreate) SetConsumedAt(v time.Time) *ConsumptionEventCreate {
	_c.mutation.SetConsumedAt(v)
	return _c
}

// SetNillableConsumedAt sets the "consumed_at" field if the given value is not nil.
func (_c *ConsumptionEventCreate) SetNillableConsumedAt(v *time.Time) *ConsumptionEventCreate {
	if v != nil {
		_c.SetConsumedAt(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ConsumptionEventCreate) SetNotes(v string) *ConsumptionEventCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ConsumptionEventCreate) SetNillableNotes(v *string) *ConsumptionEventCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConsumptionEventCreate) SetCreatedAt(v time.Time) *ConsumptionEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConsumptionEventCreate) SetNillableCreatedAt(v *time.Time) *ConsumptionEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConsumptionEventCreate) SetID(v uuid.UUID) *ConsumptionEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ConsumptionEventCreate) SetNillableID(v *uuid.UUID) *ConsumptionEventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetInventoryItem sets the "inventory_item" edge to the InventoryItem entity.
func (_c *ConsumptionEventCreate) SetInventoryItem(v *InventoryItem) *ConsumptionEventCreate {
	return _c.SetInventoryItemID(v.ID)
}

// Mutation returns the ConsumptionEventMutation object of the builder.
func (_c *ConsumptionEventCreate) Mutation() *ConsumptionEventMutation {
	return _c.mutation
}

// Save creates the ConsumptionEvent in the database.
func (_c *ConsumptionEventCreate) Save(ctx context.Context) (*ConsumptionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConsumptionEventCreate) SaveX(ctx context.Context) *ConsumptionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConsumptionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConsumptionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConsumptionEventCreate) defaults() {
	if _, ok := _c.mutation.ConsumedAt(); !ok {
		v := consumptionevent.DefaultConsumedAt()
		_c.mutation.SetConsumedAt(v)
	}
	if _, ok := _c.mutation.Notes(); !ok {
		v := consumptionevent.DefaultNotes
		_c.mutation.SetNotes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := consumptionevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := consumptionevent.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConsumptionEventCreate) check() error {
	if _, ok := _c.mutation.InventoryItemID(); !ok {
		return &ValidationError{Name: "inventory_item_id", err: errors.New(`ent: missing required field "ConsumptionEvent.inventory_item_id"`)}
	}
	if _, ok := _c.mutation.ConsumedQty(); !ok {
		return &ValidationError{Name: "consumed_qty", err: errors.New(`ent: missing required field "ConsumptionEvent.consumed_qty"`)}
	}
	if _, ok := _c.mutation.ConsumedAt(); !ok {
		return &ValidationError{Name: "consumed_at", err: errors.New(`ent: missing required field "ConsumptionEvent.consumed_at"`)}
	}
	if _, ok := _c.mutation.Notes(); !ok {
		return &ValidationError{Name: "notes", err: errors.New(`ent: missing required field "ConsumptionEvent.notes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConsumptionEvent.created_at"`)}
	}
	if len(_c.mutation.InventoryItemIDs()) == 0 {
		return &ValidationError{Name: "inventory_item", err: errors.New(`ent: missing required edge "ConsumptionEvent.inventory_item"`)}
	}
	return nil
}

func (_c *ConsumptionEventCreate) sqlSave(ctx context.Context) (*ConsumptionEvent, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConsumptionEventCreate) createSpec() (*ConsumptionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ConsumptionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(consumptionevent.Table, sqlgraph.NewFieldSpec(consumptionevent.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ConsumedQty(); ok {
		_spec.SetField(consumptionevent.FieldConsumedQty, field.TypeFloat64, value)
		_node.ConsumedQty = value
	}
	if value, ok := _c.mutation.ConsumedAt(); ok {
		_spec.SetField(consumptionevent.FieldConsumedAt, field.TypeTime, value)
		_node.ConsumedAt = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(consumptionevent.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(consumptionevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.InventoryItemIDs(); len(nodes) > 0 {
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
		_node.InventoryItemID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConsumptionEventCreateBulk is the builder for creating many ConsumptionEvent entities in bulk.
type ConsumptionEventCreateBulk struct {
	config
	err      error
	builders []*ConsumptionEventCreate
}

// Save creates the ConsumptionEvent entities in the database.
func (_c *ConsumptionEventCreateBulk) Save(ctx context.Context) ([]*ConsumptionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConsumptionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConsumptionEventMutation)
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
func (_c *ConsumptionEventCreateBulk) SaveX(ctx context.Context) []*ConsumptionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConsumptionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConsumptionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
