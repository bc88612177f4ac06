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
	"github.com/codemarcinu/pantry-tracker/gen/ent/product"
	"github.com/google/uuid"
)

// InventoryItemCreate is the builder for creating a InventoryItem entity.
type InventoryItemCreate struct {
	config
	mutation *InventoryItemMutation
	hooks    []Hook
}

// SetProductID sets the "product_id" field.
func (_c *InventoryItemCreate) SetProductID(v uuid.UUID) *InventoryItemCreate {
	_c.mutation.SetProductID(v)
	return _c
}

// SetPurchaseDate sets the "purchase_date" field.
func (_c *InventoryItemCreate) SetPurchaseDate(v time.Time) *InventoryItemCreate {
	_c.mutation.SetPurchaseDate(v)
	return _c
}

// SetExpiryDate sets the "expiry_date" field.
func (_c *InventoryItemCreate) SetExpiryDate(v time.Time) *InventoryItemCreate {
	_c.mutation.SetExpiryDate(v)
	return _c
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableExpiryDate(v *time.Time) *InventoryItemCreate {
	if v != nil {
		_c.SetExpiryDate(*v)
	}
	return _c
}

// SetQuantityRemaining sets the "quantity_remaining" field.
func (_c *InventoryItemCreate) SetQuantityRemaining(v float64) *InventoryItemCreate {
	_c.mutation.SetQuantityRemaining(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *InventoryItemCreate) SetUnit(v string) *InventoryItemCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableUnit(v *string) *InventoryItemCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetStorageLocation sets the "storage_location" field.
func (_c *InventoryItemCreate) SetStorageLocation(v string) *InventoryItemCreate {
	_c.mutation.SetStorageLocation(v)
	return _c
}

// SetNillableStorageLocation sets the "storage_location" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableStorageLocation(v *string) *InventoryItemCreate {
	if v != nil {
		_c.SetStorageLocation(*v)
	}
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *InventoryItemCreate) SetBatchID(v string) *InventoryItemCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableBatchID(v *string) *InventoryItemCreate {
	if v != nil {
		_c.SetBatchID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InventoryItemCreate) SetCreatedAt(v time.Time) *InventoryItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableCreatedAt(v *time.Time) *InventoryItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InventoryItemCreate) SetUpdatedAt(v time.Time) *InventoryItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableUpdatedAt(v *time.Time) *InventoryItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InventoryItemCreate) SetID(v uuid.UUID) *InventoryItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableID(v *uuid.UUID) *InventoryItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProduct sets the "product" edge to the Product entity.
func (_c *InventoryItemCreate) SetProduct(v *Product) *InventoryItemCreate {
	return _c.SetProductID(v.ID)
}

// AddConsumptionEventIDs adds the "consumption_events" edge to the ConsumptionEvent entity by IDs.
func (_c *InventoryItemCreate) AddConsumptionEventIDs(ids ...uuid.UUID) *InventoryItemCreate {
	_c.mutation.AddConsumptionEventIDs(ids...)
	return _c
}

// AddConsumptionEvents adds the "consumption_events" edges to the ConsumptionEvent entity.
func (_c *InventoryItemCreate) AddConsumptionEvents(v ...*ConsumptionEvent) *InventoryItemCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConsumptionEventIDs(ids...)
}

// Mutation returns the InventoryItemMutation object of the builder.
func (_c *InventoryItemCreate) Mutation() *InventoryItemMutation {
	return _c.mutation
}

// Save creates the InventoryItem in the database.
func (_c *InventoryItemCreate) Save(ctx context.Context) (*InventoryItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InventoryItemCreate) SaveX(ctx context.Context) *InventoryItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InventoryItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InventoryItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InventoryItemCreate) defaults() {
	if _, ok := _c.mutation.Unit(); !ok {
		v := inventoryitem.DefaultUnit
		_c.mutation.SetUnit(v)
	}
	if _, ok := _c.mutation.StorageLocation(); !ok {
		v := inventoryitem.DefaultStorageLocation
		_c.mutation.SetStorageLocation(v)
	}
	if _, ok := _c.mutation.BatchID(); !ok {
		v := inventoryitem.DefaultBatchID
		_c.mutation.SetBatchID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := inventoryitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := inventoryitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := inventoryitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InventoryItemCreate) check() error {
	if _, ok := _c.mutation.ProductID(); !ok {
		return &ValidationError{Name: "product_id", err: errors.New(`ent: missing required field "InventoryItem.product_id"`)}
	}
	if _, ok := _c.mutation.PurchaseDate(); !ok {
		return &ValidationError{Name: "purchase_date", err: errors.New(`ent: missing required field "InventoryItem.purchase_date"`)}
	}
	if _, ok := _c.mutation.QuantityRemaining(); !ok {
		return &ValidationError{Name: "quantity_remaining", err: errors.New(`ent: missing required field "InventoryItem.quantity_remaining"`)}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required field "InventoryItem.unit"`)}
	}
	if v, ok := _c.mutation.Unit(); ok {
		if err := inventoryitem.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.unit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StorageLocation(); !ok {
		return &ValidationError{Name: "storage_location", err: errors.New(`ent: missing required field "InventoryItem.storage_location"`)}
	}
	if v, ok := _c.mutation.StorageLocation(); ok {
		if err := inventoryitem.StorageLocationValidator(v); err != nil {
			return &ValidationError{Name: "storage_location", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.storage_location": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "InventoryItem.batch_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InventoryItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "InventoryItem.updated_at"`)}
	}
	if len(_c.mutation.ProductIDs()) == 0 {
		return &ValidationError{Name: "product", err: errors.New(`ent: missing required edge "InventoryItem.product"`)}
	}
	return nil
}

func (_c *InventoryItemCreate) sqlSave(ctx context.Context) (*InventoryItem, error) {
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

func (_c *InventoryItemCreate) createSpec() (*InventoryItem, *sqlgraph.CreateSpec) {
	var (
		_node = &InventoryItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inventoryitem.Table, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PurchaseDate(); ok {
		_spec.SetField(inventoryitem.FieldPurchaseDate, field.TypeTime, value)
		_node.PurchaseDate = value
	}
	if value, ok := _c.mutation.ExpiryDate(); ok {
		_spec.SetField(inventoryitem.FieldExpiryDate, field.TypeTime, value)
		_node.ExpiryDate = &value
	}
	if value, ok := _c.mutation.QuantityRemaining(); ok {
		_spec.SetField(inventoryitem.FieldQuantityRemaining, field.TypeFloat64, value)
		_node.QuantityRemaining = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(inventoryitem.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.StorageLocation(); ok {
		_spec.SetField(inventoryitem.FieldStorageLocation, field.TypeString, value)
		_node.StorageLocation = value
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(inventoryitem.FieldBatchID, field.TypeString, value)
		_node.BatchID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(inventoryitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(inventoryitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inventoryitem.ProductTable,
			Columns: []string{inventoryitem.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProductID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConsumptionEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   inventoryitem.ConsumptionEventsTable,
			Columns: []string{inventoryitem.ConsumptionEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(consumptionevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InventoryItemCreateBulk is the builder for creating many InventoryItem entities in bulk.
type InventoryItemCreateBulk struct {
	config
	err      error
	builders []*InventoryItemCreate
}

// Save creates the InventoryItem entities in the database.
func (_c *InventoryItemCreateBulk) Save(ctx context.Context) ([]*InventoryItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InventoryItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InventoryItemMutation)
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
func (_c *InventoryItemCreateBulk) SaveX(ctx context.Context) []*InventoryItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InventoryItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InventoryItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
