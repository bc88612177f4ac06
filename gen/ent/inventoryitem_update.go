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
	"github.com/codemarcinu/pantry-tracker/gen/ent/product"
	"github.com/google/uuid"
)

// InventoryItemUpdate is the builder for updating InventoryItem entities.
type InventoryItemUpdate struct {
	config
	hooks    []Hook
	mutation *InventoryItemMutation
}

// Where appends a list predicates to the InventoryItemUpdate builder.
func (_u *InventoryItemUpdate) Where(ps ...predicate.InventoryItem) *InventoryItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *InventoryItemUpdate) SetProductID(v uuid.UUID) *InventoryItemUpdate {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableProductID(v *uuid.UUID) *InventoryItemUpdate {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *InventoryItemUpdate) SetExpiryDate(v time.Time) *InventoryItemUpdate {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableExpiryDate(v *time.Time) *InventoryItemUpdate {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *InventoryItemUpdate) ClearExpiryDate() *InventoryItemUpdate {
	_u.mutation.ClearExpiryDate()
	return _u
}

// SetQuantityRemaining sets the "quantity_remaining" field.
func (_u *InventoryItemUpdate) SetQuantityRemaining(v float64) *InventoryItemUpdate {
	_u.mutation.ResetQuantityRemaining()
	_u.mutation.SetQuantityRemaining(v)
	return _u
}

// SetNillableQuantityRemaining sets the "quantity_remaining" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableQuantityRemaining(v *float64) *InventoryItemUpdate {
	if v != nil {
		_u.SetQuantityRemaining(*v)
	}
	return _u
}

// AddQuantityRemaining adds value to the "quantity_remaining" field.
func (_u *InventoryItemUpdate) AddQuantityRemaining(v float64) *InventoryItemUpdate {
	_u.mutation.AddQuantityRemaining(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *InventoryItemUpdate) SetUnit(v string) *InventoryItemUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableUnit(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetStorageLocation sets the "storage_location" field.
func (_u *InventoryItemUpdate) SetStorageLocation(v string) *InventoryItemUpdate {
	_u.mutation.SetStorageLocation(v)
	return _u
}

// SetNillableStorageLocation sets the "storage_location" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableStorageLocation(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetStorageLocation(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *InventoryItemUpdate) SetBatchID(v string) *InventoryItemUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableBatchID(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InventoryItemUpdate) SetUpdatedAt(v time.Time) *InventoryItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *InventoryItemUpdate) SetProduct(v *Product) *InventoryItemUpdate {
	return _u.SetProductID(v.ID)
}

// AddConsumptionEventIDs adds the "consumption_events" edge to the ConsumptionEvent entity by IDs.
func (_u *InventoryItemUpdate) AddConsumptionEventIDs(ids ...uuid.UUID) *InventoryItemUpdate {
	_u.mutation.AddConsumptionEventIDs(ids...)
	return _u
}

// AddConsumptionEvents adds the "consumption_events" edges to the ConsumptionEvent entity.
func (_u *InventoryItemUpdate) AddConsumptionEvents(v ...*ConsumptionEvent) *InventoryItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConsumptionEventIDs(ids...)
}

// Mutation returns the InventoryItemMutation object of the builder.
func (_u *InventoryItemUpdate) Mutation() *InventoryItemMutation {
	return _u.mutation
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *InventoryItemUpdate) ClearProduct() *InventoryItemUpdate {
	_u.mutation.ClearProduct()
	return _u
}

// ClearConsumptionEvents clears all "consumption_events" edges to the ConsumptionEvent entity.
func (_u *InventoryItemUpdate) ClearConsumptionEvents() *InventoryItemUpdate {
	_u.mutation.ClearConsumptionEvents()
	return _u
}

// RemoveConsumptionEventIDs removes the "consumption_events" edge to ConsumptionEvent entities by IDs.
func (_u *InventoryItemUpdate) RemoveConsumptionEventIDs(ids ...uuid.UUID) *InventoryItemUpdate {
	_u.mutation.RemoveConsumptionEventIDs(ids...)
	return _u
}

// RemoveConsumptionEvents removes "consumption_events" edges to ConsumptionEvent entities.
func (_u *InventoryItemUpdate) RemoveConsumptionEvents(v ...*ConsumptionEvent) *InventoryItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConsumptionEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InventoryItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InventoryItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InventoryItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InventoryItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InventoryItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := inventoryitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InventoryItemUpdate) check() error {
	if v, ok := _u.mutation.Unit(); ok {
		if err := inventoryitem.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageLocation(); ok {
		if err := inventoryitem.StorageLocationValidator(v); err != nil {
			return &ValidationError{Name: "storage_location", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.storage_location": %w`, err)}
		}
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InventoryItem.product"`)
	}
	return nil
}

func (_u *InventoryItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inventoryitem.Table, inventoryitem.Columns, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(inventoryitem.FieldExpiryDate, field.TypeTime, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(inventoryitem.FieldExpiryDate, field.TypeTime)
	}
	if value, ok := _u.mutation.QuantityRemaining(); ok {
		_spec.SetField(inventoryitem.FieldQuantityRemaining, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantityRemaining(); ok {
		_spec.AddField(inventoryitem.FieldQuantityRemaining, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(inventoryitem.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageLocation(); ok {
		_spec.SetField(inventoryitem.FieldStorageLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(inventoryitem.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(inventoryitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProductCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConsumptionEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConsumptionEventsIDs(); len(nodes) > 0 && !_u.mutation.ConsumptionEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConsumptionEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inventoryitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InventoryItemUpdateOne is the builder for updating a single InventoryItem entity.
type InventoryItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InventoryItemMutation
}

// SetProductID sets the "product_id" field.
func (_u *InventoryItemUpdateOne) SetProductID(v uuid.UUID) *InventoryItemUpdateOne {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableProductID(v *uuid.UUID) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *InventoryItemUpdateOne) SetExpiryDate(v time.Time) *InventoryItemUpdateOne {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableExpiryDate(v *time.Time) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *InventoryItemUpdateOne) ClearExpiryDate() *InventoryItemUpdateOne {
	_u.mutation.ClearExpiryDate()
	return _u
}

// SetQuantityRemaining sets the "quantity_remaining" field.
func (_u *InventoryItemUpdateOne) SetQuantityRemaining(v float64) *InventoryItemUpdateOne {
	_u.mutation.ResetQuantityRemaining()
	_u.mutation.SetQuantityRemaining(v)
	return _u
}

// SetNillableQuantityRemaining sets the "quantity_remaining" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableQuantityRemaining(v *float64) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetQuantityRemaining(*v)
	}
	return _u
}

// AddQuantityRemaining adds value to the "quantity_remaining" field.
func (_u *InventoryItemUpdateOne) AddQuantityRemaining(v float64) *InventoryItemUpdateOne {
	_u.mutation.AddQuantityRemaining(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *InventoryItemUpdateOne) SetUnit(v string) *InventoryItemUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableUnit(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetStorageLocation sets the "storage_location" field.
func (_u *InventoryItemUpdateOne) SetStorageLocation(v string) *InventoryItemUpdateOne {
	_u.mutation.SetStorageLocation(v)
	return _u
}

// SetNillableStorageLocation sets the "storage_location" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableStorageLocation(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetStorageLocation(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *InventoryItemUpdateOne) SetBatchID(v string) *InventoryItemUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableBatchID(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InventoryItemUpdateOne) SetUpdatedAt(v time.Time) *InventoryItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *InventoryItemUpdateOne) SetProduct(v *Product) *InventoryItemUpdateOne {
	return _u.SetProductID(v.ID)
}

// AddConsumptionEventIDs adds the "consumption_events" edge to the ConsumptionEvent entity by IDs.
func (_u *InventoryItemUpdateOne) AddConsumptionEventIDs(ids ...uuid.UUID) *InventoryItemUpdateOne {
	_u.mutation.AddConsumptionEventIDs(ids...)
	return _u
}

// AddConsumptionEvents adds the "consumption_events" edges to the ConsumptionEvent entity.
func (_u *InventoryItemUpdateOne) AddConsumptionEvents(v ...*ConsumptionEvent) *InventoryItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConsumptionEventIDs(ids...)
}

// Mutation returns the InventoryItemMutation object of the builder.
func (_u *InventoryItemUpdateOne) Mutation() *InventoryItemMutation {
	return _u.mutation
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *InventoryItemUpdateOne) ClearProduct() *InventoryItemUpdateOne {
	_u.mutation.ClearProduct()
	return _u
}

// ClearConsumptionEvents clears all "consumption_events" edges to the ConsumptionEvent entity.
func (_u *InventoryItemUpdateOne) ClearConsumptionEvents() *InventoryItemUpdateOne {
	_u.mutation.ClearConsumptionEvents()
	return _u
}

// RemoveConsumptionEventIDs removes the "consumption_events" edge to ConsumptionEvent entities by IDs.
func (_u *InventoryItemUpdateOne) RemoveConsumptionEventIDs(ids ...uuid.UUID) *InventoryItemUpdateOne {
	_u.mutation.RemoveConsumptionEventIDs(ids...)
	return _u
}

// RemoveConsumptionEvents removes "consumption_events" edges to ConsumptionEvent entities.
func (_u *InventoryItemUpdateOne) RemoveConsumptionEvents(v ...*ConsumptionEvent) *InventoryItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConsumptionEventIDs(ids...)
}

// Where appends a list predicates to the InventoryItemUpdate builder.
func (_u *InventoryItemUpdateOne) Where(ps ...predicate.InventoryItem) *InventoryItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InventoryItemUpdateOne) Select(field string, fields ...string) *InventoryItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InventoryItem entity.
func (_u *InventoryItemUpdateOne) Save(ctx context.Context) (*InventoryItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InventoryItemUpdateOne) SaveX(ctx context.Context) *InventoryItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InventoryItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InventoryItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InventoryItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := inventoryitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InventoryItemUpdateOne) check() error {
	if v, ok := _u.mutation.Unit(); ok {
		if err := inventoryitem.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageLocation(); ok {
		if err := inventoryitem.StorageLocationValidator(v); err != nil {
			return &ValidationError{Name: "storage_location", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.storage_location": %w`, err)}
		}
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InventoryItem.product"`)
	}
	return nil
}

func (_u *InventoryItemUpdateOne) sqlSave(ctx context.Context) (_node *InventoryItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inventoryitem.Table, inventoryitem.Columns, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InventoryItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inventoryitem.FieldID)
		for _, f := range fields {
			if !inventoryitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != inventoryitem.FieldID {
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
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(inventoryitem.FieldExpiryDate, field.TypeTime, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(inventoryitem.FieldExpiryDate, field.TypeTime)
	}
	if value, ok := _u.mutation.QuantityRemaining(); ok {
		_spec.SetField(inventoryitem.FieldQuantityRemaining, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantityRemaining(); ok {
		_spec.AddField(inventoryitem.FieldQuantityRemaining, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(inventoryitem.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageLocation(); ok {
		_spec.SetField(inventoryitem.FieldStorageLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(inventoryitem.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(inventoryitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProductCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConsumptionEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConsumptionEventsIDs(); len(nodes) > 0 && !_u.mutation.ConsumptionEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConsumptionEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InventoryItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inventoryitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
