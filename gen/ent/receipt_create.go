// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receipt"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receiptlineitem"
	"github.com/codemarcinu/pantry-tracker/gen/ent/trainingsample"
	"github.com/google/uuid"
)

// ReceiptCreate is the builder for creating a Receipt entity.
type ReceiptCreate struct {
	config
	mutation *ReceiptMutation
	hooks    []Hook
}

// SetStoreName sets the "store_name" field.
func (_c *ReceiptCreate) SetStoreName(v string) *ReceiptCreate {
	_c.mutation.SetStoreName(v)
	return _c
}

// SetNillableStoreName sets the "store_name" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableStoreName(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetStoreName(*v)
	}
	return _c
}

// SetPurchasedAt sets the "purchased_at" field.
func (_c *ReceiptCreate) SetPurchasedAt(v time.Time) *ReceiptCreate {
	_c.mutation.SetPurchasedAt(v)
	return _c
}

// SetNillablePurchasedAt sets the "purchased_at" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillablePurchasedAt(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetPurchasedAt(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *ReceiptCreate) SetTotal(v float64) *ReceiptCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableTotal(v *float64) *ReceiptCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *ReceiptCreate) SetCurrency(v string) *ReceiptCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableCurrency(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetRawExtraction sets the "raw_extraction" field.
func (_c *ReceiptCreate) SetRawExtraction(v json.RawMessage) *ReceiptCreate {
	_c.mutation.SetRawExtraction(v)
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *ReceiptCreate) SetSourcePath(v string) *ReceiptCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *ReceiptCreate) SetContentHash(v string) *ReceiptCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableContentHash(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetContentHash(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReceiptCreate) SetStatus(v string) *ReceiptCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableStatus(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProcessingNotes sets the "processing_notes" field.
func (_c *ReceiptCreate) SetProcessingNotes(v string) *ReceiptCreate {
	_c.mutation.SetProcessingNotes(v)
	return _c
}

// SetNillableProcessingNotes sets the "processing_notes" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableProcessingNotes(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetProcessingNotes(*v)
	}
	return _c
}

// SetTotalDiff sets the "total_diff" field.
func (_c *ReceiptCreate) SetTotalDiff(v float64) *ReceiptCreate {
	_c.mutation.SetTotalDiff(v)
	return _c
}

// SetNillableTotalDiff sets the "total_diff" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableTotalDiff(v *float64) *ReceiptCreate {
	if v != nil {
		_c.SetTotalDiff(*v)
	}
	return _c
}

// SetCancelled sets the "cancelled" field.
func (_c *ReceiptCreate) SetCancelled(v bool) *ReceiptCreate {
	_c.mutation.SetCancelled(v)
	return _c
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableCancelled(v *bool) *ReceiptCreate {
	if v != nil {
		_c.SetCancelled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReceiptCreate) SetCreatedAt(v time.Time) *ReceiptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableCreatedAt(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReceiptCreate) SetUpdatedAt(v time.Time) *ReceiptCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableUpdatedAt(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReceiptCreate) SetID(v uuid.UUID) *ReceiptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableID(v *uuid.UUID) *ReceiptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddLineItemIDs adds the "line_items" edge to the ReceiptLineItem entity by IDs.
func (_c *ReceiptCreate) AddLineItemIDs(ids ...uuid.UUID) *ReceiptCreate {
	_c.mutation.AddLineItemIDs(ids...)
	return _c
}

// AddLineItems adds the "line_items" edges to the ReceiptLineItem entity.
func (_c *ReceiptCreate) AddLineItems(v ...*ReceiptLineItem) *ReceiptCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLineItemIDs(ids...)
}

// AddTrainingSampleIDs adds the "training_samples" edge to the TrainingSample entity by IDs.
func (_c *ReceiptCreate) AddTrainingSampleIDs(ids ...uuid.UUID) *ReceiptCreate {
	_c.mutation.AddTrainingSampleIDs(ids...)
	return _c
}

// AddTrainingSamples adds the "training_samples" edges to the TrainingSample entity.
func (_c *ReceiptCreate) AddTrainingSamples(v ...*TrainingSample) *ReceiptCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTrainingSampleIDs(ids...)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_c *ReceiptCreate) Mutation() *ReceiptMutation {
	return _c.mutation
}

// Save creates the Receipt in the database.
func (_c *ReceiptCreate) Save(ctx context.Context) (*Receipt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReceiptCreate) SaveX(ctx context.Context) *Receipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReceiptCreate) defaults() {
	if _, ok := _c.mutation.Currency(); !ok {
		v := receipt.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		v := receipt.DefaultContentHash
		_c.mutation.SetContentHash(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := receipt.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ProcessingNotes(); !ok {
		v := receipt.DefaultProcessingNotes
		_c.mutation.SetProcessingNotes(v)
	}
	if _, ok := _c.mutation.Cancelled(); !ok {
		v := receipt.DefaultCancelled
		_c.mutation.SetCancelled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := receipt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := receipt.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := receipt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReceiptCreate) check() error {
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Receipt.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := receipt.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Receipt.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "Receipt.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := receipt.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Receipt.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Receipt.content_hash"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Receipt.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := receipt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Receipt.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessingNotes(); !ok {
		return &ValidationError{Name: "processing_notes", err: errors.New(`ent: missing required field "Receipt.processing_notes"`)}
	}
	if _, ok := _c.mutation.Cancelled(); !ok {
		return &ValidationError{Name: "cancelled", err: errors.New(`ent: missing required field "Receipt.cancelled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Receipt.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Receipt.updated_at"`)}
	}
	return nil
}

func (_c *ReceiptCreate) sqlSave(ctx context.Context) (*Receipt, error) {
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

func (_c *ReceiptCreate) createSpec() (*Receipt, *sqlgraph.CreateSpec) {
	var (
		_node = &Receipt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(receipt.Table, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StoreName(); ok {
		_spec.SetField(receipt.FieldStoreName, field.TypeString, value)
		_node.StoreName = &value
	}
	if value, ok := _c.mutation.PurchasedAt(); ok {
		_spec.SetField(receipt.FieldPurchasedAt, field.TypeTime, value)
		_node.PurchasedAt = &value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(receipt.FieldTotal, field.TypeFloat64, value)
		_node.Total = &value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(receipt.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.RawExtraction(); ok {
		_spec.SetField(receipt.FieldRawExtraction, field.TypeJSON, value)
		_node.RawExtraction = value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(receipt.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(receipt.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(receipt.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ProcessingNotes(); ok {
		_spec.SetField(receipt.FieldProcessingNotes, field.TypeString, value)
		_node.ProcessingNotes = value
	}
	if value, ok := _c.mutation.TotalDiff(); ok {
		_spec.SetField(receipt.FieldTotalDiff, field.TypeFloat64, value)
		_node.TotalDiff = &value
	}
	if value, ok := _c.mutation.Cancelled(); ok {
		_spec.SetField(receipt.FieldCancelled, field.TypeBool, value)
		_node.Cancelled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(receipt.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LineItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.LineItemsTable,
			Columns: []string{receipt.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptlineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TrainingSamplesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.TrainingSamplesTable,
			Columns: []string{receipt.TrainingSamplesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trainingsample.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReceiptCreateBulk is the builder for creating many Receipt entities in bulk.
type ReceiptCreateBulk struct {
	config
	err      error
	builders []*ReceiptCreate
}

// Save creates the Receipt entities in the database.
func (_c *ReceiptCreateBulk) Save(ctx context.Context) ([]*Receipt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Receipt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReceiptMutation)
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
func (_c *ReceiptCreateBulk) SaveX(ctx context.Context) []*Receipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
