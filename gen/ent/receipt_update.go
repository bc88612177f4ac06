// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/codemarcinu/pantry-tracker/gen/ent/predicate"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receipt"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receiptlineitem"
	"github.com/codemarcinu/pantry-tracker/gen/ent/trainingsample"
	"github.com/google/uuid"
)

// ReceiptUpdate is the builder for updating Receipt entities.
type ReceiptUpdate struct {
	config
	hooks    []Hook
	mutation *ReceiptMutation
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdate) Where(ps ...predicate.Receipt) *ReceiptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStoreName sets the "store_name" field.
func (_u *ReceiptUpdate) SetStoreName(v string) *ReceiptUpdate {
	_u.mutation.SetStoreName(v)
	return _u
}

// SetNillableStoreName sets the "store_name" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableStoreName(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetStoreName(*v)
	}
	return _u
}

// ClearStoreName clears the value of the "store_name" field.
func (_u *ReceiptUpdate) ClearStoreName() *ReceiptUpdate {
	_u.mutation.ClearStoreName()
	return _u
}

// SetPurchasedAt sets the "purchased_at" field.
func (_u *ReceiptUpdate) SetPurchasedAt(v time.Time) *ReceiptUpdate {
	_u.mutation.SetPurchasedAt(v)
	return _u
}

// SetNillablePurchasedAt sets the "purchased_at" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillablePurchasedAt(v *time.Time) *ReceiptUpdate {
	if v != nil {
		_u.SetPurchasedAt(*v)
	}
	return _u
}

// ClearPurchasedAt clears the value of the "purchased_at" field.
func (_u *ReceiptUpdate) ClearPurchasedAt() *ReceiptUpdate {
	_u.mutation.ClearPurchasedAt()
	return _u
}

// SetTotal sets the "total" field.
func (_u *ReceiptUpdate) SetTotal(v float64) *ReceiptUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableTotal(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ReceiptUpdate) AddTotal(v float64) *ReceiptUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// ClearTotal clears the value of the "total" field.
func (_u *ReceiptUpdate) ClearTotal() *ReceiptUpdate {
	_u.mutation.ClearTotal()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ReceiptUpdate) SetCurrency(v string) *ReceiptUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableCurrency(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetRawExtraction sets the "raw_extraction" field.
func (_u *ReceiptUpdate) SetRawExtraction(v json.RawMessage) *ReceiptUpdate {
	_u.mutation.SetRawExtraction(v)
	return _u
}

// AppendRawExtraction appends value to the "raw_extraction" field.
func (_u *ReceiptUpdate) AppendRawExtraction(v json.RawMessage) *ReceiptUpdate {
	_u.mutation.AppendRawExtraction(v)
	return _u
}

// ClearRawExtraction clears the value of the "raw_extraction" field.
func (_u *ReceiptUpdate) ClearRawExtraction() *ReceiptUpdate {
	_u.mutation.ClearRawExtraction()
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *ReceiptUpdate) SetSourcePath(v string) *ReceiptUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableSourcePath(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ReceiptUpdate) SetContentHash(v string) *ReceiptUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableContentHash(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReceiptUpdate) SetStatus(v string) *ReceiptUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableStatus(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessingNotes sets the "processing_notes" field.
func (_u *ReceiptUpdate) SetProcessingNotes(v string) *ReceiptUpdate {
	_u.mutation.SetProcessingNotes(v)
	return _u
}

// SetNillableProcessingNotes sets the "processing_notes" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableProcessingNotes(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetProcessingNotes(*v)
	}
	return _u
}

// SetTotalDiff sets the "total_diff" field.
func (_u *ReceiptUpdate) SetTotalDiff(v float64) *ReceiptUpdate {
	_u.mutation.ResetTotalDiff()
	_u.mutation.SetTotalDiff(v)
	return _u
}

// SetNillableTotalDiff sets the "total_diff" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableTotalDiff(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetTotalDiff(*v)
	}
	return _u
}

// AddTotalDiff adds value to the "total_diff" field.
func (_u *ReceiptUpdate) AddTotalDiff(v float64) *ReceiptUpdate {
	_u.mutation.AddTotalDiff(v)
	return _u
}

// ClearTotalDiff clears the value of the "total_diff" field.
func (_u *ReceiptUpdate) ClearTotalDiff() *ReceiptUpdate {
	_u.mutation.ClearTotalDiff()
	return _u
}

// SetCancelled sets the "cancelled" field.
func (_u *ReceiptUpdate) SetCancelled(v bool) *ReceiptUpdate {
	_u.mutation.SetCancelled(v)
	return _u
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableCancelled(v *bool) *ReceiptUpdate {
	if v != nil {
		_u.SetCancelled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReceiptUpdate) SetUpdatedAt(v time.Time) *ReceiptUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddLineItemIDs adds the "line_items" edge to the ReceiptLineItem entity by IDs.
func (_u *ReceiptUpdate) AddLineItemIDs(ids ...uuid.UUID) *ReceiptUpdate {
	_u.mutation.AddLineItemIDs(ids...)
	return _u
}

// AddLineItems adds the "line_items" edges to the ReceiptLineItem entity.
func (_u *ReceiptUpdate) AddLineItems(v ...*ReceiptLineItem) *ReceiptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineItemIDs(ids...)
}

// AddTrainingSampleIDs adds the "training_samples" edge to the TrainingSample entity by IDs.
func (_u *ReceiptUpdate) AddTrainingSampleIDs(ids ...uuid.UUID) *ReceiptUpdate {
	_u.mutation.AddTrainingSampleIDs(ids...)
	return _u
}

// AddTrainingSamples adds the "training_samples" edges to the TrainingSample entity.
func (_u *ReceiptUpdate) AddTrainingSamples(v ...*TrainingSample) *ReceiptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrainingSampleIDs(ids...)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdate) Mutation() *ReceiptMutation {
	return _u.mutation
}

// ClearLineItems clears all "line_items" edges to the ReceiptLineItem entity.
func (_u *ReceiptUpdate) ClearLineItems() *ReceiptUpdate {
	_u.mutation.ClearLineItems()
	return _u
}

// RemoveLineItemIDs removes the "line_items" edge to ReceiptLineItem entities by IDs.
func (_u *ReceiptUpdate) RemoveLineItemIDs(ids ...uuid.UUID) *ReceiptUpdate {
	_u.mutation.RemoveLineItemIDs(ids...)
	return _u
}

// RemoveLineItems removes "line_items" edges to ReceiptLineItem entities.
func (_u *ReceiptUpdate) RemoveLineItems(v ...*ReceiptLineItem) *ReceiptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineItemIDs(ids...)
}

// ClearTrainingSamples clears all "training_samples" edges to the TrainingSample entity.
func (_u *ReceiptUpdate) ClearTrainingSamples() *ReceiptUpdate {
	_u.mutation.ClearTrainingSamples()
	return _u
}

// RemoveTrainingSampleIDs removes the "training_samples" edge to TrainingSample entities by IDs.
func (_u *ReceiptUpdate) RemoveTrainingSampleIDs(ids ...uuid.UUID) *ReceiptUpdate {
	_u.mutation.RemoveTrainingSampleIDs(ids...)
	return _u
}

// RemoveTrainingSamples removes "training_samples" edges to TrainingSample entities.
func (_u *ReceiptUpdate) RemoveTrainingSamples(v ...*TrainingSample) *ReceiptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrainingSampleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReceiptUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReceiptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReceiptUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := receipt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdate) check() error {
	if v, ok := _u.mutation.Currency(); ok {
		if err := receipt.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Receipt.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := receipt.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Receipt.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := receipt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Receipt.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReceiptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StoreName(); ok {
		_spec.SetField(receipt.FieldStoreName, field.TypeString, value)
	}
	if _u.mutation.StoreNameCleared() {
		_spec.ClearField(receipt.FieldStoreName, field.TypeString)
	}
	if value, ok := _u.mutation.PurchasedAt(); ok {
		_spec.SetField(receipt.FieldPurchasedAt, field.TypeTime, value)
	}
	if _u.mutation.PurchasedAtCleared() {
		_spec.ClearField(receipt.FieldPurchasedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(receipt.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(receipt.FieldTotal, field.TypeFloat64, value)
	}
	if _u.mutation.TotalCleared() {
		_spec.ClearField(receipt.FieldTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(receipt.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawExtraction(); ok {
		_spec.SetField(receipt.FieldRawExtraction, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawExtraction(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, receipt.FieldRawExtraction, value)
		})
	}
	if _u.mutation.RawExtractionCleared() {
		_spec.ClearField(receipt.FieldRawExtraction, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(receipt.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(receipt.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(receipt.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessingNotes(); ok {
		_spec.SetField(receipt.FieldProcessingNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalDiff(); ok {
		_spec.SetField(receipt.FieldTotalDiff, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalDiff(); ok {
		_spec.AddField(receipt.FieldTotalDiff, field.TypeFloat64, value)
	}
	if _u.mutation.TotalDiffCleared() {
		_spec.ClearField(receipt.FieldTotalDiff, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Cancelled(); ok {
		_spec.SetField(receipt.FieldCancelled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(receipt.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LineItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLineItemsIDs(); len(nodes) > 0 && !_u.mutation.LineItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LineItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TrainingSamplesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrainingSamplesIDs(); len(nodes) > 0 && !_u.mutation.TrainingSamplesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrainingSamplesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReceiptUpdateOne is the builder for updating a single Receipt entity.
type ReceiptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReceiptMutation
}

// SetStoreName sets the "store_name" field.
func (_u *ReceiptUpdateOne) SetStoreName(v string) *ReceiptUpdateOne {
	_u.mutation.SetStoreName(v)
	return _u
}

// SetNillableStoreName sets the "store_name" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableStoreName(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetStoreName(*v)
	}
	return _u
}

// ClearStoreName clears the value of the "store_name" field.
func (_u *ReceiptUpdateOne) ClearStoreName() *ReceiptUpdateOne {
	_u.mutation.ClearStoreName()
	return _u
}

// SetPurchasedAt sets the "purchased_at" field.
func (_u *ReceiptUpdateOne) SetPurchasedAt(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetPurchasedAt(v)
	return _u
}

// SetNillablePurchasedAt sets the "purchased_at" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillablePurchasedAt(v *time.Time) *ReceiptUpdateOne {
	if v != nil {
		_u.SetPurchasedAt(*v)
	}
	return _u
}

// ClearPurchasedAt clears the value of the "purchased_at" field.
func (_u *ReceiptUpdateOne) ClearPurchasedAt() *ReceiptUpdateOne {
	_u.mutation.ClearPurchasedAt()
	return _u
}

// SetTotal sets the "total" field.
func (_u *ReceiptUpdateOne) SetTotal(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableTotal(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ReceiptUpdateOne) AddTotal(v float64) *ReceiptUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// ClearTotal clears the value of the "total" field.
func (_u *ReceiptUpdateOne) ClearTotal() *ReceiptUpdateOne {
	_u.mutation.ClearTotal()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ReceiptUpdateOne) SetCurrency(v string) *ReceiptUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableCurrency(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetRawExtraction sets the "raw_extraction" field.
func (_u *ReceiptUpdateOne) SetRawExtraction(v json.RawMessage) *ReceiptUpdateOne {
	_u.mutation.SetRawExtraction(v)
	return _u
}

// AppendRawExtraction appends value to the "raw_extraction" field.
func (_u *ReceiptUpdateOne) AppendRawExtraction(v json.RawMessage) *ReceiptUpdateOne {
	_u.mutation.AppendRawExtraction(v)
	return _u
}

// ClearRawExtraction clears the value of the "raw_extraction" field.
func (_u *ReceiptUpdateOne) ClearRawExtraction() *ReceiptUpdateOne {
	_u.mutation.ClearRawExtraction()
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *ReceiptUpdateOne) SetSourcePath(v string) *ReceiptUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableSourcePath(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ReceiptUpdateOne) SetContentHash(v string) *ReceiptUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableContentHash(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReceiptUpdateOne) SetStatus(v string) *ReceiptUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableStatus(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessingNotes sets the "processing_notes" field.
func (_u *ReceiptUpdateOne) SetProcessingNotes(v string) *ReceiptUpdateOne {
	_u.mutation.SetProcessingNotes(v)
	return _u
}

// SetNillableProcessingNotes sets the "processing_notes" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableProcessingNotes(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetProcessingNotes(*v)
	}
	return _u
}

// SetTotalDiff sets the "total_diff" field.
func (_u *ReceiptUpdateOne) SetTotalDiff(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetTotalDiff()
	_u.mutation.SetTotalDiff(v)
	return _u
}

// SetNillableTotalDiff sets the "total_diff" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableTotalDiff(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetTotalDiff(*v)
	}
	return _u
}

// AddTotalDiff adds value to the "total_diff" field.
func (_u *ReceiptUpdateOne) AddTotalDiff(v float64) *ReceiptUpdateOne {
	_u.mutation.AddTotalDiff(v)
	return _u
}

// ClearTotalDiff clears the value of the "total_diff" field.
func (_u *ReceiptUpdateOne) ClearTotalDiff() *ReceiptUpdateOne {
	_u.mutation.ClearTotalDiff()
	return _u
}

// SetCancelled sets the "cancelled" field.
func (_u *ReceiptUpdateOne) SetCancelled(v bool) *ReceiptUpdateOne {
	_u.mutation.SetCancelled(v)
	return _u
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableCancelled(v *bool) *ReceiptUpdateOne {
	if v != nil {
		_u.SetCancelled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReceiptUpdateOne) SetUpdatedAt(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddLineItemIDs adds the "line_items" edge to the ReceiptLineItem entity by IDs.
func (_u *ReceiptUpdateOne) AddLineItemIDs(ids ...uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.AddLineItemIDs(ids...)
	return _u
}

// AddLineItems adds the "line_items" edges to the ReceiptLineItem entity.
func (_u *ReceiptUpdateOne) AddLineItems(v ...*ReceiptLineItem) *ReceiptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineItemIDs(ids...)
}

// AddTrainingSampleIDs adds the "training_samples" edge to the TrainingSample entity by IDs.
func (_u *ReceiptUpdateOne) AddTrainingSampleIDs(ids ...uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.AddTrainingSampleIDs(ids...)
	return _u
}

// AddTrainingSamples adds the "training_samples" edges to the TrainingSample entity.
func (_u *ReceiptUpdateOne) AddTrainingSamples(v ...*TrainingSample) *ReceiptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrainingSampleIDs(ids...)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdateOne) Mutation() *ReceiptMutation {
	return _u.mutation
}

// ClearLineItems clears all "line_items" edges to the ReceiptLineItem entity.
func (_u *ReceiptUpdateOne) ClearLineItems() *ReceiptUpdateOne {
	_u.mutation.ClearLineItems()
	return _u
}

// RemoveLineItemIDs removes the "line_items" edge to ReceiptLineItem entities by IDs.
func (_u *ReceiptUpdateOne) RemoveLineItemIDs(ids ...uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.RemoveLineItemIDs(ids...)
	return _u
}

// RemoveLineItems removes "line_items" edges to ReceiptLineItem entities.
func (_u *ReceiptUpdateOne) RemoveLineItems(v ...*ReceiptLineItem) *ReceiptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineItemIDs(ids...)
}

// ClearTrainingSamples clears all "training_samples" edges to the TrainingSample entity.
func (_u *ReceiptUpdateOne) ClearTrainingSamples() *ReceiptUpdateOne {
	_u.mutation.ClearTrainingSamples()
	return _u
}

// RemoveTrainingSampleIDs removes the "training_samples" edge to TrainingSample entities by IDs.
func (_u *ReceiptUpdateOne) RemoveTrainingSampleIDs(ids ...uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.RemoveTrainingSampleIDs(ids...)
	return _u
}

// RemoveTrainingSamples removes "training_samples" edges to TrainingSample entities.
func (_u *ReceiptUpdateOne) RemoveTrainingSamples(v ...*TrainingSample) *ReceiptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrainingSampleIDs(ids...)
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdateOne) Where(ps ...predicate.Receipt) *ReceiptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReceiptUpdateOne) Select(field string, fields ...string) *ReceiptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Receipt entity.
func (_u *ReceiptUpdateOne) Save(ctx context.Context) (*Receipt, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdateOne) SaveX(ctx context.Context) *Receipt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReceiptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReceiptUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := receipt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdateOne) check() error {
	if v, ok := _u.mutation.Currency(); ok {
		if err := receipt.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Receipt.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := receipt.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Receipt.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := receipt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Receipt.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReceiptUpdateOne) sqlSave(ctx context.Context) (_node *Receipt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Receipt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receipt.FieldID)
		for _, f := range fields {
			if !receipt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != receipt.FieldID {
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
	if value, ok := _u.mutation.StoreName(); ok {
		_spec.SetField(receipt.FieldStoreName, field.TypeString, value)
	}
	if _u.mutation.StoreNameCleared() {
		_spec.ClearField(receipt.FieldStoreName, field.TypeString)
	}
	if value, ok := _u.mutation.PurchasedAt(); ok {
		_spec.SetField(receipt.FieldPurchasedAt, field.TypeTime, value)
	}
	if _u.mutation.PurchasedAtCleared() {
		_spec.ClearField(receipt.FieldPurchasedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(receipt.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(receipt.FieldTotal, field.TypeFloat64, value)
	}
	if _u.mutation.TotalCleared() {
		_spec.ClearField(receipt.FieldTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(receipt.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawExtraction(); ok {
		_spec.SetField(receipt.FieldRawExtraction, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawExtraction(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, receipt.FieldRawExtraction, value)
		})
	}
	if _u.mutation.RawExtractionCleared() {
		_spec.ClearField(receipt.FieldRawExtraction, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(receipt.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(receipt.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(receipt.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessingNotes(); ok {
		_spec.SetField(receipt.FieldProcessingNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalDiff(); ok {
		_spec.SetField(receipt.FieldTotalDiff, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalDiff(); ok {
		_spec.AddField(receipt.FieldTotalDiff, field.TypeFloat64, value)
	}
	if _u.mutation.TotalDiffCleared() {
		_spec.ClearField(receipt.FieldTotalDiff, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Cancelled(); ok {
		_spec.SetField(receipt.FieldCancelled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(receipt.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LineItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLineItemsIDs(); len(nodes) > 0 && !_u.mutation.LineItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LineItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TrainingSamplesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrainingSamplesIDs(); len(nodes) > 0 && !_u.mutation.TrainingSamplesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrainingSamplesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Receipt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
