// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/codemarcinu/pantry-tracker/gen/ent/predicate"
	"github.com/codemarcinu/pantry-tracker/gen/ent/product"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receipt"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receiptlineitem"
	"github.com/google/uuid"
)

// ReceiptLineItemUpdate is the builder for updating ReceiptLineItem entities.
type ReceiptLineItemUpdate struct {
	config
	hooks    []Hook
	mutation *ReceiptLineItemMutation
}

// Where appends a list predicates to the ReceiptLineItemUpdate builder.
func (_u *ReceiptLineItemUpdate) Where(ps ...predicate.ReceiptLineItem) *ReceiptLineItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReceiptID sets the "receipt_id" field.
func (_u *ReceiptLineItemUpdate) SetReceiptID(v uuid.UUID) *ReceiptLineItemUpdate {
	_u.mutation.SetReceiptID(v)
	return _u
}

// SetNillableReceiptID sets the "receipt_id" field if the given value is not nil.
func (_u *ReceiptLineItemUpdate) SetNillableReceiptID(v *uuid.UUID) *ReceiptLineItemUpdate {
	if v != nil {
		_u.SetReceiptID(*v)
	}
	return _u
}

// SetMatchedProductID sets the "matched_product_id" field.
func (_u *ReceiptLineItemUpdate) SetMatchedProductID(v uuid.UUID) *ReceiptLineItemUpdate {
	_u.mutation.SetMatchedProductID(v)
	return _u
}

// SetNillableMatchedProductID sets the "matched_product_id" field if the given value is not nil.
func (_u *ReceiptLineItemUpdate) SetNillableMatchedProductID(v *uuid.UUID) *ReceiptLineItemUpdate {
	if v != nil {
		_u.SetMatchedProductID(*v)
	}
	return _u
}

// ClearMatchedProductID clears the value of the "matched_product_id" field.
func (_u *ReceiptLineItemUpdate) ClearMatchedProductID() *ReceiptLineItemUpdate {
	_u.mutation.ClearMatchedProductID()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ReceiptLineItemUpdate) SetRawText(v string) *ReceiptLineItemUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ReceiptLineItemUpdate) SetNillableRawText(v *string) *ReceiptLineItemUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetProductName sets the "product_name" field.
func (_u *ReceiptLineItemUpdate) SetProductName(v string) *ReceiptLineItemUpdate {
	_u.mutation.SetProductName(v)
	return _u
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_u *ReceiptLineItemUpdate) SetNillableProductName(v *string) *ReceiptLineItemUpdate {
	if v != nil {
		_u.SetProductName(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *ReceiptLineItemUpdate) SetQuantity(v float64) *ReceiptLineItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *ReceiptLineItemUpdate) SetNillableQuantity(v *float64) *ReceiptLineItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *ReceiptLineItemUpdate) AddQuantity(v float64) *ReceiptLineItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *ReceiptLineItemUpdate) SetUnitPrice(v float64) *ReceiptLineItemUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *ReceiptLineItemUpdate) SetNillableUnitPrice(v *float64) *ReceiptLineItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *ReceiptLineItemUpdate) AddUnitPrice(v float64) *ReceiptLineItemUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetLineTotal sets the "line_total" field.
func (_u *ReceiptLineItemUpdate) SetLineTotal(v float64) *ReceiptLineItemUpdate {
	_u.mutation.ResetLineTotal()
	_u.mutation.SetLineTotal(v)
	return _u
}

// SetNillableLineTotal sets the "line_total" field if the given value is not nil.
func (_u *ReceiptLineItemUpdate) SetNillableLineTotal(v *float64) *ReceiptLineItemUpdate {
	if v != nil {
		_u.SetLineTotal(*v)
	}
	return _u
}

// AddLineTotal adds value to the "line_total" field.
func (_u *ReceiptLineItemUpdate) AddLineTotal(v float64) *ReceiptLineItemUpdate {
	_u.mutation.AddLineTotal(v)
	return _u
}

// SetVatCode sets the "vat_code" field.
func (_u *ReceiptLineItemUpdate) SetVatCode(v string) *ReceiptLineItemUpdate {
	_u.mutation.SetVatCode(v)
	return _u
}

// SetNillableVatCode sets the "vat_code" field if the given value is not nil.
func (_u *ReceiptLineItemUpdate) SetNillableVatCode(v *string) *ReceiptLineItemUpdate {
	if v != nil {
		_u.SetVatCode(*v)
	}
	return _u
}

// ClearVatCode clears the value of the "vat_code" field.
func (_u *ReceiptLineItemUpdate) ClearVatCode() *ReceiptLineItemUpdate {
	_u.mutation.ClearVatCode()
	return _u
}

// SetMeta sets the "meta" field.
func (_u *ReceiptLineItemUpdate) SetMeta(v json.RawMessage) *ReceiptLineItemUpdate {
	_u.mutation.SetMeta(v)
	return _u
}

// AppendMeta appends value to the "meta" field.
func (_u *ReceiptLineItemUpdate) AppendMeta(v json.RawMessage) *ReceiptLineItemUpdate {
	_u.mutation.AppendMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *ReceiptLineItemUpdate) ClearMeta() *ReceiptLineItemUpdate {
	_u.mutation.ClearMeta()
	return _u
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_u *ReceiptLineItemUpdate) SetReceipt(v *Receipt) *ReceiptLineItemUpdate {
	return _u.SetReceiptID(v.ID)
}

// SetMatchedProduct sets the "matched_product" edge to the Product entity.
func (_u *ReceiptLineItemUpdate) SetMatchedProduct(v *Product) *ReceiptLineItemUpdate {
	return _u.SetMatchedProductID(v.ID)
}

// Mutation returns the ReceiptLineItemMutation object of the builder.
func (_u *ReceiptLineItemUpdate) Mutation() *ReceiptLineItemMutation {
	return _u.mutation
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (_u *ReceiptLineItemUpdate) ClearReceipt() *ReceiptLineItemUpdate {
	_u.mutation.ClearReceipt()
	return _u
}

// ClearMatchedProduct clears the "matched_product" edge to the Product entity.
func (_u *ReceiptLineItemUpdate) ClearMatchedProduct() *ReceiptLineItemUpdate {
	_u.mutation.ClearMatchedProduct()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReceiptLineItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptLineItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReceiptLineItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptLineItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptLineItemUpdate) check() error {
	if v, ok := _u.mutation.RawText(); ok {
		if err := receiptlineitem.RawTextValidator(v); err != nil {
			return &ValidationError{Name: "raw_text", err: fmt.Errorf(`ent: validator failed for field "ReceiptLineItem.raw_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProductName(); ok {
		if err := receiptlineitem.ProductNameValidator(v); err != nil {
			return &ValidationError{Name: "product_name", err: fmt.Errorf(`ent: validator failed for field "ReceiptLineItem.product_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VatCode(); ok {
		if err := receiptlineitem.VatCodeValidator(v); err != nil {
			return &ValidationError{Name: "vat_code", err: fmt.Errorf(`ent: validator failed for field "ReceiptLineItem.vat_code": %w`, err)}
		}
	}
	if _u.mutation.ReceiptCleared() && len(_u.mutation.ReceiptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReceiptLineItem.receipt"`)
	}
	return nil
}

func (_u *ReceiptLineItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receiptlineitem.Table, receiptlineitem.Columns, sqlgraph.NewFieldSpec(receiptlineitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(receiptlineitem.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProductName(); ok {
		_spec.SetField(receiptlineitem.FieldProductName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(receiptlineitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(receiptlineitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(receiptlineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(receiptlineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LineTotal(); ok {
		_spec.SetField(receiptlineitem.FieldLineTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLineTotal(); ok {
		_spec.AddField(receiptlineitem.FieldLineTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VatCode(); ok {
		_spec.SetField(receiptlineitem.FieldVatCode, field.TypeString, value)
	}
	if _u.mutation.VatCodeCleared() {
		_spec.ClearField(receiptlineitem.FieldVatCode, field.TypeString)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(receiptlineitem.FieldMeta, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMeta(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, receiptlineitem.FieldMeta, value)
		})
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(receiptlineitem.FieldMeta, field.TypeJSON)
	}
	if _u.mutation.ReceiptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receiptlineitem.ReceiptTable,
			Columns: []string{receiptlineitem.ReceiptColumn},
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
			Table:   receiptlineitem.ReceiptTable,
			Columns: []string{receiptlineitem.ReceiptColumn},
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
	if _u.mutation.MatchedProductCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receiptlineitem.MatchedProductTable,
			Columns: []string{receiptlineitem.MatchedProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchedProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receiptlineitem.MatchedProductTable,
			Columns: []string{receiptlineitem.MatchedProductColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receiptlineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReceiptLineItemUpdateOne is the builder for updating a single ReceiptLineItem entity.
type ReceiptLineItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReceiptLineItemMutation
}

// SetReceiptID sets the "receipt_id" field.
func (_u *ReceiptLineItemUpdateOne) SetReceiptID(v uuid.UUID) *ReceiptLineItemUpdateOne {
	_u.mutation.SetReceiptID(v)
	return _u
}

// SetNillableReceiptID sets the "receipt_id" field if the given value is not nil.
func (_u *ReceiptLineItemUpdateOne) SetNillableReceiptID(v *uuid.UUID) *ReceiptLineItemUpdateOne {
	if v != nil {
		_u.SetReceiptID(*v)
	}
	return _u
}

// SetMatchedProductID sets the "matched_product_id" field.
func (_u *ReceiptLineItemUpdateOne) SetMatchedProductID(v uuid.UUID) *ReceiptLineItemUpdateOne {
	_u.mutation.SetMatchedProductID(v)
	return _u
}

// SetNillableMatchedProductID sets the "matched_product_id" field if the given value is not nil.
func (_u *ReceiptLineItemUpdateOne) SetNillableMatchedProductID(v *uuid.UUID) *ReceiptLineItemUpdateOne {
	if v != nil {
		_u.SetMatchedProductID(*v)
	}
	return _u
}

// ClearMatchedProductID clears the value of the "matched_product_id" field.
func (_u *ReceiptLineItemUpdateOne) ClearMatchedProductID() *ReceiptLineItemUpdateOne {
	_u.mutation.ClearMatchedProductID()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ReceiptLineItemUpdateOne) SetRawText(v string) *ReceiptLineItemUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ReceiptLineItemUpdateOne) SetNillableRawText(v *string) *ReceiptLineItemUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetProductName sets the "product_name" field.
func (_u *ReceiptLineItemUpdateOne) SetProductName(v string) *ReceiptLineItemUpdateOne {
	_u.mutation.SetProductName(v)
	return _u
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_u *ReceiptLineItemUpdateOne) SetNillableProductName(v *string) *ReceiptLineItemUpdateOne {
	if v != nil {
		_u.SetProductName(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *ReceiptLineItemUpdateOne) SetQuantity(v float64) *ReceiptLineItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *ReceiptLineItemUpdateOne) SetNillableQuantity(v *float64) *ReceiptLineItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *ReceiptLineItemUpdateOne) AddQuantity(v float64) *ReceiptLineItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *ReceiptLineItemUpdateOne) SetUnitPrice(v float64) *ReceiptLineItemUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *ReceiptLineItemUpdateOne) SetNillableUnitPrice(v *float64) *ReceiptLineItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *ReceiptLineItemUpdateOne) AddUnitPrice(v float64) *ReceiptLineItemUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetLineTotal sets the "line_total" field.
func (_u *ReceiptLineItemUpdateOne) SetLineTotal(v float64) *ReceiptLineItemUpdateOne {
	_u.mutation.ResetLineTotal()
	_u.mutation.SetLineTotal(v)
	return _u
}

// SetNillableLineTotal sets the "line_total" field if the given value is not nil.
func (_u *ReceiptLineItemUpdateOne) SetNillableLineTotal(v *float64) *ReceiptLineItemUpdateOne {
	if v != nil {
		_u.SetLineTotal(*v)
	}
	return _u
}

// AddLineTotal adds value to the "line_total" field.
func (_u *ReceiptLineItemUpdateOne) AddLineTotal(v float64) *ReceiptLineItemUpdateOne {
	_u.mutation.AddLineTotal(v)
	return _u
}

// SetVatCode sets the "vat_code" field.
func (_u *ReceiptLineItemUpdateOne) SetVatCode(v string) *ReceiptLineItemUpdateOne {
	_u.mutation.SetVatCode(v)
	return _u
}

// SetNillableVatCode sets the "vat_code" field if the given value is not nil.
func (_u *ReceiptLineItemUpdateOne) SetNillableVatCode(v *string) *ReceiptLineItemUpdateOne {
	if v != nil {
		_u.SetVatCode(*v)
	}
	return _u
}

// ClearVatCode clears the value of the "vat_code" field.
func (_u *ReceiptLineItemUpdateOne) ClearVatCode() *ReceiptLineItemUpdateOne {
	_u.mutation.ClearVatCode()
	return _u
}

// SetMeta sets the "meta" field.
func (_u *ReceiptLineItemUpdateOne) SetMeta(v json.RawMessage) *ReceiptLineItemUpdateOne {
	_u.mutation.SetMeta(v)
	return _u
}

// AppendMeta appends value to the "meta" field.
func (_u *ReceiptLineItemUpdateOne) AppendMeta(v json.RawMessage) *ReceiptLineItemUpdateOne {
	_u.mutation.AppendMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *ReceiptLineItemUpdateOne) ClearMeta() *ReceiptLineItemUpdateOne {
	_u.mutation.ClearMeta()
	return _u
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_u *ReceiptLineItemUpdateOne) SetReceipt(v *Receipt) *ReceiptLineItemUpdateOne {
	return _u.SetReceiptID(v.ID)
}

// SetMatchedProduct sets the "matched_product" edge to the Product entity.
func (_u *ReceiptLineItemUpdateOne) SetMatchedProduct(v *Product) *ReceiptLineItemUpdateOne {
	return _u.SetMatchedProductID(v.ID)
}

// Mutation returns the ReceiptLineItemMutation object of the builder.
func (_u *ReceiptLineItemUpdateOne) Mutation() *ReceiptLineItemMutation {
	return _u.mutation
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (_u *ReceiptLineItemUpdateOne) ClearReceipt() *ReceiptLineItemUpdateOne {
	_u.mutation.ClearReceipt()
	return _u
}

// ClearMatchedProduct clears the "matched_product" edge to the Product entity.
func (_u *ReceiptLineItemUpdateOne) ClearMatchedProduct() *ReceiptLineItemUpdateOne {
	_u.mutation.ClearMatchedProduct()
	return _u
}

// Where appends a list predicates to the ReceiptLineItemUpdate builder.
func (_u *ReceiptLineItemUpdateOne) Where(ps ...predicate.ReceiptLineItem) *ReceiptLineItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReceiptLineItemUpdateOne) Select(field string, fields ...string) *ReceiptLineItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReceiptLineItem entity.
func (_u *ReceiptLineItemUpdateOne) Save(ctx context.Context) (*ReceiptLineItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptLineItemUpdateOne) SaveX(ctx context.Context) *ReceiptLineItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReceiptLineItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptLineItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptLineItemUpdateOne) check() error {
	if v, ok := _u.mutation.RawText(); ok {
		if err := receiptlineitem.RawTextValidator(v); err != nil {
			return &ValidationError{Name: "raw_text", err: fmt.Errorf(`ent: validator failed for field "ReceiptLineItem.raw_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProductName(); ok {
		if err := receiptlineitem.ProductNameValidator(v); err != nil {
			return &ValidationError{Name: "product_name", err: fmt.Errorf(`ent: validator failed for field "ReceiptLineItem.product_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VatCode(); ok {
		if err := receiptlineitem.VatCodeValidator(v); err != nil {
			return &ValidationError{Name: "vat_code", err: fmt.Errorf(`ent: validator failed for field "ReceiptLineItem.vat_code": %w`, err)}
		}
	}
	if _u.mutation.ReceiptCleared() && len(_u.mutation.ReceiptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReceiptLineItem.receipt"`)
	}
	return nil
}

func (_u *ReceiptLineItemUpdateOne) sqlSave(ctx context.Context) (_node *ReceiptLineItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receiptlineitem.Table, receiptlineitem.Columns, sqlgraph.NewFieldSpec(receiptlineitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReceiptLineItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receiptlineitem.FieldID)
		for _, f := range fields {
			if !receiptlineitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != receiptlineitem.FieldID {
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
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(receiptlineitem.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProductName(); ok {
		_spec.SetField(receiptlineitem.FieldProductName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(receiptlineitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(receiptlineitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(receiptlineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(receiptlineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LineTotal(); ok {
		_spec.SetField(receiptlineitem.FieldLineTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLineTotal(); ok {
		_spec.AddField(receiptlineitem.FieldLineTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VatCode(); ok {
		_spec.SetField(receiptlineitem.FieldVatCode, field.TypeString, value)
	}
	if _u.mutation.VatCodeCleared() {
		_spec.ClearField(receiptlineitem.FieldVatCode, field.TypeString)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(receiptlineitem.FieldMeta, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMeta(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, receiptlineitem.FieldMeta, value)
		})
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(receiptlineitem.FieldMeta, field.TypeJSON)
	}
	if _u.mutation.ReceiptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receiptlineitem.ReceiptTable,
			Columns: []string{receiptlineitem.ReceiptColumn},
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
			Table:   receiptlineitem.ReceiptTable,
			Columns: []string{receiptlineitem.ReceiptColumn},
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
	if _u.mutation.MatchedProductCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receiptlineitem.MatchedProductTable,
			Columns: []string{receiptlineitem.MatchedProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchedProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receiptlineitem.MatchedProductTable,
			Columns: []string{receiptlineitem.MatchedProductColumn},
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
	_node = &ReceiptLineItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receiptlineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
