// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codemarcinu/pantry-tracker/gen/ent/product"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receipt"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receiptlineitem"
	"github.com/google/uuid"
)

// ReceiptLineItemCreate is the builder for creating a ReceiptLineItem entity.
type ReceiptLineItemCreate struct {
	config
	mutation *ReceiptLineItemMutation
	hooks    []Hook
}

// SetReceiptID sets the "receipt_id" field.
func (_c *ReceiptLineItemCreate) SetReceiptID(v uuid.UUID) *ReceiptLineItemCreate {
	_c.mutation.SetReceiptID(v)
	return _c
}

// SetMatchedProductID sets the "matched_product_id" field.
func (_c *ReceiptLineItemCreate) SetMatchedProductID(v uuid.UUID) *ReceiptLineItemCreate {
	_c.mutation.SetMatchedProductID(v)
	return _c
}

// SetNillableMatchedProductID sets the "matched_product_id" field if the given value is not nil.
func (_c *ReceiptLineItemCreate) SetNillableMatchedProductID(v *uuid.UUID) *ReceiptLineItemCreate {
	if v != nil {
		_c.SetMatchedProductID(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *ReceiptLineItemCreate) SetRawText(v string) *ReceiptLineItemCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetProductName sets the "product_name" field.
func (_c *ReceiptLineItemCreate) SetProductName(v string) *ReceiptLineItemCreate {
	_c.mutation.SetProductName(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *ReceiptLineItemCreate) SetQuantity(v float64) *ReceiptLineItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *ReceiptLineItemCreate) SetUnitPrice(v float64) *ReceiptLineItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetLineTotal sets the "line_total" field.
func (_c *ReceiptLineItemCreate) SetLineTotal(v float64) *ReceiptLineItemCreate {
	_c.mutation.SetLineTotal(v)
	return _c
}

// SetVatCode sets the "vat_code" field.
func (_c *ReceiptLineItemCreate) SetVatCode(v string) *ReceiptLineItemCreate {
	_c.mutation.SetVatCode(v)
	return _c
}

// SetNillableVatCode sets the "vat_code" field if the given value is not nil.
func (_c *ReceiptLineItemCreate) SetNillableVatCode(v *string) *ReceiptLineItemCreate {
	if v != nil {
		_c.SetVatCode(*v)
	}
	return _c
}

// SetMeta sets the "meta" field.
func (_c *ReceiptLineItemCreate) SetMeta(v json.RawMessage) *ReceiptLineItemCreate {
	_c.mutation.SetMeta(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ReceiptLineItemCreate) SetID(v uuid.UUID) *ReceiptLineItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReceiptLineItemCreate) SetNillableID(v *uuid.UUID) *ReceiptLineItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_c *ReceiptLineItemCreate) SetReceipt(v *Receipt) *ReceiptLineItemCreate {
	return _c.SetReceiptID(v.ID)
}

// SetMatchedProduct sets the "matched_product" edge to the Product entity.
func (_c *ReceiptLineItemCreate) SetMatchedProduct(v *Product) *ReceiptLineItemCreate {
	return _c.SetMatchedProductID(v.ID)
}

// Mutation returns the ReceiptLineItemMutation object of the builder.
func (_c *ReceiptLineItemCreate) Mutation() *ReceiptLineItemMutation {
	return _c.mutation
}

// Save creates the ReceiptLineItem in the database.
func (_c *ReceiptLineItemCreate) Save(ctx context.Context) (*ReceiptLineItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReceiptLineItemCreate) SaveX(ctx context.Context) *ReceiptLineItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptLineItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptLineItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReceiptLineItemCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := receiptlineitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReceiptLineItemCreate) check() error {
	if _, ok := _c.mutation.ReceiptID(); !ok {
		return &ValidationError{Name: "receipt_id", err: errors.New(`ent: missing required field "ReceiptLineItem.receipt_id"`)}
	}
	if _, ok := _c.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "ReceiptLineItem.raw_text"`)}
	}
	if v, ok := _c.mutation.RawText(); ok {
		if err := receiptlineitem.RawTextValidator(v); err != nil {
			return &ValidationError{Name: "raw_text", err: fmt.Errorf(`ent: validator failed for field "ReceiptLineItem.raw_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProductName(); !ok {
		return &ValidationError{Name: "product_name", err: errors.New(`ent: missing required field "ReceiptLineItem.product_name"`)}
	}
	if v, ok := _c.mutation.ProductName(); ok {
		if err := receiptlineitem.ProductNameValidator(v); err != nil {
			return &ValidationError{Name: "product_name", err: fmt.Errorf(`ent: validator failed for field "ReceiptLineItem.product_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "ReceiptLineItem.quantity"`)}
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		return &ValidationError{Name: "unit_price", err: errors.New(`ent: missing required field "ReceiptLineItem.unit_price"`)}
	}
	if _, ok := _c.mutation.LineTotal(); !ok {
		return &ValidationError{Name: "line_total", err: errors.New(`ent: missing required field "ReceiptLineItem.line_total"`)}
	}
	if v, ok := _c.mutation.VatCode(); ok {
		if err := receiptlineitem.VatCodeValidator(v); err != nil {
			return &ValidationError{Name: "vat_code", err: fmt.Errorf(`ent: validator failed for field "ReceiptLineItem.vat_code": %w`, err)}
		}
	}
	if len(_c.mutation.ReceiptIDs()) == 0 {
		return &ValidationError{Name: "receipt", err: errors.New(`ent: missing required edge "ReceiptLineItem.receipt"`)}
	}
	return nil
}

func (_c *ReceiptLineItemCreate) sqlSave(ctx context.Context) (*ReceiptLineItem, error) {
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

func (_c *ReceiptLineItemCreate) createSpec() (*ReceiptLineItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ReceiptLineItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(receiptlineitem.Table, sqlgraph.NewFieldSpec(receiptlineitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(receiptlineitem.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.ProductName(); ok {
		_spec.SetField(receiptlineitem.FieldProductName, field.TypeString, value)
		_node.ProductName = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(receiptlineitem.FieldQuantity, field.TypeFloat64, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(receiptlineitem.FieldUnitPrice, field.TypeFloat64, value)
		_node.UnitPrice = value
	}
	if value, ok := _c.mutation.LineTotal(); ok {
		_spec.SetField(receiptlineitem.FieldLineTotal, field.TypeFloat64, value)
		_node.LineTotal = value
	}
	if value, ok := _c.mutation.VatCode(); ok {
		_spec.SetField(receiptlineitem.FieldVatCode, field.TypeString, value)
		_node.VatCode = &value
	}
	if value, ok := _c.mutation.Meta(); ok {
		_spec.SetField(receiptlineitem.FieldMeta, field.TypeJSON, value)
		_node.Meta = value
	}
	if nodes := _c.mutation.ReceiptIDs(); len(nodes) > 0 {
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
		_node.ReceiptID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MatchedProductIDs(); len(nodes) > 0 {
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
		_node.MatchedProductID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReceiptLineItemCreateBulk is the builder for creating many ReceiptLineItem entities in bulk.
type ReceiptLineItemCreateBulk struct {
	config
	err      error
	builders []*ReceiptLineItemCreate
}

// Save creates the ReceiptLineItem entities in the database.
func (_c *ReceiptLineItemCreateBulk) Save(ctx context.Context) ([]*ReceiptLineItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReceiptLineItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReceiptLineItemMutation)
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
func (_c *ReceiptLineItemCreateBulk) SaveX(ctx context.Context) []*ReceiptLineItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptLineItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptLineItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
