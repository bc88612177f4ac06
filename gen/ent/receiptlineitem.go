// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codemarcinu/pantry-tracker/gen/ent/product"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receipt"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receiptlineitem"
	"github.com/google/uuid"
)

// ReceiptLineItem is the model entity for the ReceiptLineItem schema.
type ReceiptLineItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ReceiptID holds the value of the "receipt_id" field.
	ReceiptID uuid.UUID `json:"receipt_id,omitempty"`
	// MatchedProductID holds the value of the "matched_product_id" field.
	MatchedProductID *uuid.UUID `json:"matched_product_id,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// ProductName holds the value of the "product_name" field.
	ProductName string `json:"product_name,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity float64 `json:"quantity,omitempty"`
	// UnitPrice holds the value of the "unit_price" field.
	UnitPrice float64 `json:"unit_price,omitempty"`
	// LineTotal holds the value of the "line_total" field.
	LineTotal float64 `json:"line_total,omitempty"`
	// VatCode holds the value of the "vat_code" field.
	VatCode *string `json:"vat_code,omitempty"`
	// Meta holds the value of the "meta" field.
	Meta json.RawMessage `json:"meta,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReceiptLineItemQuery when eager-loading is set.
	Edges        ReceiptLineItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReceiptLineItemEdges holds the relations/edges for other nodes in the graph.
type ReceiptLineItemEdges struct {
	// Receipt holds the value of the receipt edge.
	Receipt *Receipt `json:"receipt,omitempty"`
	// MatchedProduct holds the value of the matched_product edge.
	MatchedProduct *Product `json:"matched_product,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ReceiptOrErr returns the Receipt value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReceiptLineItemEdges) ReceiptOrErr() (*Receipt, error) {
	if e.Receipt != nil {
		return e.Receipt, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: receipt.Label}
	}
	return nil, &NotLoadedError{edge: "receipt"}
}

// MatchedProductOrErr returns the MatchedProduct value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReceiptLineItemEdges) MatchedProductOrErr() (*Product, error) {
	if e.MatchedProduct != nil {
		return e.MatchedProduct, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: product.Label}
	}
	return nil, &NotLoadedError{edge: "matched_product"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReceiptLineItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case receiptlineitem.FieldMatchedProductID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case receiptlineitem.FieldMeta:
			values[i] = new([]byte)
		case receiptlineitem.FieldQuantity, receiptlineitem.FieldUnitPrice, receiptlineitem.FieldLineTotal:
			values[i] = new(sql.NullFloat64)
		case receiptlineitem.FieldRawText, receiptlineitem.FieldProductName, receiptlineitem.FieldVatCode:
			values[i] = new(sql.NullString)
		case receiptlineitem.FieldID, receiptlineitem.FieldReceiptID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReceiptLineItem fields.
func (_m *ReceiptLineItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case receiptlineitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case receiptlineitem.FieldReceiptID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field receipt_id", values[i])
			} else if value != nil {
				_m.ReceiptID = *value
			}
		case receiptlineitem.FieldMatchedProductID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field matched_product_id", values[i])
			} else if value.Valid {
				_m.MatchedProductID = new(uuid.UUID)
				*_m.MatchedProductID = *value.S.(*uuid.UUID)
			}
		case receiptlineitem.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case receiptlineitem.FieldProductName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_name", values[i])
			} else if value.Valid {
				_m.ProductName = value.String
			}
		case receiptlineitem.FieldQuantity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = value.Float64
			}
		case receiptlineitem.FieldUnitPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_price", values[i])
			} else if value.Valid {
				_m.UnitPrice = value.Float64
			}
		case receiptlineitem.FieldLineTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field line_total", values[i])
			} else if value.Valid {
				_m.LineTotal = value.Float64
			}
		case receiptlineitem.FieldVatCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vat_code", values[i])
			} else if value.Valid {
				_m.VatCode = new(string)
				*_m.VatCode = value.String
			}
		case receiptlineitem.FieldMeta:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field meta", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Meta); err != nil {
					return fmt.Errorf("unmarshal field meta: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReceiptLineItem.
// This includes values selected through modifiers, order, etc.
func (_m *ReceiptLineItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReceipt queries the "receipt" edge of the ReceiptLineItem entity.
func (_m *ReceiptLineItem) QueryReceipt() *ReceiptQuery {
	return NewReceiptLineItemClient(_m.config).QueryReceipt(_m)
}

// QueryMatchedProduct queries the "matched_product" edge of the ReceiptLineItem entity.
func (_m *ReceiptLineItem) QueryMatchedProduct() *ProductQuery {
	return NewReceiptLineItemClient(_m.config).QueryMatchedProduct(_m)
}

// Update returns a builder for updating this ReceiptLineItem.
// Note that you need to call ReceiptLineItem.Unwrap() before calling this method if this ReceiptLineItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReceiptLineItem) Update() *ReceiptLineItemUpdateOne {
	return NewReceiptLineItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReceiptLineItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReceiptLineItem) Unwrap() *ReceiptLineItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReceiptLineItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReceiptLineItem) String() string {
	var builder strings.Builder
	builder.WriteString("ReceiptLineItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("receipt_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReceiptID))
	builder.WriteString(", ")
	if v := _m.MatchedProductID; v != nil {
		builder.WriteString("matched_product_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	builder.WriteString("product_name=")
	builder.WriteString(_m.ProductName)
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("unit_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitPrice))
	builder.WriteString(", ")
	builder.WriteString("line_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.LineTotal))
	builder.WriteString(", ")
	if v := _m.VatCode; v != nil {
		builder.WriteString("vat_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("meta=")
	builder.WriteString(fmt.Sprintf("%v", _m.Meta))
	builder.WriteByte(')')
	return builder.String()
}

// ReceiptLineItems is a parsable slice of ReceiptLineItem.
type ReceiptLineItems []*ReceiptLineItem
