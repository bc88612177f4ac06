// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codemarcinu/pantry-tracker/gen/ent/inventoryitem"
	"github.com/codemarcinu/pantry-tracker/gen/ent/product"
	"github.com/google/uuid"
)

// InventoryItem is the model entity for the InventoryItem schema.
type InventoryItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProductID holds the value of the "product_id" field.
	ProductID uuid.UUID `json:"product_id,omitempty"`
	// PurchaseDate holds the value of the "purchase_date" field.
	PurchaseDate time.Time `json:"purchase_date,omitempty"`
	// ExpiryDate holds the value of the "expiry_date" field.
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	// QuantityRemaining holds the value of the "quantity_remaining" field.
	QuantityRemaining float64 `json:"quantity_remaining,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// StorageLocation holds the value of the "storage_location" field.
	StorageLocation string `json:"storage_location,omitempty"`
	// BatchID holds the value of the "batch_id" field.
	BatchID string `json:"batch_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InventoryItemQuery when eager-loading is set.
	Edges        InventoryItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InventoryItemEdges holds the relations/edges for other nodes in the graph.
type InventoryItemEdges struct {
	// Product holds the value of the product edge.
	Product *Product `json:"product,omitempty"`
	// ConsumptionEvents holds the value of the consumption_events edge.
	ConsumptionEvents []*ConsumptionEvent `json:"consumption_events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProductOrErr returns the Product value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InventoryItemEdges) ProductOrErr() (*Product, error) {
	if e.Product != nil {
		return e.Product, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: product.Label}
	}
	return nil, &NotLoadedError{edge: "product"}
}

// ConsumptionEventsOrErr returns the ConsumptionEvents value or an error if the edge
// was not loaded in eager-loading.
func (e InventoryItemEdges) ConsumptionEventsOrErr() ([]*ConsumptionEvent, error) {
	if e.loadedTypes[1] {
		return e.ConsumptionEvents, nil
	}
	return nil, &NotLoadedError{edge: "consumption_events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InventoryItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case inventoryitem.FieldQuantityRemaining:
			values[i] = new(sql.NullFloat64)
		case inventoryitem.FieldUnit, inventoryitem.FieldStorageLocation, inventoryitem.FieldBatchID:
			values[i] = new(sql.NullString)
		case inventoryitem.FieldPurchaseDate, inventoryitem.FieldExpiryDate, inventoryitem.FieldCreatedAt, inventoryitem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case inventoryitem.FieldID, inventoryitem.FieldProductID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InventoryItem fields.
func (_m *InventoryItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case inventoryitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case inventoryitem.FieldProductID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field product_id", values[i])
			} else if value != nil {
				_m.ProductID = *value
			}
		case inventoryitem.FieldPurchaseDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field purchase_date", values[i])
			} else if value.Valid {
				_m.PurchaseDate = value.Time
			}
		case inventoryitem.FieldExpiryDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expiry_date", values[i])
			} else if value.Valid {
				_m.ExpiryDate = new(time.Time)
				*_m.ExpiryDate = value.Time
			}
		case inventoryitem.FieldQuantityRemaining:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity_remaining", values[i])
			} else if value.Valid {
				_m.QuantityRemaining = value.Float64
			}
		case inventoryitem.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case inventoryitem.FieldStorageLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_location", values[i])
			} else if value.Valid {
				_m.StorageLocation = value.String
			}
		case inventoryitem.FieldBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				_m.BatchID = value.String
			}
		case inventoryitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case inventoryitem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InventoryItem.
// This includes values selected through modifiers, order, etc.
func (_m *InventoryItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProduct queries the "product" edge of the InventoryItem entity.
func (_m *InventoryItem) QueryProduct() *ProductQuery {
	return NewInventoryItemClient(_m.config).QueryProduct(_m)
}

// QueryConsumptionEvents queries the "consumption_events" edge of the InventoryItem entity.
func (_m *InventoryItem) QueryConsumptionEvents() *ConsumptionEventQuery {
	return NewInventoryItemClient(_m.config).QueryConsumptionEvents(_m)
}

// Update returns a builder for updating this InventoryItem.
// Note that you need to call InventoryItem.Unwrap() before calling this method if this InventoryItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InventoryItem) Update() *InventoryItemUpdateOne {
	return NewInventoryItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InventoryItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InventoryItem) Unwrap() *InventoryItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InventoryItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InventoryItem) String() string {
	var builder strings.Builder
	builder.WriteString("InventoryItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("product_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProductID))
	builder.WriteString(", ")
	builder.WriteString("purchase_date=")
	builder.WriteString(_m.PurchaseDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ExpiryDate; v != nil {
		builder.WriteString("expiry_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("quantity_remaining=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuantityRemaining))
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteString(", ")
	builder.WriteString("storage_location=")
	builder.WriteString(_m.StorageLocation)
	builder.WriteString(", ")
	builder.WriteString("batch_id=")
	builder.WriteString(_m.BatchID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InventoryItems is a parsable slice of InventoryItem.
type InventoryItems []*InventoryItem
