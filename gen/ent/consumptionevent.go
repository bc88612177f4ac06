// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codemarcinu/pantry-tracker/gen/ent/consumptionevent"
	"github.com/codemarcinu/pantry-tracker/gen/ent/inventoryitem"
	"github.com/google/uuid"
)

// ConsumptionEvent is the model entity for the ConsumptionEvent schema.
type ConsumptionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// InventoryItemID holds the value of the "inventory_item_id" field.
	InventoryItemID uuid.UUID `json:"inventory_item_id,omitempty"`
	// ConsumedQty holds the value of the "consumed_qty" field.
	ConsumedQty float64 `json:"consumed_qty,omitempty"`
	// ConsumedAt holds the value of the "consumed_at" field.
	ConsumedAt time.Time `json:"consumed_at,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConsumptionEventQuery when eager-loading is set.
	Edges        ConsumptionEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConsumptionEventEdges holds the relations/edges for other nodes in the graph.
type ConsumptionEventEdges struct {
	// InventoryItem holds the value of the inventory_item edge.
	InventoryItem *InventoryItem `json:"inventory_item,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InventoryItemOrErr returns the InventoryItem value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConsumptionEventEdges) InventoryItemOrErr() (*InventoryItem, error) {
	if e.InventoryItem != nil {
		return e.InventoryItem, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: inventoryitem.Label}
	}
	return nil, &NotLoadedError{edge: "inventory_item"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConsumptionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case consumptionevent.FieldConsumedQty:
			values[i] = new(sql.NullFloat64)
		case consumptionevent.FieldNotes:
			values[i] = new(sql.NullString)
		case consumptionevent.FieldConsumedAt, consumptionevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case consumptionevent.FieldID, consumptionevent.FieldInventoryItemID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConsumptionEvent fields.
func (_m *ConsumptionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case consumptionevent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case consumptionevent.FieldInventoryItemID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field inventory_item_id", values[i])
			} else if value != nil {
				_m.InventoryItemID = *value
			}
		case consumptionevent.FieldConsumedQty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field consumed_qty", values[i])
			} else if value.Valid {
				_m.ConsumedQty = value.Float64
			}
		case consumptionevent.FieldConsumedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field consumed_at", values[i])
			} else if value.Valid {
				_m.ConsumedAt = value.Time
			}
		case consumptionevent.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case consumptionevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConsumptionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ConsumptionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInventoryItem queries the "inventory_item" edge of the ConsumptionEvent entity.
func (_m *ConsumptionEvent) QueryInventoryItem() *InventoryItemQuery {
	return NewConsumptionEventClient(_m.config).QueryInventoryItem(_m)
}

// Update returns a builder for updating this ConsumptionEvent.
// Note that you need to call ConsumptionEvent.Unwrap() before calling this method if this ConsumptionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConsumptionEvent) Update() *ConsumptionEventUpdateOne {
	return NewConsumptionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConsumptionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConsumptionEvent) Unwrap() *ConsumptionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConsumptionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConsumptionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ConsumptionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("inventory_item_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.InventoryItemID))
	builder.WriteString(", ")
	builder.WriteString("consumed_qty=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsumedQty))
	builder.WriteString(", ")
	builder.WriteString("consumed_at=")
	builder.WriteString(_m.ConsumedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ConsumptionEvents is a parsable slice of ConsumptionEvent.
type ConsumptionEvents []*ConsumptionEvent
