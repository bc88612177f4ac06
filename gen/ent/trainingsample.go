// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receipt"
	"github.com/codemarcinu/pantry-tracker/gen/ent/trainingsample"
	"github.com/google/uuid"
)

// TrainingSample is the model entity for the TrainingSample schema.
type TrainingSample struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ReceiptID holds the value of the "receipt_id" field.
	ReceiptID uuid.UUID `json:"receipt_id,omitempty"`
	// WeakText holds the value of the "weak_text" field.
	WeakText string `json:"weak_text,omitempty"`
	// StrongText holds the value of the "strong_text" field.
	StrongText string `json:"strong_text,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TrainingSampleQuery when eager-loading is set.
	Edges        TrainingSampleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TrainingSampleEdges holds the relations/edges for other nodes in the graph.
type TrainingSampleEdges struct {
	// Receipt holds the value of the receipt edge.
	Receipt *Receipt `json:"receipt,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReceiptOrErr returns the Receipt value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TrainingSampleEdges) ReceiptOrErr() (*Receipt, error) {
	if e.Receipt != nil {
		return e.Receipt, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: receipt.Label}
	}
	return nil, &NotLoadedError{edge: "receipt"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrainingSample) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trainingsample.FieldWeakText, trainingsample.FieldStrongText:
			values[i] = new(sql.NullString)
		case trainingsample.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case trainingsample.FieldID, trainingsample.FieldReceiptID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrainingSample fields.
func (_m *TrainingSample) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trainingsample.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case trainingsample.FieldReceiptID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field receipt_id", values[i])
			} else if value != nil {
				_m.ReceiptID = *value
			}
		case trainingsample.FieldWeakText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field weak_text", values[i])
			} else if value.Valid {
				_m.WeakText = value.String
			}
		case trainingsample.FieldStrongText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strong_text", values[i])
			} else if value.Valid {
				_m.StrongText = value.String
			}
		case trainingsample.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TrainingSample.
// This includes values selected through modifiers, order, etc.
func (_m *TrainingSample) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReceipt queries the "receipt" edge of the TrainingSample entity.
func (_m *TrainingSample) QueryReceipt() *ReceiptQuery {
	return NewTrainingSampleClient(_m.config).QueryReceipt(_m)
}

// Update returns a builder for updating this TrainingSample.
// Note that you need to call TrainingSample.Unwrap() before calling this method if this TrainingSample
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrainingSample) Update() *TrainingSampleUpdateOne {
	return NewTrainingSampleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrainingSample entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrainingSample) Unwrap() *TrainingSample {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrainingSample is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrainingSample) String() string {
	var builder strings.Builder
	builder.WriteString("TrainingSample(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("receipt_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReceiptID))
	builder.WriteString(", ")
	builder.WriteString("weak_text=")
	builder.WriteString(_m.WeakText)
	builder.WriteString(", ")
	builder.WriteString("strong_text=")
	builder.WriteString(_m.StrongText)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TrainingSamples is a parsable slice of TrainingSample.
type TrainingSamples []*TrainingSample
