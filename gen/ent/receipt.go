// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receipt"
	"github.com/google/uuid"
)

// Receipt is the model entity for the Receipt schema.
type Receipt struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// StoreName holds the value of the "store_name" field.
	StoreName *string `json:"store_name,omitempty"`
	// PurchasedAt holds the value of the "purchased_at" field.
	PurchasedAt *time.Time `json:"purchased_at,omitempty"`
	// Total holds the value of the "total" field.
	Total *float64 `json:"total,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// RawExtraction holds the value of the "raw_extraction" field.
	RawExtraction json.RawMessage `json:"raw_extraction,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash string `json:"content_hash,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ProcessingNotes holds the value of the "processing_notes" field.
	ProcessingNotes string `json:"processing_notes,omitempty"`
	// TotalDiff holds the value of the "total_diff" field.
	TotalDiff *float64 `json:"total_diff,omitempty"`
	// Cancelled holds the value of the "cancelled" field.
	Cancelled bool `json:"cancelled,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReceiptQuery when eager-loading is set.
	Edges        ReceiptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReceiptEdges holds the relations/edges for other nodes in the graph.
type ReceiptEdges struct {
	// LineItems holds the value of the line_items edge.
	LineItems []*ReceiptLineItem `json:"line_items,omitempty"`
	// TrainingSamples holds the value of the training_samples edge.
	TrainingSamples []*TrainingSample `json:"training_samples,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// LineItemsOrErr returns the LineItems value or an error if the edge
// was not loaded in eager-loading.
func (e ReceiptEdges) LineItemsOrErr() ([]*ReceiptLineItem, error) {
	if e.loadedTypes[0] {
		return e.LineItems, nil
	}
	return nil, &NotLoadedError{edge: "line_items"}
}

// TrainingSamplesOrErr returns the TrainingSamples value or an error if the edge
// was not loaded in eager-loading.
func (e ReceiptEdges) TrainingSamplesOrErr() ([]*TrainingSample, error) {
	if e.loadedTypes[1] {
		return e.TrainingSamples, nil
	}
	return nil, &NotLoadedError{edge: "training_samples"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Receipt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case receipt.FieldRawExtraction:
			values[i] = new([]byte)
		case receipt.FieldCancelled:
			values[i] = new(sql.NullBool)
		case receipt.FieldTotal, receipt.FieldTotalDiff:
			values[i] = new(sql.NullFloat64)
		case receipt.FieldStoreName, receipt.FieldCurrency, receipt.FieldSourcePath, receipt.FieldContentHash, receipt.FieldStatus, receipt.FieldProcessingNotes:
			values[i] = new(sql.NullString)
		case receipt.FieldPurchasedAt, receipt.FieldCreatedAt, receipt.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case receipt.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Receipt fields.
func (_m *Receipt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case receipt.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case receipt.FieldStoreName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field store_name", values[i])
			} else if value.Valid {
				_m.StoreName = new(string)
				*_m.StoreName = value.String
			}
		case receipt.FieldPurchasedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field purchased_at", values[i])
			} else if value.Valid {
				_m.PurchasedAt = new(time.Time)
				*_m.PurchasedAt = value.Time
			}
		case receipt.FieldTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = new(float64)
				*_m.Total = value.Float64
			}
		case receipt.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case receipt.FieldRawExtraction:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_extraction", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawExtraction); err != nil {
					return fmt.Errorf("unmarshal field raw_extraction: %w", err)
				}
			}
		case receipt.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case receipt.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = value.String
			}
		case receipt.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case receipt.FieldProcessingNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_notes", values[i])
			} else if value.Valid {
				_m.ProcessingNotes = value.String
			}
		case receipt.FieldTotalDiff:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_diff", values[i])
			} else if value.Valid {
				_m.TotalDiff = new(float64)
				*_m.TotalDiff = value.Float64
			}
		case receipt.FieldCancelled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled", values[i])
			} else if value.Valid {
				_m.Cancelled = value.Bool
			}
		case receipt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case receipt.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Receipt.
// This includes values selected through modifiers, order, etc.
func (_m *Receipt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLineItems queries the "line_items" edge of the Receipt entity.
func (_m *Receipt) QueryLineItems() *ReceiptLineItemQuery {
	return NewReceiptClient(_m.config).QueryLineItems(_m)
}

// QueryTrainingSamples queries the "training_samples" edge of the Receipt entity.
func (_m *Receipt) QueryTrainingSamples() *TrainingSampleQuery {
	return NewReceiptClient(_m.config).QueryTrainingSamples(_m)
}

// Update returns a builder for updating this Receipt.
// Note that you need to call Receipt.Unwrap() before calling this method if this Receipt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Receipt) Update() *ReceiptUpdateOne {
	return NewReceiptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Receipt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Receipt) Unwrap() *Receipt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Receipt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Receipt) String() string {
	var builder strings.Builder
	builder.WriteString("Receipt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.StoreName; v != nil {
		builder.WriteString("store_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PurchasedAt; v != nil {
		builder.WriteString("purchased_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Total; v != nil {
		builder.WriteString("total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	builder.WriteString("raw_extraction=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawExtraction))
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(_m.ContentHash)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("processing_notes=")
	builder.WriteString(_m.ProcessingNotes)
	builder.WriteString(", ")
	if v := _m.TotalDiff; v != nil {
		builder.WriteString("total_diff=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("cancelled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cancelled))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Receipts is a parsable slice of Receipt.
type Receipts []*Receipt
