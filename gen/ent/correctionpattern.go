// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codemarcinu/pantry-tracker/gen/ent/correctionpattern"
	"github.com/google/uuid"
)

// CorrectionPattern is the model entity for the CorrectionPattern schema.
type CorrectionPattern struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ErrorPattern holds the value of the "error_pattern" field.
	ErrorPattern string `json:"error_pattern,omitempty"`
	// CorrectPattern holds the value of the "correct_pattern" field.
	CorrectPattern string `json:"correct_pattern,omitempty"`
	// IsRegex holds the value of the "is_regex" field.
	IsRegex bool `json:"is_regex,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// TimesApplied holds the value of the "times_applied" field.
	TimesApplied int `json:"times_applied,omitempty"`
	// SampleCount holds the value of the "sample_count" field.
	SampleCount int `json:"sample_count,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// HumanDeactivated holds the value of the "human_deactivated" field.
	HumanDeactivated bool `json:"human_deactivated,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CorrectionPattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case correctionpattern.FieldIsRegex, correctionpattern.FieldIsActive, correctionpattern.FieldHumanDeactivated:
			values[i] = new(sql.NullBool)
		case correctionpattern.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case correctionpattern.FieldTimesApplied, correctionpattern.FieldSampleCount:
			values[i] = new(sql.NullInt64)
		case correctionpattern.FieldErrorPattern, correctionpattern.FieldCorrectPattern:
			values[i] = new(sql.NullString)
		case correctionpattern.FieldCreatedAt, correctionpattern.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case correctionpattern.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CorrectionPattern fields.
func (_m *CorrectionPattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case correctionpattern.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case correctionpattern.FieldErrorPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_pattern", values[i])
			} else if value.Valid {
				_m.ErrorPattern = value.String
			}
		case correctionpattern.FieldCorrectPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_pattern", values[i])
			} else if value.Valid {
				_m.CorrectPattern = value.String
			}
		case correctionpattern.FieldIsRegex:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_regex", values[i])
			} else if value.Valid {
				_m.IsRegex = value.Bool
			}
		case correctionpattern.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case correctionpattern.FieldTimesApplied:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_applied", values[i])
			} else if value.Valid {
				_m.TimesApplied = int(value.Int64)
			}
		case correctionpattern.FieldSampleCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sample_count", values[i])
			} else if value.Valid {
				_m.SampleCount = int(value.Int64)
			}
		case correctionpattern.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case correctionpattern.FieldHumanDeactivated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field human_deactivated", values[i])
			} else if value.Valid {
				_m.HumanDeactivated = value.Bool
			}
		case correctionpattern.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case correctionpattern.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CorrectionPattern.
// This includes values selected through modifiers, order, etc.
func (_m *CorrectionPattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CorrectionPattern.
// Note that you need to call CorrectionPattern.Unwrap() before calling this method if this CorrectionPattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CorrectionPattern) Update() *CorrectionPatternUpdateOne {
	return NewCorrectionPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CorrectionPattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CorrectionPattern) Unwrap() *CorrectionPattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CorrectionPattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CorrectionPattern) String() string {
	var builder strings.Builder
	builder.WriteString("CorrectionPattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("error_pattern=")
	builder.WriteString(_m.ErrorPattern)
	builder.WriteString(", ")
	builder.WriteString("correct_pattern=")
	builder.WriteString(_m.CorrectPattern)
	builder.WriteString(", ")
	builder.WriteString("is_regex=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsRegex))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("times_applied=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimesApplied))
	builder.WriteString(", ")
	builder.WriteString("sample_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SampleCount))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("human_deactivated=")
	builder.WriteString(fmt.Sprintf("%v", _m.HumanDeactivated))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CorrectionPatterns is a parsable slice of CorrectionPattern.
type CorrectionPatterns []*CorrectionPattern
