// Code generated by ent, DO NOT EDIT.

package correctionpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the correctionpattern type in the database.
	Label = "correction_pattern"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldErrorPattern holds the string denoting the error_pattern field in the database.
	FieldErrorPattern = "error_pattern"
	// FieldCorrectPattern holds the string denoting the correct_pattern field in the database.
	FieldCorrectPattern = "correct_pattern"
	// FieldIsRegex holds the string denoting the is_regex field in the database.
	FieldIsRegex = "is_regex"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldTimesApplied holds the string denoting the times_applied field in the database.
	FieldTimesApplied = "times_applied"
	// FieldSampleCount holds the string denoting the sample_count field in the database.
	FieldSampleCount = "sample_count"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldHumanDeactivated holds the string denoting the human_deactivated field in the database.
	FieldHumanDeactivated = "human_deactivated"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the correctionpattern in the database.
	Table = "ocr_correction_patterns"
)

// Columns holds all SQL columns for correctionpattern fields.
var Columns = []string{
	FieldID,
	FieldErrorPattern,
	FieldCorrectPattern,
	FieldIsRegex,
	FieldConfidence,
	FieldTimesApplied,
	FieldSampleCount,
	FieldIsActive,
	FieldHumanDeactivated,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ErrorPatternValidator is a validator for the "error_pattern" field. It is called by the builders before save.
	ErrorPatternValidator func(string) error
	// CorrectPatternValidator is a validator for the "correct_pattern" field. It is called by the builders before save.
	CorrectPatternValidator func(string) error
	// DefaultIsRegex holds the default value on creation for the "is_regex" field.
	DefaultIsRegex bool
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultTimesApplied holds the default value on creation for the "times_applied" field.
	DefaultTimesApplied int
	// DefaultSampleCount holds the default value on creation for the "sample_count" field.
	DefaultSampleCount int
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultHumanDeactivated holds the default value on creation for the "human_deactivated" field.
	DefaultHumanDeactivated bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CorrectionPattern queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByErrorPattern orders the results by the error_pattern field.
func ByErrorPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorPattern, opts...).ToFunc()
}

// ByCorrectPattern orders the results by the correct_pattern field.
func ByCorrectPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectPattern, opts...).ToFunc()
}

// ByIsRegex orders the results by the is_regex field.
func ByIsRegex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsRegex, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByTimesApplied orders the results by the times_applied field.
func ByTimesApplied(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesApplied, opts...).ToFunc()
}

// BySampleCount orders the results by the sample_count field.
func BySampleCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSampleCount, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByHumanDeactivated orders the results by the human_deactivated field.
func ByHumanDeactivated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHumanDeactivated, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
