// Code generated by ent, DO NOT EDIT.

package receipt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the receipt type in the database.
	Label = "receipt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStoreName holds the string denoting the store_name field in the database.
	FieldStoreName = "store_name"
	// FieldPurchasedAt holds the string denoting the purchased_at field in the database.
	FieldPurchasedAt = "purchased_at"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldRawExtraction holds the string denoting the raw_extraction field in the database.
	FieldRawExtraction = "raw_extraction"
	// FieldSourcePath holds the string denoting the source_path field in the database.
	FieldSourcePath = "source_path"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProcessingNotes holds the string denoting the processing_notes field in the database.
	FieldProcessingNotes = "processing_notes"
	// FieldTotalDiff holds the string denoting the total_diff field in the database.
	FieldTotalDiff = "total_diff"
	// FieldCancelled holds the string denoting the cancelled field in the database.
	FieldCancelled = "cancelled"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeLineItems holds the string denoting the line_items edge name in mutations.
	EdgeLineItems = "line_items"
	// EdgeTrainingSamples holds the string denoting the training_samples edge name in mutations.
	EdgeTrainingSamples = "training_samples"
	// Table holds the table name of the receipt in the database.
	Table = "receipts"
	// LineItemsTable is the table that holds the line_items relation/edge.
	LineItemsTable = "receipt_line_items"
	// LineItemsInverseTable is the table name for the ReceiptLineItem entity.
	// It exists in this package in order to avoid circular dependency with the "receiptlineitem" package.
	LineItemsInverseTable = "receipt_line_items"
	// LineItemsColumn is the table column denoting the line_items relation/edge.
	LineItemsColumn = "receipt_id"
	// TrainingSamplesTable is the table that holds the training_samples relation/edge.
	TrainingSamplesTable = "ocr_training_samples"
	// TrainingSamplesInverseTable is the table name for the TrainingSample entity.
	// It exists in this package in order to avoid circular dependency with the "trainingsample" package.
	TrainingSamplesInverseTable = "ocr_training_samples"
	// TrainingSamplesColumn is the table column denoting the training_samples relation/edge.
	TrainingSamplesColumn = "receipt_id"
)

// Columns holds all SQL columns for receipt fields.
var Columns = []string{
	FieldID,
	FieldStoreName,
	FieldPurchasedAt,
	FieldTotal,
	FieldCurrency,
	FieldRawExtraction,
	FieldSourcePath,
	FieldContentHash,
	FieldStatus,
	FieldProcessingNotes,
	FieldTotalDiff,
	FieldCancelled,
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
	// DefaultCurrency holds the default value on creation for the "currency" field.
	DefaultCurrency string
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	SourcePathValidator func(string) error
	// DefaultContentHash holds the default value on creation for the "content_hash" field.
	DefaultContentHash string
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultProcessingNotes holds the default value on creation for the "processing_notes" field.
	DefaultProcessingNotes string
	// DefaultCancelled holds the default value on creation for the "cancelled" field.
	DefaultCancelled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Receipt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStoreName orders the results by the store_name field.
func ByStoreName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoreName, opts...).ToFunc()
}

// ByPurchasedAt orders the results by the purchased_at field.
func ByPurchasedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurchasedAt, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// BySourcePath orders the results by the source_path field.
func BySourcePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePath, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProcessingNotes orders the results by the processing_notes field.
func ByProcessingNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingNotes, opts...).ToFunc()
}

// ByTotalDiff orders the results by the total_diff field.
func ByTotalDiff(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalDiff, opts...).ToFunc()
}

// ByCancelled orders the results by the cancelled field.
func ByCancelled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelled, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLineItemsCount orders the results by line_items count.
func ByLineItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLineItemsStep(), opts...)
	}
}

// ByLineItems orders the results by line_items terms.
func ByLineItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLineItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTrainingSamplesCount orders the results by training_samples count.
func ByTrainingSamplesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTrainingSamplesStep(), opts...)
	}
}

// ByTrainingSamples orders the results by training_samples terms.
func ByTrainingSamples(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTrainingSamplesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLineItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LineItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LineItemsTable, LineItemsColumn),
	)
}
func newTrainingSamplesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TrainingSamplesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TrainingSamplesTable, TrainingSamplesColumn),
	)
}
