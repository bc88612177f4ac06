// Code generated by ent, DO NOT EDIT.

package consumptionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the consumptionevent type in the database.
	Label = "consumption_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldInventoryItemID holds the string denoting the inventory_item_id field in the database.
	FieldInventoryItemID = "inventory_item_id"
	// FieldConsumedQty holds the string denoting the consumed_qty field in the database.
	FieldConsumedQty = "consumed_qty"
	// FieldConsumedAt holds the string denoting the consumed_at field in the database.
	FieldConsumedAt = "consumed_at"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeInventoryItem holds the string denoting the inventory_item edge name in mutations.
	EdgeInventoryItem = "inventory_item"
	// Table holds the table name of the consumptionevent in the database.
	Table = "consumption_events"
	// InventoryItemTable is the table that holds the inventory_item relation/edge.
	InventoryItemTable = "consumption_events"
	// InventoryItemInverseTable is the table name for the InventoryItem entity.
	// It exists in this package in order to avoid circular dependency with the "inventoryitem" package.
	InventoryItemInverseTable = "inventory_items"
	// InventoryItemColumn is the table column denoting the inventory_item relation/edge.
	InventoryItemColumn = "inventory_item_id"
)

// Columns holds all SQL columns for consumptionevent fields.
var Columns = []string{
	FieldID,
	FieldInventoryItemID,
	FieldConsumedQty,
	FieldConsumedAt,
	FieldNotes,
	FieldCreatedAt,
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
	// DefaultConsumedAt holds the default value on creation for the "consumed_at" field.
	DefaultConsumedAt func() time.Time
	// DefaultNotes holds the default value on creation for the "notes" field.
	DefaultNotes string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ConsumptionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInventoryItemID orders the results by the inventory_item_id field.
func ByInventoryItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInventoryItemID, opts...).ToFunc()
}

// ByConsumedQty orders the results by the consumed_qty field.
func ByConsumedQty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsumedQty, opts...).ToFunc()
}

// ByConsumedAt orders the results by the consumed_at field.
func ByConsumedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsumedAt, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByInventoryItemField orders the results by inventory_item field.
func ByInventoryItemField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInventoryItemStep(), sql.OrderByField(field, opts...))
	}
}
func newInventoryItemStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InventoryItemInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InventoryItemTable, InventoryItemColumn),
	)
}
