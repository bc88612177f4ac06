// Code generated by ent, DO NOT EDIT.

package receiptlineitem

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the receiptlineitem type in the database.
	Label = "receipt_line_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReceiptID holds the string denoting the receipt_id field in the database.
	FieldReceiptID = "receipt_id"
	// FieldMatchedProductID holds the string denoting the matched_product_id field in the database.
	FieldMatchedProductID = "matched_product_id"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldProductName holds the string denoting the product_name field in the database.
	FieldProductName = "product_name"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldUnitPrice holds the string denoting the unit_price field in the database.
	FieldUnitPrice = "unit_price"
	// FieldLineTotal holds the string denoting the line_total field in the database.
	FieldLineTotal = "line_total"
	// FieldVatCode holds the string denoting the vat_code field in the database.
	FieldVatCode = "vat_code"
	// FieldMeta holds the string denoting the meta field in the database.
	FieldMeta = "meta"
	// EdgeReceipt holds the string denoting the receipt edge name in mutations.
	EdgeReceipt = "receipt"
	// EdgeMatchedProduct holds the string denoting the matched_product edge name in mutations.
	EdgeMatchedProduct = "matched_product"
	// Table holds the table name of the receiptlineitem in the database.
	Table = "receipt_line_items"
	// ReceiptTable is the table that holds the receipt relation/edge.
	ReceiptTable = "receipt_line_items"
	// ReceiptInverseTable is the table name for the Receipt entity.
	// It exists in this package in order to avoid circular dependency with the "receipt" package.
	ReceiptInverseTable = "receipts"
	// ReceiptColumn is the table column denoting the receipt relation/edge.
	ReceiptColumn = "receipt_id"
	// MatchedProductTable is the table that holds the matched_product relation/edge.
	MatchedProductTable = "receipt_line_items"
	// MatchedProductInverseTable is the table name for the Product entity.
	// It exists in this package in order to avoid circular dependency with the "product" package.
	MatchedProductInverseTable = "products"
	// MatchedProductColumn is the table column denoting the matched_product relation/edge.
	MatchedProductColumn = "matched_product_id"
)

// Columns holds all SQL columns for receiptlineitem fields.
var Columns = []string{
	FieldID,
	FieldReceiptID,
	FieldMatchedProductID,
	FieldRawText,
	FieldProductName,
	FieldQuantity,
	FieldUnitPrice,
	FieldLineTotal,
	FieldVatCode,
	FieldMeta,
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
	// RawTextValidator is a validator for the "raw_text" field. It is called by the builders before save.
	RawTextValidator func(string) error
	// ProductNameValidator is a validator for the "product_name" field. It is called by the builders before save.
	ProductNameValidator func(string) error
	// VatCodeValidator is a validator for the "vat_code" field. It is called by the builders before save.
	VatCodeValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ReceiptLineItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReceiptID orders the results by the receipt_id field.
func ByReceiptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceiptID, opts...).ToFunc()
}

// ByMatchedProductID orders the results by the matched_product_id field.
func ByMatchedProductID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchedProductID, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByProductName orders the results by the product_name field.
func ByProductName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductName, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// ByUnitPrice orders the results by the unit_price field.
func ByUnitPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitPrice, opts...).ToFunc()
}

// ByLineTotal orders the results by the line_total field.
func ByLineTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLineTotal, opts...).ToFunc()
}

// ByVatCode orders the results by the vat_code field.
func ByVatCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVatCode, opts...).ToFunc()
}

// ByReceiptField orders the results by receipt field.
func ByReceiptField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReceiptStep(), sql.OrderByField(field, opts...))
	}
}

// ByMatchedProductField orders the results by matched_product field.
func ByMatchedProductField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMatchedProductStep(), sql.OrderByField(field, opts...))
	}
}
func newReceiptStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReceiptInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ReceiptTable, ReceiptColumn),
	)
}
func newMatchedProductStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MatchedProductInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MatchedProductTable, MatchedProductColumn),
	)
}
