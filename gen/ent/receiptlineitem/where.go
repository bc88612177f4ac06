// Code generated by ent, DO NOT EDIT.

package receiptlineitem

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codemarcinu/pantry-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldLTE(FieldID, id))
}

// ReceiptID applies equality check predicate on the "receipt_id" field. It's identical to ReceiptIDEQ.
func ReceiptID(v uuid.UUID) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEQ(FieldReceiptID, v))
}

// MatchedProductID applies equality check predicate on the "matched_product_id" field. It's identical to MatchedProductIDEQ.
func MatchedProductID(v uuid.UUID) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEQ(FieldMatchedProductID, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEQ(FieldRawText, v))
}

// ProductName applies equality check predicate on the "product_name" field. It's identical to ProductNameEQ.
func ProductName(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEQ(FieldProductName, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEQ(FieldQuantity, v))
}

// UnitPrice applies equality check predicate on the "unit_price" field. It's identical to UnitPriceEQ.
func UnitPrice(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEQ(FieldUnitPrice, v))
}

// LineTotal applies equality check predicate on the "line_total" field. It's identical to LineTotalEQ.
func LineTotal(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEQ(FieldLineTotal, v))
}

// VatCode applies equality check predicate on the "vat_code" field. It's identical to VatCodeEQ.
func VatCode(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEQ(FieldVatCode, v))
}

// ReceiptIDEQ applies the EQ predicate on the "receipt_id" field.
func ReceiptIDEQ(v uuid.UUID) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEQ(FieldReceiptID, v))
}

// ReceiptIDNEQ applies the NEQ predicate on the "receipt_id" field.
func ReceiptIDNEQ(v uuid.UUID) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNEQ(FieldReceiptID, v))
}

// ReceiptIDIn applies the In predicate on the "receipt_id" field.
func ReceiptIDIn(vs ...uuid.UUID) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldIn(FieldReceiptID, vs...))
}

// ReceiptIDNotIn applies the NotIn predicate on the "receipt_id" field.
func ReceiptIDNotIn(vs ...uuid.UUID) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNotIn(FieldReceiptID, vs...))
}

// MatchedProductIDEQ applies the EQ predicate on the "matched_product_id" field.
func MatchedProductIDEQ(v uuid.UUID) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEQ(FieldMatchedProductID, v))
}

// MatchedProductIDNEQ applies the NEQ predicate on the "matched_product_id" field.
func MatchedProductIDNEQ(v uuid.UUID) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNEQ(FieldMatchedProductID, v))
}

// MatchedProductIDIn applies the In predicate on the "matched_product_id" field.
func MatchedProductIDIn(vs ...uuid.UUID) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldIn(FieldMatchedProductID, vs...))
}

// MatchedProductIDNotIn applies the NotIn predicate on the "matched_product_id" field.
func MatchedProductIDNotIn(vs ...uuid.UUID) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNotIn(FieldMatchedProductID, vs...))
}

// MatchedProductIDIsNil applies the IsNil predicate on the "matched_product_id" field.
func MatchedProductIDIsNil() predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldIsNull(FieldMatchedProductID))
}

// MatchedProductIDNotNil applies the NotNil predicate on the "matched_product_id" field.
func MatchedProductIDNotNil() predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNotNull(FieldMatchedProductID))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldContainsFold(FieldRawText, v))
}

// ProductNameEQ applies the EQ predicate on the "product_name" field.
func ProductNameEQ(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEQ(FieldProductName, v))
}

// ProductNameNEQ applies the NEQ predicate on the "product_name" field.
func ProductNameNEQ(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNEQ(FieldProductName, v))
}

// ProductNameIn applies the In predicate on the "product_name" field.
func ProductNameIn(vs ...string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldIn(FieldProductName, vs...))
}

// ProductNameNotIn applies the NotIn predicate on the "product_name" field.
func ProductNameNotIn(vs ...string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNotIn(FieldProductName, vs...))
}

// ProductNameGT applies the GT predicate on the "product_name" field.
func ProductNameGT(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldGT(FieldProductName, v))
}

// ProductNameGTE applies the GTE predicate on the "product_name" field.
func ProductNameGTE(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldGTE(FieldProductName, v))
}

// ProductNameLT applies the LT predicate on the "product_name" field.
func ProductNameLT(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldLT(FieldProductName, v))
}

// ProductNameLTE applies the LTE predicate on the "product_name" field.
func ProductNameLTE(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldLTE(FieldProductName, v))
}

// ProductNameContains applies the Contains predicate on the "product_name" field.
func ProductNameContains(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldContains(FieldProductName, v))
}

// ProductNameHasPrefix applies the HasPrefix predicate on the "product_name" field.
func ProductNameHasPrefix(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldHasPrefix(FieldProductName, v))
}

// ProductNameHasSuffix applies the HasSuffix predicate on the "product_name" field.
func ProductNameHasSuffix(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldHasSuffix(FieldProductName, v))
}

// ProductNameEqualFold applies the EqualFold predicate on the "product_name" field.
func ProductNameEqualFold(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEqualFold(FieldProductName, v))
}

// ProductNameContainsFold applies the ContainsFold predicate on the "product_name" field.
func ProductNameContainsFold(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldContainsFold(FieldProductName, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldLTE(FieldQuantity, v))
}

// UnitPriceEQ applies the EQ predicate on the "unit_price" field.
func UnitPriceEQ(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEQ(FieldUnitPrice, v))
}

// UnitPriceNEQ applies the NEQ predicate on the "unit_price" field.
func UnitPriceNEQ(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNEQ(FieldUnitPrice, v))
}

// UnitPriceIn applies the In predicate on the "unit_price" field.
func UnitPriceIn(vs ...float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldIn(FieldUnitPrice, vs...))
}

// UnitPriceNotIn applies the NotIn predicate on the "unit_price" field.
func UnitPriceNotIn(vs ...float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNotIn(FieldUnitPrice, vs...))
}

// UnitPriceGT applies the GT predicate on the "unit_price" field.
func UnitPriceGT(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldGT(FieldUnitPrice, v))
}

// UnitPriceGTE applies the GTE predicate on the "unit_price" field.
func UnitPriceGTE(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldGTE(FieldUnitPrice, v))
}

// UnitPriceLT applies the LT predicate on the "unit_price" field.
func UnitPriceLT(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldLT(FieldUnitPrice, v))
}

// UnitPriceLTE applies the LTE predicate on the "unit_price" field.
func UnitPriceLTE(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldLTE(FieldUnitPrice, v))
}

// LineTotalEQ applies the EQ predicate on the "line_total" field.
func LineTotalEQ(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEQ(FieldLineTotal, v))
}

// LineTotalNEQ applies the NEQ predicate on the "line_total" field.
func LineTotalNEQ(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNEQ(FieldLineTotal, v))
}

// LineTotalIn applies the In predicate on the "line_total" field.
func LineTotalIn(vs ...float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldIn(FieldLineTotal, vs...))
}

// LineTotalNotIn applies the NotIn predicate on the "line_total" field.
func LineTotalNotIn(vs ...float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNotIn(FieldLineTotal, vs...))
}

// LineTotalGT applies the GT predicate on the "line_total" field.
func LineTotalGT(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldGT(FieldLineTotal, v))
}

// LineTotalGTE applies the GTE predicate on the "line_total" field.
func LineTotalGTE(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldGTE(FieldLineTotal, v))
}

// LineTotalLT applies the LT predicate on the "line_total" field.
func LineTotalLT(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldLT(FieldLineTotal, v))
}

// LineTotalLTE applies the LTE predicate on the "line_total" field.
func LineTotalLTE(v float64) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldLTE(FieldLineTotal, v))
}

// VatCodeEQ applies the EQ predicate on the "vat_code" field.
func VatCodeEQ(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEQ(FieldVatCode, v))
}

// VatCodeNEQ applies the NEQ predicate on the "vat_code" field.
func VatCodeNEQ(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNEQ(FieldVatCode, v))
}

// VatCodeIn applies the In predicate on the "vat_code" field.
func VatCodeIn(vs ...string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldIn(FieldVatCode, vs...))
}

// VatCodeNotIn applies the NotIn predicate on the "vat_code" field.
func VatCodeNotIn(vs ...string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNotIn(FieldVatCode, vs...))
}

// VatCodeGT applies the GT predicate on the "vat_code" field.
func VatCodeGT(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldGT(FieldVatCode, v))
}

// VatCodeGTE applies the GTE predicate on the "vat_code" field.
func VatCodeGTE(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldGTE(FieldVatCode, v))
}

// VatCodeLT applies the LT predicate on the "vat_code" field.
func VatCodeLT(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldLT(FieldVatCode, v))
}

// VatCodeLTE applies the LTE predicate on the "vat_code" field.
func VatCodeLTE(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldLTE(FieldVatCode, v))
}

// VatCodeContains applies the Contains predicate on the "vat_code" field.
func VatCodeContains(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldContains(FieldVatCode, v))
}

// VatCodeHasPrefix applies the HasPrefix predicate on the "vat_code" field.
func VatCodeHasPrefix(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldHasPrefix(FieldVatCode, v))
}

// VatCodeHasSuffix applies the HasSuffix predicate on the "vat_code" field.
func VatCodeHasSuffix(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldHasSuffix(FieldVatCode, v))
}

// VatCodeIsNil applies the IsNil predicate on the "vat_code" field.
func VatCodeIsNil() predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldIsNull(FieldVatCode))
}

// VatCodeNotNil applies the NotNil predicate on the "vat_code" field.
func VatCodeNotNil() predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNotNull(FieldVatCode))
}

// VatCodeEqualFold applies the EqualFold predicate on the "vat_code" field.
func VatCodeEqualFold(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldEqualFold(FieldVatCode, v))
}

// VatCodeContainsFold applies the ContainsFold predicate on the "vat_code" field.
func VatCodeContainsFold(v string) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldContainsFold(FieldVatCode, v))
}

// MetaIsNil applies the IsNil predicate on the "meta" field.
func MetaIsNil() predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldIsNull(FieldMeta))
}

// MetaNotNil applies the NotNil predicate on the "meta" field.
func MetaNotNil() predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.FieldNotNull(FieldMeta))
}

// HasReceipt applies the HasEdge predicate on the "receipt" edge.
func HasReceipt() predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReceiptTable, ReceiptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReceiptWith applies the HasEdge predicate on the "receipt" edge with a given conditions (other predicates).
func HasReceiptWith(preds ...predicate.Receipt) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(func(s *sql.Selector) {
		step := newReceiptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMatchedProduct applies the HasEdge predicate on the "matched_product" edge.
func HasMatchedProduct() predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MatchedProductTable, MatchedProductColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMatchedProductWith applies the HasEdge predicate on the "matched_product" edge with a given conditions (other predicates).
func HasMatchedProductWith(preds ...predicate.Product) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(func(s *sql.Selector) {
		step := newMatchedProductStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReceiptLineItem) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReceiptLineItem) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReceiptLineItem) predicate.ReceiptLineItem {
	return predicate.ReceiptLineItem(sql.NotPredicates(p))
}
