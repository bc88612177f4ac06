// Code generated by ent, DO NOT EDIT.

package inventoryitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codemarcinu/pantry-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldID, id))
}

// ProductID applies equality check predicate on the "product_id" field. It's identical to ProductIDEQ.
func ProductID(v uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldProductID, v))
}

// PurchaseDate applies equality check predicate on the "purchase_date" field. It's identical to PurchaseDateEQ.
func PurchaseDate(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldPurchaseDate, v))
}

// ExpiryDate applies equality check predicate on the "expiry_date" field. It's identical to ExpiryDateEQ.
func ExpiryDate(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldExpiryDate, v))
}

// QuantityRemaining applies equality check predicate on the "quantity_remaining" field. It's identical to QuantityRemainingEQ.
func QuantityRemaining(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldQuantityRemaining, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldUnit, v))
}

// StorageLocation applies equality check predicate on the "storage_location" field. It's identical to StorageLocationEQ.
func StorageLocation(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldStorageLocation, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldBatchID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProductIDEQ applies the EQ predicate on the "product_id" field.
func ProductIDEQ(v uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldProductID, v))
}

// ProductIDNEQ applies the NEQ predicate on the "product_id" field.
func ProductIDNEQ(v uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldProductID, v))
}

// ProductIDIn applies the In predicate on the "product_id" field.
func ProductIDIn(vs ...uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldProductID, vs...))
}

// ProductIDNotIn applies the NotIn predicate on the "product_id" field.
func ProductIDNotIn(vs ...uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldProductID, vs...))
}

// PurchaseDateEQ applies the EQ predicate on the "purchase_date" field.
func PurchaseDateEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldPurchaseDate, v))
}

// PurchaseDateNEQ applies the NEQ predicate on the "purchase_date" field.
func PurchaseDateNEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldPurchaseDate, v))
}

// PurchaseDateIn applies the In predicate on the "purchase_date" field.
func PurchaseDateIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldPurchaseDate, vs...))
}

// PurchaseDateNotIn applies the NotIn predicate on the "purchase_date" field.
func PurchaseDateNotIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldPurchaseDate, vs...))
}

// PurchaseDateGT applies the GT predicate on the "purchase_date" field.
func PurchaseDateGT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldPurchaseDate, v))
}

// PurchaseDateGTE applies the GTE predicate on the "purchase_date" field.
func PurchaseDateGTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldPurchaseDate, v))
}

// PurchaseDateLT applies the LT predicate on the "purchase_date" field.
func PurchaseDateLT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldPurchaseDate, v))
}

// PurchaseDateLTE applies the LTE predicate on the "purchase_date" field.
func PurchaseDateLTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldPurchaseDate, v))
}

// ExpiryDateEQ applies the EQ predicate on the "expiry_date" field.
func ExpiryDateEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldExpiryDate, v))
}

// ExpiryDateNEQ applies the NEQ predicate on the "expiry_date" field.
func ExpiryDateNEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldExpiryDate, v))
}

// ExpiryDateIn applies the In predicate on the "expiry_date" field.
func ExpiryDateIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldExpiryDate, vs...))
}

// ExpiryDateNotIn applies the NotIn predicate on the "expiry_date" field.
func ExpiryDateNotIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldExpiryDate, vs...))
}

// ExpiryDateGT applies the GT predicate on the "expiry_date" field.
func ExpiryDateGT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldExpiryDate, v))
}

// ExpiryDateGTE applies the GTE predicate on the "expiry_date" field.
func ExpiryDateGTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldExpiryDate, v))
}

// ExpiryDateLT applies the LT predicate on the "expiry_date" field.
func ExpiryDateLT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldExpiryDate, v))
}

// ExpiryDateLTE applies the LTE predicate on the "expiry_date" field.
func ExpiryDateLTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldExpiryDate, v))
}

// ExpiryDateIsNil applies the IsNil predicate on the "expiry_date" field.
func ExpiryDateIsNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIsNull(FieldExpiryDate))
}

// ExpiryDateNotNil applies the NotNil predicate on the "expiry_date" field.
func ExpiryDateNotNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotNull(FieldExpiryDate))
}

// QuantityRemainingEQ applies the EQ predicate on the "quantity_remaining" field.
func QuantityRemainingEQ(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldQuantityRemaining, v))
}

// QuantityRemainingNEQ applies the NEQ predicate on the "quantity_remaining" field.
func QuantityRemainingNEQ(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldQuantityRemaining, v))
}

// QuantityRemainingIn applies the In predicate on the "quantity_remaining" field.
func QuantityRemainingIn(vs ...float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldQuantityRemaining, vs...))
}

// QuantityRemainingNotIn applies the NotIn predicate on the "quantity_remaining" field.
func QuantityRemainingNotIn(vs ...float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldQuantityRemaining, vs...))
}

// QuantityRemainingGT applies the GT predicate on the "quantity_remaining" field.
func QuantityRemainingGT(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldQuantityRemaining, v))
}

// QuantityRemainingGTE applies the GTE predicate on the "quantity_remaining" field.
func QuantityRemainingGTE(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldQuantityRemaining, v))
}

// QuantityRemainingLT applies the LT predicate on the "quantity_remaining" field.
func QuantityRemainingLT(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldQuantityRemaining, v))
}

// QuantityRemainingLTE applies the LTE predicate on the "quantity_remaining" field.
func QuantityRemainingLTE(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldQuantityRemaining, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContainsFold(FieldUnit, v))
}

// StorageLocationEQ applies the EQ predicate on the "storage_location" field.
func StorageLocationEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldStorageLocation, v))
}

// StorageLocationNEQ applies the NEQ predicate on the "storage_location" field.
func StorageLocationNEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldStorageLocation, v))
}

// StorageLocationIn applies the In predicate on the "storage_location" field.
func StorageLocationIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldStorageLocation, vs...))
}

// StorageLocationNotIn applies the NotIn predicate on the "storage_location" field.
func StorageLocationNotIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldStorageLocation, vs...))
}

// StorageLocationGT applies the GT predicate on the "storage_location" field.
func StorageLocationGT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldStorageLocation, v))
}

// StorageLocationGTE applies the GTE predicate on the "storage_location" field.
func StorageLocationGTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldStorageLocation, v))
}

// StorageLocationLT applies the LT predicate on the "storage_location" field.
func StorageLocationLT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldStorageLocation, v))
}

// StorageLocationLTE applies the LTE predicate on the "storage_location" field.
func StorageLocationLTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldStorageLocation, v))
}

// StorageLocationContains applies the Contains predicate on the "storage_location" field.
func StorageLocationContains(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContains(FieldStorageLocation, v))
}

// StorageLocationHasPrefix applies the HasPrefix predicate on the "storage_location" field.
func StorageLocationHasPrefix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasPrefix(FieldStorageLocation, v))
}

// StorageLocationHasSuffix applies the HasSuffix predicate on the "storage_location" field.
func StorageLocationHasSuffix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasSuffix(FieldStorageLocation, v))
}

// StorageLocationEqualFold applies the EqualFold predicate on the "storage_location" field.
func StorageLocationEqualFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEqualFold(FieldStorageLocation, v))
}

// StorageLocationContainsFold applies the ContainsFold predicate on the "storage_location" field.
func StorageLocationContainsFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContainsFold(FieldStorageLocation, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContainsFold(FieldBatchID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProduct applies the HasEdge predicate on the "product" edge.
func HasProduct() predicate.InventoryItem {
	return predicate.InventoryItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProductTable, ProductColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProductWith applies the HasEdge predicate on the "product" edge with a given conditions (other predicates).
func HasProductWith(preds ...predicate.Product) predicate.InventoryItem {
	return predicate.InventoryItem(func(s *sql.Selector) {
		step := newProductStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasConsumptionEvents applies the HasEdge predicate on the "consumption_events" edge.
func HasConsumptionEvents() predicate.InventoryItem {
	return predicate.InventoryItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ConsumptionEventsTable, ConsumptionEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConsumptionEventsWith applies the HasEdge predicate on the "consumption_events" edge with a given conditions (other predicates).
func HasConsumptionEventsWith(preds ...predicate.ConsumptionEvent) predicate.InventoryItem {
	return predicate.InventoryItem(func(s *sql.Selector) {
		step := newConsumptionEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InventoryItem) predicate.InventoryItem {
	return predicate.InventoryItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InventoryItem) predicate.InventoryItem {
	return predicate.InventoryItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InventoryItem) predicate.InventoryItem {
	return predicate.InventoryItem(sql.NotPredicates(p))
}
