// Code generated by ent, DO NOT EDIT.

package consumptionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codemarcinu/pantry-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldLTE(FieldID, id))
}

// InventoryItemID applies equality check predicate on the "inventory_item_id" field. It's identical to InventoryItemIDEQ.
func InventoryItemID(v uuid.UUID) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldEQ(FieldInventoryItemID, v))
}

// ConsumedQty applies equality check predicate on the "consumed_qty" field. It's identical to ConsumedQtyEQ.
func ConsumedQty(v float64) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldEQ(FieldConsumedQty, v))
}

// ConsumedAt applies equality check predicate on the "consumed_at" field. It's identical to ConsumedAtEQ.
func ConsumedAt(v time.Time) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldEQ(FieldConsumedAt, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// InventoryItemIDEQ applies the EQ predicate on the "inventory_item_id" field.
func InventoryItemIDEQ(v uuid.UUID) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldEQ(FieldInventoryItemID, v))
}

// InventoryItemIDNEQ applies the NEQ predicate on the "inventory_item_id" field.
func InventoryItemIDNEQ(v uuid.UUID) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldNEQ(FieldInventoryItemID, v))
}

// InventoryItemIDIn applies the In predicate on the "inventory_item_id" field.
func InventoryItemIDIn(vs ...uuid.UUID) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldIn(FieldInventoryItemID, vs...))
}

// InventoryItemIDNotIn applies the NotIn predicate on the "inventory_item_id" field.
func InventoryItemIDNotIn(vs ...uuid.UUID) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldNotIn(FieldInventoryItemID, vs...))
}

// ConsumedQtyEQ applies the EQ predicate on the "consumed_qty" field.
func ConsumedQtyEQ(v float64) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldEQ(FieldConsumedQty, v))
}

// ConsumedQtyNEQ applies the NEQ predicate on the "consumed_qty" field.
func ConsumedQtyNEQ(v float64) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldNEQ(FieldConsumedQty, v))
}

// ConsumedQtyIn applies the In predicate on the "consumed_qty" field.
func ConsumedQtyIn(vs ...float64) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldIn(FieldConsumedQty, vs...))
}

// ConsumedQtyNotIn applies the NotIn predicate on the "consumed_qty" field.
func ConsumedQtyNotIn(vs ...float64) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldNotIn(FieldConsumedQty, vs...))
}

// ConsumedQtyGT applies the GT predicate on the "consumed_qty" field.
func ConsumedQtyGT(v float64) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldGT(FieldConsumedQty, v))
}

// ConsumedQtyGTE applies the GTE predicate on the "consumed_qty" field.
func ConsumedQtyGTE(v float64) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldGTE(FieldConsumedQty, v))
}

// ConsumedQtyLT applies the LT predicate on the "consumed_qty" field.
func ConsumedQtyLT(v float64) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldLT(FieldConsumedQty, v))
}

// ConsumedQtyLTE applies the LTE predicate on the "consumed_qty" field.
func ConsumedQtyLTE(v float64) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldLTE(FieldConsumedQty, v))
}

// ConsumedAtEQ applies the EQ predicate on the "consumed_at" field.
func ConsumedAtEQ(v time.Time) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldEQ(FieldConsumedAt, v))
}

// ConsumedAtNEQ applies the NEQ predicate on the "consumed_at" field.
func ConsumedAtNEQ(v time.Time) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldNEQ(FieldConsumedAt, v))
}

// ConsumedAtIn applies the In predicate on the "consumed_at" field.
func ConsumedAtIn(vs ...time.Time) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldIn(FieldConsumedAt, vs...))
}

// ConsumedAtNotIn applies the NotIn predicate on the "consumed_at" field.
func ConsumedAtNotIn(vs ...time.Time) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldNotIn(FieldConsumedAt, vs...))
}

// ConsumedAtGT applies the GT predicate on the "consumed_at" field.
func ConsumedAtGT(v time.Time) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldGT(FieldConsumedAt, v))
}

// ConsumedAtGTE applies the GTE predicate on the "consumed_at" field.
func ConsumedAtGTE(v time.Time) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldGTE(FieldConsumedAt, v))
}

// ConsumedAtLT applies the LT predicate on the "consumed_at" field.
func ConsumedAtLT(v time.Time) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldLT(FieldConsumedAt, v))
}

// ConsumedAtLTE applies the LTE predicate on the "consumed_at" field.
func ConsumedAtLTE(v time.Time) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldLTE(FieldConsumedAt, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasInventoryItem applies the HasEdge predicate on the "inventory_item" edge.
func HasInventoryItem() predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InventoryItemTable, InventoryItemColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInventoryItemWith applies the HasEdge predicate on the "inventory_item" edge with a given conditions (other predicates).
func HasInventoryItemWith(preds ...predicate.InventoryItem) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(func(s *sql.Selector) {
		step := newInventoryItemStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConsumptionEvent) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConsumptionEvent) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConsumptionEvent) predicate.ConsumptionEvent {
	return predicate.ConsumptionEvent(sql.NotPredicates(p))
}
