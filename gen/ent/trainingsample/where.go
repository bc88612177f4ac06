// Code generated by ent, DO NOT EDIT.

package trainingsample

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codemarcinu/pantry-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLTE(FieldID, id))
}

// ReceiptID applies equality check predicate on the "receipt_id" field. It's identical to ReceiptIDEQ.
func ReceiptID(v uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldReceiptID, v))
}

// WeakText applies equality check predicate on the "weak_text" field. It's identical to WeakTextEQ.
func WeakText(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldWeakText, v))
}

// StrongText applies equality check predicate on the "strong_text" field. It's identical to StrongTextEQ.
func StrongText(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldStrongText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldCreatedAt, v))
}

// ReceiptIDEQ applies the EQ predicate on the "receipt_id" field.
func ReceiptIDEQ(v uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldReceiptID, v))
}

// ReceiptIDNEQ applies the NEQ predicate on the "receipt_id" field.
func ReceiptIDNEQ(v uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNEQ(FieldReceiptID, v))
}

// ReceiptIDIn applies the In predicate on the "receipt_id" field.
func ReceiptIDIn(vs ...uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldIn(FieldReceiptID, vs...))
}

// ReceiptIDNotIn applies the NotIn predicate on the "receipt_id" field.
func ReceiptIDNotIn(vs ...uuid.UUID) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNotIn(FieldReceiptID, vs...))
}

// WeakTextEQ applies the EQ predicate on the "weak_text" field.
func WeakTextEQ(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldWeakText, v))
}

// WeakTextNEQ applies the NEQ predicate on the "weak_text" field.
func WeakTextNEQ(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNEQ(FieldWeakText, v))
}

// WeakTextIn applies the In predicate on the "weak_text" field.
func WeakTextIn(vs ...string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldIn(FieldWeakText, vs...))
}

// WeakTextNotIn applies the NotIn predicate on the "weak_text" field.
func WeakTextNotIn(vs ...string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNotIn(FieldWeakText, vs...))
}

// WeakTextGT applies the GT predicate on the "weak_text" field.
func WeakTextGT(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGT(FieldWeakText, v))
}

// WeakTextGTE applies the GTE predicate on the "weak_text" field.
func WeakTextGTE(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGTE(FieldWeakText, v))
}

// WeakTextLT applies the LT predicate on the "weak_text" field.
func WeakTextLT(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLT(FieldWeakText, v))
}

// WeakTextLTE applies the LTE predicate on the "weak_text" field.
func WeakTextLTE(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLTE(FieldWeakText, v))
}

// WeakTextContains applies the Contains predicate on the "weak_text" field.
func WeakTextContains(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldContains(FieldWeakText, v))
}

// WeakTextHasPrefix applies the HasPrefix predicate on the "weak_text" field.
func WeakTextHasPrefix(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldHasPrefix(FieldWeakText, v))
}

// WeakTextHasSuffix applies the HasSuffix predicate on the "weak_text" field.
func WeakTextHasSuffix(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldHasSuffix(FieldWeakText, v))
}

// WeakTextEqualFold applies the EqualFold predicate on the "weak_text" field.
func WeakTextEqualFold(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEqualFold(FieldWeakText, v))
}

// WeakTextContainsFold applies the ContainsFold predicate on the "weak_text" field.
func WeakTextContainsFold(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldContainsFold(FieldWeakText, v))
}

// StrongTextEQ applies the EQ predicate on the "strong_text" field.
func StrongTextEQ(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldStrongText, v))
}

// StrongTextNEQ applies the NEQ predicate on the "strong_text" field.
func StrongTextNEQ(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNEQ(FieldStrongText, v))
}

// StrongTextIn applies the In predicate on the "strong_text" field.
func StrongTextIn(vs ...string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldIn(FieldStrongText, vs...))
}

// StrongTextNotIn applies the NotIn predicate on the "strong_text" field.
func StrongTextNotIn(vs ...string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNotIn(FieldStrongText, vs...))
}

// StrongTextGT applies the GT predicate on the "strong_text" field.
func StrongTextGT(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGT(FieldStrongText, v))
}

// StrongTextGTE applies the GTE predicate on the "strong_text" field.
func StrongTextGTE(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGTE(FieldStrongText, v))
}

// StrongTextLT applies the LT predicate on the "strong_text" field.
func StrongTextLT(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLT(FieldStrongText, v))
}

// StrongTextLTE applies the LTE predicate on the "strong_text" field.
func StrongTextLTE(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLTE(FieldStrongText, v))
}

// StrongTextContains applies the Contains predicate on the "strong_text" field.
func StrongTextContains(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldContains(FieldStrongText, v))
}

// StrongTextHasPrefix applies the HasPrefix predicate on the "strong_text" field.
func StrongTextHasPrefix(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldHasPrefix(FieldStrongText, v))
}

// StrongTextHasSuffix applies the HasSuffix predicate on the "strong_text" field.
func StrongTextHasSuffix(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldHasSuffix(FieldStrongText, v))
}

// StrongTextEqualFold applies the EqualFold predicate on the "strong_text" field.
func StrongTextEqualFold(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEqualFold(FieldStrongText, v))
}

// StrongTextContainsFold applies the ContainsFold predicate on the "strong_text" field.
func StrongTextContainsFold(v string) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldContainsFold(FieldStrongText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TrainingSample {
	return predicate.TrainingSample(sql.FieldLTE(FieldCreatedAt, v))
}

// HasReceipt applies the HasEdge predicate on the "receipt" edge.
func HasReceipt() predicate.TrainingSample {
	return predicate.TrainingSample(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReceiptTable, ReceiptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReceiptWith applies the HasEdge predicate on the "receipt" edge with a given conditions (other predicates).
func HasReceiptWith(preds ...predicate.Receipt) predicate.TrainingSample {
	return predicate.TrainingSample(func(s *sql.Selector) {
		step := newReceiptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrainingSample) predicate.TrainingSample {
	return predicate.TrainingSample(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrainingSample) predicate.TrainingSample {
	return predicate.TrainingSample(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrainingSample) predicate.TrainingSample {
	return predicate.TrainingSample(sql.NotPredicates(p))
}
