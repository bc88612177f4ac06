// Code generated by ent, DO NOT EDIT.

package receipt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codemarcinu/pantry-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldID, id))
}

// StoreName applies equality check predicate on the "store_name" field. It's identical to StoreNameEQ.
func StoreName(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldStoreName, v))
}

// PurchasedAt applies equality check predicate on the "purchased_at" field. It's identical to PurchasedAtEQ.
func PurchasedAt(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldPurchasedAt, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldTotal, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCurrency, v))
}

// SourcePath applies equality check predicate on the "source_path" field. It's identical to SourcePathEQ.
func SourcePath(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldSourcePath, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldContentHash, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldStatus, v))
}

// ProcessingNotes applies equality check predicate on the "processing_notes" field. It's identical to ProcessingNotesEQ.
func ProcessingNotes(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldProcessingNotes, v))
}

// TotalDiff applies equality check predicate on the "total_diff" field. It's identical to TotalDiffEQ.
func TotalDiff(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldTotalDiff, v))
}

// Cancelled applies equality check predicate on the "cancelled" field. It's identical to CancelledEQ.
func Cancelled(v bool) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCancelled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldUpdatedAt, v))
}

// StoreNameEQ applies the EQ predicate on the "store_name" field.
func StoreNameEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldStoreName, v))
}

// StoreNameNEQ applies the NEQ predicate on the "store_name" field.
func StoreNameNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldStoreName, v))
}

// StoreNameIn applies the In predicate on the "store_name" field.
func StoreNameIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldStoreName, vs...))
}

// StoreNameNotIn applies the NotIn predicate on the "store_name" field.
func StoreNameNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldStoreName, vs...))
}

// StoreNameGT applies the GT predicate on the "store_name" field.
func StoreNameGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldStoreName, v))
}

// StoreNameGTE applies the GTE predicate on the "store_name" field.
func StoreNameGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldStoreName, v))
}

// StoreNameLT applies the LT predicate on the "store_name" field.
func StoreNameLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldStoreName, v))
}

// StoreNameLTE applies the LTE predicate on the "store_name" field.
func StoreNameLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldStoreName, v))
}

// StoreNameContains applies the Contains predicate on the "store_name" field.
func StoreNameContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldStoreName, v))
}

// StoreNameHasPrefix applies the HasPrefix predicate on the "store_name" field.
func StoreNameHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldStoreName, v))
}

// StoreNameHasSuffix applies the HasSuffix predicate on the "store_name" field.
func StoreNameHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldStoreName, v))
}

// StoreNameIsNil applies the IsNil predicate on the "store_name" field.
func StoreNameIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldStoreName))
}

// StoreNameNotNil applies the NotNil predicate on the "store_name" field.
func StoreNameNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldStoreName))
}

// StoreNameEqualFold applies the EqualFold predicate on the "store_name" field.
func StoreNameEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldStoreName, v))
}

// StoreNameContainsFold applies the ContainsFold predicate on the "store_name" field.
func StoreNameContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldStoreName, v))
}

// PurchasedAtEQ applies the EQ predicate on the "purchased_at" field.
func PurchasedAtEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldPurchasedAt, v))
}

// PurchasedAtNEQ applies the NEQ predicate on the "purchased_at" field.
func PurchasedAtNEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldPurchasedAt, v))
}

// PurchasedAtIn applies the In predicate on the "purchased_at" field.
func PurchasedAtIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldPurchasedAt, vs...))
}

// PurchasedAtNotIn applies the NotIn predicate on the "purchased_at" field.
func PurchasedAtNotIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldPurchasedAt, vs...))
}

// PurchasedAtGT applies the GT predicate on the "purchased_at" field.
func PurchasedAtGT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldPurchasedAt, v))
}

// PurchasedAtGTE applies the GTE predicate on the "purchased_at" field.
func PurchasedAtGTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldPurchasedAt, v))
}

// PurchasedAtLT applies the LT predicate on the "purchased_at" field.
func PurchasedAtLT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldPurchasedAt, v))
}

// PurchasedAtLTE applies the LTE predicate on the "purchased_at" field.
func PurchasedAtLTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldPurchasedAt, v))
}

// PurchasedAtIsNil applies the IsNil predicate on the "purchased_at" field.
func PurchasedAtIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldPurchasedAt))
}

// PurchasedAtNotNil applies the NotNil predicate on the "purchased_at" field.
func PurchasedAtNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldPurchasedAt))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldTotal, v))
}

// TotalIsNil applies the IsNil predicate on the "total" field.
func TotalIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldTotal))
}

// TotalNotNil applies the NotNil predicate on the "total" field.
func TotalNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldTotal))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldCurrency, v))
}

// RawExtractionIsNil applies the IsNil predicate on the "raw_extraction" field.
func RawExtractionIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldRawExtraction))
}

// RawExtractionNotNil applies the NotNil predicate on the "raw_extraction" field.
func RawExtractionNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldRawExtraction))
}

// SourcePathEQ applies the EQ predicate on the "source_path" field.
func SourcePathEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldSourcePath, v))
}

// SourcePathNEQ applies the NEQ predicate on the "source_path" field.
func SourcePathNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldSourcePath, v))
}

// SourcePathIn applies the In predicate on the "source_path" field.
func SourcePathIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldSourcePath, vs...))
}

// SourcePathNotIn applies the NotIn predicate on the "source_path" field.
func SourcePathNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldSourcePath, vs...))
}

// SourcePathGT applies the GT predicate on the "source_path" field.
func SourcePathGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldSourcePath, v))
}

// SourcePathGTE applies the GTE predicate on the "source_path" field.
func SourcePathGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldSourcePath, v))
}

// SourcePathLT applies the LT predicate on the "source_path" field.
func SourcePathLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldSourcePath, v))
}

// SourcePathLTE applies the LTE predicate on the "source_path" field.
func SourcePathLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldSourcePath, v))
}

// SourcePathContains applies the Contains predicate on the "source_path" field.
func SourcePathContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldSourcePath, v))
}

// SourcePathHasPrefix applies the HasPrefix predicate on the "source_path" field.
func SourcePathHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldSourcePath, v))
}

// SourcePathHasSuffix applies the HasSuffix predicate on the "source_path" field.
func SourcePathHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldSourcePath, v))
}

// SourcePathEqualFold applies the EqualFold predicate on the "source_path" field.
func SourcePathEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldSourcePath, v))
}

// SourcePathContainsFold applies the ContainsFold predicate on the "source_path" field.
func SourcePathContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldSourcePath, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldContentHash, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldStatus, v))
}

// ProcessingNotesEQ applies the EQ predicate on the "processing_notes" field.
func ProcessingNotesEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldProcessingNotes, v))
}

// ProcessingNotesNEQ applies the NEQ predicate on the "processing_notes" field.
func ProcessingNotesNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldProcessingNotes, v))
}

// ProcessingNotesIn applies the In predicate on the "processing_notes" field.
func ProcessingNotesIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldProcessingNotes, vs...))
}

// ProcessingNotesNotIn applies the NotIn predicate on the "processing_notes" field.
func ProcessingNotesNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldProcessingNotes, vs...))
}

// ProcessingNotesGT applies the GT predicate on the "processing_notes" field.
func ProcessingNotesGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldProcessingNotes, v))
}

// ProcessingNotesGTE applies the GTE predicate on the "processing_notes" field.
func ProcessingNotesGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldProcessingNotes, v))
}

// ProcessingNotesLT applies the LT predicate on the "processing_notes" field.
func ProcessingNotesLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldProcessingNotes, v))
}

// ProcessingNotesLTE applies the LTE predicate on the "processing_notes" field.
func ProcessingNotesLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldProcessingNotes, v))
}

// ProcessingNotesContains applies the Contains predicate on the "processing_notes" field.
func ProcessingNotesContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldProcessingNotes, v))
}

// ProcessingNotesHasPrefix applies the HasPrefix predicate on the "processing_notes" field.
func ProcessingNotesHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldProcessingNotes, v))
}

// ProcessingNotesHasSuffix applies the HasSuffix predicate on the "processing_notes" field.
func ProcessingNotesHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldProcessingNotes, v))
}

// ProcessingNotesEqualFold applies the EqualFold predicate on the "processing_notes" field.
func ProcessingNotesEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldProcessingNotes, v))
}

// ProcessingNotesContainsFold applies the ContainsFold predicate on the "processing_notes" field.
func ProcessingNotesContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldProcessingNotes, v))
}

// TotalDiffEQ applies the EQ predicate on the "total_diff" field.
func TotalDiffEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldTotalDiff, v))
}

// TotalDiffNEQ applies the NEQ predicate on the "total_diff" field.
func TotalDiffNEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldTotalDiff, v))
}

// TotalDiffIn applies the In predicate on the "total_diff" field.
func TotalDiffIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldTotalDiff, vs...))
}

// TotalDiffNotIn applies the NotIn predicate on the "total_diff" field.
func TotalDiffNotIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldTotalDiff, vs...))
}

// TotalDiffGT applies the GT predicate on the "total_diff" field.
func TotalDiffGT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldTotalDiff, v))
}

// TotalDiffGTE applies the GTE predicate on the "total_diff" field.
func TotalDiffGTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldTotalDiff, v))
}

// TotalDiffLT applies the LT predicate on the "total_diff" field.
func TotalDiffLT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldTotalDiff, v))
}

// TotalDiffLTE applies the LTE predicate on the "total_diff" field.
func TotalDiffLTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldTotalDiff, v))
}

// TotalDiffIsNil applies the IsNil predicate on the "total_diff" field.
func TotalDiffIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldTotalDiff))
}

// TotalDiffNotNil applies the NotNil predicate on the "total_diff" field.
func TotalDiffNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldTotalDiff))
}

// CancelledEQ applies the EQ predicate on the "cancelled" field.
func CancelledEQ(v bool) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCancelled, v))
}

// CancelledNEQ applies the NEQ predicate on the "cancelled" field.
func CancelledNEQ(v bool) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldCancelled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasLineItems applies the HasEdge predicate on the "line_items" edge.
func HasLineItems() predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LineItemsTable, LineItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLineItemsWith applies the HasEdge predicate on the "line_items" edge with a given conditions (other predicates).
func HasLineItemsWith(preds ...predicate.ReceiptLineItem) predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := newLineItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTrainingSamples applies the HasEdge predicate on the "training_samples" edge.
func HasTrainingSamples() predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TrainingSamplesTable, TrainingSamplesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTrainingSamplesWith applies the HasEdge predicate on the "training_samples" edge with a given conditions (other predicates).
func HasTrainingSamplesWith(preds ...predicate.TrainingSample) predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := newTrainingSamplesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Receipt) predicate.Receipt {
	return predicate.Receipt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Receipt) predicate.Receipt {
	return predicate.Receipt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Receipt) predicate.Receipt {
	return predicate.Receipt(sql.NotPredicates(p))
}
