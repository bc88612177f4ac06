// Code generated by ent, DO NOT EDIT.

package correctionpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codemarcinu/pantry-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldLTE(FieldID, id))
}

// ErrorPattern applies equality check predicate on the "error_pattern" field. It's identical to ErrorPatternEQ.
func ErrorPattern(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldErrorPattern, v))
}

// CorrectPattern applies equality check predicate on the "correct_pattern" field. It's identical to CorrectPatternEQ.
func CorrectPattern(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldCorrectPattern, v))
}

// IsRegex applies equality check predicate on the "is_regex" field. It's identical to IsRegexEQ.
func IsRegex(v bool) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldIsRegex, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldConfidence, v))
}

// TimesApplied applies equality check predicate on the "times_applied" field. It's identical to TimesAppliedEQ.
func TimesApplied(v int) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldTimesApplied, v))
}

// SampleCount applies equality check predicate on the "sample_count" field. It's identical to SampleCountEQ.
func SampleCount(v int) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldSampleCount, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldIsActive, v))
}

// HumanDeactivated applies equality check predicate on the "human_deactivated" field. It's identical to HumanDeactivatedEQ.
func HumanDeactivated(v bool) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldHumanDeactivated, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldUpdatedAt, v))
}

// ErrorPatternEQ applies the EQ predicate on the "error_pattern" field.
func ErrorPatternEQ(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldErrorPattern, v))
}

// ErrorPatternNEQ applies the NEQ predicate on the "error_pattern" field.
func ErrorPatternNEQ(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldNEQ(FieldErrorPattern, v))
}

// ErrorPatternIn applies the In predicate on the "error_pattern" field.
func ErrorPatternIn(vs ...string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldIn(FieldErrorPattern, vs...))
}

// ErrorPatternNotIn applies the NotIn predicate on the "error_pattern" field.
func ErrorPatternNotIn(vs ...string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldNotIn(FieldErrorPattern, vs...))
}

// ErrorPatternGT applies the GT predicate on the "error_pattern" field.
func ErrorPatternGT(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldGT(FieldErrorPattern, v))
}

// ErrorPatternGTE applies the GTE predicate on the "error_pattern" field.
func ErrorPatternGTE(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldGTE(FieldErrorPattern, v))
}

// ErrorPatternLT applies the LT predicate on the "error_pattern" field.
func ErrorPatternLT(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldLT(FieldErrorPattern, v))
}

// ErrorPatternLTE applies the LTE predicate on the "error_pattern" field.
func ErrorPatternLTE(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldLTE(FieldErrorPattern, v))
}

// ErrorPatternContains applies the Contains predicate on the "error_pattern" field.
func ErrorPatternContains(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldContains(FieldErrorPattern, v))
}

// ErrorPatternHasPrefix applies the HasPrefix predicate on the "error_pattern" field.
func ErrorPatternHasPrefix(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldHasPrefix(FieldErrorPattern, v))
}

// ErrorPatternHasSuffix applies the HasSuffix predicate on the "error_pattern" field.
func ErrorPatternHasSuffix(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldHasSuffix(FieldErrorPattern, v))
}

// ErrorPatternEqualFold applies the EqualFold predicate on the "error_pattern" field.
func ErrorPatternEqualFold(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEqualFold(FieldErrorPattern, v))
}

// ErrorPatternContainsFold applies the ContainsFold predicate on the "error_pattern" field.
func ErrorPatternContainsFold(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldContainsFold(FieldErrorPattern, v))
}

// CorrectPatternEQ applies the EQ predicate on the "correct_pattern" field.
func CorrectPatternEQ(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldCorrectPattern, v))
}

// CorrectPatternNEQ applies the NEQ predicate on the "correct_pattern" field.
func CorrectPatternNEQ(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldNEQ(FieldCorrectPattern, v))
}

// CorrectPatternIn applies the In predicate on the "correct_pattern" field.
func CorrectPatternIn(vs ...string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldIn(FieldCorrectPattern, vs...))
}

// CorrectPatternNotIn applies the NotIn predicate on the "correct_pattern" field.
func CorrectPatternNotIn(vs ...string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldNotIn(FieldCorrectPattern, vs...))
}

// CorrectPatternGT applies the GT predicate on the "correct_pattern" field.
func CorrectPatternGT(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldGT(FieldCorrectPattern, v))
}

// CorrectPatternGTE applies the GTE predicate on the "correct_pattern" field.
func CorrectPatternGTE(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldGTE(FieldCorrectPattern, v))
}

// CorrectPatternLT applies the LT predicate on the "correct_pattern" field.
func CorrectPatternLT(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldLT(FieldCorrectPattern, v))
}

// CorrectPatternLTE applies the LTE predicate on the "correct_pattern" field.
func CorrectPatternLTE(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldLTE(FieldCorrectPattern, v))
}

// CorrectPatternContains applies the Contains predicate on the "correct_pattern" field.
func CorrectPatternContains(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldContains(FieldCorrectPattern, v))
}

// CorrectPatternHasPrefix applies the HasPrefix predicate on the "correct_pattern" field.
func CorrectPatternHasPrefix(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldHasPrefix(FieldCorrectPattern, v))
}

// CorrectPatternHasSuffix applies the HasSuffix predicate on the "correct_pattern" field.
func CorrectPatternHasSuffix(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldHasSuffix(FieldCorrectPattern, v))
}

// CorrectPatternEqualFold applies the EqualFold predicate on the "correct_pattern" field.
func CorrectPatternEqualFold(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEqualFold(FieldCorrectPattern, v))
}

// CorrectPatternContainsFold applies the ContainsFold predicate on the "correct_pattern" field.
func CorrectPatternContainsFold(v string) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldContainsFold(FieldCorrectPattern, v))
}

// IsRegexEQ applies the EQ predicate on the "is_regex" field.
func IsRegexEQ(v bool) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldIsRegex, v))
}

// IsRegexNEQ applies the NEQ predicate on the "is_regex" field.
func IsRegexNEQ(v bool) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldNEQ(FieldIsRegex, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldLTE(FieldConfidence, v))
}

// TimesAppliedEQ applies the EQ predicate on the "times_applied" field.
func TimesAppliedEQ(v int) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldTimesApplied, v))
}

// TimesAppliedNEQ applies the NEQ predicate on the "times_applied" field.
func TimesAppliedNEQ(v int) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldNEQ(FieldTimesApplied, v))
}

// TimesAppliedIn applies the In predicate on the "times_applied" field.
func TimesAppliedIn(vs ...int) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldIn(FieldTimesApplied, vs...))
}

// TimesAppliedNotIn applies the NotIn predicate on the "times_applied" field.
func TimesAppliedNotIn(vs ...int) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldNotIn(FieldTimesApplied, vs...))
}

// TimesAppliedGT applies the GT predicate on the "times_applied" field.
func TimesAppliedGT(v int) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldGT(FieldTimesApplied, v))
}

// TimesAppliedGTE applies the GTE predicate on the "times_applied" field.
func TimesAppliedGTE(v int) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldGTE(FieldTimesApplied, v))
}

// TimesAppliedLT applies the LT predicate on the "times_applied" field.
func TimesAppliedLT(v int) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldLT(FieldTimesApplied, v))
}

// TimesAppliedLTE applies the LTE predicate on the "times_applied" field.
func TimesAppliedLTE(v int) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldLTE(FieldTimesApplied, v))
}

// SampleCountEQ applies the EQ predicate on the "sample_count" field.
func SampleCountEQ(v int) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldSampleCount, v))
}

// SampleCountNEQ applies the NEQ predicate on the "sample_count" field.
func SampleCountNEQ(v int) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldNEQ(FieldSampleCount, v))
}

// SampleCountIn applies the In predicate on the "sample_count" field.
func SampleCountIn(vs ...int) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldIn(FieldSampleCount, vs...))
}

// SampleCountNotIn applies the NotIn predicate on the "sample_count" field.
func SampleCountNotIn(vs ...int) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldNotIn(FieldSampleCount, vs...))
}

// SampleCountGT applies the GT predicate on the "sample_count" field.
func SampleCountGT(v int) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldGT(FieldSampleCount, v))
}

// SampleCountGTE applies the GTE predicate on the "sample_count" field.
func SampleCountGTE(v int) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldGTE(FieldSampleCount, v))
}

// SampleCountLT applies the LT predicate on the "sample_count" field.
func SampleCountLT(v int) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldLT(FieldSampleCount, v))
}

// SampleCountLTE applies the LTE predicate on the "sample_count" field.
func SampleCountLTE(v int) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldLTE(FieldSampleCount, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldNEQ(FieldIsActive, v))
}

// HumanDeactivatedEQ applies the EQ predicate on the "human_deactivated" field.
func HumanDeactivatedEQ(v bool) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldHumanDeactivated, v))
}

// HumanDeactivatedNEQ applies the NEQ predicate on the "human_deactivated" field.
func HumanDeactivatedNEQ(v bool) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldNEQ(FieldHumanDeactivated, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CorrectionPattern) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CorrectionPattern) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CorrectionPattern) predicate.CorrectionPattern {
	return predicate.CorrectionPattern(sql.NotPredicates(p))
}
