// Code generated by ent, DO NOT EDIT.

package responseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/radprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldItemID, v))
}

// Section applies equality check predicate on the "section" field. It's identical to SectionEQ.
func Section(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSection, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldCorrect, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldGrade, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldItemID, v))
}

// SectionEQ applies the EQ predicate on the "section" field.
func SectionEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSection, v))
}

// SectionNEQ applies the NEQ predicate on the "section" field.
func SectionNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldSection, v))
}

// SectionIn applies the In predicate on the "section" field.
func SectionIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldSection, vs...))
}

// SectionNotIn applies the NotIn predicate on the "section" field.
func SectionNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldSection, vs...))
}

// SectionGT applies the GT predicate on the "section" field.
func SectionGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldSection, v))
}

// SectionGTE applies the GTE predicate on the "section" field.
func SectionGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldSection, v))
}

// SectionLT applies the LT predicate on the "section" field.
func SectionLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldSection, v))
}

// SectionLTE applies the LTE predicate on the "section" field.
func SectionLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldSection, v))
}

// SectionContains applies the Contains predicate on the "section" field.
func SectionContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldSection, v))
}

// SectionHasPrefix applies the HasPrefix predicate on the "section" field.
func SectionHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldSection, v))
}

// SectionHasSuffix applies the HasSuffix predicate on the "section" field.
func SectionHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldSection, v))
}

// SectionEqualFold applies the EqualFold predicate on the "section" field.
func SectionEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldSection, v))
}

// SectionContainsFold applies the ContainsFold predicate on the "section" field.
func SectionContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldSection, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldCorrect, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldGrade, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResponseEvent) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResponseEvent) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResponseEvent) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.NotPredicates(p))
}
