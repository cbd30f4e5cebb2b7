// Code generated by ent, DO NOT EDIT.

package item

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/radprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldID, id))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldItemID, v))
}

// Section applies equality check predicate on the "section" field. It's identical to SectionEQ.
func Section(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldSection, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDifficulty, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldEaseFactor, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldIntervalDays, v))
}

// Repetitions applies equality check predicate on the "repetitions" field. It's identical to RepetitionsEQ.
func Repetitions(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldRepetitions, v))
}

// Lapses applies equality check predicate on the "lapses" field. It's identical to LapsesEQ.
func Lapses(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldLapses, v))
}

// DueAt applies equality check predicate on the "due_at" field. It's identical to DueAtEQ.
func DueAt(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDueAt, v))
}

// Mastery applies equality check predicate on the "mastery" field. It's identical to MasteryEQ.
func Mastery(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldMastery, v))
}

// LastReviewedAt applies equality check predicate on the "last_reviewed_at" field. It's identical to LastReviewedAtEQ.
func LastReviewedAt(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldLastReviewedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCreatedAt, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldItemID, v))
}

// SectionEQ applies the EQ predicate on the "section" field.
func SectionEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldSection, v))
}

// SectionNEQ applies the NEQ predicate on the "section" field.
func SectionNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldSection, v))
}

// SectionIn applies the In predicate on the "section" field.
func SectionIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldSection, vs...))
}

// SectionNotIn applies the NotIn predicate on the "section" field.
func SectionNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldSection, vs...))
}

// SectionGT applies the GT predicate on the "section" field.
func SectionGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldSection, v))
}

// SectionGTE applies the GTE predicate on the "section" field.
func SectionGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldSection, v))
}

// SectionLT applies the LT predicate on the "section" field.
func SectionLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldSection, v))
}

// SectionLTE applies the LTE predicate on the "section" field.
func SectionLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldSection, v))
}

// SectionContains applies the Contains predicate on the "section" field.
func SectionContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldSection, v))
}

// SectionHasPrefix applies the HasPrefix predicate on the "section" field.
func SectionHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldSection, v))
}

// SectionHasSuffix applies the HasSuffix predicate on the "section" field.
func SectionHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldSection, v))
}

// SectionEqualFold applies the EqualFold predicate on the "section" field.
func SectionEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldSection, v))
}

// SectionContainsFold applies the ContainsFold predicate on the "section" field.
func SectionContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldSection, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldDifficulty, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldEaseFactor, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldIntervalDays, v))
}

// RepetitionsEQ applies the EQ predicate on the "repetitions" field.
func RepetitionsEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldRepetitions, v))
}

// RepetitionsNEQ applies the NEQ predicate on the "repetitions" field.
func RepetitionsNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldRepetitions, v))
}

// RepetitionsIn applies the In predicate on the "repetitions" field.
func RepetitionsIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldRepetitions, vs...))
}

// RepetitionsNotIn applies the NotIn predicate on the "repetitions" field.
func RepetitionsNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldRepetitions, vs...))
}

// RepetitionsGT applies the GT predicate on the "repetitions" field.
func RepetitionsGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldRepetitions, v))
}

// RepetitionsGTE applies the GTE predicate on the "repetitions" field.
func RepetitionsGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldRepetitions, v))
}

// RepetitionsLT applies the LT predicate on the "repetitions" field.
func RepetitionsLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldRepetitions, v))
}

// RepetitionsLTE applies the LTE predicate on the "repetitions" field.
func RepetitionsLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldRepetitions, v))
}

// LapsesEQ applies the EQ predicate on the "lapses" field.
func LapsesEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldLapses, v))
}

// LapsesNEQ applies the NEQ predicate on the "lapses" field.
func LapsesNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldLapses, v))
}

// LapsesIn applies the In predicate on the "lapses" field.
func LapsesIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldLapses, vs...))
}

// LapsesNotIn applies the NotIn predicate on the "lapses" field.
func LapsesNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldLapses, vs...))
}

// LapsesGT applies the GT predicate on the "lapses" field.
func LapsesGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldLapses, v))
}

// LapsesGTE applies the GTE predicate on the "lapses" field.
func LapsesGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldLapses, v))
}

// LapsesLT applies the LT predicate on the "lapses" field.
func LapsesLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldLapses, v))
}

// LapsesLTE applies the LTE predicate on the "lapses" field.
func LapsesLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldLapses, v))
}

// DueAtEQ applies the EQ predicate on the "due_at" field.
func DueAtEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDueAt, v))
}

// DueAtNEQ applies the NEQ predicate on the "due_at" field.
func DueAtNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldDueAt, v))
}

// DueAtIn applies the In predicate on the "due_at" field.
func DueAtIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldDueAt, vs...))
}

// DueAtNotIn applies the NotIn predicate on the "due_at" field.
func DueAtNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldDueAt, vs...))
}

// DueAtGT applies the GT predicate on the "due_at" field.
func DueAtGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldDueAt, v))
}

// DueAtGTE applies the GTE predicate on the "due_at" field.
func DueAtGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldDueAt, v))
}

// DueAtLT applies the LT predicate on the "due_at" field.
func DueAtLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldDueAt, v))
}

// DueAtLTE applies the LTE predicate on the "due_at" field.
func DueAtLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldDueAt, v))
}

// MasteryEQ applies the EQ predicate on the "mastery" field.
func MasteryEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldMastery, v))
}

// MasteryNEQ applies the NEQ predicate on the "mastery" field.
func MasteryNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldMastery, v))
}

// MasteryIn applies the In predicate on the "mastery" field.
func MasteryIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldMastery, vs...))
}

// MasteryNotIn applies the NotIn predicate on the "mastery" field.
func MasteryNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldMastery, vs...))
}

// MasteryGT applies the GT predicate on the "mastery" field.
func MasteryGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldMastery, v))
}

// MasteryGTE applies the GTE predicate on the "mastery" field.
func MasteryGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldMastery, v))
}

// MasteryLT applies the LT predicate on the "mastery" field.
func MasteryLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldMastery, v))
}

// MasteryLTE applies the LTE predicate on the "mastery" field.
func MasteryLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldMastery, v))
}

// MasteryContains applies the Contains predicate on the "mastery" field.
func MasteryContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldMastery, v))
}

// MasteryHasPrefix applies the HasPrefix predicate on the "mastery" field.
func MasteryHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldMastery, v))
}

// MasteryHasSuffix applies the HasSuffix predicate on the "mastery" field.
func MasteryHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldMastery, v))
}

// MasteryEqualFold applies the EqualFold predicate on the "mastery" field.
func MasteryEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldMastery, v))
}

// MasteryContainsFold applies the ContainsFold predicate on the "mastery" field.
func MasteryContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldMastery, v))
}

// LastReviewedAtEQ applies the EQ predicate on the "last_reviewed_at" field.
func LastReviewedAtEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtNEQ applies the NEQ predicate on the "last_reviewed_at" field.
func LastReviewedAtNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtIn applies the In predicate on the "last_reviewed_at" field.
func LastReviewedAtIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtNotIn applies the NotIn predicate on the "last_reviewed_at" field.
func LastReviewedAtNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtGT applies the GT predicate on the "last_reviewed_at" field.
func LastReviewedAtGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldLastReviewedAt, v))
}

// LastReviewedAtGTE applies the GTE predicate on the "last_reviewed_at" field.
func LastReviewedAtGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldLastReviewedAt, v))
}

// LastReviewedAtLT applies the LT predicate on the "last_reviewed_at" field.
func LastReviewedAtLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldLastReviewedAt, v))
}

// LastReviewedAtLTE applies the LTE predicate on the "last_reviewed_at" field.
func LastReviewedAtLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldLastReviewedAt, v))
}

// LastReviewedAtIsNil applies the IsNil predicate on the "last_reviewed_at" field.
func LastReviewedAtIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldLastReviewedAt))
}

// LastReviewedAtNotNil applies the NotNil predicate on the "last_reviewed_at" field.
func LastReviewedAtNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldLastReviewedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Item) predicate.Item {
	return predicate.Item(sql.NotPredicates(p))
}
