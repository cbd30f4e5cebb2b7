// Code generated by ent, DO NOT EDIT.

package sectionaggregate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/radprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldLTE(FieldID, id))
}

// Section applies equality check predicate on the "section" field. It's identical to SectionEQ.
func Section(v string) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldEQ(FieldSection, v))
}

// Samples applies equality check predicate on the "samples" field. It's identical to SamplesEQ.
func Samples(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldEQ(FieldSamples, v))
}

// CorrectTotal applies equality check predicate on the "correct_total" field. It's identical to CorrectTotalEQ.
func CorrectTotal(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldEQ(FieldCorrectTotal, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldEQ(FieldStreak, v))
}

// BestStreak applies equality check predicate on the "best_streak" field. It's identical to BestStreakEQ.
func BestStreak(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldEQ(FieldBestStreak, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldEQ(FieldUpdatedAt, v))
}

// SectionEQ applies the EQ predicate on the "section" field.
func SectionEQ(v string) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldEQ(FieldSection, v))
}

// SectionNEQ applies the NEQ predicate on the "section" field.
func SectionNEQ(v string) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldNEQ(FieldSection, v))
}

// SectionIn applies the In predicate on the "section" field.
func SectionIn(vs ...string) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldIn(FieldSection, vs...))
}

// SectionNotIn applies the NotIn predicate on the "section" field.
func SectionNotIn(vs ...string) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldNotIn(FieldSection, vs...))
}

// SectionGT applies the GT predicate on the "section" field.
func SectionGT(v string) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldGT(FieldSection, v))
}

// SectionGTE applies the GTE predicate on the "section" field.
func SectionGTE(v string) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldGTE(FieldSection, v))
}

// SectionLT applies the LT predicate on the "section" field.
func SectionLT(v string) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldLT(FieldSection, v))
}

// SectionLTE applies the LTE predicate on the "section" field.
func SectionLTE(v string) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldLTE(FieldSection, v))
}

// SectionContains applies the Contains predicate on the "section" field.
func SectionContains(v string) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldContains(FieldSection, v))
}

// SectionHasPrefix applies the HasPrefix predicate on the "section" field.
func SectionHasPrefix(v string) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldHasPrefix(FieldSection, v))
}

// SectionHasSuffix applies the HasSuffix predicate on the "section" field.
func SectionHasSuffix(v string) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldHasSuffix(FieldSection, v))
}

// SectionEqualFold applies the EqualFold predicate on the "section" field.
func SectionEqualFold(v string) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldEqualFold(FieldSection, v))
}

// SectionContainsFold applies the ContainsFold predicate on the "section" field.
func SectionContainsFold(v string) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldContainsFold(FieldSection, v))
}

// SamplesEQ applies the EQ predicate on the "samples" field.
func SamplesEQ(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldEQ(FieldSamples, v))
}

// SamplesNEQ applies the NEQ predicate on the "samples" field.
func SamplesNEQ(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldNEQ(FieldSamples, v))
}

// SamplesIn applies the In predicate on the "samples" field.
func SamplesIn(vs ...int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldIn(FieldSamples, vs...))
}

// SamplesNotIn applies the NotIn predicate on the "samples" field.
func SamplesNotIn(vs ...int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldNotIn(FieldSamples, vs...))
}

// SamplesGT applies the GT predicate on the "samples" field.
func SamplesGT(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldGT(FieldSamples, v))
}

// SamplesGTE applies the GTE predicate on the "samples" field.
func SamplesGTE(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldGTE(FieldSamples, v))
}

// SamplesLT applies the LT predicate on the "samples" field.
func SamplesLT(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldLT(FieldSamples, v))
}

// SamplesLTE applies the LTE predicate on the "samples" field.
func SamplesLTE(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldLTE(FieldSamples, v))
}

// CorrectTotalEQ applies the EQ predicate on the "correct_total" field.
func CorrectTotalEQ(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldEQ(FieldCorrectTotal, v))
}

// CorrectTotalNEQ applies the NEQ predicate on the "correct_total" field.
func CorrectTotalNEQ(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldNEQ(FieldCorrectTotal, v))
}

// CorrectTotalIn applies the In predicate on the "correct_total" field.
func CorrectTotalIn(vs ...int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldIn(FieldCorrectTotal, vs...))
}

// CorrectTotalNotIn applies the NotIn predicate on the "correct_total" field.
func CorrectTotalNotIn(vs ...int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldNotIn(FieldCorrectTotal, vs...))
}

// CorrectTotalGT applies the GT predicate on the "correct_total" field.
func CorrectTotalGT(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldGT(FieldCorrectTotal, v))
}

// CorrectTotalGTE applies the GTE predicate on the "correct_total" field.
func CorrectTotalGTE(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldGTE(FieldCorrectTotal, v))
}

// CorrectTotalLT applies the LT predicate on the "correct_total" field.
func CorrectTotalLT(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldLT(FieldCorrectTotal, v))
}

// CorrectTotalLTE applies the LTE predicate on the "correct_total" field.
func CorrectTotalLTE(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldLTE(FieldCorrectTotal, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldLTE(FieldStreak, v))
}

// BestStreakEQ applies the EQ predicate on the "best_streak" field.
func BestStreakEQ(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldEQ(FieldBestStreak, v))
}

// BestStreakNEQ applies the NEQ predicate on the "best_streak" field.
func BestStreakNEQ(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldNEQ(FieldBestStreak, v))
}

// BestStreakIn applies the In predicate on the "best_streak" field.
func BestStreakIn(vs ...int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldIn(FieldBestStreak, vs...))
}

// BestStreakNotIn applies the NotIn predicate on the "best_streak" field.
func BestStreakNotIn(vs ...int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldNotIn(FieldBestStreak, vs...))
}

// BestStreakGT applies the GT predicate on the "best_streak" field.
func BestStreakGT(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldGT(FieldBestStreak, v))
}

// BestStreakGTE applies the GTE predicate on the "best_streak" field.
func BestStreakGTE(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldGTE(FieldBestStreak, v))
}

// BestStreakLT applies the LT predicate on the "best_streak" field.
func BestStreakLT(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldLT(FieldBestStreak, v))
}

// BestStreakLTE applies the LTE predicate on the "best_streak" field.
func BestStreakLTE(v int) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldLTE(FieldBestStreak, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SectionAggregate) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SectionAggregate) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SectionAggregate) predicate.SectionAggregate {
	return predicate.SectionAggregate(sql.NotPredicates(p))
}
