// Code generated by ent, DO NOT EDIT.

package item

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the item type in the database.
	Label = "item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldSection holds the string denoting the section field in the database.
	FieldSection = "section"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldEaseFactor holds the string denoting the ease_factor field in the database.
	FieldEaseFactor = "ease_factor"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldRepetitions holds the string denoting the repetitions field in the database.
	FieldRepetitions = "repetitions"
	// FieldLapses holds the string denoting the lapses field in the database.
	FieldLapses = "lapses"
	// FieldDueAt holds the string denoting the due_at field in the database.
	FieldDueAt = "due_at"
	// FieldMastery holds the string denoting the mastery field in the database.
	FieldMastery = "mastery"
	// FieldLastReviewedAt holds the string denoting the last_reviewed_at field in the database.
	FieldLastReviewedAt = "last_reviewed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the item in the database.
	Table = "items"
)

// Columns holds all SQL columns for item fields.
var Columns = []string{
	FieldID,
	FieldItemID,
	FieldSection,
	FieldDifficulty,
	FieldEaseFactor,
	FieldIntervalDays,
	FieldRepetitions,
	FieldLapses,
	FieldDueAt,
	FieldMastery,
	FieldLastReviewedAt,
	FieldCreatedAt,
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
	// ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	ItemIDValidator func(string) error
	// SectionValidator is a validator for the "section" field. It is called by the builders before save.
	SectionValidator func(string) error
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(string) error
	// DefaultEaseFactor holds the default value on creation for the "ease_factor" field.
	DefaultEaseFactor float64
	// DefaultIntervalDays holds the default value on creation for the "interval_days" field.
	DefaultIntervalDays int
	// DefaultRepetitions holds the default value on creation for the "repetitions" field.
	DefaultRepetitions int
	// DefaultLapses holds the default value on creation for the "lapses" field.
	DefaultLapses int
	// MasteryValidator is a validator for the "mastery" field. It is called by the builders before save.
	MasteryValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Item queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// BySection orders the results by the section field.
func BySection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSection, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByEaseFactor orders the results by the ease_factor field.
func ByEaseFactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseFactor, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByRepetitions orders the results by the repetitions field.
func ByRepetitions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepetitions, opts...).ToFunc()
}

// ByLapses orders the results by the lapses field.
func ByLapses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLapses, opts...).ToFunc()
}

// ByDueAt orders the results by the due_at field.
func ByDueAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueAt, opts...).ToFunc()
}

// ByMastery orders the results by the mastery field.
func ByMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMastery, opts...).ToFunc()
}

// ByLastReviewedAt orders the results by the last_reviewed_at field.
func ByLastReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
