// Code generated by ent, DO NOT EDIT.

package sectionaggregate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sectionaggregate type in the database.
	Label = "section_aggregate"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSection holds the string denoting the section field in the database.
	FieldSection = "section"
	// FieldWindow holds the string denoting the window field in the database.
	FieldWindow = "window"
	// FieldSamples holds the string denoting the samples field in the database.
	FieldSamples = "samples"
	// FieldCorrectTotal holds the string denoting the correct_total field in the database.
	FieldCorrectTotal = "correct_total"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldBestStreak holds the string denoting the best_streak field in the database.
	FieldBestStreak = "best_streak"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the sectionaggregate in the database.
	Table = "section_aggregates"
)

// Columns holds all SQL columns for sectionaggregate fields.
var Columns = []string{
	FieldID,
	FieldSection,
	FieldWindow,
	FieldSamples,
	FieldCorrectTotal,
	FieldStreak,
	FieldBestStreak,
	FieldUpdatedAt,
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
	// SectionValidator is a validator for the "section" field. It is called by the builders before save.
	SectionValidator func(string) error
	// DefaultSamples holds the default value on creation for the "samples" field.
	DefaultSamples int
	// DefaultCorrectTotal holds the default value on creation for the "correct_total" field.
	DefaultCorrectTotal int
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
	// DefaultBestStreak holds the default value on creation for the "best_streak" field.
	DefaultBestStreak int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the SectionAggregate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySection orders the results by the section field.
func BySection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSection, opts...).ToFunc()
}

// BySamples orders the results by the samples field.
func BySamples(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSamples, opts...).ToFunc()
}

// ByCorrectTotal orders the results by the correct_total field.
func ByCorrectTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectTotal, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByBestStreak orders the results by the best_streak field.
func ByBestStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBestStreak, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
