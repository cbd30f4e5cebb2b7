// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/radprep/ent/item"
)

// Item is the model entity for the Item schema.
type Item struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Content-derived id, stable across re-imports
	ItemID string `json:"item_id,omitempty"`
	// Exam section slug
	Section string `json:"section,omitempty"`
	// easy, intermediate, or hard
	Difficulty string `json:"difficulty,omitempty"`
	// Review interval growth multiplier, never below 1.3
	EaseFactor float64 `json:"ease_factor,omitempty"`
	// IntervalDays holds the value of the "interval_days" field.
	IntervalDays int `json:"interval_days,omitempty"`
	// Repetitions holds the value of the "repetitions" field.
	Repetitions int `json:"repetitions,omitempty"`
	// Lapses holds the value of the "lapses" field.
	Lapses int `json:"lapses,omitempty"`
	// DueAt holds the value of the "due_at" field.
	DueAt time.Time `json:"due_at,omitempty"`
	// learning, reviewing, or mastered
	Mastery string `json:"mastery,omitempty"`
	// LastReviewedAt holds the value of the "last_reviewed_at" field.
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Item) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case item.FieldEaseFactor:
			values[i] = new(sql.NullFloat64)
		case item.FieldID, item.FieldIntervalDays, item.FieldRepetitions, item.FieldLapses:
			values[i] = new(sql.NullInt64)
		case item.FieldItemID, item.FieldSection, item.FieldDifficulty, item.FieldMastery:
			values[i] = new(sql.NullString)
		case item.FieldDueAt, item.FieldLastReviewedAt, item.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Item fields.
func (_m *Item) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case item.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case item.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case item.FieldSection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section", values[i])
			} else if value.Valid {
				_m.Section = value.String
			}
		case item.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case item.FieldEaseFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_factor", values[i])
			} else if value.Valid {
				_m.EaseFactor = value.Float64
			}
		case item.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case item.FieldRepetitions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetitions", values[i])
			} else if value.Valid {
				_m.Repetitions = int(value.Int64)
			}
		case item.FieldLapses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lapses", values[i])
			} else if value.Valid {
				_m.Lapses = int(value.Int64)
			}
		case item.FieldDueAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_at", values[i])
			} else if value.Valid {
				_m.DueAt = value.Time
			}
		case item.FieldMastery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mastery", values[i])
			} else if value.Valid {
				_m.Mastery = value.String
			}
		case item.FieldLastReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed_at", values[i])
			} else if value.Valid {
				_m.LastReviewedAt = new(time.Time)
				*_m.LastReviewedAt = value.Time
			}
		case item.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Item.
// This includes values selected through modifiers, order, etc.
func (_m *Item) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Item.
// Note that you need to call Item.Unwrap() before calling this method if this Item
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Item) Update() *ItemUpdateOne {
	return NewItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Item entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Item) Unwrap() *Item {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Item is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Item) String() string {
	var builder strings.Builder
	builder.WriteString("Item(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("section=")
	builder.WriteString(_m.Section)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("ease_factor=")
	builder.WriteString(fmt.Sprintf("%v", _m.EaseFactor))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("repetitions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Repetitions))
	builder.WriteString(", ")
	builder.WriteString("lapses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Lapses))
	builder.WriteString(", ")
	builder.WriteString("due_at=")
	builder.WriteString(_m.DueAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("mastery=")
	builder.WriteString(_m.Mastery)
	builder.WriteString(", ")
	if v := _m.LastReviewedAt; v != nil {
		builder.WriteString("last_reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Items is a parsable slice of Item.
type Items []*Item
