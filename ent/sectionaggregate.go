// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/radprep/ent/sectionaggregate"
)

// SectionAggregate is the model entity for the SectionAggregate schema.
type SectionAggregate struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Exam section slug
	Section string `json:"section,omitempty"`
	// Most recent response outcomes, oldest first
	Window []bool `json:"window,omitempty"`
	// Lifetime response count
	Samples int `json:"samples,omitempty"`
	// CorrectTotal holds the value of the "correct_total" field.
	CorrectTotal int `json:"correct_total,omitempty"`
	// Current consecutive-correct run
	Streak int `json:"streak,omitempty"`
	// BestStreak holds the value of the "best_streak" field.
	BestStreak int `json:"best_streak,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SectionAggregate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sectionaggregate.FieldWindow:
			values[i] = new([]byte)
		case sectionaggregate.FieldID, sectionaggregate.FieldSamples, sectionaggregate.FieldCorrectTotal, sectionaggregate.FieldStreak, sectionaggregate.FieldBestStreak:
			values[i] = new(sql.NullInt64)
		case sectionaggregate.FieldSection:
			values[i] = new(sql.NullString)
		case sectionaggregate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SectionAggregate fields.
func (_m *SectionAggregate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sectionaggregate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sectionaggregate.FieldSection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section", values[i])
			} else if value.Valid {
				_m.Section = value.String
			}
		case sectionaggregate.FieldWindow:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field window", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Window); err != nil {
					return fmt.Errorf("unmarshal field window: %w", err)
				}
			}
		case sectionaggregate.FieldSamples:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field samples", values[i])
			} else if value.Valid {
				_m.Samples = int(value.Int64)
			}
		case sectionaggregate.FieldCorrectTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_total", values[i])
			} else if value.Valid {
				_m.CorrectTotal = int(value.Int64)
			}
		case sectionaggregate.FieldStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak", values[i])
			} else if value.Valid {
				_m.Streak = int(value.Int64)
			}
		case sectionaggregate.FieldBestStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field best_streak", values[i])
			} else if value.Valid {
				_m.BestStreak = int(value.Int64)
			}
		case sectionaggregate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SectionAggregate.
// This includes values selected through modifiers, order, etc.
func (_m *SectionAggregate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SectionAggregate.
// Note that you need to call SectionAggregate.Unwrap() before calling this method if this SectionAggregate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SectionAggregate) Update() *SectionAggregateUpdateOne {
	return NewSectionAggregateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SectionAggregate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SectionAggregate) Unwrap() *SectionAggregate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SectionAggregate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SectionAggregate) String() string {
	var builder strings.Builder
	builder.WriteString("SectionAggregate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("section=")
	builder.WriteString(_m.Section)
	builder.WriteString(", ")
	builder.WriteString("window=")
	builder.WriteString(fmt.Sprintf("%v", _m.Window))
	builder.WriteString(", ")
	builder.WriteString("samples=")
	builder.WriteString(fmt.Sprintf("%v", _m.Samples))
	builder.WriteString(", ")
	builder.WriteString("correct_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectTotal))
	builder.WriteString(", ")
	builder.WriteString("streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.Streak))
	builder.WriteString(", ")
	builder.WriteString("best_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.BestStreak))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SectionAggregates is a parsable slice of SectionAggregate.
type SectionAggregates []*SectionAggregate
