// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Item is the predicate function for item builders.
type Item func(*sql.Selector)

// ResponseEvent is the predicate function for responseevent builders.
type ResponseEvent func(*sql.Selector)

// SectionAggregate is the predicate function for sectionaggregate builders.
type SectionAggregate func(*sql.Selector)
