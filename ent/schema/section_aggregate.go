package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SectionAggregate is the rolling performance aggregate for one exam
// section. Derived state: it can be rebuilt from the response log.
type SectionAggregate struct {
	ent.Schema
}

func (SectionAggregate) Fields() []ent.Field {
	return []ent.Field{
		field.String("section").
			NotEmpty().
			Unique().
			Comment("Exam section slug"),
		field.JSON("window", []bool{}).
			Comment("Most recent response outcomes, oldest first"),
		field.Int("samples").
			Default(0).
			Comment("Lifetime response count"),
		field.Int("correct_total").
			Default(0),
		field.Int("streak").
			Default(0).
			Comment("Current consecutive-correct run"),
		field.Int("best_streak").
			Default(0),
		field.Time("updated_at").
			Default(time.Now),
	}
}
