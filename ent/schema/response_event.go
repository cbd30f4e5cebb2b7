package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent is one learner response to an item. Append-only;
// rows are never mutated or deleted.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			NotEmpty(),
		field.String("section").
			NotEmpty().
			Comment("Denormalized section slug for fast aggregation"),
		field.Bool("correct"),
		field.Int("grade").
			Comment("Quality ordinal 0-5 derived by the grading policy"),
		field.Int("latency_ms").
			Comment("Milliseconds to answer"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
		index.Fields("section"),
		index.Fields("correct"),
	}
}
