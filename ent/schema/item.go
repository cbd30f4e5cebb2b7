package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Item is the persisted scheduling state for one practice item.
// One row per item, keyed by the content-derived item id.
type Item struct {
	ent.Schema
}

func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Content-derived id, stable across re-imports"),
		field.String("section").
			NotEmpty().
			Immutable().
			Comment("Exam section slug"),
		field.String("difficulty").
			NotEmpty().
			Immutable().
			Comment("easy, intermediate, or hard"),
		field.Float("ease_factor").
			Default(2.5).
			Comment("Review interval growth multiplier, never below 1.3"),
		field.Int("interval_days").
			Default(0),
		field.Int("repetitions").
			Default(0),
		field.Int("lapses").
			Default(0),
		field.Time("due_at"),
		field.String("mastery").
			NotEmpty().
			Comment("learning, reviewing, or mastered"),
		field.Time("last_reviewed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Item) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("section"),
		index.Fields("due_at"),
		index.Fields("mastery"),
	}
}
