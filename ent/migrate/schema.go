// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ItemsColumns holds the columns for the "items" table.
	ItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "section", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "interval_days", Type: field.TypeInt, Default: 0},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "lapses", Type: field.TypeInt, Default: 0},
		{Name: "due_at", Type: field.TypeTime},
		{Name: "mastery", Type: field.TypeString},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ItemsTable holds the schema information for the "items" table.
	ItemsTable = &schema.Table{
		Name:       "items",
		Columns:    ItemsColumns,
		PrimaryKey: []*schema.Column{ItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "item_section",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[2]},
			},
			{
				Name:    "item_due_at",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[8]},
			},
			{
				Name:    "item_mastery",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[9]},
			},
		},
	}
	// ResponseEventsColumns holds the columns for the "response_events" table.
	ResponseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "item_id", Type: field.TypeString},
		{Name: "section", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "grade", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt},
	}
	// ResponseEventsTable holds the schema information for the "response_events" table.
	ResponseEventsTable = &schema.Table{
		Name:       "response_events",
		Columns:    ResponseEventsColumns,
		PrimaryKey: []*schema.Column{ResponseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "responseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[1]},
			},
			{
				Name:    "responseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[2]},
			},
			{
				Name:    "responseevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[3]},
			},
			{
				Name:    "responseevent_section",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[4]},
			},
			{
				Name:    "responseevent_correct",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[5]},
			},
		},
	}
	// SectionAggregatesColumns holds the columns for the "section_aggregates" table.
	SectionAggregatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "section", Type: field.TypeString, Unique: true},
		{Name: "window", Type: field.TypeJSON},
		{Name: "samples", Type: field.TypeInt, Default: 0},
		{Name: "correct_total", Type: field.TypeInt, Default: 0},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "best_streak", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SectionAggregatesTable holds the schema information for the "section_aggregates" table.
	SectionAggregatesTable = &schema.Table{
		Name:       "section_aggregates",
		Columns:    SectionAggregatesColumns,
		PrimaryKey: []*schema.Column{SectionAggregatesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ItemsTable,
		ResponseEventsTable,
		SectionAggregatesTable,
	}
)

func init() {
}
