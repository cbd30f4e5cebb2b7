// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/radprep/ent/item"
	"github.com/abhisek/radprep/ent/responseevent"
	"github.com/abhisek/radprep/ent/schema"
	"github.com/abhisek/radprep/ent/sectionaggregate"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	itemFields := schema.Item{}.Fields()
	_ = itemFields
	// itemDescItemID is the schema descriptor for item_id field.
	itemDescItemID := itemFields[0].Descriptor()
	// item.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	item.ItemIDValidator = itemDescItemID.Validators[0].(func(string) error)
	// itemDescSection is the schema descriptor for section field.
	itemDescSection := itemFields[1].Descriptor()
	// item.SectionValidator is a validator for the "section" field. It is called by the builders before save.
	item.SectionValidator = itemDescSection.Validators[0].(func(string) error)
	// itemDescDifficulty is the schema descriptor for difficulty field.
	itemDescDifficulty := itemFields[2].Descriptor()
	// item.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	item.DifficultyValidator = itemDescDifficulty.Validators[0].(func(string) error)
	// itemDescEaseFactor is the schema descriptor for ease_factor field.
	itemDescEaseFactor := itemFields[3].Descriptor()
	// item.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	item.DefaultEaseFactor = itemDescEaseFactor.Default.(float64)
	// itemDescIntervalDays is the schema descriptor for interval_days field.
	itemDescIntervalDays := itemFields[4].Descriptor()
	// item.DefaultIntervalDays holds the default value on creation for the interval_days field.
	item.DefaultIntervalDays = itemDescIntervalDays.Default.(int)
	// itemDescRepetitions is the schema descriptor for repetitions field.
	itemDescRepetitions := itemFields[5].Descriptor()
	// item.DefaultRepetitions holds the default value on creation for the repetitions field.
	item.DefaultRepetitions = itemDescRepetitions.Default.(int)
	// itemDescLapses is the schema descriptor for lapses field.
	itemDescLapses := itemFields[6].Descriptor()
	// item.DefaultLapses holds the default value on creation for the lapses field.
	item.DefaultLapses = itemDescLapses.Default.(int)
	// itemDescMastery is the schema descriptor for mastery field.
	itemDescMastery := itemFields[8].Descriptor()
	// item.MasteryValidator is a validator for the "mastery" field. It is called by the builders before save.
	item.MasteryValidator = itemDescMastery.Validators[0].(func(string) error)
	// itemDescCreatedAt is the schema descriptor for created_at field.
	itemDescCreatedAt := itemFields[10].Descriptor()
	// item.DefaultCreatedAt holds the default value on creation for the created_at field.
	item.DefaultCreatedAt = itemDescCreatedAt.Default.(func() time.Time)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescItemID is the schema descriptor for item_id field.
	responseeventDescItemID := responseeventFields[0].Descriptor()
	// responseevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	responseevent.ItemIDValidator = responseeventDescItemID.Validators[0].(func(string) error)
	// responseeventDescSection is the schema descriptor for section field.
	responseeventDescSection := responseeventFields[1].Descriptor()
	// responseevent.SectionValidator is a validator for the "section" field. It is called by the builders before save.
	responseevent.SectionValidator = responseeventDescSection.Validators[0].(func(string) error)
	sectionaggregateFields := schema.SectionAggregate{}.Fields()
	_ = sectionaggregateFields
	// sectionaggregateDescSection is the schema descriptor for section field.
	sectionaggregateDescSection := sectionaggregateFields[0].Descriptor()
	// sectionaggregate.SectionValidator is a validator for the "section" field. It is called by the builders before save.
	sectionaggregate.SectionValidator = sectionaggregateDescSection.Validators[0].(func(string) error)
	// sectionaggregateDescSamples is the schema descriptor for samples field.
	sectionaggregateDescSamples := sectionaggregateFields[2].Descriptor()
	// sectionaggregate.DefaultSamples holds the default value on creation for the samples field.
	sectionaggregate.DefaultSamples = sectionaggregateDescSamples.Default.(int)
	// sectionaggregateDescCorrectTotal is the schema descriptor for correct_total field.
	sectionaggregateDescCorrectTotal := sectionaggregateFields[3].Descriptor()
	// sectionaggregate.DefaultCorrectTotal holds the default value on creation for the correct_total field.
	sectionaggregate.DefaultCorrectTotal = sectionaggregateDescCorrectTotal.Default.(int)
	// sectionaggregateDescStreak is the schema descriptor for streak field.
	sectionaggregateDescStreak := sectionaggregateFields[4].Descriptor()
	// sectionaggregate.DefaultStreak holds the default value on creation for the streak field.
	sectionaggregate.DefaultStreak = sectionaggregateDescStreak.Default.(int)
	// sectionaggregateDescBestStreak is the schema descriptor for best_streak field.
	sectionaggregateDescBestStreak := sectionaggregateFields[5].Descriptor()
	// sectionaggregate.DefaultBestStreak holds the default value on creation for the best_streak field.
	sectionaggregate.DefaultBestStreak = sectionaggregateDescBestStreak.Default.(int)
	// sectionaggregateDescUpdatedAt is the schema descriptor for updated_at field.
	sectionaggregateDescUpdatedAt := sectionaggregateFields[6].Descriptor()
	// sectionaggregate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sectionaggregate.DefaultUpdatedAt = sectionaggregateDescUpdatedAt.Default.(func() time.Time)
}
