package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DailyLog is one calendar day's committed minutes for one skill.
// The (skill_id, date) unique index guarantees at most one row per day.
type DailyLog struct {
	ent.Schema
}

func (DailyLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("skill_id").
			NotEmpty().
			Comment("Owning skill's opaque id"),
		field.String("date").
			NotEmpty().
			Comment("Local calendar date, YYYY-MM-DD"),
		field.Int("minutes").
			Default(0).
			NonNegative(),
	}
}

func (DailyLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id", "date").
			Unique(),
		index.Fields("date"),
	}
}
