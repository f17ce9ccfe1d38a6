package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Skill is one user-defined practice subject with its accumulated time.
type Skill struct {
	ent.Schema
}

func (Skill) Fields() []ent.Field {
	return []ent.Field{
		field.String("skill_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Opaque UUID assigned at creation"),
		field.String("title").
			NotEmpty(),
		field.String("category").
			NotEmpty(),
		field.String("motivation").
			Optional().
			Comment("Free-text reason for learning this skill"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Int("total_minutes").
			Default(0).
			NonNegative().
			Comment("All committed practice minutes"),
		field.Bool("is_active").
			Default(false).
			Comment("True while a session counts against this skill"),
		field.Time("start_time").
			Optional().
			Nillable().
			Comment("Start of the current running interval; unset while paused or idle"),
		field.Time("last_active_at").
			Optional().
			Nillable(),
		field.Bool("has_shown_confetti").
			Default(false).
			Comment("One-shot latch set when the mastery threshold is first crossed"),
	}
}

func (Skill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id"),
		index.Fields("is_active"),
	}
}
