package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Milestone is an achievement earned by a learner. Each code is earned
// at most once per user.
type Milestone struct {
	ent.Schema
}

func (Milestone) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("code").
			NotEmpty().
			Immutable().
			Comment("first_lesson, lessons_5, path_complete:<slug>, ..."),
		field.String("title"),
		field.String("trigger_lesson_id").
			Default(""),
		field.Time("earned_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Milestone) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "code").Unique(),
	}
}
