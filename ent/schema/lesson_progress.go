package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonProgress is the per-user, per-lesson completion record. There is
// at most one row per (user_id, lesson_id); writes upsert on that key.
type LessonProgress struct {
	ent.Schema
}

func (LessonProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("lesson_id").
			NotEmpty().
			Immutable(),
		field.String("course_id").
			Comment("Learning path the lesson was completed in"),
		field.String("module_id").
			Optional().
			Default(""),
		field.Bool("completed").
			Default(false),
		field.JSON("completed_task_keys", []string{}).
			Comment("Keys of checked tasks and deliverables"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("first_completed_at").
			Optional().
			Nillable().
			Comment("Set on the first completion and kept when the lesson is reopened"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LessonProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "lesson_id").Unique(),
		index.Fields("user_id", "course_id"),
		index.Fields("user_id", "completed"),
	}
}
