package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalyticsEvent is a product analytics event such as lesson_completed.
type AnalyticsEvent struct {
	ent.Schema
}

func (AnalyticsEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnalyticsEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Default(""),
		field.String("name").
			NotEmpty().
			Comment("Event name: lesson_completed, quiz_submitted, ..."),
		field.JSON("properties", map[string]any{}).
			Optional(),
	}
}

func (AnalyticsEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("user_id", "name"),
	}
}
