package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	ent.Schema
}

func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("thread_id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			Default("").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.Bool("fallback").
			Default(false).
			Comment("Assistant turn replaced by the offline fallback message"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("thread_id", "created_at"),
		index.Fields("user_id", "created_at"),
	}
}
