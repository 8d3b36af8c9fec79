package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Setting is one persisted process setting (chat thread id, flags,
// accessibility preferences).
type Setting struct {
	ent.Schema
}

func (Setting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique(),
		field.String("value").
			Default(""),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
