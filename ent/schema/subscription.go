package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Subscription mirrors the payment provider's view of a learner's plan.
// It is read to compute premium access, never charged from here.
type Subscription struct {
	ent.Schema
}

func (Subscription) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Enum("status").
			Values("active", "trialing", "past_due", "canceled", "incomplete", "unpaid").
			Default("incomplete"),
		field.String("plan").
			Default(""),
		field.Time("current_period_end").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
