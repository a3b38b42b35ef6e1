package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records the start and end of a study session.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping the events of one session"),
		field.Enum("action").
			Values("start", "end"),
		field.String("mode").
			NotEmpty().
			Comment("student or reviewer"),
		field.Int("cards").
			Default(0).
			Comment("Cards in the session"),
		field.Int("ratings").
			Default(0).
			Comment("Ratings accepted (on end only)"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Session length in milliseconds (on end only)"),
		field.String("message").
			Default("").
			Comment("Completion message shown on handoff (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "action"),
	}
}
