package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RatingEvent records one rating the server accepted.
type RatingEvent struct {
	ent.Schema
}

func (RatingEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RatingEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("card_id").
			NotEmpty(),
		field.Int("rating").
			Range(1, 3).
			Comment("1 hard, 2 medium, 3 easy"),
		field.Bool("from_review").
			Default(false).
			Comment("Whether the card came from the review pool"),
		field.String("mode").
			NotEmpty(),
	}
}

func (RatingEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
