package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssistanceQuote is one assistance line of a quote (label + amount).
type AssistanceQuote struct {
	ent.Schema
}

func (AssistanceQuote) Mixin() []ent.Mixin {
	return []ent.Mixin{
		CreatedAtMixin{},
	}
}

func (AssistanceQuote) Fields() []ent.Field {
	return []ent.Field{
		field.Int("quote_id").
			Comment("FK → quotes.id"),

		field.String("label").
			MaxLen(255),

		field.Int64("amount_cents").
			NonNegative(),
	}
}

func (AssistanceQuote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quote_id"),
	}
}
