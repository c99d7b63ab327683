package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Role is one row per role grant. A user may hold several roles; the
// (user_id, name) pair is the assignment.
type Role struct {
	ent.Schema
}

func (Role) Mixin() []ent.Mixin {
	return []ent.Mixin{
		CreatedAtMixin{},
	}
}

func (Role) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Comment("FK → users.id"),

		field.Enum("name").
			Values("administrateur", "superviseur", "confirmateur", "agent", "clinique", "patient"),
	}
}

func (Role) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "name").Unique(),
		index.Fields("name"),
	}
}
