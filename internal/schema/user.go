package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is any authenticated account: staff (administrateur, superviseur,
// confirmateur, agent), a clinic account, or a patient. Roles decide which
// surface the account sees.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.String("email").
			Unique().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("password_hash").
			Sensitive(),

		field.Bool("is_active").
			Default(true),

		field.String("clinic_name").
			Optional().
			Nillable().
			MaxLen(255).
			Comment("Display name for accounts with role clinique"),

		field.String("address").
			Optional().
			Nillable().
			MaxLen(500).
			Comment("Postal address for accounts with role clinique"),

		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
	}
}
