package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Appointment is a brokered consultation request. It starts as an agent's
// intake (prospect details only) and is progressively linked to a patient
// account and a clinic.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("agent_id").
			Comment("FK → users.id (role agent, the intake author)"),

		field.Int("patient_id").
			Optional().
			Nillable().
			Comment("FK → users.id (role patient, nil until the prospect has an account)"),

		field.Int("clinique_id").
			Optional().
			Nillable().
			Comment("FK → users.id (role clinique, nil until a clinic is assigned)"),

		field.Time("date_rdv").
			Comment("Scheduled consultation time"),

		field.Enum("status").
			Values("pending", "confirmed", "cancelled").
			Default("pending"),

		// Intake snapshot, kept even after a patient account is linked.
		field.String("full_name").
			MaxLen(200),

		field.String("phone").
			MaxLen(20),

		field.String("intervention").
			Optional().
			Nillable().
			MaxLen(255).
			Comment("Requested procedure"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.String("clinic_quote_path").
			Optional().
			Nillable().
			MaxLen(1024).
			Comment("Object storage key of the quote document the clinic uploaded"),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "status", "date_rdv"),
		index.Fields("clinique_id", "status"),
		index.Fields("patient_id"),
		index.Fields("status", "date_rdv"),
	}
}
