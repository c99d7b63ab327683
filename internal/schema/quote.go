package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Quote is the staff-assembled offer for one appointment. It stays invisible
// to the patient until sent_to_patient_at is set, and that timestamp is
// written exactly once.
type Quote struct {
	ent.Schema
}

func (Quote) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeStampedMixin{},
	}
}

func (Quote) Fields() []ent.Field {
	return []ent.Field{
		field.Int("appointment_id").
			Unique().
			Comment("FK → appointments.id, one quote per appointment"),

		field.Int("created_by").
			Comment("FK → users.id (staff author)"),

		field.Enum("status").
			Values("pending", "accepted", "refused").
			Default("pending"),

		field.Int64("total_clinique_cents").
			NonNegative().
			Comment("Clinic's own price for the intervention"),

		field.Int64("total_assistance_cents").
			NonNegative().
			Comment("Sum of the assistance line items"),

		field.Int64("total_quote_cents").
			NonNegative().
			Comment("total_clinique_cents + total_assistance_cents"),

		field.String("file_path").
			Optional().
			Nillable().
			MaxLen(1024).
			Comment("Object storage key of the quote PDF"),

		field.String("file_name").
			Optional().
			Nillable().
			MaxLen(255),

		field.Text("comment").
			Optional().
			Nillable().
			Comment("Patient's comment, required on refusal"),

		field.Time("sent_to_patient_at").
			Optional().
			Nillable().
			Comment("Set once when the quote is released to the patient, never cleared"),

		field.Int("sent_by").
			Optional().
			Nillable().
			Comment("FK → users.id (administrateur or superviseur who released it)"),

		field.Time("responded_at").
			Optional().
			Nillable(),
	}
}

func (Quote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("sent_to_patient_at"),
	}
}
