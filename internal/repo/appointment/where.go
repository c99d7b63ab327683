// Code generated by ent, DO NOT EDIT.

package appointment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/medassist/medassist_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDeletedAt, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldAgentID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPatientID, v))
}

// CliniqueID applies equality check predicate on the "clinique_id" field. It's identical to CliniqueIDEQ.
func CliniqueID(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCliniqueID, v))
}

// DateRdv applies equality check predicate on the "date_rdv" field. It's identical to DateRdvEQ.
func DateRdv(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDateRdv, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldFullName, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPhone, v))
}

// Intervention applies equality check predicate on the "intervention" field. It's identical to InterventionEQ.
func Intervention(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldIntervention, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldNotes, v))
}

// ClinicQuotePath applies equality check predicate on the "clinic_quote_path" field. It's identical to ClinicQuotePathEQ.
func ClinicQuotePath(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldClinicQuotePath, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldDeletedAt))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldAgentID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDIsNil applies the IsNil predicate on the "patient_id" field.
func PatientIDIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldPatientID))
}

// PatientIDNotNil applies the NotNil predicate on the "patient_id" field.
func PatientIDNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldPatientID))
}

// CliniqueIDEQ applies the EQ predicate on the "clinique_id" field.
func CliniqueIDEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCliniqueID, v))
}

// CliniqueIDNEQ applies the NEQ predicate on the "clinique_id" field.
func CliniqueIDNEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCliniqueID, v))
}

// CliniqueIDIn applies the In predicate on the "clinique_id" field.
func CliniqueIDIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCliniqueID, vs...))
}

// CliniqueIDNotIn applies the NotIn predicate on the "clinique_id" field.
func CliniqueIDNotIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCliniqueID, vs...))
}

// CliniqueIDGT applies the GT predicate on the "clinique_id" field.
func CliniqueIDGT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCliniqueID, v))
}

// CliniqueIDGTE applies the GTE predicate on the "clinique_id" field.
func CliniqueIDGTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCliniqueID, v))
}

// CliniqueIDLT applies the LT predicate on the "clinique_id" field.
func CliniqueIDLT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCliniqueID, v))
}

// CliniqueIDLTE applies the LTE predicate on the "clinique_id" field.
func CliniqueIDLTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCliniqueID, v))
}

// CliniqueIDIsNil applies the IsNil predicate on the "clinique_id" field.
func CliniqueIDIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCliniqueID))
}

// CliniqueIDNotNil applies the NotNil predicate on the "clinique_id" field.
func CliniqueIDNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCliniqueID))
}

// DateRdvEQ applies the EQ predicate on the "date_rdv" field.
func DateRdvEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDateRdv, v))
}

// DateRdvNEQ applies the NEQ predicate on the "date_rdv" field.
func DateRdvNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldDateRdv, v))
}

// DateRdvIn applies the In predicate on the "date_rdv" field.
func DateRdvIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldDateRdv, vs...))
}

// DateRdvNotIn applies the NotIn predicate on the "date_rdv" field.
func DateRdvNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldDateRdv, vs...))
}

// DateRdvGT applies the GT predicate on the "date_rdv" field.
func DateRdvGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldDateRdv, v))
}

// DateRdvGTE applies the GTE predicate on the "date_rdv" field.
func DateRdvGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldDateRdv, v))
}

// DateRdvLT applies the LT predicate on the "date_rdv" field.
func DateRdvLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldDateRdv, v))
}

// DateRdvLTE applies the LTE predicate on the "date_rdv" field.
func DateRdvLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldDateRdv, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStatus, vs...))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldFullName, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldPhone, v))
}

// InterventionEQ applies the EQ predicate on the "intervention" field.
func InterventionEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldIntervention, v))
}

// InterventionNEQ applies the NEQ predicate on the "intervention" field.
func InterventionNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldIntervention, v))
}

// InterventionIn applies the In predicate on the "intervention" field.
func InterventionIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldIntervention, vs...))
}

// InterventionNotIn applies the NotIn predicate on the "intervention" field.
func InterventionNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldIntervention, vs...))
}

// InterventionGT applies the GT predicate on the "intervention" field.
func InterventionGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldIntervention, v))
}

// InterventionGTE applies the GTE predicate on the "intervention" field.
func InterventionGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldIntervention, v))
}

// InterventionLT applies the LT predicate on the "intervention" field.
func InterventionLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldIntervention, v))
}

// InterventionLTE applies the LTE predicate on the "intervention" field.
func InterventionLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldIntervention, v))
}

// InterventionContains applies the Contains predicate on the "intervention" field.
func InterventionContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldIntervention, v))
}

// InterventionHasPrefix applies the HasPrefix predicate on the "intervention" field.
func InterventionHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldIntervention, v))
}

// InterventionHasSuffix applies the HasSuffix predicate on the "intervention" field.
func InterventionHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldIntervention, v))
}

// InterventionIsNil applies the IsNil predicate on the "intervention" field.
func InterventionIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldIntervention))
}

// InterventionNotNil applies the NotNil predicate on the "intervention" field.
func InterventionNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldIntervention))
}

// InterventionEqualFold applies the EqualFold predicate on the "intervention" field.
func InterventionEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldIntervention, v))
}

// InterventionContainsFold applies the ContainsFold predicate on the "intervention" field.
func InterventionContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldIntervention, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldNotes, v))
}

// ClinicQuotePathEQ applies the EQ predicate on the "clinic_quote_path" field.
func ClinicQuotePathEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldClinicQuotePath, v))
}

// ClinicQuotePathNEQ applies the NEQ predicate on the "clinic_quote_path" field.
func ClinicQuotePathNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldClinicQuotePath, v))
}

// ClinicQuotePathIn applies the In predicate on the "clinic_quote_path" field.
func ClinicQuotePathIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldClinicQuotePath, vs...))
}

// ClinicQuotePathNotIn applies the NotIn predicate on the "clinic_quote_path" field.
func ClinicQuotePathNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldClinicQuotePath, vs...))
}

// ClinicQuotePathGT applies the GT predicate on the "clinic_quote_path" field.
func ClinicQuotePathGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldClinicQuotePath, v))
}

// ClinicQuotePathGTE applies the GTE predicate on the "clinic_quote_path" field.
func ClinicQuotePathGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldClinicQuotePath, v))
}

// ClinicQuotePathLT applies the LT predicate on the "clinic_quote_path" field.
func ClinicQuotePathLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldClinicQuotePath, v))
}

// ClinicQuotePathLTE applies the LTE predicate on the "clinic_quote_path" field.
func ClinicQuotePathLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldClinicQuotePath, v))
}

// ClinicQuotePathContains applies the Contains predicate on the "clinic_quote_path" field.
func ClinicQuotePathContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldClinicQuotePath, v))
}

// ClinicQuotePathHasPrefix applies the HasPrefix predicate on the "clinic_quote_path" field.
func ClinicQuotePathHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldClinicQuotePath, v))
}

// ClinicQuotePathHasSuffix applies the HasSuffix predicate on the "clinic_quote_path" field.
func ClinicQuotePathHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldClinicQuotePath, v))
}

// ClinicQuotePathIsNil applies the IsNil predicate on the "clinic_quote_path" field.
func ClinicQuotePathIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldClinicQuotePath))
}

// ClinicQuotePathNotNil applies the NotNil predicate on the "clinic_quote_path" field.
func ClinicQuotePathNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldClinicQuotePath))
}

// ClinicQuotePathEqualFold applies the EqualFold predicate on the "clinic_quote_path" field.
func ClinicQuotePathEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldClinicQuotePath, v))
}

// ClinicQuotePathContainsFold applies the ContainsFold predicate on the "clinic_quote_path" field.
func ClinicQuotePathContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldClinicQuotePath, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.NotPredicates(p))
}
