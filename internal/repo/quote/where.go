// Code generated by ent, DO NOT EDIT.

package quote

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/medassist/medassist_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldUpdatedAt, v))
}

// AppointmentID applies equality check predicate on the "appointment_id" field. It's identical to AppointmentIDEQ.
func AppointmentID(v int) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldAppointmentID, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v int) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldCreatedBy, v))
}

// TotalCliniqueCents applies equality check predicate on the "total_clinique_cents" field. It's identical to TotalCliniqueCentsEQ.
func TotalCliniqueCents(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldTotalCliniqueCents, v))
}

// TotalAssistanceCents applies equality check predicate on the "total_assistance_cents" field. It's identical to TotalAssistanceCentsEQ.
func TotalAssistanceCents(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldTotalAssistanceCents, v))
}

// TotalQuoteCents applies equality check predicate on the "total_quote_cents" field. It's identical to TotalQuoteCentsEQ.
func TotalQuoteCents(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldTotalQuoteCents, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldFilePath, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldFileName, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldComment, v))
}

// SentToPatientAt applies equality check predicate on the "sent_to_patient_at" field. It's identical to SentToPatientAtEQ.
func SentToPatientAt(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldSentToPatientAt, v))
}

// SentBy applies equality check predicate on the "sent_by" field. It's identical to SentByEQ.
func SentBy(v int) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldSentBy, v))
}

// RespondedAt applies equality check predicate on the "responded_at" field. It's identical to RespondedAtEQ.
func RespondedAt(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldRespondedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldUpdatedAt, v))
}

// AppointmentIDEQ applies the EQ predicate on the "appointment_id" field.
func AppointmentIDEQ(v int) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldAppointmentID, v))
}

// AppointmentIDNEQ applies the NEQ predicate on the "appointment_id" field.
func AppointmentIDNEQ(v int) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldAppointmentID, v))
}

// AppointmentIDIn applies the In predicate on the "appointment_id" field.
func AppointmentIDIn(vs ...int) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldAppointmentID, vs...))
}

// AppointmentIDNotIn applies the NotIn predicate on the "appointment_id" field.
func AppointmentIDNotIn(vs ...int) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldAppointmentID, vs...))
}

// AppointmentIDGT applies the GT predicate on the "appointment_id" field.
func AppointmentIDGT(v int) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldAppointmentID, v))
}

// AppointmentIDGTE applies the GTE predicate on the "appointment_id" field.
func AppointmentIDGTE(v int) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldAppointmentID, v))
}

// AppointmentIDLT applies the LT predicate on the "appointment_id" field.
func AppointmentIDLT(v int) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldAppointmentID, v))
}

// AppointmentIDLTE applies the LTE predicate on the "appointment_id" field.
func AppointmentIDLTE(v int) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldAppointmentID, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v int) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v int) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...int) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...int) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v int) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v int) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v int) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v int) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldCreatedBy, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldStatus, vs...))
}

// TotalCliniqueCentsEQ applies the EQ predicate on the "total_clinique_cents" field.
func TotalCliniqueCentsEQ(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldTotalCliniqueCents, v))
}

// TotalCliniqueCentsNEQ applies the NEQ predicate on the "total_clinique_cents" field.
func TotalCliniqueCentsNEQ(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldTotalCliniqueCents, v))
}

// TotalCliniqueCentsIn applies the In predicate on the "total_clinique_cents" field.
func TotalCliniqueCentsIn(vs ...int64) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldTotalCliniqueCents, vs...))
}

// TotalCliniqueCentsNotIn applies the NotIn predicate on the "total_clinique_cents" field.
func TotalCliniqueCentsNotIn(vs ...int64) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldTotalCliniqueCents, vs...))
}

// TotalCliniqueCentsGT applies the GT predicate on the "total_clinique_cents" field.
func TotalCliniqueCentsGT(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldTotalCliniqueCents, v))
}

// TotalCliniqueCentsGTE applies the GTE predicate on the "total_clinique_cents" field.
func TotalCliniqueCentsGTE(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldTotalCliniqueCents, v))
}

// TotalCliniqueCentsLT applies the LT predicate on the "total_clinique_cents" field.
func TotalCliniqueCentsLT(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldTotalCliniqueCents, v))
}

// TotalCliniqueCentsLTE applies the LTE predicate on the "total_clinique_cents" field.
func TotalCliniqueCentsLTE(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldTotalCliniqueCents, v))
}

// TotalAssistanceCentsEQ applies the EQ predicate on the "total_assistance_cents" field.
func TotalAssistanceCentsEQ(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldTotalAssistanceCents, v))
}

// TotalAssistanceCentsNEQ applies the NEQ predicate on the "total_assistance_cents" field.
func TotalAssistanceCentsNEQ(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldTotalAssistanceCents, v))
}

// TotalAssistanceCentsIn applies the In predicate on the "total_assistance_cents" field.
func TotalAssistanceCentsIn(vs ...int64) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldTotalAssistanceCents, vs...))
}

// TotalAssistanceCentsNotIn applies the NotIn predicate on the "total_assistance_cents" field.
func TotalAssistanceCentsNotIn(vs ...int64) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldTotalAssistanceCents, vs...))
}

// TotalAssistanceCentsGT applies the GT predicate on the "total_assistance_cents" field.
func TotalAssistanceCentsGT(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldTotalAssistanceCents, v))
}

// TotalAssistanceCentsGTE applies the GTE predicate on the "total_assistance_cents" field.
func TotalAssistanceCentsGTE(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldTotalAssistanceCents, v))
}

// TotalAssistanceCentsLT applies the LT predicate on the "total_assistance_cents" field.
func TotalAssistanceCentsLT(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldTotalAssistanceCents, v))
}

// TotalAssistanceCentsLTE applies the LTE predicate on the "total_assistance_cents" field.
func TotalAssistanceCentsLTE(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldTotalAssistanceCents, v))
}

// TotalQuoteCentsEQ applies the EQ predicate on the "total_quote_cents" field.
func TotalQuoteCentsEQ(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldTotalQuoteCents, v))
}

// TotalQuoteCentsNEQ applies the NEQ predicate on the "total_quote_cents" field.
func TotalQuoteCentsNEQ(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldTotalQuoteCents, v))
}

// TotalQuoteCentsIn applies the In predicate on the "total_quote_cents" field.
func TotalQuoteCentsIn(vs ...int64) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldTotalQuoteCents, vs...))
}

// TotalQuoteCentsNotIn applies the NotIn predicate on the "total_quote_cents" field.
func TotalQuoteCentsNotIn(vs ...int64) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldTotalQuoteCents, vs...))
}

// TotalQuoteCentsGT applies the GT predicate on the "total_quote_cents" field.
func TotalQuoteCentsGT(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldTotalQuoteCents, v))
}

// TotalQuoteCentsGTE applies the GTE predicate on the "total_quote_cents" field.
func TotalQuoteCentsGTE(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldTotalQuoteCents, v))
}

// TotalQuoteCentsLT applies the LT predicate on the "total_quote_cents" field.
func TotalQuoteCentsLT(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldTotalQuoteCents, v))
}

// TotalQuoteCentsLTE applies the LTE predicate on the "total_quote_cents" field.
func TotalQuoteCentsLTE(v int64) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldTotalQuoteCents, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathIsNil applies the IsNil predicate on the "file_path" field.
func FilePathIsNil() predicate.Quote {
	return predicate.Quote(sql.FieldIsNull(FieldFilePath))
}

// FilePathNotNil applies the NotNil predicate on the "file_path" field.
func FilePathNotNil() predicate.Quote {
	return predicate.Quote(sql.FieldNotNull(FieldFilePath))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContainsFold(FieldFilePath, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameIsNil applies the IsNil predicate on the "file_name" field.
func FileNameIsNil() predicate.Quote {
	return predicate.Quote(sql.FieldIsNull(FieldFileName))
}

// FileNameNotNil applies the NotNil predicate on the "file_name" field.
func FileNameNotNil() predicate.Quote {
	return predicate.Quote(sql.FieldNotNull(FieldFileName))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContainsFold(FieldFileName, v))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasSuffix(FieldComment, v))
}

// CommentIsNil applies the IsNil predicate on the "comment" field.
func CommentIsNil() predicate.Quote {
	return predicate.Quote(sql.FieldIsNull(FieldComment))
}

// CommentNotNil applies the NotNil predicate on the "comment" field.
func CommentNotNil() predicate.Quote {
	return predicate.Quote(sql.FieldNotNull(FieldComment))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContainsFold(FieldComment, v))
}

// SentToPatientAtEQ applies the EQ predicate on the "sent_to_patient_at" field.
func SentToPatientAtEQ(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldSentToPatientAt, v))
}

// SentToPatientAtNEQ applies the NEQ predicate on the "sent_to_patient_at" field.
func SentToPatientAtNEQ(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldSentToPatientAt, v))
}

// SentToPatientAtIn applies the In predicate on the "sent_to_patient_at" field.
func SentToPatientAtIn(vs ...time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldSentToPatientAt, vs...))
}

// SentToPatientAtNotIn applies the NotIn predicate on the "sent_to_patient_at" field.
func SentToPatientAtNotIn(vs ...time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldSentToPatientAt, vs...))
}

// SentToPatientAtGT applies the GT predicate on the "sent_to_patient_at" field.
func SentToPatientAtGT(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldSentToPatientAt, v))
}

// SentToPatientAtGTE applies the GTE predicate on the "sent_to_patient_at" field.
func SentToPatientAtGTE(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldSentToPatientAt, v))
}

// SentToPatientAtLT applies the LT predicate on the "sent_to_patient_at" field.
func SentToPatientAtLT(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldSentToPatientAt, v))
}

// SentToPatientAtLTE applies the LTE predicate on the "sent_to_patient_at" field.
func SentToPatientAtLTE(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldSentToPatientAt, v))
}

// SentToPatientAtIsNil applies the IsNil predicate on the "sent_to_patient_at" field.
func SentToPatientAtIsNil() predicate.Quote {
	return predicate.Quote(sql.FieldIsNull(FieldSentToPatientAt))
}

// SentToPatientAtNotNil applies the NotNil predicate on the "sent_to_patient_at" field.
func SentToPatientAtNotNil() predicate.Quote {
	return predicate.Quote(sql.FieldNotNull(FieldSentToPatientAt))
}

// SentByEQ applies the EQ predicate on the "sent_by" field.
func SentByEQ(v int) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldSentBy, v))
}

// SentByNEQ applies the NEQ predicate on the "sent_by" field.
func SentByNEQ(v int) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldSentBy, v))
}

// SentByIn applies the In predicate on the "sent_by" field.
func SentByIn(vs ...int) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldSentBy, vs...))
}

// SentByNotIn applies the NotIn predicate on the "sent_by" field.
func SentByNotIn(vs ...int) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldSentBy, vs...))
}

// SentByGT applies the GT predicate on the "sent_by" field.
func SentByGT(v int) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldSentBy, v))
}

// SentByGTE applies the GTE predicate on the "sent_by" field.
func SentByGTE(v int) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldSentBy, v))
}

// SentByLT applies the LT predicate on the "sent_by" field.
func SentByLT(v int) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldSentBy, v))
}

// SentByLTE applies the LTE predicate on the "sent_by" field.
func SentByLTE(v int) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldSentBy, v))
}

// SentByIsNil applies the IsNil predicate on the "sent_by" field.
func SentByIsNil() predicate.Quote {
	return predicate.Quote(sql.FieldIsNull(FieldSentBy))
}

// SentByNotNil applies the NotNil predicate on the "sent_by" field.
func SentByNotNil() predicate.Quote {
	return predicate.Quote(sql.FieldNotNull(FieldSentBy))
}

// RespondedAtEQ applies the EQ predicate on the "responded_at" field.
func RespondedAtEQ(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldRespondedAt, v))
}

// RespondedAtNEQ applies the NEQ predicate on the "responded_at" field.
func RespondedAtNEQ(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldRespondedAt, v))
}

// RespondedAtIn applies the In predicate on the "responded_at" field.
func RespondedAtIn(vs ...time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldRespondedAt, vs...))
}

// RespondedAtNotIn applies the NotIn predicate on the "responded_at" field.
func RespondedAtNotIn(vs ...time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldRespondedAt, vs...))
}

// RespondedAtGT applies the GT predicate on the "responded_at" field.
func RespondedAtGT(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldRespondedAt, v))
}

// RespondedAtGTE applies the GTE predicate on the "responded_at" field.
func RespondedAtGTE(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldRespondedAt, v))
}

// RespondedAtLT applies the LT predicate on the "responded_at" field.
func RespondedAtLT(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldRespondedAt, v))
}

// RespondedAtLTE applies the LTE predicate on the "responded_at" field.
func RespondedAtLTE(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldRespondedAt, v))
}

// RespondedAtIsNil applies the IsNil predicate on the "responded_at" field.
func RespondedAtIsNil() predicate.Quote {
	return predicate.Quote(sql.FieldIsNull(FieldRespondedAt))
}

// RespondedAtNotNil applies the NotNil predicate on the "responded_at" field.
func RespondedAtNotNil() predicate.Quote {
	return predicate.Quote(sql.FieldNotNull(FieldRespondedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Quote) predicate.Quote {
	return predicate.Quote(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Quote) predicate.Quote {
	return predicate.Quote(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Quote) predicate.Quote {
	return predicate.Quote(sql.NotPredicates(p))
}
