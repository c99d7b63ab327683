// Code generated by ent, DO NOT EDIT.

package quote

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quote type in the database.
	Label = "quote"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldAppointmentID holds the string denoting the appointment_id field in the database.
	FieldAppointmentID = "appointment_id"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTotalCliniqueCents holds the string denoting the total_clinique_cents field in the database.
	FieldTotalCliniqueCents = "total_clinique_cents"
	// FieldTotalAssistanceCents holds the string denoting the total_assistance_cents field in the database.
	FieldTotalAssistanceCents = "total_assistance_cents"
	// FieldTotalQuoteCents holds the string denoting the total_quote_cents field in the database.
	FieldTotalQuoteCents = "total_quote_cents"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldFileName holds the string denoting the file_name field in the database.
	FieldFileName = "file_name"
	// FieldComment holds the string denoting the comment field in the database.
	FieldComment = "comment"
	// FieldSentToPatientAt holds the string denoting the sent_to_patient_at field in the database.
	FieldSentToPatientAt = "sent_to_patient_at"
	// FieldSentBy holds the string denoting the sent_by field in the database.
	FieldSentBy = "sent_by"
	// FieldRespondedAt holds the string denoting the responded_at field in the database.
	FieldRespondedAt = "responded_at"
	// Table holds the table name of the quote in the database.
	Table = "quotes"
)

// Columns holds all SQL columns for quote fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldAppointmentID,
	FieldCreatedBy,
	FieldStatus,
	FieldTotalCliniqueCents,
	FieldTotalAssistanceCents,
	FieldTotalQuoteCents,
	FieldFilePath,
	FieldFileName,
	FieldComment,
	FieldSentToPatientAt,
	FieldSentBy,
	FieldRespondedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// TotalCliniqueCentsValidator is a validator for the "total_clinique_cents" field. It is called by the builders before save.
	TotalCliniqueCentsValidator func(int64) error
	// TotalAssistanceCentsValidator is a validator for the "total_assistance_cents" field. It is called by the builders before save.
	TotalAssistanceCentsValidator func(int64) error
	// TotalQuoteCentsValidator is a validator for the "total_quote_cents" field. It is called by the builders before save.
	TotalQuoteCentsValidator func(int64) error
	// FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	FilePathValidator func(string) error
	// FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	FileNameValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRefused  Status = "refused"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusAccepted, StatusRefused:
		return nil
	default:
		return fmt.Errorf("quote: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Quote queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAppointmentID orders the results by the appointment_id field.
func ByAppointmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentID, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTotalCliniqueCents orders the results by the total_clinique_cents field.
func ByTotalCliniqueCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCliniqueCents, opts...).ToFunc()
}

// ByTotalAssistanceCents orders the results by the total_assistance_cents field.
func ByTotalAssistanceCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAssistanceCents, opts...).ToFunc()
}

// ByTotalQuoteCents orders the results by the total_quote_cents field.
func ByTotalQuoteCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuoteCents, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByFileName orders the results by the file_name field.
func ByFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileName, opts...).ToFunc()
}

// ByComment orders the results by the comment field.
func ByComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComment, opts...).ToFunc()
}

// BySentToPatientAt orders the results by the sent_to_patient_at field.
func BySentToPatientAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentToPatientAt, opts...).ToFunc()
}

// BySentBy orders the results by the sent_by field.
func BySentBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentBy, opts...).ToFunc()
}

// ByRespondedAt orders the results by the responded_at field.
func ByRespondedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRespondedAt, opts...).ToFunc()
}
