// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/medassist/medassist_backend/internal/repo/quote"
)

// Quote is the model entity for the Quote schema.
type Quote struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → appointments.id, one quote per appointment
	AppointmentID int `json:"appointment_id,omitempty"`
	// FK → users.id (staff author)
	CreatedBy int `json:"created_by,omitempty"`
	// Status holds the value of the "status" field.
	Status quote.Status `json:"status,omitempty"`
	// Clinic's own price for the intervention
	TotalCliniqueCents int64 `json:"total_clinique_cents,omitempty"`
	// Sum of the assistance line items
	TotalAssistanceCents int64 `json:"total_assistance_cents,omitempty"`
	// total_clinique_cents + total_assistance_cents
	TotalQuoteCents int64 `json:"total_quote_cents,omitempty"`
	// Object storage key of the quote PDF
	FilePath *string `json:"file_path,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName *string `json:"file_name,omitempty"`
	// Patient's comment, required on refusal
	Comment *string `json:"comment,omitempty"`
	// Set once when the quote is released to the patient, never cleared
	SentToPatientAt *time.Time `json:"sent_to_patient_at,omitempty"`
	// FK → users.id (administrateur or superviseur who released it)
	SentBy *int `json:"sent_by,omitempty"`
	// RespondedAt holds the value of the "responded_at" field.
	RespondedAt  *time.Time `json:"responded_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Quote) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quote.FieldID, quote.FieldAppointmentID, quote.FieldCreatedBy, quote.FieldTotalCliniqueCents, quote.FieldTotalAssistanceCents, quote.FieldTotalQuoteCents, quote.FieldSentBy:
			values[i] = new(sql.NullInt64)
		case quote.FieldStatus, quote.FieldFilePath, quote.FieldFileName, quote.FieldComment:
			values[i] = new(sql.NullString)
		case quote.FieldCreatedAt, quote.FieldUpdatedAt, quote.FieldSentToPatientAt, quote.FieldRespondedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Quote fields.
func (_m *Quote) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quote.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quote.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case quote.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case quote.FieldAppointmentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_id", values[i])
			} else if value.Valid {
				_m.AppointmentID = int(value.Int64)
			}
		case quote.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = int(value.Int64)
			}
		case quote.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = quote.Status(value.String)
			}
		case quote.FieldTotalCliniqueCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_clinique_cents", values[i])
			} else if value.Valid {
				_m.TotalCliniqueCents = value.Int64
			}
		case quote.FieldTotalAssistanceCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_assistance_cents", values[i])
			} else if value.Valid {
				_m.TotalAssistanceCents = value.Int64
			}
		case quote.FieldTotalQuoteCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_quote_cents", values[i])
			} else if value.Valid {
				_m.TotalQuoteCents = value.Int64
			}
		case quote.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = new(string)
				*_m.FilePath = value.String
			}
		case quote.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = new(string)
				*_m.FileName = value.String
			}
		case quote.FieldComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment", values[i])
			} else if value.Valid {
				_m.Comment = new(string)
				*_m.Comment = value.String
			}
		case quote.FieldSentToPatientAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_to_patient_at", values[i])
			} else if value.Valid {
				_m.SentToPatientAt = new(time.Time)
				*_m.SentToPatientAt = value.Time
			}
		case quote.FieldSentBy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sent_by", values[i])
			} else if value.Valid {
				_m.SentBy = new(int)
				*_m.SentBy = int(value.Int64)
			}
		case quote.FieldRespondedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field responded_at", values[i])
			} else if value.Valid {
				_m.RespondedAt = new(time.Time)
				*_m.RespondedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Quote.
// This includes values selected through modifiers, order, etc.
func (_m *Quote) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Quote.
// Note that you need to call Quote.Unwrap() before calling this method if this Quote
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Quote) Update() *QuoteUpdateOne {
	return NewQuoteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Quote entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Quote) Unwrap() *Quote {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Quote is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Quote) String() string {
	var builder strings.Builder
	builder.WriteString("Quote(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("appointment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentID))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedBy))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("total_clinique_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCliniqueCents))
	builder.WriteString(", ")
	builder.WriteString("total_assistance_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAssistanceCents))
	builder.WriteString(", ")
	builder.WriteString("total_quote_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuoteCents))
	builder.WriteString(", ")
	if v := _m.FilePath; v != nil {
		builder.WriteString("file_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FileName; v != nil {
		builder.WriteString("file_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Comment; v != nil {
		builder.WriteString("comment=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SentToPatientAt; v != nil {
		builder.WriteString("sent_to_patient_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SentBy; v != nil {
		builder.WriteString("sent_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RespondedAt; v != nil {
		builder.WriteString("responded_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Quotes is a parsable slice of Quote.
type Quotes []*Quote
