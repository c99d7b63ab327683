// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/medassist/medassist_backend/internal/repo/assistancequote"
)

// AssistanceQuote is the model entity for the AssistanceQuote schema.
type AssistanceQuote struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → quotes.id
	QuoteID int `json:"quote_id,omitempty"`
	// Label holds the value of the "label" field.
	Label string `json:"label,omitempty"`
	// AmountCents holds the value of the "amount_cents" field.
	AmountCents  int64 `json:"amount_cents,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssistanceQuote) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assistancequote.FieldID, assistancequote.FieldQuoteID, assistancequote.FieldAmountCents:
			values[i] = new(sql.NullInt64)
		case assistancequote.FieldLabel:
			values[i] = new(sql.NullString)
		case assistancequote.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssistanceQuote fields.
func (_m *AssistanceQuote) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assistancequote.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case assistancequote.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case assistancequote.FieldQuoteID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quote_id", values[i])
			} else if value.Valid {
				_m.QuoteID = int(value.Int64)
			}
		case assistancequote.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = value.String
			}
		case assistancequote.FieldAmountCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_cents", values[i])
			} else if value.Valid {
				_m.AmountCents = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssistanceQuote.
// This includes values selected through modifiers, order, etc.
func (_m *AssistanceQuote) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AssistanceQuote.
// Note that you need to call AssistanceQuote.Unwrap() before calling this method if this AssistanceQuote
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssistanceQuote) Update() *AssistanceQuoteUpdateOne {
	return NewAssistanceQuoteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssistanceQuote entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssistanceQuote) Unwrap() *AssistanceQuote {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AssistanceQuote is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssistanceQuote) String() string {
	var builder strings.Builder
	builder.WriteString("AssistanceQuote(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("quote_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuoteID))
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(_m.Label)
	builder.WriteString(", ")
	builder.WriteString("amount_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.AmountCents))
	builder.WriteByte(')')
	return builder.String()
}

// AssistanceQuotes is a parsable slice of AssistanceQuote.
type AssistanceQuotes []*AssistanceQuote
