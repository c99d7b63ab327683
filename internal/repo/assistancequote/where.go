// Code generated by ent, DO NOT EDIT.

package assistancequote

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/medassist/medassist_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldEQ(FieldCreatedAt, v))
}

// QuoteID applies equality check predicate on the "quote_id" field. It's identical to QuoteIDEQ.
func QuoteID(v int) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldEQ(FieldQuoteID, v))
}

// AmountCents applies equality check predicate on the "amount_cents" field. It's identical to AmountCentsEQ.
func AmountCents(v int64) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldEQ(FieldAmountCents, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldLTE(FieldCreatedAt, v))
}

// QuoteIDEQ applies the EQ predicate on the "quote_id" field.
func QuoteIDEQ(v int) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldEQ(FieldQuoteID, v))
}

// QuoteIDNEQ applies the NEQ predicate on the "quote_id" field.
func QuoteIDNEQ(v int) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldNEQ(FieldQuoteID, v))
}

// QuoteIDIn applies the In predicate on the "quote_id" field.
func QuoteIDIn(vs ...int) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldIn(FieldQuoteID, vs...))
}

// QuoteIDNotIn applies the NotIn predicate on the "quote_id" field.
func QuoteIDNotIn(vs ...int) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldNotIn(FieldQuoteID, vs...))
}

// QuoteIDGT applies the GT predicate on the "quote_id" field.
func QuoteIDGT(v int) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldGT(FieldQuoteID, v))
}

// QuoteIDGTE applies the GTE predicate on the "quote_id" field.
func QuoteIDGTE(v int) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldGTE(FieldQuoteID, v))
}

// QuoteIDLT applies the LT predicate on the "quote_id" field.
func QuoteIDLT(v int) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldLT(FieldQuoteID, v))
}

// QuoteIDLTE applies the LTE predicate on the "quote_id" field.
func QuoteIDLTE(v int) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldLTE(FieldQuoteID, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldContainsFold(FieldLabel, v))
}

// AmountCentsEQ applies the EQ predicate on the "amount_cents" field.
func AmountCentsEQ(v int64) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldEQ(FieldAmountCents, v))
}

// AmountCentsNEQ applies the NEQ predicate on the "amount_cents" field.
func AmountCentsNEQ(v int64) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldNEQ(FieldAmountCents, v))
}

// AmountCentsIn applies the In predicate on the "amount_cents" field.
func AmountCentsIn(vs ...int64) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldIn(FieldAmountCents, vs...))
}

// AmountCentsNotIn applies the NotIn predicate on the "amount_cents" field.
func AmountCentsNotIn(vs ...int64) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldNotIn(FieldAmountCents, vs...))
}

// AmountCentsGT applies the GT predicate on the "amount_cents" field.
func AmountCentsGT(v int64) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldGT(FieldAmountCents, v))
}

// AmountCentsGTE applies the GTE predicate on the "amount_cents" field.
func AmountCentsGTE(v int64) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldGTE(FieldAmountCents, v))
}

// AmountCentsLT applies the LT predicate on the "amount_cents" field.
func AmountCentsLT(v int64) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldLT(FieldAmountCents, v))
}

// AmountCentsLTE applies the LTE predicate on the "amount_cents" field.
func AmountCentsLTE(v int64) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.FieldLTE(FieldAmountCents, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssistanceQuote) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssistanceQuote) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssistanceQuote) predicate.AssistanceQuote {
	return predicate.AssistanceQuote(sql.NotPredicates(p))
}
