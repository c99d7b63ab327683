// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/medassist/medassist_backend/internal/repo/assistancequote"
	"github.com/medassist/medassist_backend/internal/repo/predicate"
)

// AssistanceQuoteUpdate is the builder for updating AssistanceQuote entities.
type AssistanceQuoteUpdate struct {
	config
	hooks    []Hook
	mutation *AssistanceQuoteMutation
}

// Where appends a list predicates to the AssistanceQuoteUpdate builder.
func (_u *AssistanceQuoteUpdate) Where(ps ...predicate.AssistanceQuote) *AssistanceQuoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuoteID sets the "quote_id" field.
func (_u *AssistanceQuoteUpdate) SetQuoteID(v int) *AssistanceQuoteUpdate {
	_u.mutation.ResetQuoteID()
	_u.mutation.SetQuoteID(v)
	return _u
}

// SetNillableQuoteID sets the "quote_id" field if the given value is not nil.
func (_u *AssistanceQuoteUpdate) SetNillableQuoteID(v *int) *AssistanceQuoteUpdate {
	if v != nil {
		_u.SetQuoteID(*v)
	}
	return _u
}

// AddQuoteID adds value to the "quote_id" field.
func (_u *AssistanceQuoteUpdate) AddQuoteID(v int) *AssistanceQuoteUpdate {
	_u.mutation.AddQuoteID(v)
	return _u
}

// SetLabel sets the "label" field.
func (_u *AssistanceQuoteUpdate) SetLabel(v string) *AssistanceQuoteUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *AssistanceQuoteUpdate) SetNillableLabel(v *string) *AssistanceQuoteUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *AssistanceQuoteUpdate) SetAmountCents(v int64) *AssistanceQuoteUpdate {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *AssistanceQuoteUpdate) SetNillableAmountCents(v *int64) *AssistanceQuoteUpdate {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *AssistanceQuoteUpdate) AddAmountCents(v int64) *AssistanceQuoteUpdate {
	_u.mutation.AddAmountCents(v)
	return _u
}

// Mutation returns the AssistanceQuoteMutation object of the builder.
func (_u *AssistanceQuoteUpdate) Mutation() *AssistanceQuoteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssistanceQuoteUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssistanceQuoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssistanceQuoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssistanceQuoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssistanceQuoteUpdate) check() error {
	if v, ok := _u.mutation.Label(); ok {
		if err := assistancequote.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`repo: validator failed for field "AssistanceQuote.label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountCents(); ok {
		if err := assistancequote.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`repo: validator failed for field "AssistanceQuote.amount_cents": %w`, err)}
		}
	}
	return nil
}

func (_u *AssistanceQuoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assistancequote.Table, assistancequote.Columns, sqlgraph.NewFieldSpec(assistancequote.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuoteID(); ok {
		_spec.SetField(assistancequote.FieldQuoteID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuoteID(); ok {
		_spec.AddField(assistancequote.FieldQuoteID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(assistancequote.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(assistancequote.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(assistancequote.FieldAmountCents, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assistancequote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssistanceQuoteUpdateOne is the builder for updating a single AssistanceQuote entity.
type AssistanceQuoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssistanceQuoteMutation
}

// SetQuoteID sets the "quote_id" field.
func (_u *AssistanceQuoteUpdateOne) SetQuoteID(v int) *AssistanceQuoteUpdateOne {
	_u.mutation.ResetQuoteID()
	_u.mutation.SetQuoteID(v)
	return _u
}

// SetNillableQuoteID sets the "quote_id" field if the given value is not nil.
func (_u *AssistanceQuoteUpdateOne) SetNillableQuoteID(v *int) *AssistanceQuoteUpdateOne {
	if v != nil {
		_u.SetQuoteID(*v)
	}
	return _u
}

// AddQuoteID adds value to the "quote_id" field.
func (_u *AssistanceQuoteUpdateOne) AddQuoteID(v int) *AssistanceQuoteUpdateOne {
	_u.mutation.AddQuoteID(v)
	return _u
}

// SetLabel sets the "label" field.
func (_u *AssistanceQuoteUpdateOne) SetLabel(v string) *AssistanceQuoteUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *AssistanceQuoteUpdateOne) SetNillableLabel(v *string) *AssistanceQuoteUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *AssistanceQuoteUpdateOne) SetAmountCents(v int64) *AssistanceQuoteUpdateOne {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *AssistanceQuoteUpdateOne) SetNillableAmountCents(v *int64) *AssistanceQuoteUpdateOne {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *AssistanceQuoteUpdateOne) AddAmountCents(v int64) *AssistanceQuoteUpdateOne {
	_u.mutation.AddAmountCents(v)
	return _u
}

// Mutation returns the AssistanceQuoteMutation object of the builder.
func (_u *AssistanceQuoteUpdateOne) Mutation() *AssistanceQuoteMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssistanceQuoteUpdate builder.
func (_u *AssistanceQuoteUpdateOne) Where(ps ...predicate.AssistanceQuote) *AssistanceQuoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssistanceQuoteUpdateOne) Select(field string, fields ...string) *AssistanceQuoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssistanceQuote entity.
func (_u *AssistanceQuoteUpdateOne) Save(ctx context.Context) (*AssistanceQuote, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssistanceQuoteUpdateOne) SaveX(ctx context.Context) *AssistanceQuote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssistanceQuoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssistanceQuoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssistanceQuoteUpdateOne) check() error {
	if v, ok := _u.mutation.Label(); ok {
		if err := assistancequote.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`repo: validator failed for field "AssistanceQuote.label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountCents(); ok {
		if err := assistancequote.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`repo: validator failed for field "AssistanceQuote.amount_cents": %w`, err)}
		}
	}
	return nil
}

func (_u *AssistanceQuoteUpdateOne) sqlSave(ctx context.Context) (_node *AssistanceQuote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assistancequote.Table, assistancequote.Columns, sqlgraph.NewFieldSpec(assistancequote.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AssistanceQuote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assistancequote.FieldID)
		for _, f := range fields {
			if !assistancequote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != assistancequote.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuoteID(); ok {
		_spec.SetField(assistancequote.FieldQuoteID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuoteID(); ok {
		_spec.AddField(assistancequote.FieldQuoteID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(assistancequote.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(assistancequote.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(assistancequote.FieldAmountCents, field.TypeInt64, value)
	}
	_node = &AssistanceQuote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assistancequote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
