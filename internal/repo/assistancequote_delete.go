// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/medassist/medassist_backend/internal/repo/assistancequote"
	"github.com/medassist/medassist_backend/internal/repo/predicate"
)

// AssistanceQuoteDelete is the builder for deleting a AssistanceQuote entity.
type AssistanceQuoteDelete struct {
	config
	hooks    []Hook
	mutation *AssistanceQuoteMutation
}

// Where appends a list predicates to the AssistanceQuoteDelete builder.
func (_d *AssistanceQuoteDelete) Where(ps ...predicate.AssistanceQuote) *AssistanceQuoteDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AssistanceQuoteDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssistanceQuoteDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AssistanceQuoteDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(assistancequote.Table, sqlgraph.NewFieldSpec(assistancequote.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AssistanceQuoteDeleteOne is the builder for deleting a single AssistanceQuote entity.
type AssistanceQuoteDeleteOne struct {
	_d *AssistanceQuoteDelete
}

// Where appends a list predicates to the AssistanceQuoteDelete builder.
func (_d *AssistanceQuoteDeleteOne) Where(ps ...predicate.AssistanceQuote) *AssistanceQuoteDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AssistanceQuoteDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{assistancequote.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssistanceQuoteDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
