// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/medassist/medassist_backend/internal/repo/assistancequote"
)

// AssistanceQuoteCreate is the builder for creating a AssistanceQuote entity.
type AssistanceQuoteCreate struct {
	config
	mutation *AssistanceQuoteMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssistanceQuoteCreate) SetCreatedAt(v time.Time) *AssistanceQuoteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssistanceQuoteCreate) SetNillableCreatedAt(v *time.Time) *AssistanceQuoteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetQuoteID sets the "quote_id" field.
func (_c *AssistanceQuoteCreate) SetQuoteID(v int) *AssistanceQuoteCreate {
	_c.mutation.SetQuoteID(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *AssistanceQuoteCreate) SetLabel(v string) *AssistanceQuoteCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetAmountCents sets the "amount_cents" field.
func (_c *AssistanceQuoteCreate) SetAmountCents(v int64) *AssistanceQuoteCreate {
	_c.mutation.SetAmountCents(v)
	return _c
}

// Mutation returns the AssistanceQuoteMutation object of the builder.
func (_c *AssistanceQuoteCreate) Mutation() *AssistanceQuoteMutation {
	return _c.mutation
}

// Save creates the AssistanceQuote in the database.
func (_c *AssistanceQuoteCreate) Save(ctx context.Context) (*AssistanceQuote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssistanceQuoteCreate) SaveX(ctx context.Context) *AssistanceQuote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssistanceQuoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssistanceQuoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssistanceQuoteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assistancequote.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssistanceQuoteCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AssistanceQuote.created_at"`)}
	}
	if _, ok := _c.mutation.QuoteID(); !ok {
		return &ValidationError{Name: "quote_id", err: errors.New(`repo: missing required field "AssistanceQuote.quote_id"`)}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`repo: missing required field "AssistanceQuote.label"`)}
	}
	if v, ok := _c.mutation.Label(); ok {
		if err := assistancequote.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`repo: validator failed for field "AssistanceQuote.label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AmountCents(); !ok {
		return &ValidationError{Name: "amount_cents", err: errors.New(`repo: missing required field "AssistanceQuote.amount_cents"`)}
	}
	if v, ok := _c.mutation.AmountCents(); ok {
		if err := assistancequote.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`repo: validator failed for field "AssistanceQuote.amount_cents": %w`, err)}
		}
	}
	return nil
}

func (_c *AssistanceQuoteCreate) sqlSave(ctx context.Context) (*AssistanceQuote, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssistanceQuoteCreate) createSpec() (*AssistanceQuote, *sqlgraph.CreateSpec) {
	var (
		_node = &AssistanceQuote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assistancequote.Table, sqlgraph.NewFieldSpec(assistancequote.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assistancequote.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.QuoteID(); ok {
		_spec.SetField(assistancequote.FieldQuoteID, field.TypeInt, value)
		_node.QuoteID = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(assistancequote.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.AmountCents(); ok {
		_spec.SetField(assistancequote.FieldAmountCents, field.TypeInt64, value)
		_node.AmountCents = value
	}
	return _node, _spec
}

// AssistanceQuoteCreateBulk is the builder for creating many AssistanceQuote entities in bulk.
type AssistanceQuoteCreateBulk struct {
	config
	err      error
	builders []*AssistanceQuoteCreate
}

// Save creates the AssistanceQuote entities in the database.
func (_c *AssistanceQuoteCreateBulk) Save(ctx context.Context) ([]*AssistanceQuote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssistanceQuote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssistanceQuoteMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AssistanceQuoteCreateBulk) SaveX(ctx context.Context) []*AssistanceQuote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssistanceQuoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssistanceQuoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
