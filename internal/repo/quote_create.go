// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/medassist/medassist_backend/internal/repo/quote"
)

// QuoteCreate is the builder for creating a Quote entity.
type QuoteCreate struct {
	config
	mutation *QuoteMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuoteCreate) SetCreatedAt(v time.Time) *QuoteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableCreatedAt(v *time.Time) *QuoteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuoteCreate) SetUpdatedAt(v time.Time) *QuoteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableUpdatedAt(v *time.Time) *QuoteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *QuoteCreate) SetAppointmentID(v int) *QuoteCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *QuoteCreate) SetCreatedBy(v int) *QuoteCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *QuoteCreate) SetStatus(v quote.Status) *QuoteCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableStatus(v *quote.Status) *QuoteCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalCliniqueCents sets the "total_clinique_cents" field.
func (_c *QuoteCreate) SetTotalCliniqueCents(v int64) *QuoteCreate {
	_c.mutation.SetTotalCliniqueCents(v)
	return _c
}

// SetTotalAssistanceCents sets the "total_assistance_cents" field.
func (_c *QuoteCreate) SetTotalAssistanceCents(v int64) *QuoteCreate {
	_c.mutation.SetTotalAssistanceCents(v)
	return _c
}

// SetTotalQuoteCents sets the "total_quote_cents" field.
func (_c *QuoteCreate) SetTotalQuoteCents(v int64) *QuoteCreate {
	_c.mutation.SetTotalQuoteCents(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *QuoteCreate) SetFilePath(v string) *QuoteCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableFilePath(v *string) *QuoteCreate {
	if v != nil {
		_c.SetFilePath(*v)
	}
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *QuoteCreate) SetFileName(v string) *QuoteCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableFileName(v *string) *QuoteCreate {
	if v != nil {
		_c.SetFileName(*v)
	}
	return _c
}

// SetComment sets the "comment" field.
func (_c *QuoteCreate) SetComment(v string) *QuoteCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableComment(v *string) *QuoteCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetSentToPatientAt sets the "sent_to_patient_at" field.
func (_c *QuoteCreate) SetSentToPatientAt(v time.Time) *QuoteCreate {
	_c.mutation.SetSentToPatientAt(v)
	return _c
}

// SetNillableSentToPatientAt sets the "sent_to_patient_at" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableSentToPatientAt(v *time.Time) *QuoteCreate {
	if v != nil {
		_c.SetSentToPatientAt(*v)
	}
	return _c
}

// SetSentBy sets the "sent_by" field.
func (_c *QuoteCreate) SetSentBy(v int) *QuoteCreate {
	_c.mutation.SetSentBy(v)
	return _c
}

// SetNillableSentBy sets the "sent_by" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableSentBy(v *int) *QuoteCreate {
	if v != nil {
		_c.SetSentBy(*v)
	}
	return _c
}

// SetRespondedAt sets the "responded_at" field.
func (_c *QuoteCreate) SetRespondedAt(v time.Time) *QuoteCreate {
	_c.mutation.SetRespondedAt(v)
	return _c
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_c *QuoteCreate) SetNillableRespondedAt(v *time.Time) *QuoteCreate {
	if v != nil {
		_c.SetRespondedAt(*v)
	}
	return _c
}

// Mutation returns the QuoteMutation object of the builder.
func (_c *QuoteCreate) Mutation() *QuoteMutation {
	return _c.mutation
}

// Save creates the Quote in the database.
func (_c *QuoteCreate) Save(ctx context.Context) (*Quote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuoteCreate) SaveX(ctx context.Context) *Quote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuoteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := quote.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := quote.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := quote.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuoteCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Quote.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Quote.updated_at"`)}
	}
	if _, ok := _c.mutation.AppointmentID(); !ok {
		return &ValidationError{Name: "appointment_id", err: errors.New(`repo: missing required field "Quote.appointment_id"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`repo: missing required field "Quote.created_by"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Quote.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := quote.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Quote.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalCliniqueCents(); !ok {
		return &ValidationError{Name: "total_clinique_cents", err: errors.New(`repo: missing required field "Quote.total_clinique_cents"`)}
	}
	if v, ok := _c.mutation.TotalCliniqueCents(); ok {
		if err := quote.TotalCliniqueCentsValidator(v); err != nil {
			return &ValidationError{Name: "total_clinique_cents", err: fmt.Errorf(`repo: validator failed for field "Quote.total_clinique_cents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAssistanceCents(); !ok {
		return &ValidationError{Name: "total_assistance_cents", err: errors.New(`repo: missing required field "Quote.total_assistance_cents"`)}
	}
	if v, ok := _c.mutation.TotalAssistanceCents(); ok {
		if err := quote.TotalAssistanceCentsValidator(v); err != nil {
			return &ValidationError{Name: "total_assistance_cents", err: fmt.Errorf(`repo: validator failed for field "Quote.total_assistance_cents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQuoteCents(); !ok {
		return &ValidationError{Name: "total_quote_cents", err: errors.New(`repo: missing required field "Quote.total_quote_cents"`)}
	}
	if v, ok := _c.mutation.TotalQuoteCents(); ok {
		if err := quote.TotalQuoteCentsValidator(v); err != nil {
			return &ValidationError{Name: "total_quote_cents", err: fmt.Errorf(`repo: validator failed for field "Quote.total_quote_cents": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := quote.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`repo: validator failed for field "Quote.file_path": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := quote.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`repo: validator failed for field "Quote.file_name": %w`, err)}
		}
	}
	return nil
}

func (_c *QuoteCreate) sqlSave(ctx context.Context) (*Quote, error) {
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

func (_c *QuoteCreate) createSpec() (*Quote, *sqlgraph.CreateSpec) {
	var (
		_node = &Quote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quote.Table, sqlgraph.NewFieldSpec(quote.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(quote.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(quote.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(quote.FieldAppointmentID, field.TypeInt, value)
		_node.AppointmentID = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(quote.FieldCreatedBy, field.TypeInt, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(quote.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalCliniqueCents(); ok {
		_spec.SetField(quote.FieldTotalCliniqueCents, field.TypeInt64, value)
		_node.TotalCliniqueCents = value
	}
	if value, ok := _c.mutation.TotalAssistanceCents(); ok {
		_spec.SetField(quote.FieldTotalAssistanceCents, field.TypeInt64, value)
		_node.TotalAssistanceCents = value
	}
	if value, ok := _c.mutation.TotalQuoteCents(); ok {
		_spec.SetField(quote.FieldTotalQuoteCents, field.TypeInt64, value)
		_node.TotalQuoteCents = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(quote.FieldFilePath, field.TypeString, value)
		_node.FilePath = &value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(quote.FieldFileName, field.TypeString, value)
		_node.FileName = &value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(quote.FieldComment, field.TypeString, value)
		_node.Comment = &value
	}
	if value, ok := _c.mutation.SentToPatientAt(); ok {
		_spec.SetField(quote.FieldSentToPatientAt, field.TypeTime, value)
		_node.SentToPatientAt = &value
	}
	if value, ok := _c.mutation.SentBy(); ok {
		_spec.SetField(quote.FieldSentBy, field.TypeInt, value)
		_node.SentBy = &value
	}
	if value, ok := _c.mutation.RespondedAt(); ok {
		_spec.SetField(quote.FieldRespondedAt, field.TypeTime, value)
		_node.RespondedAt = &value
	}
	return _node, _spec
}

// QuoteCreateBulk is the builder for creating many Quote entities in bulk.
type QuoteCreateBulk struct {
	config
	err      error
	builders []*QuoteCreate
}

// Save creates the Quote entities in the database.
func (_c *QuoteCreateBulk) Save(ctx context.Context) ([]*Quote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Quote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuoteMutation)
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
func (_c *QuoteCreateBulk) SaveX(ctx context.Context) []*Quote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
