// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/medassist/medassist_backend/internal/repo/predicate"
	"github.com/medassist/medassist_backend/internal/repo/quote"
)

// QuoteUpdate is the builder for updating Quote entities.
type QuoteUpdate struct {
	config
	hooks    []Hook
	mutation *QuoteMutation
}

// Where appends a list predicates to the QuoteUpdate builder.
func (_u *QuoteUpdate) Where(ps ...predicate.Quote) *QuoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuoteUpdate) SetUpdatedAt(v time.Time) *QuoteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *QuoteUpdate) SetAppointmentID(v int) *QuoteUpdate {
	_u.mutation.ResetAppointmentID()
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableAppointmentID(v *int) *QuoteUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// AddAppointmentID adds value to the "appointment_id" field.
func (_u *QuoteUpdate) AddAppointmentID(v int) *QuoteUpdate {
	_u.mutation.AddAppointmentID(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *QuoteUpdate) SetCreatedBy(v int) *QuoteUpdate {
	_u.mutation.ResetCreatedBy()
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableCreatedBy(v *int) *QuoteUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddCreatedBy adds value to the "created_by" field.
func (_u *QuoteUpdate) AddCreatedBy(v int) *QuoteUpdate {
	_u.mutation.AddCreatedBy(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuoteUpdate) SetStatus(v quote.Status) *QuoteUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableStatus(v *quote.Status) *QuoteUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalCliniqueCents sets the "total_clinique_cents" field.
func (_u *QuoteUpdate) SetTotalCliniqueCents(v int64) *QuoteUpdate {
	_u.mutation.ResetTotalCliniqueCents()
	_u.mutation.SetTotalCliniqueCents(v)
	return _u
}

// SetNillableTotalCliniqueCents sets the "total_clinique_cents" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableTotalCliniqueCents(v *int64) *QuoteUpdate {
	if v != nil {
		_u.SetTotalCliniqueCents(*v)
	}
	return _u
}

// AddTotalCliniqueCents adds value to the "total_clinique_cents" field.
func (_u *QuoteUpdate) AddTotalCliniqueCents(v int64) *QuoteUpdate {
	_u.mutation.AddTotalCliniqueCents(v)
	return _u
}

// SetTotalAssistanceCents sets the "total_assistance_cents" field.
func (_u *QuoteUpdate) SetTotalAssistanceCents(v int64) *QuoteUpdate {
	_u.mutation.ResetTotalAssistanceCents()
	_u.mutation.SetTotalAssistanceCents(v)
	return _u
}

// SetNillableTotalAssistanceCents sets the "total_assistance_cents" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableTotalAssistanceCents(v *int64) *QuoteUpdate {
	if v != nil {
		_u.SetTotalAssistanceCents(*v)
	}
	return _u
}

// AddTotalAssistanceCents adds value to the "total_assistance_cents" field.
func (_u *QuoteUpdate) AddTotalAssistanceCents(v int64) *QuoteUpdate {
	_u.mutation.AddTotalAssistanceCents(v)
	return _u
}

// SetTotalQuoteCents sets the "total_quote_cents" field.
func (_u *QuoteUpdate) SetTotalQuoteCents(v int64) *QuoteUpdate {
	_u.mutation.ResetTotalQuoteCents()
	_u.mutation.SetTotalQuoteCents(v)
	return _u
}

// SetNillableTotalQuoteCents sets the "total_quote_cents" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableTotalQuoteCents(v *int64) *QuoteUpdate {
	if v != nil {
		_u.SetTotalQuoteCents(*v)
	}
	return _u
}

// AddTotalQuoteCents adds value to the "total_quote_cents" field.
func (_u *QuoteUpdate) AddTotalQuoteCents(v int64) *QuoteUpdate {
	_u.mutation.AddTotalQuoteCents(v)
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *QuoteUpdate) SetFilePath(v string) *QuoteUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableFilePath(v *string) *QuoteUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *QuoteUpdate) ClearFilePath() *QuoteUpdate {
	_u.mutation.ClearFilePath()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *QuoteUpdate) SetFileName(v string) *QuoteUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableFileName(v *string) *QuoteUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *QuoteUpdate) ClearFileName() *QuoteUpdate {
	_u.mutation.ClearFileName()
	return _u
}

// SetComment sets the "comment" field.
func (_u *QuoteUpdate) SetComment(v string) *QuoteUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableComment(v *string) *QuoteUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *QuoteUpdate) ClearComment() *QuoteUpdate {
	_u.mutation.ClearComment()
	return _u
}

// SetSentToPatientAt sets the "sent_to_patient_at" field.
func (_u *QuoteUpdate) SetSentToPatientAt(v time.Time) *QuoteUpdate {
	_u.mutation.SetSentToPatientAt(v)
	return _u
}

// SetNillableSentToPatientAt sets the "sent_to_patient_at" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableSentToPatientAt(v *time.Time) *QuoteUpdate {
	if v != nil {
		_u.SetSentToPatientAt(*v)
	}
	return _u
}

// ClearSentToPatientAt clears the value of the "sent_to_patient_at" field.
func (_u *QuoteUpdate) ClearSentToPatientAt() *QuoteUpdate {
	_u.mutation.ClearSentToPatientAt()
	return _u
}

// SetSentBy sets the "sent_by" field.
func (_u *QuoteUpdate) SetSentBy(v int) *QuoteUpdate {
	_u.mutation.ResetSentBy()
	_u.mutation.SetSentBy(v)
	return _u
}

// SetNillableSentBy sets the "sent_by" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableSentBy(v *int) *QuoteUpdate {
	if v != nil {
		_u.SetSentBy(*v)
	}
	return _u
}

// AddSentBy adds value to the "sent_by" field.
func (_u *QuoteUpdate) AddSentBy(v int) *QuoteUpdate {
	_u.mutation.AddSentBy(v)
	return _u
}

// ClearSentBy clears the value of the "sent_by" field.
func (_u *QuoteUpdate) ClearSentBy() *QuoteUpdate {
	_u.mutation.ClearSentBy()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *QuoteUpdate) SetRespondedAt(v time.Time) *QuoteUpdate {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableRespondedAt(v *time.Time) *QuoteUpdate {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *QuoteUpdate) ClearRespondedAt() *QuoteUpdate {
	_u.mutation.ClearRespondedAt()
	return _u
}

// Mutation returns the QuoteMutation object of the builder.
func (_u *QuoteUpdate) Mutation() *QuoteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuoteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuoteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quote.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := quote.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Quote.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCliniqueCents(); ok {
		if err := quote.TotalCliniqueCentsValidator(v); err != nil {
			return &ValidationError{Name: "total_clinique_cents", err: fmt.Errorf(`repo: validator failed for field "Quote.total_clinique_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAssistanceCents(); ok {
		if err := quote.TotalAssistanceCentsValidator(v); err != nil {
			return &ValidationError{Name: "total_assistance_cents", err: fmt.Errorf(`repo: validator failed for field "Quote.total_assistance_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalQuoteCents(); ok {
		if err := quote.TotalQuoteCentsValidator(v); err != nil {
			return &ValidationError{Name: "total_quote_cents", err: fmt.Errorf(`repo: validator failed for field "Quote.total_quote_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := quote.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`repo: validator failed for field "Quote.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := quote.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`repo: validator failed for field "Quote.file_name": %w`, err)}
		}
	}
	return nil
}

func (_u *QuoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quote.Table, quote.Columns, sqlgraph.NewFieldSpec(quote.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quote.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(quote.FieldAppointmentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAppointmentID(); ok {
		_spec.AddField(quote.FieldAppointmentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(quote.FieldCreatedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreatedBy(); ok {
		_spec.AddField(quote.FieldCreatedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(quote.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalCliniqueCents(); ok {
		_spec.SetField(quote.FieldTotalCliniqueCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalCliniqueCents(); ok {
		_spec.AddField(quote.FieldTotalCliniqueCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalAssistanceCents(); ok {
		_spec.SetField(quote.FieldTotalAssistanceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalAssistanceCents(); ok {
		_spec.AddField(quote.FieldTotalAssistanceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalQuoteCents(); ok {
		_spec.SetField(quote.FieldTotalQuoteCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalQuoteCents(); ok {
		_spec.AddField(quote.FieldTotalQuoteCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(quote.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(quote.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(quote.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(quote.FieldFileName, field.TypeString)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(quote.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(quote.FieldComment, field.TypeString)
	}
	if value, ok := _u.mutation.SentToPatientAt(); ok {
		_spec.SetField(quote.FieldSentToPatientAt, field.TypeTime, value)
	}
	if _u.mutation.SentToPatientAtCleared() {
		_spec.ClearField(quote.FieldSentToPatientAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SentBy(); ok {
		_spec.SetField(quote.FieldSentBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSentBy(); ok {
		_spec.AddField(quote.FieldSentBy, field.TypeInt, value)
	}
	if _u.mutation.SentByCleared() {
		_spec.ClearField(quote.FieldSentBy, field.TypeInt)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(quote.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(quote.FieldRespondedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuoteUpdateOne is the builder for updating a single Quote entity.
type QuoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuoteMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuoteUpdateOne) SetUpdatedAt(v time.Time) *QuoteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *QuoteUpdateOne) SetAppointmentID(v int) *QuoteUpdateOne {
	_u.mutation.ResetAppointmentID()
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableAppointmentID(v *int) *QuoteUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// AddAppointmentID adds value to the "appointment_id" field.
func (_u *QuoteUpdateOne) AddAppointmentID(v int) *QuoteUpdateOne {
	_u.mutation.AddAppointmentID(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *QuoteUpdateOne) SetCreatedBy(v int) *QuoteUpdateOne {
	_u.mutation.ResetCreatedBy()
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableCreatedBy(v *int) *QuoteUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddCreatedBy adds value to the "created_by" field.
func (_u *QuoteUpdateOne) AddCreatedBy(v int) *QuoteUpdateOne {
	_u.mutation.AddCreatedBy(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuoteUpdateOne) SetStatus(v quote.Status) *QuoteUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableStatus(v *quote.Status) *QuoteUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalCliniqueCents sets the "total_clinique_cents" field.
func (_u *QuoteUpdateOne) SetTotalCliniqueCents(v int64) *QuoteUpdateOne {
	_u.mutation.ResetTotalCliniqueCents()
	_u.mutation.SetTotalCliniqueCents(v)
	return _u
}

// SetNillableTotalCliniqueCents sets the "total_clinique_cents" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableTotalCliniqueCents(v *int64) *QuoteUpdateOne {
	if v != nil {
		_u.SetTotalCliniqueCents(*v)
	}
	return _u
}

// AddTotalCliniqueCents adds value to the "total_clinique_cents" field.
func (_u *QuoteUpdateOne) AddTotalCliniqueCents(v int64) *QuoteUpdateOne {
	_u.mutation.AddTotalCliniqueCents(v)
	return _u
}

// SetTotalAssistanceCents sets the "total_assistance_cents" field.
func (_u *QuoteUpdateOne) SetTotalAssistanceCents(v int64) *QuoteUpdateOne {
	_u.mutation.ResetTotalAssistanceCents()
	_u.mutation.SetTotalAssistanceCents(v)
	return _u
}

// SetNillableTotalAssistanceCents sets the "total_assistance_cents" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableTotalAssistanceCents(v *int64) *QuoteUpdateOne {
	if v != nil {
		_u.SetTotalAssistanceCents(*v)
	}
	return _u
}

// AddTotalAssistanceCents adds value to the "total_assistance_cents" field.
func (_u *QuoteUpdateOne) AddTotalAssistanceCents(v int64) *QuoteUpdateOne {
	_u.mutation.AddTotalAssistanceCents(v)
	return _u
}

// SetTotalQuoteCents sets the "total_quote_cents" field.
func (_u *QuoteUpdateOne) SetTotalQuoteCents(v int64) *QuoteUpdateOne {
	_u.mutation.ResetTotalQuoteCents()
	_u.mutation.SetTotalQuoteCents(v)
	return _u
}

// SetNillableTotalQuoteCents sets the "total_quote_cents" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableTotalQuoteCents(v *int64) *QuoteUpdateOne {
	if v != nil {
		_u.SetTotalQuoteCents(*v)
	}
	return _u
}

// AddTotalQuoteCents adds value to the "total_quote_cents" field.
func (_u *QuoteUpdateOne) AddTotalQuoteCents(v int64) *QuoteUpdateOne {
	_u.mutation.AddTotalQuoteCents(v)
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *QuoteUpdateOne) SetFilePath(v string) *QuoteUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableFilePath(v *string) *QuoteUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *QuoteUpdateOne) ClearFilePath() *QuoteUpdateOne {
	_u.mutation.ClearFilePath()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *QuoteUpdateOne) SetFileName(v string) *QuoteUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableFileName(v *string) *QuoteUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *QuoteUpdateOne) ClearFileName() *QuoteUpdateOne {
	_u.mutation.ClearFileName()
	return _u
}

// SetComment sets the "comment" field.
func (_u *QuoteUpdateOne) SetComment(v string) *QuoteUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableComment(v *string) *QuoteUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *QuoteUpdateOne) ClearComment() *QuoteUpdateOne {
	_u.mutation.ClearComment()
	return _u
}

// SetSentToPatientAt sets the "sent_to_patient_at" field.
func (_u *QuoteUpdateOne) SetSentToPatientAt(v time.Time) *QuoteUpdateOne {
	_u.mutation.SetSentToPatientAt(v)
	return _u
}

// SetNillableSentToPatientAt sets the "sent_to_patient_at" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableSentToPatientAt(v *time.Time) *QuoteUpdateOne {
	if v != nil {
		_u.SetSentToPatientAt(*v)
	}
	return _u
}

// ClearSentToPatientAt clears the value of the "sent_to_patient_at" field.
func (_u *QuoteUpdateOne) ClearSentToPatientAt() *QuoteUpdateOne {
	_u.mutation.ClearSentToPatientAt()
	return _u
}

// SetSentBy sets the "sent_by" field.
func (_u *QuoteUpdateOne) SetSentBy(v int) *QuoteUpdateOne {
	_u.mutation.ResetSentBy()
	_u.mutation.SetSentBy(v)
	return _u
}

// SetNillableSentBy sets the "sent_by" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableSentBy(v *int) *QuoteUpdateOne {
	if v != nil {
		_u.SetSentBy(*v)
	}
	return _u
}

// AddSentBy adds value to the "sent_by" field.
func (_u *QuoteUpdateOne) AddSentBy(v int) *QuoteUpdateOne {
	_u.mutation.AddSentBy(v)
	return _u
}

// ClearSentBy clears the value of the "sent_by" field.
func (_u *QuoteUpdateOne) ClearSentBy() *QuoteUpdateOne {
	_u.mutation.ClearSentBy()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *QuoteUpdateOne) SetRespondedAt(v time.Time) *QuoteUpdateOne {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableRespondedAt(v *time.Time) *QuoteUpdateOne {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *QuoteUpdateOne) ClearRespondedAt() *QuoteUpdateOne {
	_u.mutation.ClearRespondedAt()
	return _u
}

// Mutation returns the QuoteMutation object of the builder.
func (_u *QuoteUpdateOne) Mutation() *QuoteMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuoteUpdate builder.
func (_u *QuoteUpdateOne) Where(ps ...predicate.Quote) *QuoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuoteUpdateOne) Select(field string, fields ...string) *QuoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Quote entity.
func (_u *QuoteUpdateOne) Save(ctx context.Context) (*Quote, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteUpdateOne) SaveX(ctx context.Context) *Quote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuoteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quote.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := quote.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Quote.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCliniqueCents(); ok {
		if err := quote.TotalCliniqueCentsValidator(v); err != nil {
			return &ValidationError{Name: "total_clinique_cents", err: fmt.Errorf(`repo: validator failed for field "Quote.total_clinique_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAssistanceCents(); ok {
		if err := quote.TotalAssistanceCentsValidator(v); err != nil {
			return &ValidationError{Name: "total_assistance_cents", err: fmt.Errorf(`repo: validator failed for field "Quote.total_assistance_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalQuoteCents(); ok {
		if err := quote.TotalQuoteCentsValidator(v); err != nil {
			return &ValidationError{Name: "total_quote_cents", err: fmt.Errorf(`repo: validator failed for field "Quote.total_quote_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := quote.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`repo: validator failed for field "Quote.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := quote.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`repo: validator failed for field "Quote.file_name": %w`, err)}
		}
	}
	return nil
}

func (_u *QuoteUpdateOne) sqlSave(ctx context.Context) (_node *Quote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quote.Table, quote.Columns, sqlgraph.NewFieldSpec(quote.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Quote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quote.FieldID)
		for _, f := range fields {
			if !quote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != quote.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quote.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(quote.FieldAppointmentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAppointmentID(); ok {
		_spec.AddField(quote.FieldAppointmentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(quote.FieldCreatedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreatedBy(); ok {
		_spec.AddField(quote.FieldCreatedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(quote.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalCliniqueCents(); ok {
		_spec.SetField(quote.FieldTotalCliniqueCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalCliniqueCents(); ok {
		_spec.AddField(quote.FieldTotalCliniqueCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalAssistanceCents(); ok {
		_spec.SetField(quote.FieldTotalAssistanceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalAssistanceCents(); ok {
		_spec.AddField(quote.FieldTotalAssistanceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalQuoteCents(); ok {
		_spec.SetField(quote.FieldTotalQuoteCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalQuoteCents(); ok {
		_spec.AddField(quote.FieldTotalQuoteCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(quote.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(quote.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(quote.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(quote.FieldFileName, field.TypeString)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(quote.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(quote.FieldComment, field.TypeString)
	}
	if value, ok := _u.mutation.SentToPatientAt(); ok {
		_spec.SetField(quote.FieldSentToPatientAt, field.TypeTime, value)
	}
	if _u.mutation.SentToPatientAtCleared() {
		_spec.ClearField(quote.FieldSentToPatientAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SentBy(); ok {
		_spec.SetField(quote.FieldSentBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSentBy(); ok {
		_spec.AddField(quote.FieldSentBy, field.TypeInt, value)
	}
	if _u.mutation.SentByCleared() {
		_spec.ClearField(quote.FieldSentBy, field.TypeInt)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(quote.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(quote.FieldRespondedAt, field.TypeTime)
	}
	_node = &Quote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
