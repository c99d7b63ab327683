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
	"github.com/medassist/medassist_backend/internal/repo/appointment"
	"github.com/medassist/medassist_backend/internal/repo/predicate"
)

// AppointmentUpdate is the builder for updating Appointment entities.
type AppointmentUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdate) Where(ps ...predicate.Appointment) *AppointmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdate) SetUpdatedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AppointmentUpdate) SetDeletedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDeletedAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AppointmentUpdate) ClearDeletedAt() *AppointmentUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *AppointmentUpdate) SetAgentID(v int) *AppointmentUpdate {
	_u.mutation.ResetAgentID()
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableAgentID(v *int) *AppointmentUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// AddAgentID adds value to the "agent_id" field.
func (_u *AppointmentUpdate) AddAgentID(v int) *AppointmentUpdate {
	_u.mutation.AddAgentID(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AppointmentUpdate) SetPatientID(v int) *AppointmentUpdate {
	_u.mutation.ResetPatientID()
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePatientID(v *int) *AppointmentUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// AddPatientID adds value to the "patient_id" field.
func (_u *AppointmentUpdate) AddPatientID(v int) *AppointmentUpdate {
	_u.mutation.AddPatientID(v)
	return _u
}

// ClearPatientID clears the value of the "patient_id" field.
func (_u *AppointmentUpdate) ClearPatientID() *AppointmentUpdate {
	_u.mutation.ClearPatientID()
	return _u
}

// SetCliniqueID sets the "clinique_id" field.
func (_u *AppointmentUpdate) SetCliniqueID(v int) *AppointmentUpdate {
	_u.mutation.ResetCliniqueID()
	_u.mutation.SetCliniqueID(v)
	return _u
}

// SetNillableCliniqueID sets the "clinique_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCliniqueID(v *int) *AppointmentUpdate {
	if v != nil {
		_u.SetCliniqueID(*v)
	}
	return _u
}

// AddCliniqueID adds value to the "clinique_id" field.
func (_u *AppointmentUpdate) AddCliniqueID(v int) *AppointmentUpdate {
	_u.mutation.AddCliniqueID(v)
	return _u
}

// ClearCliniqueID clears the value of the "clinique_id" field.
func (_u *AppointmentUpdate) ClearCliniqueID() *AppointmentUpdate {
	_u.mutation.ClearCliniqueID()
	return _u
}

// SetDateRdv sets the "date_rdv" field.
func (_u *AppointmentUpdate) SetDateRdv(v time.Time) *AppointmentUpdate {
	_u.mutation.SetDateRdv(v)
	return _u
}

// SetNillableDateRdv sets the "date_rdv" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDateRdv(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetDateRdv(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdate) SetStatus(v appointment.Status) *AppointmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStatus(v *appointment.Status) *AppointmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *AppointmentUpdate) SetFullName(v string) *AppointmentUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableFullName(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *AppointmentUpdate) SetPhone(v string) *AppointmentUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePhone(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetIntervention sets the "intervention" field.
func (_u *AppointmentUpdate) SetIntervention(v string) *AppointmentUpdate {
	_u.mutation.SetIntervention(v)
	return _u
}

// SetNillableIntervention sets the "intervention" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableIntervention(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetIntervention(*v)
	}
	return _u
}

// ClearIntervention clears the value of the "intervention" field.
func (_u *AppointmentUpdate) ClearIntervention() *AppointmentUpdate {
	_u.mutation.ClearIntervention()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AppointmentUpdate) SetNotes(v string) *AppointmentUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableNotes(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AppointmentUpdate) ClearNotes() *AppointmentUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetClinicQuotePath sets the "clinic_quote_path" field.
func (_u *AppointmentUpdate) SetClinicQuotePath(v string) *AppointmentUpdate {
	_u.mutation.SetClinicQuotePath(v)
	return _u
}

// SetNillableClinicQuotePath sets the "clinic_quote_path" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableClinicQuotePath(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetClinicQuotePath(*v)
	}
	return _u
}

// ClearClinicQuotePath clears the value of the "clinic_quote_path" field.
func (_u *AppointmentUpdate) ClearClinicQuotePath() *AppointmentUpdate {
	_u.mutation.ClearClinicQuotePath()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdate) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FullName(); ok {
		if err := appointment.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "Appointment.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := appointment.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Appointment.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Intervention(); ok {
		if err := appointment.InterventionValidator(v); err != nil {
			return &ValidationError{Name: "intervention", err: fmt.Errorf(`repo: validator failed for field "Appointment.intervention": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClinicQuotePath(); ok {
		if err := appointment.ClinicQuotePathValidator(v); err != nil {
			return &ValidationError{Name: "clinic_quote_path", err: fmt.Errorf(`repo: validator failed for field "Appointment.clinic_quote_path": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(appointment.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(appointment.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(appointment.FieldAgentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAgentID(); ok {
		_spec.AddField(appointment.FieldAgentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(appointment.FieldPatientID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPatientID(); ok {
		_spec.AddField(appointment.FieldPatientID, field.TypeInt, value)
	}
	if _u.mutation.PatientIDCleared() {
		_spec.ClearField(appointment.FieldPatientID, field.TypeInt)
	}
	if value, ok := _u.mutation.CliniqueID(); ok {
		_spec.SetField(appointment.FieldCliniqueID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCliniqueID(); ok {
		_spec.AddField(appointment.FieldCliniqueID, field.TypeInt, value)
	}
	if _u.mutation.CliniqueIDCleared() {
		_spec.ClearField(appointment.FieldCliniqueID, field.TypeInt)
	}
	if value, ok := _u.mutation.DateRdv(); ok {
		_spec.SetField(appointment.FieldDateRdv, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(appointment.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(appointment.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intervention(); ok {
		_spec.SetField(appointment.FieldIntervention, field.TypeString, value)
	}
	if _u.mutation.InterventionCleared() {
		_spec.ClearField(appointment.FieldIntervention, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(appointment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ClinicQuotePath(); ok {
		_spec.SetField(appointment.FieldClinicQuotePath, field.TypeString, value)
	}
	if _u.mutation.ClinicQuotePathCleared() {
		_spec.ClearField(appointment.FieldClinicQuotePath, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentUpdateOne is the builder for updating a single Appointment entity.
type AppointmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdateOne) SetUpdatedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AppointmentUpdateOne) SetDeletedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDeletedAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AppointmentUpdateOne) ClearDeletedAt() *AppointmentUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *AppointmentUpdateOne) SetAgentID(v int) *AppointmentUpdateOne {
	_u.mutation.ResetAgentID()
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableAgentID(v *int) *AppointmentUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// AddAgentID adds value to the "agent_id" field.
func (_u *AppointmentUpdateOne) AddAgentID(v int) *AppointmentUpdateOne {
	_u.mutation.AddAgentID(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AppointmentUpdateOne) SetPatientID(v int) *AppointmentUpdateOne {
	_u.mutation.ResetPatientID()
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePatientID(v *int) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// AddPatientID adds value to the "patient_id" field.
func (_u *AppointmentUpdateOne) AddPatientID(v int) *AppointmentUpdateOne {
	_u.mutation.AddPatientID(v)
	return _u
}

// ClearPatientID clears the value of the "patient_id" field.
func (_u *AppointmentUpdateOne) ClearPatientID() *AppointmentUpdateOne {
	_u.mutation.ClearPatientID()
	return _u
}

// SetCliniqueID sets the "clinique_id" field.
func (_u *AppointmentUpdateOne) SetCliniqueID(v int) *AppointmentUpdateOne {
	_u.mutation.ResetCliniqueID()
	_u.mutation.SetCliniqueID(v)
	return _u
}

// SetNillableCliniqueID sets the "clinique_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCliniqueID(v *int) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCliniqueID(*v)
	}
	return _u
}

// AddCliniqueID adds value to the "clinique_id" field.
func (_u *AppointmentUpdateOne) AddCliniqueID(v int) *AppointmentUpdateOne {
	_u.mutation.AddCliniqueID(v)
	return _u
}

// ClearCliniqueID clears the value of the "clinique_id" field.
func (_u *AppointmentUpdateOne) ClearCliniqueID() *AppointmentUpdateOne {
	_u.mutation.ClearCliniqueID()
	return _u
}

// SetDateRdv sets the "date_rdv" field.
func (_u *AppointmentUpdateOne) SetDateRdv(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetDateRdv(v)
	return _u
}

// SetNillableDateRdv sets the "date_rdv" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDateRdv(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDateRdv(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdateOne) SetStatus(v appointment.Status) *AppointmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStatus(v *appointment.Status) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *AppointmentUpdateOne) SetFullName(v string) *AppointmentUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableFullName(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *AppointmentUpdateOne) SetPhone(v string) *AppointmentUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePhone(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetIntervention sets the "intervention" field.
func (_u *AppointmentUpdateOne) SetIntervention(v string) *AppointmentUpdateOne {
	_u.mutation.SetIntervention(v)
	return _u
}

// SetNillableIntervention sets the "intervention" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableIntervention(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetIntervention(*v)
	}
	return _u
}

// ClearIntervention clears the value of the "intervention" field.
func (_u *AppointmentUpdateOne) ClearIntervention() *AppointmentUpdateOne {
	_u.mutation.ClearIntervention()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AppointmentUpdateOne) SetNotes(v string) *AppointmentUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableNotes(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AppointmentUpdateOne) ClearNotes() *AppointmentUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetClinicQuotePath sets the "clinic_quote_path" field.
func (_u *AppointmentUpdateOne) SetClinicQuotePath(v string) *AppointmentUpdateOne {
	_u.mutation.SetClinicQuotePath(v)
	return _u
}

// SetNillableClinicQuotePath sets the "clinic_quote_path" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableClinicQuotePath(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetClinicQuotePath(*v)
	}
	return _u
}

// ClearClinicQuotePath clears the value of the "clinic_quote_path" field.
func (_u *AppointmentUpdateOne) ClearClinicQuotePath() *AppointmentUpdateOne {
	_u.mutation.ClearClinicQuotePath()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdateOne) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdateOne) Where(ps ...predicate.Appointment) *AppointmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentUpdateOne) Select(field string, fields ...string) *AppointmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appointment entity.
func (_u *AppointmentUpdateOne) Save(ctx context.Context) (*Appointment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdateOne) SaveX(ctx context.Context) *Appointment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FullName(); ok {
		if err := appointment.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "Appointment.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := appointment.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Appointment.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Intervention(); ok {
		if err := appointment.InterventionValidator(v); err != nil {
			return &ValidationError{Name: "intervention", err: fmt.Errorf(`repo: validator failed for field "Appointment.intervention": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClinicQuotePath(); ok {
		if err := appointment.ClinicQuotePathValidator(v); err != nil {
			return &ValidationError{Name: "clinic_quote_path", err: fmt.Errorf(`repo: validator failed for field "Appointment.clinic_quote_path": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdateOne) sqlSave(ctx context.Context) (_node *Appointment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Appointment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointment.FieldID)
		for _, f := range fields {
			if !appointment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointment.FieldID {
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
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(appointment.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(appointment.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(appointment.FieldAgentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAgentID(); ok {
		_spec.AddField(appointment.FieldAgentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(appointment.FieldPatientID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPatientID(); ok {
		_spec.AddField(appointment.FieldPatientID, field.TypeInt, value)
	}
	if _u.mutation.PatientIDCleared() {
		_spec.ClearField(appointment.FieldPatientID, field.TypeInt)
	}
	if value, ok := _u.mutation.CliniqueID(); ok {
		_spec.SetField(appointment.FieldCliniqueID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCliniqueID(); ok {
		_spec.AddField(appointment.FieldCliniqueID, field.TypeInt, value)
	}
	if _u.mutation.CliniqueIDCleared() {
		_spec.ClearField(appointment.FieldCliniqueID, field.TypeInt)
	}
	if value, ok := _u.mutation.DateRdv(); ok {
		_spec.SetField(appointment.FieldDateRdv, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(appointment.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(appointment.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intervention(); ok {
		_spec.SetField(appointment.FieldIntervention, field.TypeString, value)
	}
	if _u.mutation.InterventionCleared() {
		_spec.ClearField(appointment.FieldIntervention, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(appointment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ClinicQuotePath(); ok {
		_spec.SetField(appointment.FieldClinicQuotePath, field.TypeString, value)
	}
	if _u.mutation.ClinicQuotePathCleared() {
		_spec.ClearField(appointment.FieldClinicQuotePath, field.TypeString)
	}
	_node = &Appointment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
