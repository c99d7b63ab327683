package appointment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/medassist/medassist_backend/internal/realtime"
	"github.com/medassist/medassist_backend/internal/repo"
	entappt "github.com/medassist/medassist_backend/internal/repo/appointment"
	entuser "github.com/medassist/medassist_backend/internal/repo/user"
	"github.com/medassist/medassist_backend/pkg/util/phone"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	AgentID    *int
	CliniqueID *int
	PatientID  *int
	Status     *string
	From       *time.Time
	To         *time.Time
	Page       int
	PerPage    int
}

type CreateRequest struct {
	AgentID      int
	PatientID    *int
	CliniqueID   *int
	DateRdv      time.Time
	FullName     string
	Phone        string
	Intervention *string
	Notes        *string
}

type Stats struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error)
	GetByID(ctx context.Context, id int) (*repo.Appointment, error)
	Create(ctx context.Context, req CreateRequest) (*repo.Appointment, error)
	UpdateStatus(ctx context.Context, id int, status string) (*repo.Appointment, error)
	AttachClinicQuote(ctx context.Context, id, cliniqueID int, path string) (*repo.Appointment, error)
	RemoveClinicQuote(ctx context.Context, id, cliniqueID int) error
	SoftDelete(ctx context.Context, id int) error
	Stats(ctx context.Context) (*Stats, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db     *repo.Client
	bus    realtime.Publisher
	logger *slog.Logger
}

func New(db *repo.Client, bus realtime.Publisher, logger *slog.Logger) Service {
	return &appointmentService{db: db, bus: bus, logger: logger}
}

func (s *appointmentService) List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query().
		Where(entappt.DeletedAtIsNil())

	if req.AgentID != nil {
		q = q.Where(entappt.AgentID(*req.AgentID))
	}
	if req.CliniqueID != nil {
		q = q.Where(entappt.CliniqueID(*req.CliniqueID))
	}
	if req.PatientID != nil {
		q = q.Where(entappt.PatientID(*req.PatientID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entappt.DateRdvGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entappt.DateRdvLT(*req.To))
	}

	appts, err := q.
		Order(entappt.ByDateRdv(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *appointmentService) GetByID(ctx context.Context, id int) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(id), entappt.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) Create(ctx context.Context, req CreateRequest) (*repo.Appointment, error) {
	phoneE164, err := phone.Normalize(req.Phone)
	if err != nil {
		return nil, ErrInvalidPhone
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	appt, err := tx.Appointment.Create().
		SetAgentID(req.AgentID).
		SetDateRdv(req.DateRdv).
		SetFullName(req.FullName).
		SetPhone(phoneE164).
		SetNillablePatientID(req.PatientID).
		SetNillableCliniqueID(req.CliniqueID).
		SetNillableIntervention(req.Intervention).
		SetNillableNotes(req.Notes).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	// The broadcast is built from relations loaded inside the same
	// transaction. A referenced row that cannot be loaded rolls the insert
	// back: the caller never ends up with a committed appointment whose
	// event was silently dropped.
	patient, clinique, agent, err := s.refs(ctx, tx.Client(), appt)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	ev, err := realtime.NewAppointmentCreated(
		int64(appt.ID), string(appt.Status), appt.DateRdv, patient, clinique, agent)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit appointment: %w", err)
	}
	s.emit(ctx, ev)

	return appt, nil
}

func (s *appointmentService) UpdateStatus(ctx context.Context, id int, status string) (*repo.Appointment, error) {
	switch status {
	case string(entappt.StatusConfirmed), string(entappt.StatusCancelled):
	default:
		return nil, fmt.Errorf("invalid target status %q", status)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	// Conditional update: only a pending appointment moves. Two concurrent
	// confirmations race on this WHERE clause and exactly one wins.
	n, err := tx.Appointment.Update().
		Where(
			entappt.ID(id),
			entappt.StatusEQ(entappt.StatusPending),
			entappt.DeletedAtIsNil(),
		).
		SetStatus(entappt.Status(status)).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("update appointment status: %w", err)
	}
	if n == 0 {
		_ = tx.Rollback()
		if _, err := s.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrStatusFinal
	}

	appt, err := tx.Client().Appointment.Query().
		Where(entappt.ID(id), entappt.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("reload appointment: %w", err)
	}

	// A relation that fails to load rolls the transition back, so the
	// appointment stays pending and the confirmateur can retry.
	patient, clinique, agent, err := s.refs(ctx, tx.Client(), appt)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	ev, err := realtime.NewAppointmentStatusUpdated(
		int64(appt.ID), string(appt.Status), appt.DateRdv, patient, clinique, agent)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit status update: %w", err)
	}
	s.emit(ctx, ev)

	return appt, nil
}

func (s *appointmentService) AttachClinicQuote(ctx context.Context, id, cliniqueID int, path string) (*repo.Appointment, error) {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.CliniqueID == nil || *appt.CliniqueID != cliniqueID {
		return nil, ErrNotAssigned
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	appt, err = tx.Appointment.UpdateOneID(appt.ID).
		SetClinicQuotePath(path).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("attach clinic quote: %w", err)
	}

	patient, agent, clinique, err := s.details(ctx, tx.Client(), appt)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	ev, err := realtime.NewClinicQuoteUploaded(int64(appt.ID), appt.DateRdv, patient, agent, clinique)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit clinic quote: %w", err)
	}
	s.emit(ctx, ev)

	return appt, nil
}

func (s *appointmentService) RemoveClinicQuote(ctx context.Context, id, cliniqueID int) error {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appt.CliniqueID == nil || *appt.CliniqueID != cliniqueID {
		return ErrNotAssigned
	}
	if appt.ClinicQuotePath == nil {
		return ErrNoQuoteFile
	}

	if err := s.db.Appointment.UpdateOne(appt).
		ClearClinicQuotePath().
		Exec(ctx); err != nil {
		return fmt.Errorf("remove clinic quote: %w", err)
	}
	return nil
}

func (s *appointmentService) SoftDelete(ctx context.Context, id int) error {
	n, err := s.db.Appointment.Update().
		Where(entappt.ID(id), entappt.DeletedAtIsNil()).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *appointmentService) Stats(ctx context.Context) (*Stats, error) {
	var out Stats
	for _, c := range []struct {
		status entappt.Status
		dst    *int
	}{
		{entappt.StatusPending, &out.Pending},
		{entappt.StatusConfirmed, &out.Confirmed},
		{entappt.StatusCancelled, &out.Cancelled},
	} {
		n, err := s.db.Appointment.Query().
			Where(entappt.StatusEQ(c.status), entappt.DeletedAtIsNil()).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s appointments: %w", c.status, err)
		}
		*c.dst = n
	}
	return &out, nil
}

// ---------------------------------------------------------------------------
// Relation projections
// ---------------------------------------------------------------------------

// refs loads the minimal projections for mixed-audience events. The agent is
// required; patient and clinic stay nil when genuinely unassigned, but a
// referenced row that fails to load is an error.
func (s *appointmentService) refs(ctx context.Context, db *repo.Client, appt *repo.Appointment) (*realtime.PatientRef, *realtime.ClinicRef, *realtime.AgentRef, error) {
	agentUser, err := user(ctx, db, appt.AgentID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: agent %d: %v", realtime.ErrIncompleteRelation, appt.AgentID, err)
	}
	agent := &realtime.AgentRef{
		ID:       int64(agentUser.ID),
		Name:     agentUser.FirstName,
		LastName: agentUser.LastName,
	}

	var patient *realtime.PatientRef
	if appt.PatientID != nil {
		u, err := user(ctx, db, *appt.PatientID)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%w: patient %d: %v", realtime.ErrIncompleteRelation, *appt.PatientID, err)
		}
		patient = &realtime.PatientRef{
			ID:       int64(u.ID),
			Name:     u.FirstName,
			LastName: u.LastName,
			Email:    u.Email,
		}
	}

	var clinique *realtime.ClinicRef
	if appt.CliniqueID != nil {
		u, err := user(ctx, db, *appt.CliniqueID)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%w: clinique %d: %v", realtime.ErrIncompleteRelation, *appt.CliniqueID, err)
		}
		clinique = &realtime.ClinicRef{
			ID:   int64(u.ID),
			Name: clinicDisplayName(u),
		}
	}

	return patient, clinique, agent, nil
}

// details loads the full projections for the staff-only quote-uploaded
// event. All three relations must be present and loadable.
func (s *appointmentService) details(ctx context.Context, db *repo.Client, appt *repo.Appointment) (*realtime.UserDetail, *realtime.UserDetail, *realtime.ClinicDetail, error) {
	if appt.PatientID == nil {
		return nil, nil, nil, fmt.Errorf("%w: patient", realtime.ErrIncompleteRelation)
	}
	if appt.CliniqueID == nil {
		return nil, nil, nil, fmt.Errorf("%w: clinique", realtime.ErrIncompleteRelation)
	}

	patientUser, err := user(ctx, db, *appt.PatientID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: patient %d: %v", realtime.ErrIncompleteRelation, *appt.PatientID, err)
	}
	agentUser, err := user(ctx, db, appt.AgentID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: agent %d: %v", realtime.ErrIncompleteRelation, appt.AgentID, err)
	}
	clinicUser, err := user(ctx, db, *appt.CliniqueID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: clinique %d: %v", realtime.ErrIncompleteRelation, *appt.CliniqueID, err)
	}

	patient := &realtime.UserDetail{
		ID:       int64(patientUser.ID),
		Name:     patientUser.FirstName,
		LastName: patientUser.LastName,
		Email:    patientUser.Email,
		Phone:    deref(patientUser.Phone),
	}
	agent := &realtime.UserDetail{
		ID:       int64(agentUser.ID),
		Name:     agentUser.FirstName,
		LastName: agentUser.LastName,
		Email:    agentUser.Email,
		Phone:    deref(agentUser.Phone),
	}
	clinique := &realtime.ClinicDetail{
		ID:      int64(clinicUser.ID),
		Name:    clinicDisplayName(clinicUser),
		Email:   clinicUser.Email,
		Phone:   deref(clinicUser.Phone),
		Address: deref(clinicUser.Address),
	}
	return patient, agent, clinique, nil
}

func user(ctx context.Context, db *repo.Client, id int) (*repo.User, error) {
	return db.User.Query().
		Where(entuser.ID(id), entuser.DeletedAtIsNil()).
		Only(ctx)
}

// emit publishes best-effort. The domain commit already happened; a broker
// hiccup is logged, not surfaced to the caller.
func (s *appointmentService) emit(ctx context.Context, ev realtime.Event) {
	if err := realtime.Emit(ctx, s.bus, ev); err != nil {
		s.logger.Error("realtime emit failed", "event", ev.Name(), "err", err)
	}
}

func clinicDisplayName(u *repo.User) string {
	if u.ClinicName != nil && *u.ClinicName != "" {
		return *u.ClinicName
	}
	return u.FirstName + " " + u.LastName
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
