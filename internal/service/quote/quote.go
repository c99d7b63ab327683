package quote

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/medassist/medassist_backend/internal/realtime"
	"github.com/medassist/medassist_backend/internal/repo"
	entappt "github.com/medassist/medassist_backend/internal/repo/appointment"
	entquote "github.com/medassist/medassist_backend/internal/repo/quote"
	entassist "github.com/medassist/medassist_backend/internal/repo/assistancequote"
	entuser "github.com/medassist/medassist_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ItemInput struct {
	Label       string `json:"label"`
	AmountCents int64  `json:"amount_cents"`
}

type CreateRequest struct {
	AppointmentID      int
	CreatedBy          int
	TotalCliniqueCents int64
	Items              []ItemInput
	FilePath           *string
	FileName           *string
}

type UpdateRequest struct {
	TotalCliniqueCents int64
	Items              []ItemInput
	FilePath           *string
	FileName           *string
}

type RespondRequest struct {
	PatientID int
	Accept    bool
	Comment   *string
}

type ListRequest struct {
	Status  *string
	Sent    *bool
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Quote, error)
	Update(ctx context.Context, id int, req UpdateRequest) (*repo.Quote, error)
	GetByID(ctx context.Context, id int) (*repo.Quote, error)
	GetByAppointment(ctx context.Context, appointmentID int) (*repo.Quote, error)
	Items(ctx context.Context, quoteID int) ([]*repo.AssistanceQuote, error)
	List(ctx context.Context, req ListRequest) ([]*repo.Quote, error)
	ListForPatient(ctx context.Context, patientID int) ([]*repo.Quote, error)
	SendToPatient(ctx context.Context, id, senderID int, senderRole string) (*repo.Quote, error)
	Respond(ctx context.Context, id int, req RespondRequest) (*repo.Quote, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type quoteService struct {
	db     *repo.Client
	bus    realtime.Publisher
	logger *slog.Logger
}

func New(db *repo.Client, bus realtime.Publisher, logger *slog.Logger) Service {
	return &quoteService{db: db, bus: bus, logger: logger}
}

func (s *quoteService) Create(ctx context.Context, req CreateRequest) (*repo.Quote, error) {
	if req.TotalCliniqueCents == 0 && len(req.Items) == 0 {
		return nil, ErrEmptyQuote
	}

	exists, err := s.db.Quote.Query().
		Where(entquote.AppointmentID(req.AppointmentID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check existing quote: %w", err)
	}
	if exists {
		return nil, ErrQuoteExists
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	assistance := totalAssistance(req.Items)
	q, err := tx.Quote.Create().
		SetAppointmentID(req.AppointmentID).
		SetCreatedBy(req.CreatedBy).
		SetTotalCliniqueCents(req.TotalCliniqueCents).
		SetTotalAssistanceCents(assistance).
		SetTotalQuoteCents(req.TotalCliniqueCents + assistance).
		SetNillableFilePath(req.FilePath).
		SetNillableFileName(req.FileName).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("create quote: %w", err)
	}

	for _, it := range req.Items {
		if _, err := tx.AssistanceQuote.Create().
			SetQuoteID(q.ID).
			SetLabel(it.Label).
			SetAmountCents(it.AmountCents).
			Save(ctx); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("create assistance line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit quote: %w", err)
	}
	return q, nil
}

// Update replaces the line items and file of an unsent quote. A sent quote
// is frozen: the patient responds to exactly what staff released.
func (s *quoteService) Update(ctx context.Context, id int, req UpdateRequest) (*repo.Quote, error) {
	q, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.SentToPatientAt != nil {
		return nil, ErrAlreadySent
	}
	if req.TotalCliniqueCents == 0 && len(req.Items) == 0 {
		return nil, ErrEmptyQuote
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.AssistanceQuote.Delete().
		Where(entassist.QuoteID(id)).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("clear assistance lines: %w", err)
	}
	for _, it := range req.Items {
		if _, err := tx.AssistanceQuote.Create().
			SetQuoteID(id).
			SetLabel(it.Label).
			SetAmountCents(it.AmountCents).
			Save(ctx); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("create assistance line: %w", err)
		}
	}

	assistance := totalAssistance(req.Items)
	upd := tx.Quote.UpdateOneID(id).
		SetTotalCliniqueCents(req.TotalCliniqueCents).
		SetTotalAssistanceCents(assistance).
		SetTotalQuoteCents(req.TotalCliniqueCents + assistance).
		SetNillableFilePath(req.FilePath).
		SetNillableFileName(req.FileName)

	q, err = upd.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("update quote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit quote update: %w", err)
	}
	return q, nil
}

func (s *quoteService) GetByID(ctx context.Context, id int) (*repo.Quote, error) {
	q, err := s.db.Quote.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return q, nil
}

func (s *quoteService) GetByAppointment(ctx context.Context, appointmentID int) (*repo.Quote, error) {
	q, err := s.db.Quote.Query().
		Where(entquote.AppointmentID(appointmentID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get quote by appointment: %w", err)
	}
	return q, nil
}

func (s *quoteService) Items(ctx context.Context, quoteID int) ([]*repo.AssistanceQuote, error) {
	items, err := s.db.AssistanceQuote.Query().
		Where(entassist.QuoteID(quoteID)).
		Order(entassist.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assistance lines: %w", err)
	}
	return items, nil
}

func (s *quoteService) List(ctx context.Context, req ListRequest) ([]*repo.Quote, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Quote.Query()
	if req.Status != nil {
		q = q.Where(entquote.StatusEQ(entquote.Status(*req.Status)))
	}
	if req.Sent != nil {
		if *req.Sent {
			q = q.Where(entquote.SentToPatientAtNotNil())
		} else {
			q = q.Where(entquote.SentToPatientAtIsNil())
		}
	}

	quotes, err := q.
		Order(entquote.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return quotes, nil
}

// ListForPatient returns only released quotes. Unsent quotes do not exist
// from the patient's point of view.
func (s *quoteService) ListForPatient(ctx context.Context, patientID int) ([]*repo.Quote, error) {
	apptIDs, err := s.db.Appointment.Query().
		Where(entappt.PatientID(patientID), entappt.DeletedAtIsNil()).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patient appointments: %w", err)
	}
	if len(apptIDs) == 0 {
		return nil, nil
	}

	quotes, err := s.db.Quote.Query().
		Where(
			entquote.AppointmentIDIn(apptIDs...),
			entquote.SentToPatientAtNotNil(),
		).
		Order(entquote.BySentToPatientAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patient quotes: %w", err)
	}
	return quotes, nil
}

// SendToPatient releases the quote. The timestamp is written by a conditional
// update on sent_to_patient_at IS NULL, so a double click or two concurrent
// staff sessions produce exactly one send and one broadcast.
func (s *quoteService) SendToPatient(ctx context.Context, id, senderID int, senderRole string) (*repo.Quote, error) {
	if senderRole != realtime.RoleAdministrateur && senderRole != realtime.RoleSuperviseur {
		return nil, fmt.Errorf("%w: %q", realtime.ErrUnknownSenderRole, senderRole)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	now := time.Now().UTC()
	n, err := tx.Quote.Update().
		Where(entquote.ID(id), entquote.SentToPatientAtIsNil()).
		SetSentToPatientAt(now).
		SetSentBy(senderID).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("send quote: %w", err)
	}
	if n == 0 {
		_ = tx.Rollback()
		if _, err := s.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrAlreadySent
	}

	q, err := tx.Client().Quote.Get(ctx, id)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("reload quote: %w", err)
	}

	// A relation that fails to load rolls the send back: the quote stays
	// unsent and no half-announced release reaches the patient.
	patient, clinique, err := s.refs(ctx, tx.Client(), q.AppointmentID)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	ev, err := realtime.NewQuoteSentToPatient(
		int64(q.ID), int64(q.AppointmentID), *q.SentToPatientAt, senderRole, patient, clinique)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit quote send: %w", err)
	}
	if err := realtime.Emit(ctx, s.bus, ev); err != nil {
		s.logger.Error("realtime emit failed", "event", ev.Name(), "err", err)
	}

	return q, nil
}

func (s *quoteService) Respond(ctx context.Context, id int, req RespondRequest) (*repo.Quote, error) {
	q, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.SentToPatientAt == nil {
		return nil, ErrNotSent
	}

	appt, err := s.db.Appointment.Get(ctx, q.AppointmentID)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	if appt.PatientID == nil || *appt.PatientID != req.PatientID {
		return nil, ErrNotYourQuote
	}

	status := entquote.StatusAccepted
	if !req.Accept {
		if req.Comment == nil || *req.Comment == "" {
			return nil, ErrCommentRequired
		}
		status = entquote.StatusRefused
	}

	// Conditional update: the response is terminal, so only a still-pending
	// quote moves. Two racing responses resolve to exactly one winner.
	n, err := s.db.Quote.Update().
		Where(entquote.ID(id), entquote.StatusEQ(entquote.StatusPending)).
		SetStatus(status).
		SetNillableComment(req.Comment).
		SetRespondedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("respond to quote: %w", err)
	}
	if n == 0 {
		return nil, ErrAlreadyResponded
	}
	return s.GetByID(ctx, id)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *quoteService) refs(ctx context.Context, db *repo.Client, appointmentID int) (*realtime.PatientRef, *realtime.ClinicRef, error) {
	appt, err := db.Appointment.Get(ctx, appointmentID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: appointment %d: %v", realtime.ErrIncompleteRelation, appointmentID, err)
	}

	var patient *realtime.PatientRef
	if appt.PatientID != nil {
		u, err := db.User.Query().
			Where(entuser.ID(*appt.PatientID), entuser.DeletedAtIsNil()).
			Only(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: patient %d: %v", realtime.ErrIncompleteRelation, *appt.PatientID, err)
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
		u, err := db.User.Query().
			Where(entuser.ID(*appt.CliniqueID), entuser.DeletedAtIsNil()).
			Only(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: clinique %d: %v", realtime.ErrIncompleteRelation, *appt.CliniqueID, err)
		}
		name := u.FirstName + " " + u.LastName
		if u.ClinicName != nil && *u.ClinicName != "" {
			name = *u.ClinicName
		}
		clinique = &realtime.ClinicRef{ID: int64(u.ID), Name: name}
	}

	return patient, clinique, nil
}

func totalAssistance(items []ItemInput) int64 {
	var sum int64
	for _, it := range items {
		sum += it.AmountCents
	}
	return sum
}
