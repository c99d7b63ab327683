package realtime

import (
	"errors"
	"fmt"
	"time"
)

// Wire event names. Stable strings: renaming one is a breaking protocol
// change for every subscribed dashboard.
const (
	EventAppointmentCreated       = "appointment.created"
	EventAppointmentStatusUpdated = "appointment.status.updated"
	EventClinicQuoteUploaded      = "clinic.quote.uploaded"
	EventQuoteSentToPatient       = "quote.sent.to.patient"
)

// ErrIncompleteRelation is returned by event constructors when a relation
// the event requires was not loaded. Emitters fail closed: a missing
// required relation aborts the triggering mutation instead of broadcasting
// a payload where "nil" could mean either "not assigned" or "load failed".
var ErrIncompleteRelation = errors.New("required relation not loaded")

// ErrUnknownSenderRole is returned when a quote-sent event is constructed
// with a sender outside the staff roles allowed to send quotes.
var ErrUnknownSenderRole = errors.New("unknown sender role")

// Event is an emitter: a computed channel set plus a typed payload under a
// stable wire name. Events are constructed from already-loaded relation
// projections, so "missing relation" is a construction-time error.
type Event interface {
	Name() string
	Channels() []Channel
	Payload() any
}

// Minimal relation projections broadcast to mixed-role audiences. They carry
// exactly the fields every entitled subscriber may see.

type PatientRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
}

type ClinicRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type AgentRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
}

// Full projections for staff-only events (admin/supervisor audiences).

type UserDetail struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type ClinicDetail struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ---------------------------------------------------------------------------
// appointment.created
// ---------------------------------------------------------------------------

type AppointmentCreatedPayload struct {
	ID       int64       `json:"id"`
	Patient  *PatientRef `json:"patient"`
	Clinique *ClinicRef  `json:"clinique"`
	Agent    AgentRef    `json:"agent"`
	Date     time.Time   `json:"date"`
	Status   string      `json:"status"`
}

type AppointmentCreated struct {
	payload AppointmentCreatedPayload
}

// NewAppointmentCreated builds the event for a freshly created appointment.
// patient and clinique are nil for bare prospects; agent is required.
func NewAppointmentCreated(id int64, status string, date time.Time, patient *PatientRef, clinique *ClinicRef, agent *AgentRef) (*AppointmentCreated, error) {
	if agent == nil {
		return nil, fmt.Errorf("%w: agent", ErrIncompleteRelation)
	}
	return &AppointmentCreated{payload: AppointmentCreatedPayload{
		ID:       id,
		Patient:  patient,
		Clinique: clinique,
		Agent:    *agent,
		Date:     date,
		Status:   status,
	}}, nil
}

func (e *AppointmentCreated) Name() string { return EventAppointmentCreated }

func (e *AppointmentCreated) Channels() []Channel {
	chs := []Channel{ChannelAdmin, ChannelSuperviseur, ChannelConfirmateur}
	if e.payload.Clinique != nil {
		chs = append(chs, CliniqueChannel(e.payload.Clinique.ID))
	}
	if e.payload.Patient != nil {
		chs = append(chs, PatientChannel(e.payload.Patient.ID))
	}
	return chs
}

func (e *AppointmentCreated) Payload() any { return e.payload }

// ---------------------------------------------------------------------------
// appointment.status.updated
// ---------------------------------------------------------------------------

type AppointmentStatusUpdatedPayload struct {
	ID       int64       `json:"id"`
	Status   string      `json:"status"`
	Patient  *PatientRef `json:"patient"`
	Clinique *ClinicRef  `json:"clinique"`
	Agent    AgentRef    `json:"agent"`
	Date     time.Time   `json:"date"`
}

type AppointmentStatusUpdated struct {
	payload AppointmentStatusUpdatedPayload
}

func NewAppointmentStatusUpdated(id int64, status string, date time.Time, patient *PatientRef, clinique *ClinicRef, agent *AgentRef) (*AppointmentStatusUpdated, error) {
	if agent == nil {
		return nil, fmt.Errorf("%w: agent", ErrIncompleteRelation)
	}
	return &AppointmentStatusUpdated{payload: AppointmentStatusUpdatedPayload{
		ID:       id,
		Status:   status,
		Patient:  patient,
		Clinique: clinique,
		Agent:    *agent,
		Date:     date,
	}}, nil
}

func (e *AppointmentStatusUpdated) Name() string { return EventAppointmentStatusUpdated }

func (e *AppointmentStatusUpdated) Channels() []Channel {
	chs := []Channel{ChannelAdmin, ChannelSuperviseur}
	if e.payload.Patient != nil {
		chs = append(chs, PatientChannel(e.payload.Patient.ID))
	}
	if e.payload.Clinique != nil {
		chs = append(chs, CliniqueChannel(e.payload.Clinique.ID))
	}
	return chs
}

func (e *AppointmentStatusUpdated) Payload() any { return e.payload }

// ---------------------------------------------------------------------------
// clinic.quote.uploaded
// ---------------------------------------------------------------------------

type ClinicQuoteUploadedPayload struct {
	ID       int64        `json:"id"`
	Date     time.Time    `json:"date"`
	Patient  UserDetail   `json:"patient"`
	Agent    UserDetail   `json:"agent"`
	Clinique ClinicDetail `json:"clinique"`
}

// ClinicQuoteUploaded is an internal fulfillment signal. Its audience is
// fixed to admin and supervisor: the payload carries full contact detail and
// must never reach a patient or another clinic, whatever the appointment's
// data looks like.
type ClinicQuoteUploaded struct {
	payload ClinicQuoteUploadedPayload
}

func NewClinicQuoteUploaded(appointmentID int64, date time.Time, patient *UserDetail, agent *UserDetail, clinique *ClinicDetail) (*ClinicQuoteUploaded, error) {
	if patient == nil {
		return nil, fmt.Errorf("%w: patient", ErrIncompleteRelation)
	}
	if agent == nil {
		return nil, fmt.Errorf("%w: agent", ErrIncompleteRelation)
	}
	if clinique == nil {
		return nil, fmt.Errorf("%w: clinique", ErrIncompleteRelation)
	}
	return &ClinicQuoteUploaded{payload: ClinicQuoteUploadedPayload{
		ID:       appointmentID,
		Date:     date,
		Patient:  *patient,
		Agent:    *agent,
		Clinique: *clinique,
	}}, nil
}

func (e *ClinicQuoteUploaded) Name() string { return EventClinicQuoteUploaded }

func (e *ClinicQuoteUploaded) Channels() []Channel {
	return []Channel{ChannelAdmin, ChannelSuperviseur}
}

func (e *ClinicQuoteUploaded) Payload() any { return e.payload }

// ---------------------------------------------------------------------------
// quote.sent.to.patient
// ---------------------------------------------------------------------------

type QuoteSentToPatientPayload struct {
	QuoteID       int64       `json:"quote_id"`
	AppointmentID int64       `json:"appointment_id"`
	Patient       *PatientRef `json:"patient"`
	Clinique      *ClinicRef  `json:"clinique"`
	SentAt        time.Time   `json:"sent_at"`
}

// QuoteSentToPatient marks the moment a quote becomes patient-visible. The
// staff channel routing depends on who sent it, so the sender's own role is
// not notified about its own action.
type QuoteSentToPatient struct {
	senderRole string
	payload    QuoteSentToPatientPayload
}

func NewQuoteSentToPatient(quoteID, appointmentID int64, sentAt time.Time, senderRole string, patient *PatientRef, clinique *ClinicRef) (*QuoteSentToPatient, error) {
	if senderRole != RoleAdministrateur && senderRole != RoleSuperviseur {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSenderRole, senderRole)
	}
	return &QuoteSentToPatient{
		senderRole: senderRole,
		payload: QuoteSentToPatientPayload{
			QuoteID:       quoteID,
			AppointmentID: appointmentID,
			Patient:       patient,
			Clinique:      clinique,
			SentAt:        sentAt,
		},
	}, nil
}

func (e *QuoteSentToPatient) Name() string { return EventQuoteSentToPatient }

func (e *QuoteSentToPatient) Channels() []Channel {
	var chs []Channel
	switch e.senderRole {
	case RoleAdministrateur:
		chs = append(chs, ChannelSuperviseur)
	case RoleSuperviseur:
		chs = append(chs, ChannelAdmin)
	}
	if e.payload.Clinique != nil {
		chs = append(chs, CliniqueChannel(e.payload.Clinique.ID))
	}
	if e.payload.Patient != nil {
		chs = append(chs, PatientChannel(e.payload.Patient.ID))
	}
	return chs
}

func (e *QuoteSentToPatient) Payload() any { return e.payload }
