package quote

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/medassist/medassist_backend/internal/realtime"
	"github.com/medassist/medassist_backend/internal/repo"
	"github.com/medassist/medassist_backend/internal/repo/enttest"
)

func TestTotalAssistance(t *testing.T) {
	tests := []struct {
		name  string
		items []ItemInput
		want  int64
	}{
		{
			name:  "no lines",
			items: nil,
			want:  0,
		},
		{
			name: "single line",
			items: []ItemInput{
				{Label: "Accompagnement aéroport", AmountCents: 15000},
			},
			want: 15000,
		},
		{
			name: "several lines sum",
			items: []ItemInput{
				{Label: "Transfert", AmountCents: 90000},
				{Label: "Hébergement", AmountCents: 25000},
				{Label: "Interprète", AmountCents: 12000},
			},
			want: 127000,
		},
		{
			name: "zero amount line counts for nothing",
			items: []ItemInput{
				{Label: "Geste commercial", AmountCents: 0},
				{Label: "Transfert", AmountCents: 50000},
			},
			want: 50000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := totalAssistance(tt.items); got != tt.want {
				t.Fatalf("totalAssistance() = %d, want %d", got, tt.want)
			}
		})
	}
}

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func seedUser(t *testing.T, client *repo.Client, first, last, email string) *repo.User {
	t.Helper()
	u, err := client.User.Create().
		SetFirstName(first).
		SetLastName(last).
		SetEmail(email).
		SetPasswordHash("x").
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return u
}

func seedAppointment(t *testing.T, client *repo.Client, agentID int, patientID *int) *repo.Appointment {
	t.Helper()
	c := client.Appointment.Create().
		SetAgentID(agentID).
		SetDateRdv(time.Now().Add(48 * time.Hour)).
		SetFullName("Jean Dupont").
		SetPhone("+33612345678").
		SetNillablePatientID(patientID)
	a, err := c.Save(context.Background())
	if err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	return a
}

func seedSentQuote(t *testing.T, client *repo.Client, appointmentID, staffID int) *repo.Quote {
	t.Helper()
	q, err := client.Quote.Create().
		SetAppointmentID(appointmentID).
		SetCreatedBy(staffID).
		SetTotalCliniqueCents(100000).
		SetTotalAssistanceCents(25000).
		SetTotalQuoteCents(125000).
		SetSentToPatientAt(time.Now().UTC()).
		SetSentBy(staffID).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed quote: %v", err)
	}
	return q
}

func TestRespondIsTerminal(t *testing.T) {
	client := newTestClient(t)
	agent := seedUser(t, client, "Karim", "Haddad", "karim@medassist.test")
	patient := seedUser(t, client, "Jean", "Dupont", "jean@medassist.test")
	appt := seedAppointment(t, client, agent.ID, &patient.ID)
	q := seedSentQuote(t, client, appt.ID, agent.ID)

	svc := New(client, realtime.NewMemoryBus(), slog.Default())
	q, err := svc.Respond(context.Background(), q.ID, RespondRequest{
		PatientID: patient.ID,
		Accept:    true,
	})
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if got := string(q.Status); got != "accepted" {
		t.Fatalf("status = %q, want accepted", got)
	}

	comment := "Trop cher"
	_, err = svc.Respond(context.Background(), q.ID, RespondRequest{
		PatientID: patient.ID,
		Accept:    false,
		Comment:   &comment,
	})
	if !errors.Is(err, ErrAlreadyResponded) {
		t.Fatalf("second Respond() error = %v, want ErrAlreadyResponded", err)
	}

	// The losing response must not have overwritten anything.
	q, err = svc.GetByID(context.Background(), q.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got := string(q.Status); got != "accepted" {
		t.Fatalf("status after losing response = %q, want accepted", got)
	}
	if q.Comment != nil {
		t.Fatalf("comment after losing response = %q, want nil", *q.Comment)
	}
}

func TestRespondRefusalRequiresComment(t *testing.T) {
	client := newTestClient(t)
	agent := seedUser(t, client, "Karim", "Haddad", "karim@medassist.test")
	patient := seedUser(t, client, "Jean", "Dupont", "jean@medassist.test")
	appt := seedAppointment(t, client, agent.ID, &patient.ID)
	q := seedSentQuote(t, client, appt.ID, agent.ID)

	svc := New(client, realtime.NewMemoryBus(), slog.Default())
	_, err := svc.Respond(context.Background(), q.ID, RespondRequest{
		PatientID: patient.ID,
		Accept:    false,
	})
	if !errors.Is(err, ErrCommentRequired) {
		t.Fatalf("Respond() error = %v, want ErrCommentRequired", err)
	}
}

func TestSendToPatientRollsBackOnDanglingPatient(t *testing.T) {
	client := newTestClient(t)
	agent := seedUser(t, client, "Karim", "Haddad", "karim@medassist.test")

	missing := 9999
	appt := seedAppointment(t, client, agent.ID, &missing)
	q, err := client.Quote.Create().
		SetAppointmentID(appt.ID).
		SetCreatedBy(agent.ID).
		SetTotalCliniqueCents(100000).
		SetTotalAssistanceCents(0).
		SetTotalQuoteCents(100000).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed quote: %v", err)
	}

	svc := New(client, realtime.NewMemoryBus(), slog.Default())
	_, err = svc.SendToPatient(context.Background(), q.ID, agent.ID, realtime.RoleAdministrateur)
	if !errors.Is(err, realtime.ErrIncompleteRelation) {
		t.Fatalf("SendToPatient() error = %v, want ErrIncompleteRelation", err)
	}

	// The send must roll back: the quote stays unsent and a later, fixed
	// attempt still fires the release event exactly once.
	q, err = client.Quote.Get(context.Background(), q.ID)
	if err != nil {
		t.Fatalf("reload quote: %v", err)
	}
	if q.SentToPatientAt != nil {
		t.Fatalf("sent_to_patient_at = %v, want nil after rollback", q.SentToPatientAt)
	}
}
