package appointment

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/medassist/medassist_backend/internal/realtime"
	"github.com/medassist/medassist_backend/internal/repo"
	entappt "github.com/medassist/medassist_backend/internal/repo/appointment"
	"github.com/medassist/medassist_backend/internal/repo/enttest"
)

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

func TestCreateNormalizesIntakePhone(t *testing.T) {
	client := newTestClient(t)
	agent := seedUser(t, client, "Karim", "Haddad", "karim@medassist.test")
	svc := New(client, realtime.NewMemoryBus(), slog.Default())

	appt, err := svc.Create(context.Background(), CreateRequest{
		AgentID:  agent.ID,
		DateRdv:  time.Now().Add(48 * time.Hour),
		FullName: "Jean Dupont",
		Phone:    "06 12 34 56 78",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if appt.Phone != "+33612345678" {
		t.Fatalf("Phone = %q, want %q", appt.Phone, "+33612345678")
	}
}

func TestCreateRejectsInvalidPhone(t *testing.T) {
	client := newTestClient(t)
	agent := seedUser(t, client, "Karim", "Haddad", "karim@medassist.test")
	svc := New(client, realtime.NewMemoryBus(), slog.Default())

	_, err := svc.Create(context.Background(), CreateRequest{
		AgentID:  agent.ID,
		DateRdv:  time.Now().Add(48 * time.Hour),
		FullName: "Jean Dupont",
		Phone:    "pas un numéro",
	})
	if !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("Create() error = %v, want ErrInvalidPhone", err)
	}

	n, err := client.Appointment.Query().Count(context.Background())
	if err != nil {
		t.Fatalf("count appointments: %v", err)
	}
	if n != 0 {
		t.Fatalf("appointment count = %d, want 0", n)
	}
}

func TestCreateRollsBackOnDanglingPatient(t *testing.T) {
	client := newTestClient(t)
	agent := seedUser(t, client, "Karim", "Haddad", "karim@medassist.test")
	svc := New(client, realtime.NewMemoryBus(), slog.Default())

	missing := 9999
	_, err := svc.Create(context.Background(), CreateRequest{
		AgentID:   agent.ID,
		PatientID: &missing,
		DateRdv:   time.Now().Add(48 * time.Hour),
		FullName:  "Jean Dupont",
		Phone:     "0612345678",
	})
	if !errors.Is(err, realtime.ErrIncompleteRelation) {
		t.Fatalf("Create() error = %v, want ErrIncompleteRelation", err)
	}

	// The failed mutation must leave nothing behind: a committed row with no
	// event would look successful to staff and invisible to the caller.
	n, err := client.Appointment.Query().Count(context.Background())
	if err != nil {
		t.Fatalf("count appointments: %v", err)
	}
	if n != 0 {
		t.Fatalf("appointment count = %d, want 0", n)
	}
}

func TestCreateDeliversToEntitledChannels(t *testing.T) {
	client := newTestClient(t)
	agent := seedUser(t, client, "Karim", "Haddad", "karim@medassist.test")
	patient := seedUser(t, client, "Jean", "Dupont", "jean@medassist.test")

	bus := realtime.NewMemoryBus()
	var got []realtime.Envelope
	unsub, err := bus.Subscribe(context.Background(), realtime.PatientChannel(int64(patient.ID)), func(env realtime.Envelope) {
		got = append(got, env)
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer unsub()

	svc := New(client, bus, slog.Default())
	_, err = svc.Create(context.Background(), CreateRequest{
		AgentID:   agent.ID,
		PatientID: &patient.ID,
		DateRdv:   time.Now().Add(48 * time.Hour),
		FullName:  "Jean Dupont",
		Phone:     "0612345678",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("patient channel deliveries = %d, want 1", len(got))
	}
	if got[0].Event != realtime.EventAppointmentCreated {
		t.Fatalf("event = %q, want %q", got[0].Event, realtime.EventAppointmentCreated)
	}
}

func TestUpdateStatusGate(t *testing.T) {
	client := newTestClient(t)
	agent := seedUser(t, client, "Karim", "Haddad", "karim@medassist.test")
	svc := New(client, realtime.NewMemoryBus(), slog.Default())

	appt, err := svc.Create(context.Background(), CreateRequest{
		AgentID:  agent.ID,
		DateRdv:  time.Now().Add(48 * time.Hour),
		FullName: "Jean Dupont",
		Phone:    "0612345678",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	appt, err = svc.UpdateStatus(context.Background(), appt.ID, string(entappt.StatusConfirmed))
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if appt.Status != entappt.StatusConfirmed {
		t.Fatalf("status = %s, want confirmed", appt.Status)
	}

	// confirmed is final: a second transition must lose.
	if _, err := svc.UpdateStatus(context.Background(), appt.ID, string(entappt.StatusCancelled)); !errors.Is(err, ErrStatusFinal) {
		t.Fatalf("UpdateStatus() error = %v, want ErrStatusFinal", err)
	}
}

func TestUpdateStatusRollsBackOnDanglingClinique(t *testing.T) {
	client := newTestClient(t)
	agent := seedUser(t, client, "Karim", "Haddad", "karim@medassist.test")

	// The clinic reference dangles: raw FKs carry no DB constraint, so the
	// service has to catch this itself.
	appt, err := client.Appointment.Create().
		SetAgentID(agent.ID).
		SetCliniqueID(9999).
		SetDateRdv(time.Now().Add(48 * time.Hour)).
		SetFullName("Jean Dupont").
		SetPhone("+33612345678").
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	svc := New(client, realtime.NewMemoryBus(), slog.Default())
	_, err = svc.UpdateStatus(context.Background(), appt.ID, string(entappt.StatusConfirmed))
	if !errors.Is(err, realtime.ErrIncompleteRelation) {
		t.Fatalf("UpdateStatus() error = %v, want ErrIncompleteRelation", err)
	}

	reloaded, err := client.Appointment.Get(context.Background(), appt.ID)
	if err != nil {
		t.Fatalf("reload appointment: %v", err)
	}
	if reloaded.Status != entappt.StatusPending {
		t.Fatalf("status = %s, want pending after rollback", reloaded.Status)
	}
}
