package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func channelSet(ev Event) map[Channel]bool {
	set := make(map[Channel]bool)
	for _, ch := range ev.Channels() {
		set[ch] = true
	}
	return set
}

func assertChannels(t *testing.T, ev Event, want ...Channel) {
	t.Helper()
	got := channelSet(ev)
	if len(got) != len(want) {
		t.Fatalf("channels = %v, want exactly %v", ev.Channels(), want)
	}
	for _, ch := range want {
		if !got[ch] {
			t.Errorf("missing channel %q in %v", ch, ev.Channels())
		}
	}
}

var (
	testPatient = &PatientRef{ID: 9, Name: "Marie", LastName: "Dupont", Email: "marie@example.com"}
	testClinic  = &ClinicRef{ID: 5, Name: "Clinique Azur"}
	testAgent   = &AgentRef{ID: 4, Name: "Paul", LastName: "Martin"}
)

func TestAppointmentCreatedChannels(t *testing.T) {
	date := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	t.Run("full relations", func(t *testing.T) {
		ev, err := NewAppointmentCreated(1, "pending", date, testPatient, testClinic, testAgent)
		if err != nil {
			t.Fatal(err)
		}
		assertChannels(t, ev,
			ChannelAdmin, ChannelSuperviseur, ChannelConfirmateur,
			CliniqueChannel(5), PatientChannel(9),
		)
	})

	t.Run("prospect without patient or clinic", func(t *testing.T) {
		ev, err := NewAppointmentCreated(2, "pending", date, nil, nil, testAgent)
		if err != nil {
			t.Fatal(err)
		}
		assertChannels(t, ev, ChannelAdmin, ChannelSuperviseur, ChannelConfirmateur)
	})

	t.Run("missing agent fails closed", func(t *testing.T) {
		_, err := NewAppointmentCreated(3, "pending", date, testPatient, testClinic, nil)
		if !errors.Is(err, ErrIncompleteRelation) {
			t.Fatalf("err = %v, want ErrIncompleteRelation", err)
		}
	})
}

func TestAppointmentStatusUpdatedChannels(t *testing.T) {
	date := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	t.Run("full relations", func(t *testing.T) {
		ev, err := NewAppointmentStatusUpdated(1, "confirmed", date, testPatient, testClinic, testAgent)
		if err != nil {
			t.Fatal(err)
		}
		// No confirmateur channel here: confirmation work is done once the
		// status moves off pending.
		assertChannels(t, ev,
			ChannelAdmin, ChannelSuperviseur,
			PatientChannel(9), CliniqueChannel(5),
		)
	})

	t.Run("no optional relations", func(t *testing.T) {
		ev, err := NewAppointmentStatusUpdated(2, "cancelled", date, nil, nil, testAgent)
		if err != nil {
			t.Fatal(err)
		}
		assertChannels(t, ev, ChannelAdmin, ChannelSuperviseur)
	})

	t.Run("missing agent fails closed", func(t *testing.T) {
		_, err := NewAppointmentStatusUpdated(3, "confirmed", date, testPatient, testClinic, nil)
		if !errors.Is(err, ErrIncompleteRelation) {
			t.Fatalf("err = %v, want ErrIncompleteRelation", err)
		}
	})
}

func TestClinicQuoteUploadedChannels(t *testing.T) {
	date := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	patient := &UserDetail{ID: 9, Name: "Marie", LastName: "Dupont", Email: "marie@example.com", Phone: "+33612345678"}
	agent := &UserDetail{ID: 4, Name: "Paul", LastName: "Martin", Email: "paul@example.com", Phone: "+33698765432"}
	clinic := &ClinicDetail{ID: 5, Name: "Clinique Azur", Email: "contact@azur.example.com", Phone: "+33140000000", Address: "1 rue de la Paix"}

	t.Run("audience is fixed to admin and supervisor", func(t *testing.T) {
		ev, err := NewClinicQuoteUploaded(1, date, patient, agent, clinic)
		if err != nil {
			t.Fatal(err)
		}
		// Never the patient or clinic channels: the payload carries full
		// contact detail for staff review only.
		assertChannels(t, ev, ChannelAdmin, ChannelSuperviseur)
	})

	t.Run("every relation required", func(t *testing.T) {
		cases := []struct {
			name     string
			patient  *UserDetail
			agent    *UserDetail
			clinique *ClinicDetail
		}{
			{"missing patient", nil, agent, clinic},
			{"missing agent", patient, nil, clinic},
			{"missing clinique", patient, agent, nil},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewClinicQuoteUploaded(1, date, tc.patient, tc.agent, tc.clinique)
				if !errors.Is(err, ErrIncompleteRelation) {
					t.Fatalf("err = %v, want ErrIncompleteRelation", err)
				}
			})
		}
	})
}

func TestQuoteSentToPatientChannels(t *testing.T) {
	sentAt := time.Date(2026, 3, 11, 9, 30, 0, 0, time.UTC)

	t.Run("admin sender notifies supervisor", func(t *testing.T) {
		ev, err := NewQuoteSentToPatient(10, 1, sentAt, RoleAdministrateur, testPatient, testClinic)
		if err != nil {
			t.Fatal(err)
		}
		assertChannels(t, ev, ChannelSuperviseur, CliniqueChannel(5), PatientChannel(9))
	})

	t.Run("supervisor sender notifies admin", func(t *testing.T) {
		ev, err := NewQuoteSentToPatient(10, 1, sentAt, RoleSuperviseur, testPatient, testClinic)
		if err != nil {
			t.Fatal(err)
		}
		assertChannels(t, ev, ChannelAdmin, CliniqueChannel(5), PatientChannel(9))
	})

	t.Run("no optional relations", func(t *testing.T) {
		ev, err := NewQuoteSentToPatient(10, 1, sentAt, RoleAdministrateur, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		assertChannels(t, ev, ChannelSuperviseur)
	})

	t.Run("rejects non-staff sender", func(t *testing.T) {
		for _, role := range []string{RoleAgent, RoleConfirmateur, RolePatient, RoleClinique, "", "root"} {
			if _, err := NewQuoteSentToPatient(10, 1, sentAt, role, testPatient, testClinic); !errors.Is(err, ErrUnknownSenderRole) {
				t.Errorf("sender %q: err = %v, want ErrUnknownSenderRole", role, err)
			}
		}
	})
}

func TestEmitFansOutToEveryChannel(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	received := make(map[Channel][]Envelope)
	for _, ch := range []Channel{ChannelAdmin, ChannelSuperviseur, ChannelConfirmateur, CliniqueChannel(5), PatientChannel(9)} {
		ch := ch
		if _, err := bus.Subscribe(ctx, ch, func(env Envelope) {
			received[ch] = append(received[ch], env)
		}); err != nil {
			t.Fatal(err)
		}
	}

	date := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	ev, err := NewAppointmentCreated(1, "pending", date, testPatient, testClinic, testAgent)
	if err != nil {
		t.Fatal(err)
	}
	if err := Emit(ctx, bus, ev); err != nil {
		t.Fatal(err)
	}

	for _, ch := range ev.Channels() {
		envs := received[ch]
		if len(envs) != 1 {
			t.Fatalf("channel %q received %d envelopes, want 1", ch, len(envs))
		}
		env := envs[0]
		if env.Event != EventAppointmentCreated {
			t.Errorf("channel %q event = %q, want %q", ch, env.Event, EventAppointmentCreated)
		}
		var p AppointmentCreatedPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			t.Fatalf("channel %q payload: %v", ch, err)
		}
		if p.ID != 1 || p.Agent.ID != 4 || p.Patient == nil || p.Patient.ID != 9 {
			t.Errorf("channel %q payload = %+v", ch, p)
		}
	}
}

func TestEmitCollectsPublishErrors(t *testing.T) {
	wantErr := errors.New("broker down")
	pub := publisherFunc(func(ctx context.Context, ch Channel, event string, payload any) error {
		if ch == ChannelSuperviseur {
			return wantErr
		}
		return nil
	})

	ev, err := NewClinicQuoteUploaded(1, time.Now(),
		&UserDetail{ID: 9}, &UserDetail{ID: 4}, &ClinicDetail{ID: 5})
	if err != nil {
		t.Fatal(err)
	}

	if err := Emit(context.Background(), pub, ev); !errors.Is(err, wantErr) {
		t.Fatalf("Emit() err = %v, want %v", err, wantErr)
	}
}

type publisherFunc func(ctx context.Context, ch Channel, event string, payload any) error

func (f publisherFunc) Publish(ctx context.Context, ch Channel, event string, payload any) error {
	return f(ctx, ch, event, payload)
}
