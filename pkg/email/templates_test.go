package email

import (
	"strings"
	"testing"
	"time"
)

func TestBuildQuoteSentEmail(t *testing.T) {
	m := BuildQuoteSentEmail(QuoteEmailData{
		FirstName:  "Marie",
		Email:      "marie@example.com",
		ClinicName: "Clinique du Parc",
		QuoteURL:   "https://app.example.com/patient/devis/12",
		SentAt:     time.Now(),
	})

	if len(m.To) != 1 || m.To[0] != "marie@example.com" {
		t.Errorf("To = %v, want [marie@example.com]", m.To)
	}
	if m.Subject == "" {
		t.Error("Subject is empty")
	}
	for _, body := range []string{m.TextBody, m.HTMLBody} {
		if !strings.Contains(body, "Marie") {
			t.Error("body does not greet the patient by name")
		}
		if !strings.Contains(body, "Clinique du Parc") {
			t.Error("body does not name the clinic")
		}
		if !strings.Contains(body, "https://app.example.com/patient/devis/12") {
			t.Error("body does not link to the quote")
		}
	}
}

func TestBuildQuoteSentEmailDefaults(t *testing.T) {
	m := BuildQuoteSentEmail(QuoteEmailData{Email: "p@example.com"})

	if !strings.Contains(m.TextBody, "votre clinique") {
		t.Error("missing clinic falls back to a generic label")
	}
	if !strings.Contains(m.Subject, defaultAppName) {
		t.Errorf("Subject %q does not carry the default app name", m.Subject)
	}
}

func TestBuildAppointmentStatusEmail(t *testing.T) {
	date := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	confirmed := BuildAppointmentStatusEmail(AppointmentEmailData{
		FirstName: "Luc",
		Email:     "luc@example.com",
		Date:      date,
		Status:    "confirmed",
	})
	if !strings.Contains(confirmed.TextBody, "confirmé") {
		t.Error("confirmed email does not say the appointment is confirmed")
	}
	if !strings.Contains(confirmed.TextBody, "14/03/2025") {
		t.Error("confirmed email does not carry the date")
	}

	cancelled := BuildAppointmentStatusEmail(AppointmentEmailData{
		FirstName: "Luc",
		Email:     "luc@example.com",
		Date:      date,
		Status:    "cancelled",
	})
	if !strings.Contains(cancelled.TextBody, "annulé") {
		t.Error("cancelled email does not say the appointment is cancelled")
	}
}
