package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/medassist/medassist_backend/config"
	"github.com/medassist/medassist_backend/internal/realtime"
	"github.com/medassist/medassist_backend/internal/repo"
	entuser "github.com/medassist/medassist_backend/internal/repo/user"
	"github.com/medassist/medassist_backend/internal/service/notification"
	"github.com/medassist/medassist_backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	NC       *nats.Conn
	DB       *repo.Client
	Cfg      *config.Config
	NotifSvc notification.Service
	Email    *email.Client
}

func RegisterWorkers(p WorkerParams) {
	prefix := p.Cfg.Realtime.SubjectPrefix
	if prefix == "" {
		prefix = realtime.DefaultSubjectPrefix
	}

	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startInboxWorker(p.NC, prefix, p.NotifSvc)
			startQuoteEmailWorker(p.NC, prefix, p.DB, p.Cfg, p.Email)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// inbox_worker
// ---------------------------------------------------------------------------

// Channel events are ephemeral: a dashboard that is closed when one fires
// never sees it. The inbox worker tails the entity-scoped channels and writes
// a notification row per delivery so users catch up on their next login.

func inboxTitle(event string) string {
	switch event {
	case realtime.EventAppointmentCreated:
		return "Nouveau rendez-vous"
	case realtime.EventAppointmentStatusUpdated:
		return "Rendez-vous mis à jour"
	case realtime.EventQuoteSentToPatient:
		return "Un devis vous attend"
	default:
		return ""
	}
}

func startInboxWorker(nc *nats.Conn, prefix string, notifSvc notification.Service) {
	// The recipient is the final subject token: role.patient.<id> and
	// clinique.<id> both end in the user's id.
	handler := func(msg *nats.Msg) {
		parts := strings.Split(msg.Subject, ".")
		userID, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil || userID <= 0 {
			return
		}

		var env realtime.Envelope
		if err := json.Unmarshal(msg.Data, &env); err != nil {
			slog.Warn("inbox_worker: dropping undecodable envelope", "subject", msg.Subject, "err", err)
			return
		}

		title := inboxTitle(env.Event)
		if title == "" {
			return
		}

		var data map[string]any
		if err := json.Unmarshal(env.Payload, &data); err != nil {
			slog.Warn("inbox_worker: dropping undecodable payload", "event", env.Event, "err", err)
			return
		}

		_, err = notifSvc.Create(context.Background(), notification.CreateRequest{
			UserID: userID,
			Type:   env.Event,
			Title:  title,
			Data:   data,
		})
		if err != nil {
			slog.Warn("inbox_worker: create notification failed", "user_id", userID, "event", env.Event, "err", err)
		}
	}

	for _, subject := range []string{
		prefix + ".role.patient.*",
		prefix + ".clinique.*",
	} {
		if _, err := nc.Subscribe(subject, handler); err != nil {
			slog.Error("inbox_worker: subscribe failed", "subject", subject, "err", err)
		}
	}

	slog.Info("inbox_worker: started")
}

// ---------------------------------------------------------------------------
// quote_email_worker
// ---------------------------------------------------------------------------

func startQuoteEmailWorker(nc *nats.Conn, prefix string, db *repo.Client, cfg *config.Config, emailCli *email.Client) {
	_, err := nc.Subscribe(prefix+".role.patient.*", func(msg *nats.Msg) {
		var env realtime.Envelope
		if err := json.Unmarshal(msg.Data, &env); err != nil {
			return
		}
		if env.Event != realtime.EventQuoteSentToPatient {
			return
		}

		var payload realtime.QuoteSentToPatientPayload
		if err := json.Unmarshal(env.Payload, &payload); err != nil {
			slog.Warn("quote_email_worker: dropping undecodable payload", "err", err)
			return
		}
		if payload.Patient == nil {
			return
		}

		ctx := context.Background()

		patient, err := db.User.Query().
			Where(entuser.ID(int(payload.Patient.ID))).
			Only(ctx)
		if err != nil {
			slog.Warn("quote_email_worker: patient not found", "id", payload.Patient.ID, "err", err)
			return
		}

		clinicName := ""
		if payload.Clinique != nil {
			clinicName = payload.Clinique.Name
		}

		m := email.BuildQuoteSentEmail(email.QuoteEmailData{
			FirstName:  patient.FirstName,
			Email:      patient.Email,
			ClinicName: clinicName,
			QuoteURL:   cfg.Email.BaseURL + "/patient/devis/" + strconv.FormatInt(payload.QuoteID, 10),
			SentAt:     payload.SentAt,
			AppName:    cfg.Email.AppName,
		})
		if err := emailCli.Send(ctx, m); err != nil {
			slog.Warn("quote_email_worker: send failed", "quote_id", payload.QuoteID, "err", err)
			return
		}
		slog.Debug("quote_email_worker: quote email sent", "quote_id", payload.QuoteID, "patient_id", payload.Patient.ID)
	})
	if err != nil {
		slog.Error("quote_email_worker: subscribe failed", "err", err)
	}

	slog.Info("quote_email_worker: started")
}
