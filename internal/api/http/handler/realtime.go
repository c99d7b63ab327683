package handler

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/medassist/medassist_backend/config"
	"github.com/medassist/medassist_backend/internal/realtime"
	pasetotoken "github.com/medassist/medassist_backend/pkg/paseto"
)

const defaultHeartbeatSeconds = 25

type RealtimeHandler struct {
	bus realtime.Bus
	cfg *config.Config
}

func NewRealtimeHandler(bus realtime.Bus, cfg *config.Config) *RealtimeHandler {
	return &RealtimeHandler{bus: bus, cfg: cfg}
}

// GET /realtime/stream
//
// Server-sent event stream over the caller's channels. Without a ?channels=
// parameter the stream joins everything the caller's roles entitle; with one,
// each requested channel is still authorized individually, and a denied
// channel is reported in the opening "subscriptions" frame instead of
// silently carrying someone else's traffic.
func (h *RealtimeHandler) Stream(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	principal := realtime.NewPrincipal(claims.UserID, claims.Roles...)
	mgr := realtime.NewManager(h.bus, principal, slog.Default())

	var channels []realtime.Channel
	if raw := c.Query("channels"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, err := realtime.ParseChannel(name); err != nil {
				mgr.Close()
				return badRequest(c, "malformed channel name: "+name)
			}
			channels = append(channels, realtime.Channel(name))
		}
	} else {
		channels = principal.EntitledChannels()
	}
	if len(channels) == 0 {
		mgr.Close()
		return forbidden(c)
	}

	events := make(chan realtime.Envelope, 64)
	mgr.OnAny(func(env realtime.Envelope) {
		select {
		case events <- env:
		default:
			// Slow consumer: dropping is fine, events are refetch hints.
		}
	})

	_ = mgr.Subscribe(c.Context(), channels...)

	subscribed := 0
	states := make(map[string]string, len(channels))
	for _, ch := range channels {
		st := mgr.State(ch)
		states[string(ch)] = st.String()
		if st == realtime.StateSubscribed {
			subscribed++
		}
	}
	if subscribed == 0 {
		mgr.Close()
		return forbidden(c)
	}

	heartbeat := time.Duration(h.cfg.Realtime.HeartbeatSeconds) * time.Second
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeatSeconds * time.Second
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	return c.SendStreamWriter(func(w *bufio.Writer) {
		defer mgr.Close()

		opening, _ := json.Marshal(states)
		if err := writeSSE(w, "subscriptions", opening); err != nil {
			return
		}

		ticker := time.NewTicker(heartbeat)
		defer ticker.Stop()

		for {
			select {
			case env := <-events:
				data, err := json.Marshal(env)
				if err != nil {
					continue
				}
				if err := writeSSE(w, env.Event, data); err != nil {
					return
				}
			case <-ticker.C:
				if _, err := w.WriteString(": ping\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	})
}

func writeSSE(w *bufio.Writer, event string, data []byte) error {
	if _, err := w.WriteString("event: " + event + "\n"); err != nil {
		return err
	}
	if _, err := w.WriteString("data: "); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if _, err := w.WriteString("\n\n"); err != nil {
		return err
	}
	return w.Flush()
}
