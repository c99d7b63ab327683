package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// DefaultSubjectPrefix is where channel traffic lives on the broker.
const DefaultSubjectPrefix = "medassist.ch"

// NatsBus maps channels onto NATS subjects: one subject per channel under a
// common prefix, e.g. "medassist.ch.role.admin" or "medassist.ch.clinique.3".
type NatsBus struct {
	nc     *nats.Conn
	prefix string
}

func NewNatsBus(nc *nats.Conn, prefix string) *NatsBus {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &NatsBus{nc: nc, prefix: prefix}
}

func (b *NatsBus) subject(ch Channel) string {
	return b.prefix + "." + string(ch)
}

func (b *NatsBus) Publish(ctx context.Context, ch Channel, event string, payload any) error {
	_ = ctx // nats core publish is fire-and-forget

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", event, err)
	}
	env := Envelope{
		Event:       event,
		Channel:     ch,
		Payload:     raw,
		PublishedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	if err := b.nc.Publish(b.subject(ch), data); err != nil {
		return fmt.Errorf("publish %s on %s: %w", event, ch, err)
	}
	return nil
}

func (b *NatsBus) Subscribe(ctx context.Context, ch Channel, h Handler) (func(), error) {
	_ = ctx

	sub, err := b.nc.Subscribe(b.subject(ch), func(msg *nats.Msg) {
		var env Envelope
		if err := json.Unmarshal(msg.Data, &env); err != nil {
			slog.Warn("realtime: dropping undecodable envelope", "subject", msg.Subject, "err", err)
			return
		}
		h(env)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", ch, err)
	}

	return func() { _ = sub.Unsubscribe() }, nil
}
