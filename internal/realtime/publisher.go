package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Envelope is the wire frame delivered to subscribers. Payload stays raw so
// role-specific clients can decode only the events they listen for.
type Envelope struct {
	Event       string          `json:"event"`
	Channel     Channel         `json:"channel"`
	Payload     json.RawMessage `json:"payload"`
	PublishedAt time.Time       `json:"published_at"`
}

// Publisher is the injected broadcast side of the bus. Emitters and services
// depend on this interface, never on a process-wide transport singleton.
type Publisher interface {
	Publish(ctx context.Context, ch Channel, event string, payload any) error
}

// Handler receives one delivered envelope.
type Handler func(env Envelope)

// Subscriber is the receive side of the bus. The returned function tears the
// subscription down; it must be safe to call more than once.
type Subscriber interface {
	Subscribe(ctx context.Context, ch Channel, h Handler) (func(), error)
}

// Bus is a full transport: both ends of the same channel namespace.
type Bus interface {
	Publisher
	Subscriber
}

// Emit publishes ev on every channel in its set. Delivery is best-effort:
// a failing channel does not stop fan-out to the remaining ones, and the
// caller decides whether a transport error may fail the triggering mutation
// (it should not — the domain commit is the source of truth).
func Emit(ctx context.Context, pub Publisher, ev Event) error {
	payload := ev.Payload()
	var errs []error
	for _, ch := range ev.Channels() {
		if err := pub.Publish(ctx, ch, ev.Name(), payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
