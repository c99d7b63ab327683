package realtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrUnauthorizedChannel is a subscription-time denial. It is not retryable
// with the same credentials: the registry evaluated the principal's roles
// and said no.
var ErrUnauthorizedChannel = errors.New("subscription not authorized")

// SubscriptionState tracks one channel subscription inside a Manager.
type SubscriptionState int

const (
	StateUnsubscribed SubscriptionState = iota
	StateSubscribing
	StateSubscribed
	StateError
)

func (s SubscriptionState) String() string {
	switch s {
	case StateUnsubscribed:
		return "unsubscribed"
	case StateSubscribing:
		return "subscribing"
	case StateSubscribed:
		return "subscribed"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Manager is the client-side subscription manager for one principal: it
// joins only channels the registry allows, dispatches envelopes to listeners
// keyed by wire event name, and fires refetch hooks. Events are hints to
// refetch, never the state itself — push delivery has no durability or
// ordering guarantee across reconnects, so every listener must treat its
// payload as advisory and re-read authoritative state.
type Manager struct {
	bus       Subscriber
	principal Principal
	logger    *slog.Logger

	mu        sync.Mutex
	subs      map[Channel]*subscription
	listeners map[string][]Handler
	catchAll  []Handler
	refetch   map[string][]func()
	closed    bool
}

type subscription struct {
	state  SubscriptionState
	cancel func()
}

func NewManager(bus Subscriber, p Principal, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		bus:       bus,
		principal: p,
		logger:    logger,
		subs:      make(map[Channel]*subscription),
		listeners: make(map[string][]Handler),
		refetch:   make(map[string][]func()),
	}
}

// On registers a listener for a wire event name.
func (m *Manager) On(event string, h Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners[event] = append(m.listeners[event], h)
}

// OnAny registers a listener for every delivered envelope.
func (m *Manager) OnAny(h Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.catchAll = append(m.catchAll, h)
}

// Refetch registers a hook fired after the listeners for event run. Hooks
// should re-read server state; a duplicate delivery costs one extra
// idempotent read, nothing more.
func (m *Manager) Refetch(event string, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refetch[event] = append(m.refetch[event], fn)
}

// Subscribe joins the given channels. Each channel is authorized against the
// registry before the transport is touched; a denial or transport failure on
// one channel does not stop the others. There is no automatic retry: a
// channel that ends in StateError stays there until the manager is closed
// (reconnect/backoff belongs to the transport client).
func (m *Manager) Subscribe(ctx context.Context, channels ...Channel) error {
	var errs []error
	for _, ch := range channels {
		if err := m.subscribeOne(ctx, ch); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Manager) subscribeOne(ctx context.Context, ch Channel) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return fmt.Errorf("subscribe %s: manager closed", ch)
	}
	if s, ok := m.subs[ch]; ok && s.state != StateUnsubscribed && s.state != StateError {
		m.mu.Unlock()
		return nil
	}

	if !Authorize(m.principal, string(ch)) {
		m.subs[ch] = &subscription{state: StateError}
		m.mu.Unlock()
		m.logger.Warn("realtime: channel denied",
			"channel", ch,
			"principal_id", m.principal.ID,
		)
		return fmt.Errorf("%w: %s", ErrUnauthorizedChannel, ch)
	}

	sub := &subscription{state: StateSubscribing}
	m.subs[ch] = sub
	m.mu.Unlock()

	cancel, err := m.bus.Subscribe(ctx, ch, m.dispatch)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		sub.state = StateError
		m.logger.Error("realtime: subscribe failed", "channel", ch, "err", err)
		return err
	}
	if m.closed {
		cancel()
		sub.state = StateUnsubscribed
		return nil
	}
	sub.state = StateSubscribed
	sub.cancel = cancel
	return nil
}

func (m *Manager) dispatch(env Envelope) {
	m.mu.Lock()
	hs := append([]Handler(nil), m.listeners[env.Event]...)
	hs = append(hs, m.catchAll...)
	fns := append([]func(){}, m.refetch[env.Event]...)
	m.mu.Unlock()

	for _, h := range hs {
		h(env)
	}
	for _, fn := range fns {
		fn()
	}
}

// State reports the subscription state for a channel.
func (m *Manager) State(ch Channel) SubscriptionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.subs[ch]; ok {
		return s.state
	}
	return StateUnsubscribed
}

// Close tears every subscription down. No dangling subscriptions survive a
// dashboard unmount or an entity switch.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	for _, s := range m.subs {
		if s.cancel != nil {
			s.cancel()
			s.cancel = nil
		}
		s.state = StateUnsubscribed
	}
}
