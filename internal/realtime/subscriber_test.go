package realtime

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestManagerSubscribeAndDispatch(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	clinic := NewPrincipal(5, RoleClinique)
	m := NewManager(bus, clinic, discardLogger())
	defer m.Close()

	var got []Envelope
	refetches := 0
	m.On(EventAppointmentCreated, func(env Envelope) { got = append(got, env) })
	m.Refetch(EventAppointmentCreated, func() { refetches++ })

	if err := m.Subscribe(ctx, CliniqueChannel(5)); err != nil {
		t.Fatal(err)
	}
	if s := m.State(CliniqueChannel(5)); s != StateSubscribed {
		t.Fatalf("state = %v, want subscribed", s)
	}

	ev, err := NewAppointmentCreated(1, "pending", time.Now(), testPatient, testClinic, testAgent)
	if err != nil {
		t.Fatal(err)
	}
	if err := Emit(ctx, bus, ev); err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 {
		t.Fatalf("listener fired %d times, want 1", len(got))
	}
	if got[0].Channel != CliniqueChannel(5) {
		t.Errorf("envelope channel = %q", got[0].Channel)
	}
	if refetches != 1 {
		t.Errorf("refetch fired %d times, want 1", refetches)
	}
}

func TestManagerDuplicateDeliveryIsHarmless(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	admin := NewPrincipal(1, RoleAdministrateur)
	m := NewManager(bus, admin, discardLogger())
	defer m.Close()

	refetches := 0
	m.Refetch(EventQuoteSentToPatient, func() { refetches++ })

	if err := m.Subscribe(ctx, ChannelAdmin); err != nil {
		t.Fatal(err)
	}

	ev, err := NewQuoteSentToPatient(10, 1, time.Now(), RoleSuperviseur, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Push transports may redeliver. Two deliveries mean two idempotent
	// refetches, nothing else.
	for i := 0; i < 2; i++ {
		if err := Emit(ctx, bus, ev); err != nil {
			t.Fatal(err)
		}
	}
	if refetches != 2 {
		t.Errorf("refetch fired %d times, want 2", refetches)
	}
}

func TestManagerDeniesUnauthorizedChannel(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	clinic := NewPrincipal(5, RoleClinique)
	m := NewManager(bus, clinic, discardLogger())
	defer m.Close()

	err := m.Subscribe(ctx, CliniqueChannel(6))
	if !errors.Is(err, ErrUnauthorizedChannel) {
		t.Fatalf("err = %v, want ErrUnauthorizedChannel", err)
	}
	if s := m.State(CliniqueChannel(6)); s != StateError {
		t.Errorf("state = %v, want error", s)
	}

	// The denial never touched the bus, so a publish must reach nobody.
	fired := false
	m.OnAny(func(Envelope) { fired = true })
	if err := bus.Publish(ctx, CliniqueChannel(6), "x", struct{}{}); err != nil {
		t.Fatal(err)
	}
	if fired {
		t.Error("received envelope on denied channel")
	}
}

func TestManagerPartialFailureKeepsOtherChannels(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	clinic := NewPrincipal(5, RoleClinique)
	m := NewManager(bus, clinic, discardLogger())
	defer m.Close()

	err := m.Subscribe(ctx, CliniqueChannel(5), ChannelAdmin, UserChannel(5))
	if !errors.Is(err, ErrUnauthorizedChannel) {
		t.Fatalf("err = %v, want ErrUnauthorizedChannel for role.admin", err)
	}
	if s := m.State(CliniqueChannel(5)); s != StateSubscribed {
		t.Errorf("clinique.5 state = %v, want subscribed", s)
	}
	if s := m.State(UserChannel(5)); s != StateSubscribed {
		t.Errorf("user.5 state = %v, want subscribed", s)
	}
	if s := m.State(ChannelAdmin); s != StateError {
		t.Errorf("role.admin state = %v, want error", s)
	}
}

func TestManagerResubscribeIsIdempotent(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	admin := NewPrincipal(1, RoleAdministrateur)
	m := NewManager(bus, admin, discardLogger())
	defer m.Close()

	deliveries := 0
	m.OnAny(func(Envelope) { deliveries++ })

	if err := m.Subscribe(ctx, ChannelAdmin); err != nil {
		t.Fatal(err)
	}
	if err := m.Subscribe(ctx, ChannelAdmin); err != nil {
		t.Fatal(err)
	}

	if err := bus.Publish(ctx, ChannelAdmin, "x", struct{}{}); err != nil {
		t.Fatal(err)
	}
	if deliveries != 1 {
		t.Errorf("got %d deliveries after double subscribe, want 1", deliveries)
	}
}

func TestManagerCloseTearsDownSubscriptions(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	admin := NewPrincipal(1, RoleAdministrateur)
	m := NewManager(bus, admin, discardLogger())

	fired := false
	m.OnAny(func(Envelope) { fired = true })

	if err := m.Subscribe(ctx, ChannelAdmin, UserChannel(1)); err != nil {
		t.Fatal(err)
	}
	m.Close()

	if s := m.State(ChannelAdmin); s != StateUnsubscribed {
		t.Errorf("state after close = %v, want unsubscribed", s)
	}
	if err := bus.Publish(ctx, ChannelAdmin, "x", struct{}{}); err != nil {
		t.Fatal(err)
	}
	if fired {
		t.Error("received envelope after Close")
	}

	if err := m.Subscribe(ctx, ChannelAdmin); err == nil {
		t.Error("subscribe after Close should fail")
	}
}

func TestManagerStateMachineOnBusFailure(t *testing.T) {
	wantErr := errors.New("transport refused")
	bus := subscriberFunc(func(ctx context.Context, ch Channel, h Handler) (func(), error) {
		return nil, wantErr
	})

	admin := NewPrincipal(1, RoleAdministrateur)
	m := NewManager(bus, admin, discardLogger())
	defer m.Close()

	if err := m.Subscribe(context.Background(), ChannelAdmin); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if s := m.State(ChannelAdmin); s != StateError {
		t.Errorf("state = %v, want error", s)
	}
}

type subscriberFunc func(ctx context.Context, ch Channel, h Handler) (func(), error)

func (f subscriberFunc) Subscribe(ctx context.Context, ch Channel, h Handler) (func(), error) {
	return f(ctx, ch, h)
}
