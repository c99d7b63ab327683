package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// MemoryBus is an in-process Bus with synchronous delivery. It backs tests
// and single-node deployments that run without a broker.
type MemoryBus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[Channel]map[int]Handler
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: make(map[Channel]map[int]Handler)}
}

func (b *MemoryBus) Publish(ctx context.Context, ch Channel, event string, payload any) error {
	_ = ctx

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

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[ch]))
	for _, h := range b.subs[ch] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(env)
	}
	return nil
}

func (b *MemoryBus) Subscribe(ctx context.Context, ch Channel, h Handler) (func(), error) {
	_ = ctx

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	if b.subs[ch] == nil {
		b.subs[ch] = make(map[int]Handler)
	}
	b.subs[ch][id] = h
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs[ch], id)
		b.mu.Unlock()
	}, nil
}
