package supabase

import (
	"sync"

	"vocablo/app/domain"
)

// eventBus fans auth-change events out to subscribers. Callbacks run in the
// emitting goroutine, outside the bus lock, so a subscriber may call back
// into the adapter.
type eventBus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(domain.AuthEvent)
}

func newEventBus() *eventBus {
	return &eventBus{subs: make(map[int]func(domain.AuthEvent))}
}

func (b *eventBus) subscribe(fn func(domain.AuthEvent)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

func (b *eventBus) emit(ev domain.AuthEvent) {
	b.mu.Lock()
	fns := make([]func(domain.AuthEvent), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func (b *eventBus) clear() {
	b.mu.Lock()
	b.subs = make(map[int]func(domain.AuthEvent))
	b.mu.Unlock()
}
