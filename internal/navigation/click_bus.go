package navigation

import "sync"

// ClickEvent is a click anywhere on the page. Inside is true when it
// landed on the profile menu itself. SessionKey scopes the click to one
// session's page; empty reaches every subscriber.
type ClickEvent struct {
	SessionKey string
	Target     string
	Inside     bool
}

// ClickBus fans page clicks out to subscribers. Subscriptions are scoped:
// Subscribe returns the release func that must run on teardown.
type ClickBus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(ClickEvent)
}

func NewClickBus() *ClickBus {
	return &ClickBus{subs: make(map[int]func(ClickEvent))}
}

// Subscribe registers fn and returns an idempotent release func.
func (b *ClickBus) Subscribe(fn func(ClickEvent)) (release func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

func (b *ClickBus) Publish(ev ClickEvent) {
	b.mu.Lock()
	handlers := make([]func(ClickEvent), 0, len(b.subs))
	for _, fn := range b.subs {
		handlers = append(handlers, fn)
	}
	b.mu.Unlock()

	for _, fn := range handlers {
		fn(ev)
	}
}

func (b *ClickBus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
