package events

import (
	"sync"
)

// Publisher is implemented by the bus; services depend on this side only
type Publisher interface {
	Publish(evt Event)
}

// Handler receives events. It runs on the publisher's goroutine and must not block.
type Handler func(evt Event)

// Subscriber registers handlers. The returned func unsubscribes and is idempotent.
type Subscriber interface {
	Subscribe(topic string, h Handler) (unsubscribe func())
}

type subscription struct {
	id      uint64
	handler Handler
}

// Bus is a synchronous in-process bus
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string][]subscription
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string][]subscription)}
}

// Publish delivers evt to every handler of its topic
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[evt.Topic()]))
	for _, s := range b.subs[evt.Topic()] {
		handlers = append(handlers, s.handler)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(evt)
	}
}

func (b *Bus) Subscribe(topic string, h Handler) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription{id: id, handler: h})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(topic, id) })
	}
}

func (b *Bus) remove(topic string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[topic]
	for i, s := range subs {
		if s.id == id {
			b.subs[topic] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.subs[topic]) == 0 {
		delete(b.subs, topic)
	}
}

// Subscribers returns the handler count of topic
func (b *Bus) Subscribers(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}

// SessionFilter wraps h so it only sees events of one session
func SessionFilter(sessionID string, h Handler) Handler {
	return func(evt Event) {
		if evt.Session() == sessionID {
			h(evt)
		}
	}
}
