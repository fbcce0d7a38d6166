package messaging

import (
	"sync"
)

// Bus is an in-process publish/subscribe hub. Handlers run synchronously on
// the publishing goroutine, so a subscriber sees messages in publish order.
type Bus struct {
	mu     sync.RWMutex
	nextId int
	subs   map[string]map[int]func(data []byte)
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[string]map[int]func(data []byte)),
	}
}

// Subscribe registers handler for subject. The returned func removes it.
func (b *Bus) Subscribe(subject string, handler func(data []byte)) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextId
	b.nextId++
	if b.subs[subject] == nil {
		b.subs[subject] = make(map[int]func(data []byte))
	}
	b.subs[subject][id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[subject], id)
		if len(b.subs[subject]) == 0 {
			delete(b.subs, subject)
		}
	}, nil
}

// Publish delivers data to every handler subscribed to subject. Publishing
// to a subject nobody listens on is not an error.
func (b *Bus) Publish(subject string, data []byte) error {
	b.mu.RLock()
	handlers := make([]func(data []byte), 0, len(b.subs[subject]))
	for _, h := range b.subs[subject] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(data)
	}
	return nil
}
