package events

import (
	"sync"
	"time"
)

type subscriber struct {
	id      uint64
	handler Handler
}

// EventBus is an in-process publish/subscribe bus.
type EventBus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[EventType][]subscriber
	wg       sync.WaitGroup
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]subscriber),
	}
}

// Publish delivers event to every subscriber of its type. Handlers run asynchronously.
func (eb *EventBus) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	eb.mu.RLock()
	defer eb.mu.RUnlock()

	for _, sub := range eb.handlers[event.Type] {
		eb.wg.Add(1)
		go func(h Handler) {
			defer eb.wg.Done()
			h(event)
		}(sub.handler)
	}
}

// Subscribe registers handler for eventType.
func (eb *EventBus) Subscribe(eventType EventType, handler Handler) Subscription {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.nextID++
	eb.handlers[eventType] = append(eb.handlers[eventType], subscriber{id: eb.nextID, handler: handler})
	return Subscription{EventType: eventType, id: eb.nextID}
}

// Unsubscribe removes a handler registered by Subscribe.
func (eb *EventBus) Unsubscribe(sub Subscription) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.handlers[sub.EventType]
	for i, s := range subs {
		if s.id == sub.id {
			eb.handlers[sub.EventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Wait blocks until every handler started so far has returned.
func (eb *EventBus) Wait() {
	eb.wg.Wait()
}
