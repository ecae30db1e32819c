// Package events provides in-process pub/sub for booking lifecycle
// events. Handlers run synchronously; the caller decides the
// concurrency model.
package events

import (
	"sync"
	"time"

	"stayline/internal/models"
)

// Event types published by the API layer.
const (
	BookingCreated  = "booking.created"
	BookingCanceled = "booking.canceled"
)

// Event carries a booking lifecycle change.
type Event struct {
	Type      string
	Booking   models.BookingRecord
	CreatedAt time.Time
}

// Handler reacts to an event.
type Handler func(event Event) error

// Bus is an in-process event bus.
type Bus struct {
	subscribers map[string][]Handler
	mu          sync.RWMutex
}

// NewBus constructs an empty bus.
func NewBus() *Bus {
	return &Bus{subscribers: make(map[string][]Handler)}
}

// Subscribe registers a handler for a given event type.
func (b *Bus) Subscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish notifies subscribers of the event type.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.subscribers[event.Type]...)
	b.mu.RUnlock()

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	for _, handler := range handlers {
		_ = handler(event)
	}
}
