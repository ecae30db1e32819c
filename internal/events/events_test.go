package events

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"stayline/internal/models"
)

func TestBusPublishSubscribe(t *testing.T) {
	bus := NewBus()

	var created, canceled int
	bus.Subscribe(BookingCreated, func(e Event) error {
		created++
		return nil
	})
	bus.Subscribe(BookingCreated, func(e Event) error {
		created++
		return nil
	})
	bus.Subscribe(BookingCanceled, func(e Event) error {
		canceled++
		return nil
	})

	bus.Publish(Event{Type: BookingCreated, Booking: models.BookingRecord{ID: "b1"}})

	assert.Equal(t, 2, created, "both created handlers should fire")
	assert.Equal(t, 0, canceled)
}

func TestBusHandlerErrorsDoNotStopOthers(t *testing.T) {
	bus := NewBus()

	var reached bool
	bus.Subscribe(BookingCanceled, func(e Event) error {
		return errors.New("boom")
	})
	bus.Subscribe(BookingCanceled, func(e Event) error {
		reached = true
		return nil
	})

	bus.Publish(Event{Type: BookingCanceled})
	assert.True(t, reached)
}

func TestBusStampsCreatedAt(t *testing.T) {
	bus := NewBus()

	bus.Subscribe(BookingCreated, func(e Event) error {
		assert.False(t, e.CreatedAt.IsZero())
		return nil
	})
	bus.Publish(Event{Type: BookingCreated})
}
