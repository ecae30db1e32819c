package models

import (
	"time"

	"stayline/internal/dateutil"
)

// Booking status values.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCanceled   = "canceled"
)

// BookingRecord represents a confirmed or pending hotel reservation.
type BookingRecord struct {
	ID          string    `json:"id"`
	HotelID     string    `json:"hotel_id"`
	GuestName   string    `json:"guest_name"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	RoomType    string    `json:"room_type"`
	RoomNumber  string    `json:"room_number,omitempty"`
	Adults      int       `json:"adults"`
	Children    int       `json:"children"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasValidRange reports whether check-out is strictly after check-in at
// day granularity. Records failing this cannot be placed on a calendar.
func (b *BookingRecord) HasValidRange() bool {
	return dateutil.Day(b.CheckOut).After(dateutil.Day(b.CheckIn))
}

// ContainsDate checks if the booking stay covers a specific date,
// endpoints included. Time-of-day components are ignored.
func (b *BookingRecord) ContainsDate(date time.Time) bool {
	d := dateutil.Day(date)
	return !d.Before(dateutil.Day(b.CheckIn)) && !d.After(dateutil.Day(b.CheckOut))
}

// Nights returns the stay length in nights.
func (b *BookingRecord) Nights() int {
	return dateutil.NightsBetween(b.CheckIn, b.CheckOut)
}

// IsActive reports whether the booking still occupies a room: canceled
// and checked-out stays do not.
func (b *BookingRecord) IsActive() bool {
	return b.Status != StatusCanceled && b.Status != StatusCheckedOut
}

// ValidStatusTransition reports whether a booking may move from one
// status to another.
func ValidStatusTransition(from, to string) bool {
	allowed, ok := statusTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

var statusTransitions = map[string][]string{
	StatusPending:    {StatusConfirmed, StatusCanceled},
	StatusConfirmed:  {StatusCheckedIn, StatusCanceled},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {},
	StatusCanceled:   {},
}
