// Package booking implements the in-progress booking draft: per-room-type
// quantity selections, derived totals and pre-submission validation.
package booking

import (
	"math"
	"time"

	"stayline/internal/dateutil"
	"stayline/internal/models"
)

// LineItem is one room-type's selection within a draft. UnitPrice is
// snapshotted from the catalog offer at selection time.
type LineItem struct {
	RoomTypeID string  `json:"room_type_id"`
	RoomName   string  `json:"room_name,omitempty"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	Subtotal   float64 `json:"subtotal"`
}

// Draft is the mutable client-local reservation before submission.
// Totals are always recomputed from the line items, never stored.
type Draft struct {
	HotelID    string
	CheckIn    time.Time
	CheckOut   time.Time
	Adults     int
	Children   int
	ServiceFee float64
	Currency   string

	items map[string]*LineItem
}

// NewDraft creates a draft for a hotel with the given service fee and
// currency, checking in tomorrow for one night by default.
func NewDraft(hotelID string, serviceFee float64, currency string) *Draft {
	checkIn := dateutil.Day(time.Now()).AddDate(0, 0, 1)
	return &Draft{
		HotelID:    hotelID,
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 1),
		Adults:     1,
		ServiceFee: serviceFee,
		Currency:   currency,
		items:      make(map[string]*LineItem),
	}
}

// SetQuantity updates or inserts the selection for a room type.
// Negative quantities clamp to zero. The line subtotal is recomputed
// with half-up rounding to two decimals.
func (d *Draft) SetQuantity(offer models.RoomTypeOffer, quantity int) {
	if quantity < 0 {
		quantity = 0
	}

	item, ok := d.items[offer.ID]
	if !ok {
		item = &LineItem{
			RoomTypeID: offer.ID,
			RoomName:   offer.Name,
			UnitPrice:  offer.UnitPrice,
		}
		d.items[offer.ID] = item
	}
	item.Quantity = quantity
	item.Subtotal = round2(float64(quantity) * item.UnitPrice)
}

// Quantity returns the selected quantity for a room type, zero when the
// room type was never selected.
func (d *Draft) Quantity(roomTypeID string) int {
	if item, ok := d.items[roomTypeID]; ok {
		return item.Quantity
	}
	return 0
}

// LineItems returns the current selections with non-zero quantity.
func (d *Draft) LineItems() []LineItem {
	items := make([]LineItem, 0, len(d.items))
	for _, item := range d.items {
		if item.Quantity > 0 {
			items = append(items, *item)
		}
	}
	return items
}

// RoomSubtotal sums the line subtotals across all selections.
func (d *Draft) RoomSubtotal() float64 {
	var sum float64
	for _, item := range d.items {
		sum += item.Subtotal
	}
	return round2(sum)
}

// GrandTotal is the room subtotal plus the fixed service fee.
func (d *Draft) GrandTotal() float64 {
	return round2(d.RoomSubtotal() + d.ServiceFee)
}

// SetDates updates the stay dates. A check-out on or before check-in is
// silently replaced with check-in plus one night; the stay is always at
// least one night and the caller never sees an error.
func (d *Draft) SetDates(checkIn, checkOut time.Time) {
	d.CheckIn = dateutil.Day(checkIn)
	out := dateutil.Day(checkOut)
	if !out.After(d.CheckIn) {
		out = d.CheckIn.AddDate(0, 0, 1)
	}
	d.CheckOut = out
}

// Nights returns the stay length in nights, at least 1 once the dates
// pass validation.
func (d *Draft) Nights() int {
	return dateutil.NightsBetween(d.CheckIn, d.CheckOut)
}

func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
