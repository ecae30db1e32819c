package models

// RoomTypeOffer represents a bookable room category at a hotel, as
// supplied by the room catalog. Immutable for one booking session.
type RoomTypeOffer struct {
	ID           string  `json:"id"`
	HotelID      string  `json:"hotel_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	UnitPrice    float64 `json:"room_fee"`
	MaxOccupancy int     `json:"max_occupancy"`
	Currency     string  `json:"currency"`
}
