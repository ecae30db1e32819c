package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"stayline/internal/booking"
	"stayline/internal/database"
	"stayline/internal/events"
	"stayline/internal/metrics"
	"stayline/internal/models"
)

// RoomSelection is one room-type quantity in a booking request.
type RoomSelection struct {
	RoomTypeID string `json:"room_type_id"`
	Quantity   int    `json:"quantity"`
}

// CreateBookingRequest is the request body for POST /api/v1/bookings.
type CreateBookingRequest struct {
	HotelID   string          `json:"hotel_id"`
	GuestName string          `json:"guest_name"`
	CheckIn   string          `json:"check_in"`  // Format: YYYY-MM-DD
	CheckOut  string          `json:"check_out"` // Format: YYYY-MM-DD
	Adults    int             `json:"adults"`
	Children  int             `json:"children"`
	Rooms     []RoomSelection `json:"rooms"`
}

// CreateBookingResponse is the response for POST /api/v1/bookings.
type CreateBookingResponse struct {
	ID           string             `json:"id,omitempty"`
	RoomSubtotal float64            `json:"room_subtotal"`
	ServiceFee   float64            `json:"service_fee"`
	GrandTotal   float64            `json:"grand_total"`
	Nights       int                `json:"nights"`
	Currency     string             `json:"currency"`
	LineItems    []booking.LineItem `json:"line_items,omitempty"`
	Failures     []booking.Failure  `json:"failures,omitempty"`
}

// handleBookings lists or creates bookings.
// GET  /api/v1/bookings?hotel_id=...&status=...
// POST /api/v1/bookings
func (s *HTTPServer) handleBookings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListBookings(w, r)
	case http.MethodPost:
		s.handleCreateBooking(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) handleListBookings(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("list_bookings")

	hotelID := r.URL.Query().Get("hotel_id")
	if hotelID == "" {
		writeError(w, http.StatusBadRequest, "hotel_id is required")
		return
	}
	status := r.URL.Query().Get("status")

	bookings, err := s.db.ListBookings(r.Context(), hotelID, status)
	if err != nil {
		s.log.Error().Err(err).Str("hotel_id", hotelID).Msg("list bookings")
		writeError(w, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	if bookings == nil {
		bookings = []models.BookingRecord{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

func (s *HTTPServer) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("create_booking")

	var req CreateBookingRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.HotelID == "" {
		writeError(w, http.StatusBadRequest, "hotel_id is required")
		return
	}
	if req.GuestName == "" {
		writeError(w, http.StatusBadRequest, "guest_name is required")
		return
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckIn)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid check_in format; expected YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOut)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid check_out format; expected YYYY-MM-DD")
		return
	}

	// Rebuild the draft server-side: unit prices come from the catalog,
	// never from the client.
	draft := booking.NewDraft(req.HotelID, s.cfg.Booking.ServiceFee, s.cfg.Booking.Currency)
	draft.Adults = req.Adults
	draft.Children = req.Children
	draft.SetDates(checkIn, checkOut)

	for _, sel := range req.Rooms {
		offer, err := s.catalog.GetRoom(r.Context(), req.HotelID, sel.RoomTypeID)
		if err != nil {
			s.log.Error().Err(err).Str("room_type_id", sel.RoomTypeID).Msg("resolve room type")
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown room type %q", sel.RoomTypeID))
			return
		}
		draft.SetQuantity(*offer, sel.Quantity)
	}

	if result := draft.Validate(); !result.OK() {
		for _, f := range result.Failures {
			metrics.IncValidationFailed(f.Code)
		}
		writeJSON(w, http.StatusUnprocessableEntity, CreateBookingResponse{
			RoomSubtotal: draft.RoomSubtotal(),
			ServiceFee:   draft.ServiceFee,
			GrandTotal:   draft.GrandTotal(),
			Nights:       draft.Nights(),
			Currency:     draft.Currency,
			Failures:     result.Failures,
		})
		return
	}

	record := &models.BookingRecord{
		ID:          uuid.NewString(),
		HotelID:     req.HotelID,
		GuestName:   req.GuestName,
		CheckIn:     draft.CheckIn,
		CheckOut:    draft.CheckOut,
		RoomType:    summarizeRooms(draft.LineItems()),
		Adults:      draft.Adults,
		Children:    draft.Children,
		TotalAmount: draft.GrandTotal(),
		Status:      models.StatusPending,
	}

	if err := s.db.CreateBooking(r.Context(), record); err != nil {
		s.log.Error().Err(err).Str("hotel_id", req.HotelID).Msg("create booking")
		writeError(w, http.StatusInternalServerError, "failed to create booking")
		return
	}

	metrics.IncBookingCreated(record.Status)
	s.bus.Publish(events.Event{Type: events.BookingCreated, Booking: *record})

	s.log.Info().
		Str("booking_id", record.ID).
		Str("hotel_id", record.HotelID).
		Float64("grand_total", record.TotalAmount).
		Int("nights", draft.Nights()).
		Msg("booking created")

	writeJSON(w, http.StatusCreated, CreateBookingResponse{
		ID:           record.ID,
		RoomSubtotal: draft.RoomSubtotal(),
		ServiceFee:   draft.ServiceFee,
		GrandTotal:   draft.GrandTotal(),
		Nights:       draft.Nights(),
		Currency:     draft.Currency,
		LineItems:    draft.LineItems(),
	})
}

// handleBookingByID fetches or cancels a single booking.
// GET    /api/v1/bookings/{id}
// DELETE /api/v1/bookings/{id}
func (s *HTTPServer) handleBookingByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/bookings/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		metrics.IncHTTP("get_booking")
		b, err := s.db.GetBooking(r.Context(), id)
		if errors.Is(err, database.ErrNotFound) {
			writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		if err != nil {
			s.log.Error().Err(err).Str("booking_id", id).Msg("get booking")
			writeError(w, http.StatusInternalServerError, "failed to get booking")
			return
		}
		writeJSON(w, http.StatusOK, b)

	case http.MethodDelete:
		metrics.IncHTTP("cancel_booking")
		if err := s.db.UpdateBookingStatus(r.Context(), id, models.StatusCanceled); err != nil {
			switch {
			case errors.Is(err, database.ErrNotFound):
				writeError(w, http.StatusNotFound, "booking not found")
			case errors.Is(err, database.ErrInvalidTransition):
				writeError(w, http.StatusConflict, "booking cannot be canceled")
			default:
				s.log.Error().Err(err).Str("booking_id", id).Msg("cancel booking")
				writeError(w, http.StatusInternalServerError, "failed to cancel booking")
			}
			return
		}

		metrics.IncBookingCancelled()
		if b, err := s.db.GetBooking(r.Context(), id); err == nil {
			s.bus.Publish(events.Event{Type: events.BookingCanceled, Booking: *b})
		}

		s.log.Info().Str("booking_id", id).Msg("booking canceled")
		writeJSON(w, http.StatusOK, map[string]any{"success": true})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// summarizeRooms renders line items as "2× Standard, 1× Deluxe".
func summarizeRooms(items []booking.LineItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		name := item.RoomName
		if name == "" {
			name = item.RoomTypeID
		}
		parts = append(parts, fmt.Sprintf("%d× %s", item.Quantity, name))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
