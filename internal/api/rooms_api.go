package api

import (
	"net/http"

	"stayline/internal/metrics"
)

// handleHotelRooms returns the room-type offers for a hotel.
// GET /api/v1/hotels/{id}/rooms
func (s *HTTPServer) handleHotelRooms(w http.ResponseWriter, r *http.Request, hotelID string) {
	metrics.IncHTTP("hotel_rooms")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rooms, err := s.catalog.ListRooms(r.Context(), hotelID)
	if err != nil {
		s.log.Error().Err(err).Str("hotel_id", hotelID).Msg("list rooms")
		writeError(w, http.StatusBadGateway, "room catalog unavailable")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"rooms": rooms})
}
