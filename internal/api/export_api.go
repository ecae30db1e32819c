package api

import (
	"fmt"
	"net/http"
	"time"

	"stayline/internal/export"
	"stayline/internal/metrics"
)

// handleBookingsExport streams an xlsx report of a hotel's bookings.
// GET /api/v1/hotels/{id}/bookings/export
func (s *HTTPServer) handleBookingsExport(w http.ResponseWriter, r *http.Request, hotelID string) {
	metrics.IncHTTP("bookings_export")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	bookings, err := s.db.ListBookings(r.Context(), hotelID, r.URL.Query().Get("status"))
	if err != nil {
		s.log.Error().Err(err).Str("hotel_id", hotelID).Msg("load bookings for export")
		writeError(w, http.StatusInternalServerError, "failed to load bookings")
		return
	}

	filename := fmt.Sprintf("bookings_%s_%s.xlsx", hotelID, time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.WriteBookingsReport(w, hotelID, bookings); err != nil {
		s.log.Error().Err(err).Str("hotel_id", hotelID).Msg("write bookings report")
	}
}
