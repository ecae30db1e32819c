package api

import (
	"fmt"
	"net/http"
	"time"

	"stayline/internal/calendar"
	"stayline/internal/dateutil"
	"stayline/internal/metrics"
)

// handleHotelCalendar classifies a hotel's bookings for one date.
// GET /api/v1/hotels/{id}/calendar?date=YYYY-MM-DD
func (s *HTTPServer) handleHotelCalendar(w http.ResponseWriter, r *http.Request, hotelID string) {
	metrics.IncHTTP("hotel_calendar")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	dateStr := r.URL.Query().Get("date")
	var date time.Time
	var err error
	if dateStr != "" {
		date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date format; expected YYYY-MM-DD")
			return
		}
	} else {
		date = time.Now()
	}
	date = dateutil.Day(date)

	// Only stays touching the query date matter; the classifier does
	// the exact partitioning.
	bookings, err := s.db.ListBookingsInRange(r.Context(), hotelID, date, date)
	if err != nil {
		s.log.Error().Err(err).Str("hotel_id", hotelID).Msg("load bookings for calendar")
		writeError(w, http.StatusInternalServerError, "failed to load bookings")
		return
	}

	metrics.IncCalendarQuery()
	result := calendar.Classify(bookings, date)
	if result.Skipped > 0 {
		s.log.Warn().
			Int("skipped", result.Skipped).
			Str("hotel_id", hotelID).
			Str("date", date.Format("2006-01-02")).
			Msg("malformed booking records excluded from calendar")
	}

	writeJSON(w, http.StatusOK, result)
}

// handleHotelOccupancy returns per-date occupancy counts over a range.
// GET /api/v1/hotels/{id}/occupancy?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
func (s *HTTPServer) handleHotelOccupancy(w http.ResponseWriter, r *http.Request, hotelID string) {
	metrics.IncHTTP("hotel_occupancy")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	start, end, err := s.parseOccupancyRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bookings, err := s.db.ListBookingsInRange(r.Context(), hotelID, start, end)
	if err != nil {
		s.log.Error().Err(err).Str("hotel_id", hotelID).Msg("load bookings for occupancy")
		writeError(w, http.StatusInternalServerError, "failed to load bookings")
		return
	}

	metrics.IncCalendarQuery()
	counts := calendar.OccupancyRange(bookings, start, end)

	response := map[string]any{"days": counts}
	writeJSON(w, http.StatusOK, response)
}

func (s *HTTPServer) parseOccupancyRange(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start_date")
	endStr := r.URL.Query().Get("end_date")
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date and end_date are required")
	}

	start, err = time.Parse("2006-01-02", startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date format; expected YYYY-MM-DD")
	}
	end, err = time.Parse("2006-01-02", endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date format; expected YYYY-MM-DD")
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date must be before or equal to end_date")
	}

	maxDays := s.cfg.Booking.MaxCalendarDays
	if days := dateutil.NightsBetween(start, end); days > maxDays {
		return time.Time{}, time.Time{}, fmt.Errorf("date range exceeds maximum of %d days", maxDays)
	}

	return start, end, nil
}
