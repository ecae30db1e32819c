// Package api exposes the booking service over REST for the mobile app
// and the property-management dashboard.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"stayline/internal/config"
	"stayline/internal/database"
	"stayline/internal/events"
	"stayline/internal/models"
)

// RoomCatalog supplies room-type offers from the external catalog.
type RoomCatalog interface {
	ListRooms(ctx context.Context, hotelID string) ([]models.RoomTypeOffer, error)
	GetRoom(ctx context.Context, hotelID, roomTypeID string) (*models.RoomTypeOffer, error)
}

// HTTPServer handles the REST API.
type HTTPServer struct {
	db      *database.DB
	catalog RoomCatalog
	bus     *events.Bus
	cfg     *config.Config
	log     *zerolog.Logger
}

// NewHTTPServer creates the API server.
func NewHTTPServer(db *database.DB, catalog RoomCatalog, bus *events.Bus, cfg *config.Config, log *zerolog.Logger) *HTTPServer {
	return &HTTPServer{
		db:      db,
		catalog: catalog,
		bus:     bus,
		cfg:     cfg,
		log:     log,
	}
}

// Handler returns the routing handler.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/bookings", s.handleBookings)
	mux.HandleFunc("/api/v1/bookings/", s.handleBookingByID)
	mux.HandleFunc("/api/v1/hotels/", s.handleHotels)
	return mux
}

// handleHotels dispatches /api/v1/hotels/{id}/<resource> requests.
func (s *HTTPServer) handleHotels(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/hotels/")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	hotelID, resource := parts[0], parts[1]

	switch resource {
	case "rooms":
		s.handleHotelRooms(w, r, hotelID)
	case "calendar":
		s.handleHotelCalendar(w, r, hotelID)
	case "occupancy":
		s.handleHotelOccupancy(w, r, hotelID)
	case "bookings/export":
		s.handleBookingsExport(w, r, hotelID)
	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
