package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayline",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by handler.",
		},
		[]string{"handler"},
	)

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayline",
			Name:      "booking_created_total",
			Help:      "Count of bookings created by status.",
		},
		[]string{"status"},
	)

	bookingCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stayline",
			Name:      "booking_cancelled_total",
			Help:      "Count of bookings cancelled.",
		},
	)

	validationFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayline",
			Name:      "booking_validation_failed_total",
			Help:      "Count of booking draft validation failures by code.",
		},
		[]string{"code"},
	)

	calendarQueries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stayline",
			Name:      "calendar_queries_total",
			Help:      "Count of occupancy calendar queries.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingCreated, bookingCancelled, validationFailed, calendarQueries)
	})
}

func IncHTTP(handler string) {
	httpRequests.WithLabelValues(handler).Inc()
}

func IncBookingCreated(status string) {
	bookingCreated.WithLabelValues(status).Inc()
}

func IncBookingCancelled() {
	bookingCancelled.Inc()
}

func IncValidationFailed(code string) {
	validationFailed.WithLabelValues(code).Inc()
}

func IncCalendarQuery() {
	calendarQueries.Inc()
}
