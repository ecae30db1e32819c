// Package calendar answers "what is happening on date D" queries against
// a list of bookings, for occupancy rendering on the dashboard.
package calendar

import (
	"time"

	"stayline/internal/dateutil"
	"stayline/internal/models"
)

// DateClassification partitions the bookings relevant to one calendar
// date into three disjoint sets. Skipped counts records with an
// inverted date range that cannot be placed on a calendar.
type DateClassification struct {
	Date      time.Time              `json:"date"`
	CheckIns  []models.BookingRecord `json:"check_ins"`
	CheckOuts []models.BookingRecord `json:"check_outs"`
	Active    []models.BookingRecord `json:"active"`
	Skipped   int                    `json:"skipped,omitempty"`
}

// Classify determines, for each booking, whether it checks in, checks
// out or is mid-stay on the query date. Comparison is at day
// granularity. Malformed records (check-out on or before check-in) are
// excluded from all three sets and counted in Skipped. Pure function of
// its inputs.
func Classify(bookings []models.BookingRecord, queryDate time.Time) DateClassification {
	date := dateutil.Day(queryDate)
	result := DateClassification{
		Date:      date,
		CheckIns:  []models.BookingRecord{},
		CheckOuts: []models.BookingRecord{},
		Active:    []models.BookingRecord{},
	}

	for _, b := range bookings {
		if !b.HasValidRange() {
			result.Skipped++
			continue
		}

		switch {
		case dateutil.SameDay(b.CheckIn, date):
			result.CheckIns = append(result.CheckIns, b)
		case dateutil.SameDay(b.CheckOut, date):
			result.CheckOuts = append(result.CheckOuts, b)
		case b.ContainsDate(date):
			result.Active = append(result.Active, b)
		}
	}

	return result
}

// DayCount summarizes occupancy for one date.
type DayCount struct {
	Date      string `json:"date"`
	CheckIns  int    `json:"check_ins"`
	CheckOuts int    `json:"check_outs"`
	Active    int    `json:"active"`
}

// OccupancyRange classifies every date from start to end inclusive and
// returns per-date counts. Recomputed on demand; stays are short enough
// that the linear scan is negligible.
func OccupancyRange(bookings []models.BookingRecord, start, end time.Time) []DayCount {
	days := dateutil.ExpandRange(start, end)
	counts := make([]DayCount, 0, len(days))
	for _, day := range days {
		c := Classify(bookings, day)
		counts = append(counts, DayCount{
			Date:      day.Format("2006-01-02"),
			CheckIns:  len(c.CheckIns),
			CheckOuts: len(c.CheckOuts),
			Active:    len(c.Active),
		})
	}
	return counts
}
