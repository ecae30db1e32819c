// Package dateutil provides day-granularity date helpers shared by the
// booking and calendar packages.
package dateutil

import "time"

// Day truncates t to midnight in its own location, dropping the
// time-of-day component.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// ExpandRange returns every calendar date from start to end inclusive,
// one day at a time. Returns nil when start is after end.
func ExpandRange(start, end time.Time) []time.Time {
	from := Day(start)
	to := Day(end)
	if from.After(to) {
		return nil
	}

	days := make([]time.Time, 0, int(to.Sub(from).Hours()/24)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// NightsBetween returns the number of nights between check-in and
// check-out at day granularity. Zero or negative means an invalid stay.
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(Day(checkOut).Sub(Day(checkIn)).Hours() / 24)
}
