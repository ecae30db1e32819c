package calendar

import (
	"testing"
	"time"

	"stayline/internal/models"
)

func date(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func stay(id string, checkIn, checkOut time.Time) models.BookingRecord {
	return models.BookingRecord{
		ID:        id,
		GuestName: "Guest " + id,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Status:    models.StatusConfirmed,
	}
}

func TestClassify(t *testing.T) {
	booking := stay("b1", date(2025, 5, 15), date(2025, 5, 20))

	tests := []struct {
		name      string
		queryDate time.Time
		checkIns  int
		checkOuts int
		active    int
	}{
		{"check-in day", date(2025, 5, 15), 1, 0, 0},
		{"mid-stay", date(2025, 5, 17), 0, 0, 1},
		{"check-out day", date(2025, 5, 20), 0, 1, 0},
		{"day before stay", date(2025, 5, 14), 0, 0, 0},
		{"day after stay", date(2025, 5, 21), 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify([]models.BookingRecord{booking}, tt.queryDate)

			if len(result.CheckIns) != tt.checkIns {
				t.Errorf("expected %d check-ins, got %d", tt.checkIns, len(result.CheckIns))
			}
			if len(result.CheckOuts) != tt.checkOuts {
				t.Errorf("expected %d check-outs, got %d", tt.checkOuts, len(result.CheckOuts))
			}
			if len(result.Active) != tt.active {
				t.Errorf("expected %d active, got %d", tt.active, len(result.Active))
			}
		})
	}
}

func TestClassify_DisjointSets(t *testing.T) {
	bookings := []models.BookingRecord{
		stay("b1", date(2025, 5, 15), date(2025, 5, 20)),
		stay("b2", date(2025, 5, 10), date(2025, 5, 15)),
		stay("b3", date(2025, 5, 12), date(2025, 5, 18)),
		stay("b4", date(2025, 5, 1), date(2025, 5, 5)),
	}

	for d := date(2025, 5, 1); !d.After(date(2025, 5, 25)); d = d.AddDate(0, 0, 1) {
		result := Classify(bookings, d)

		seen := make(map[string]int)
		for _, b := range result.CheckIns {
			seen[b.ID]++
		}
		for _, b := range result.CheckOuts {
			seen[b.ID]++
		}
		for _, b := range result.Active {
			seen[b.ID]++
		}

		for id, count := range seen {
			if count > 1 {
				t.Errorf("booking %s appears in %d sets on %s", id, count, d.Format("2006-01-02"))
			}
		}
	}
}

func TestClassify_TimeOfDayNormalized(t *testing.T) {
	// Mid-day check-in timestamp still counts as checking in for the
	// whole date.
	booking := stay("b1",
		time.Date(2025, 5, 15, 14, 30, 0, 0, time.UTC),
		time.Date(2025, 5, 20, 11, 0, 0, 0, time.UTC),
	)

	result := Classify([]models.BookingRecord{booking}, date(2025, 5, 15))
	if len(result.CheckIns) != 1 {
		t.Errorf("expected mid-day check-in to classify on the date, got %d check-ins", len(result.CheckIns))
	}

	result = Classify([]models.BookingRecord{booking}, date(2025, 5, 20))
	if len(result.CheckOuts) != 1 {
		t.Errorf("expected mid-day check-out to classify on the date, got %d check-outs", len(result.CheckOuts))
	}
}

func TestClassify_MalformedRecordsSkipped(t *testing.T) {
	bookings := []models.BookingRecord{
		stay("good", date(2025, 5, 15), date(2025, 5, 20)),
		stay("inverted", date(2025, 5, 20), date(2025, 5, 15)),
		stay("zero-length", date(2025, 5, 15), date(2025, 5, 15)),
	}

	result := Classify(bookings, date(2025, 5, 15))

	if result.Skipped != 2 {
		t.Errorf("expected 2 skipped records, got %d", result.Skipped)
	}
	if len(result.CheckIns) != 1 || result.CheckIns[0].ID != "good" {
		t.Errorf("expected only the valid record to classify, got %v", result.CheckIns)
	}
	if len(result.CheckOuts) != 0 || len(result.Active) != 0 {
		t.Error("malformed records must not appear in any set")
	}
}

func TestClassify_Idempotent(t *testing.T) {
	bookings := []models.BookingRecord{
		stay("b1", date(2025, 5, 15), date(2025, 5, 20)),
		stay("b2", date(2025, 5, 16), date(2025, 5, 19)),
	}
	query := date(2025, 5, 17)

	first := Classify(bookings, query)
	second := Classify(bookings, query)

	if len(first.CheckIns) != len(second.CheckIns) ||
		len(first.CheckOuts) != len(second.CheckOuts) ||
		len(first.Active) != len(second.Active) ||
		first.Skipped != second.Skipped {
		t.Error("repeated classification of identical inputs diverged")
	}
	for i := range first.Active {
		if first.Active[i].ID != second.Active[i].ID {
			t.Error("active set order diverged between identical calls")
		}
	}
}

func TestClassify_EmptyBookings(t *testing.T) {
	result := Classify(nil, date(2025, 5, 15))

	if result.CheckIns == nil || result.CheckOuts == nil || result.Active == nil {
		t.Error("result sets must be empty, not nil")
	}
	if len(result.CheckIns)+len(result.CheckOuts)+len(result.Active) != 0 {
		t.Error("expected no classifications for empty input")
	}
}

func TestOccupancyRange(t *testing.T) {
	bookings := []models.BookingRecord{
		stay("b1", date(2025, 5, 15), date(2025, 5, 20)),
		stay("b2", date(2025, 5, 16), date(2025, 5, 18)),
	}

	counts := OccupancyRange(bookings, date(2025, 5, 14), date(2025, 5, 21))
	if len(counts) != 8 {
		t.Fatalf("expected 8 days, got %d", len(counts))
	}

	byDate := make(map[string]DayCount, len(counts))
	for _, c := range counts {
		byDate[c.Date] = c
	}

	checks := []struct {
		date      string
		checkIns  int
		checkOuts int
		active    int
	}{
		{"2025-05-14", 0, 0, 0},
		{"2025-05-15", 1, 0, 0},
		{"2025-05-16", 1, 0, 1},
		{"2025-05-17", 0, 0, 2},
		{"2025-05-18", 0, 1, 1},
		{"2025-05-20", 0, 1, 0},
		{"2025-05-21", 0, 0, 0},
	}

	for _, c := range checks {
		got := byDate[c.date]
		if got.CheckIns != c.checkIns || got.CheckOuts != c.checkOuts || got.Active != c.active {
			t.Errorf("%s: got %+v, want ins=%d outs=%d active=%d",
				c.date, got, c.checkIns, c.checkOuts, c.active)
		}
	}
}
