package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayline/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func sampleBooking(id, hotelID string) *models.BookingRecord {
	return &models.BookingRecord{
		ID:          id,
		HotelID:     hotelID,
		GuestName:   "Ada Obi",
		CheckIn:     day(2025, 5, 15),
		CheckOut:    day(2025, 5, 20),
		RoomType:    "2× Standard",
		Adults:      2,
		TotalAmount: 190000,
		Status:      models.StatusPending,
	}
}

func TestCreateAndGetBooking(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	b := sampleBooking("b1", "hotel-1")
	require.NoError(t, db.CreateBooking(ctx, b))

	got, err := db.GetBooking(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Ada Obi", got.GuestName)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, 190000.0, got.TotalAmount)
	assert.True(t, got.CheckIn.Equal(day(2025, 5, 15)))
	assert.True(t, got.CheckOut.Equal(day(2025, 5, 20)))
}

func TestGetBookingNotFound(t *testing.T) {
	db := testDB(t)

	_, err := db.GetBooking(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListBookings(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	require.NoError(t, db.CreateBooking(ctx, sampleBooking("b1", "hotel-1")))
	require.NoError(t, db.CreateBooking(ctx, sampleBooking("b2", "hotel-1")))
	require.NoError(t, db.CreateBooking(ctx, sampleBooking("b3", "hotel-2")))

	bookings, err := db.ListBookings(ctx, "hotel-1", "")
	require.NoError(t, err)
	assert.Len(t, bookings, 2)

	require.NoError(t, db.UpdateBookingStatus(ctx, "b1", models.StatusConfirmed))

	confirmed, err := db.ListBookings(ctx, "hotel-1", models.StatusConfirmed)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, "b1", confirmed[0].ID)
}

func TestListBookingsInRange(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	early := sampleBooking("early", "hotel-1")
	early.CheckIn = day(2025, 5, 1)
	early.CheckOut = day(2025, 5, 5)
	require.NoError(t, db.CreateBooking(ctx, early))

	mid := sampleBooking("mid", "hotel-1")
	require.NoError(t, db.CreateBooking(ctx, mid))

	canceled := sampleBooking("canceled", "hotel-1")
	require.NoError(t, db.CreateBooking(ctx, canceled))
	require.NoError(t, db.UpdateBookingStatus(ctx, "canceled", models.StatusCanceled))

	bookings, err := db.ListBookingsInRange(ctx, "hotel-1", day(2025, 5, 15), day(2025, 5, 15))
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "mid", bookings[0].ID)

	// Range touching only the early stay.
	bookings, err = db.ListBookingsInRange(ctx, "hotel-1", day(2025, 5, 4), day(2025, 5, 6))
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "early", bookings[0].ID)
}

func TestUpdateBookingStatus(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	require.NoError(t, db.CreateBooking(ctx, sampleBooking("b1", "hotel-1")))

	require.NoError(t, db.UpdateBookingStatus(ctx, "b1", models.StatusConfirmed))
	require.NoError(t, db.UpdateBookingStatus(ctx, "b1", models.StatusCheckedIn))

	err := db.UpdateBookingStatus(ctx, "b1", models.StatusCanceled)
	assert.True(t, errors.Is(err, ErrInvalidTransition), "checked-in bookings cannot be canceled")

	err = db.UpdateBookingStatus(ctx, "missing", models.StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}
