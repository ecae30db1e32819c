package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stayline/internal/models"
)

var (
	// ErrNotFound is returned when a booking does not exist.
	ErrNotFound = errors.New("booking not found")
	// ErrInvalidTransition is returned for a disallowed status change.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// CreateBooking inserts a new booking record.
func (db *DB) CreateBooking(ctx context.Context, b *models.BookingRecord) error {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.Status == "" {
		b.Status = models.StatusPending
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO bookings (
			id, hotel_id, guest_name, check_in, check_out,
			room_type, room_number, adults, children, total_amount,
			status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.HotelID, b.GuestName, b.CheckIn, b.CheckOut,
		b.RoomType, b.RoomNumber, b.Adults, b.Children, b.TotalAmount,
		b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// GetBooking returns a booking by id.
func (db *DB) GetBooking(ctx context.Context, id string) (*models.BookingRecord, error) {
	row := db.QueryRowContext(ctx, `
		SELECT id, hotel_id, guest_name, check_in, check_out,
		       room_type, room_number, adults, children, total_amount,
		       status, created_at, updated_at
		FROM bookings WHERE id = ?`, id)

	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// ListBookings returns bookings for a hotel, optionally filtered by
// status, newest check-in first.
func (db *DB) ListBookings(ctx context.Context, hotelID, status string) ([]models.BookingRecord, error) {
	query := `
		SELECT id, hotel_id, guest_name, check_in, check_out,
		       room_type, room_number, adults, children, total_amount,
		       status, created_at, updated_at
		FROM bookings WHERE hotel_id = ?`
	args := []any{hotelID}
	if status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}
	query += " ORDER BY check_in DESC"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.BookingRecord
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// ListBookingsInRange returns non-canceled bookings for a hotel whose
// stay intersects the inclusive date range.
func (db *DB) ListBookingsInRange(ctx context.Context, hotelID string, from, to time.Time) ([]models.BookingRecord, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, hotel_id, guest_name, check_in, check_out,
		       room_type, room_number, adults, children, total_amount,
		       status, created_at, updated_at
		FROM bookings
		WHERE hotel_id = ?
		AND check_in <= ? AND check_out >= ?
		AND status != 'canceled'
		ORDER BY check_in`,
		hotelID, to, from,
	)
	if err != nil {
		return nil, fmt.Errorf("list bookings in range: %w", err)
	}
	defer rows.Close()

	var bookings []models.BookingRecord
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// UpdateBookingStatus moves a booking to a new status, enforcing the
// lifecycle transitions.
func (db *DB) UpdateBookingStatus(ctx context.Context, id, status string) error {
	b, err := db.GetBooking(ctx, id)
	if err != nil {
		return err
	}
	if !models.ValidStatusTransition(b.Status, status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, status)
	}

	_, err = db.ExecContext(ctx,
		"UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(row scanner) (*models.BookingRecord, error) {
	var b models.BookingRecord
	var roomNumber sql.NullString
	err := row.Scan(
		&b.ID, &b.HotelID, &b.GuestName, &b.CheckIn, &b.CheckOut,
		&b.RoomType, &roomNumber, &b.Adults, &b.Children, &b.TotalAmount,
		&b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if roomNumber.Valid {
		b.RoomNumber = roomNumber.String
	}
	return &b, nil
}
