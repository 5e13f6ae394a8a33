package repository

import (
	"context"
	"database/sql"
	"fmt"

	"event-booking/internal/entity"

	"github.com/google/uuid"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	booking.ID = uuid.NewString()

	// event_id has no FK constraint: bookings outlive deleted events.
	query := `
		INSERT INTO bookings (id, event_id, user_name, user_email, seats, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.EventID,
		booking.UserName,
		booking.UserEmail,
		booking.Seats,
		booking.TotalAmount,
		booking.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) GetByEventID(ctx context.Context, eventID string) ([]*entity.Booking, error) {
	query := `
		SELECT id, event_id, user_name, user_email, seats, total_amount, created_at
		FROM bookings
		WHERE event_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) GetAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT id, event_id, user_name, user_email, seats, total_amount, created_at
		FROM bookings
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) CountByEvent(ctx context.Context, eventID string) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE event_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, eventID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return count, nil
}

func scanBookings(rows *sql.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.EventID,
			&booking.UserName,
			&booking.UserEmail,
			&booking.Seats,
			&booking.TotalAmount,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, rows.Err()
}
