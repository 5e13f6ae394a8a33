package repository

import (
	"context"
	"database/sql"
	"fmt"

	"event-booking/internal/entity"

	"github.com/google/uuid"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	event.ID = uuid.NewString()

	query := `
		INSERT INTO events (id, title, category, date, time, location, price, available_seats, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.Title,
		nullableString(event.Category),
		event.Date,
		event.Time,
		event.Location,
		event.Price,
		event.AvailableSeats,
		event.Image,
	)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	query := `
		SELECT id, title, category, date, time, location, price, available_seats, image
		FROM events
		WHERE id = $1
	`

	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, entity.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (r *eventRepository) GetAll(ctx context.Context, filter *entity.EventFilter) ([]*entity.Event, error) {
	// Dates are ISO YYYY-MM-DD text, so ORDER BY date is chronological.
	query := `
		SELECT id, title, category, date, time, location, price, available_seats, image
		FROM events
	`

	var args []interface{}
	if filter != nil {
		where := ""
		if filter.Title != "" {
			args = append(args, "%"+filter.Title+"%")
			where = fmt.Sprintf("WHERE title ILIKE $%d", len(args))
		}
		if filter.Category != "" {
			args = append(args, filter.Category)
			if where == "" {
				where = fmt.Sprintf("WHERE category = $%d", len(args))
			} else {
				where += fmt.Sprintf(" AND category = $%d", len(args))
			}
		}
		query += where
	}
	query += " ORDER BY date ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET title = $1, category = $2, date = $3, time = $4, location = $5,
		    price = $6, available_seats = $7, image = $8
		WHERE id = $9
	`

	result, err := r.db.ExecContext(ctx, query,
		event.Title,
		nullableString(event.Category),
		event.Date,
		event.Time,
		event.Location,
		event.Price,
		event.AvailableSeats,
		event.Image,
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrEventNotFound
	}

	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	// Bookings referencing the event are left in place: the reference is
	// deliberately weak.
	query := `DELETE FROM events WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrEventNotFound
	}

	return nil
}

func (r *eventRepository) AdjustSeats(ctx context.Context, id string, delta int) error {
	query := `UPDATE events SET available_seats = available_seats + $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("failed to adjust seats: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrEventNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*entity.Event, error) {
	var (
		event    entity.Event
		category sql.NullString
	)
	err := row.Scan(
		&event.ID,
		&event.Title,
		&category,
		&event.Date,
		&event.Time,
		&event.Location,
		&event.Price,
		&event.AvailableSeats,
		&event.Image,
	)
	if err != nil {
		return nil, err
	}
	// An absent category stays absent here; read-side grouping applies
	// the default.
	event.Category = category.String
	return &event, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
