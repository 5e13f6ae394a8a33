package repository

import (
	"context"

	"event-booking/internal/entity"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	GetAll(ctx context.Context, filter *entity.EventFilter) ([]*entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id string) error

	// AdjustSeats applies delta to available_seats in a single statement.
	// There is no floor check: a large negative delta drives the counter
	// below zero.
	AdjustSeats(ctx context.Context, id string, delta int) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByEventID(ctx context.Context, eventID string) ([]*entity.Booking, error)
	GetAll(ctx context.Context) ([]*entity.Booking, error)
	CountByEvent(ctx context.Context, eventID string) (int, error)
}
