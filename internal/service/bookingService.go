package service

import (
	"context"
	"fmt"

	"event-booking/config"
	"event-booking/internal/clock"
	repository "event-booking/internal/database/postgres"
	"event-booking/internal/entity"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	eventRepo   repository.EventRepository
	clock       clock.Clock
	cfg         config.BookingConfig
}

// NewBookingService creates the transactional core of the application.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	eventRepo repository.EventRepository,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		clock:       clk,
		cfg:         cfg,
	}
}

// SubmitBooking validates the request against current event state, snapshots
// the price into the booking, persists it and decrements the inventory.
//
// The event read and the seat decrement are separate statements, not one
// transaction: the decrement itself is atomic, but an event deleted or
// repriced in between is tolerated.
func (s *bookingService) SubmitBooking(ctx context.Context, req *BookTicketRequest) (*BookingConfirmation, error) {
	event, err := s.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}

	if req.Seats < 0 {
		return nil, fmt.Errorf("%w: seats must not be negative", entity.ErrInvalidInput)
	}
	if s.cfg.MaxSeats > 0 && req.Seats > s.cfg.MaxSeats {
		return nil, fmt.Errorf("%w: at most %d seats per booking", entity.ErrInvalidInput, s.cfg.MaxSeats)
	}

	// Off by default: historically a booking may exceed the remaining
	// seats and drive the counter negative.
	if s.cfg.EnforceSeatLimit && req.Seats > event.AvailableSeats {
		return nil, fmt.Errorf("%w: requested %d, available %d",
			entity.ErrNotEnoughSeats, req.Seats, event.AvailableSeats)
	}

	booking := &entity.Booking{
		EventID:     event.ID,
		UserName:    req.UserName,
		UserEmail:   req.UserEmail,
		Seats:       req.Seats,
		TotalAmount: event.Price * req.Seats,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.eventRepo.AdjustSeats(ctx, event.ID, -req.Seats); err != nil {
		return nil, fmt.Errorf("failed to adjust seats: %w", err)
	}

	return &BookingConfirmation{
		Booking: booking,
		Message: fmt.Sprintf("Booking Successful! Total Amount = Rs %d", booking.TotalAmount),
	}, nil
}

func (s *bookingService) ListEventBookings(ctx context.Context, eventID string) ([]*entity.Booking, error) {
	bookings, err := s.bookingRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event bookings: %w", err)
	}

	return bookings, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]*entity.Booking, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return bookings, nil
}
