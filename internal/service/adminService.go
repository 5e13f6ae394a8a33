package service

import (
	"context"
	"fmt"

	"event-booking/internal/auth"
	"event-booking/internal/clock"
	repository "event-booking/internal/database/postgres"
	"event-booking/internal/entity"
)

type adminService struct {
	eventRepo   repository.EventRepository
	bookingRepo repository.BookingRepository
	clock       clock.Clock
}

// NewAdminService creates the curation side of the catalog.
func NewAdminService(
	eventRepo repository.EventRepository,
	bookingRepo repository.BookingRepository,
	clk clock.Clock,
) AdminService {
	return &adminService{
		eventRepo:   eventRepo,
		bookingRepo: bookingRepo,
		clock:       clk,
	}
}

func (s *adminService) GetEvent(ctx context.Context, session *auth.Session, id string) (*entity.Event, error) {
	if !session.IsAdmin() {
		return nil, entity.ErrForbidden
	}

	return s.eventRepo.GetByID(ctx, id)
}

func (s *adminService) AddEvent(ctx context.Context, session *auth.Session, form *EventForm) (*entity.Event, error) {
	if !session.IsAdmin() {
		return nil, entity.ErrForbidden
	}

	// ISO date strings compare lexicographically in calendar order, so a
	// plain string comparison is the whole past-date check. Today itself
	// is accepted.
	if form.Date < s.clock.Now().Format(entity.DateLayout) {
		return nil, entity.ErrEventDatePast
	}

	event := &entity.Event{
		Title:          form.Title,
		Category:       form.Category,
		Date:           form.Date,
		Time:           form.Time,
		Location:       form.Location,
		Price:          form.Price,
		AvailableSeats: form.AvailableSeats,
		Image:          form.Image,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

func (s *adminService) UpdateEvent(ctx context.Context, session *auth.Session, id string, form *EventForm) (*entity.Event, error) {
	if !session.IsAdmin() {
		return nil, entity.ErrForbidden
	}

	existing, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// On a past date the stored event still comes back with the error so
	// the form can be re-rendered with current data.
	if form.Date < s.clock.Now().Format(entity.DateLayout) {
		return existing, entity.ErrEventDatePast
	}

	event := &entity.Event{
		ID:             id,
		Title:          form.Title,
		Category:       form.Category,
		Date:           form.Date,
		Time:           form.Time,
		Location:       form.Location,
		Price:          form.Price,
		AvailableSeats: form.AvailableSeats,
		Image:          form.Image,
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

func (s *adminService) DeleteEvent(ctx context.Context, session *auth.Session, id string) error {
	if !session.IsAdmin() {
		return entity.ErrForbidden
	}

	// Unconditional: bookings referencing this event stay behind as
	// dangling records.
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}

	return nil
}

func (s *adminService) Dashboard(ctx context.Context, session *auth.Session) ([]*entity.EventBookingCount, error) {
	if !session.IsAdmin() {
		return nil, entity.ErrForbidden
	}

	events, err := s.eventRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	counts := make([]*entity.EventBookingCount, 0, len(events))
	for _, event := range events {
		bookings, err := s.bookingRepo.CountByEvent(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count bookings: %w", err)
		}
		counts = append(counts, &entity.EventBookingCount{Event: event, Bookings: bookings})
	}

	return counts, nil
}
