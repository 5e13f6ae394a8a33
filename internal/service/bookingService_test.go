package service

import (
	"context"
	"testing"
	"time"

	"event-booking/config"
	"event-booking/internal/clock"
	"event-booking/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newBookingFixture(cfg config.BookingConfig) (*fakeEventRepo, *fakeBookingRepo, BookingService) {
	eventRepo := &fakeEventRepo{}
	bookingRepo := &fakeBookingRepo{}
	svc := NewBookingService(bookingRepo, eventRepo, clock.NewFixed(testNow), cfg)
	return eventRepo, bookingRepo, svc
}

func TestSubmitBooking_SnapshotsPriceAndDecrementsSeats(t *testing.T) {
	eventRepo, bookingRepo, svc := newBookingFixture(config.BookingConfig{})
	id := eventRepo.seed(&entity.Event{Title: "Concert", Date: "2025-06-15", Price: 500, AvailableSeats: 10})

	confirmation, err := svc.SubmitBooking(context.Background(), &BookTicketRequest{
		EventID:   id,
		UserName:  "Asha",
		UserEmail: "asha@example.com",
		Seats:     3,
	})
	require.NoError(t, err)

	assert.Equal(t, 1500, confirmation.Booking.TotalAmount)
	assert.Equal(t, testNow, confirmation.Booking.CreatedAt)
	assert.Equal(t, "Booking Successful! Total Amount = Rs 1500", confirmation.Message)

	stored, err := eventRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 7, stored.AvailableSeats)

	require.Len(t, bookingRepo.bookings, 1)
	assert.Equal(t, id, bookingRepo.bookings[0].EventID)
}

func TestSubmitBooking_PriceSnapshotSurvivesRepricing(t *testing.T) {
	eventRepo, bookingRepo, svc := newBookingFixture(config.BookingConfig{})
	id := eventRepo.seed(&entity.Event{Title: "Concert", Date: "2025-06-15", Price: 500, AvailableSeats: 10})

	_, err := svc.SubmitBooking(context.Background(), &BookTicketRequest{EventID: id, Seats: 2})
	require.NoError(t, err)

	// Reprice after booking: the stored amount must not move.
	event, err := eventRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	event.Price = 900
	require.NoError(t, eventRepo.Update(context.Background(), event))

	assert.Equal(t, 1000, bookingRepo.bookings[0].TotalAmount)
}

func TestSubmitBooking_OverbookingDrivesCounterNegative(t *testing.T) {
	eventRepo, _, svc := newBookingFixture(config.BookingConfig{})
	id := eventRepo.seed(&entity.Event{Title: "Workshop", Date: "2025-07-01", Price: 100, AvailableSeats: 2})

	confirmation, err := svc.SubmitBooking(context.Background(), &BookTicketRequest{EventID: id, Seats: 5})
	require.NoError(t, err)
	assert.Equal(t, 500, confirmation.Booking.TotalAmount)

	stored, err := eventRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, -3, stored.AvailableSeats)
}

func TestSubmitBooking_EnforceSeatLimitRejectsWithoutWrites(t *testing.T) {
	eventRepo, bookingRepo, svc := newBookingFixture(config.BookingConfig{EnforceSeatLimit: true})
	id := eventRepo.seed(&entity.Event{Title: "Workshop", Date: "2025-07-01", Price: 100, AvailableSeats: 2})

	_, err := svc.SubmitBooking(context.Background(), &BookTicketRequest{EventID: id, Seats: 5})
	require.ErrorIs(t, err, entity.ErrNotEnoughSeats)

	stored, err := eventRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.AvailableSeats)
	assert.Empty(t, bookingRepo.bookings)
}

func TestSubmitBooking_ZeroSeatsProceedsWithZeroAmount(t *testing.T) {
	eventRepo, bookingRepo, svc := newBookingFixture(config.BookingConfig{})
	id := eventRepo.seed(&entity.Event{Title: "Talk", Date: "2025-06-20", Price: 250, AvailableSeats: 5})

	confirmation, err := svc.SubmitBooking(context.Background(), &BookTicketRequest{EventID: id, Seats: 0})
	require.NoError(t, err)

	assert.Equal(t, 0, confirmation.Booking.TotalAmount)
	require.Len(t, bookingRepo.bookings, 1)

	stored, err := eventRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.AvailableSeats)
}

func TestSubmitBooking_UnknownEventNothingPersisted(t *testing.T) {
	_, bookingRepo, svc := newBookingFixture(config.BookingConfig{})

	_, err := svc.SubmitBooking(context.Background(), &BookTicketRequest{EventID: "missing", Seats: 2})
	require.ErrorIs(t, err, entity.ErrEventNotFound)
	assert.Empty(t, bookingRepo.bookings)
}

func TestSubmitBooking_NegativeSeatsRejected(t *testing.T) {
	eventRepo, bookingRepo, svc := newBookingFixture(config.BookingConfig{})
	id := eventRepo.seed(&entity.Event{Title: "Talk", Date: "2025-06-20", Price: 250, AvailableSeats: 5})

	_, err := svc.SubmitBooking(context.Background(), &BookTicketRequest{EventID: id, Seats: -1})
	require.ErrorIs(t, err, entity.ErrInvalidInput)
	assert.Empty(t, bookingRepo.bookings)
}

func TestSubmitBooking_NoSeatCapByDefault(t *testing.T) {
	// Zero-value config matches the shipped defaults: no per-booking cap,
	// no availability enforcement.
	eventRepo, bookingRepo, svc := newBookingFixture(config.BookingConfig{})
	id := eventRepo.seed(&entity.Event{Title: "Stadium Show", Date: "2025-08-01", Price: 100, AvailableSeats: 5})

	confirmation, err := svc.SubmitBooking(context.Background(), &BookTicketRequest{EventID: id, Seats: 1001})
	require.NoError(t, err)
	assert.Equal(t, 100100, confirmation.Booking.TotalAmount)
	require.Len(t, bookingRepo.bookings, 1)

	stored, err := eventRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, -996, stored.AvailableSeats)
}

func TestSubmitBooking_MaxSeatsCap(t *testing.T) {
	eventRepo, _, svc := newBookingFixture(config.BookingConfig{MaxSeats: 10})
	id := eventRepo.seed(&entity.Event{Title: "Festival", Date: "2025-08-01", Price: 50, AvailableSeats: 10000})

	_, err := svc.SubmitBooking(context.Background(), &BookTicketRequest{EventID: id, Seats: 11})
	require.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestListEventBookings(t *testing.T) {
	eventRepo, _, svc := newBookingFixture(config.BookingConfig{})
	first := eventRepo.seed(&entity.Event{Title: "A", Date: "2025-06-20", Price: 100, AvailableSeats: 50})
	second := eventRepo.seed(&entity.Event{Title: "B", Date: "2025-06-21", Price: 100, AvailableSeats: 50})

	for _, id := range []string{first, first, second} {
		_, err := svc.SubmitBooking(context.Background(), &BookTicketRequest{EventID: id, Seats: 1})
		require.NoError(t, err)
	}

	bookings, err := svc.ListEventBookings(context.Background(), first)
	require.NoError(t, err)
	assert.Len(t, bookings, 2)

	all, err := svc.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
