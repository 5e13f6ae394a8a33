package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"event-booking/internal/entity"
)

// fakeEventRepo is an in-memory EventRepository mirroring the sql
// implementation's contract: date-ascending listing, ILIKE-style title
// filter, sentinel not-found errors, unconditional seat adjustment.
type fakeEventRepo struct {
	events []*entity.Event
	nextID int

	createErr error
	getAllErr error
}

func (f *fakeEventRepo) Create(ctx context.Context, event *entity.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	event.ID = fmt.Sprintf("event-%d", f.nextID)
	stored := *event
	f.events = append(f.events, &stored)
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, entity.ErrEventNotFound
}

func (f *fakeEventRepo) GetAll(ctx context.Context, filter *entity.EventFilter) ([]*entity.Event, error) {
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	var out []*entity.Event
	for _, e := range f.events {
		if filter != nil {
			if filter.Title != "" && !strings.Contains(strings.ToLower(e.Title), strings.ToLower(filter.Title)) {
				continue
			}
			if filter.Category != "" && e.Category != filter.Category {
				continue
			}
		}
		copied := *e
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, event *entity.Event) error {
	for i, e := range f.events {
		if e.ID == event.ID {
			stored := *event
			f.events[i] = &stored
			return nil
		}
	}
	return entity.ErrEventNotFound
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	for i, e := range f.events {
		if e.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return entity.ErrEventNotFound
}

func (f *fakeEventRepo) AdjustSeats(ctx context.Context, id string, delta int) error {
	for _, e := range f.events {
		if e.ID == id {
			e.AvailableSeats += delta
			return nil
		}
	}
	return entity.ErrEventNotFound
}

// seed stores an event as-is and returns its assigned id.
func (f *fakeEventRepo) seed(event *entity.Event) string {
	f.nextID++
	event.ID = fmt.Sprintf("event-%d", f.nextID)
	f.events = append(f.events, event)
	return event.ID
}

type fakeBookingRepo struct {
	bookings []*entity.Booking
	nextID   int

	createErr error
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	booking.ID = fmt.Sprintf("booking-%d", f.nextID)
	stored := *booking
	f.bookings = append(f.bookings, &stored)
	return nil
}

func (f *fakeBookingRepo) GetByEventID(ctx context.Context, eventID string) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.EventID == eventID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetAll(ctx context.Context) ([]*entity.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) CountByEvent(ctx context.Context, eventID string) (int, error) {
	count := 0
	for _, b := range f.bookings {
		if b.EventID == eventID {
			count++
		}
	}
	return count, nil
}
