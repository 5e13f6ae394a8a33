package service

import (
	"context"

	"event-booking/internal/auth"
	"event-booking/internal/entity"
)

// HomePage is everything the landing page needs in one round trip:
// upcoming events, the full date-sorted list, and the category grouping.
type HomePage struct {
	Upcoming   []*entity.Event         `json:"upcoming"`
	AllEvents  []*entity.Event         `json:"all_events"`
	Categories []*entity.CategoryGroup `json:"categories"`
	Today      string                  `json:"today"`
}

type CatalogService interface {
	GetHome(ctx context.Context) (*HomePage, error)
	ListEvents(ctx context.Context, search, category string) ([]*entity.Event, error)
	GetEvent(ctx context.Context, id string) (*entity.Event, error)
}

// BookTicketRequest carries the booking form fields.
type BookTicketRequest struct {
	EventID   string `form:"event_id" json:"event_id" binding:"required"`
	UserName  string `form:"user_name" json:"user_name"`
	UserEmail string `form:"user_email" json:"user_email"`
	Seats     int    `form:"seats" json:"seats"`
}

// BookingConfirmation pairs the persisted booking with the user-facing
// confirmation message.
type BookingConfirmation struct {
	Booking *entity.Booking `json:"booking"`
	Message string          `json:"message"`
}

type BookingService interface {
	SubmitBooking(ctx context.Context, req *BookTicketRequest) (*BookingConfirmation, error)
	ListEventBookings(ctx context.Context, eventID string) ([]*entity.Booking, error)
	ListBookings(ctx context.Context) ([]*entity.Booking, error)
}

// EventForm carries the admin create/update form fields.
type EventForm struct {
	Title          string `form:"title" json:"title" binding:"required"`
	Category       string `form:"category" json:"category"`
	Date           string `form:"date" json:"date" binding:"required"`
	Time           string `form:"time" json:"time" binding:"required"`
	Location       string `form:"location" json:"location" binding:"required"`
	Price          int    `form:"price" json:"price"`
	AvailableSeats int    `form:"available_seats" json:"available_seats"`
	Image          string `form:"image" json:"image"`
}

// AdminService performs catalog curation. Every method takes the caller's
// auth.Session capability and refuses non-admin sessions; there is no
// ambient logged-in state.
type AdminService interface {
	// GetEvent fetches one event for the edit form.
	GetEvent(ctx context.Context, session *auth.Session, id string) (*entity.Event, error)
	AddEvent(ctx context.Context, session *auth.Session, form *EventForm) (*entity.Event, error)
	// UpdateEvent returns the stored event even when the update is
	// rejected, so the admin form can be re-displayed with current data.
	UpdateEvent(ctx context.Context, session *auth.Session, id string, form *EventForm) (*entity.Event, error)
	DeleteEvent(ctx context.Context, session *auth.Session, id string) error
	Dashboard(ctx context.Context, session *auth.Session) ([]*entity.EventBookingCount, error)
}
