package entity

import (
	"time"
)

// Booking is immutable once created. EventID is a weak reference: deleting
// the event later leaves the booking dangling, matching the permissive
// deletion policy of the admin side.
type Booking struct {
	ID          string    `json:"id" db:"id"`
	EventID     string    `json:"event_id" db:"event_id"`
	UserName    string    `json:"user_name" db:"user_name"`
	UserEmail   string    `json:"user_email" db:"user_email"`
	Seats       int       `json:"seats" db:"seats"`
	TotalAmount int       `json:"total_amount" db:"total_amount"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// EventBookingCount pairs an event with how many bookings reference it,
// for the admin dashboard.
type EventBookingCount struct {
	Event    *Event `json:"event"`
	Bookings int    `json:"bookings"`
}
