package entity

// DateLayout is the calendar-date encoding used everywhere an event date
// is stored or compared. Lexicographic order on this layout matches
// chronological order, so the raw string doubles as the sort key.
const DateLayout = "2006-01-02"

// DefaultCategory is applied at read time when a stored event carries no
// category. Storage keeps the field absent; grouping supplies the default.
const DefaultCategory = "Other"

type Event struct {
	ID             string `json:"id" db:"id"`
	Title          string `json:"title" db:"title"`
	Category       string `json:"category,omitempty" db:"category"`
	Date           string `json:"date" db:"date"`
	Time           string `json:"time" db:"time"`
	Location       string `json:"location" db:"location"`
	Price          int    `json:"price" db:"price"`
	AvailableSeats int    `json:"available_seats" db:"available_seats"`
	Image          string `json:"image" db:"image"`
}

// CategoryGroup is one bucket of the home-page grouping. Group order
// follows first appearance in the date-sorted event list.
type CategoryGroup struct {
	Name   string   `json:"name"`
	Events []*Event `json:"events"`
}

// EventFilter narrows GetAll. Zero values mean "no constraint".
type EventFilter struct {
	Title    string // case-insensitive substring match
	Category string // exact match
}
