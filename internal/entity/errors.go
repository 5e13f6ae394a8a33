package entity

import "errors"

var (
	// Event errors
	ErrEventNotFound = errors.New("event not found")
	ErrEventDatePast = errors.New("event date cannot be in the past")

	// Booking errors
	ErrNotEnoughSeats = errors.New("not enough available seats")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrForbidden          = errors.New("forbidden operation")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
)
