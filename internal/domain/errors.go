package domain

import "errors"

var (
	ErrFlightNotFound    = errors.New("flight not found")
	ErrInsufficientSeats = errors.New("not enough seats available")
	// ErrDuplicateBooking is defensive: the booking service checks for an
	// active booking before reserving, so this only surfaces when two
	// requests for the same (flight, user) race past that check.
	ErrDuplicateBooking   = errors.New("active booking already exists")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
