package domain

import "errors"

var (
	// ErrValidation marks a request with missing or malformed required fields.
	ErrValidation = errors.New("validation failed")

	// ErrCapacityExceeded marks an admission attempt against a room type that
	// is fully booked for the requested date range.
	ErrCapacityExceeded = errors.New("room capacity exceeded")

	// ErrNotFound marks an operation on a booking id that does not exist.
	ErrNotFound = errors.New("not found")
)
