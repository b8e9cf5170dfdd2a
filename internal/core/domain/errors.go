package domain

import (
	"errors"
	"fmt"
)

var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrTestRideNotFound = errors.New("test ride not found")
	ErrEstimateNotFound = errors.New("estimate not found")

	// ErrOwnBooking: a seller cannot book a test ride on their own listing.
	ErrOwnBooking = errors.New("cannot book a test ride for your own listing")

	// ErrDuplicatePending: one pending request per (listing, requester).
	ErrDuplicatePending = errors.New("a pending test ride already exists for this listing")

	ErrInvalidTransition = errors.New("invalid test ride status transition")
)

// ValidationError carries a field-identifying message for malformed
// required input. It is a normal result value, never a fault.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
