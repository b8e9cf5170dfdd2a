package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TestRideStatus string

const (
	TestRidePending   TestRideStatus = "pending"
	TestRideConfirmed TestRideStatus = "confirmed"
	TestRideCompleted TestRideStatus = "completed"
	TestRideCancelled TestRideStatus = "cancelled"
)

// DefaultRefundableAmount is the deposit attached to every new request.
const DefaultRefundableAmount = 1000.00

// swagger:model domain.TestRide
type TestRide struct {
	ID               uuid.UUID      `json:"id"`
	ListingID        uuid.UUID      `json:"listing_id" validate:"required"`
	UserID           uuid.UUID      `json:"user_id" validate:"required"`
	Phone            string         `json:"phone,omitempty" validate:"max=20"`
	RefundableAmount float64        `json:"refundable_amount"`
	Status           TestRideStatus `json:"status"`
	ScheduledFor     *time.Time     `json:"scheduled_for,omitempty"`
	Notes            string         `json:"notes,omitempty"`
	ConfirmedAt      *time.Time     `json:"confirmed_at,omitempty"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	CancelledAt      *time.Time     `json:"cancelled_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// allowedTransitions is the directed graph of test-ride status changes.
// pending is the only initial state; completed and cancelled are terminal.
var allowedTransitions = map[TestRideStatus][]TestRideStatus{
	TestRidePending:   {TestRideConfirmed, TestRideCancelled},
	TestRideConfirmed: {TestRideCompleted, TestRideCancelled},
	TestRideCompleted: {},
	TestRideCancelled: {},
}

// CanTransition reports whether from -> to is an allowed status change.
func CanTransition(from, to TestRideStatus) bool {
	allowed, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ApplyTransition moves a test ride to a new status and stamps the
// matching timestamp. Returns ErrInvalidTransition for a disallowed move.
func ApplyTransition(tr *TestRide, to TestRideStatus, now time.Time) error {
	if tr == nil {
		return fmt.Errorf("test ride is nil")
	}
	from := tr.Status
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	tr.Status = to

	switch to {
	case TestRideConfirmed:
		if tr.ConfirmedAt == nil {
			t := now
			tr.ConfirmedAt = &t
		}
	case TestRideCompleted:
		if tr.CompletedAt == nil {
			t := now
			tr.CompletedAt = &t
		}
	case TestRideCancelled:
		if tr.CancelledAt == nil {
			t := now
			tr.CancelledAt = &t
		}
	}
	return nil
}
