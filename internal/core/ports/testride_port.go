package ports

import (
	"context"

	"github.com/driverp/bike-marketplace/internal/core/domain"

	"github.com/google/uuid"
)

type TestRideRepository interface {
	// CreatePending inserts a new pending request. Returns
	// domain.ErrDuplicatePending when a pending row already exists for
	// the same (listing, requester) pair; the store's uniqueness
	// constraint settles concurrent submissions.
	CreatePending(ctx context.Context, ride *domain.TestRide) (*domain.TestRide, error)
	GetTestRideByID(ctx context.Context, rideID uuid.UUID) (*domain.TestRide, error)
	HasPending(ctx context.Context, listingID, userID uuid.UUID) (bool, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.TestRide, error)
	ListByStatus(ctx context.Context, status domain.TestRideStatus) ([]*domain.TestRide, error)
	UpdateStatus(ctx context.Context, ride *domain.TestRide) error
}
