package services

import (
	"context"
	"fmt"
	"time"

	"github.com/driverp/bike-marketplace/internal/core/domain"
	"github.com/driverp/bike-marketplace/internal/core/ports"

	"github.com/google/uuid"
)

type TestRideService struct {
	testRideRepo ports.TestRideRepository
	listingRepo  ports.ListingRepository
	logger       ports.LoggerPort
	now          func() time.Time
}

func NewTestRideService(
	testRideRepo ports.TestRideRepository,
	listingRepo ports.ListingRepository,
	logger ports.LoggerPort,
	now func() time.Time,
) *TestRideService {
	if now == nil {
		now = time.Now
	}
	return &TestRideService{
		testRideRepo: testRideRepo,
		listingRepo:  listingRepo,
		logger:       logger,
		now:          now,
	}
}

// RequestTestRide creates a pending request for the given listing.
// The owner cannot book their own listing, and a requester holds at
// most one pending request per listing. The duplicate check here is a
// courtesy; the store's pending-unique constraint is what settles
// concurrent submissions, so a race surfaces as ErrDuplicatePending
// from CreatePending.
func (s *TestRideService) RequestTestRide(
	ctx context.Context,
	listingID string,
	requester uuid.UUID,
	phone string,
	scheduledFor *time.Time,
	notes string,
) (*domain.TestRide, error) {
	listingUUID, err := uuid.Parse(listingID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"listing_id": listingID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("invalid listing ID: %w", err)
	}

	listing, err := s.listingRepo.GetListingByID(ctx, listingUUID)
	if err != nil {
		s.logger.Error("Failed to get listing for booking", map[string]interface{}{
			"error":      err.Error(),
			"listing_id": listingID,
		})
		return nil, err
	}

	if listing.OwnerID == requester {
		s.logger.Warn("Owner attempted to book own listing", map[string]interface{}{
			"listing_id": listingID,
			"user_id":    requester,
		})
		return nil, domain.ErrOwnBooking
	}

	pending, err := s.testRideRepo.HasPending(ctx, listingUUID, requester)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, domain.ErrDuplicatePending
	}

	ride := &domain.TestRide{
		ID:               uuid.New(),
		ListingID:        listingUUID,
		UserID:           requester,
		Phone:            phone,
		RefundableAmount: domain.DefaultRefundableAmount,
		Status:           domain.TestRidePending,
		ScheduledFor:     scheduledFor,
		Notes:            notes,
	}

	created, err := s.testRideRepo.CreatePending(ctx, ride)
	if err != nil {
		if err == domain.ErrDuplicatePending {
			return nil, err
		}
		s.logger.Error("Failed to create test ride", map[string]interface{}{
			"error":      err.Error(),
			"listing_id": listingID,
			"user_id":    requester,
		})
		return nil, err
	}

	s.logger.Info("Test ride booked", map[string]interface{}{
		"test_ride_id": created.ID,
		"listing_id":   listingID,
		"user_id":      requester,
	})

	return created, nil
}

func (s *TestRideService) ListMyTestRides(ctx context.Context, userID uuid.UUID) ([]*domain.TestRide, error) {
	rides, err := s.testRideRepo.ListByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list test rides", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}
	return rides, nil
}

func (s *TestRideService) ListByStatus(ctx context.Context, status domain.TestRideStatus) ([]*domain.TestRide, error) {
	switch status {
	case domain.TestRidePending, domain.TestRideConfirmed, domain.TestRideCompleted, domain.TestRideCancelled:
	default:
		return nil, domain.NewValidationError("status", "unknown test ride status")
	}
	return s.testRideRepo.ListByStatus(ctx, status)
}

// ChangeStatus applies an administrative transition. Confirming marks
// the listing booked by the requester; cancelling a previously
// confirmed ride releases it.
func (s *TestRideService) ChangeStatus(ctx context.Context, rideID string, to domain.TestRideStatus) (*domain.TestRide, error) {
	rideUUID, err := uuid.Parse(rideID)
	if err != nil {
		return nil, fmt.Errorf("invalid test ride ID: %w", err)
	}

	ride, err := s.testRideRepo.GetTestRideByID(ctx, rideUUID)
	if err != nil {
		return nil, err
	}

	wasConfirmed := ride.Status == domain.TestRideConfirmed
	now := s.now()

	if err := domain.ApplyTransition(ride, to, now); err != nil {
		s.logger.Warn("Rejected test ride transition", map[string]interface{}{
			"test_ride_id": rideID,
			"to":           string(to),
			"error":        err.Error(),
		})
		return nil, err
	}

	if err := s.testRideRepo.UpdateStatus(ctx, ride); err != nil {
		s.logger.Error("Failed to update test ride status", map[string]interface{}{
			"error":        err.Error(),
			"test_ride_id": rideID,
		})
		return nil, err
	}

	switch {
	case to == domain.TestRideConfirmed:
		if err := s.listingRepo.SetBooking(ctx, ride.ListingID, &ride.UserID, &now); err != nil {
			s.logger.Warn("Failed to mark listing booked", map[string]interface{}{
				"error":      err.Error(),
				"listing_id": ride.ListingID,
			})
		}
	case to == domain.TestRideCancelled && wasConfirmed:
		if err := s.listingRepo.SetBooking(ctx, ride.ListingID, nil, nil); err != nil {
			s.logger.Warn("Failed to release listing booking", map[string]interface{}{
				"error":      err.Error(),
				"listing_id": ride.ListingID,
			})
		}
	}

	s.logger.Info("Test ride status changed", map[string]interface{}{
		"test_ride_id": rideID,
		"status":       string(to),
	})

	return ride, nil
}
