package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/driverp/bike-marketplace/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const testRideColumns = `id, listing_id, user_id, phone, refundable_amount, status, scheduled_for,
	notes, confirmed_at, completed_at, cancelled_at, created_at, updated_at`

// TestRideRepository implements ports.TestRideRepository over postgres.
type TestRideRepository struct {
	db *sql.DB
}

func NewTestRideRepository(db *sql.DB) *TestRideRepository {
	return &TestRideRepository{db: db}
}

func scanTestRide(row rowScanner) (*domain.TestRide, error) {
	var (
		tr           domain.TestRide
		scheduledFor sql.NullTime
		confirmedAt  sql.NullTime
		completedAt  sql.NullTime
		cancelledAt  sql.NullTime
	)
	err := row.Scan(
		&tr.ID, &tr.ListingID, &tr.UserID, &tr.Phone, &tr.RefundableAmount, &tr.Status,
		&scheduledFor, &tr.Notes, &confirmedAt, &completedAt, &cancelledAt,
		&tr.CreatedAt, &tr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if scheduledFor.Valid {
		tr.ScheduledFor = &scheduledFor.Time
	}
	if confirmedAt.Valid {
		tr.ConfirmedAt = &confirmedAt.Time
	}
	if completedAt.Valid {
		tr.CompletedAt = &completedAt.Time
	}
	if cancelledAt.Valid {
		tr.CancelledAt = &cancelledAt.Time
	}
	return &tr, nil
}

// CreatePending inserts a new pending request. The partial unique index
// on (listing_id, user_id) WHERE status = 'pending' settles concurrent
// submissions; its violation maps to domain.ErrDuplicatePending.
func (r *TestRideRepository) CreatePending(ctx context.Context, ride *domain.TestRide) (*domain.TestRide, error) {
	query := `INSERT INTO test_rides (id, listing_id, user_id, phone, refundable_amount, status,
		scheduled_for, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + testRideColumns

	var scheduledFor sql.NullTime
	if ride.ScheduledFor != nil {
		scheduledFor = sql.NullTime{Time: *ride.ScheduledFor, Valid: true}
	}

	row := r.db.QueryRowContext(ctx, query,
		ride.ID, ride.ListingID, ride.UserID, ride.Phone, ride.RefundableAmount,
		domain.TestRidePending, scheduledFor, ride.Notes,
	)

	created, err := scanTestRide(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505":
				return nil, domain.ErrDuplicatePending
			case "23503":
				return nil, domain.ErrListingNotFound
			}
		}
		return nil, err
	}
	return created, nil
}

func (r *TestRideRepository) GetTestRideByID(ctx context.Context, rideID uuid.UUID) (*domain.TestRide, error) {
	query := `SELECT ` + testRideColumns + ` FROM test_rides WHERE id = $1`

	ride, err := scanTestRide(r.db.QueryRowContext(ctx, query, rideID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTestRideNotFound
		}
		return nil, err
	}
	return ride, nil
}

func (r *TestRideRepository) HasPending(ctx context.Context, listingID, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM test_rides
		WHERE listing_id = $1 AND user_id = $2 AND status = $3)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, listingID, userID, domain.TestRidePending).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *TestRideRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.TestRide, error) {
	query := `SELECT ` + testRideColumns + ` FROM test_rides
		WHERE user_id = $1 ORDER BY created_at DESC`

	return r.queryTestRides(ctx, query, userID)
}

func (r *TestRideRepository) ListByStatus(ctx context.Context, status domain.TestRideStatus) ([]*domain.TestRide, error) {
	query := `SELECT ` + testRideColumns + ` FROM test_rides
		WHERE status = $1 ORDER BY created_at DESC`

	return r.queryTestRides(ctx, query, status)
}

func (r *TestRideRepository) queryTestRides(ctx context.Context, query string, arg interface{}) ([]*domain.TestRide, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rides := []*domain.TestRide{}
	for rows.Next() {
		ride, err := scanTestRide(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}
	return rides, rows.Err()
}

func (r *TestRideRepository) UpdateStatus(ctx context.Context, ride *domain.TestRide) error {
	query := `UPDATE test_rides SET status = $2, confirmed_at = $3, completed_at = $4,
		cancelled_at = $5, updated_at = NOW()
		WHERE id = $1`

	var confirmedAt, completedAt, cancelledAt sql.NullTime
	if ride.ConfirmedAt != nil {
		confirmedAt = sql.NullTime{Time: *ride.ConfirmedAt, Valid: true}
	}
	if ride.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *ride.CompletedAt, Valid: true}
	}
	if ride.CancelledAt != nil {
		cancelledAt = sql.NullTime{Time: *ride.CancelledAt, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, query, ride.ID, ride.Status, confirmedAt, completedAt, cancelledAt)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTestRideNotFound
	}
	return nil
}
