package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/driverp/bike-marketplace/internal/core/domain"

	"github.com/google/uuid"
)

const estimateColumns = `id, user_id, brand, model, variant, year, kms_range, owner,
	estimated_price, name, phone, notes, created_at`

// EstimateRepository implements ports.EstimateRepository over postgres.
type EstimateRepository struct {
	db *sql.DB
}

func NewEstimateRepository(db *sql.DB) *EstimateRepository {
	return &EstimateRepository{db: db}
}

func scanEstimate(row rowScanner) (*domain.SellEstimate, error) {
	var (
		e      domain.SellEstimate
		userID uuid.NullUUID
	)
	err := row.Scan(
		&e.ID, &userID, &e.Brand, &e.Model, &e.Variant, &e.Year, &e.KmsRange, &e.Owner,
		&e.EstimatedPrice, &e.Name, &e.Phone, &e.Notes, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		e.UserID = &userID.UUID
	}
	return &e, nil
}

func (r *EstimateRepository) CreateEstimate(ctx context.Context, estimate *domain.SellEstimate) (*domain.SellEstimate, error) {
	query := `INSERT INTO sell_estimates (id, user_id, brand, model, variant, year, kms_range, owner,
		estimated_price, name, phone, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + estimateColumns

	var userID uuid.NullUUID
	if estimate.UserID != nil {
		userID = uuid.NullUUID{UUID: *estimate.UserID, Valid: true}
	}

	row := r.db.QueryRowContext(ctx, query,
		estimate.ID, userID, estimate.Brand, estimate.Model, estimate.Variant, estimate.Year,
		estimate.KmsRange, estimate.Owner, estimate.EstimatedPrice, estimate.Name,
		estimate.Phone, estimate.Notes,
	)

	created, err := scanEstimate(row)
	if err != nil {
		return nil, mapPqError(err)
	}
	return created, nil
}

func (r *EstimateRepository) GetEstimateByID(ctx context.Context, estimateID uuid.UUID) (*domain.SellEstimate, error) {
	query := `SELECT ` + estimateColumns + ` FROM sell_estimates WHERE id = $1`

	estimate, err := scanEstimate(r.db.QueryRowContext(ctx, query, estimateID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEstimateNotFound
		}
		return nil, err
	}
	return estimate, nil
}
