package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/driverp/bike-marketplace/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ListingRepository implements ports.ListingRepository over postgres.
type ListingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(row rowScanner) (*domain.Listing, error) {
	var (
		l        domain.Listing
		bookedBy uuid.NullUUID
		bookedAt sql.NullTime
	)
	err := row.Scan(
		&l.ListingID, &l.OwnerID, &l.Category, &l.Brand, &l.Model, &l.Variant,
		&l.MakeYear, &l.Kilometers, &l.FuelType, &l.PreviousOwner, &l.Price,
		&l.Location, &l.Refurbished, &l.RTOState, &l.RTOCity, &l.RegistrationYear,
		&l.Transmission, &l.FinanceAvailable, &l.InsuranceAvailable, &l.Warranty,
		&l.BikeColor, &l.IgnitionType, &l.FrontBrakeType, &l.RearBrakeType,
		&l.ABSAvailable, &l.OdometerType, &l.WheelType,
		&l.IsBooked, &bookedBy, &bookedAt, &l.IsPublished, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if bookedBy.Valid {
		l.BookedBy = &bookedBy.UUID
	}
	if bookedAt.Valid {
		l.BookedAt = &bookedAt.Time
	}
	return &l, nil
}

func (r *ListingRepository) CreateListing(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	query := `INSERT INTO listings (listing_id, owner_id, category, brand, model, variant, make_year,
		kilometers, fuel_type, previous_owner, price, location, refurbished, rto_state, rto_city,
		registration_year, transmission, finance_available, insurance_available, warranty, bike_color,
		ignition_type, front_brake_type, rear_brake_type, abs_available, odometer_type, wheel_type,
		is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
		$19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
		RETURNING ` + listingColumns

	row := r.db.QueryRowContext(ctx, query,
		listing.ListingID, listing.OwnerID, listing.Category, listing.Brand, listing.Model,
		listing.Variant, listing.MakeYear, listing.Kilometers, listing.FuelType,
		listing.PreviousOwner, listing.Price, listing.Location, listing.Refurbished,
		listing.RTOState, listing.RTOCity, listing.RegistrationYear, listing.Transmission,
		listing.FinanceAvailable, listing.InsuranceAvailable, listing.Warranty,
		listing.BikeColor, listing.IgnitionType, listing.FrontBrakeType, listing.RearBrakeType,
		listing.ABSAvailable, listing.OdometerType, listing.WheelType, listing.IsPublished,
	)

	created, err := scanListing(row)
	if err != nil {
		return nil, mapPqError(err)
	}
	return created, nil
}

func (r *ListingRepository) GetListingByID(ctx context.Context, listingID uuid.UUID) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE listing_id = $1`

	listing, err := scanListing(r.db.QueryRowContext(ctx, query, listingID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return listing, nil
}

func (r *ListingRepository) ListPublished(ctx context.Context, filter domain.ListingFilter, sort domain.SortKey) ([]*domain.Listing, error) {
	query, args := buildListingQuery(filter, sort)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := []*domain.Listing{}
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}

func (r *ListingRepository) ListBrands(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT brand FROM listings WHERE is_published = TRUE ORDER BY brand ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := []string{}
	for rows.Next() {
		var brand string
		if err := rows.Scan(&brand); err != nil {
			return nil, err
		}
		brands = append(brands, brand)
	}
	return brands, rows.Err()
}

func (r *ListingRepository) UpdateListing(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	query := `UPDATE listings SET category = $2, brand = $3, model = $4, variant = $5, make_year = $6,
		kilometers = $7, fuel_type = $8, previous_owner = $9, price = $10, location = $11,
		refurbished = $12, rto_state = $13, rto_city = $14, registration_year = $15,
		transmission = $16, finance_available = $17, insurance_available = $18, warranty = $19,
		bike_color = $20, ignition_type = $21, front_brake_type = $22, rear_brake_type = $23,
		abs_available = $24, odometer_type = $25, wheel_type = $26, is_published = $27,
		updated_at = NOW()
		WHERE listing_id = $1
		RETURNING ` + listingColumns

	row := r.db.QueryRowContext(ctx, query,
		listing.ListingID, listing.Category, listing.Brand, listing.Model, listing.Variant,
		listing.MakeYear, listing.Kilometers, listing.FuelType, listing.PreviousOwner,
		listing.Price, listing.Location, listing.Refurbished, listing.RTOState, listing.RTOCity,
		listing.RegistrationYear, listing.Transmission, listing.FinanceAvailable,
		listing.InsuranceAvailable, listing.Warranty, listing.BikeColor, listing.IgnitionType,
		listing.FrontBrakeType, listing.RearBrakeType, listing.ABSAvailable,
		listing.OdometerType, listing.WheelType, listing.IsPublished,
	)

	updated, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, mapPqError(err)
	}
	return updated, nil
}

func (r *ListingRepository) SetPublished(ctx context.Context, listingID uuid.UUID, published bool) error {
	query := `UPDATE listings SET is_published = $2, updated_at = NOW() WHERE listing_id = $1`

	res, err := r.db.ExecContext(ctx, query, listingID, published)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) SetBooking(ctx context.Context, listingID uuid.UUID, bookedBy *uuid.UUID, bookedAt *time.Time) error {
	query := `UPDATE listings SET is_booked = $2, booked_by = $3, booked_at = $4, updated_at = NOW()
		WHERE listing_id = $1`

	var (
		byArg sql.NullString
		atArg sql.NullTime
	)
	if bookedBy != nil {
		byArg = sql.NullString{String: bookedBy.String(), Valid: true}
	}
	if bookedAt != nil {
		atArg = sql.NullTime{Time: *bookedAt, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, query, listingID, bookedBy != nil, byArg, atArg)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

// mapPqError converts postgres constraint violations into domain errors.
func mapPqError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23502":
			return domain.NewValidationError(pqErr.Column, "must not be null")
		case "23503":
			return domain.ErrListingNotFound
		}
	}
	return err
}
