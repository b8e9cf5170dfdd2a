package ports

import (
	"context"
	"time"

	"github.com/driverp/bike-marketplace/internal/core/domain"

	"github.com/google/uuid"
)

type ListingRepository interface {
	CreateListing(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	GetListingByID(ctx context.Context, listingID uuid.UUID) (*domain.Listing, error)
	ListPublished(ctx context.Context, filter domain.ListingFilter, sort domain.SortKey) ([]*domain.Listing, error)
	ListBrands(ctx context.Context) ([]string, error)
	UpdateListing(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	SetPublished(ctx context.Context, listingID uuid.UUID, published bool) error
	SetBooking(ctx context.Context, listingID uuid.UUID, bookedBy *uuid.UUID, bookedAt *time.Time) error
}

type CatalogService interface {
	CreateListing(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	GetListingByID(ctx context.Context, listingID string) (*domain.Listing, error)
	ListBikes(ctx context.Context, filter domain.ListingFilter, sort domain.SortKey) ([]*domain.Listing, []string, error)
	Brands(ctx context.Context) ([]string, error)
	UpdateListing(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	UnpublishListing(ctx context.Context, listingID string) error
}
