package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/driverp/bike-marketplace/internal/core/domain"
	"github.com/driverp/bike-marketplace/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const brandsCacheKey = "catalog:brands"

type CatalogService struct {
	listingRepo ports.ListingRepository
	logger      ports.LoggerPort
	validate    *validator.Validate
	cache       ports.CachePort
}

func NewCatalogService(
	listingRepo ports.ListingRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *CatalogService {
	return &CatalogService{
		listingRepo: listingRepo,
		logger:      logger,
		validate:    validate,
		cache:       cache,
	}
}

// ListBikes returns published listings matching the filter, ordered by
// the sort key, together with the distinct brand facet used by the
// catalog sidebar.
func (s *CatalogService) ListBikes(ctx context.Context, filter domain.ListingFilter, sort domain.SortKey) ([]*domain.Listing, []string, error) {
	listings, err := s.listingRepo.ListPublished(ctx, filter, sort)
	if err != nil {
		s.logger.Error("Failed to query listings", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, nil, err
	}

	brands, err := s.availableBrands(ctx)
	if err != nil {
		s.logger.Warn("Failed to load brand facet", map[string]interface{}{
			"error": err.Error(),
		})
		brands = []string{}
	}

	s.logger.Info("Catalog query served", map[string]interface{}{
		"total_count": len(listings),
		"sort":        string(sort),
	})

	return listings, brands, nil
}

// Brands returns the distinct brands of published listings.
func (s *CatalogService) Brands(ctx context.Context) ([]string, error) {
	return s.availableBrands(ctx)
}

func (s *CatalogService) availableBrands(ctx context.Context) ([]string, error) {
	if cached, err := s.cache.Get(brandsCacheKey); err == nil {
		var brands []string
		if err := json.Unmarshal(cached, &brands); err == nil {
			return brands, nil
		}
	}

	brands, err := s.listingRepo.ListBrands(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(brands); err == nil {
		if err := s.cache.Set(brandsCacheKey, data, 10*time.Minute); err != nil {
			s.logger.Warn("Failed to cache brand facet", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	return brands, nil
}

func (s *CatalogService) GetListingByID(ctx context.Context, listingID string) (*domain.Listing, error) {
	listingUUID, err := uuid.Parse(listingID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"listing_id": listingID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("invalid listing ID: %w", err)
	}

	cacheKey := fmt.Sprintf("listing:%s", listingID)
	if cached, err := s.cache.Get(cacheKey); err == nil {
		var cachedListing domain.Listing
		if err := json.Unmarshal(cached, &cachedListing); err == nil {
			return &cachedListing, nil
		}
	}

	listing, err := s.listingRepo.GetListingByID(ctx, listingUUID)
	if err != nil {
		s.logger.Error("Failed to get listing", map[string]interface{}{
			"error":      err.Error(),
			"listing_id": listingID,
		})
		return nil, err
	}

	if data, err := json.Marshal(listing); err == nil {
		if err := s.cache.Set(cacheKey, data, 15*time.Minute); err != nil {
			s.logger.Warn("Failed to cache listing", map[string]interface{}{
				"error":      err.Error(),
				"listing_id": listingID,
			})
		}
	}

	return listing, nil
}

func (s *CatalogService) CreateListing(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	if err := s.validate.Struct(listing); err != nil {
		s.logger.Error("Listing validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if listing.ListingID == uuid.Nil {
		listing.ListingID = uuid.New()
	}

	created, err := s.listingRepo.CreateListing(ctx, listing)
	if err != nil {
		s.logger.Error("Failed to create listing", map[string]interface{}{
			"error":    err.Error(),
			"owner_id": listing.OwnerID,
		})
		return nil, err
	}

	s.invalidateBrands()

	s.logger.Info("Listing created successfully", map[string]interface{}{
		"listing_id": created.ListingID,
		"owner_id":   created.OwnerID,
	})

	return created, nil
}

func (s *CatalogService) UpdateListing(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	if err := s.validate.Struct(listing); err != nil {
		s.logger.Error("Listing validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	updated, err := s.listingRepo.UpdateListing(ctx, listing)
	if err != nil {
		s.logger.Error("Failed to update listing", map[string]interface{}{
			"error":      err.Error(),
			"listing_id": listing.ListingID,
		})
		return nil, err
	}

	s.invalidateListing(listing.ListingID.String())
	s.invalidateBrands()

	s.logger.Info("Listing updated successfully", map[string]interface{}{
		"listing_id": listing.ListingID,
	})

	return updated, nil
}

// UnpublishListing hides a listing from the catalog. Listings are never
// hard-deleted in the normal flow.
func (s *CatalogService) UnpublishListing(ctx context.Context, listingID string) error {
	listingUUID, err := uuid.Parse(listingID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"listing_id": listingID,
			"error":      err.Error(),
		})
		return fmt.Errorf("invalid listing ID: %w", err)
	}

	if err := s.listingRepo.SetPublished(ctx, listingUUID, false); err != nil {
		s.logger.Error("Failed to unpublish listing", map[string]interface{}{
			"error":      err.Error(),
			"listing_id": listingID,
		})
		return err
	}

	s.invalidateListing(listingID)

	s.logger.Info("Listing unpublished", map[string]interface{}{
		"listing_id": listingID,
	})

	return nil
}

func (s *CatalogService) invalidateListing(listingID string) {
	cacheKey := fmt.Sprintf("listing:%s", listingID)
	if err := s.cache.Delete(cacheKey); err != nil {
		s.logger.Warn("Failed to invalidate listing cache", map[string]interface{}{
			"error":      err.Error(),
			"listing_id": listingID,
		})
	}
}

func (s *CatalogService) invalidateBrands() {
	if err := s.cache.Delete(brandsCacheKey); err != nil {
		s.logger.Warn("Failed to invalidate brand facet cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
