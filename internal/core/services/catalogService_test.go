package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/driverp/bike-marketplace/internal/core/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) Get(key string) ([]byte, error) {
	data, ok := c.entries[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return data, nil
}

func (c *fakeCache) Set(key string, value []byte, _ time.Duration) error {
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(key string) error {
	delete(c.entries, key)
	return nil
}

func newCatalogService(repo *fakeListingRepo, cache *fakeCache) *CatalogService {
	return NewCatalogService(repo, noopLogger{}, validator.New(), cache)
}

func TestListBikesFiltersAndFacets(t *testing.T) {
	repo := newFakeListingRepo()
	svc := newCatalogService(repo, newFakeCache())

	seedListing(t, repo, uuid.New())
	hidden := seedListing(t, repo, uuid.New())
	if err := repo.SetPublished(context.Background(), hidden.ListingID, false); err != nil {
		t.Fatalf("unpublish seed: %v", err)
	}

	listings, brands, err := svc.ListBikes(context.Background(), domain.ListingFilter{}, domain.SortNewest)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("listings = %d, want 1 (unpublished excluded)", len(listings))
	}
	if len(brands) != 1 || brands[0] != "Yamaha" {
		t.Errorf("brands = %v, want [Yamaha]", brands)
	}
}

func TestGetListingByIDServedFromCache(t *testing.T) {
	repo := newFakeListingRepo()
	svc := newCatalogService(repo, newFakeCache())

	listing := seedListing(t, repo, uuid.New())

	first, err := svc.GetListingByID(context.Background(), listing.ListingID.String())
	if err != nil {
		t.Fatalf("first get failed: %v", err)
	}

	// Drop the row; a cached read must still succeed.
	delete(repo.listings, listing.ListingID)

	second, err := svc.GetListingByID(context.Background(), listing.ListingID.String())
	if err != nil {
		t.Fatalf("cached get failed: %v", err)
	}
	if second.ListingID != first.ListingID || second.Brand != first.Brand {
		t.Error("cached listing should match the stored one")
	}
}

func TestGetListingByIDRejectsBadID(t *testing.T) {
	svc := newCatalogService(newFakeListingRepo(), newFakeCache())

	if _, err := svc.GetListingByID(context.Background(), "not-a-uuid"); err == nil {
		t.Fatal("malformed ID should be rejected")
	}
}

func TestCreateListingValidatesAndInvalidatesBrands(t *testing.T) {
	repo := newFakeListingRepo()
	cache := newFakeCache()
	svc := newCatalogService(repo, cache)

	// Warm the facet cache, then create; the facet must be recomputed.
	if _, err := svc.Brands(context.Background()); err != nil {
		t.Fatalf("warm brands: %v", err)
	}

	created, err := svc.CreateListing(context.Background(), &domain.Listing{
		OwnerID:       uuid.New(),
		Category:      domain.CategoryScooter,
		Brand:         "Vespa",
		Model:         "SXL",
		MakeYear:      2023,
		FuelType:      domain.FuelPetrol,
		PreviousOwner: domain.OwnerFirst,
		Price:         110000,
		Location:      "Delhi",
		IsPublished:   true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ListingID == uuid.Nil {
		t.Error("create should assign a listing ID")
	}
	if _, ok := cache.entries[brandsCacheKey]; ok {
		t.Error("creating a listing should invalidate the brand facet cache")
	}

	brands, err := svc.Brands(context.Background())
	if err != nil {
		t.Fatalf("brands failed: %v", err)
	}
	if len(brands) != 1 || brands[0] != "Vespa" {
		t.Errorf("brands = %v, want [Vespa]", brands)
	}
}

func TestCreateListingRejectsInvalid(t *testing.T) {
	svc := newCatalogService(newFakeListingRepo(), newFakeCache())

	_, err := svc.CreateListing(context.Background(), &domain.Listing{
		OwnerID:  uuid.New(),
		Category: "tricycle",
		Brand:    "Honda",
	})
	if err == nil {
		t.Fatal("invalid listing should be rejected")
	}
}

func TestUnpublishListing(t *testing.T) {
	repo := newFakeListingRepo()
	cache := newFakeCache()
	svc := newCatalogService(repo, cache)

	listing := seedListing(t, repo, uuid.New())

	// Prime the per-listing cache so removal has something to invalidate.
	if _, err := svc.GetListingByID(context.Background(), listing.ListingID.String()); err != nil {
		t.Fatalf("prime cache: %v", err)
	}

	if err := svc.UnpublishListing(context.Background(), listing.ListingID.String()); err != nil {
		t.Fatalf("unpublish failed: %v", err)
	}

	listings, _, err := svc.ListBikes(context.Background(), domain.ListingFilter{}, domain.SortNewest)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listings) != 0 {
		t.Error("unpublished listing must disappear from the catalog")
	}
	if _, ok := cache.entries["listing:"+listing.ListingID.String()]; ok {
		t.Error("unpublishing should invalidate the listing cache entry")
	}
}
