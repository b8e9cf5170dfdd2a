package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/driverp/bike-marketplace/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func filterFromQuery(t *testing.T, rawQuery string) domain.ListingFilter {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/bikes?"+rawQuery, nil)
	return parseListingFilter(c)
}

func TestParseListingFilterFull(t *testing.T) {
	filter := filterFromQuery(t,
		"category=motorbike&category=scooter&brand=Honda&brand=TVS"+
			"&min_price=30000&max_price=120000&min_year=2018&max_year=2024"+
			"&max_kms=25000&cc=below200&fuel=petrol&location=Pune&q=shine")

	if len(filter.Categories) != 2 {
		t.Errorf("categories = %v, want 2 entries", filter.Categories)
	}
	if len(filter.Brands) != 2 {
		t.Errorf("brands = %v, want 2 entries", filter.Brands)
	}
	if filter.MinPrice == nil || *filter.MinPrice != 30000 {
		t.Error("min_price not parsed")
	}
	if filter.MaxPrice == nil || *filter.MaxPrice != 120000 {
		t.Error("max_price not parsed")
	}
	if filter.MinYear == nil || *filter.MinYear != 2018 {
		t.Error("min_year not parsed")
	}
	if filter.MaxYear == nil || *filter.MaxYear != 2024 {
		t.Error("max_year not parsed")
	}
	if filter.MaxKilometers == nil || *filter.MaxKilometers != 25000 {
		t.Error("max_kms not parsed")
	}
	if filter.CapacityBucket != "below200" {
		t.Errorf("cc = %q, want below200", filter.CapacityBucket)
	}
	if len(filter.Fuels) != 1 || filter.Fuels[0] != domain.FuelPetrol {
		t.Errorf("fuels = %v, want [petrol]", filter.Fuels)
	}
	if filter.Location != "Pune" || filter.Query != "shine" {
		t.Errorf("location = %q query = %q", filter.Location, filter.Query)
	}
}

func TestParseListingFilterDropsMalformedNumerics(t *testing.T) {
	filter := filterFromQuery(t, "min_price=cheap&max_price=12x&min_year=twenty&max_kms=lots&brand=Honda")

	if filter.MinPrice != nil || filter.MaxPrice != nil || filter.MinYear != nil || filter.MaxKilometers != nil {
		t.Error("malformed numeric values must be dropped, not rejected")
	}
	// The rest of the filter still applies.
	if len(filter.Brands) != 1 || filter.Brands[0] != "Honda" {
		t.Errorf("brands = %v, want [Honda]", filter.Brands)
	}
}

func TestParseListingFilterDropsUnknownEnums(t *testing.T) {
	filter := filterFromQuery(t, "category=tricycle&fuel=steam&cc=below900")

	if len(filter.Categories) != 0 {
		t.Errorf("categories = %v, want empty", filter.Categories)
	}
	if len(filter.Fuels) != 0 {
		t.Errorf("fuels = %v, want empty", filter.Fuels)
	}
	if filter.CapacityBucket != "" {
		t.Errorf("cc = %q, want empty", filter.CapacityBucket)
	}
}

func TestParseListingFilterEmpty(t *testing.T) {
	filter := filterFromQuery(t, "")

	if len(filter.Categories) != 0 || len(filter.Brands) != 0 || filter.MinPrice != nil ||
		filter.MaxPrice != nil || filter.MinYear != nil || filter.MaxYear != nil ||
		filter.MaxKilometers != nil || filter.CapacityBucket != "" || len(filter.Fuels) != 0 ||
		filter.Location != "" || filter.Query != "" {
		t.Error("no query parameters should yield the zero filter")
	}
}
