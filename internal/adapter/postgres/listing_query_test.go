package postgres

import (
	"fmt"
	"strings"
	"testing"

	"github.com/driverp/bike-marketplace/internal/core/domain"
)

func TestBuildListingQueryEmptyFilter(t *testing.T) {
	query, args := buildListingQuery(domain.ListingFilter{}, domain.SortNewest)

	if !strings.Contains(query, "WHERE is_published = TRUE") {
		t.Error("catalog query must be restricted to published listings")
	}
	if strings.Contains(query, "$1") {
		t.Errorf("empty filter should produce no placeholders: %s", query)
	}
	if len(args) != 0 {
		t.Errorf("args = %d, want 0", len(args))
	}
	if !strings.HasSuffix(query, "ORDER BY created_at DESC") {
		t.Errorf("default sort should be newest first: %s", query)
	}
}

func TestBuildListingQueryPlaceholdersMatchArgs(t *testing.T) {
	minPrice, maxPrice := 30000.0, 120000.0
	minYear, maxYear := 2018, 2024
	maxKms := 25000
	filter := domain.ListingFilter{
		Categories:     []domain.Category{domain.CategoryMotorbike, domain.CategoryScooter},
		Brands:         []string{"Honda", "TVS"},
		MinPrice:       &minPrice,
		MaxPrice:       &maxPrice,
		MinYear:        &minYear,
		MaxYear:        &maxYear,
		MaxKilometers:  &maxKms,
		CapacityBucket: "below200",
		Fuels:          []domain.FuelType{domain.FuelPetrol},
		Location:       "Pune",
		Query:          "shine",
	}

	query, args := buildListingQuery(filter, domain.SortPriceAsc)

	// Categories, brands, 5 numeric bounds, fuels, location, free text.
	if len(args) != 10 {
		t.Fatalf("args = %d, want 10", len(args))
	}
	for i := 1; i <= len(args); i++ {
		placeholder := fmt.Sprintf("$%d", i)
		if !strings.Contains(query, placeholder) {
			t.Errorf("query missing placeholder %s: %s", placeholder, query)
		}
	}

	for _, clause := range []string{
		"category = ANY($1)",
		"brand = ANY($2)",
		"price >= $3",
		"price <= $4",
		"make_year >= $5",
		"make_year <= $6",
		"kilometers <= $7",
		"fuel_type = ANY($8)",
		"location ILIKE '%' || $9 || '%'",
	} {
		if !strings.Contains(query, clause) {
			t.Errorf("query missing clause %q: %s", clause, query)
		}
	}
	if !strings.HasSuffix(query, "ORDER BY price ASC") {
		t.Errorf("sort clause wrong: %s", query)
	}
}

func TestBuildListingQueryCapacityBucket(t *testing.T) {
	// The bucket never binds an argument; every value reduces to the
	// same variant containment check.
	for _, bucket := range []string{"below100", "below200", "below300", "below400"} {
		query, args := buildListingQuery(domain.ListingFilter{CapacityBucket: bucket}, domain.SortNewest)
		if !strings.Contains(query, "variant ILIKE '%cc%'") {
			t.Errorf("bucket %q: missing variant clause: %s", bucket, query)
		}
		if len(args) != 0 {
			t.Errorf("bucket %q: args = %d, want 0", bucket, len(args))
		}
	}
}

func TestBuildListingQueryFreeTextReusesPlaceholder(t *testing.T) {
	query, args := buildListingQuery(domain.ListingFilter{Query: "enfield"}, domain.SortNewest)

	if len(args) != 1 {
		t.Fatalf("args = %d, want 1 (single term reused across columns)", len(args))
	}
	for _, column := range []string{"brand", "model", "variant", "location"} {
		if !strings.Contains(query, column+" ILIKE '%' || $1 || '%'") {
			t.Errorf("free text clause missing column %s: %s", column, query)
		}
	}
	if strings.Count(query, "$1") != 4 {
		t.Errorf("free text should reuse $1 four times: %s", query)
	}
}

func TestBuildListingQuerySortClauses(t *testing.T) {
	cases := []struct {
		sort domain.SortKey
		want string
	}{
		{domain.SortNewest, "ORDER BY created_at DESC"},
		{domain.SortPriceAsc, "ORDER BY price ASC"},
		{domain.SortPriceDesc, "ORDER BY price DESC"},
		{domain.SortAlpha, "ORDER BY brand ASC, model ASC"},
	}
	for _, tc := range cases {
		query, _ := buildListingQuery(domain.ListingFilter{}, tc.sort)
		if !strings.HasSuffix(query, tc.want) {
			t.Errorf("sort %q: query ends %q, want suffix %q", tc.sort, query, tc.want)
		}
	}
}
