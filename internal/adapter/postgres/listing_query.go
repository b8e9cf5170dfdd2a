package postgres

import (
	"fmt"
	"strings"

	"github.com/driverp/bike-marketplace/internal/core/domain"

	"github.com/lib/pq"
)

const listingColumns = `listing_id, owner_id, category, brand, model, variant, make_year, kilometers,
	fuel_type, previous_owner, price, location, refurbished, rto_state, rto_city, registration_year,
	transmission, finance_available, insurance_available, warranty, bike_color, ignition_type,
	front_brake_type, rear_brake_type, abs_available, odometer_type, wheel_type,
	is_booked, booked_by, booked_at, is_published, created_at, updated_at`

// buildListingQuery translates a ListingFilter into SQL. Criteria AND
// together; multi-valued fields become = ANY(...). Published-only is
// unconditional.
func buildListingQuery(filter domain.ListingFilter, sort domain.SortKey) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("SELECT " + listingColumns + " FROM listings WHERE is_published = TRUE")

	var args []interface{}
	next := func(v interface{}) int {
		args = append(args, v)
		return len(args)
	}

	if len(filter.Categories) > 0 {
		categories := make([]string, len(filter.Categories))
		for i, c := range filter.Categories {
			categories[i] = string(c)
		}
		fmt.Fprintf(&sb, " AND category = ANY($%d)", next(pq.Array(categories)))
	}
	if len(filter.Brands) > 0 {
		fmt.Fprintf(&sb, " AND brand = ANY($%d)", next(pq.Array(filter.Brands)))
	}
	if filter.MinPrice != nil {
		fmt.Fprintf(&sb, " AND price >= $%d", next(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		fmt.Fprintf(&sb, " AND price <= $%d", next(*filter.MaxPrice))
	}
	if filter.MinYear != nil {
		fmt.Fprintf(&sb, " AND make_year >= $%d", next(*filter.MinYear))
	}
	if filter.MaxYear != nil {
		fmt.Fprintf(&sb, " AND make_year <= $%d", next(*filter.MaxYear))
	}
	if filter.MaxKilometers != nil {
		fmt.Fprintf(&sb, " AND kilometers <= $%d", next(*filter.MaxKilometers))
	}
	if filter.CapacityBucket != "" {
		// Every bucket value applies the same containment check; the
		// bands do not discriminate. Literal carry-over, see the
		// CapacityBuckets note in the domain package.
		sb.WriteString(" AND variant ILIKE '%cc%'")
	}
	if len(filter.Fuels) > 0 {
		fuels := make([]string, len(filter.Fuels))
		for i, f := range filter.Fuels {
			fuels[i] = string(f)
		}
		fmt.Fprintf(&sb, " AND fuel_type = ANY($%d)", next(pq.Array(fuels)))
	}
	if filter.Location != "" {
		fmt.Fprintf(&sb, " AND location ILIKE '%%' || $%d || '%%'", next(filter.Location))
	}
	if filter.Query != "" {
		n := next(filter.Query)
		fmt.Fprintf(&sb,
			" AND (brand ILIKE '%%' || $%d || '%%' OR model ILIKE '%%' || $%d || '%%'"+
				" OR variant ILIKE '%%' || $%d || '%%' OR location ILIKE '%%' || $%d || '%%')",
			n, n, n, n)
	}

	switch sort {
	case domain.SortPriceAsc:
		sb.WriteString(" ORDER BY price ASC")
	case domain.SortPriceDesc:
		sb.WriteString(" ORDER BY price DESC")
	case domain.SortAlpha:
		sb.WriteString(" ORDER BY brand ASC, model ASC")
	default:
		sb.WriteString(" ORDER BY created_at DESC")
	}

	return sb.String(), args
}
