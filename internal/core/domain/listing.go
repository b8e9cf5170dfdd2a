package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryScooter   Category = "scooter"
	CategoryMotorbike Category = "motorbike"
	CategoryEV        Category = "ev"
)

type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
)

type OwnerCount string

const (
	OwnerFirst     OwnerCount = "1st"
	OwnerSecond    OwnerCount = "2nd"
	OwnerThirdPlus OwnerCount = "3rd+"
)

type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
)

type IgnitionType string

const (
	IgnitionKick     IgnitionType = "kick"
	IgnitionElectric IgnitionType = "electric"
	IgnitionBoth     IgnitionType = "both"
)

type BrakeType string

const (
	BrakeDisc     BrakeType = "disc"
	BrakeDrum     BrakeType = "drum"
	BrakeCombined BrakeType = "combined"
)

type WheelType string

const (
	WheelAlloy WheelType = "alloy"
	WheelSpoke WheelType = "spoke"
	WheelSteel WheelType = "steel"
)

// swagger:model domain.Listing
type Listing struct {
	ListingID          uuid.UUID    `json:"listing_id"`
	OwnerID            uuid.UUID    `json:"owner_id"`
	Category           Category     `json:"category" validate:"required,oneof=scooter motorbike ev"`
	Brand              string       `json:"brand" validate:"required,max=120"`
	Model              string       `json:"model" validate:"required,max=120"`
	Variant            string       `json:"variant,omitempty" validate:"max=120"`
	MakeYear           int          `json:"make_year" validate:"required,min=1950,max=2100"`
	Kilometers         int          `json:"kilometers" validate:"min=0"`
	FuelType           FuelType     `json:"fuel_type" validate:"required,oneof=petrol diesel electric"`
	PreviousOwner      OwnerCount   `json:"previous_owner" validate:"required"`
	Price              float64      `json:"price" validate:"required,gt=0"`
	Location           string       `json:"location" validate:"required,max=200"`
	Refurbished        bool         `json:"refurbished"`
	RTOState           string       `json:"rto_state,omitempty"`
	RTOCity            string       `json:"rto_city,omitempty"`
	RegistrationYear   int          `json:"registration_year,omitempty"`
	Transmission       Transmission `json:"transmission,omitempty"`
	FinanceAvailable   bool         `json:"finance_available"`
	InsuranceAvailable bool         `json:"insurance_available"`
	Warranty           bool         `json:"warranty"`
	BikeColor          string       `json:"bike_color,omitempty"`
	IgnitionType       IgnitionType `json:"ignition_type,omitempty"`
	FrontBrakeType     BrakeType    `json:"front_brake_type,omitempty"`
	RearBrakeType      BrakeType    `json:"rear_brake_type,omitempty"`
	ABSAvailable       bool         `json:"abs_available"`
	OdometerType       string       `json:"odometer_type,omitempty"`
	WheelType          WheelType    `json:"wheel_type,omitempty"`
	IsBooked           bool         `json:"is_booked"`
	BookedBy           *uuid.UUID   `json:"booked_by,omitempty"`
	BookedAt           *time.Time   `json:"booked_at,omitempty"`
	IsPublished        bool         `json:"is_published"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// Book marks the listing as taken. Invariant: is_booked is true iff
// booked_by and booked_at are both set.
func (l *Listing) Book(by uuid.UUID, at time.Time) {
	l.IsBooked = true
	l.BookedBy = &by
	l.BookedAt = &at
}

func (l *Listing) Unbook() {
	l.IsBooked = false
	l.BookedBy = nil
	l.BookedAt = nil
}

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortAlpha     SortKey = "alpha"
)

func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc, SortAlpha:
		return SortKey(s)
	default:
		return SortNewest
	}
}

// CapacityBucket values accepted by the catalog filter. Every bucket
// applies the same "variant contains cc" check; the bands do not
// actually discriminate. Kept literal from the original behaviour
// rather than silently replaced with a numeric comparison.
var CapacityBuckets = map[string]bool{
	"below100": true,
	"below200": true,
	"below300": true,
	"below400": true,
}

// ListingFilter is the set of optional catalog criteria. Fields combine
// with AND; values inside a multi-valued field combine with OR. A nil
// pointer or empty slice means "not specified".
type ListingFilter struct {
	Categories     []Category
	Brands         []string
	MinPrice       *float64
	MaxPrice       *float64
	MinYear        *int
	MaxYear        *int
	MaxKilometers  *int
	CapacityBucket string
	Fuels          []FuelType
	Location       string
	Query          string
}

// Matches reports whether a listing satisfies every specified criterion.
// Unpublished listings never match.
func (f ListingFilter) Matches(l *Listing) bool {
	if !l.IsPublished {
		return false
	}
	if len(f.Categories) > 0 && !containsCategory(f.Categories, l.Category) {
		return false
	}
	if len(f.Brands) > 0 && !containsString(f.Brands, l.Brand) {
		return false
	}
	if f.MinPrice != nil && l.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && l.Price > *f.MaxPrice {
		return false
	}
	if f.MinYear != nil && l.MakeYear < *f.MinYear {
		return false
	}
	if f.MaxYear != nil && l.MakeYear > *f.MaxYear {
		return false
	}
	if f.MaxKilometers != nil && l.Kilometers > *f.MaxKilometers {
		return false
	}
	if f.CapacityBucket != "" {
		if !strings.Contains(strings.ToLower(l.Variant), "cc") {
			return false
		}
	}
	if len(f.Fuels) > 0 && !containsFuel(f.Fuels, l.FuelType) {
		return false
	}
	if f.Location != "" && !containsFold(l.Location, f.Location) {
		return false
	}
	if f.Query != "" {
		q := f.Query
		if !containsFold(l.Brand, q) && !containsFold(l.Model, q) &&
			!containsFold(l.Variant, q) && !containsFold(l.Location, q) {
			return false
		}
	}
	return true
}

// SortListings orders listings in place according to the sort key.
func SortListings(listings []*Listing, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price < listings[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price > listings[j].Price
		})
	case SortAlpha:
		sort.SliceStable(listings, func(i, j int) bool {
			if listings[i].Brand != listings[j].Brand {
				return listings[i].Brand < listings[j].Brand
			}
			return listings[i].Model < listings[j].Model
		})
	default:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].CreatedAt.After(listings[j].CreatedAt)
		})
	}
}

func containsCategory(set []Category, v Category) bool {
	for _, c := range set {
		if c == v {
			return true
		}
	}
	return false
}

func containsFuel(set []FuelType, v FuelType) bool {
	for _, f := range set {
		if f == v {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
