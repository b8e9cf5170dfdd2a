package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Mileage and ownership brackets offered on the sell page. The bracket
// labels are part of the pricing contract: the estimator matches on
// their literal text.
var (
	KmsBrackets = []string{
		"Under 5,000",
		"5,000 - 20,000",
		"20,000 - 50,000",
		"50,000+",
	}
	OwnerBrackets = []string{
		"1st Owner",
		"2nd Owner",
		"3rd+ Owner",
	}
)

// SellEstimate is an immutable audit record of one estimate submission.
// swagger:model domain.SellEstimate
type SellEstimate struct {
	ID             uuid.UUID  `json:"id"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	Brand          string     `json:"brand"`
	Model          string     `json:"model"`
	Variant        string     `json:"variant"`
	Year           int        `json:"year"`
	KmsRange       string     `json:"kms_range"`
	Owner          string     `json:"owner"`
	EstimatedPrice int        `json:"estimated_price"`
	Name           string     `json:"name,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// brandBasePrices maps a brand to its base valuation. Unknown brands
// fall back to fallbackBasePrice.
var brandBasePrices = map[string]int{
	"TVS":           60000,
	"Honda":         75000,
	"Bajaj":         50000,
	"Hero":          40000,
	"Royal Enfield": 220000,
	"Yamaha":        80000,
	"Vespa":         95000,
	"KTM":           240000,
	"Suzuki":        85000,
}

const fallbackBasePrice = 50000

// EstimatePrice computes the sale-price estimate for a vehicle,
// rounded down to the nearest 100. Deterministic for fixed inputs and
// nowYear; always non-negative.
//
// The mileage-factor branches overlap on purpose: the combined
// "5,000 ... 20,000" bracket must be tested before the bare "20,000"
// one, so first match wins in the listed order.
func EstimatePrice(brand, variant string, year int, kmsRange, owner string, nowYear int) int {
	base := fallbackBasePrice
	if b, ok := brandBasePrices[brand]; ok {
		base = b
	}

	vf := 1.0
	switch {
	case strings.Contains(variant, "350"), strings.Contains(variant, "410"), strings.Contains(variant, "400"):
		vf = 1.6
	case strings.Contains(variant, "150"):
		vf = 1.25
	case strings.Contains(variant, "125"):
		vf = 1.05
	case strings.Contains(variant, "110"):
		vf = 0.92
	}

	age := nowYear - year
	if age < 0 {
		age = 0
	}
	ageFactor := 1 - float64(age)*0.06
	if ageFactor < 0.35 {
		ageFactor = 0.35
	}

	kmsFactor := 1.0
	switch {
	case strings.Contains(kmsRange, "Under"):
		kmsFactor = 0.96
	case strings.Contains(kmsRange, "5,000") && strings.Contains(kmsRange, "20,000"):
		kmsFactor = 0.90
	case strings.Contains(kmsRange, "20,000"):
		kmsFactor = 0.80
	case strings.Contains(kmsRange, "+"), strings.Contains(kmsRange, "50,000"):
		kmsFactor = 0.72
	}

	ownerFactor := 1.0
	switch {
	case strings.HasPrefix(owner, "2nd"):
		ownerFactor = 0.88
	case strings.HasPrefix(owner, "3rd"):
		ownerFactor = 0.75
	}

	price := int(float64(base)*vf*ageFactor*kmsFactor*ownerFactor + 0.5)
	return (price / 100) * 100
}
