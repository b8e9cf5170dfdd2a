package domain

import "testing"

func TestEstimatePriceKnownValues(t *testing.T) {
	const nowYear = 2025

	cases := []struct {
		name     string
		brand    string
		variant  string
		year     int
		kmsRange string
		owner    string
		want     int
	}{
		{
			name:  "current year commuter",
			brand: "Hero", variant: "Splendor 110", year: 2025,
			kmsRange: "Under 5,000", owner: "1st Owner",
			// 40000 * 0.92 * 1.0 * 0.96 * 1.0 = 35328
			want: 35300,
		},
		{
			name:  "unknown brand falls back",
			brand: "Ducati", variant: "", year: 2025,
			kmsRange: "", owner: "",
			want: 50000,
		},
		{
			name:  "aged classic second owner",
			brand: "Royal Enfield", variant: "Classic 350", year: 2020,
			kmsRange: "20,000 - 50,000", owner: "2nd Owner",
			// 220000 * 1.6 * 0.70 * 0.80 * 0.88 = 173465.6
			want: 173400,
		},
		{
			name:  "age factor clamps at 0.35",
			brand: "TVS", variant: "XL", year: 2005,
			kmsRange: "", owner: "3rd+ Owner",
			// 60000 * 1.0 * 0.35 * 1.0 * 0.75 = 15750
			want: 15700,
		},
		{
			name:  "future year treated as new",
			brand: "Honda", variant: "Activa 125", year: 2027,
			kmsRange: "Under 5,000", owner: "1st Owner",
			// 75000 * 1.05 * 1.0 * 0.96 = 75600
			want: 75600,
		},
	}

	for _, tc := range cases {
		got := EstimatePrice(tc.brand, tc.variant, tc.year, tc.kmsRange, tc.owner, nowYear)
		if got != tc.want {
			t.Errorf("%s: EstimatePrice = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestEstimatePriceMileageBracketOrder(t *testing.T) {
	const nowYear = 2025
	base := func(kmsRange string) int {
		return EstimatePrice("Bajaj", "", nowYear, kmsRange, "1st Owner", nowYear)
	}

	// The combined bracket contains both boundary labels and must take
	// its own factor, not the bare 20,000 one.
	if got := base("5,000 - 20,000"); got != 45000 {
		t.Errorf("combined bracket: got %d, want 45000", got)
	}
	if got := base("20,000 - 50,000"); got != 40000 {
		t.Errorf("upper-middle bracket: got %d, want 40000", got)
	}
	if got := base("50,000+"); got != 36000 {
		t.Errorf("open-ended bracket: got %d, want 36000", got)
	}
}

func TestEstimatePriceProperties(t *testing.T) {
	const nowYear = 2025
	brands := []string{"TVS", "Honda", "Royal Enfield", "KTM", "NoSuchBrand"}
	variants := []string{"", "110cc", "150cc", "Classic 350"}
	years := []int{2005, 2015, 2021, 2025}

	for _, brand := range brands {
		for _, variant := range variants {
			for _, year := range years {
				for _, kms := range KmsBrackets {
					for _, owner := range OwnerBrackets {
						got := EstimatePrice(brand, variant, year, kms, owner, nowYear)
						if got < 0 {
							t.Fatalf("negative estimate for %s/%s/%d/%s/%s: %d",
								brand, variant, year, kms, owner, got)
						}
						if got%100 != 0 {
							t.Fatalf("estimate not a multiple of 100 for %s/%s/%d/%s/%s: %d",
								brand, variant, year, kms, owner, got)
						}
						if again := EstimatePrice(brand, variant, year, kms, owner, nowYear); again != got {
							t.Fatalf("estimate not deterministic for %s/%s/%d/%s/%s",
								brand, variant, year, kms, owner)
						}
					}
				}
			}
		}
	}
}
