package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/driverp/bike-marketplace/internal/core/domain"

	"github.com/google/uuid"
)

type fakeEstimateRepo struct {
	estimates map[uuid.UUID]*domain.SellEstimate
}

func newFakeEstimateRepo() *fakeEstimateRepo {
	return &fakeEstimateRepo{estimates: map[uuid.UUID]*domain.SellEstimate{}}
}

func (r *fakeEstimateRepo) CreateEstimate(_ context.Context, e *domain.SellEstimate) (*domain.SellEstimate, error) {
	cp := *e
	cp.CreatedAt = time.Now()
	r.estimates[cp.ID] = &cp
	return &cp, nil
}

func (r *fakeEstimateRepo) GetEstimateByID(_ context.Context, id uuid.UUID) (*domain.SellEstimate, error) {
	e, ok := r.estimates[id]
	if !ok {
		return nil, domain.ErrEstimateNotFound
	}
	cp := *e
	return &cp, nil
}

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC)
	}
}

func validEstimateInput() EstimateInput {
	return EstimateInput{
		Brand:    "Hero",
		Model:    "Splendor",
		Variant:  "Splendor 110",
		Year:     "2025",
		KmsRange: "Under 5,000",
		Owner:    "1st Owner",
	}
}

func TestEstimateComputesAndPersists(t *testing.T) {
	repo := newFakeEstimateRepo()
	svc := NewEstimateService(repo, noopLogger{}, fixedClock(2025))

	estimate, err := svc.Estimate(context.Background(), validEstimateInput())
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}
	if estimate.EstimatedPrice != 35300 {
		t.Errorf("estimated price = %d, want 35300", estimate.EstimatedPrice)
	}

	stored, err := svc.GetEstimateByID(context.Background(), estimate.ID.String())
	if err != nil {
		t.Fatalf("get estimate failed: %v", err)
	}
	if stored.EstimatedPrice != estimate.EstimatedPrice || stored.Brand != "Hero" || stored.Year != 2025 {
		t.Error("persisted record should carry the submitted values and price")
	}
}

func TestEstimateAttributesUser(t *testing.T) {
	repo := newFakeEstimateRepo()
	svc := NewEstimateService(repo, noopLogger{}, fixedClock(2025))

	userID := uuid.New()
	input := validEstimateInput()
	input.UserID = &userID

	estimate, err := svc.Estimate(context.Background(), input)
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}
	if estimate.UserID == nil || *estimate.UserID != userID {
		t.Error("logged-in submission should be attributed to the user")
	}
}

func TestEstimateRequiredFields(t *testing.T) {
	svc := NewEstimateService(newFakeEstimateRepo(), noopLogger{}, fixedClock(2025))

	cases := []struct {
		field  string
		mutate func(*EstimateInput)
	}{
		{"brand", func(in *EstimateInput) { in.Brand = "" }},
		{"model", func(in *EstimateInput) { in.Model = "  " }},
		{"variant", func(in *EstimateInput) { in.Variant = "" }},
		{"year", func(in *EstimateInput) { in.Year = "" }},
		{"kms", func(in *EstimateInput) { in.KmsRange = "" }},
		{"owner", func(in *EstimateInput) { in.Owner = "" }},
	}
	for _, tc := range cases {
		input := validEstimateInput()
		tc.mutate(&input)

		_, err := svc.Estimate(context.Background(), input)
		var vErr *domain.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("%s: err = %v, want ValidationError", tc.field, err)
			continue
		}
		if vErr.Field != tc.field {
			t.Errorf("rejected field = %q, want %q", vErr.Field, tc.field)
		}
	}
}

func TestEstimateRejectsMalformedYear(t *testing.T) {
	svc := NewEstimateService(newFakeEstimateRepo(), noopLogger{}, fixedClock(2025))

	input := validEstimateInput()
	input.Year = "twenty twenty"

	_, err := svc.Estimate(context.Background(), input)
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "year" {
		t.Fatalf("err = %v, want ValidationError on year", err)
	}
}

func TestEstimateDeterministicUnderFixedClock(t *testing.T) {
	svc := NewEstimateService(newFakeEstimateRepo(), noopLogger{}, fixedClock(2025))

	first, err := svc.Estimate(context.Background(), validEstimateInput())
	if err != nil {
		t.Fatalf("first estimate failed: %v", err)
	}
	second, err := svc.Estimate(context.Background(), validEstimateInput())
	if err != nil {
		t.Fatalf("second estimate failed: %v", err)
	}
	if first.EstimatedPrice != second.EstimatedPrice {
		t.Errorf("same inputs under a fixed clock gave %d then %d",
			first.EstimatedPrice, second.EstimatedPrice)
	}
}
