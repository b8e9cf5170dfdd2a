package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/driverp/bike-marketplace/internal/core/domain"
	"github.com/driverp/bike-marketplace/internal/core/ports"

	"github.com/google/uuid"
)

// EstimateInput is one sell-page submission. Year arrives as the raw
// form string; parsing it is part of validation.
type EstimateInput struct {
	UserID   *uuid.UUID
	Brand    string
	Model    string
	Variant  string
	Year     string
	KmsRange string
	Owner    string
	Name     string
	Phone    string
	Notes    string
}

type EstimateService struct {
	estimateRepo ports.EstimateRepository
	logger       ports.LoggerPort
	now          func() time.Time
}

func NewEstimateService(
	estimateRepo ports.EstimateRepository,
	logger ports.LoggerPort,
	now func() time.Time,
) *EstimateService {
	if now == nil {
		now = time.Now
	}
	return &EstimateService{
		estimateRepo: estimateRepo,
		logger:       logger,
		now:          now,
	}
}

// Estimate validates the submission, computes the price and persists an
// immutable audit record. The computation itself never fails; only
// missing or malformed required input is rejected.
func (s *EstimateService) Estimate(ctx context.Context, input EstimateInput) (*domain.SellEstimate, error) {
	required := []struct{ field, value string }{
		{"brand", input.Brand},
		{"model", input.Model},
		{"variant", input.Variant},
		{"year", input.Year},
		{"kms", input.KmsRange},
		{"owner", input.Owner},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, domain.NewValidationError(r.field, "is required")
		}
	}

	year, err := strconv.Atoi(strings.TrimSpace(input.Year))
	if err != nil {
		return nil, domain.NewValidationError("year", "must be a valid year")
	}

	price := domain.EstimatePrice(input.Brand, input.Variant, year, input.KmsRange, input.Owner, s.now().Year())

	estimate := &domain.SellEstimate{
		ID:             uuid.New(),
		UserID:         input.UserID,
		Brand:          input.Brand,
		Model:          input.Model,
		Variant:        input.Variant,
		Year:           year,
		KmsRange:       input.KmsRange,
		Owner:          input.Owner,
		EstimatedPrice: price,
		Name:           input.Name,
		Phone:          input.Phone,
		Notes:          input.Notes,
	}

	created, err := s.estimateRepo.CreateEstimate(ctx, estimate)
	if err != nil {
		s.logger.Error("Failed to persist estimate", map[string]interface{}{
			"error": err.Error(),
			"brand": input.Brand,
		})
		return nil, err
	}

	s.logger.Info("Estimate computed", map[string]interface{}{
		"estimate_id":     created.ID,
		"brand":           created.Brand,
		"estimated_price": created.EstimatedPrice,
	})

	return created, nil
}

func (s *EstimateService) GetEstimateByID(ctx context.Context, estimateID string) (*domain.SellEstimate, error) {
	estimateUUID, err := uuid.Parse(estimateID)
	if err != nil {
		return nil, domain.NewValidationError("id", "must be a valid estimate ID")
	}

	estimate, err := s.estimateRepo.GetEstimateByID(ctx, estimateUUID)
	if err != nil {
		s.logger.Error("Failed to get estimate", map[string]interface{}{
			"error":       err.Error(),
			"estimate_id": estimateID,
		})
		return nil, err
	}

	return estimate, nil
}
