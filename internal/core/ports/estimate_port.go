package ports

import (
	"context"

	"github.com/driverp/bike-marketplace/internal/core/domain"

	"github.com/google/uuid"
)

type EstimateRepository interface {
	CreateEstimate(ctx context.Context, estimate *domain.SellEstimate) (*domain.SellEstimate, error)
	GetEstimateByID(ctx context.Context, estimateID uuid.UUID) (*domain.SellEstimate, error)
}
