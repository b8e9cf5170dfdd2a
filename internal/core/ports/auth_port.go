package ports

import "github.com/driverp/bike-marketplace/internal/core/domain"

type TokenService interface {
	VerifyToken(token string) (*domain.TokenPayload, error)
}
