package ports

import (
	"context"

	"github.com/driverp/bike-marketplace/internal/core/domain"
)

// ContentRepository reads the admin-edited site content. Singleton
// records return (nil, nil) when the table is empty; callers substitute
// the built-in default.
type ContentRepository interface {
	GetSiteBrand(ctx context.Context) (*domain.SiteBrand, error)
	ListNavItems(ctx context.Context) ([]*domain.NavItem, error)
	GetHomePage(ctx context.Context) (*domain.HomePage, error)
	ListHomeFeatures(ctx context.Context) ([]*domain.HomeFeature, error)
	ListSupportItems(ctx context.Context) ([]*domain.SupportItem, error)
	ListFAQs(ctx context.Context) ([]*domain.FAQ, error)
	GetAboutPage(ctx context.Context) (*domain.AboutPage, error)
	GetSellBanner(ctx context.Context) (*domain.Banner, error)
}
