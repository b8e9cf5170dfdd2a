package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/driverp/bike-marketplace/internal/core/domain"
	"github.com/driverp/bike-marketplace/internal/core/ports"
)

// HomeContent is the assembled context for the homepage renderer.
type HomeContent struct {
	Brand        *domain.SiteBrand     `json:"brand"`
	NavItems     []*domain.NavItem     `json:"navitems"`
	Page         *domain.HomePage      `json:"page"`
	Features     []*domain.HomeFeature `json:"features"`
	SupportItems []*domain.SupportItem `json:"support_items"`
	FAQs         []*domain.FAQ         `json:"faqs"`
}

type AboutContent struct {
	Brand    *domain.SiteBrand `json:"brand"`
	NavItems []*domain.NavItem `json:"navitems"`
	About    *domain.AboutPage `json:"about"`
}

type ContentService struct {
	contentRepo ports.ContentRepository
	logger      ports.LoggerPort
	cache       ports.CachePort
}

func NewContentService(
	contentRepo ports.ContentRepository,
	logger ports.LoggerPort,
	cache ports.CachePort,
) *ContentService {
	return &ContentService{
		contentRepo: contentRepo,
		logger:      logger,
		cache:       cache,
	}
}

const contentCacheTTL = 5 * time.Minute

// GetHomeContent assembles the homepage context, substituting built-in
// defaults for empty singleton tables.
func (s *ContentService) GetHomeContent(ctx context.Context) (*HomeContent, error) {
	const cacheKey = "content:home"
	if cached, err := s.cache.Get(cacheKey); err == nil {
		var content HomeContent
		if err := json.Unmarshal(cached, &content); err == nil {
			return &content, nil
		}
	}

	brand, navItems, err := s.brandAndNav(ctx)
	if err != nil {
		return nil, err
	}

	page, err := s.contentRepo.GetHomePage(ctx)
	if err != nil {
		return nil, err
	}
	if page == nil {
		page = domain.DefaultHomePage()
	}

	features, err := s.contentRepo.ListHomeFeatures(ctx)
	if err != nil {
		return nil, err
	}
	supportItems, err := s.contentRepo.ListSupportItems(ctx)
	if err != nil {
		return nil, err
	}
	faqs, err := s.contentRepo.ListFAQs(ctx)
	if err != nil {
		return nil, err
	}

	content := &HomeContent{
		Brand:        brand,
		NavItems:     navItems,
		Page:         page,
		Features:     features,
		SupportItems: supportItems,
		FAQs:         faqs,
	}

	s.cacheContent(cacheKey, content)
	return content, nil
}

func (s *ContentService) GetAboutContent(ctx context.Context) (*AboutContent, error) {
	const cacheKey = "content:about"
	if cached, err := s.cache.Get(cacheKey); err == nil {
		var content AboutContent
		if err := json.Unmarshal(cached, &content); err == nil {
			return &content, nil
		}
	}

	brand, navItems, err := s.brandAndNav(ctx)
	if err != nil {
		return nil, err
	}

	about, err := s.contentRepo.GetAboutPage(ctx)
	if err != nil {
		return nil, err
	}
	if about == nil {
		about = domain.DefaultAboutPage()
	}

	content := &AboutContent{Brand: brand, NavItems: navItems, About: about}
	s.cacheContent(cacheKey, content)
	return content, nil
}

func (s *ContentService) GetSellBanner(ctx context.Context) (*domain.Banner, error) {
	banner, err := s.contentRepo.GetSellBanner(ctx)
	if err != nil {
		s.logger.Error("Failed to load sell banner", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	if banner == nil {
		banner = domain.DefaultBanner()
	}
	return banner, nil
}

func (s *ContentService) brandAndNav(ctx context.Context) (*domain.SiteBrand, []*domain.NavItem, error) {
	brand, err := s.contentRepo.GetSiteBrand(ctx)
	if err != nil {
		return nil, nil, err
	}
	if brand == nil {
		brand = domain.DefaultSiteBrand()
	}

	navItems, err := s.contentRepo.ListNavItems(ctx)
	if err != nil {
		return nil, nil, err
	}
	return brand, navItems, nil
}

func (s *ContentService) cacheContent(key string, content interface{}) {
	data, err := json.Marshal(content)
	if err != nil {
		return
	}
	if err := s.cache.Set(key, data, contentCacheTTL); err != nil {
		s.logger.Warn("Failed to cache content", map[string]interface{}{
			"error": err.Error(),
			"key":   key,
		})
	}
}
