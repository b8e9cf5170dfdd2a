package services

import (
	"context"
	"testing"

	"github.com/driverp/bike-marketplace/internal/core/domain"
)

type fakeContentRepo struct {
	brand    *domain.SiteBrand
	nav      []*domain.NavItem
	home     *domain.HomePage
	features []*domain.HomeFeature
	support  []*domain.SupportItem
	faqs     []*domain.FAQ
	about    *domain.AboutPage
	banner   *domain.Banner
}

func (r *fakeContentRepo) GetSiteBrand(context.Context) (*domain.SiteBrand, error) { return r.brand, nil }
func (r *fakeContentRepo) ListNavItems(context.Context) ([]*domain.NavItem, error) { return r.nav, nil }
func (r *fakeContentRepo) GetHomePage(context.Context) (*domain.HomePage, error)   { return r.home, nil }
func (r *fakeContentRepo) ListHomeFeatures(context.Context) ([]*domain.HomeFeature, error) {
	return r.features, nil
}
func (r *fakeContentRepo) ListSupportItems(context.Context) ([]*domain.SupportItem, error) {
	return r.support, nil
}
func (r *fakeContentRepo) ListFAQs(context.Context) ([]*domain.FAQ, error)       { return r.faqs, nil }
func (r *fakeContentRepo) GetAboutPage(context.Context) (*domain.AboutPage, error) {
	return r.about, nil
}
func (r *fakeContentRepo) GetSellBanner(context.Context) (*domain.Banner, error) { return r.banner, nil }

func TestGetHomeContentDefaults(t *testing.T) {
	svc := NewContentService(&fakeContentRepo{}, noopLogger{}, newFakeCache())

	content, err := svc.GetHomeContent(context.Background())
	if err != nil {
		t.Fatalf("home content failed: %v", err)
	}
	if content.Brand == nil || content.Brand.LeftText != "Drive" || content.Brand.RightText != "RP" {
		t.Error("empty brand table should fall back to the built-in default")
	}
	if content.Page == nil || content.Page.HeroHeading != "Buy or Sell Bikes the Smarter Way" {
		t.Error("empty home page table should fall back to the built-in default")
	}
	if content.Page.CarouselInterval != 3500 {
		t.Errorf("default carousel interval = %d, want 3500", content.Page.CarouselInterval)
	}
}

func TestGetHomeContentUsesStoredRows(t *testing.T) {
	repo := &fakeContentRepo{
		brand: &domain.SiteBrand{LeftText: "Moto", RightText: "Hub"},
		home:  &domain.HomePage{HeroHeading: "Ride On"},
		faqs:  []*domain.FAQ{{Question: "Is the deposit refundable?", Answer: "Yes, fully."}},
	}
	svc := NewContentService(repo, noopLogger{}, newFakeCache())

	content, err := svc.GetHomeContent(context.Background())
	if err != nil {
		t.Fatalf("home content failed: %v", err)
	}
	if content.Brand.LeftText != "Moto" || content.Page.HeroHeading != "Ride On" {
		t.Error("stored rows should win over defaults")
	}
	if len(content.FAQs) != 1 {
		t.Errorf("faqs = %d, want 1", len(content.FAQs))
	}
}

func TestGetHomeContentCached(t *testing.T) {
	repo := &fakeContentRepo{home: &domain.HomePage{HeroHeading: "First"}}
	svc := NewContentService(repo, noopLogger{}, newFakeCache())

	if _, err := svc.GetHomeContent(context.Background()); err != nil {
		t.Fatalf("first read failed: %v", err)
	}

	// Within the TTL a repo change is not visible.
	repo.home = &domain.HomePage{HeroHeading: "Second"}
	content, err := svc.GetHomeContent(context.Background())
	if err != nil {
		t.Fatalf("second read failed: %v", err)
	}
	if content.Page.HeroHeading != "First" {
		t.Errorf("hero heading = %q, want cached %q", content.Page.HeroHeading, "First")
	}
}

func TestGetAboutContentDefaults(t *testing.T) {
	svc := NewContentService(&fakeContentRepo{}, noopLogger{}, newFakeCache())

	content, err := svc.GetAboutContent(context.Background())
	if err != nil {
		t.Fatalf("about content failed: %v", err)
	}
	if content.About == nil || content.About.Title != "About Us" {
		t.Error("empty about table should fall back to the built-in default")
	}
	if content.About.MissionOpacity != 0.95 {
		t.Errorf("default mission opacity = %v, want 0.95", content.About.MissionOpacity)
	}
}

func TestGetSellBannerDefault(t *testing.T) {
	svc := NewContentService(&fakeContentRepo{}, noopLogger{}, newFakeCache())

	banner, err := svc.GetSellBanner(context.Background())
	if err != nil {
		t.Fatalf("sell banner failed: %v", err)
	}
	if banner.AccentColor != "#0b5fa5" {
		t.Errorf("default accent color = %q, want #0b5fa5", banner.AccentColor)
	}
}
